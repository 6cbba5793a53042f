// Package cmd implements the CLI application to keep the books of a small
// organization.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&accountAddCmd{}, "accounts")
	c.Register(&accountUpdateCmd{}, "accounts")
	c.Register(&accountDeleteCmd{}, "accounts")

	c.Register(&budgetUploadCmd{}, "budget")
	c.Register(&budgetExportCmd{}, "budget")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&ledgerCmd{}, "reports")
	c.Register(&incomeCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")
	c.Register(&trialBalanceCmd{}, "reports")

	c.Register(&reconcileCmd{}, "reconciliation")
	c.Register(&matchCmd{}, "reconciliation")

	c.Register(&suggestCmd{}, "assist")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var booksDir = flag.String("books", ".books", "Path to the books directory holding the persisted stores")
var currency = flag.String("currency", bookkeeper.DefaultCurrency, "Display currency, 3-letter code")

// openBooks loads the books from the app books directory. A missing
// directory opens as empty books.
func openBooks() (*bookkeeper.Books, error) {
	return bookkeeper.Open(*booksDir, *currency)
}

// render prints a markdown report to stdout through the terminal renderer,
// falling back to the raw markdown when rendering fails.
func render(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints a message to stderr and returns the usage exit status.
func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
