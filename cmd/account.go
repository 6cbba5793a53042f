package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
)

type accountAddCmd struct {
	code     string
	category string
	header   bool
}

func (*accountAddCmd) Name() string     { return "add-account" }
func (*accountAddCmd) Synopsis() string { return "add an entry to the chart of accounts" }
func (*accountAddCmd) Usage() string {
	return `add-account -code <code> -category <name> [-header]

  Adds a chart-of-accounts entry. Header entries are non-postable group
  titles used only for report layout. Duplicate codes are rejected.
`
}

func (c *accountAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Account code (required, unique)")
	f.StringVar(&c.category, "category", "", "Display category name (required)")
	f.BoolVar(&c.header, "header", false, "Mark the entry as a non-postable header")
}

func (c *accountAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.category == "" {
		return usageError("-code and -category are required")
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	if err := books.AddAccount(bookkeeper.Account{Code: c.code, Category: c.category, IsHeader: c.header}); err != nil {
		return fail(err)
	}
	fmt.Printf("Added account %s (%s)\n", c.code, c.category)
	return subcommands.ExitSuccess
}

type accountUpdateCmd struct {
	code     string
	category string
	header   bool
}

func (*accountUpdateCmd) Name() string     { return "update-account" }
func (*accountUpdateCmd) Synopsis() string { return "update a chart of accounts entry" }
func (*accountUpdateCmd) Usage() string {
	return `update-account -code <code> -category <name> [-header]

  Replaces the entry with the given code. Unknown codes are a no-op.
`
}

func (c *accountUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Account code (required)")
	f.StringVar(&c.category, "category", "", "Display category name (required)")
	f.BoolVar(&c.header, "header", false, "Mark the entry as a non-postable header")
}

func (c *accountUpdateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.category == "" {
		return usageError("-code and -category are required")
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	if err := books.UpdateAccount(bookkeeper.Account{Code: c.code, Category: c.category, IsHeader: c.header}); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated account %s\n", c.code)
	return subcommands.ExitSuccess
}

type accountDeleteCmd struct {
	code string
}

func (*accountDeleteCmd) Name() string     { return "delete-account" }
func (*accountDeleteCmd) Synopsis() string { return "delete a chart of accounts entry" }
func (*accountDeleteCmd) Usage() string {
	return `delete-account -code <code>

  Removes the entry. Transactions referencing the code are untouched; they
  render with the fallback category from then on.
`
}

func (c *accountDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Account code (required)")
}

func (c *accountDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		return usageError("-code is required")
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	if err := books.DeleteAccount(c.code); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted account %s\n", c.code)
	return subcommands.ExitSuccess
}
