package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
	"github.com/akuapem/bookkeeper/renderer"
)

type budgetUploadCmd struct {
	file string
}

func (*budgetUploadCmd) Name() string     { return "upload-budget" }
func (*budgetUploadCmd) Synopsis() string { return "replace the budget from a CSV file" }
func (*budgetUploadCmd) Usage() string {
	return `upload-budget -file <budget.csv>

  Reads 'code,monthlyAmount' lines and replaces the whole budget with them.
  Malformed lines are skipped. The last upload wins.
`
}

func (c *budgetUploadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file to upload (required)")
}

func (c *budgetUploadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usageError("-file is required")
	}
	in, err := os.Open(c.file)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	lines, err := bookkeeper.ImportBudgetCSV(in, *currency)
	if err != nil {
		return fail(err)
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	if err := books.SetBudget(lines); err != nil {
		return fail(err)
	}
	fmt.Printf("Budget replaced with %d lines\n", len(lines))
	return subcommands.ExitSuccess
}

type budgetExportCmd struct {
	file string
}

func (*budgetExportCmd) Name() string     { return "export-budget" }
func (*budgetExportCmd) Synopsis() string { return "export the budget to CSV" }
func (*budgetExportCmd) Usage() string {
	return `export-budget [-file <budget.csv>]

  Writes the budget as CSV, to stdout by default. Re-importing the output
  reproduces the budget exactly.
`
}

func (c *budgetExportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Destination file (default stdout)")
}

func (c *budgetExportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	out := os.Stdout
	if c.file != "" {
		out, err = os.Create(c.file)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}
	if err := bookkeeper.ExportBudgetCSV(out, books.Budget); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type budgetCmd struct {
	from string
	to   string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show budget vs actuals for a date range" }
func (*budgetCmd) Usage() string {
	return `budget -from <date> -to <date>

  Shows every non-header account's budget position over the range. The
  monthly budget is pro-rated by the inclusive number of months the range
  touches. Largest deviations come first.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "-1m", "Start of the range, inclusive")
	f.StringVar(&c.to, "to", "0d", "End of the range, inclusive")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := bookkeeper.ParseDate(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := bookkeeper.ParseDate(c.to)
	if err != nil {
		return fail(err)
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	rng := bookkeeper.NewRange(from, to)
	rows := bookkeeper.BudgetVsActuals(books.Ledger, books.Accounts, books.Budget, rng)
	render(renderer.BudgetVariance(rng, rows))
	return subcommands.ExitSuccess
}
