package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk import transactions from CSV" }
func (*importCmd) Usage() string {
	return `import -file <ledger.csv>

  Reads the positional format 'date,voucher,activity,accountCode,
  description,amount' and replaces the whole transaction collection.
  The amount sign selects INCOME or EXPENSE; short rows are padded, not
  rejected.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file to import (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usageError("-file is required")
	}
	in, err := os.Open(c.file)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	txs, err := bookkeeper.ImportLedgerCSV(in, *currency)
	if err != nil {
		return fail(err)
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	if err := books.ImportTransactions(txs); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d transactions\n", len(txs))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transactions to CSV" }
func (*exportCmd) Usage() string {
	return `export [-file <ledger.csv>]

  Writes the transactions as CSV, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Destination file (default stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := bookkeeper.ExportLedgerCSV(out, books.Ledger); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
