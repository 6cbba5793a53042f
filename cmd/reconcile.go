package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/akuapem/bookkeeper"
	"github.com/akuapem/bookkeeper/assist"
	"github.com/akuapem/bookkeeper/renderer"
)

type reconcileCmd struct {
	asOf      string
	statement string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "show the bank reconciliation statement" }
func (*reconcileCmd) Usage() string {
	return `reconcile -statement <balance> [-as-of <date>]

  Builds the reconciliation statement as of a date: ledger balance,
  projected bank balance with unpresented cheques and outstanding deposits,
  and the difference against the supplied statement balance.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "as-of", "0d", "Reconciliation date")
	f.StringVar(&c.statement, "statement", "", "Bank statement balance (required)")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.statement == "" {
		return usageError("-statement is required")
	}
	asOf, err := bookkeeper.ParseDate(c.asOf)
	if err != nil {
		return fail(err)
	}
	statement, err := bookkeeper.ParseMoney(c.statement, *currency)
	if err != nil {
		return fail(err)
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	render(renderer.Reconciliation(bookkeeper.BankReconciliation(books.Ledger, asOf, statement)))
	return subcommands.ExitSuccess
}

type matchCmd struct {
	file string
	line string
	tx   string
}

func (*matchCmd) Name() string     { return "match" }
func (*matchCmd) Synopsis() string { return "match bank statement lines against the ledger" }
func (*matchCmd) Usage() string {
	return `match -file <statement.txt> [-line <lineID> -tx <transactionID>]

  Parses the statement file into lines (through the parsing service when
  configured, a naive fixed-column split otherwise) and lists each line with
  its candidate ledger matches. With -line and -tx, commits that single
  match: the transaction becomes RECONCILED and the line is consumed.
  Statement lines are a working set only; they are never persisted.
`
}

func (c *matchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Raw bank statement file (required)")
	f.StringVar(&c.line, "line", "", "Statement line id to match")
	f.StringVar(&c.tx, "tx", "", "Ledger transaction id to reconcile")
}

func (c *matchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return usageError("-file is required")
	}
	raw, err := os.ReadFile(c.file)
	if err != nil {
		return fail(err)
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}

	// A missing or misconfigured service degrades to the naive split.
	var classifier *assist.Classifier
	if client, err := genai.NewClient(ctx, nil); err == nil {
		classifier = assist.New(client)
	}
	lines := classifier.ParseStatement(ctx, string(raw), *currency)

	session := bookkeeper.NewSession(books, lines)
	if c.line != "" || c.tx != "" {
		if c.line == "" || c.tx == "" {
			return usageError("-line and -tx go together")
		}
		if err := session.Match(c.line, bookkeeper.ID(c.tx)); err != nil {
			return fail(err)
		}
		fmt.Printf("Reconciled %s against statement line %s\n", c.tx, c.line)
	}

	for _, line := range session.Lines() {
		render(renderer.Candidates(line, session.Candidates(line)))
	}
	return subcommands.ExitSuccess
}
