package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
)

type addCmd struct {
	date        string
	voucher     string
	cheque      string
	activity    string
	description string
	party       string
	amount      string
	kind        string
	account     string
	cleared     bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `add -type <type> -amount <amount> -account <code> -description <text> [options]

  Records a transaction against the books. The amount is a non-negative
  magnitude; the direction comes from the type (INCOME, EXPENSE, ADV, TRF,
  CONT, OPENING, NB, WHT, ITAX, SSEC, PCA).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "0d", "Transaction date (default today)")
	f.StringVar(&c.voucher, "voucher", "", "Voucher number")
	f.StringVar(&c.cheque, "cheque", "", "Cheque number")
	f.StringVar(&c.activity, "activity", "", "Activity label")
	f.StringVar(&c.description, "description", "", "Description (required)")
	f.StringVar(&c.party, "party", "", "Payee or payer")
	f.StringVar(&c.amount, "amount", "", "Amount, non-negative (required)")
	f.StringVar(&c.kind, "type", "", "Transaction type (required)")
	f.StringVar(&c.account, "account", "", "Chart of accounts code (required)")
	f.BoolVar(&c.cleared, "cleared", false, "Record the transaction as CLEARED instead of PENDING")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := bookkeeper.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	kind, err := bookkeeper.ParseTxType(c.kind)
	if err != nil {
		return fail(err)
	}
	amount, err := bookkeeper.ParseMoney(c.amount, *currency)
	if err != nil {
		return fail(err)
	}

	books, err := openBooks()
	if err != nil {
		return fail(err)
	}

	t := bookkeeper.NewTransaction(day, kind, amount, c.account, c.description)
	t.Voucher = c.voucher
	t.Cheque = c.cheque
	t.Activity = c.activity
	t.Party = c.party
	if c.cleared {
		t.Status = bookkeeper.Cleared
	}

	if err := books.AddTransaction(t); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s %s %s as %s\n", t.Type, t.Amount, t.Description, t.ID)
	return subcommands.ExitSuccess
}
