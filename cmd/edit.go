package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
)

type editCmd struct {
	id          string
	date        string
	description string
	amount      string
	kind        string
	account     string
	status      string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `edit -id <id> [options]

  Replaces fields of the transaction with the given id. Omitted flags keep
  their current value. Editing an unknown id is a no-op.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id (required)")
	f.StringVar(&c.date, "date", "", "New date")
	f.StringVar(&c.description, "description", "", "New description")
	f.StringVar(&c.amount, "amount", "", "New amount")
	f.StringVar(&c.kind, "type", "", "New type")
	f.StringVar(&c.account, "account", "", "New account code")
	f.StringVar(&c.status, "status", "", "New status (PENDING or CLEARED)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}

	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	t, ok := books.Ledger.Get(bookkeeper.ID(c.id))
	if !ok {
		fmt.Printf("No transaction %s, nothing to edit\n", c.id)
		return subcommands.ExitSuccess
	}

	if c.date != "" {
		if t.Date, err = bookkeeper.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}
	if c.description != "" {
		t.Description = c.description
	}
	if c.amount != "" {
		if t.Amount, err = bookkeeper.ParseMoney(c.amount, *currency); err != nil {
			return fail(err)
		}
	}
	if c.kind != "" {
		if t.Type, err = bookkeeper.ParseTxType(c.kind); err != nil {
			return fail(err)
		}
	}
	if c.account != "" {
		t.Account = c.account
	}
	if c.status != "" {
		status, err := bookkeeper.ParseStatus(c.status)
		if err != nil {
			return fail(err)
		}
		if status == bookkeeper.Reconciled {
			return usageError("RECONCILED is set through the match command only")
		}
		t.Status = status
	}

	if err := books.UpdateTransaction(t); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated %s\n", t.ID)
	return subcommands.ExitSuccess
}
