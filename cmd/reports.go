package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
	"github.com/akuapem/bookkeeper/renderer"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the total balance" }
func (*balanceCmd) Usage() string {
	return `balance

  Prints the total balance across the whole ledger: inflows add, everything
  else subtracts.
`
}
func (*balanceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	fmt.Println(bookkeeper.Balance(books.Ledger))
	return subcommands.ExitSuccess
}

type ledgerCmd struct{}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "show the ledger with running balance" }
func (*ledgerCmd) Usage() string {
	return `ledger

  Shows every transaction in chronological order with the balance after it.
`
}
func (*ledgerCmd) SetFlags(_ *flag.FlagSet) {}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	render(renderer.Ledger(books.Ledger))
	return subcommands.ExitSuccess
}

type incomeCmd struct{}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "show the income statement" }
func (*incomeCmd) Usage() string {
	return `income

  Shows the net position and the expense breakdown per category group.
  Only EXPENSE transactions count as spend.
`
}
func (*incomeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	render(renderer.Income(bookkeeper.Balance(books.Ledger), bookkeeper.ExpenseByCategory(books.Ledger)))
	return subcommands.ExitSuccess
}

type trialBalanceCmd struct{}

func (*trialBalanceCmd) Name() string     { return "trial-balance" }
func (*trialBalanceCmd) Synopsis() string { return "show the trial balance" }
func (*trialBalanceCmd) Usage() string {
	return `trial-balance

  Shows each account's net debit or credit position derived from the
  transaction type classification. Totals are not forced to balance: this
  is a single-entry model, an inequality reflects the overall cash position.
`
}
func (*trialBalanceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *trialBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	render(renderer.TrialBalance(bookkeeper.TrialBalance(books.Ledger, books.Accounts)))
	return subcommands.ExitSuccess
}
