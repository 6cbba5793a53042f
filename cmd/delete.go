package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/akuapem/bookkeeper"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by id" }
func (*deleteCmd) Usage() string {
	return `delete -id <id>

  Removes the transaction with the given id. Deleting an unknown id is a
  no-op, so the command is safe to repeat.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id (required)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError("-id is required")
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}
	if err := books.DeleteTransaction(bookkeeper.ID(c.id)); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted %s\n", c.id)
	return subcommands.ExitSuccess
}
