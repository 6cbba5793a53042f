package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/akuapem/bookkeeper"
	"github.com/akuapem/bookkeeper/assist"
)

type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest an account code for a description" }
func (*suggestCmd) Usage() string {
	return `suggest <description...>

  Asks the classification service for the best account code given the
  current chart of accounts. Prints "no suggestion" when the service is
  unconfigured, unreachable, or finds no fit — never an error.
`
}
func (*suggestCmd) SetFlags(_ *flag.FlagSet) {}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.TrimSpace(strings.Join(f.Args(), " "))
	if description == "" {
		return usageError("a description is required")
	}
	books, err := openBooks()
	if err != nil {
		return fail(err)
	}

	var accounts []bookkeeper.Account
	for acc := range books.Accounts.All() {
		accounts = append(accounts, acc)
	}

	var classifier *assist.Classifier
	if client, err := genai.NewClient(ctx, nil); err == nil {
		classifier = assist.New(client)
	}

	code, ok := classifier.Suggest(ctx, description, accounts)
	if !ok {
		fmt.Println("no suggestion")
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s (%s)\n", code, books.Accounts.Category(code))
	return subcommands.ExitSuccess
}
