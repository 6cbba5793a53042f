package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// every command the application registers.
func allCommands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&editCmd{},
		&deleteCmd{},
		&importCmd{},
		&exportCmd{},
		&accountAddCmd{},
		&accountUpdateCmd{},
		&accountDeleteCmd{},
		&budgetUploadCmd{},
		&budgetExportCmd{},
		&balanceCmd{},
		&ledgerCmd{},
		&incomeCmd{},
		&budgetCmd{},
		&trialBalanceCmd{},
		&reconcileCmd{},
		&matchCmd{},
		&suggestCmd{},
	}
}

func TestCommands_HaveHelp(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range allCommands() {
		if c.Name() == "" {
			t.Errorf("%T has no name", c)
		}
		if names[c.Name()] {
			t.Errorf("duplicate command name %q", c.Name())
		}
		names[c.Name()] = true
		if c.Synopsis() == "" {
			t.Errorf("%s has no synopsis", c.Name())
		}
		// The usage leads with the invocation, so help output stays scannable.
		if !strings.HasPrefix(c.Usage(), c.Name()) {
			t.Errorf("%s usage does not start with the command name: %q", c.Name(), c.Usage())
		}
	}
}
