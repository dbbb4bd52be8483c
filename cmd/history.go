package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the inventory valuation history" }
func (*historyCmd) Usage() string {
	return `psk history

  Displays the recorded total valuation, one point per day, up to 30 days.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	printMarkdown(renderer.HistoryMarkdown(store.History()))
	return subcommands.ExitSuccess
}
