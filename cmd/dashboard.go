package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the aggregate inventory report" }
func (*dashboardCmd) Usage() string {
	return `psk dashboard

  Displays the headline metrics, the quantity per category, the largest
  holdings and the recent valuation trend.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	inv := store.Inventory()
	printMarkdown(renderer.DashboardMarkdown(inv.Stats(), inv.All(), store.History()))
	return subcommands.ExitSuccess
}
