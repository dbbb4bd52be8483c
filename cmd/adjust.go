package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// inCmd holds the flags for the 'in' subcommand.
type inCmd struct {
	amount int
}

func (*inCmd) Name() string     { return "in" }
func (*inCmd) Synopsis() string { return "receive stock for an item" }
func (*inCmd) Usage() string {
	return `psk in -n <amount> <id>

  Increases the item's quantity, typically on a delivery.
`
}

func (c *inCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.amount, "n", 1, "Number of units received")
}

func (c *inCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return adjust(f, c.amount)
}

// outCmd holds the flags for the 'out' subcommand.
type outCmd struct {
	amount int
}

func (*outCmd) Name() string     { return "out" }
func (*outCmd) Synopsis() string { return "remove stock from an item" }
func (*outCmd) Usage() string {
	return `psk out -n <amount> <id>

  Decreases the item's quantity, for breakage, returns to the supplier or
  corrections. The quantity never goes below zero. For a customer sale use
  'psk sell', which refuses to overdraw instead of clamping.
`
}

func (c *outCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.amount, "n", 1, "Number of units removed")
}

func (c *outCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return adjust(f, -c.amount)
}

// adjust applies a signed quantity delta to the item named on the command line.
func adjust(f *flag.FlagSet, delta int) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is expected")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store := OpenStore()
	if !store.AdjustQuantity(id, delta) {
		fmt.Fprintf(os.Stderr, "Error: no item with id %q\n", id)
		return subcommands.ExitFailure
	}

	it, _ := store.Inventory().Get(id)
	fmt.Printf("%q now holds %d units\n", it.Name, it.Quantity)
	return subcommands.ExitSuccess
}
