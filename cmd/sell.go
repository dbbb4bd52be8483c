package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	amount int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a customer sale" }
func (*sellCmd) Usage() string {
	return `psk sell -n <amount> <id>

  Records a sale of the given item. The sale is refused when the amount is
  not positive or exceeds the quantity on the shelf.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.amount, "n", 1, "Number of units sold")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is expected")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store := OpenStore()
	if err := store.Sell(id, c.amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	it, _ := store.Inventory().Get(id)
	fmt.Printf("Sold %d × %q, %d left\n", c.amount, it.Name, it.Quantity)
	return subcommands.ExitSuccess
}
