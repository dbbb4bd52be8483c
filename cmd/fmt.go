package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock"
)

// fmtCmd rewrites the store documents in their canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the store documents in canonical form"
}
func (*fmtCmd) Usage() string {
	return `psk fmt

  Reads the inventory and history documents, validates every record and
  writes them back canonically: fixed key order, one record per line.
  Useful after editing the files by hand or upgrading psk.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	backend := &pyrostock.DirBackend{Dir: *storeDir}

	items, err := backend.LoadItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid item %q: %v\n", it.ID, err)
			return subcommands.ExitFailure
		}
	}
	if err := backend.SaveItems(items); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not rewrite inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	h, err := backend.LoadHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: no readable history, skipping")
	} else if err := backend.SaveHistory(h); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not rewrite history: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d item(s)\n", len(items))
	return subcommands.ExitSuccess
}
