package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock"
	"github.com/lzhou/pyrostock/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	query    string
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the items in stock" }
func (*listCmd) Usage() string {
	return `psk list [-q <query>] [-c <category>]

  Displays the items in stock, most recently added first.
  Filters compose: an item must match both the query and the category.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Keep items whose name or SKU contains this text (case-insensitive)")
	f.StringVar(&c.category, "c", "", "Keep items of this category only")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var category pyrostock.Category
	if c.category != "" {
		var err error
		category, err = pyrostock.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store := OpenStore()

	var items []pyrostock.Item
	for _, it := range store.Inventory().Items(pyrostock.ByQuery(c.query), pyrostock.ByCategory(category)) {
		items = append(items, it)
	}

	printMarkdown(renderer.InventoryMarkdown(items))
	return subcommands.ExitSuccess
}
