package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file    string
	mapping pyrostock.CatalogMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import items from a supplier catalog" }
func (*importCmd) Usage() string {
	return `psk import -file <catalog.json> [path options]

  Imports items from a supplier JSON export. The path options are jsonpath
  expressions locating the rows and the fields inside each row; the
  defaults match {"items":[{"name":..., "sku":..., "price":...}]}.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	m := pyrostock.DefaultCatalogMapping()
	f.StringVar(&c.file, "file", "", "Catalog file to import (required)")
	f.StringVar(&c.mapping.Rows, "rows", m.Rows, "Path to the array of product rows")
	f.StringVar(&c.mapping.Name, "name", m.Name, "Path to the product name inside a row")
	f.StringVar(&c.mapping.SKU, "sku", m.SKU, "Path to the SKU inside a row")
	f.StringVar(&c.mapping.Category, "category", m.Category, "Path to the category inside a row")
	f.StringVar(&c.mapping.Quantity, "quantity", m.Quantity, "Path to the quantity inside a row")
	f.StringVar(&c.mapping.Price, "price", m.Price, "Path to the retail price inside a row")
	f.StringVar(&c.mapping.Cost, "cost", m.Cost, "Path to the purchase cost inside a row")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}
	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	items, err := pyrostock.DecodeCatalog(r, c.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	store := OpenStore()
	for _, it := range items {
		added, err := store.AddItem(it)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", it.Name, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %q (id %s)\n", added.Name, added.ID)
	}
	fmt.Printf("Imported %d item(s) from %s\n", len(items), c.file)
	return subcommands.ExitSuccess
}
