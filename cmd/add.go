package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name      string
	sku       string
	category  string
	quantity  int
	price     float64
	cost      float64
	wholesale float64
	threshold int
	safety    string
	image     string
	desc      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the inventory" }
func (*addCmd) Usage() string {
	return `psk add -name <name> -sku <sku> -category <category> -quantity <n> -price <price> -safety <level> [options]

  Adds a new item to the inventory. The item id and its timestamp are
  assigned by the store.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.sku, "sku", "", "Stock keeping unit code (required)")
	f.StringVar(&c.category, "category", "", "Category, see 'psk topic categories' (required)")
	f.IntVar(&c.quantity, "quantity", 0, "Initial quantity on the shelf")
	f.Float64Var(&c.price, "price", 0, "Retail price per unit (required)")
	f.Float64Var(&c.cost, "cost", 0, "Purchase cost per unit")
	f.Float64Var(&c.wholesale, "wholesale", 0, "Wholesale price per unit")
	f.IntVar(&c.threshold, "threshold", 10, "Low-stock reorder threshold")
	f.StringVar(&c.safety, "safety", "", "Safety level: low, medium or high (required)")
	f.StringVar(&c.image, "image", "", "Product image URL")
	f.StringVar(&c.desc, "desc", "", "Short description")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item := pyrostock.Item{
		Name:         c.name,
		SKU:          c.sku,
		Category:     pyrostock.Category(c.category),
		Quantity:     c.quantity,
		MinThreshold: c.threshold,
		Price:        pyrostock.M(c.price, pyrostock.DefaultCurrency),
		Cost:         pyrostock.M(c.cost, pyrostock.DefaultCurrency),
		Safety:       pyrostock.SafetyLevel(c.safety),
		ImageURL:     c.image,
		Description:  c.desc,
	}
	if c.wholesale != 0 {
		item.Wholesale = pyrostock.M(c.wholesale, pyrostock.DefaultCurrency)
	}

	store := OpenStore()
	added, err := store.AddItem(item)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Added %q (id %s, sku %s)\n", added.Name, added.ID, added.SKU)
	return subcommands.ExitSuccess
}
