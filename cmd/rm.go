package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the inventory" }
func (*rmCmd) Usage() string {
	return `psk rm [-y] <id>

  Removes the item from the inventory after confirmation.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is expected")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store := OpenStore()
	it, ok := store.Inventory().Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no item with id %q\n", id)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Remove %q (sku %s, %d in stock)?", it.Name, it.SKU, it.Quantity)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	store.DeleteItem(id)
	fmt.Printf("Removed %q\n", it.Name)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
