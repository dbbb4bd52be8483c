// Package cmd implements the CLI application to manage the shop inventory.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "inventory")
	c.Register(&addCmd{}, "inventory")
	c.Register(&inCmd{}, "inventory")
	c.Register(&outCmd{}, "inventory")
	c.Register(&sellCmd{}, "inventory")
	c.Register(&rmCmd{}, "inventory")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")

	c.Register(&importCmd{}, "store")
	c.Register(&fmtCmd{}, "store")
	c.Register(&topicCmd{}, "store")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store-dir", ".pyrostock", "Path to the store folder holding the inventory and history documents")

// OpenStore is the central function to open the shop's store.
// It never fails: a missing or broken store falls open to the demonstration set.
func OpenStore() *pyrostock.Store {
	s := pyrostock.NewStore(&pyrostock.DirBackend{Dir: *storeDir}, nil)
	s.Initialize()
	return s
}

// printMarkdown renders markdown styled for the terminal, falling back to
// the raw text when the renderer cannot be set up.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
