package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock/advisor"
	"github.com/lzhou/pyrostock/renderer"
	"google.golang.org/genai"
)

// insightsCmd holds the flags for the 'insights' subcommand.
type insightsCmd struct {
	watch int
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask the advisor for inventory insights" }
func (*insightsCmd) Usage() string {
	return `psk insights [-w n]

  Sends a summary of the inventory to the advisor and displays its
  insights. Requires the GEMINI_API_KEY environment variable.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.watch, "w", 0, "refresh every n seconds; a new refresh supersedes one still in flight")
}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating the advisor client: %v\n", err)
		return subcommands.ExitFailure
	}
	refresher := advisor.NewRefresher(advisor.New(client))

	done := make(chan struct{}, 1)
	deliver := func(insights []advisor.Insight) {
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(renderer.InsightsMarkdown(insights))
		if c.watch == 0 {
			done <- struct{}{}
		}
	}

	for {
		store := OpenStore()
		refresher.Refresh(ctx, store.Inventory().All(), deliver)

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			<-done
			break
		}
	}
	return subcommands.ExitSuccess
}
