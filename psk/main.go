// Command psk is the stock ledger of a small fireworks retail shop.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/lzhou/pyrostock/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. When invoked by the shell's completion hook this
	// prints the candidates and exits; in a normal run it does nothing.
	completion().Complete("psk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	categories := predict.Set{"cakes", "sparklers", "rockets", "fountains", "firecrackers", "roman-candles", "novelties", "others"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"list": {Flags: map[string]complete.Predictor{
				"q": predict.Nothing,
				"c": categories,
			}},
			"add": {Flags: map[string]complete.Predictor{
				"name":      predict.Nothing,
				"sku":       predict.Nothing,
				"category":  categories,
				"quantity":  predict.Nothing,
				"price":     predict.Nothing,
				"cost":      predict.Nothing,
				"wholesale": predict.Nothing,
				"threshold": predict.Nothing,
				"safety":    predict.Set{"low", "medium", "high"},
				"image":     predict.Nothing,
				"desc":      predict.Nothing,
			}},
			"in":   {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"out":  {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"sell": {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"rm":   {Flags: map[string]complete.Predictor{"y": predict.Nothing}},

			"dashboard": {},
			"history":   {},
			"insights":  {Flags: map[string]complete.Predictor{"w": predict.Nothing}},

			"import": {Flags: map[string]complete.Predictor{
				"file":     predict.Files("*.json"),
				"rows":     predict.Nothing,
				"name":     predict.Nothing,
				"sku":      predict.Nothing,
				"category": predict.Nothing,
				"quantity": predict.Nothing,
				"price":    predict.Nothing,
				"cost":     predict.Nothing,
			}},
			"fmt":   {},
			"topic": {Args: predict.Set{"readme", "categories", "safety", "storage", "*"}},
		},
	}
}
