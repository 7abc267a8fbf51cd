package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "dsa_tools",
		Usage: "explore the njstructs data structures from the command line",
		Commands: []*cli.Command{
			{
				Name:   "tree",
				Usage:  "generate, print, invert, and export symmetrical binary trees",
				Action: runTree,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "levels",
						DefaultText: "3",
						Value:       3,
						Usage:       "depth of the generated tree",
					},
					&cli.BoolFlag{
						Name:  "invert",
						Usage: "invert the tree before printing",
					},
					&cli.BoolFlag{
						Name:  "color",
						Usage: "colorize output by depth",
					},
					&cli.StringFlag{
						Name:  "dot",
						Usage: "also write the tree as Graphviz DOT to this path",
					},
				},
			},
			{
				Name:   "trie",
				Usage:  "search a word-list file by prefix",
				Action: runTrie,
			},
			{
				Name:   "heapsort",
				Usage:  "sort integer arguments with the binary heap",
				Action: runHeapsort,
			},
			{
				Name:   "schedule",
				Usage:  "drain name:priority tasks through the priority queue",
				Action: runSchedule,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
