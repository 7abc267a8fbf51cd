package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njstructs/binarytree"
)

var treePalette = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
}

func runTree(ctx context.Context, cmd *cli.Command) error {
	root := binarytree.GenerateSymmetrical(int(cmd.Uint("levels")))

	if cmd.Bool("invert") {
		binarytree.Invert(root)
	}

	printTree(root, cmd.Bool("color"))

	if dotPath := cmd.String("dot"); dotPath != "" {
		file, err := os.Create(dotPath)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", dotPath, err)
		}
		defer file.Close()

		if err := binarytree.WriteDot(file, root); err != nil {
			return fmt.Errorf("failed to write DOT output: %w", err)
		}
	}

	return nil
}

func printTree(root *binarytree.Node, colorize bool) {
	var sb strings.Builder
	binarytree.Fprint(&sb, root)

	if !colorize {
		fmt.Print(sb.String())
		return
	}

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		depth := (len(line)-len(strings.TrimLeft(line, " ")))/2 - 1
		if depth < 0 {
			depth = 0
		}
		treePalette[depth%len(treePalette)].Println(line)
	}
}
