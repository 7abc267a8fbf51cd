package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/navijation/njstructs/trie"
)

func runTrie(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errors.New("usage: trie word_list_path prefix")
	}

	path := cmd.Args().Get(0)
	prefix := cmd.Args().Get(1)

	tr, err := trie.FromFile(path)
	if err != nil {
		return err
	}

	matches := tr.FindAllByPrefix(prefix)
	fmt.Printf("%d of %d words start with %q\n", len(matches), tr.Size(), prefix)
	for _, word := range matches {
		fmt.Printf("  %s\n", word)
	}

	return nil
}
