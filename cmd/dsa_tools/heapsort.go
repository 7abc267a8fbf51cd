package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/navijation/njstructs/heap"
)

func runHeapsort(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: heapsort value [value ...]")
	}

	var values []int
	for _, arg := range cmd.Args().Slice() {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not an integer: %q", arg)
		}
		values = append(values, value)
	}

	h := heap.New(cmp.Compare[int], values...)
	fmt.Printf("sorted high to low: %v\n", h.ToSorted())

	root, _ := h.Root().Unpack()
	leaf, _ := h.Leaf().Unpack()
	fmt.Printf("root (highest): %d\nleaf (lowest): %d\n", root, leaf)

	return nil
}
