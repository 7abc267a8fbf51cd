package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njstructs/priorityqueue"
)

type scheduledTask struct {
	id       uuid.UUID
	name     string
	priority int
}

func runSchedule(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: schedule name:priority [name:priority ...]")
	}

	pq := priorityqueue.New(func(a, b scheduledTask) int {
		return cmp.Compare(a.priority, b.priority)
	})

	for _, arg := range cmd.Args().Slice() {
		name, priorityText, ok := strings.Cut(arg, ":")
		if !ok {
			return fmt.Errorf("expected name:priority, got %q", arg)
		}
		priority, err := strconv.Atoi(priorityText)
		if err != nil {
			return fmt.Errorf("priority of %q is not an integer: %q", name, priorityText)
		}

		pq.Enqueue(scheduledTask{
			id:       uuid.New(),
			name:     name,
			priority: priority,
		})
	}

	fmt.Printf("draining %d tasks, highest priority first\n", pq.Size())
	for {
		task, ok := pq.Dequeue().Unpack()
		if !ok {
			return nil
		}
		fmt.Printf("  %3d  %s  %s\n", task.priority, task.id, task.name)
	}
}
