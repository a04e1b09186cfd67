// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandstore carries out one parsed invocation against the record
// store and the executor.
//
// Nothing in this package ends the process. Every failure is returned as an
// error and every child exit status as a value, leaving the caller to decide
// what to print and which status to exit with.
package commandstore

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/saver/internal/ctxlog"
	"github.com/matt-FFFFFF/saver/internal/intent"
	"github.com/matt-FFFFFF/saver/internal/store"
)

// Runner runs a command in the foreground and returns its exit status.
type Runner interface {
	Run(ctx context.Context, command string, args []string) (int, error)
}

// Records is the subset of *store.Store used here.
type Records interface {
	EnsureDirectory(ctx context.Context) error
	Save(ctx context.Context, name, command string, args []string) error
	Read(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

var _ Records = (*store.Store)(nil)

// CommandStore dispatches intents.
type CommandStore struct {
	Records Records
	Runner  Runner
	Stdout  io.Writer // Receives list and show output.
}

// Execute performs the intent. The returned status is the child's exit code for
// Save and Run, and 0 for the other actions.
func (c *CommandStore) Execute(ctx context.Context, in intent.Intent) (int, error) {
	ctxlog.Debug(ctx, "dispatching", "action", in.Action.String(), "name", in.Name, "db", in.DatabaseDirectory)

	if err := c.Records.EnsureDirectory(ctx); err != nil {
		return 1, err
	}

	switch in.Action {
	case intent.Save:
		if err := c.Records.Save(ctx, in.Name, in.Command, in.Arguments); err != nil {
			return 1, err
		}

		return c.Runner.Run(ctx, in.Command, in.Arguments)

	case intent.List:
		return c.list(ctx)

	case intent.Show:
		content, err := c.Records.Read(ctx, in.Name)
		if err != nil {
			return 1, err
		}

		if _, err := fmt.Fprintln(c.Stdout, content); err != nil {
			return 1, err
		}

		return 0, nil

	case intent.Run:
		content, err := c.Records.Read(ctx, in.Name)
		if err != nil {
			return 1, err
		}

		command, args := store.SplitRecord(content)

		return c.Runner.Run(ctx, command, args)

	case intent.Delete:
		if err := c.Records.Delete(ctx, in.Name); err != nil {
			return 1, err
		}

		return 0, nil

	default:
		return 1, intent.ErrUsage
	}
}

func (c *CommandStore) list(ctx context.Context) (int, error) {
	names, err := c.Records.List(ctx)
	if err != nil {
		return 1, err
	}

	for i, name := range names {
		if _, err := fmt.Fprintf(c.Stdout, "%d) %s\n", i+1, name); err != nil {
			return 1, err
		}
	}

	return 0, nil
}
