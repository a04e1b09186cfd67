// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"io"

	"github.com/matt-FFFFFF/saver/internal/commandstore"
	"github.com/matt-FFFFFF/saver/internal/config"
	"github.com/matt-FFFFFF/saver/internal/executor"
	"github.com/matt-FFFFFF/saver/internal/intent"
	"github.com/matt-FFFFFF/saver/internal/store"
	"github.com/urfave/cli/v3"
)

// New returns the root command wired to the given streams.
//
// Flag parsing and the built-in help are disabled: every argument reaches
// the intent parser untouched, which owns the action tokens, the
// --saver-db option and the help text.
func New(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "saver",
		Usage:     "save, list, show, run and delete named commands",
		UsageText: "saver <action> <cmd?> <args?>",
		Description: `Saver keeps named command lines in a database directory
(default $HOME/.saver/db), one file per command, and runs them again on request.`,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		// Exit codes are decided by Report, never by the cli framework.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			argv := append([]string{cmd.Name}, cmd.Args().Slice()...)

			in, err := intent.Parse(argv, config.DatabaseDirectory)
			if err != nil {
				return err
			}

			cs := &commandstore.CommandStore{
				Records: store.New(in.DatabaseDirectory),
				Runner: &executor.Executor{
					Stdin:  stdin,
					Stdout: stdout,
					Stderr: stderr,
				},
				Stdout: stdout,
			}

			code, err := cs.Execute(ctx, in)
			if err != nil {
				return err
			}

			if code != 0 {
				return ExitStatus(code)
			}

			return nil
		},
	}
}
