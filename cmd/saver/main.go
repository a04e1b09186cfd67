// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the saver command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/saver"
	"github.com/matt-FFFFFF/saver/cmd"
	"github.com/matt-FFFFFF/saver/internal/ctxlog"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	ctxlog.Debug(ctx, "starting", "version", saver.Version, "commit", saver.Commit)

	err := cmd.New(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args)

	os.Exit(cmd.Report(ctx, err, os.Stdout, os.Stderr))
}
