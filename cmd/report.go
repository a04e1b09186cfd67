// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/saver/internal/config"
	"github.com/matt-FFFFFF/saver/internal/ctxlog"
	"github.com/matt-FFFFFF/saver/internal/executor"
	"github.com/matt-FFFFFF/saver/internal/intent"
)

// ExitStatus carries a child's non-zero exit code out of the command action.
type ExitStatus int

func (e ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// Report prints err to the stream its kind belongs on and returns the process exit status.
//
// Usage errors print the help text. A missing home directory and a command
// that cannot be started go to stderr, so scripts can tell execution
// problems from usage problems. Everything else goes to stdout.
func Report(ctx context.Context, err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var status ExitStatus
	if errors.As(err, &status) {
		ctxlog.Debug(ctx, "child exited", "status", int(status))
		return int(status)
	}

	ctxlog.Debug(ctx, "command failed", "error", err)

	switch {
	case errors.Is(err, intent.ErrUsage):
		_ = intent.WriteHelp(stdout)
	case errors.Is(err, config.ErrNoHomeDirectory), errors.Is(err, executor.ErrCouldNotStartProcess):
		fmt.Fprintln(stderr, err) //nolint:errcheck
	default:
		fmt.Fprintln(stdout, err) //nolint:errcheck
	}

	return 1
}
