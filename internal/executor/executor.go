// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package executor runs a saved command as a child process in the foreground.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/matt-FFFFFF/saver/internal/ctxlog"
	"github.com/matt-FFFFFF/saver/internal/signalbroker"
)

// ErrCouldNotStartProcess is returned when the process could not be started.
var ErrCouldNotStartProcess = errors.New("could not start process")

// Executor starts child processes connected to its streams.
type Executor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	sigCh  chan os.Signal // Channel to receive signals, allows mocking in test.
}

// Run prints a blank separator line, then runs command with args and waits for it.
// Bare command names are looked up in PATH.
//
// The returned code is the child's exit code, or 0 when the child ended
// without one (killed by a signal). The error is only set when the child
// could not be started or waited for.
func (e *Executor) Run(ctx context.Context, command string, args []string) (int, error) {
	logger := ctxlog.Logger(ctx).With("command", command)

	if _, err := fmt.Fprintln(e.Stdout); err != nil {
		return 1, err
	}

	c := exec.Command(command, args...)
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	sigCh := e.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(sigCh)
	}

	logger.Debug("starting process", "args", args)

	if err := c.Start(); err != nil {
		return 1, fmt.Errorf("%w: %w", ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", c.Process.Pid)

	done := make(chan struct{})

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		signalbroker.Relay(ctx, sigCh, c.Process, done)
	}()

	err := c.Wait()

	close(done)
	wg.Wait()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		logger.Debug("wait failed", "error", err)

		if c.ProcessState == nil {
			return 1, err
		}
	}

	code := c.ProcessState.ExitCode()
	if code < 0 {
		logger.Debug("process ended without exit code", "state", c.ProcessState.String())

		code = 0
	}

	logger.Debug("process finished", "exitCode", code)

	return code, nil
}
