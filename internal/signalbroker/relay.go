// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/saver/internal/ctxlog"
)

// Signaler is implemented by *os.Process.
type Signaler interface {
	Signal(sig os.Signal) error
}

// Relay forwards every signal received on sigCh to target.
// It returns when done is closed or sigCh is closed.
func Relay(ctx context.Context, sigCh <-chan os.Signal, target Signaler, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return

		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			ctxlog.Info(ctx, "relay", "detail", "forwarding signal to child", "signal", sig.String())

			if err := target.Signal(sig); err != nil {
				if errors.Is(err, os.ErrProcessDone) {
					ctxlog.Debug(ctx, "relay", "detail", "child already exited", "signal", sig.String())
					continue
				}

				ctxlog.Warn(ctx, "relay", "detail", "failed to forward signal", "signal", sig.String(), "error", err)
			}
		}
	}
}
