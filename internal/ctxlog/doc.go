// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger on a context.Context.
//
// The default logger uses a pretty console handler writing to stderr, so log
// lines never interleave with command output on stdout. The level is read
// once from <EXECUTABLE>_LOG_LEVEL (SAVER_LOG_LEVEL for the saver binary) and
// defaults to WARN.
package ctxlog
