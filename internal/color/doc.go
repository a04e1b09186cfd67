// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for console output.
// Whether colour is used is decided once at start-up: NO_COLOR disables it,
// FORCE_COLOR enables it, otherwise it is enabled when stderr is a terminal.
// Stderr is checked because that is where log output is written.
package color
