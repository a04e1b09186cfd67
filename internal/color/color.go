// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	escape     = "\033["
	reset      = "\033[0m"
)

// Code is an SGR parameter understood by ANSI terminals.
type Code int

// Colours used by the log handler, one per level plus the message text.
const (
	FgRed       Code = 31
	FgYellow    Code = 33
	FgBlue      Code = 34
	FgCyan      Code = 36
	FgWhite     Code = 37
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled = isColorCapable()

// Enabled reports whether colour output was enabled at start-up.
func Enabled() bool {
	return enabled
}

// Wrap applies the codes to str and appends the reset sequence.
// It does not consult Enabled; callers decide whether to paint.
func Wrap(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	params := make([]string, len(codes))
	for i, c := range codes {
		params[i] = strconv.Itoa(int(c))
	}

	return escape + strings.Join(params, ";") + "m" + str + reset
}

func isColorCapable() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stderr.Fd()))
}
