// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package intent turns the process arguments into a validated Intent.
package intent

import (
	"errors"
	"strings"
)

// DatabaseFlag marks the next argument as the database directory.
const DatabaseFlag = "--saver-db"

// ErrUsage is returned when the arguments do not form a valid invocation.
var ErrUsage = errors.New("invalid usage")

// Resolver returns the default database directory.
// It is called once per valid action token, before the action's own tokens are read.
type Resolver func() (string, error)

// Intent is one parsed invocation. It is built once by Parse and not modified afterwards.
type Intent struct {
	Action            Action
	Name              string   // Record name, empty for List.
	Command           string   // Executable to save, only set for Save.
	Arguments         []string // Remaining arguments in order, without the database flag and its value.
	DatabaseDirectory string
}

// Parse interprets argv, whose first element is the program name.
//
// The action token is read first and the default database directory resolved
// right after it, so a resolver error wins over a missing name or command. The
// action's required tokens follow in fixed positions, each checked as soon as
// it is read. The remaining tokens are scanned once: DatabaseFlag takes the
// following token as the database directory and anything else becomes an
// argument. A trailing DatabaseFlag without a value keeps the default.
func Parse(argv []string, resolve Resolver) (Intent, error) {
	c := &cursor{tokens: argv}
	c.next() // program name

	tok, ok := c.next()
	if !ok {
		return Intent{}, ErrUsage
	}

	action, ok := actionTokens[tok]
	if !ok {
		return Intent{}, ErrUsage
	}

	dir, err := resolve()
	if err != nil {
		return Intent{}, err
	}

	in := Intent{Action: action}

	if action.requiresName() {
		if in.Name, err = c.required(); err != nil {
			return Intent{}, err
		}
	}

	if action.requiresCommand() {
		if in.Command, err = c.required(); err != nil {
			return Intent{}, err
		}
	}

	var pending bool

	for tok, ok := c.next(); ok; tok, ok = c.next() {
		switch {
		case strings.TrimSpace(tok) == DatabaseFlag:
			pending = true
		case pending:
			dir, pending = tok, false
		default:
			in.Arguments = append(in.Arguments, tok)
		}
	}

	in.DatabaseDirectory = dir

	return in, nil
}

// cursor walks the argument vector forwards exactly once.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}

	tok := c.tokens[c.pos]
	c.pos++

	return tok, true
}

// required reads the next token and fails if it is missing or empty.
func (c *cursor) required() (string, error) {
	tok, ok := c.next()
	if !ok || tok == "" {
		return "", ErrUsage
	}

	return tok, nil
}
