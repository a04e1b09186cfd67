// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package intent

// Action is the operation selected by the first argument.
type Action int

// Actions, in the order they appear in the help text.
const (
	Save Action = iota
	List
	Show
	Run
	Delete
)

var actionTokens = map[string]Action{
	"s": Save,
	"l": List,
	"g": Show,
	"r": Run,
	"d": Delete,
}

// String returns the action's name.
func (a Action) String() string {
	switch a {
	case Save:
		return "save"
	case List:
		return "list"
	case Show:
		return "show"
	case Run:
		return "run"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// requiresName reports whether the action takes a record name.
func (a Action) requiresName() bool {
	return a != List
}

// requiresCommand reports whether the action takes a command after the name.
func (a Action) requiresCommand() bool {
	return a == Save
}
