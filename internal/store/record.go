// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import "strings"

const separator = " "

// FormatRecord renders the on-disk content of a record.
// The separator after the command is unconditional, so a command without
// arguments is stored with a trailing space.
func FormatRecord(command string, args []string) string {
	return command + separator + strings.Join(args, separator)
}

// SplitRecord reverses FormatRecord as far as the format allows: the content is
// split on single spaces and each piece trimmed. Empty pieces are kept, so
// "echo " yields the command "echo" and one empty argument.
func SplitRecord(content string) (string, []string) {
	pieces := strings.Split(content, separator)
	for i := range pieces {
		pieces[i] = strings.TrimSpace(pieces[i])
	}

	return pieces[0], pieces[1:]
}
