// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package intent

import "io"

// Help is printed whenever the arguments cannot be interpreted.
const Help = `Usage: saver <action> <cmd?> <args?>
Actions:

s <name>
used to save command under <name>
Example: saver s curl-example curl https://example.com

l
used to list saved commands
Example: saver l

g <name>
used to get saved command
Example: saver g curl-example

r <name>
used to execute saved command
Example: saver r curl-example

d <name>
used to remove saved command
Example: saver d curl-example


Args:
--saver-db - database folder path (path should be accessible by the program)
Example: saver l --saver-db /tmp/saver/db
`

// WriteHelp writes Help to w.
func WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, Help)
	return err
}
