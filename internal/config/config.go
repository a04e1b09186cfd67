// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"os"
)

const (
	// HomeEnvVar holds the user's home directory.
	HomeEnvVar = "HOME"
	// DatabaseSuffix is appended to the home directory to form the default database directory.
	DatabaseSuffix = "/.saver/db"
)

// ErrNoHomeDirectory is returned when HomeEnvVar is not set.
var ErrNoHomeDirectory = errors.New("Failed to get home directory") //nolint:staticcheck

// LookupEnv reads the environment, stubbed in tests.
var LookupEnv = os.LookupEnv

// DatabaseDirectory returns the default database directory, $HOME/.saver/db.
// An empty but set HOME yields "/.saver/db".
func DatabaseDirectory() (string, error) {
	home, ok := LookupEnv(HomeEnvVar)
	if !ok {
		return "", ErrNoHomeDirectory
	}

	return home + DatabaseSuffix, nil
}
