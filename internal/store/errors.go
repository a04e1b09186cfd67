// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by *NotFoundError.
	ErrNotFound = errors.New("command not found")
	// ErrSave is returned when a record cannot be created or written.
	ErrSave = errors.New("Failed to save cmd") //nolint:staticcheck
	// ErrCreateDirectory is matched by *DirectoryError.
	ErrCreateDirectory = errors.New("failed to create database directory")
	// ErrList is returned when the database directory cannot be enumerated.
	ErrList = errors.New("failed to list database directory")
)

// NotFoundError reports a record that could not be read or removed.
type NotFoundError struct {
	Name      string
	Directory string
	Err       error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Command %s not found in database %s", e.Name, e.Directory)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// DirectoryError reports a database directory that could not be created.
// Its message is the text of the underlying error only.
type DirectoryError struct {
	Directory string
	Err       error
}

func (e *DirectoryError) Error() string {
	return e.Err.Error()
}

// Is makes errors.Is(err, ErrCreateDirectory) hold.
func (e *DirectoryError) Is(target error) bool {
	return target == ErrCreateDirectory
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}
