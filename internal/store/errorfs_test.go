// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"os"

	"github.com/spf13/afero"
)

// errorFS wraps a filesystem and fails operations on one path.
type errorFS struct {
	afero.Fs
	errorPath string
}

// Create implements afero.Fs.
func (e *errorFS) Create(name string) (afero.File, error) {
	if name == e.errorPath {
		return nil, os.ErrPermission
	}

	return e.Fs.Create(name)
}

// MkdirAll implements afero.Fs.
func (e *errorFS) MkdirAll(path string, perm os.FileMode) error {
	if path == e.errorPath {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrPermission}
	}

	return e.Fs.MkdirAll(path, perm)
}

// Remove implements afero.Fs.
func (e *errorFS) Remove(name string) error {
	if name == e.errorPath {
		return os.ErrPermission
	}

	return e.Fs.Remove(name)
}
