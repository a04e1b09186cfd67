// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/matt-FFFFFF/saver/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	// sevenFiveFive is the mode of created database directories.
	sevenFiveFive = 0o755
)

// FsFactory returns the filesystem used by New.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Store manages the records in one database directory.
type Store struct {
	fs  afero.Fs
	dir string
}

// New returns a Store rooted at dir on the filesystem from FsFactory.
func New(dir string) *Store {
	return &Store{
		fs:  FsFactory(),
		dir: dir,
	}
}

// EnsureDirectory creates the database directory and its parents unless it already is a directory.
func (s *Store) EnsureDirectory(ctx context.Context) error {
	if ok, err := afero.IsDir(s.fs, s.dir); err == nil && ok {
		return nil
	}

	ctxlog.Debug(ctx, "creating database directory", "dir", s.dir)

	if err := s.fs.MkdirAll(s.dir, sevenFiveFive); err != nil {
		return &DirectoryError{Directory: s.dir, Err: err}
	}

	return nil
}

// Save creates or truncates the record name and writes command and args to it.
// The cause of a failure is logged, the returned error is always ErrSave.
func (s *Store) Save(ctx context.Context, name, command string, args []string) error {
	path := s.path(name)

	f, err := s.fs.Create(path)
	if err != nil {
		ctxlog.Debug(ctx, "create record failed", "path", path, "error", err)
		return ErrSave
	}

	_, werr := f.WriteString(FormatRecord(command, args))
	cerr := f.Close()

	if err := errors.Join(werr, cerr); err != nil {
		ctxlog.Debug(ctx, "write record failed", "path", path, "error", err)
		return ErrSave
	}

	ctxlog.Debug(ctx, "record saved", "path", path)

	return nil
}

// Read returns the content of the record name.
func (s *Store) Read(ctx context.Context, name string) (string, error) {
	path := s.path(name)

	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		ctxlog.Debug(ctx, "read record failed", "path", path, "error", err)
		return "", &NotFoundError{Name: name, Directory: s.dir, Err: err}
	}

	return string(b), nil
}

// Delete removes the record name.
func (s *Store) Delete(ctx context.Context, name string) error {
	path := s.path(name)

	if err := s.fs.Remove(path); err != nil {
		ctxlog.Debug(ctx, "remove record failed", "path", path, "error", err)
		return &NotFoundError{Name: name, Directory: s.dir, Err: err}
	}

	return nil
}

// List returns the names of all entries in the database directory in enumeration order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, errors.Join(ErrList, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	ctxlog.Debug(ctx, "listed records", "dir", s.dir, "count", len(names))

	return names, nil
}

// path appends name to the directory verbatim. The name is not cleaned, so
// "a/../b" only resolves when a exists.
func (s *Store) path(name string) string {
	return s.dir + string(filepath.Separator) + name
}
