// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/saver/internal/config"
	"github.com/matt-FFFFFF/saver/internal/intent"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// invoke runs the CLI the way main does and returns what the process would exit with.
func invoke(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	ctx := context.Background()
	err := New(strings.NewReader(""), &stdout, &stderr).Run(ctx, append([]string{"saver"}, args...))
	code := Report(ctx, err, &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// withHome points HOME at a fresh directory and returns it.
func withHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	stubs := gostub.Stub(&config.LookupEnv, func(key string) (string, bool) {
		if key == config.HomeEnvVar {
			return home, true
		}

		return "", false
	})
	t.Cleanup(stubs.Reset)

	return home
}

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX utilities")
	}
}

func TestSaveThenShow(t *testing.T) {
	skipOnWindows(t)

	home := withHome(t)

	res := invoke(t, "s", "n", "echo", "hi")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "\nhi\n", res.stdout, "save runs the command after a blank line")

	raw, err := os.ReadFile(filepath.Join(home, ".saver", "db", "n"))
	require.NoError(t, err)
	assert.Equal(t, "echo hi", string(raw))

	res = invoke(t, "g", "n")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "echo hi\n", res.stdout)
}

func TestSaveWithoutArgumentsStoresTrailingSpace(t *testing.T) {
	skipOnWindows(t)

	home := withHome(t)

	res := invoke(t, "s", "t", "true")
	assert.Equal(t, 0, res.code)

	raw, err := os.ReadFile(filepath.Join(home, ".saver", "db", "t"))
	require.NoError(t, err)
	assert.Equal(t, "true ", string(raw))
}

func TestSaveOverwrites(t *testing.T) {
	skipOnWindows(t)
	withHome(t)

	invoke(t, "s", "n", "echo", "one")
	invoke(t, "s", "n", "echo", "two")

	res := invoke(t, "g", "n")
	assert.Equal(t, "echo two\n", res.stdout)
}

func TestRunReconstructsArguments(t *testing.T) {
	skipOnWindows(t)
	withHome(t)

	res := invoke(t, "s", "n", "printf", "%s", "x")
	require.Equal(t, 0, res.code)
	assert.Equal(t, "\nx", res.stdout)

	res = invoke(t, "r", "n")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "\nx", res.stdout)
}

func TestRunPropagatesChildExitCode(t *testing.T) {
	skipOnWindows(t)
	withHome(t)

	res := invoke(t, "s", "f", "false")
	assert.Equal(t, 1, res.code)

	res = invoke(t, "r", "f")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestSaveUnknownExecutable(t *testing.T) {
	withHome(t)

	res := invoke(t, "s", "bad", "saver-test-no-such-executable")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "\n", res.stdout)
	assert.Contains(t, res.stderr, "saver-test-no-such-executable")

	res = invoke(t, "g", "bad")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "saver-test-no-such-executable \n", res.stdout, "the record is kept even though the spawn failed")
}

func TestList(t *testing.T) {
	skipOnWindows(t)
	withHome(t)

	res := invoke(t, "l")
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)

	invoke(t, "s", "a", "true")
	invoke(t, "s", "b", "true")

	res = invoke(t, "l")
	assert.Equal(t, 0, res.code)

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.ElementsMatch(t, []string{"1) a", "2) b"}, lines)
}

func TestDelete(t *testing.T) {
	skipOnWindows(t)
	withHome(t)

	invoke(t, "s", "n", "true")

	res := invoke(t, "d", "n")
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)

	res = invoke(t, "l")
	assert.Empty(t, res.stdout)
}

func TestNotFound(t *testing.T) {
	home := withHome(t)
	db := home + "/.saver/db"

	for _, action := range []string{"d", "g", "r"} {
		t.Run(action, func(t *testing.T) {
			res := invoke(t, action, "ghost")
			assert.Equal(t, 1, res.code)
			assert.Equal(t, "Command ghost not found in database "+db+"\n", res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestUsageErrorsDoNotTouchFilesystem(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments"},
		{name: "unknown action", args: []string{"x"}},
		{name: "save without name", args: []string{"s"}},
		{name: "save without command", args: []string{"s", "n"}},
		{name: "show with empty name", args: []string{"g", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := withHome(t)

			res := invoke(t, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Equal(t, intent.Help, res.stdout)

			_, err := os.Stat(filepath.Join(home, ".saver"))
			assert.True(t, os.IsNotExist(err), "database directory must not be created")
		})
	}
}

func TestDatabaseOverride(t *testing.T) {
	skipOnWindows(t)

	home := withHome(t)
	custom := filepath.Join(t.TempDir(), "custom", "path")

	res := invoke(t, "l", "--saver-db", custom)
	assert.Equal(t, 0, res.code)

	info, err := os.Stat(custom)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	res = invoke(t, "s", "n", "echo", "hi", "--saver-db", custom)
	assert.Equal(t, 0, res.code)

	_, err = os.Stat(filepath.Join(custom, "n"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(home, ".saver"))
	assert.True(t, os.IsNotExist(err), "default database must stay untouched")
}

func TestMissingHome(t *testing.T) {
	stubs := gostub.Stub(&config.LookupEnv, func(string) (string, bool) {
		return "", false
	})
	defer stubs.Reset()

	dbDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dbDir, "m"), []byte("echo m"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{name: "list", args: []string{"l"}},
		{name: "explicit database directory", args: []string{"l", "--saver-db", dbDir}},
		{name: "save without a name", args: []string{"s"}},
		{name: "show with trailing flag", args: []string{"g", "m", "--saver-db"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := invoke(t, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.stdout)
			assert.Equal(t, "Failed to get home directory\n", res.stderr)
		})
	}

	res := invoke(t, "x")
	assert.Equal(t, 1, res.code, "an unknown action is reported before HOME is consulted")
	assert.Equal(t, intent.Help, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestDatabaseDirectoryCreationFailure(t *testing.T) {
	skipOnWindows(t)
	withHome(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	res := invoke(t, "l", "--saver-db", filepath.Join(blocker, "db"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "not a directory")
	assert.Empty(t, res.stderr)
}
