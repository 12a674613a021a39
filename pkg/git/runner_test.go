// pkg/git/runner_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: /bin/sh as a stand-in binary
// PURPOSE: Test output capture and error mapping of the exec runner and the fake

package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable that behaves like a tiny git
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakegit")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestExecRunner_CapturesCombinedOutput(t *testing.T) {
	bin := writeScript(t, `echo "out $1"; echo "err $2" 1>&2`)
	dir := t.TempDir()

	res, err := NewExecRunner(bin).Run(context.Background(), dir, "pull", "--rebase")
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Output, "out pull")
	assert.Contains(t, res.Output, "err --rebase")
	assert.Equal(t, []string{"pull", "--rebase"}, res.Args)
}

func TestExecRunner_RunsInDir(t *testing.T) {
	bin := writeScript(t, `pwd`)
	dir := t.TempDir()

	res, err := NewExecRunner(bin).Run(context.Background(), dir, "status")
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, res.Output, resolved)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	bin := writeScript(t, `echo "fatal: not a git repository"; exit 128`)

	res, err := NewExecRunner(bin).Run(context.Background(), t.TempDir(), "pull")
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
	assert.Equal(t, 128, res.ExitCode)
	assert.Contains(t, res.Output, "not a git repository")
	assert.Contains(t, Output(err), "not a git repository")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner(filepath.Join(t.TempDir(), "nope")).Run(context.Background(), t.TempDir(), "pull")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
}

func TestFakeRunner(t *testing.T) {
	fake := NewFakeRunner().
		Respond("pull", "Already up to date.").
		Fail("subtree pull --prefix=broken", "fatal: boom")

	res, err := fake.Run(context.Background(), "/repo", "pull", "--rebase", "origin")
	require.NoError(t, err)
	assert.Equal(t, "Already up to date.", res.Output)

	_, err = fake.Run(context.Background(), "/repo", "subtree", "pull", "--prefix=broken", "url", "master", "--squash")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
	assert.Equal(t, "fatal: boom", Output(err))

	res, err = fake.Run(context.Background(), "/repo", "status")
	require.NoError(t, err)
	assert.Empty(t, res.Output)

	assert.Equal(t, []string{
		"pull --rebase origin",
		"subtree pull --prefix=broken url master --squash",
		"status",
	}, fake.CommandLines())
	assert.Equal(t, "/repo", fake.Calls[0].Dir)
}
