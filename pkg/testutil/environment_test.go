// pkg/testutil/environment_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Test the isolated environment and recording filesystem helpers

package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironment(t *testing.T) {
	env := NewEnvironment(t)

	assert.Equal(t, env.Home, os.Getenv("HOME"))
	assert.Equal(t, filepath.Join(env.Home, ".dotfiles"), env.Paths.Repository())
	assert.DirExists(t, env.Paths.Source())

	src := env.SourceFile(".vimrc", "set nu")
	assert.Equal(t, filepath.Join(env.Paths.Source(), ".vimrc"), src)

	env.HomeSymlink(".vimrc", src)
	snap := TakeSnapshot(t, env.Home)
	assert.Equal(t, "link:"+src, snap[".vimrc"])
	assert.Equal(t, "file:set nu", snap[filepath.Join(".dotfiles", "home", ".vimrc")])
	assert.Equal(t, "dir", snap["."])
}

func TestRecordingFS(t *testing.T) {
	env := NewEnvironment(t)
	boom := errors.New("boom")
	rec := NewRecordingFS(env.FS).FailOn("symlink", "/nowhere/b", boom)

	target := filepath.Join(env.Home, "a")
	require.NoError(t, rec.WriteFile(target, []byte("x"), 0644))
	assert.ErrorIs(t, rec.Symlink(target, "/nowhere/b"), boom)

	_, err := rec.Stat(target)
	require.NoError(t, err)

	assert.Equal(t, []string{"write " + target, "symlink /nowhere/b"}, rec.Mutations)
}
