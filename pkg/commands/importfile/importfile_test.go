// pkg/commands/importfile/importfile_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (testutil.Environment)
// PURPOSE: Test import preconditions and the move-then-link effect

package importfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/commands/importfile"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFile_RegularFile(t *testing.T) {
	env := testutil.NewEnvironment(t)
	home := env.HomeFile(".vimrc", "set number")

	result, err := importfile.ImportFile(importfile.Options{Paths: env.Paths, FS: env.FS, Name: ".vimrc"})
	require.NoError(t, err)

	repo := env.Paths.SourceEntry(".vimrc")
	assert.Equal(t, ".vimrc", result.Name)
	assert.Equal(t, home, result.HomePath)
	assert.Equal(t, repo, result.RepoPath)

	data, err := os.ReadFile(repo)
	require.NoError(t, err)
	assert.Equal(t, "set number", string(data))

	target, err := os.Readlink(home)
	require.NoError(t, err)
	assert.Equal(t, repo, target)
}

func TestImportFile_NestedName(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.HomeFile(".config/app.toml", "x = 1")

	result, err := importfile.ImportFile(importfile.Options{Paths: env.Paths, FS: env.FS, Name: ".config/app.toml"})
	require.NoError(t, err)
	assert.FileExists(t, result.RepoPath)
}

func TestImportFile_Preconditions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(env *testutil.Environment)
		file  string
		code  errors.ErrorCode
	}{
		{
			name:  "empty name",
			setup: func(env *testutil.Environment) {},
			file:  "",
			code:  errors.ErrValidation,
		},
		{
			name:  "missing file",
			setup: func(env *testutil.Environment) {},
			file:  ".vimrc",
			code:  errors.ErrPrecondition,
		},
		{
			name: "directory",
			setup: func(env *testutil.Environment) {
				env.HomeDir(".vim")
			},
			file: ".vim",
			code: errors.ErrPrecondition,
		},
		{
			name: "symlink to regular file",
			setup: func(env *testutil.Environment) {
				target := env.HomeFile("real-vimrc", "x")
				env.HomeSymlink(".vimrc", target)
			},
			file: ".vimrc",
			code: errors.ErrPrecondition,
		},
		{
			name: "dangling symlink",
			setup: func(env *testutil.Environment) {
				env.HomeSymlink(".vimrc", "/nowhere")
			},
			file: ".vimrc",
			code: errors.ErrPrecondition,
		},
		{
			name: "parent traversal",
			setup: func(env *testutil.Environment) {
				env.HomeFile(".vimrc", "local")
				require.NoError(t, os.WriteFile(filepath.Join(env.Root, "outside.txt"), []byte("x"), 0644))
			},
			file: "../outside.txt",
			code: errors.ErrValidation,
		},
		{
			name: "traversal hidden by cleaning",
			setup: func(env *testutil.Environment) {
				require.NoError(t, os.WriteFile(filepath.Join(env.Root, "outside.txt"), []byte("x"), 0644))
			},
			file: ".config/../../outside.txt",
			code: errors.ErrValidation,
		},
		{
			name:  "absolute path",
			setup: func(env *testutil.Environment) {},
			file:  "/etc/hostname",
			code:  errors.ErrValidation,
		},
		{
			name:  "home root itself",
			setup: func(env *testutil.Environment) {},
			file:  "./",
			code:  errors.ErrValidation,
		},
		{
			name: "destination exists",
			setup: func(env *testutil.Environment) {
				env.HomeFile(".vimrc", "local")
				env.SourceFile(".vimrc", "managed")
			},
			file: ".vimrc",
			code: errors.ErrPrecondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewEnvironment(t)
			tt.setup(env)
			before := testutil.TakeSnapshot(t, env.Root)
			rec := testutil.NewRecordingFS(env.FS)

			_, err := importfile.ImportFile(importfile.Options{Paths: env.Paths, FS: rec, Name: tt.file})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)

			assert.Empty(t, rec.Mutations)
			assert.Equal(t, before, testutil.TakeSnapshot(t, env.Root))
		})
	}
}
