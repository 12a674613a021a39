// pkg/commands/clone/clone_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: git.FakeRunner, real filesystem for the target check
// PURPOSE: Test clone validation and the git invocation it issues

package clone_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/commands/clone"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/git"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	env := testutil.NewEnvironment(t)
	repo := env.Paths.Repository()
	require.NoError(t, env.FS.RemoveAll(repo))

	fake := git.NewFakeRunner().Respond("clone", "Cloning into '.dotfiles'...")

	result, err := clone.Clone(context.Background(), clone.Options{
		Paths: env.Paths, FS: env.FS, Git: fake, URL: "https://example.com/dots.git",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"clone https://example.com/dots.git " + repo}, fake.CommandLines())
	assert.Equal(t, filepath.Dir(repo), fake.Calls[0].Dir)
	assert.Equal(t, repo, result.Repository)
	assert.Equal(t, "Cloning into '.dotfiles'...", result.Output)
}

func TestClone_Errors(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		require.NoError(t, env.FS.RemoveAll(env.Paths.Repository()))
		fake := git.NewFakeRunner()

		_, err := clone.Clone(context.Background(), clone.Options{Paths: env.Paths, FS: env.FS, Git: fake})
		assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
		assert.Empty(t, fake.Calls)
	})

	t.Run("repository exists", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		fake := git.NewFakeRunner()

		_, err := clone.Clone(context.Background(), clone.Options{
			Paths: env.Paths, FS: env.FS, Git: fake, URL: "https://example.com/dots.git",
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrPrecondition))
		assert.Empty(t, fake.Calls)
	})

	t.Run("git fails", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		require.NoError(t, env.FS.RemoveAll(env.Paths.Repository()))
		fake := git.NewFakeRunner().Fail("clone", "fatal: repository not found")

		_, err := clone.Clone(context.Background(), clone.Options{
			Paths: env.Paths, FS: env.FS, Git: fake, URL: "https://example.com/missing.git",
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
		assert.Equal(t, "fatal: repository not found", git.Output(err))
	})
}
