// pkg/commands/unlink/unlink_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (testutil.Environment)
// PURPOSE: Test that unlink only removes symlinks pointing at source entries

package unlink_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/commands/link"
	"github.com/arthur-debert/dotlink/pkg/commands/unlink"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlinkEntries_RemovesThenSkips(t *testing.T) {
	env := testutil.NewEnvironment(t)
	src := env.SourceFile(".bashrc", "managed")
	env.HomeSymlink(".bashrc", src)

	report, err := unlink.UnlinkEntries(unlink.Options{Paths: env.Paths, FS: env.FS})
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, types.ActionRemoved, report.Entries[0].Action)
	assert.Equal(t, "unlink", report.Command)

	_, err = os.Lstat(env.Paths.HomeFile(".bashrc"))
	assert.True(t, os.IsNotExist(err))

	report, err = unlink.UnlinkEntries(unlink.Options{Paths: env.Paths, FS: env.FS})
	require.NoError(t, err)
	assert.Equal(t, types.ActionSkipped, report.Entries[0].Action)
	assert.Equal(t, types.StateAbsent, report.Entries[0].State)
}

func TestUnlinkEntries_LeavesUnrelatedEntries(t *testing.T) {
	env := testutil.NewEnvironment(t)
	src := env.SourceFile(".vimrc", "managed")
	env.SourceFile(".bashrc", "managed")
	env.SourceFile(".zshrc", "managed")
	env.SourceDir(".config")
	env.SourceFile(".gitconfig", "managed")

	env.HomeFile(".bashrc", "local")
	env.HomeSymlink(".zshrc", "/etc/zshrc")
	env.HomeDir(".config")
	env.HomeSymlink(".gitconfig", "/nowhere")
	env.HomeSymlink("unrelated", src)

	before := testutil.TakeSnapshot(t, env.Home)

	report, err := unlink.UnlinkEntries(unlink.Options{Paths: env.Paths, FS: env.FS})
	require.NoError(t, err)

	assert.Equal(t, len(report.Entries), report.Count(types.ActionSkipped))
	assert.Equal(t, before, testutil.TakeSnapshot(t, env.Home))
}

func TestUnlinkEntries_Pretend(t *testing.T) {
	env := testutil.NewEnvironment(t)
	src := env.SourceFile(".bashrc", "managed")
	env.SourceFile(".inputrc", "managed")
	env.HomeSymlink(".bashrc", src)

	before := testutil.TakeSnapshot(t, env.Root)
	rec := testutil.NewRecordingFS(env.FS)

	report, err := unlink.UnlinkEntries(unlink.Options{Paths: env.Paths, FS: rec, Pretend: true})
	require.NoError(t, err)

	assert.Empty(t, rec.Mutations)
	assert.Equal(t, before, testutil.TakeSnapshot(t, env.Root))
	assert.True(t, report.Pretend)
	assert.Equal(t, 1, report.Count(types.ActionRemoved))
	assert.Equal(t, 1, report.Count(types.ActionSkipped))
}

func TestLinkUnlinkRoundTrip(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".bashrc", "managed")
	env.SourceFile(".vimrc", "managed")
	env.SourceDir(".config")
	env.HomeFile(".profile", "untouched")

	before := testutil.TakeSnapshot(t, env.Home)

	linked, err := link.LinkEntries(link.Options{Paths: env.Paths, FS: env.FS})
	require.NoError(t, err)
	assert.Equal(t, 3, linked.Count(types.ActionLinked))

	unlinked, err := unlink.UnlinkEntries(unlink.Options{Paths: env.Paths, FS: env.FS})
	require.NoError(t, err)
	assert.Equal(t, 3, unlinked.Count(types.ActionRemoved))

	assert.Equal(t, before, testutil.TakeSnapshot(t, env.Home))
}
