// pkg/commands/status/status_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (testutil.Environment)
// PURPOSE: Test that status classifies entries without changing anything

package status_test

import (
	"testing"

	"github.com/arthur-debert/dotlink/pkg/commands/status"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus(t *testing.T) {
	env := testutil.NewEnvironment(t)
	src := env.SourceFile(".vimrc", "managed")
	env.SourceFile(".bashrc", "managed")
	env.SourceFile(".zshrc", "managed")
	env.HomeSymlink(".vimrc", src)
	env.HomeFile(".bashrc", "local")

	before := testutil.TakeSnapshot(t, env.Root)
	rec := testutil.NewRecordingFS(env.FS)

	report, err := status.GetStatus(status.Options{Paths: env.Paths, FS: rec})
	require.NoError(t, err)
	assert.Empty(t, rec.Mutations)
	assert.Equal(t, before, testutil.TakeSnapshot(t, env.Root))

	states := map[string]types.LinkState{}
	for _, e := range report.Entries {
		states[e.Name] = e.State
		assert.Empty(t, e.Action)
	}
	assert.Equal(t, map[string]types.LinkState{
		".vimrc":  types.StateLinked,
		".bashrc": types.StateOccupied,
		".zshrc":  types.StateAbsent,
	}, states)
	assert.Equal(t, "status", report.Command)
}
