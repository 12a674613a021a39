// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory fstest.MapFS
// PURPOSE: Test topic discovery, lookup and the help command override

package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"option-pretend.txt": {Data: []byte("Information about pretend mode")},
		"manifest.md":        {Data: []byte("# Manifest\n\nSubtree manifest format")},
		"nested/config.txxt": {Data: []byte("Configuration Guide")},
		"ignore.json":        {Data: []byte("This should be ignored")},
		"nested/safety.txt":  {Data: []byte("Safety rules")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"manifest", "option-pretend", "safety"}, tm.ListTopics())
		topic, ok := tm.GetTopic("manifest")
		require.True(t, ok)
		assert.Equal(t, "# Manifest\n\nSubtree manifest format", topic.Content)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("nil fs", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"pretend", "--pretend", "-pretend", "option-pretend"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-pretend", topic.Name)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestWriteTopicList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteTopicList(&buf, "dotlink")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  manifest\n  safety\n")
	assert.Contains(t, out, "Option topics:\n  --pretend\n")
	assert.Contains(t, out, "Use 'dotlink help <topic>'")

	buf.Reset()
	New(nil).WriteTopicList(&buf, "dotlink")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "dotlink", Short: "root short"}
	root.AddCommand(&cobra.Command{Use: "link", Short: "link short", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestInitialize_HelpCommand(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	var buf bytes.Buffer
	root.SetOut(&buf)

	root.SetArgs([]string{"help", "manifest"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "# Manifest\n\nSubtree manifest format\n", buf.String())

	buf.Reset()
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Available help topics:")

	buf.Reset()
	root.SetArgs([]string{"help", "link"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "link short")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x\n", PlainRenderer{}.Render("# x", ".md"))
	assert.Equal(t, "already\n", PlainRenderer{}.Render("already\n", ".txt"))
	assert.Equal(t, "", PlainRenderer{}.Render("", ".txt"))
}

func TestRendererFunc(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{
		Renderer: RendererFunc(func(content, ext string) string { return ext + ":" + content }),
	})
	require.NoError(t, tm.scanTopics())

	topic, ok := tm.GetTopic("safety")
	require.True(t, ok)

	var buf bytes.Buffer
	tm.RenderTopic(&buf, topic)
	assert.Equal(t, ".txt:Safety rules", buf.String())
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", NewGlamourRenderer().Render("plain text", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 60}
	out := r.Render("# Title\n\nBody text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text")
}
