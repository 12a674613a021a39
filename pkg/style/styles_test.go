// pkg/style/styles_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test loading of the embedded and custom style definitions

package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoaded(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Info", "Muted", "Path", "Name", "Output"} {
		assert.True(t, HasStyle(name), name)
	}
	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("Path").GetItalic())
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	data := []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Accent:
    underline: true
    foreground: accent
`)
	require.NoError(t, LoadStylesFromData(data))
	assert.True(t, HasStyle("Accent"))
	assert.False(t, HasStyle("Error"))
	assert.True(t, GetStyle("Accent").GetUnderline())
	assert.False(t, GetStyle("Missing").GetBold())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	err := LoadStylesFromData([]byte("styles: [unterminated"))
	assert.Error(t, err)
	assert.True(t, HasStyle("Error"))
}
