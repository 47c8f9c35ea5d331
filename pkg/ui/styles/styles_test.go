package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Success", "Error", "Header", "Material", "Stage", "FilePath", "Muted"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "missing style %s", name)
	}

	assert.True(t, GetStyle("Success").GetBold())
	assert.True(t, GetStyle("Muted").GetItalic())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	err := LoadStylesFromData([]byte("styles: [unbalanced"))
	assert.Error(t, err)

	require.NoError(t, LoadStylesFromData(embeddedStyles))
}

func TestGetStyle_UnknownIsPlain(t *testing.T) {
	assert.Equal(t, "found!", GetStyle("NoSuchStyle").Render("found!"))
}
