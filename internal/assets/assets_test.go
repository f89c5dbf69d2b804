package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestIsEmbedded(t *testing.T) {
	files := Default.Files()
	assert.Equal(t, []string{"css/default.css", "js/page_effects.js"}, files)

	for _, f := range files {
		data, err := fs.ReadFile(FS(), f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, data, f)
	}
}

func TestManifestPaths(t *testing.T) {
	m := Manifest{Stylesheet: "site.css", Scripts: []string{"a.js", "b.js"}}
	assert.Equal(t, "css/site.css", m.StylesheetPath())
	assert.Equal(t, []string{"js/a.js", "js/b.js"}, m.ScriptPaths())
}
