// Package assets embeds the stylesheet and scripts every generated site
// links to.
package assets

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed static
var embedded embed.FS

// Directories under the output root that receive assets.
const (
	StylesheetDir = "css"
	ScriptDir     = "js"
)

// Manifest lists the assets a site links to, by file name inside their
// directory.
type Manifest struct {
	Stylesheet string
	Scripts    []string
}

// Default is the built-in asset set.
var Default = Manifest{
	Stylesheet: "default.css",
	Scripts:    []string{"page_effects.js"},
}

// StylesheetPath is the site-relative path of the stylesheet.
func (m Manifest) StylesheetPath() string {
	return path.Join(StylesheetDir, m.Stylesheet)
}

// ScriptPaths are the site-relative paths of the scripts, in load order.
func (m Manifest) ScriptPaths() []string {
	paths := make([]string, len(m.Scripts))
	for i, s := range m.Scripts {
		paths[i] = path.Join(ScriptDir, s)
	}
	return paths
}

// Files lists every site-relative asset path, stylesheet first.
func (m Manifest) Files() []string {
	return append([]string{m.StylesheetPath()}, m.ScriptPaths()...)
}

// FS returns the embedded assets rooted so that "css/default.css" resolves.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err) // static is embedded at compile time
	}
	return sub
}
