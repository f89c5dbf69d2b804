// Package link derives the file names, element ids and URIs that cross-link
// generated pages.
package link

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/nsdoc/internal/model"
)

// VarIDPrefix keeps var anchors apart from the fixed ids on a page.
const VarIDPrefix = "var-"

// IndexFileName is the site entry page.
const IndexFileName = "index.html"

// NamespaceFileName is the page name of a namespace, e.g. "a.b.html".
func NamespaceFileName(ns *model.Namespace) string {
	return ns.Name + ".html"
}

// NamespaceFilePath joins NamespaceFileName onto outputDir.
func NamespaceFilePath(outputDir string, ns *model.Namespace) string {
	return filepath.Join(outputDir, NamespaceFileName(ns))
}

// VarAnchorID returns the id of a var's section: the query-escaped name with
// every '%' turned into '.', prefixed by VarIDPrefix.
//
// A literal '.' is escaped as well, so every '.' in the result starts a
// two-digit escape and distinct names never share an id.
func VarAnchorID(v *model.Var) string {
	escaped := strings.ReplaceAll(url.QueryEscape(v.Name), ".", "%2E")
	return VarIDPrefix + strings.ReplaceAll(escaped, "%", ".")
}

// VarAnchor is the in-page fragment reference to a var section.
func VarAnchor(v *model.Var) string {
	return "#" + VarAnchorID(v)
}

// VarURI links to a var section from any page of the site.
func VarURI(ns *model.Namespace, v *model.Var) string {
	return NamespaceFileName(ns) + VarAnchor(v)
}

// VarSourceURI returns the source location of v, or false when no source base
// URI is configured or v has no source path. The "#<prefix><line>" fragment is
// added only when lineAnchorPrefix is set and the line is known.
func VarSourceURI(sourceURI string, v *model.Var, lineAnchorPrefix string) (string, bool) {
	if sourceURI == "" || v.Path == "" {
		return "", false
	}
	uri := sourceURI + filepath.ToSlash(v.Path)
	if lineAnchorPrefix != "" && v.Line > 0 {
		uri += "#" + lineAnchorPrefix + strconv.Itoa(v.Line)
	}
	return uri, true
}
