// Package textproc holds the text helpers the page composer applies to
// documentation strings: URL linkification, summaries and title casing.
//
// Escaping is not done here. Text ends up in html text nodes and the markup
// serializer escapes it exactly once.
package textproc

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// urlPattern matches bare http, https, ftp and file URLs. The final character
// may not be sentence punctuation, so "see http://x.org." links "http://x.org".
var urlPattern = regexp.MustCompile(`(?:https?|ftp|file)://[-A-Za-z0-9+()&@#/%?=~_|!:,.;]*[-A-Za-z0-9+()&@#/%=~_|]`)

// Linkify splits s into text nodes and <a> elements for every bare URL.
// It returns nil for an empty string.
func Linkify(s string) []*html.Node {
	if s == "" {
		return nil
	}
	var nodes []*html.Node
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			nodes = append(nodes, &html.Node{Type: html.TextNode, Data: s[last:loc[0]]})
		}
		href := s[loc[0]:loc[1]]
		a := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.A,
			Data:     "a",
			Attr:     []html.Attribute{{Key: "href", Val: href}},
		}
		a.AppendChild(&html.Node{Type: html.TextNode, Data: href})
		nodes = append(nodes, a)
		last = loc[1]
	}
	if last < len(s) {
		nodes = append(nodes, &html.Node{Type: html.TextNode, Data: s[last:]})
	}
	return nodes
}

var markdown = goldmark.New()

// Summarize returns the leading part of a doc string: everything before the
// first form feed, reduced to the first paragraph. When the text does not open
// with a paragraph it is cut at the first blank line instead.
func Summarize(doc string) string {
	doc = strings.TrimSpace(doc)
	if i := strings.IndexByte(doc, '\f'); i >= 0 {
		doc = strings.TrimSpace(doc[:i])
	}
	if doc == "" {
		return ""
	}

	source := []byte(doc)
	root := markdown.Parser().Parse(text.NewReader(source))
	if first := root.FirstChild(); first != nil && first.Kind() == gmast.KindParagraph {
		if lines := first.Lines(); lines.Len() > 0 {
			start := lines.At(0).Start
			stop := lines.At(lines.Len() - 1).Stop
			return string(bytes.TrimSpace(source[start:stop]))
		}
	}

	normalized := strings.ReplaceAll(doc, "\r\n", "\n")
	if i := strings.Index(normalized, "\n\n"); i >= 0 {
		return strings.TrimSpace(normalized[:i])
	}
	return normalized
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
