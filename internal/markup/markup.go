// Package markup builds pages as golang.org/x/net/html node trees and
// serializes them once.
//
// Text passed to Text is stored verbatim and escaped by Render; nothing in
// this package accepts pre-rendered HTML.
package markup

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr builds an attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func ID(id string) html.Attribute       { return Attr("id", id) }
func Class(class string) html.Attribute { return Attr("class", class) }
func Href(href string) html.Attribute   { return Attr("href", href) }

// Elem creates an element with attributes and children. Nil children are
// skipped so optional blocks can be passed inline.
func Elem(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	Append(n, children...)
	return n
}

// E is Elem for attribute-less elements.
func E(a atom.Atom, children ...*html.Node) *html.Node {
	return Elem(a, nil, children...)
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Link creates <a href=...> around children.
func Link(href string, children ...*html.Node) *html.Node {
	return Elem(atom.A, []html.Attribute{Href(href)}, children...)
}

// Append adds children to parent, skipping nils.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

// Document wraps an <html> element in a document with an HTML5 doctype.
func Document(root *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc
}

// Render serializes n to w followed by a trailing newline.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Bytes renders n into a new buffer.
func Bytes(n *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
