// Package page composes the index page and the per-namespace pages of a
// documentation site as html node trees.
//
// Composition is pure: the same project always yields the same tree, and
// nothing here touches the file system.
package page

import (
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/nsdoc/internal/assets"
	"git.home.luguber.info/inful/nsdoc/internal/textproc"
)

// Composer builds page trees. The zero value is not usable; call NewComposer.
type Composer struct {
	assets    assets.Manifest
	linkify   func(string) []*html.Node
	summarize func(string) string
}

// Option configures a Composer.
type Option func(*Composer)

// WithAssets sets the stylesheet and scripts linked from every page head.
func WithAssets(m assets.Manifest) Option {
	return func(c *Composer) { c.assets = m }
}

// WithLinkify replaces the function that turns doc text into nodes.
func WithLinkify(fn func(string) []*html.Node) Option {
	return func(c *Composer) { c.linkify = fn }
}

// WithSummarize replaces the function that shortens namespace docs on the
// index page.
func WithSummarize(fn func(string) string) Option {
	return func(c *Composer) { c.summarize = fn }
}

// NewComposer returns a Composer using the embedded assets and textproc.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		assets:    assets.Default,
		linkify:   textproc.Linkify,
		summarize: textproc.Summarize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
