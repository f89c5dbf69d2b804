package page

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/nsdoc/internal/hierarchy"
	"git.home.luguber.info/inful/nsdoc/internal/link"
	"git.home.luguber.info/inful/nsdoc/internal/markup"
	"git.home.luguber.info/inful/nsdoc/internal/model"
	"git.home.luguber.info/inful/nsdoc/internal/textproc"
)

// ProjectTitle is "<Name> <version> API documentation".
func ProjectTitle(p *model.Project) string {
	title := textproc.Capitalize(p.Name)
	if p.Version != "" {
		title += " " + p.Version
	}
	return title + " API documentation"
}

func (c *Composer) document(title string, body ...*html.Node) *html.Node {
	head := markup.E(atom.Head,
		markup.Elem(atom.Meta, []html.Attribute{markup.Attr("charset", "UTF-8")}),
		markup.E(atom.Title, markup.Text(title)),
		markup.Elem(atom.Link, []html.Attribute{
			markup.Attr("rel", "stylesheet"),
			markup.Attr("type", "text/css"),
			markup.Href(c.assets.StylesheetPath()),
		}),
	)
	for _, src := range c.assets.ScriptPaths() {
		markup.Append(head, markup.Elem(atom.Script, []html.Attribute{markup.Attr("type", "text/javascript"), markup.Attr("src", src)}))
	}
	return markup.Document(markup.Elem(atom.Html, []html.Attribute{markup.Attr("lang", "en")},
		head,
		markup.E(atom.Body, body...),
	))
}

func header(p *model.Project) *html.Node {
	return markup.Elem(atom.Div, []html.Attribute{markup.ID("header")},
		markup.E(atom.H1, markup.Link(link.IndexFileName, markup.Text(ProjectTitle(p)))),
	)
}

// namespacesMenu renders the navigation tree. current may be nil.
func namespacesMenu(p *model.Project, current *model.Namespace) *html.Node {
	list := markup.E(atom.Ul)
	for _, row := range hierarchy.Build(p) {
		markup.Append(list, namespaceRow(row, current))
	}
	return markup.Elem(atom.Div, []html.Attribute{markup.ID("namespaces"), markup.Class("sidebar primary")},
		markup.E(atom.H3, markup.Link(link.IndexFileName, span("inner", markup.Text("Namespaces")))),
		list,
	)
}

func namespaceRow(row hierarchy.Row, current *model.Namespace) *html.Node {
	class := "depth-" + strconv.Itoa(row.Depth)
	if row.Branch {
		class += " branch"
	}

	inner := markup.Elem(atom.Div, []html.Attribute{markup.Class("inner")})
	if row.Depth > 1 {
		markup.Append(inner, span("tree", span("top"), span("bottom")))
	}
	markup.Append(inner, markup.E(atom.Span, markup.Text(row.ShortName())))

	if !row.Linkable() {
		return markup.Elem(atom.Li, []html.Attribute{markup.Class(class)},
			markup.Elem(atom.Div, []html.Attribute{markup.Class("no-link")}, inner),
		)
	}
	if current != nil && row.Namespace.Name == current.Name {
		class += " current"
	}
	return markup.Elem(atom.Li, []html.Attribute{markup.Class(class)},
		markup.Link(link.NamespaceFileName(row.Namespace), inner),
	)
}

func varsMenu(ns *model.Namespace) *html.Node {
	list := markup.E(atom.Ul)
	for _, v := range ns.SortedPublics() {
		markup.Append(list, markup.Elem(atom.Li, []html.Attribute{markup.Class("depth-1")},
			markup.Link(link.VarAnchor(&v), span("inner", markup.Text(v.Name))),
		))
	}
	return markup.Elem(atom.Div, []html.Attribute{markup.ID("vars"), markup.Class("sidebar secondary")},
		markup.E(atom.H3, markup.Link("#top", span("inner", markup.Text("Public Vars")))),
		list,
	)
}

func span(class string, children ...*html.Node) *html.Node {
	return markup.Elem(atom.Span, []html.Attribute{markup.Class(class)}, children...)
}

// docBlock renders <pre class="doc"> with linkified text, or nil when there
// is no text.
func (c *Composer) docBlock(text string) *html.Node {
	if text == "" {
		return nil
	}
	return markup.Elem(atom.Pre, []html.Attribute{markup.Class("doc")}, c.linkify(text)...)
}
