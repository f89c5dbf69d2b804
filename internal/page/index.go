package page

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/nsdoc/internal/link"
	"git.home.luguber.info/inful/nsdoc/internal/markup"
	"git.home.luguber.info/inful/nsdoc/internal/model"
)

// Index composes the site entry page: the project description followed by
// every namespace with a summary of its doc and links to its public vars.
func (c *Composer) Index(p *model.Project) *html.Node {
	title := ProjectTitle(p)

	content := markup.Elem(atom.Div, []html.Attribute{markup.ID("content"), markup.Class("namespace-index")},
		markup.E(atom.H2, markup.Text(title)),
	)
	if p.Description != "" {
		markup.Append(content, markup.Elem(atom.Div, []html.Attribute{markup.Class("doc")}, markup.Text(p.Description)))
	}
	for _, ns := range p.SortedNamespaces() {
		markup.Append(content, c.namespaceSummary(&ns))
	}

	return c.document(title,
		header(p),
		namespacesMenu(p, nil),
		content,
	)
}

func (c *Composer) namespaceSummary(ns *model.Namespace) *html.Node {
	vars := markup.E(atom.Ul)
	for _, v := range ns.SortedPublics() {
		markup.Append(vars, markup.E(atom.Li, markup.Link(link.VarURI(ns, &v), markup.Text(v.Name))))
	}

	return markup.Elem(atom.Div, []html.Attribute{markup.Class("namespace")},
		markup.E(atom.H3, markup.Link(link.NamespaceFileName(ns), markup.Text(ns.Name))),
		c.docBlock(c.summarize(ns.Doc)),
		markup.Elem(atom.Div, []html.Attribute{markup.Class("index")},
			markup.E(atom.P, markup.Text("Public variables and functions:")),
			vars,
		),
	)
}
