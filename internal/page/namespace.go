package page

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/nsdoc/internal/link"
	"git.home.luguber.info/inful/nsdoc/internal/markup"
	"git.home.luguber.info/inful/nsdoc/internal/model"
)

// Namespace composes the page of ns: its full doc and one section per public
// var. Source links appear only when the project has a source base URI.
func (c *Composer) Namespace(p *model.Project, ns *model.Namespace) *html.Node {
	content := markup.Elem(atom.Div, []html.Attribute{markup.ID("content"), markup.Class("namespace-docs")},
		markup.Elem(atom.H2, []html.Attribute{markup.ID("top"), markup.Class("anchor")}, markup.Text(ns.Name)),
		c.docBlock(ns.Doc),
	)
	for _, v := range ns.SortedPublics() {
		markup.Append(content, c.varSection(p, &v))
	}

	return c.document(ns.Name+" documentation",
		header(p),
		namespacesMenu(p, ns),
		varsMenu(ns),
		content,
	)
}

func (c *Composer) varSection(p *model.Project, v *model.Var) *html.Node {
	section := markup.Elem(atom.Div, []html.Attribute{markup.ID(link.VarAnchorID(v)), markup.Class("public anchor")},
		markup.E(atom.H3, markup.Text(v.Name)),
	)
	if v.Macro {
		markup.Append(section, h4("macro", "macro"))
	}
	if v.Added != "" {
		markup.Append(section, h4("added", "added in "+v.Added))
	}
	if marker, ok := deprecationText(v.Deprecated); ok {
		markup.Append(section, h4("deprecated", marker))
	}

	usage := markup.Elem(atom.Div, []html.Attribute{markup.Class("usage")})
	for _, form := range Usages(v) {
		markup.Append(usage, markup.E(atom.Code, markup.Text(form)))
	}
	markup.Append(section, usage, c.docBlock(v.Doc))

	if uri, ok := link.VarSourceURI(p.SourceURI, v, p.LineAnchorPrefix); ok {
		markup.Append(section, markup.Elem(atom.Div, []html.Attribute{markup.Class("src-link")},
			markup.Link(uri, markup.Text("view source")),
		))
	}
	return section
}

// Usages renders one "(name arg ...)" form per arglist of v.
func Usages(v *model.Var) []string {
	forms := make([]string, len(v.Arglists))
	for i, args := range v.Arglists {
		forms[i] = "(" + strings.Join(append([]string{v.Name}, args...), " ") + ")"
	}
	return forms
}

func deprecationText(d model.Deprecation) (string, bool) {
	switch d.Kind {
	case model.Deprecated:
		return "deprecated", true
	case model.DeprecatedSince:
		return "deprecated in " + d.Version, true
	default:
		return "", false
	}
}

func h4(class, text string) *html.Node {
	return markup.Elem(atom.H4, []html.Attribute{markup.Class(class)}, markup.Text(text))
}
