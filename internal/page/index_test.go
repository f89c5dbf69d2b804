package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nsdoc/internal/model"
)

func demoProject() *model.Project {
	return &model.Project{
		Name:        "demo",
		Version:     "1.0.0",
		Description: "Tools for <demos> & more.",
		Namespaces: []model.Namespace{
			{Name: "demo.core", Publics: []model.Var{{Name: "run"}}},
		},
	}
}

func TestIndexSingleNamespace(t *testing.T) {
	p := demoProject()
	root := parsed(t, NewComposer().Index(p))

	title := byTag(root, "title")
	require.Len(t, title, 1)
	assert.Equal(t, "Demo 1.0.0 API documentation", text(title[0]))

	content := byID(t, root, "content")
	assert.Contains(t, hrefs(content), "demo.core.html")
	assert.Contains(t, hrefs(content), "demo.core.html#var-run")
	assert.Equal(t, "Tools for <demos> & more.", text(byClass(content, "doc")[0]))

	// run has no doc, so the namespace block carries no doc element.
	namespaces := byClass(content, "namespace")
	require.Len(t, namespaces, 1)
	assert.Empty(t, byClass(namespaces[0], "doc"))

	root = parsed(t, NewComposer().Namespace(p, &p.Namespaces[0]))
	section := byID(t, root, "var-run")
	usage := byClass(section, "usage")
	require.Len(t, usage, 1)
	assert.Empty(t, byTag(usage[0], "code"), "no arglists means no usage forms")
}

func TestIndexOrdersNamespacesAndVars(t *testing.T) {
	p := &model.Project{
		Name:    "lib",
		Version: "2",
		Namespaces: []model.Namespace{
			{Name: "lib.z", Doc: "Zed namespace.\n\nLong story follows.", Publics: []model.Var{{Name: "b"}, {Name: "a"}}},
			{Name: "lib.a", Doc: "See https://example.com for details."},
		},
	}
	content := byID(t, parsed(t, NewComposer().Index(p)), "content")

	headings := byTag(content, "h3")
	require.Len(t, headings, 2)
	assert.Equal(t, "lib.a", text(headings[0]))
	assert.Equal(t, "lib.z", text(headings[1]))

	docs := byClass(content, "doc")
	require.Len(t, docs, 2)
	assert.Equal(t, []string{"https://example.com"}, hrefs(docs[0]))
	assert.Equal(t, "Zed namespace.", text(docs[1]), "index shows summaries only")

	index := byClass(content, "index")
	require.Len(t, index, 2)
	assert.Empty(t, byTag(index[0], "li"), "namespace without publics renders an empty list")
	assert.Equal(t, []string{"lib.z.html#var-a", "lib.z.html#var-b"}, hrefs(index[1]))
}

func TestIndexSidebarHasNoCurrentRow(t *testing.T) {
	p := &model.Project{Name: "x", Namespaces: []model.Namespace{{Name: "a.b.c"}, {Name: "a.b.d"}}}
	sidebar := byID(t, parsed(t, NewComposer().Index(p)), "namespaces")

	rows := byTag(sidebar, "li")
	require.Len(t, rows, 4)
	assert.Equal(t, "depth-1", attr(rows[0], "class"))
	assert.Equal(t, "depth-2", attr(rows[1], "class"))
	assert.Equal(t, "depth-3 branch", attr(rows[2], "class"))
	assert.Equal(t, "depth-3", attr(rows[3], "class"))

	assert.Len(t, byClass(rows[0], "no-link"), 1)
	assert.Len(t, byClass(rows[1], "no-link"), 1)
	assert.Equal(t, []string{"a.b.c.html"}, hrefs(rows[2]))
	assert.Equal(t, "b", text(rows[1]))
	assert.Empty(t, byClass(rows[0], "tree"), "top level rows carry no tree decoration")
	assert.Len(t, byClass(rows[3], "tree"), 1)
	assert.Empty(t, byClass(sidebar, "current"))
}

func TestComposerOptions(t *testing.T) {
	p := demoProject()
	p.Namespaces[0].Doc = "full text"
	c := NewComposer(WithSummarize(func(string) string { return "short" }))

	content := byID(t, parsed(t, c.Index(p)), "content")
	docs := byClass(content, "doc")
	require.Len(t, docs, 2)
	assert.Equal(t, "short", text(docs[1]))
}

func TestProjectTitle(t *testing.T) {
	assert.Equal(t, "Demo 1.0.0 API documentation", ProjectTitle(&model.Project{Name: "demo", Version: "1.0.0"}))
	assert.Equal(t, "Demo API documentation", ProjectTitle(&model.Project{Name: "demo"}))
}
