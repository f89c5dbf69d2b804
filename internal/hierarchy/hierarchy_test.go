package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nsdoc/internal/model"
)

func project(names ...string) *model.Project {
	p := &model.Project{Name: "test"}
	for _, n := range names {
		p.Namespaces = append(p.Namespaces, model.Namespace{Name: n})
	}
	return p
}

func names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestBuildSiblingLeaves(t *testing.T) {
	rows := Build(project("a.b.d", "a.b.c"))

	require.Equal(t, []string{"a", "a.b", "a.b.c", "a.b.d"}, names(rows))

	depths := []int{1, 2, 3, 3}
	branches := []bool{false, false, true, false}
	for i, r := range rows {
		assert.Equal(t, depths[i], r.Depth, r.Name)
		assert.Equal(t, branches[i], r.Branch, r.Name)
	}

	assert.False(t, rows[0].Linkable())
	assert.False(t, rows[1].Linkable())
	assert.True(t, rows[2].Linkable())
	assert.Equal(t, "c", rows[2].ShortName())
	assert.Equal(t, "a.b.c", rows[2].Namespace.Name)
}

func TestBuildSharedAncestorAppearsOnce(t *testing.T) {
	rows := Build(project("x.y", "a", "a.b.c", "a.z"))

	assert.Equal(t, []string{"a", "a.b", "a.b.c", "a.z", "x", "x.y"}, names(rows))
	assert.True(t, rows[0].Linkable(), "a has its own page")
	assert.False(t, rows[1].Linkable(), "a.b is only a prefix")
	assert.False(t, rows[4].Linkable(), "x is only a prefix")
}

func TestBuildBranchFlagMatchesSuccessorDepth(t *testing.T) {
	rows := Build(project("a.b", "a.c.d", "b", "c.e.f", "c.e.g"))
	require.NotEmpty(t, rows)

	for i, r := range rows {
		if i == len(rows)-1 {
			assert.False(t, r.Branch, "last row is never a branch")
			continue
		}
		assert.Equal(t, rows[i+1].Depth == r.Depth, r.Branch, r.Name)
	}
}

func TestBuildEveryPrefixExactlyOnce(t *testing.T) {
	input := []string{"m.n.o", "m.n", "m.p.q.r", "z", "m.p.q.s"}
	rows := Build(project(input...))

	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Name]++
		assert.Equal(t, Depth(r.Name), r.Depth)
	}
	for _, n := range input {
		for _, prefix := range Prefixes(n) {
			assert.Equal(t, 1, counts[prefix], prefix)
		}
	}
	assert.Len(t, rows, len(counts))
}

func TestBuildEmptyAndSingle(t *testing.T) {
	assert.Empty(t, Build(project()))

	rows := Build(project("solo"))
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Name: "solo", Depth: 1, Namespace: rows[0].Namespace}, rows[0])
	assert.True(t, rows[0].Linkable())
}

func TestBuildDoesNotReorderProject(t *testing.T) {
	p := project("b", "a")
	Build(p)
	assert.Equal(t, "b", p.Namespaces[0].Name)
}

func TestPrefixes(t *testing.T) {
	assert.Equal(t, []string{"a", "a.b", "a.b.c"}, Prefixes("a.b.c"))
	assert.Equal(t, []string{"a"}, Prefixes("a"))
	assert.Equal(t, "a", Row{Name: "a"}.ShortName())
}
