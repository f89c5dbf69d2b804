// Package hierarchy turns flat dotted namespace names into the ordered rows of
// a navigation tree.
//
// Rows are plain values; no parent or child pointers are kept. Every dot
// prefix of every namespace gets a row, so ancestors without a page of their
// own still appear as tree decoration.
package hierarchy

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/nsdoc/internal/model"
)

// Row is one line of the navigation tree.
type Row struct {
	Name   string
	Depth  int
	Branch bool
	// Namespace is nil for ancestors that only exist as a prefix.
	Namespace *model.Namespace
}

// ShortName is the last dot segment of the row's name.
func (r Row) ShortName() string {
	if i := strings.LastIndexByte(r.Name, '.'); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// Linkable reports whether the row has its own namespace page.
func (r Row) Linkable() bool {
	return r.Namespace != nil
}

// Prefixes returns every non-empty dot prefix of name, shortest first:
// "a.b.c" yields "a", "a.b", "a.b.c".
func Prefixes(name string) []string {
	segments := strings.Split(name, ".")
	prefixes := make([]string, len(segments))
	for i := range segments {
		prefixes[i] = strings.Join(segments[:i+1], ".")
	}
	return prefixes
}

// Depth is the number of dot segments in name.
func Depth(name string) int {
	return strings.Count(name, ".") + 1
}

// Names returns the deduplicated prefix sequence for a set of namespace
// names, visiting names in sorted order and keeping first occurrences.
func Names(names []string) []string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	seen := make(map[string]struct{})
	out := make([]string, 0, len(sorted))
	for _, name := range sorted {
		for _, prefix := range Prefixes(name) {
			if _, dup := seen[prefix]; dup {
				continue
			}
			seen[prefix] = struct{}{}
			out = append(out, prefix)
		}
	}
	return out
}

// Build returns the navigation rows for the project's namespaces.
func Build(p *model.Project) []Row {
	names := make([]string, len(p.Namespaces))
	for i := range p.Namespaces {
		names[i] = p.Namespaces[i].Name
	}

	ordered := Names(names)
	rows := make([]Row, len(ordered))
	for i, name := range ordered {
		rows[i] = Row{Name: name, Depth: Depth(name)}
		if ns, ok := p.Lookup(name); ok {
			rows[i].Namespace = ns
		}
	}
	markBranches(rows)
	return rows
}

// markBranches flags each row whose successor has the same depth. The last
// row has no successor and is never a branch.
func markBranches(rows []Row) {
	for i := 0; i+1 < len(rows); i++ {
		rows[i].Branch = rows[i].Depth == rows[i+1].Depth
	}
}
