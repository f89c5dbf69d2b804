// Package model defines the documentation model rendered by nsdoc.
//
// Values are produced once by whatever extracts documentation from source and
// are treated as read-only by every rendering stage.
package model

import (
	"cmp"
	"slices"
)

// DefaultOutputDir is used when a Project does not name an output directory.
const DefaultOutputDir = "doc"

// Project is the root of a documentation model.
type Project struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
	OutputDir   string `yaml:"output_dir,omitempty"`

	// SourceURI is prefixed to a Var's Path to link to its source.
	SourceURI string `yaml:"source_uri,omitempty"`
	// LineAnchorPrefix precedes the line number in source link fragments.
	LineAnchorPrefix string `yaml:"line_anchor_prefix,omitempty"`

	Namespaces []Namespace `yaml:"namespaces"`
}

// Namespace is a dotted, uniquely named group of public vars.
type Namespace struct {
	Name    string `yaml:"name"`
	Doc     string `yaml:"doc,omitempty"`
	Publics []Var  `yaml:"publics,omitempty"`
}

// Var is one public symbol of a namespace.
type Var struct {
	Name       string      `yaml:"name"`
	Doc        string      `yaml:"doc,omitempty"`
	Arglists   [][]string  `yaml:"arglists,omitempty"`
	Macro      bool        `yaml:"macro,omitempty"`
	Added      string      `yaml:"added,omitempty"`
	Deprecated Deprecation `yaml:"deprecated,omitempty"`
	Path       string      `yaml:"path,omitempty"`
	Line       int         `yaml:"line,omitempty"`
}

// Output returns the configured output directory or DefaultOutputDir.
func (p *Project) Output() string {
	if p.OutputDir == "" {
		return DefaultOutputDir
	}
	return p.OutputDir
}

// SortedNamespaces returns the namespaces ordered by name. p is not modified.
func (p *Project) SortedNamespaces() []Namespace {
	sorted := slices.Clone(p.Namespaces)
	slices.SortFunc(sorted, func(a, b Namespace) int { return cmp.Compare(a.Name, b.Name) })
	return sorted
}

// Lookup finds a namespace by its full name.
func (p *Project) Lookup(name string) (*Namespace, bool) {
	for i := range p.Namespaces {
		if p.Namespaces[i].Name == name {
			return &p.Namespaces[i], true
		}
	}
	return nil, false
}

// SortedPublics returns the public vars ordered by name. ns is not modified.
func (ns *Namespace) SortedPublics() []Var {
	sorted := slices.Clone(ns.Publics)
	slices.SortFunc(sorted, func(a, b Var) int { return cmp.Compare(a.Name, b.Name) })
	return sorted
}
