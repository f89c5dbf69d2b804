package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeprecationKind distinguishes the three deprecation states of a Var.
type DeprecationKind int

const (
	NotDeprecated DeprecationKind = iota
	Deprecated
	DeprecatedSince
)

// Deprecation is either absent, a plain marker, or a marker with the version
// the var was deprecated in.
type Deprecation struct {
	Kind    DeprecationKind
	Version string
}

// DeprecatedIn marks a var as deprecated since version.
func DeprecatedIn(version string) Deprecation {
	return Deprecation{Kind: DeprecatedSince, Version: version}
}

// IsDeprecated reports whether any deprecation marker is present.
func (d Deprecation) IsDeprecated() bool {
	return d.Kind != NotDeprecated
}

// IsZero lets yaml omitempty drop the field for non-deprecated vars.
func (d Deprecation) IsZero() bool {
	return d.Kind == NotDeprecated
}

// UnmarshalYAML accepts a boolean or a version string.
func (d *Deprecation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: deprecated must be a boolean or a version string", value.Line)
	}
	if value.Tag == "!!bool" {
		var flag bool
		if err := value.Decode(&flag); err != nil {
			return err
		}
		*d = Deprecation{}
		if flag {
			d.Kind = Deprecated
		}
		return nil
	}
	if value.Tag == "!!null" {
		*d = Deprecation{}
		return nil
	}
	// Numbers such as 1.2 are versions too; keep the literal text.
	if value.Value == "" {
		*d = Deprecation{Kind: Deprecated}
		return nil
	}
	*d = DeprecatedIn(value.Value)
	return nil
}

// MarshalYAML writes the inverse of UnmarshalYAML.
func (d Deprecation) MarshalYAML() (any, error) {
	switch d.Kind {
	case Deprecated:
		return true, nil
	case DeprecatedSince:
		return d.Version, nil
	default:
		return false, nil
	}
}
