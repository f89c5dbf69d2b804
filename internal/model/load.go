package model

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
)

// Load reads a project model from a YAML or JSON file.
func Load(path string) (*Project, error) {
	// #nosec G304 -- the model path is supplied by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryModel, "read project model").
			Fatal().
			WithContext("path", path).
			Build()
	}
	project, err := Parse(data)
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return nil, classified.WithContext("path", path)
		}
		return nil, err
	}
	return project, nil
}

// Parse decodes and checks a project model document.
func Parse(data []byte) (*Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var project Project
	if err := dec.Decode(&project); err != nil {
		return nil, errors.WrapError(err, errors.CategoryModel, "decode project model").Fatal().Build()
	}
	if err := Check(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Check reports the first model error in p: a missing project name, an empty
// or repeated namespace name, or a repeated var name within a namespace.
func Check(p *Project) error {
	if p.Name == "" {
		return errors.ModelError("project name is required").Build()
	}
	seen := make(map[string]struct{}, len(p.Namespaces))
	for _, ns := range p.Namespaces {
		if ns.Name == "" {
			return errors.ModelError("namespace name is required").Build()
		}
		if _, dup := seen[ns.Name]; dup {
			return errors.ModelError("duplicate namespace").WithContext("namespace", ns.Name).Build()
		}
		seen[ns.Name] = struct{}{}

		vars := make(map[string]struct{}, len(ns.Publics))
		for _, v := range ns.Publics {
			if v.Name == "" {
				return errors.ModelError("var name is required").WithContext("namespace", ns.Name).Build()
			}
			if _, dup := vars[v.Name]; dup {
				return errors.ModelError("duplicate var").
					WithContext("namespace", ns.Name).
					WithContext("var", v.Name).
					Build()
			}
			vars[v.Name] = struct{}{}
		}
	}
	return nil
}
