package config

import (
	"os"

	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
)

const exampleConfig = `# nsdoc configuration
# Values may reference environment variables, e.g. ${NSDOC_SOURCE_URI}.
# Variables from .env and .env.local are loaded first.

# Documentation model to render (YAML or JSON).
project: project.yaml

output:
  # Overrides the model's output_dir. Defaults to "doc".
  directory: doc

source:
  # Base URI prepended to each var's source path for "view source" links.
  uri: ""
  # Fragment prefix for line numbers, e.g. "L" gives "#L42".
  line_anchor_prefix: ""
  # Derive uri and line_anchor_prefix from the git checkout below.
  detect: false
  repository: "."

logging:
  level: info   # debug, info, warn, error
  format: text  # text, json

metrics:
  # Write Prometheus text exposition here after each build.
  textfile: ""

# Check intra-site links after building.
verify_links: false
`

// Init writes an example configuration file. An existing file is only
// replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write configuration file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return nil
}
