// Package config loads the nsdoc configuration file.
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
)

// DefaultPath is the configuration file used when --config is not given.
const DefaultPath = "nsdoc.yaml"

// Config is the nsdoc configuration file.
type Config struct {
	// Project is the documentation model file (YAML or JSON).
	Project     string        `yaml:"project"`
	Output      OutputConfig  `yaml:"output"`
	Source      SourceConfig  `yaml:"source"`
	Logging     LoggingConfig `yaml:"logging"`
	Metrics     MetricsConfig `yaml:"metrics"`
	VerifyLinks bool          `yaml:"verify_links"`
}

// OutputConfig controls where the site is written.
type OutputConfig struct {
	// Directory overrides the output directory named by the model.
	Directory string `yaml:"directory"`
}

// SourceConfig controls "view source" links.
type SourceConfig struct {
	URI              string `yaml:"uri"`
	LineAnchorPrefix string `yaml:"line_anchor_prefix"`
	// Detect derives URI and LineAnchorPrefix from the git checkout at
	// Repository. Explicit values still win.
	Detect     bool   `yaml:"detect"`
	Repository string `yaml:"repository"`
}

type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

type MetricsConfig struct {
	// Textfile receives the Prometheus text exposition after each build.
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Source:  SourceConfig{Repository: "."},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Load reads configPath after loading .env files and expanding environment
// variables in its content. Relative paths in the file are resolved against
// the file's directory.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	// #nosec G304 -- the config path is chosen by the operator.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "read configuration file").
			Fatal().
			UserAction().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return nil, ce.WithContext("path", configPath)
		}
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(configPath))
	return cfg, nil
}

// Parse decodes configuration content and applies defaults. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapError(err, errors.CategoryConfig, "parse configuration").
			Fatal().
			UserAction().
			Build()
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsNotFound reports whether err comes from a missing configuration file.
func IsNotFound(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

func (c *Config) normalize() error {
	level, err := logLevelNormalizer.Parse(string(c.Logging.Level))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.level").Fatal().UserAction().Build()
	}
	c.Logging.Level = level

	format, err := logFormatNormalizer.Parse(string(c.Logging.Format))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.format").Fatal().UserAction().Build()
	}
	c.Logging.Format = format

	if strings.TrimSpace(c.Source.Repository) == "" {
		c.Source.Repository = "."
	}
	return nil
}

func (c *Config) resolvePaths(base string) {
	for _, p := range []*string{&c.Project, &c.Output.Directory, &c.Source.Repository, &c.Metrics.Textfile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
