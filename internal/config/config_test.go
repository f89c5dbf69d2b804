package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nsdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ".", cfg.Source.Repository)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
project: model.json
output:
  directory: site
source:
  uri: https://example.com/src/
  line_anchor_prefix: L
  detect: true
  repository: ..
logging:
  level: WARNING
  format: JSON
metrics:
  textfile: nsdoc.prom
verify_links: true
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Project:     "model.json",
		Output:      OutputConfig{Directory: "site"},
		Source:      SourceConfig{URI: "https://example.com/src/", LineAnchorPrefix: "L", Detect: true, Repository: ".."},
		Logging:     LoggingConfig{Level: LogLevelWarn, Format: LogFormatJSON},
		Metrics:     MetricsConfig{Textfile: "nsdoc.prom"},
		VerifyLinks: true,
	}, cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("outptu:\n  directory: x\n"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestParseRejectsInvalidLogging(t *testing.T) {
	_, err := Parse([]byte("logging:\n  level: loud\n"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.Contains(t, err.Error(), "logging.level")

	_, err = Parse([]byte("logging:\n  format: xml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("NSDOC_TEST_SRC", "https://git.example.com/src/")
	path := writeConfig(t, "source:\n  uri: ${NSDOC_TEST_SRC}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://git.example.com/src/", cfg.Source.URI)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".env", []byte("NSDOC_TEST_PREFIX=lines-\n"), 0o644))
	require.NoError(t, os.WriteFile("nsdoc.yaml", []byte("source:\n  line_anchor_prefix: $NSDOC_TEST_PREFIX\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("NSDOC_TEST_PREFIX") })

	cfg, err := Load("nsdoc.yaml")
	require.NoError(t, err)
	assert.Equal(t, "lines-", cfg.Source.LineAnchorPrefix)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("NSDOC_TEST_PREFIX", "L")
	require.NoError(t, os.WriteFile(".env", []byte("NSDOC_TEST_PREFIX=lines-\n"), 0o644))
	require.NoError(t, os.WriteFile("nsdoc.yaml", []byte("source:\n  line_anchor_prefix: $NSDOC_TEST_PREFIX\n"), 0o644))

	cfg, err := Load("nsdoc.yaml")
	require.NoError(t, err)
	assert.Equal(t, "L", cfg.Source.LineAnchorPrefix)
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	path := writeConfig(t, "project: model.yaml\noutput:\n  directory: site\nmetrics:\n  textfile: /var/lib/node/nsdoc.prom\n")
	dir := filepath.Dir(path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "model.yaml"), cfg.Project)
	assert.Equal(t, filepath.Join(dir, "site"), cfg.Output.Directory)
	assert.Equal(t, dir, cfg.Source.Repository)
	assert.Equal(t, "/var/lib/node/nsdoc.prom", cfg.Metrics.Textfile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoadParseErrorCarriesPath(t *testing.T) {
	path := writeConfig(t, "project: [\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	got, _ := ce.Context().GetString("path")
	assert.Equal(t, path, got)
}

func TestInitWritesLoadableExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "project.yaml"), cfg.Project)
	assert.False(t, cfg.VerifyLinks)
}

func TestInitRefusesOverwriteWithoutForce(t *testing.T) {
	path := writeConfig(t, "project: mine.yaml\n")

	err := Init(path, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "project: mine.yaml\n", string(data))

	require.NoError(t, Init(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "project: project.yaml")
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, NormalizeLogLevel(" DEBUG "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("chatty"))
	assert.Equal(t, slog.LevelWarn, LogLevelWarn.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogLevel("").SlogLevel())
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("Json"))
}
