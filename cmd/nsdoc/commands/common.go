package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/nsdoc/internal/config"
)

// Global carries process-wide state shared by all subcommands.
type Global struct {
	Ctx    context.Context
	Logger *slog.Logger
	Stdout io.Writer // user-facing progress messages
	Stderr io.Writer // log output
}

// NewGlobal returns a Global bound to the process streams.
func NewGlobal(ctx context.Context) *Global {
	return &Global{Ctx: ctx, Logger: slog.Default(), Stdout: os.Stdout, Stderr: os.Stderr}
}

// CLI definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"nsdoc.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Render the documentation site"`
	Verify VerifyCmd `cmd:"" help:"Check intra-site links of a rendered site"`
	Init   InitCmd   `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing and sets up logging until the
// configuration file has been read.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads the configuration file. A missing file yields defaults
// unless required is set. Logging is reconfigured from the result.
func (c *CLI) loadConfig(g *Global, required bool) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		if required || !config.IsNotFound(err) {
			return nil, err
		}
		cfg = config.Default()
	}
	c.setupLogging(g, cfg.Logging)
	return cfg, nil
}

func (c *CLI) setupLogging(g *Global, lc config.LoggingConfig) {
	level := lc.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	out := g.Stderr
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)
}

func (g *Global) context() context.Context {
	if g.Ctx == nil {
		return context.Background()
	}
	return g.Ctx
}

func (g *Global) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
