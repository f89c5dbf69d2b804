package commands

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/nsdoc/internal/config"
	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/nsdoc/internal/logfields"
	"git.home.luguber.info/inful/nsdoc/internal/metrics"
	"git.home.luguber.info/inful/nsdoc/internal/model"
	"git.home.luguber.info/inful/nsdoc/internal/site"
	"git.home.luguber.info/inful/nsdoc/internal/srclink"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Project          string `short:"p" help:"Documentation model file (YAML or JSON)" type:"path"`
	Output           string `short:"o" help:"Output directory for the generated site" type:"path"`
	SrcURI           string `name:"src-uri" help:"Source base URI for view-source links"`
	LineAnchorPrefix string `name:"line-anchor-prefix" help:"Line fragment prefix for source links, e.g. L"`
	DetectSource     bool   `name:"detect-source" help:"Derive source links from the git checkout"`
	Verify           bool   `help:"Check intra-site links after rendering"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g, b.Project == "")
	if err != nil {
		return err
	}

	projectPath := firstNonEmpty(b.Project, cfg.Project)
	if projectPath == "" {
		return errors.ValidationError("no documentation model given (use --project or set project in the configuration file)").Build()
	}
	p, err := model.Load(projectPath)
	if err != nil {
		return err
	}
	if err := b.applyOverrides(p, cfg); err != nil {
		return err
	}

	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		registry *prometheus.Registry
	)
	if cfg.Metrics.Textfile != "" {
		registry = prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	fmt.Fprintf(g.stdout(), "Rendering %s\n", p.Name)
	res, err := site.NewWriter(site.WithRecorder(recorder), site.WithLogger(g.Logger)).Write(p)
	if registry != nil {
		if merr := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); merr != nil {
			g.Logger.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(merr))
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(g.stdout(), "Wrote %d pages to %s\n", len(res.Pages), res.OutputDir)

	if b.Verify || cfg.VerifyLinks {
		return verifySite(g, res.OutputDir)
	}
	return nil
}

// applyOverrides layers CLI flags and configuration over the model.
// Precedence per setting: flag, configuration file, detected source, model.
func (b *BuildCmd) applyOverrides(p *model.Project, cfg *config.Config) error {
	p.OutputDir = firstNonEmpty(b.Output, cfg.Output.Directory, p.OutputDir)

	uri := firstNonEmpty(b.SrcURI, cfg.Source.URI)
	prefix := firstNonEmpty(b.LineAnchorPrefix, cfg.Source.LineAnchorPrefix)
	if (b.DetectSource || cfg.Source.Detect) && (uri == "" || prefix == "") {
		src, err := srclink.Detect(cfg.Source.Repository)
		if err != nil {
			return err
		}
		uri = firstNonEmpty(uri, src.URI)
		prefix = firstNonEmpty(prefix, src.LineAnchorPrefix)
	}
	p.SourceURI = firstNonEmpty(uri, p.SourceURI)
	p.LineAnchorPrefix = firstNonEmpty(prefix, p.LineAnchorPrefix)
	return nil
}
