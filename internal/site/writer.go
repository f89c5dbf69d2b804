// Package site writes a composed documentation site to disk.
//
// The Writer is the only part of nsdoc with side effects. It creates the
// output directories, copies the static assets, and writes the index page followed
// by one page per namespace. The first failure aborts the render; files
// already written are left in place.
package site

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/nsdoc/internal/assets"
	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/nsdoc/internal/link"
	"git.home.luguber.info/inful/nsdoc/internal/logfields"
	"git.home.luguber.info/inful/nsdoc/internal/markup"
	"git.home.luguber.info/inful/nsdoc/internal/metrics"
	"git.home.luguber.info/inful/nsdoc/internal/model"
	"git.home.luguber.info/inful/nsdoc/internal/page"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer renders projects into static HTML sites.
type Writer struct {
	assetFS  fs.FS
	manifest assets.Manifest
	composer *page.Composer
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithAssets replaces the asset source and manifest. Pages link to the
// manifest's files, so both change together.
func WithAssets(source fs.FS, m assets.Manifest) Option {
	return func(w *Writer) {
		w.assetFS = source
		w.manifest = m
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(w *Writer) { w.recorder = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) { w.logger = l }
}

// NewWriter returns a Writer using the embedded assets.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		assetFS:  assets.FS(),
		manifest: assets.Default,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.composer = page.NewComposer(page.WithAssets(w.manifest))
	return w
}

// Result summarizes a successful render.
type Result struct {
	OutputDir string
	Pages     []string
	Assets    []string
}

// Write renders p into p.Output().
func (w *Writer) Write(p *model.Project) (*Result, error) {
	start := time.Now()
	outputDir := p.Output()
	logger := w.logger.With(logfields.RenderID(uuid.NewString()), logfields.OutputDir(outputDir))

	res, err := w.write(p, outputDir, logger)
	w.recorder.ObserveRenderDuration(time.Since(start))
	if err != nil {
		w.recorder.IncRenderOutcome(metrics.OutcomeFailed)
		return nil, err
	}
	w.recorder.IncRenderOutcome(metrics.OutcomeSuccess)
	logger.Info("Site written",
		logfields.Pages(len(res.Pages)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return res, nil
}

func (w *Writer) write(p *model.Project, outputDir string, logger *slog.Logger) (*Result, error) {
	if err := w.makeDirs(outputDir); err != nil {
		return nil, err
	}

	res := &Result{OutputDir: outputDir}
	for _, asset := range w.manifest.Files() {
		if err := w.copyAsset(outputDir, asset); err != nil {
			return nil, err
		}
		logger.Debug("Asset copied", logfields.Asset(asset))
		res.Assets = append(res.Assets, asset)
	}

	indexPath := filepath.Join(outputDir, link.IndexFileName)
	if err := w.writePage(indexPath, w.composer.Index(p), metrics.PageIndex, logger); err != nil {
		return nil, err
	}
	res.Pages = append(res.Pages, indexPath)

	for _, ns := range p.SortedNamespaces() {
		path := link.NamespaceFilePath(outputDir, &ns)
		if err := w.writePage(path, w.composer.Namespace(p, &ns), metrics.PageNamespace, logger.With(logfields.Namespace(ns.Name))); err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, path)
	}
	return res, nil
}

func (w *Writer) makeDirs(outputDir string) error {
	for _, dir := range []string{
		outputDir,
		filepath.Join(outputDir, assets.StylesheetDir),
		filepath.Join(outputDir, assets.ScriptDir),
	} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "create output directory").
				Fatal().
				WithContext("path", dir).
				Build()
		}
	}
	return nil
}

// copyAsset copies one manifest file, replacing any previous copy.
func (w *Writer) copyAsset(outputDir, asset string) error {
	src, err := w.assetFS.Open(asset)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "open asset").
			Fatal().
			WithContext("asset", asset).
			Build()
	}
	defer func() { _ = src.Close() }()

	dest := filepath.Join(outputDir, filepath.FromSlash(asset))
	// #nosec G304 -- dest is built from the output dir and the asset manifest.
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create asset").
			Fatal().
			WithContext("path", dest).
			Build()
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return errors.WrapError(err, errors.CategoryFileSystem, "copy asset").
			Fatal().
			WithContext("path", dest).
			Build()
	}
	if err := out.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "copy asset").
			Fatal().
			WithContext("path", dest).
			Build()
	}
	w.recorder.IncAssetCopied()
	return nil
}

func (w *Writer) writePage(path string, doc *html.Node, kind metrics.PageKind, logger *slog.Logger) error {
	var buf bytes.Buffer
	if err := markup.Render(&buf, doc); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "serialize page").
			Fatal().
			WithContext("path", path).
			Build()
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write page").
			Fatal().
			WithContext("path", path).
			Build()
	}
	w.recorder.IncPageWritten(kind)
	w.recorder.AddBytesWritten(buf.Len())
	logger.Debug("Page written", logfields.Path(path), logfields.Bytes(buf.Len()))
	return nil
}
