// Package linkverify checks that every intra-site link of a generated site
// resolves to an existing file and, for page fragments, to an existing
// element id.
package linkverify

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/nsdoc/internal/logfields"
)

const defaultConcurrency = 4

// BrokenLink is a link that does not resolve inside the site.
type BrokenLink struct {
	Page   string // slash-separated path relative to the output directory
	URL    string
	Reason string
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s: %s (%s)", b.Page, b.URL, b.Reason)
}

// Verifier checks generated sites.
type Verifier struct {
	concurrency int
	logger      *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithConcurrency bounds how many pages are parsed at once.
func WithConcurrency(n int) Option {
	return func(v *Verifier) {
		if n > 0 {
			v.concurrency = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) { v.logger = l }
}

func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{concurrency: defaultConcurrency, logger: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify checks the site in outputDir with default settings.
func Verify(ctx context.Context, outputDir string) ([]BrokenLink, error) {
	return NewVerifier().Verify(ctx, outputDir)
}

// Verify parses every .html file under outputDir and returns the links that
// do not resolve, sorted by page and URL. URLs with a scheme or host
// (source links, mailto:) are not checked.
func (v *Verifier) Verify(ctx context.Context, outputDir string) ([]BrokenLink, error) {
	files, err := htmlFiles(outputDir)
	if err != nil {
		return nil, err
	}
	v.logger.Info("Starting link verification", logfields.OutputDir(outputDir), logfields.Pages(len(files)))

	pages, err := v.parseAll(ctx, outputDir, files)
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	for _, rel := range files {
		for _, l := range pages[rel].Links {
			reason, ok := checkLink(outputDir, rel, l.URL, pages)
			if ok {
				continue
			}
			b := BrokenLink{Page: rel, URL: l.URL, Reason: reason}
			v.logger.Debug("Broken link", logfields.Path(rel), logfields.URL(l.URL), slog.String("reason", reason))
			broken = append(broken, b)
		}
	}

	sort.SliceStable(broken, func(i, j int) bool {
		if broken[i].Page != broken[j].Page {
			return broken[i].Page < broken[j].Page
		}
		return broken[i].URL < broken[j].URL
	})
	v.logger.Info("Link verification completed", slog.Int("broken", len(broken)))
	return broken, nil
}

func htmlFiles(outputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(outputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".html") {
			return nil
		}
		rel, err := filepath.Rel(outputDir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "scan output directory").
			WithContext("path", outputDir).
			Build()
	}
	sort.Strings(files)
	return files, nil
}

func (v *Verifier) parseAll(ctx context.Context, outputDir string, files []string) (map[string]*Page, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		pages    = make(map[string]*Page, len(files))
		firstErr error
		sem      = make(chan struct{}, v.concurrency)
	)

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(rel string) {
			defer wg.Done()
			defer func() { <-sem }()
			page, err := ParseFile(filepath.Join(outputDir, filepath.FromSlash(rel)))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			pages[rel] = page
		}(rel)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return pages, nil
}

// checkLink resolves raw relative to the page at rel. It returns a reason
// and false when the link is broken.
func checkLink(outputDir, rel, raw string, pages map[string]*Page) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "malformed url", false
	}
	if u.Scheme != "" || u.Host != "" {
		return "", true
	}

	target := rel
	if u.Path != "" {
		if strings.HasPrefix(u.Path, "/") {
			target = path.Clean(strings.TrimPrefix(u.Path, "/"))
		} else {
			target = path.Join(path.Dir(rel), u.Path)
		}
		if target == ".." || strings.HasPrefix(target, "../") {
			return "outside output directory", false
		}
		info, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(target)))
		if err != nil {
			return "missing target", false
		}
		if info.IsDir() {
			target = path.Join(target, "index.html")
			if _, ok := pages[target]; !ok {
				return "directory without index.html", false
			}
		}
	}

	if u.Fragment == "" {
		return "", true
	}
	page, ok := pages[target]
	if !ok {
		// Fragments into non-HTML targets are not checked.
		return "", true
	}
	if !page.HasID(u.Fragment) {
		return "missing anchor #" + u.Fragment, false
	}
	return "", true
}

// Failure turns a non-empty verification result into a verification error.
func Failure(broken []BrokenLink) error {
	if len(broken) == 0 {
		return nil
	}
	b := errors.VerificationError(fmt.Sprintf("%d broken link(s)", len(broken))).
		WithContext("first", broken[0].String())
	return b.Build()
}
