package linkverify

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
)

// Link is a reference found in a page.
type Link struct {
	URL       string // attribute value as written
	Tag       string // a, link, script, img, ...
	Attribute string // href or src
}

// Page is what verification needs to know about one generated file.
type Page struct {
	Links []Link
	IDs   map[string]struct{}
}

// HasID reports whether an element with the given id exists on the page.
func (p *Page) HasID(id string) bool {
	_, ok := p.IDs[id]
	return ok
}

// ParseFile reads and parses an HTML file.
func ParseFile(htmlPath string) (*Page, error) {
	file, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "open page").
			WithContext("path", htmlPath).
			Build()
	}
	defer func() {
		_ = file.Close() // read-only
	}()

	page, err := Parse(file)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryVerification, "parse page").
			WithContext("path", htmlPath).
			Build()
	}
	return page, nil
}

// Parse collects the links and element ids of an HTML document.
func Parse(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	page := &Page{IDs: map[string]struct{}{}}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				page.IDs[id] = struct{}{}
			}
			extractElementLinks(n, page)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return page, nil
}

// linkAttrs maps elements to the attribute carrying their reference.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"script": "src",
	"img":    "src",
	"video":  "src",
	"audio":  "src",
	"source": "src",
}

func extractElementLinks(n *html.Node, page *Page) {
	attr, ok := linkAttrs[n.Data]
	if !ok {
		return
	}
	if val := getAttr(n, attr); val != "" {
		page.Links = append(page.Links, Link{URL: val, Tag: n.Data, Attribute: attr})
	}
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
