package href

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/yields/href/internal/selectors"
	"golang.org/x/net/html"
)

// DefaultSelector selects the anchors of a document.
const DefaultSelector = `a[href]`

// FromHTML returns the URLs referenced by the HTML document r.
//
// Nodes are selected with the given CSS selectors, DefaultSelector
// is used when none are given. The `href` attribute of each node is
// read, falling back to `src`.
//
// Absolute and protocol-relative values are parsed as is, relative
// values are resolved against base and skipped when base is empty.
// Values that are not URLs, such as `mailto:` links, are skipped.
//
// URLs are returned in selector order, then document order.
func FromHTML(r io.Reader, base string, exprs ...string) ([]*URL, error) {
	if len(exprs) == 0 {
		exprs = []string{DefaultSelector}
	}

	var sels = make([]cascadia.Selector, 0, len(exprs))
	for _, expr := range exprs {
		s, err := selectors.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("href: from html - %w", err)
		}
		sels = append(sels, s)
	}

	var baseurl *url.URL
	if base != "" {
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("href: parse base %q - %w", base, err)
		}
		baseurl = u
	}

	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("href: parse html - %w", err)
	}

	var ret []*URL

	for _, s := range sels {
		for _, n := range s.MatchAll(root) {
			value, ok := attr(n, "href")
			if !ok {
				value, ok = attr(n, "src")
			}
			if !ok {
				continue
			}

			if u, ok := resolve(baseurl, value); ok {
				ret = append(ret, u)
			}
		}
	}

	return ret, nil
}

// Resolve returns the URL of an attribute value.
func resolve(base *url.URL, value string) (*URL, bool) {
	value = strings.TrimSpace(value)

	if value == "" {
		return nil, false
	}

	if absolute(value) {
		return Parse(value)
	}

	if base == nil {
		return nil, false
	}

	ref, err := url.Parse(value)
	if err != nil || ref.IsAbs() {
		return nil, false
	}

	return Parse(base.ResolveReference(ref).String())
}

// Absolute returns true if v has a scheme separator or is
// protocol-relative.
func absolute(v string) bool {
	if strings.HasPrefix(v, "//") || strings.Contains(v, "://") {
		return true
	}
	return strings.Contains(strings.ToLower(v), "%3a//")
}

// Attr returns the value of the attribute key.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
