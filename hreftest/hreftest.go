// Package hreftest implements URL test helpers.
//
// Usage:
//
//	func TestLinks(t *testing.T) {
//		var assert = require.New(t)
//		var u = hreftest.Parse(t, "example.com/a")
//
//		assert.Equal("http://example.com/a", u.FullURL())
//	}
package hreftest

import (
	"testing"

	"github.com/yields/href"
)

// Parse parses a string that holds a URL.
//
// If no URL is found the method calls `t.Fatalf`.
func Parse(t testing.TB, raw string) *href.URL {
	t.Helper()

	u, ok := href.Parse(raw)
	if !ok {
		t.Fatalf("hreftest: no url in %q", raw)
	}

	return u
}

// Extract extracts the URL of text using the given component
// offsets, ordered scheme, username, host, port, path, query
// and fragment, -1 marks an absent component.
//
// If the offsets have no host the method calls `t.Fatalf`.
func Extract(t testing.TB, text string, offsets [7]int) *href.URL {
	t.Helper()

	if offsets[2] < 0 {
		t.Fatalf("hreftest: marker %q has no host", text)
	}

	return href.Extract(href.MarkerFromIndices(text, offsets))
}
