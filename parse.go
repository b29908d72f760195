package href

import (
	"strconv"
	"strings"

	"github.com/yields/href/internal/scan"
)

// Parse parses a string that holds exactly one URL.
//
// The whole string, without surrounding whitespace, is scanned into
// a single marker which is then extracted. Since the caller asserts
// the string is a URL, bare single-label hosts such as `localhost`
// or `go/tj` are accepted.
//
// The method returns false if no URL can be found in s, this is an
// expected outcome for arbitrary input and not an error.
func Parse(s string) (*URL, bool) {
	s = strings.TrimSpace(s)

	idx, ok := scan.URL(s)
	if !ok {
		return nil, false
	}

	return extract(MarkerFromIndices(s, idx))
}

// MustParse is like Parse but panics if s is not a URL.
//
// It simplifies initialization of URLs known at compile time.
func MustParse(s string) *URL {
	u, ok := Parse(s)
	if !ok {
		panic("href: parse " + strconv.Quote(s) + " - no url found")
	}
	return u
}
