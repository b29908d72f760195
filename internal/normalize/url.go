// Package normalize provides URL component normalization.
//
// https://en.wikipedia.org/wiki/URI_normalization
//
// Unlike net/url based normalization the functions operate on
// single components that were already extracted from text, they
// never fail and return their input when it cannot be improved.
package normalize

import "strings"

// Scheme normalizes the scheme name.
//
//   - Lowercase the scheme.
func Scheme(name string) string {
	return strings.ToLower(name)
}
