package href

import "github.com/yields/href/internal/codec"

// Decode percent-decodes s until decoding no longer changes it.
//
// Decoding is transitively greedy, `%2525` decodes into `%`. The
// cost is quadratic in the worst case, callers that handle long
// untrusted strings should cap their length first.
func Decode(s string) string {
	return codec.Decode(s)
}

// Encode replaces every `%` of s that does not start a valid
// `%XX` escape with `%25`.
func Encode(s string) string {
	return codec.Encode(s)
}

// NormalizeHostDots removes leading and trailing dots from host and
// collapses runs of dots, bracketed IPv6 literals are left untouched.
func NormalizeHostDots(host string) string {
	return codec.NormalizeHostDots(host)
}
