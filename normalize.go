package href

import "github.com/yields/href/internal/normalize"

// Normalize returns a normalized copy of the URL.
//
//   - Lowercase the scheme, a percent-escaped separator is dropped.
//   - Canonicalize IPv6 literals.
//   - Decode, lowercase and punycode the hostname, delimiters stay escaped.
//   - Rewrite numeric IPv4 hosts as dotted decimal.
//   - Decode the path, remove dot segments and duplicate slashes,
//     and escape bytes that cannot appear in a path.
//
// Userinfo, port, query and fragment are kept as is. Normalization
// is one-way, the original text cannot be recovered from the result.
func (u *URL) Normalize() *URL {
	var n = *u

	if n.kind == SchemeExplicit {
		n.name = normalize.Scheme(u.name)
		n.scheme = n.name
	}

	if host := normalize.Host(u.host); host != "" {
		n.host = host
	}

	n.path = normalize.Path(u.path)

	return &n
}
