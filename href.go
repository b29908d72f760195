// Package href locates, validates and canonicalizes URLs found in text.
//
// URLs in free-form content are rarely RFC compliant, they lack schemes,
// carry stray percent signs or redundant dots in their hosts. The package
// decomposes such URLs into a component model that re-serializes into a
// canonical absolute form instead of rejecting them.
//
// A scanner reports where the components of a candidate URL begin as a
// Marker, Extract turns the marker into a validated URL:
//
//	u := href.Extract(href.Marker{
//		Text:     "fbeoo:@boop.com/dhdeh?aj=r",
//		Username: href.At(0),
//		Host:     href.At(7),
//		Path:     href.At(15),
//		Query:    href.At(21),
//	})
//
//	u.FullURL() // => "http://fbeoo@boop.com/dhdeh?aj=r"
//
// Strings that are known to hold exactly one URL can be parsed directly:
//
//	u, ok := href.Parse("//www.google.com/")
package href

import (
	"strconv"
	"strings"
)

// URL represents a validated URL.
//
// A URL is immutable and safe for concurrent use, it always has a
// non-empty host and a path that starts with `/`.
type URL struct {
	scheme   string
	name     string
	kind     SchemeKind
	username string
	password string
	host     string
	port     int
	path     string
	query    string
	fragment string
}

// Scheme returns the scheme without its `://` separator.
//
// URLs without any scheme marker are implied http URLs and report
// `http`, protocol-relative URLs report an empty scheme.
func (u *URL) Scheme() string {
	if u.kind == SchemeNone {
		return defaultScheme
	}
	return u.scheme
}

// SchemeKind returns how the scheme was given.
func (u *URL) SchemeKind() SchemeKind {
	return u.kind
}

// Username returns the username or an empty string.
func (u *URL) Username() string {
	return u.username
}

// Password returns the password or an empty string.
func (u *URL) Password() string {
	return u.password
}

// Host returns the host.
//
// IPv6 literals keep their enclosing brackets.
func (u *URL) Host() string {
	return u.host
}

// Port returns the port.
//
// When no port was given the scheme's well-known port is
// returned, -1 is returned when the scheme has no default.
func (u *URL) Port() int {
	return u.port
}

// Path returns the path, it always starts with `/`.
func (u *URL) Path() string {
	return u.path
}

// Query returns the query including its leading `?`.
func (u *URL) Query() string {
	return u.query
}

// Fragment returns the fragment including its leading `#`.
func (u *URL) Fragment() string {
	return u.fragment
}

// FullURL returns the canonical absolute form of the URL.
//
// URLs without a scheme are written with `http://`, protocol-relative
// URLs keep their `//`. The port is omitted when it is the scheme's
// default and an empty password is never written.
func (u *URL) FullURL() string {
	var b strings.Builder

	b.Grow(len(u.scheme) + len(u.username) + len(u.password) + len(u.host) +
		len(u.path) + len(u.query) + len(u.fragment) + 16)

	switch u.kind {
	case SchemeExplicit:
		b.WriteString(u.name)
		b.WriteString("://")
	case SchemeRelative:
		b.WriteString("//")
	default:
		b.WriteString(defaultScheme)
		b.WriteString("://")
	}

	if u.username != "" {
		b.WriteString(u.username)
	}
	if u.password != "" {
		b.WriteByte(':')
		b.WriteString(u.password)
	}
	if u.username != "" || u.password != "" {
		b.WriteByte('@')
	}

	b.WriteString(u.host)

	if u.port >= 0 && u.port != u.defaultPort() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}

	b.WriteString(u.path)
	b.WriteString(u.query)
	b.WriteString(u.fragment)

	return b.String()
}

// FullURLWithoutFragment returns the full URL without its fragment.
func (u *URL) FullURLWithoutFragment() string {
	var full = u.FullURL()

	if j := strings.IndexByte(full, '#'); j != -1 {
		return full[:j]
	}

	return full
}

// String implementation.
func (u *URL) String() string {
	return u.FullURL()
}

// DefaultPort returns the well-known port of the URL's scheme.
func (u *URL) defaultPort() int {
	switch u.kind {
	case SchemeNone:
		return defaultPort(defaultScheme)
	case SchemeRelative:
		return -1
	default:
		return defaultPort(u.name)
	}
}
