package href

import (
	"strconv"
	"strings"

	"github.com/yields/href/internal/codec"
)

// SchemeKind describes how the scheme of a URL was given.
type SchemeKind int

// Scheme kinds.
const (
	// SchemeNone means the text had no scheme marker at all,
	// the URL is an implied http URL. Scheme reports `http` for
	// such URLs, use URL.SchemeKind to tell it from a literal one.
	SchemeNone SchemeKind = iota

	// SchemeRelative means the URL is protocol-relative, it
	// starts with `//` and inherits its scheme from context.
	SchemeRelative

	// SchemeExplicit means a literal scheme token was given.
	SchemeExplicit
)

// String implementation.
func (k SchemeKind) String() string {
	switch k {
	case SchemeNone:
		return "none"
	case SchemeRelative:
		return "relative"
	case SchemeExplicit:
		return "explicit"
	}
	return "SchemeKind(" + strconv.Itoa(int(k)) + ")"
}

// DefaultScheme is the scheme implied by URLs without a scheme marker.
const defaultScheme = "http"

// DefaultPort returns the well-known port of the named scheme.
//
// The method returns -1 for unknown schemes.
func defaultPort(name string) int {
	switch strings.ToLower(name) {
	case "http":
		return 80
	case "https":
		return 443
	case "ftp":
		return 21
	case "ftps":
		return 990
	}
	return -1
}

// SchemeName returns the scheme name of a raw scheme token.
//
// A percent-escaped `%3a//` delimiter is removed, `http%3a//`
// is named `http`.
func schemeName(raw string) string {
	const escaped = "%3a//"

	if n := len(raw) - len(escaped); n >= 0 {
		if strings.EqualFold(raw[n:], escaped) {
			return raw[:n]
		}
	}

	return raw
}

// Extract returns the URL described by marker m.
//
// Components are sliced from the marker's text and normalized, the
// host has its redundant dots removed and a missing port is inferred
// from the scheme. No percent-decoding is applied.
//
// The method panics if the marker has no host or if its host is
// made only of dots and so normalizes to an empty string, such a
// marker is a bug in the scanner that produced it.
func Extract(m Marker) *URL {
	u, ok := extract(m)
	if !ok {
		panic("href: extract marker without host " + strconv.Quote(m.Text))
	}
	return u
}

// Extract returns the URL of m or false if m has no usable host.
func extract(m Marker) (*URL, bool) {
	var text = m.Text
	var u = &URL{}

	host, ok := m.Host.Get()
	if !ok {
		return nil, false
	}

	var authority = host
	if i, ok := m.Username.Get(); ok {
		authority = i
	}

	// Scheme.
	if i, ok := m.Scheme.Get(); ok {
		if raw := strings.TrimSuffix(span(text, i, authority), "://"); raw != "" {
			u.kind = SchemeExplicit
			u.scheme = raw
			u.name = schemeName(raw)
		}
	}

	if u.kind != SchemeExplicit && authority >= 2 && authority <= len(text) {
		if text[authority-2:authority] == "//" {
			u.kind = SchemeRelative
		}
	}

	// Userinfo, the byte before the host is the `@` delimiter.
	if i, ok := m.Username.Get(); ok {
		userinfo := span(text, i, host-1)
		if j := strings.IndexByte(userinfo, ':'); j != -1 {
			u.username = userinfo[:j]
			u.password = userinfo[j+1:]
		} else {
			u.username = userinfo
		}
	}

	// Host.
	var end = first(len(text), m.Path, m.Query, m.Fragment)
	if p, ok := m.Port.Get(); ok {
		end = p - 1
	}

	if raw := span(text, host, end); strings.HasPrefix(raw, "[") {
		u.host = raw
	} else {
		u.host = codec.NormalizeHostDots(raw)
	}

	if u.host == "" {
		return nil, false
	}

	// Port.
	u.port = u.defaultPort()
	if p, ok := m.Port.Get(); ok {
		if n, ok := digits(span(text, p, len(text))); ok {
			u.port = n
		}
	}

	// Path.
	u.path = "/"
	if p, ok := m.Path.Get(); ok {
		if path := span(text, p, first(len(text), m.Query, m.Fragment)); path != "" {
			if path[0] != '/' {
				path = "/" + path
			}
			u.path = path
		}
	}

	// Query and fragment keep their delimiters.
	if q, ok := m.Query.Get(); ok {
		u.query = span(text, q, first(len(text), m.Fragment))
	}

	if f, ok := m.Fragment.Get(); ok {
		u.fragment = span(text, f, len(text))
	}

	return u, true
}

// First returns the first present offset or def.
func first(def int, offsets ...Offset) int {
	for _, o := range offsets {
		if i, ok := o.Get(); ok {
			return i
		}
	}
	return def
}

// Span returns s[from:to] clamped to the bounds of s.
//
// An inverted range returns an empty string.
func span(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}

// Digits parses the run of decimal digits at the start of s.
//
// The method returns false when there are no digits or when
// they overflow an int.
func digits(s string) (int, bool) {
	var n int

	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}

	if n == 0 {
		return 0, false
	}

	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, false
	}

	return v, true
}
