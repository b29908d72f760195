// Package scan finds URL component boundaries in a string that is
// known to hold exactly one URL.
//
// The scanner performs no false-positive suppression, the caller
// asserts that the input is a URL, so bare single-label hosts such
// as `localhost` are accepted.
package scan

import "strings"

// Slots of an Indices array, in component order.
const (
	Scheme = iota
	Username
	Host
	Port
	Path
	Query
	Fragment
)

// None marks an absent component.
const None = -1

// Indices holds the start offset of each component.
//
// Offsets follow the marker conventions, the port points at its
// first digit after the colon, the query and fragment point at
// their `?` and `#` delimiters and the path at its leading `/`.
type Indices [7]int

// Empty returns indices with every component absent.
func empty() Indices {
	return Indices{None, None, None, None, None, None, None}
}

// Schemes is the list of known schemes, longest first
// so that `https` wins over `http` when matching suffixes.
var schemes = [...]string{"https", "ftps", "http", "ftp"}

// Separators that may follow a scheme.
var separators = [...]string{"://", "%3a//"}

// URL scans s and returns the offsets of its components.
//
// The method returns false if no host can be found.
func URL(s string) (Indices, bool) {
	var idx = empty()
	var start int

	if i, n := separator(s); i != None {
		start = i + n
		idx[Scheme] = scheme(s[:i])
	} else if strings.HasPrefix(s, "//") {
		start = 2
	}

	var end = authorityEnd(s, start)
	var host = start

	if at := strings.LastIndexByte(s[start:end], '@'); at != -1 {
		idx[Username] = start
		host = start + at + 1
	}

	if host >= end {
		return idx, false
	}

	if p := port(s[host:end]); p != None {
		if p == 1 {
			return idx, false
		}
		idx[Port] = host + p
	}

	idx[Host] = host

	if end < len(s) && s[end] == '/' {
		idx[Path] = end
	}

	var fragment = len(s)
	if j := strings.IndexByte(s[end:], '#'); j != -1 {
		fragment = end + j
		idx[Fragment] = fragment
	}

	if j := strings.IndexByte(s[end:fragment], '?'); j != -1 {
		idx[Query] = end + j
	}

	return idx, true
}

// Separator returns the offset and length of the earliest scheme
// separator in s.
//
// A separator only counts when nothing before it looks like
// a path, query, fragment or userinfo delimiter.
func separator(s string) (int, int) {
	var limit = strings.IndexAny(s, "/?#@")
	var at, size = None, 0

	if limit == -1 {
		return None, 0
	}

	for _, sep := range separators {
		if i := indexFold(s, sep); i != None && i < limit {
			if at == None || i < at {
				at, size = i, len(sep)
			}
		}
	}

	return at, size
}

// Scheme returns the offset of the scheme token in prefix.
//
// A known scheme at the end of prefix wins, this detects schemes
// glued to preceding text as in `sometexthttp://`. Otherwise the
// whole prefix is used when it is a valid scheme token.
func scheme(prefix string) int {
	for _, name := range schemes {
		if n := len(prefix) - len(name); n >= 0 {
			if strings.EqualFold(prefix[n:], name) {
				return n
			}
		}
	}

	if validScheme(prefix) {
		return 0
	}

	return None
}

// ValidScheme returns true if s is a syntactically valid scheme.
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func validScheme(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case isAlpha(c), '0' <= c && c <= '9':
		case c == '+', c == '-', c == '.':
		default:
			return false
		}
	}

	return true
}

// AuthorityEnd returns the offset at which the authority that starts
// at start ends.
func authorityEnd(s string, start int) int {
	if j := strings.IndexAny(s[start:], "/?#"); j != -1 {
		return start + j
	}
	return len(s)
}

// Port returns the offset of the port digits within hostport.
//
// IPv6 literals are skipped up to their closing bracket, an
// unterminated literal has no port.
func port(hostport string) int {
	var from int

	if hostport[0] == '[' {
		end := strings.IndexByte(hostport, ']')
		if end == -1 {
			return None
		}
		from = end
	}

	if j := strings.IndexByte(hostport[from:], ':'); j != -1 {
		return from + j + 1
	}

	return None
}

// IndexFold is a case-insensitive ASCII strings.Index.
func indexFold(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if equalFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return None
}

// EqualFold compares ASCII strings of the same length ignoring case.
func equalFold(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func isAlpha(c byte) bool {
	return 'a' <= lower(c) && lower(c) <= 'z'
}
