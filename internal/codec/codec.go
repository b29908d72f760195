// Package codec implements the percent-encoding and host primitives
// used to canonicalize URL components.
//
// All functions are total, they never fail and operate on bytes so
// that multi-byte sequences produced by decoding are kept intact.
package codec

import "strings"

// Decode percent-decodes s until it reaches a fixpoint.
//
// A single pass replaces every `%XX` triplet with the byte 0xXX,
// a `%` that is not followed by two hex digits is kept as is. Passes
// are repeated until one of them does not change the string, this
// means that `%2525` decodes into `%` and not `%25`.
//
// Every pass that changes the string shortens it, so the loop
// terminates after at most len(s)/2 passes.
func Decode(s string) string {
	for {
		next, changed := decode(s)
		if !changed {
			return next
		}
		s = next
	}
}

// Decode runs a single decoding pass.
func decode(s string) (string, bool) {
	if strings.IndexByte(s, '%') == -1 {
		return s, false
	}

	var b strings.Builder
	var changed bool

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && escaped(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			changed = true
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String(), changed
}

// Encode escapes every stray `%` in s.
//
// A `%` that does not start a valid `%XX` triplet is replaced
// with `%25`, valid triplets and all other bytes are copied.
// It repairs what Decode would otherwise mangle, it is not a
// general purpose URL encoder.
func Encode(s string) string {
	if strings.IndexByte(s, '%') == -1 {
		return s
	}

	var b strings.Builder

	b.Grow(len(s) + 4)

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !escaped(s, i) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// NormalizeHostDots removes redundant dots from host.
//
// Leading and trailing runs of dots are removed and every internal
// run is collapsed into a single dot. Bracketed IPv6 literals are
// copied verbatim, dots included. A host made only of dots
// normalizes to the empty string.
func NormalizeHostDots(host string) string {
	var b strings.Builder
	var dots bool

	b.Grow(len(host))

	for i := 0; i < len(host); i++ {
		switch c := host[i]; c {
		case '.':
			dots = true

		case '[':
			if dots && b.Len() > 0 {
				b.WriteByte('.')
			}
			dots = false

			end := strings.IndexByte(host[i:], ']')
			if end == -1 {
				b.WriteString(host[i:])
				return b.String()
			}
			b.WriteString(host[i : i+end+1])
			i += end

		default:
			if dots && b.Len() > 0 {
				b.WriteByte('.')
			}
			dots = false
			b.WriteByte(c)
		}
	}

	return b.String()
}

// IsHex returns true if c is a hexadecimal digit.
func IsHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// Escaped returns true if s[i:] starts with a valid `%XX` triplet.
func escaped(s string, i int) bool {
	return i+2 < len(s) && IsHex(s[i+1]) && IsHex(s[i+2])
}

// Unhex returns the value of the hex digit c.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
