package normalize

import (
	"path"
	"strings"

	"github.com/yields/href/internal/codec"
)

// Path normalizes the pathname.
//
//   - Decode percent-encoded triplets.
//   - Removes dot segments.
//   - Removes duplicate slashes.
//   - Escapes stray `%`, `?`, `#`, spaces, control and non-ASCII bytes.
//   - Converts an empty path to `/`.
func Path(p string) string {
	var trailing bool

	p = codec.Decode(p)

	if p == "" || p == "/" {
		return "/"
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	switch last := p[strings.LastIndexByte(p, '/')+1:]; last {
	case "", ".", "..":
		trailing = true
	}

	p = path.Clean(p)

	if trailing && p != "/" {
		p += "/"
	}

	return escape(codec.Encode(p), unsafe)
}

// Escape percent-encodes the bytes of p for which unsafe
// returns true.
//
// The `%` byte is not escaped, callers repair stray percent
// signs with codec.Encode.
func escape(p string, unsafe func(byte) bool) string {
	var b strings.Builder

	for i := 0; i < len(p); i++ {
		if c := p[i]; unsafe(c) {
			if b.Len() == 0 {
				b.Grow(len(p) + 8)
				b.WriteString(p[:i])
			}
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		} else if b.Len() > 0 {
			b.WriteByte(c)
		}
	}

	if b.Len() == 0 {
		return p
	}

	return b.String()
}

// Hex digits.
const hex = "0123456789ABCDEF"

// Unsafe returns true if c must be escaped in a path.
func unsafe(c byte) bool {
	return c <= ' ' || c >= 0x7f || c == '#' || c == '?'
}
