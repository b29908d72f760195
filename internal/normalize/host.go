package normalize

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/yields/href/internal/codec"
	"golang.org/x/net/idna"
)

// Host normalizes the host.
//
//   - Canonicalize bracketed IPv6 literals.
//   - Decode percent-encoded triplets, delimiters and control
//     bytes stay escaped.
//   - Lowercase the hostname.
//   - Remove redundant dots.
//   - Rewrite numeric IPv4 forms as dotted decimal.
//   - Convert internationalized names to punycode.
func Host(host string) string {
	if strings.HasPrefix(host, "[") {
		return ipv6(host)
	}

	var h = codec.NormalizeHostDots(strings.ToLower(codec.Decode(host)))

	if ip, ok := IPv4(h); ok {
		return ip
	}

	if e := escape(h, delimiter); e != h {
		return codec.Encode(e)
	}

	if ascii, err := idna.ToASCII(h); err == nil && ascii != "" {
		return ascii
	}

	return h
}

// IPv6 canonicalizes a bracketed IPv6 literal.
//
// Anything after the closing bracket is kept, literals that do not
// parse are only lowercased.
func ipv6(host string) string {
	var end = strings.IndexByte(host, ']')

	if end == -1 {
		return strings.ToLower(host)
	}

	addr, err := netip.ParseAddr(host[1:end])
	if err != nil || !addr.Is6() {
		return strings.ToLower(host)
	}

	return "[" + addr.String() + "]" + host[end+1:]
}

// IPv4 parses the numeric forms of an IPv4 address.
//
// Like inet_aton(3) the address may have one to four parts, each
// part decimal, octal with a leading `0` or hex with a leading `0x`,
// and the last part fills the remaining bytes. `3232235777`,
// `0xc0a80101` and `0300.0250.1.1` all are `192.168.1.1`.
func IPv4(host string) (string, bool) {
	var parts = strings.Split(host, ".")
	var addr uint64

	if host == "" || len(parts) > 4 {
		return "", false
	}

	for i, p := range parts {
		n, ok := ipv4Part(p)
		if !ok {
			return "", false
		}

		if i < len(parts)-1 {
			if n > 0xff {
				return "", false
			}
			addr = addr<<8 | n
			continue
		}

		var rest = uint(5 - len(parts))
		if n >= 1<<(8*rest) {
			return "", false
		}
		addr = addr<<(8*rest) | n
	}

	var b [4]byte
	for i := range b {
		b[i] = byte(addr >> (24 - 8*uint(i)))
	}

	return netip.AddrFrom4(b).String(), true
}

// IPv4Part parses a single part of a numeric IPv4 address.
func ipv4Part(p string) (uint64, bool) {
	var base = 10

	switch {
	case p == "":
		return 0, false
	case len(p) > 2 && (p[:2] == "0x" || p[:2] == "0X"):
		p, base = p[2:], 16
	case len(p) > 1 && p[0] == '0':
		p, base = p[1:], 8
	}

	n, err := strconv.ParseUint(p, base, 32)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Delimiter returns true if c would end or split the host
// when written unescaped.
func delimiter(c byte) bool {
	switch c {
	case '/', '?', '#', '@', ':', '[', ']', '\\':
		return true
	}
	return c <= ' ' || c == 0x7f
}
