package href

import "github.com/yields/href/internal/scan"

// Offset is an optional byte offset into a marker's text.
//
// The zero value is an absent offset.
type Offset struct {
	pos int
	set bool
}

// At returns a present offset at i.
func At(i int) Offset {
	return Offset{pos: i, set: true}
}

// Get returns the offset and whether it is present.
func (o Offset) Get() (int, bool) {
	return o.pos, o.set
}

// Present returns true if the offset is present.
func (o Offset) Present() bool {
	return o.set
}

// Marker describes where the components of a candidate URL begin.
//
// Markers are produced by scanners, every offset points at the first
// character of its component with these exceptions:
//
//   - Port points at the first digit, after the `:`.
//   - Path points at the leading `/`.
//   - Query and Fragment point at their `?` and `#` delimiters.
//
// Offsets must be ordered scheme, username, host, port, path, query
// and fragment. Host must always be present, a marker without a host
// is a scanner bug and Extract panics on it.
type Marker struct {
	// Text is the original text that holds the URL.
	Text string

	// Scheme is the start of a literal scheme token.
	//
	// It is absent for protocol-relative URLs and URLs
	// without any scheme marker.
	Scheme Offset

	// Username is the start of the `user[:pass]@` segment.
	Username Offset

	// Host is the start of the host.
	Host Offset

	// Port is the start of the port digits.
	Port Offset

	// Path is the offset of the path's leading `/`.
	Path Offset

	// Query is the offset of the `?` delimiter.
	Query Offset

	// Fragment is the offset of the `#` delimiter.
	Fragment Offset
}

// MarkerFromIndices returns a marker from a flat array of offsets.
//
// The array holds scheme, username, host, port, path, query and
// fragment offsets in that order, negative values are absent.
func MarkerFromIndices(text string, indices [7]int) Marker {
	var offset = func(i int) Offset {
		if i < 0 {
			return Offset{}
		}
		return At(i)
	}

	return Marker{
		Text:     text,
		Scheme:   offset(indices[scan.Scheme]),
		Username: offset(indices[scan.Username]),
		Host:     offset(indices[scan.Host]),
		Port:     offset(indices[scan.Port]),
		Path:     offset(indices[scan.Path]),
		Query:    offset(indices[scan.Query]),
		Fragment: offset(indices[scan.Fragment]),
	}
}
