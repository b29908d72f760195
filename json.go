package href

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Record is the JSON representation of a URL.
type record struct {
	URL      string `json:"url"`
	Scheme   string `json:"scheme"`
	Kind     string `json:"kind"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Path     string `json:"path"`
	Query    string `json:"query,omitempty"`
	Fragment string `json:"fragment,omitempty"`
}

// MarshalJSON encodes the URL with its components.
//
// HTML characters are not escaped, `&` in a query is kept as is.
func (u *URL) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	var enc = json.NewEncoder(&buf)

	enc.SetEscapeHTML(false)

	err := enc.Encode(record{
		URL:      u.FullURL(),
		Scheme:   u.Scheme(),
		Kind:     u.kind.String(),
		Username: u.username,
		Password: u.password,
		Host:     u.host,
		Port:     u.port,
		Path:     u.path,
		Query:    u.query,
		Fragment: u.fragment,
	})
	if err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// JSONWriter writes URLs as JSON lines.
//
// The writer is safe for concurrent use, each URL is
// written as a single line.
type JSONWriter struct {
	enc  *json.Encoder
	lock sync.Mutex
}

// NewJSONWriter returns a new JSON writer that writes into w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{enc: enc}
}

// Write writes the given URLs.
func (j *JSONWriter) Write(urls ...*URL) error {
	j.lock.Lock()
	defer j.lock.Unlock()

	for _, u := range urls {
		if err := j.enc.Encode(u); err != nil {
			return fmt.Errorf("href: json encode %q - %w", u.FullURL(), err)
		}
	}

	return nil
}
