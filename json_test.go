package href

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	t.Run("writes json lines", func(t *testing.T) {
		var assert = require.New(t)
		var buf bytes.Buffer
		var w = NewJSONWriter(&buf)

		err := w.Write(
			MustParse("https://u:p@example.com:8080/a?b=c&d#e"),
			MustParse("//example.com"),
		)

		assert.NoError(err)
		assert.Equal(
			`{"url":"https://u:p@example.com:8080/a?b=c&d#e","scheme":"https","kind":"explicit",`+
				`"username":"u","password":"p","host":"example.com","port":8080,"path":"/a",`+
				`"query":"?b=c&d","fragment":"#e"}`+"\n"+
				`{"url":"//example.com/","scheme":"","kind":"relative","host":"example.com","port":-1,"path":"/"}`+"\n",
			buf.String(),
		)
	})

	t.Run("html characters are not escaped", func(t *testing.T) {
		var assert = require.New(t)

		b, err := MustParse("example.com/a?b=c&d=<e>").MarshalJSON()

		assert.NoError(err)
		assert.Contains(string(b), `"query":"?b=c&d=<e>"`)
		assert.NotContains(string(b), `\u0026`)
		assert.False(bytes.HasSuffix(b, []byte("\n")))
	})

	t.Run("scheme-less urls", func(t *testing.T) {
		var assert = require.New(t)

		b, err := MustParse("example.com").MarshalJSON()

		assert.NoError(err)
		assert.JSONEq(`{
			"url": "http://example.com/",
			"scheme": "http",
			"kind": "none",
			"host": "example.com",
			"port": 80,
			"path": "/"
		}`, string(b))
	})

	t.Run("write error", func(t *testing.T) {
		var assert = require.New(t)
		var boom = errors.New("boom")
		var w = NewJSONWriter(writer(func([]byte) (int, error) {
			return 0, boom
		}))

		err := w.Write(MustParse("example.com"))

		assert.True(errors.Is(err, boom))
	})
}

// Writer implements an io.Writer.
type writer func([]byte) (int, error)

// Write implementation.
func (w writer) Write(p []byte) (int, error) {
	return w(p)
}
