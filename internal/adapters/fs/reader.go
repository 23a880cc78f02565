package fs

import (
	"os"

	"go.trai.ch/modfind/internal/core/ports"
)

var _ ports.TextReader = (*Reader)(nil)

// Reader reads whole files as UTF-8 text.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText returns the contents of path. A missing or unreadable file yields "" and false.
func (r *Reader) ReadText(path string) (string, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is built by the resolver from candidate directories
	if err != nil {
		return "", false
	}
	return string(data), true
}
