package domain

import (
	"strconv"
	"strings"
)

// ResolutionKey identifies a resolution request in the resolver cache.
//
// The candidate directories and extensions are length-prefix encoded before
// interning, so no content of a specifier or path can make two different
// requests share a key. ResolutionKey is comparable and usable as a map key.
type ResolutionKey struct {
	specifier  InternedString
	dirs       InternedString
	extensions InternedString
	explicit   bool
}

// NewResolutionKey builds the key for a specifier searched through dirs.
// A nil exts means the default extension list and yields a different key than
// any explicit list, including an empty one.
func NewResolutionKey(specifier string, dirs, exts []string) ResolutionKey {
	key := ResolutionKey{
		specifier: NewInternedString(specifier),
		dirs:      NewInternedString(encodeList(dirs)),
	}
	if exts != nil {
		key.extensions = NewInternedString(encodeList(exts))
		key.explicit = true
	}
	return key
}

// Specifier returns the requested specifier.
func (k ResolutionKey) Specifier() string {
	return k.specifier.String()
}

// Dirs returns the encoded candidate directory list.
func (k ResolutionKey) Dirs() string {
	return k.dirs.String()
}

// Extensions returns the encoded extension list and whether one was given explicitly.
func (k ResolutionKey) Extensions() (string, bool) {
	return k.extensions.String(), k.explicit
}

// encodeList writes each element as "<len>:<value>".
func encodeList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(strconv.Itoa(len(item)))
		b.WriteByte(':')
		b.WriteString(item)
	}
	return b.String()
}
