// Package manifest decodes package manifests (package.json).
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestDecoder = (*JSONDecoder)(nil)

// JSONDecoder implements ports.ManifestDecoder for package.json files.
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSONDecoder.
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode parses data as JSON and extracts the "main" field.
// A document that is not an object, or whose "main" is not a string, decodes
// to a Manifest with an empty Main.
func (d *JSONDecoder) Decode(data []byte) (domain.Manifest, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Manifest{}, describe(err)
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return domain.Manifest{}, nil
	}

	main, _ := fields["main"].(string)
	return domain.Manifest{Main: main}, nil
}

// describe turns a decoding error into a message that carries the byte offset when known.
func describe(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		msg := fmt.Sprintf("%s at offset %d", syntaxErr.Error(), syntaxErr.Offset)
		return zerr.With(zerr.New(msg), "offset", syntaxErr.Offset)
	}
	return zerr.New(err.Error())
}
