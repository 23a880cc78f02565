package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ValidateExtension checks that ext looks like ".js".
func ValidateExtension(ext string) error {
	if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return zerr.With(zerr.New("extension must start with a dot"), "extension", ext)
	}
	if strings.ContainsAny(ext, `/\`) {
		return zerr.With(zerr.New("extension must not contain a path separator"), "extension", ext)
	}
	return nil
}
