package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleNotFound is returned when a specifier cannot be resolved through any candidate directory.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrInvalidManifest is returned when a package manifest references "main" but cannot be parsed.
	ErrInvalidManifest = zerr.New("invalid package manifest")

	// ErrInvalidConfig is returned when the resolver configuration file contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNoSpecifiers is returned when a resolution is requested without any specifier.
	ErrNoSpecifiers = zerr.New("no specifiers given")
)
