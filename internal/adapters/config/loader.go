// Package config provides the configuration loader for modfind.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up in the working directory.
	DefaultFilename = "modfind.yaml"

	// PreserveSymlinksEnv forces symlink preservation on when set to a non-empty value other than "0".
	PreserveSymlinksEnv = "MODFIND_PRESERVE_SYMLINKS"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	LookupEnv func(string) (string, bool)
}

// NewLoader creates a FileConfigLoader reading DefaultFilename and the process environment.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{
		Filename:  DefaultFilename,
		LookupEnv: os.LookupEnv,
	}
}

// Load reads the configuration from the given working directory.
// A missing file yields the default configuration.
func (l *FileConfigLoader) Load(cwd string) (domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)

	cfg := domain.DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		loaded, err := Load(path)
		if err != nil {
			return domain.Config{}, err
		}
		cfg = loaded
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", path)
	}

	if l.LookupEnv != nil {
		if v, ok := l.LookupEnv(PreserveSymlinksEnv); ok && v != "" && v != "0" {
			cfg.PreserveSymlinks = true
		}
	}
	return cfg, nil
}

// Load reads a configuration file from the given path and returns a domain.Config.
func Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := domain.DefaultConfig()
	cfg.PreserveSymlinks = file.PreserveSymlinks
	if file.LogLevel != "" {
		cfg.LogLevel = domain.ParseLogLevel(file.LogLevel)
	}

	if file.Extensions != nil {
		exts, err := validateExtensions(file.Extensions)
		if err != nil {
			return domain.Config{}, zerr.With(err, "path", path)
		}
		cfg.Extensions = exts
	}

	return cfg, nil
}

func validateExtensions(exts []string) ([]string, error) {
	seen := make(map[string]bool, len(exts))
	res := make([]string, 0, len(exts))

	for _, ext := range exts {
		if err := domain.ValidateExtension(ext); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "extension", ext)
		}
		if seen[ext] {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "duplicate extension"), "extension", ext)
		}
		seen[ext] = true
		res = append(res, ext)
	}
	return res, nil
}
