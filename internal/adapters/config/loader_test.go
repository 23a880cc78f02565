package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modfind/internal/adapters/config"
	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, config.DefaultFilename)
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return configPath
}

func noEnv(string) (string, bool) { return "", false }

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
preserve_symlinks: true
extensions: [".mjs", ".js", ".json"]
log_level: debug
`
	configPath := writeConfig(t, t.TempDir(), content)

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.True(t, cfg.PreserveSymlinks)
	assert.Equal(t, []string{".mjs", ".js", ".json"}, cfg.Extensions)
	assert.Equal(t, domain.LogLevelDebug, cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), `version: "1"`)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	assert.False(t, cfg.PreserveSymlinks)
	assert.Equal(t, domain.DefaultExtensions, cfg.Extensions)
	assert.Equal(t, domain.LogLevelInfo, cfg.LogLevel)
}

func TestLoad_EmptyExtensionList(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), `extensions: []`)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.Extensions)
}

func TestLoad_InvalidExtension(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), `extensions: [".js", "json"]`)

	_, err := config.Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T: %v", err, err)
	}

	meta := zErr.Metadata()
	if ext, ok := meta["extension"].(string); !ok || ext != "json" {
		t.Errorf("expected metadata extension=json, got %v", meta["extension"])
	}
}

func TestLoad_DuplicateExtension(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), `extensions: [".js", ".json", ".js"]`)

	_, err := config.Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate extension")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("File Not Found", func(t *testing.T) {
		_, err := config.Load("non-existent-file.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		content := `
preserve_symlinks: true
extensions: [".js"  # Unclosed list
`
		configPath := writeConfig(t, t.TempDir(), content)

		_, err := config.Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestFileConfigLoader_MissingFileUsesDefaults(t *testing.T) {
	loader := &config.FileConfigLoader{Filename: config.DefaultFilename, LookupEnv: noEnv}

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestFileConfigLoader_ReadsWorkingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `extensions: [".ts"]`)

	loader := &config.FileConfigLoader{Filename: config.DefaultFilename, LookupEnv: noEnv}

	cfg, err := loader.Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{".ts"}, cfg.Extensions)
}

func TestFileConfigLoader_PropagatesParseErrors(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `extensions: [`)

	loader := &config.FileConfigLoader{Filename: config.DefaultFilename, LookupEnv: noEnv}

	_, err := loader.Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestFileConfigLoader_PreserveSymlinksEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected bool
	}{
		{"unset", "", false, false},
		{"empty", "", true, false},
		{"zero", "0", true, false},
		{"one", "1", true, true},
		{"true", "true", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &config.FileConfigLoader{
				Filename: config.DefaultFilename,
				LookupEnv: func(key string) (string, bool) {
					if key != config.PreserveSymlinksEnv {
						return "", false
					}
					return tt.value, tt.set
				},
			}

			cfg, err := loader.Load(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.PreserveSymlinks)
		})
	}
}
