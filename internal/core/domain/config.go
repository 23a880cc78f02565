package domain

// DefaultExtensions is the handler order used when no configuration overrides it.
var DefaultExtensions = []string{".js", ".json", ".node"}

// Config is the process-wide resolver configuration.
type Config struct {
	// PreserveSymlinks keeps symlinked paths intact for non-entry-point resolutions.
	PreserveSymlinks bool

	// Extensions seeds the content-type handler registry, in precedence order.
	Extensions []string

	// LogLevel is the minimum level written by the logger.
	LogLevel LogLevel
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	exts := make([]string, len(DefaultExtensions))
	copy(exts, DefaultExtensions)
	return Config{
		Extensions: exts,
		LogLevel:   LogLevelInfo,
	}
}
