package config

// Configfile represents the structure of the modfind.yaml configuration file.
type Configfile struct {
	Version          string   `yaml:"version"`
	PreserveSymlinks bool     `yaml:"preserve_symlinks"`
	Extensions       []string `yaml:"extensions"`
	LogLevel         string   `yaml:"log_level"`
}
