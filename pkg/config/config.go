package config

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config contains the tunable settings of the service. Values not present in
// the config file keep their defaults; the environment layer supplies the bind
// address and spool directory.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Upload UploadConfig `yaml:"upload"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// CORS origins; "*" allows any origin.
	AllowOrigins []string `yaml:"allow_origins"`
}

// UploadConfig contains upload handling settings.
type UploadConfig struct {
	// MaxSize caps the request body in bytes.
	MaxSize int64 `yaml:"max_size"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowOrigins:    []string{"*"},
		},
		Upload: UploadConfig{
			MaxSize: 10 * 1024 * 1024,
		},
	}
}

// LoadConfig loads configuration from a YAML file over the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(fs afero.Fs, configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}
