package environment

import (
	"path/filepath"

	env "github.com/Netflix/go-env"
	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

// Environment holds environment configurations loaded from the OS or defaults.
type Environment struct {
	Host          string `env:"INKWISE_HOST,default=127.0.0.1"`
	Port          string `env:"INKWISE_PORT,default=8080"`
	SpoolDir      string `env:"INKWISE_SPOOL_DIR"`
	ConfigFile    string `env:"INKWISE_CONFIG"`
	Debug         string `env:"DEBUG,default=0"`
	MaxUploadSize int64  `env:"INKWISE_MAX_UPLOAD,default=10485760"`
	Extras        env.EnvSet
}

// Addr returns the host:port pair the server binds to.
func (e *Environment) Addr() string {
	return e.Host + ":" + e.Port
}

// defaultSpoolDir places request spool files under the XDG cache directory.
func defaultSpoolDir() string {
	return filepath.Join(xdg.CacheHome, "inkwise", "spool")
}

// NewEnvironment initializes and returns a new Environment based on provided or
// default settings. The spool directory is created when missing.
func NewEnvironment(fs afero.Fs, environ *Environment) (*Environment, error) {
	if environ == nil {
		environ = &Environment{}
		extras, err := env.UnmarshalFromEnviron(environ)
		if err != nil {
			return nil, err
		}
		environ.Extras = extras
	}

	if environ.SpoolDir == "" {
		environ.SpoolDir = defaultSpoolDir()
	}

	if err := fs.MkdirAll(environ.SpoolDir, 0o750); err != nil {
		return nil, err
	}

	return environ, nil
}
