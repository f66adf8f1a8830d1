package environment_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwise/inkwise/pkg/environment"
)

func TestNewEnvironment_FromProvidedStruct(t *testing.T) {
	fs := afero.NewMemMapFs()

	env, err := environment.NewEnvironment(fs, &environment.Environment{
		Host:     "0.0.0.0",
		Port:     "9000",
		SpoolDir: "/custom/spool",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", env.Addr())
	assert.Equal(t, "/custom/spool", env.SpoolDir)

	exists, err := afero.DirExists(fs, "/custom/spool")
	require.NoError(t, err)
	assert.True(t, exists, "spool directory should be created")
}

func TestNewEnvironment_DefaultSpoolDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	env, err := environment.NewEnvironment(fs, &environment.Environment{})
	require.NoError(t, err)

	assert.NotEmpty(t, env.SpoolDir)

	exists, err := afero.DirExists(fs, env.SpoolDir)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewEnvironment_FromOSEnviron(t *testing.T) {
	t.Setenv("INKWISE_HOST", "10.0.0.1")
	t.Setenv("INKWISE_PORT", "8888")
	t.Setenv("INKWISE_SPOOL_DIR", "/env/spool")
	t.Setenv("INKWISE_MAX_UPLOAD", "1024")

	fs := afero.NewMemMapFs()
	env, err := environment.NewEnvironment(fs, nil)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1:8888", env.Addr())
	assert.Equal(t, "/env/spool", env.SpoolDir)
	assert.Equal(t, int64(1024), env.MaxUploadSize)
}
