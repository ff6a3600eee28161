package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunemix/tunemix/pkg/files"
	"github.com/tunemix/tunemix/pkg/models"
)

func TestCommandContext_ConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(files.EnvConfigPath, filepath.Join(dir, "env.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	ctx, err := NewCommandContext()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env.yaml"), ctx.ConfigPath)

	SetConfigPath(filepath.Join(dir, "flag.yaml"))
	ctx, err = NewCommandContext()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flag.yaml"), ctx.ConfigPath)
	assert.False(t, ctx.ConfigExists())
}

func TestCommandContext_LoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	t.Setenv(files.EnvServiceURL, "")
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	t.Run("missing file gives defaults", func(t *testing.T) {
		ctx, err := NewCommandContext()
		require.NoError(t, err)

		settings, err := ctx.LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, models.DefaultBaseURL, settings.Service.BaseURL)
	})

	t.Run("invalid base url is rejected", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("service:\n  base_url: localhost\n"), 0644))
		ctx, err := NewCommandContext()
		require.NoError(t, err)
		assert.True(t, ctx.ConfigExists())

		_, err = ctx.LoadSettings()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheme")

		_, errOut := captureIO(t, "")
		settings := ctx.LoadSettingsWithDefault()
		assert.Equal(t, models.DefaultBaseURL, settings.Service.BaseURL)
		assert.Contains(t, errOut.String(), "using defaults")
	})

	t.Run("settings are cached", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("service:\n  base_url: http://svc:9000\n"), 0644))
		ctx, err := NewCommandContext()
		require.NoError(t, err)

		first, err := ctx.LoadSettings()
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))
		second, err := ctx.LoadSettings()
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, "http://svc:9000", second.Service.BaseURL)
	})
}
