package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tunemix/tunemix/pkg/models"
)

func TestReadSettingsFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvServiceURL, "")

	settings, err := ReadSettingsFrom(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestReadSettingsFrom_PartialFile(t *testing.T) {
	t.Setenv(EnvServiceURL, "")
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `service:
  base_url: http://music.example:9000
  timeout: 5s
ui:
  block_duplicate_submit: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := ReadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "http://music.example:9000", settings.Service.BaseURL)
	assert.Equal(t, models.DefaultEndpoint, settings.Service.Endpoint)
	assert.Equal(t, 5*time.Second, settings.Service.Timeout)
	assert.False(t, settings.UI.BlockDuplicateSubmit)
	assert.Equal(t, models.DefaultKeywordPlaceholder, settings.UI.KeywordPlaceholder)
}

func TestReadSettingsFrom_EnvOverride(t *testing.T) {
	t.Setenv(EnvServiceURL, "http://override.test")

	settings, err := ReadSettingsFrom(filepath.Join(t.TempDir(), "settings.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "http://override.test", settings.Service.BaseURL)
}

func TestReadSettingsFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service: [unterminated"), 0644))

	_, err := ReadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings YAML")
}

func TestWriteSettings_RoundTrip(t *testing.T) {
	t.Setenv(EnvServiceURL, "")
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := models.DefaultSettings()
	want.Service.BaseURL = "http://round.trip"
	want.UI.CopyURLOnSuccess = true
	want.Defaults.PlaylistName = "Mix"

	require.NoError(t, WriteSettings(path, want))
	got, err := ReadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInitSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, InitSettings(path, false))
	err := InitSettings(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.NoError(t, InitSettings(path, true))
}

func TestSettingsPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")

	path, err := SettingsPath()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}
