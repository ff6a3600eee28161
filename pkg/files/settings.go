package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tunemix/tunemix/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	ConfigDirName    = "tunemix"
	SettingsFileName = "settings.yaml"

	// Environment overrides
	EnvConfigPath = "TUNEMIX_CONFIG"
	EnvServiceURL = "TUNEMIX_SERVICE_URL"
)

// SettingsPath returns where the settings file lives.
// TUNEMIX_CONFIG wins over the user config directory.
func SettingsPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, SettingsFileName), nil
}

// ReadSettings loads settings from the default path
func ReadSettings() (*models.Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	return ReadSettingsFrom(path)
}

// ReadSettingsFrom loads settings from path. A missing file yields the defaults.
// TUNEMIX_SERVICE_URL overrides service.base_url.
func ReadSettingsFrom(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(content, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
		}
	}

	if u := strings.TrimSpace(os.Getenv(EnvServiceURL)); u != "" {
		settings.Service.BaseURL = u
	}
	settings.ApplyDefaults()

	return settings, nil
}

// WriteSettings writes settings to path, creating parent directories
func WriteSettings(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// InitSettings writes the default settings unless a file already exists
func InitSettings(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("settings file already exists: %s (use --force to overwrite)", path)
		}
	}
	return WriteSettings(path, models.DefaultSettings())
}
