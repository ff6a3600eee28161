package cli

import (
	"fmt"
	"os"

	"github.com/tunemix/tunemix/pkg/files"
	"github.com/tunemix/tunemix/pkg/models"
)

// CommandContext resolves the settings file shared by all commands
type CommandContext struct {
	ConfigPath string
	Settings   *models.Settings
}

// NewCommandContext creates a new command context. The --config flag wins
// over TUNEMIX_CONFIG and the user config directory.
func NewCommandContext() (*CommandContext, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = files.SettingsPath()
		if err != nil {
			return nil, err
		}
	}
	return &CommandContext{ConfigPath: path}, nil
}

// LoadSettings reads the settings file once, falling back to defaults when it is missing
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := files.ReadSettingsFrom(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := ValidateServiceURL(settings.Service.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", c.ConfigPath, err)
	}

	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		PrintWarning("%v (using defaults)", err)
		settings = models.DefaultSettings()
		c.Settings = settings
	}
	return settings
}

// ConfigExists reports whether the settings file is present
func (c *CommandContext) ConfigExists() bool {
	_, err := os.Stat(c.ConfigPath)
	return err == nil
}
