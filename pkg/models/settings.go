package models

import "time"

// Settings represents the application configuration
type Settings struct {
	Service  ServiceSettings  `json:"service" yaml:"service"`
	UI       UISettings       `json:"ui" yaml:"ui"`
	Defaults DefaultsSettings `json:"defaults" yaml:"defaults"`
}

// ServiceSettings controls how the playlist service is reached
type ServiceSettings struct {
	BaseURL  string        `json:"base_url" yaml:"base_url"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// UISettings controls UI preferences
type UISettings struct {
	BlockDuplicateSubmit bool   `json:"block_duplicate_submit" yaml:"block_duplicate_submit"`
	CopyURLOnSuccess     bool   `json:"copy_url_on_success" yaml:"copy_url_on_success"`
	Mouse                bool   `json:"mouse" yaml:"mouse"`
	KeywordPlaceholder   string `json:"keyword_placeholder" yaml:"keyword_placeholder"`
	NamePlaceholder      string `json:"name_placeholder" yaml:"name_placeholder"`
}

// DefaultsSettings holds values prefilled when the builder opens
type DefaultsSettings struct {
	PlaylistName string `json:"playlist_name" yaml:"playlist_name"`
}

const (
	DefaultBaseURL            = "http://localhost:8080"
	DefaultEndpoint           = "/create-playlist"
	DefaultTimeout            = 30 * time.Second
	DefaultKeywordPlaceholder = "Keyword (song name, artist name, etc.)"
	DefaultNamePlaceholder    = "Playlist name"
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Service: ServiceSettings{
			BaseURL:  DefaultBaseURL,
			Endpoint: DefaultEndpoint,
			Timeout:  DefaultTimeout,
		},
		UI: UISettings{
			BlockDuplicateSubmit: true,
			CopyURLOnSuccess:     false,
			Mouse:                true,
			KeywordPlaceholder:   DefaultKeywordPlaceholder,
			NamePlaceholder:      DefaultNamePlaceholder,
		},
		Defaults: DefaultsSettings{
			PlaylistName: "",
		},
	}
}

// ApplyDefaults fills zero values left by a partial settings file
func (s *Settings) ApplyDefaults() {
	def := DefaultSettings()
	if s.Service.BaseURL == "" {
		s.Service.BaseURL = def.Service.BaseURL
	}
	if s.Service.Endpoint == "" {
		s.Service.Endpoint = def.Service.Endpoint
	}
	if s.Service.Timeout <= 0 {
		s.Service.Timeout = def.Service.Timeout
	}
	if s.UI.KeywordPlaceholder == "" {
		s.UI.KeywordPlaceholder = def.UI.KeywordPlaceholder
	}
	if s.UI.NamePlaceholder == "" {
		s.UI.NamePlaceholder = def.UI.NamePlaceholder
	}
}
