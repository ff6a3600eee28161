package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultBaseURL, s.Service.BaseURL)
	assert.Equal(t, DefaultEndpoint, s.Service.Endpoint)
	assert.Equal(t, DefaultTimeout, s.Service.Timeout)
	assert.True(t, s.UI.BlockDuplicateSubmit)
	assert.True(t, s.UI.Mouse)
	assert.False(t, s.UI.CopyURLOnSuccess)
}

func TestSettings_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     ServiceSettings
	}{
		{
			name:     "empty settings get every default",
			settings: Settings{},
			want: ServiceSettings{
				BaseURL:  DefaultBaseURL,
				Endpoint: DefaultEndpoint,
				Timeout:  DefaultTimeout,
			},
		},
		{
			name: "explicit values are kept",
			settings: Settings{Service: ServiceSettings{
				BaseURL:  "http://example.test",
				Endpoint: "/make",
				Timeout:  5 * time.Second,
			}},
			want: ServiceSettings{
				BaseURL:  "http://example.test",
				Endpoint: "/make",
				Timeout:  5 * time.Second,
			},
		},
		{
			name:     "negative timeout is replaced",
			settings: Settings{Service: ServiceSettings{Timeout: -1}},
			want: ServiceSettings{
				BaseURL:  DefaultBaseURL,
				Endpoint: DefaultEndpoint,
				Timeout:  DefaultTimeout,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.settings
			s.ApplyDefaults()
			assert.Equal(t, tt.want, s.Service)
			assert.Equal(t, DefaultKeywordPlaceholder, s.UI.KeywordPlaceholder)
			assert.Equal(t, DefaultNamePlaceholder, s.UI.NamePlaceholder)
		})
	}
}
