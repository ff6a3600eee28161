package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}
	assert.Error(t, ValidateOutputFormat("csv"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestValidateServiceURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "localhost", url: "http://localhost:8080"},
		{name: "https with path", url: "https://playlists.example.com/api"},
		{name: "empty", url: "  ", wantErr: "cannot be empty"},
		{name: "no scheme", url: "localhost:8080", wantErr: "scheme"},
		{name: "ftp", url: "ftp://example.com", wantErr: "scheme"},
		{name: "no host", url: "http://", wantErr: "missing host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServiceURL(tt.url)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidatePlaylistName(t *testing.T) {
	assert.NoError(t, ValidatePlaylistName(""))
	assert.NoError(t, ValidatePlaylistName("Road Trip"))
	assert.NoError(t, ValidatePlaylistName(strings.Repeat("é", MaxPlaylistNameLength)))
	assert.Error(t, ValidatePlaylistName(strings.Repeat("a", MaxPlaylistNameLength+1)))
	assert.Error(t, ValidatePlaylistName("two\nlines"))
}

func TestValidateListenAddr(t *testing.T) {
	assert.NoError(t, ValidateListenAddr(":8080"))
	assert.NoError(t, ValidateListenAddr("127.0.0.1:9000"))
	assert.Error(t, ValidateListenAddr("8080"))
}
