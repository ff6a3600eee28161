package cli

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// MaxPlaylistNameLength matches the builder's input limit
const MaxPlaylistNameLength = 100

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateServiceURL checks that the service base URL is an absolute http(s) URL
func ValidateServiceURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("service URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid service URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid service URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid service URL %q: missing host", raw)
	}

	return nil
}

// ValidatePlaylistName validates a playlist name. Empty names are allowed;
// the service picks one.
func ValidatePlaylistName(name string) error {
	if len([]rune(name)) > MaxPlaylistNameLength {
		return fmt.Errorf("playlist name is too long (max %d characters)", MaxPlaylistNameLength)
	}
	if strings.ContainsAny(name, "\n\r") {
		return fmt.Errorf("playlist name cannot contain line breaks")
	}
	return nil
}

// ValidateListenAddr validates a host:port listen address such as ":8080"
func ValidateListenAddr(addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
