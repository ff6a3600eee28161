// Package submit talks to the playlist service that turns a playlist name and a
// keyword list into a shareable playlist URL.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tunemix/tunemix/pkg/models"
)

// maxErrorBody caps how much of a failed response is echoed back in the error
const maxErrorBody = 512

// Client posts submissions to the playlist service
type Client struct {
	BaseURL    string
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient creates a client from the service settings
func NewClient(settings models.ServiceSettings) *Client {
	return &Client{
		BaseURL:  settings.BaseURL,
		Endpoint: settings.Endpoint,
		HTTPClient: &http.Client{
			Timeout: settings.Timeout,
		},
	}
}

// URL returns the full endpoint the client posts to
func (c *Client) URL() string {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = models.DefaultEndpoint
	}
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// Submit creates a playlist. Any non-2xx status, transport failure or unreadable
// body is returned as a *SubmissionError.
func (c *Client) Submit(ctx context.Context, sub models.Submission) (*models.SubmissionResult, error) {
	if sub.Keywords == nil {
		sub.Keywords = []string{}
	}
	b, err := json.Marshal(sub)
	if err != nil {
		return nil, &SubmissionError{Err: fmt.Errorf("failed to encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(b))
	if err != nil {
		return nil, &SubmissionError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	var res models.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if res.URL == "" {
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Err: errors.New("response has no url")}
	}

	return &res, nil
}
