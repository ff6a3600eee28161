package mockservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tunemix/tunemix/pkg/models"
	"github.com/tunemix/tunemix/pkg/submit"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New("http://mock.test")
	s.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	srv := httptest.NewServer(s.Router(false))
	t.Cleanup(srv.Close)
	return s, srv
}

func newClient(url string) *submit.Client {
	return submit.NewClient(models.ServiceSettings{
		BaseURL:  url,
		Endpoint: models.DefaultEndpoint,
		Timeout:  2 * time.Second,
	})
}

func TestServer_CreatePlaylist(t *testing.T) {
	s, srv := newTestServer(t)

	res, err := newClient(srv.URL).Submit(context.Background(), models.Submission{
		PlaylistName: "Road Trip",
		Keywords:     []string{"rock", " ", "pop"},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://mock.test/playlists/mock-pl-1", res.URL)

	p, ok := s.Playlist("mock-pl-1")
	require.True(t, ok)
	assert.Equal(t, "Road Trip", p.Name)
	assert.Equal(t, []string{"rock", "pop"}, p.Keywords)
}

func TestServer_DefaultName(t *testing.T) {
	s, srv := newTestServer(t)

	_, err := newClient(srv.URL).Submit(context.Background(), models.Submission{Keywords: []string{"jazz"}})
	require.NoError(t, err)

	p, ok := s.Playlist("mock-pl-1")
	require.True(t, ok)
	assert.Equal(t, "[My Go Playlist] 2026-01-02 03:04:05", p.Name)
}

func TestServer_RejectsEmptyKeywords(t *testing.T) {
	_, srv := newTestServer(t)

	_, err := newClient(srv.URL).Submit(context.Background(), models.Submission{Keywords: []string{"", " "}})

	var sErr *submit.SubmissionError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, http.StatusBadRequest, sErr.StatusCode)
}

func TestServer_RejectsInvalidJSON(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/create-playlist", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Preflight(t *testing.T) {
	_, srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/create-playlist", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_GetPlaylist(t *testing.T) {
	_, srv := newTestServer(t)
	_, err := newClient(srv.URL).Submit(context.Background(), models.Submission{PlaylistName: "x", Keywords: []string{"a"}})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/playlists/mock-pl-1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p Playlist
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "x", p.Name)

	resp2, err := http.Get(srv.URL + "/playlists/unknown")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
