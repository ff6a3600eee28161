// Package mockservice is a local stand-in for the playlist service. It accepts
// the same requests the builder sends and answers with fabricated playlist URLs.
package mockservice

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tunemix/tunemix/pkg/models"
)

const defaultNamePrefix = "[My Go Playlist] "

// Playlist is a playlist created by the mock service
type Playlist struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Keywords []string  `json:"keywords"`
	Created  time.Time `json:"created"`
}

// Server holds the playlists created since startup
type Server struct {
	PublicURL string
	Now       func() time.Time

	mu        sync.Mutex
	nextID    int
	playlists map[string]Playlist
}

// New creates a server. publicURL prefixes the URLs it hands out.
func New(publicURL string) *Server {
	return &Server{
		PublicURL: strings.TrimRight(publicURL, "/"),
		Now:       time.Now,
		playlists: make(map[string]Playlist),
	}
}

// Router wires the HTTP routes
func (s *Server) Router(logRequests bool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if logRequests {
		r.Use(middleware.Logger)
	}
	r.Use(cors)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"service": "tunemix-mock",
		})
	})
	r.Post(models.DefaultEndpoint, s.handleCreate)
	r.Get("/playlists/{id}", s.handleGet)

	return r
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Submission
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	var keywords []string
	for _, k := range in.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		writeError(w, http.StatusBadRequest, "at least one keyword is required")
		return
	}

	p := s.create(in.PlaylistName, keywords)
	writeJSON(w, http.StatusOK, models.SubmissionResult{URL: s.PublicURL + "/playlists/" + p.ID})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	p, ok := s.playlists[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "playlist not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) create(name string, keywords []string) Playlist {
	now := s.Now()
	if strings.TrimSpace(name) == "" {
		name = defaultNamePrefix + now.Format("2006-01-02 15:04:05")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	p := Playlist{
		ID:       fmt.Sprintf("mock-pl-%d", s.nextID),
		Name:     name,
		Keywords: keywords,
		Created:  now,
	}
	s.playlists[p.ID] = p
	return p
}

// Playlist returns a created playlist by id
func (s *Server) Playlist(id string) (Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	return p, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
