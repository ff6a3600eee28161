package models

// Field is a single keyword entry. Fields are identified by position only.
type Field struct {
	Value string
}

// Submission is the payload sent to the playlist service
type Submission struct {
	PlaylistName string   `json:"playlistName" yaml:"playlist_name"`
	Keywords     []string `json:"keywords" yaml:"keywords"`
}

// SubmissionResult is what the playlist service returns on success
type SubmissionResult struct {
	URL string `json:"url" yaml:"url"`
}
