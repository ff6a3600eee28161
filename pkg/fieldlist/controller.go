// Package fieldlist holds the keyword field list behind the playlist builder.
//
// A Controller owns an ordered, never-empty list of keyword fields, the playlist
// name, the pending focus request and the hover indicators. Render surfaces bind
// their events to the command methods and read state back through the queries.
package fieldlist

import (
	"github.com/tunemix/tunemix/pkg/models"
)

const noIndex = -1

// Controller is the state object behind the builder form.
// Indices passed to its methods must be in range; out-of-range indices panic.
type Controller struct {
	fields       []models.Field
	playlistName string

	// Pending focus target, noIndex when nothing is pending
	focusRequest int

	playlistNameHovered bool
	hoveredField        int

	result *models.SubmissionResult
}

// New creates a controller holding a single empty field
func New() *Controller {
	return &Controller{
		fields:       []models.Field{{}},
		focusRequest: noIndex,
		hoveredField: noIndex,
	}
}

// Len returns the number of keyword fields. It is always at least 1.
func (c *Controller) Len() int {
	return len(c.fields)
}

// Field returns the field at index
func (c *Controller) Field(index int) models.Field {
	return c.fields[index]
}

// Fields returns a copy of the field list
func (c *Controller) Fields() []models.Field {
	out := make([]models.Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Values returns every field value in order, empty ones included
func (c *Controller) Values() []string {
	values := make([]string, len(c.fields))
	for i, f := range c.fields {
		values[i] = f.Value
	}
	return values
}

// EditField replaces the value at index
func (c *Controller) EditField(index int, value string) {
	c.fields[index].Value = value
}

// HandleEnterKey runs when the user confirms a field. Confirming any field
// appends a new one at the end of the list; index is not consulted.
func (c *Controller) HandleEnterKey(index int) {
	c.AppendField()
}

// AppendField adds an empty field at the end and requests focus for it
func (c *Controller) AppendField() {
	c.fields = append(c.fields, models.Field{})
	c.focusRequest = len(c.fields) - 1
}

// ClearOrRemoveField clears a non-empty field in place, or removes an empty one.
// The sole remaining field is never removed. Focus is requested for index, or for
// the new last field when the last position was removed.
func (c *Controller) ClearOrRemoveField(index int) {
	if c.fields[index].Value != "" {
		c.fields[index].Value = ""
		c.focusRequest = index
		return
	}

	if len(c.fields) > 1 {
		c.fields = append(c.fields[:index], c.fields[index+1:]...)
		if c.hoveredField >= len(c.fields) {
			c.hoveredField = noIndex
		}
	}

	if index >= len(c.fields) {
		index = len(c.fields) - 1
	}
	c.focusRequest = index
}

// PlaylistName returns the current playlist name
func (c *Controller) PlaylistName() string {
	return c.playlistName
}

// SetPlaylistName replaces the playlist name
func (c *Controller) SetPlaylistName(name string) {
	c.playlistName = name
}

// ClearPlaylistName empties the playlist name. The field list is untouched.
func (c *Controller) ClearPlaylistName() {
	c.playlistName = ""
	c.playlistNameHovered = false
}

// ShowPlaylistNameClear reports whether the name's clear indicator is shown
func (c *Controller) ShowPlaylistNameClear() bool {
	return c.playlistName != ""
}

// SetPlaylistNameHovered records whether the pointer is over the name's clear indicator
func (c *Controller) SetPlaylistNameHovered(hovered bool) {
	c.playlistNameHovered = hovered
}

// PlaylistNameHovered reports the name's clear indicator hover state
func (c *Controller) PlaylistNameHovered() bool {
	return c.playlistNameHovered
}

// SetHoveredField records which field's clear indicator is under the pointer.
// Pass a negative index to clear the hover state.
func (c *Controller) SetHoveredField(index int) {
	if index < 0 || index >= len(c.fields) {
		c.hoveredField = noIndex
		return
	}
	c.hoveredField = index
}

// HoveredField returns the hovered field index, if any
func (c *Controller) HoveredField() (int, bool) {
	if c.hoveredField == noIndex {
		return 0, false
	}
	return c.hoveredField, true
}

// FocusRequested reports whether index is the pending focus target without consuming it
func (c *Controller) FocusRequested(index int) bool {
	return c.focusRequest != noIndex && c.focusRequest == index
}

// ConsumeFocusRequest returns the pending focus target and clears it.
// A second call without an intervening mutation returns false.
func (c *Controller) ConsumeFocusRequest() (int, bool) {
	if c.focusRequest == noIndex {
		return 0, false
	}
	index := c.focusRequest
	c.focusRequest = noIndex
	return index, true
}

// Validate returns a *ValidationError when no field holds a keyword
func (c *Controller) Validate() error {
	for _, f := range c.fields {
		if f.Value != "" {
			return nil
		}
	}
	return &ValidationError{Message: "Please enter at least one keyword"}
}

// PrepareSubmission projects the current state into a request payload.
// Empty keywords are dropped; order and duplicates are preserved. The playlist
// name is passed through as is. Call Validate first.
func (c *Controller) PrepareSubmission() models.Submission {
	keywords := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		if f.Value == "" {
			continue
		}
		keywords = append(keywords, f.Value)
	}
	return models.Submission{
		PlaylistName: c.playlistName,
		Keywords:     keywords,
	}
}

// Result returns the last successful submission result, if any
func (c *Controller) Result() (*models.SubmissionResult, bool) {
	return c.result, c.result != nil
}

// SetResult records a successful submission
func (c *Controller) SetResult(result *models.SubmissionResult) {
	c.result = result
}

// ClearResult forgets the last submission result
func (c *Controller) ClearResult() {
	c.result = nil
}
