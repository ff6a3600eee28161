package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFieldRenderer_HitTesting(t *testing.T) {
	fr := NewFieldRenderer(20)

	tests := []struct {
		name    string
		x       int
		inBox   bool
		onClear bool
	}{
		{name: "indent", x: 0},
		{name: "box start", x: rowIndent, inBox: true},
		{name: "box end", x: rowIndent + 19, inBox: true},
		{name: "gap before indicator", x: rowIndent + 20, onClear: true},
		{name: "indicator", x: fr.ClearColumn(), onClear: true},
		{name: "just after indicator", x: fr.ClearColumn() + 1, onClear: true},
		{name: "far right", x: fr.ClearColumn() + 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inBox, fr.InBox(tt.x))
			assert.Equal(t, tt.onClear, fr.OnClear(tt.x))
		})
	}
}

func TestFieldRenderer_InputWidth(t *testing.T) {
	assert.Equal(t, 56, NewFieldRenderer(60).InputWidth())
	assert.Equal(t, 1, NewFieldRenderer(3).InputWidth())
}

func TestFieldRenderer_RenderRow(t *testing.T) {
	fr := NewFieldRenderer(20)

	row := fr.RenderRow("jazz", false, true, false)
	assert.Equal(t, 1, lipgloss.Height(row))
	assert.True(t, strings.HasPrefix(row, "  "))
	assert.Contains(t, row, "jazz")
	assert.Equal(t, fr.ClearColumn()+1, lipgloss.Width(row))
	assert.True(t, strings.HasSuffix(row, clearIndicator))

	hidden := fr.RenderRow("jazz", true, false, false)
	assert.NotContains(t, hidden, clearIndicator)
	assert.Equal(t, lipgloss.Width(row), lipgloss.Width(hidden))
}
