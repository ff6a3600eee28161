package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	rowIndent      = 2
	clearIndicator = "×"
)

// FieldRenderer lays out one input row: the input box followed by its clear indicator
type FieldRenderer struct {
	Width int // width of the input box
}

// NewFieldRenderer creates a renderer for boxes of the given width
func NewFieldRenderer(width int) *FieldRenderer {
	return &FieldRenderer{Width: width}
}

// InputWidth is the number of characters the text input may show inside the box
func (fr *FieldRenderer) InputWidth() int {
	w := fr.Width - 4
	if w < 1 {
		return 1
	}
	return w
}

// ClearColumn returns the screen column of the clear indicator
func (fr *FieldRenderer) ClearColumn() int {
	return rowIndent + fr.Width + 1
}

// InBox reports whether column x falls inside the input box
func (fr *FieldRenderer) InBox(x int) bool {
	return x >= rowIndent && x < rowIndent+fr.Width
}

// OnClear reports whether column x hits the clear indicator. One column of
// slack on each side keeps it easy to target.
func (fr *FieldRenderer) OnClear(x int) bool {
	col := fr.ClearColumn()
	return x >= col-1 && x <= col+1
}

// RenderRow renders a row from the text input's own view
func (fr *FieldRenderer) RenderRow(inputView string, focused, showClear, hovered bool) string {
	borderColor := ColorInactive
	if focused {
		borderColor = ColorBrand
	}

	box := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorNormal)).
		BorderStyle(lipgloss.Border{Left: "▌"}).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(fr.Width - 1).
		MaxHeight(1).
		PaddingLeft(1).
		Render(inputView)

	clear := " "
	if showClear {
		clear = GetClearIndicatorStyle(hovered).Render(clearIndicator)
	}

	return strings.Repeat(" ", rowIndent) + box + " " + clear
}
