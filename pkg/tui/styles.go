package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for primary actions
	ColorError    = "196" // Red for errors (same as danger)
	ColorBrand    = "35"  // Green field outline
)

// Common styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimary)).
			Underline(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBorder))

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// Submit button, highlighted while focused
func GetSubmitButtonStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)
	if focused {
		return style.
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite))
	}
	return style.
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorNormal))
}

// Clear indicator, brighter while the pointer is over it
func GetClearIndicatorStyle(hovered bool) lipgloss.Style {
	color := ColorDim
	if hovered {
		color = ColorWhite
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(hovered)
}
