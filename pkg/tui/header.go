package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerLogo = `▀█▀ █ █ █▄ █ █▀▀ █▀▄▀█ █ ▀▄▀
 █  █▄█ █ ▀█ ██▄ █ ▀ █ █ █ █`

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(headerLogo)
	logoWidth := lipgloss.Width(headerLogo)
	contentWidth := width - 2

	// Not enough room for both; keep the title
	if title != "" && contentWidth < logoWidth+lipgloss.Width(title)+1 {
		return headerPadding.Render(titleStyle.Render(title) + "\n")
	}

	var headerContent string
	if title != "" {
		// Title sits on the logo's last row
		titleRendered := titleStyle.Render(strings.Repeat("\n", strings.Count(headerLogo, "\n")) + title)
		gap := contentWidth - lipgloss.Width(title) - logoWidth
		headerContent = lipgloss.JoinHorizontal(
			lipgloss.Top,
			titleRendered,
			lipgloss.NewStyle().Width(gap).Render(""),
			logoRendered,
		)
	} else {
		headerContent = lipgloss.NewStyle().
			Width(contentWidth).
			Align(lipgloss.Right).
			Render(logoRendered)
	}

	return headerPadding.Render(headerContent)
}

// renderSeparator draws the horizontal rule between the name and the keywords
func renderSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return SeparatorStyle.Render(strings.Repeat("─", width))
}
