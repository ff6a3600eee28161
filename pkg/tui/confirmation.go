package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Simple inline message
	ConfirmTypeDialog                          // Full dialog with border and centered layout
	ConfirmTypeNotice                          // Dialog with a single acknowledge option
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string           // Title for dialog type (optional)
	Message     string           // Main confirmation message
	Warning     string           // Optional warning text (shown in orange)
	Details     []string         // Optional detail lines
	Destructive bool             // If true, Yes is red, No is green
	Type        ConfirmationType // Visual style
	YesLabel    string           // Custom label for Yes (default: "Yes", "OK" for notices)
	NoLabel     string           // Custom label for No (default: "No")
	Width       int              // Width for dialog type
}

// ConfirmationModel handles confirmation prompts and blocking notices
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	viewWidth int // Width for centering inline messages
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		if m.config.Type == ConfirmTypeNotice {
			m.config.YesLabel = "OK"
		} else {
			m.config.YesLabel = "Yes"
		}
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// ShowNotice shows a blocking message that is dismissed with enter or esc
func (m *ConfirmationModel) ShowNotice(title, message string, details []string, width int) {
	m.Show(ConfirmationConfig{
		Title:   title,
		Message: message,
		Details: details,
		Type:    ConfirmTypeNotice,
		Width:   width,
	}, nil, nil)
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Config returns the configuration currently shown
func (m *ConfirmationModel) Config() ConfirmationConfig {
	return m.config
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	if m.config.Type == ConfirmTypeNotice {
		switch msg.String() {
		case "enter", "esc", " ", "y", "Y":
			m.active = false
			if m.onConfirm != nil {
				return m.onConfirm()
			}
		}
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	switch m.config.Type {
	case ConfirmTypeDialog, ConfirmTypeNotice:
		return m.renderDialog()
	default:
		return m.renderInline()
	}
}

// ViewWithWidth renders the confirmation with a specific width for centering
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

func formatConfirmOptions(destructive bool) string {
	yesColor, noColor := ColorSuccess, ColorDanger
	if destructive {
		yesColor, noColor = ColorDanger, ColorSuccess
	}
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(yesColor)).Bold(true).Render("[y]")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(noColor)).Bold(true).Render("[n]")
	return yes + " / " + no
}

func (m *ConfirmationModel) renderInline() string {
	options := formatConfirmOptions(m.config.Destructive)
	message := fmt.Sprintf("%s %s", m.config.Message, options)

	if m.viewWidth > 0 {
		messageWidth := lipgloss.Width(message)
		if messageWidth < m.viewWidth {
			return lipgloss.NewStyle().
				Width(m.viewWidth).
				Align(lipgloss.Center).
				Render(message)
		}
	}

	return message
}

func (m *ConfirmationModel) renderDialog() string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNormal))

	width := m.config.Width
	if width <= 0 {
		width = 60
	}
	contentWidth := width - 4 // border and padding
	if contentWidth < 10 {
		contentWidth = 10
	}
	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var content strings.Builder

	if m.config.Title != "" {
		content.WriteString(center.Render(headerStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}

	if m.config.Message != "" {
		content.WriteString(center.Render(wordwrap.String(m.config.Message, contentWidth)))
		content.WriteString("\n")
	}

	if m.config.Warning != "" {
		content.WriteString("\n")
		content.WriteString(center.Render(warningStyle.Render(wordwrap.String(m.config.Warning, contentWidth))))
		content.WriteString("\n")
	}

	if len(m.config.Details) > 0 {
		content.WriteString("\n")
		for _, detail := range m.config.Details {
			content.WriteString(detailStyle.Render(wordwrap.String("• "+detail, contentWidth)))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")

	var options string
	if m.config.Type == ConfirmTypeNotice {
		options = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true).
			Render("[enter] " + m.config.YesLabel)
	} else {
		options = formatConfirmOptions(m.config.Destructive) + "  " + fmt.Sprintf("(%s / %s)",
			strings.ToLower(m.config.YesLabel),
			strings.ToLower(m.config.NoLabel))
	}
	content.WriteString(center.Render(options))

	return borderStyle.
		Width(width - 2).
		Render(content.String())
}
