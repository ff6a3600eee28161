package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	builderTitle = "Playlist Builder"
	submitLabel  = "Submit"
)

// builderLayout holds the screen rows of the interactive elements.
// View and the mouse handler both derive positions from it.
type builderLayout struct {
	nameRow    int
	firstField int
	submitRow  int
}

func (m *PlaylistBuilderModel) layout() builderLayout {
	top := lipgloss.Height(renderHeader(m.width, builderTitle)) + 1
	return builderLayout{
		nameRow:    top,
		firstField: top + 2,
		submitRow:  top + 2 + len(m.inputs) + 1,
	}
}

func (m *PlaylistBuilderModel) View() string {
	if m.notice.Active() {
		return m.placeDialog(m.notice.View())
	}
	if m.exitConfirm.Active() {
		return m.placeDialog(m.exitConfirm.View())
	}

	indent := strings.Repeat(" ", rowIndent)
	var b strings.Builder

	b.WriteString(renderHeader(m.width, builderTitle))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.RenderRow(
		m.nameInput.View(),
		m.focused == focusName,
		m.ctrl.ShowPlaylistNameClear(),
		m.ctrl.PlaylistNameHovered(),
	))
	b.WriteString("\n")
	b.WriteString(indent + renderSeparator(m.renderer.Width+2))
	b.WriteString("\n")

	hovered, hasHover := m.ctrl.HoveredField()
	for i := range m.inputs {
		b.WriteString(m.renderer.RenderRow(
			m.inputs[i].View(),
			m.focused == i || m.ctrl.FocusRequested(i),
			true,
			hasHover && hovered == i,
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(indent + GetSubmitButtonStyle(m.focused == focusSubmit).Render(submitLabel))
	if m.Submitting() {
		b.WriteString("  " + m.spinner.View() + DescriptionStyle.Render(" Creating playlist…"))
	}
	b.WriteString("\n")

	if res, ok := m.ctrl.Result(); ok {
		b.WriteString("\n")
		b.WriteString(indent + SuccessStyle.Render("Your playlist: ") + LinkStyle.Render(res.URL))
		b.WriteString(DescriptionStyle.Render("  (" + m.keys.CopyURL.Help().Key + " copy)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(m.help.View(m.keys)))
	if m.showHelp {
		if tip := GetTerminalSetupMessage(); tip != "" {
			b.WriteString("\n")
			b.WriteString(ContentPaddingStyle.Render(DescriptionStyle.Render(tip)))
		}
	}

	return b.String()
}

func (m *PlaylistBuilderModel) placeDialog(dialog string) string {
	if m.width == 0 || m.height == 0 {
		return dialog
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

// handleMouse maps pointer events onto the same commands the keyboard uses
func (m *PlaylistBuilderModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.notice.Active() || m.exitConfirm.Active() {
		return nil
	}

	l := m.layout()
	onClear := m.renderer.OnClear(msg.X)
	field := msg.Y - l.firstField
	onField := field >= 0 && field < len(m.inputs)

	m.ctrl.SetPlaylistNameHovered(msg.Y == l.nameRow && onClear && m.ctrl.ShowPlaylistNameClear())
	if onField && onClear {
		m.ctrl.SetHoveredField(field)
	} else {
		m.ctrl.SetHoveredField(-1)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch {
	case msg.Y == l.nameRow:
		if onClear && m.ctrl.ShowPlaylistNameClear() {
			m.ctrl.ClearPlaylistName()
			m.nameInput.SetValue("")
			m.setFocus(focusName)
		} else if m.renderer.InBox(msg.X) {
			m.setFocus(focusName)
		}

	case onField:
		if onClear {
			m.ctrl.ClearOrRemoveField(field)
		} else if m.renderer.InBox(msg.X) {
			m.setFocus(field)
		}

	case msg.Y == l.submitRow:
		buttonWidth := lipgloss.Width(GetSubmitButtonStyle(false).Render(submitLabel))
		if msg.X >= rowIndent && msg.X < rowIndent+buttonWidth {
			m.setFocus(focusSubmit)
			return m.submit()
		}
	}

	return nil
}
