package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestConfirmation_YesNo(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.KeyMsg
		wantConfirmed bool
		wantCanceled  bool
	}{
		{name: "y confirms", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, wantConfirmed: true},
		{name: "Y confirms", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, wantConfirmed: true},
		{name: "n cancels", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, wantCanceled: true},
		{name: "esc cancels", key: tea.KeyMsg{Type: tea.KeyEsc}, wantCanceled: true},
		{name: "other keys are ignored", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmed, canceled := false, false
			m := NewConfirmation()
			m.Show(ConfirmationConfig{Message: "Quit?", Type: ConfirmTypeDialog},
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { canceled = true; return nil })

			m.Update(tt.key)

			assert.Equal(t, tt.wantConfirmed, confirmed)
			assert.Equal(t, tt.wantCanceled, canceled)
			assert.Equal(t, !tt.wantConfirmed && !tt.wantCanceled, m.Active())
		})
	}
}

func TestConfirmation_Notice(t *testing.T) {
	m := NewConfirmation()
	m.ShowNotice("Missing keywords", "Please enter at least one keyword", nil, 50)

	assert.True(t, m.Active())
	assert.Equal(t, "OK", m.Config().YesLabel)

	view := m.View()
	assert.Contains(t, view, "Missing keywords")
	assert.Contains(t, view, "Please enter at least one keyword")
	assert.Contains(t, view, "[enter] OK")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.True(t, m.Active(), "a notice only closes on acknowledge keys")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Active())
	assert.Empty(t, m.View())
}

func TestConfirmation_InlineCentered(t *testing.T) {
	m := NewConfirmation()
	m.Show(ConfirmationConfig{Message: "Discard?", Type: ConfirmTypeInline}, nil, nil)

	view := m.ViewWithWidth(40)

	assert.Contains(t, view, "Discard?")
	assert.Contains(t, view, "[y]")
}
