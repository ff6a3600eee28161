package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tunemix/tunemix/pkg/models"
)

const statusTimeout = 3 * time.Second

// StatusMsg shows a transient message in the status bar
type StatusMsg string

type clearStatusMsg struct {
	seq int
}

type App struct {
	builder   *PlaylistBuilderModel
	width     int
	height    int
	statusMsg string
	statusSeq int
}

func NewApp(settings *models.Settings, submitter Submitter) *App {
	return &App{
		builder: NewPlaylistBuilderModel(settings, submitter),
	}
}

// Builder returns the playlist builder hosted by the app
func (a *App) Builder() *PlaylistBuilderModel {
	return a.builder
}

func (a *App) Init() tea.Cmd {
	return a.builder.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.builder.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			a.builder.Close()
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case clearStatusMsg:
		// A newer message restarted the timer
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	m, cmd := a.builder.Update(msg)
	if pb, ok := m.(*PlaylistBuilderModel); ok {
		a.builder = pb
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.builder.View()
	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, StatusBarStyle.Render(a.statusMsg))
	}
	return content
}
