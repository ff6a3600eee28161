package tui

import (
	"context"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tunemix/tunemix/pkg/fieldlist"
	"github.com/tunemix/tunemix/pkg/models"
)

// Submitter sends a prepared submission to the playlist service
type Submitter interface {
	Submit(ctx context.Context, sub models.Submission) (*models.SubmissionResult, error)
}

// Focus targets besides keyword field indices
const (
	focusName   = -1
	focusSubmit = -2
)

const (
	maxBoxWidth = 60
	minBoxWidth = 16
)

type submissionResultMsg struct {
	id     int
	result *models.SubmissionResult
	err    error
}

// PlaylistBuilderModel binds the field list controller to terminal input.
// Text inputs mirror the controller's fields one to one.
type PlaylistBuilderModel struct {
	ctrl      *fieldlist.Controller
	submitter Submitter
	settings  *models.Settings

	nameInput textinput.Model
	inputs    []textinput.Model
	focused   int
	renderer  *FieldRenderer

	keys     builderKeyMap
	help     help.Model
	spinner  spinner.Model
	showHelp bool

	// In-flight submissions by request id
	inFlight map[int]context.CancelFunc
	nextID   int

	notice      *ConfirmationModel
	exitConfirm *ConfirmationModel

	clipboardWrite func(string) error

	width  int
	height int
}

// NewPlaylistBuilderModel creates a builder holding one empty keyword field
func NewPlaylistBuilderModel(settings *models.Settings, submitter Submitter) *PlaylistBuilderModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	m := &PlaylistBuilderModel{
		ctrl:           fieldlist.New(),
		submitter:      submitter,
		settings:       settings,
		renderer:       NewFieldRenderer(maxBoxWidth),
		keys:           newBuilderKeyMap(),
		help:           help.New(),
		spinner:        sp,
		inFlight:       make(map[int]context.CancelFunc),
		notice:         NewConfirmation(),
		exitConfirm:    NewConfirmation(),
		clipboardWrite: clipboard.WriteAll,
	}

	m.nameInput = m.newInput(settings.UI.NamePlaceholder)
	m.nameInput.CharLimit = 100
	if settings.Defaults.PlaylistName != "" {
		m.ctrl.SetPlaylistName(settings.Defaults.PlaylistName)
		m.nameInput.SetValue(settings.Defaults.PlaylistName)
	}

	m.syncInputs()
	m.setFocus(0)
	return m
}

func (m *PlaylistBuilderModel) newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = m.renderer.InputWidth()
	return ti
}

// Controller exposes the underlying field list
func (m *PlaylistBuilderModel) Controller() *fieldlist.Controller {
	return m.ctrl
}

// Submitting reports whether any submission is awaiting a response
func (m *PlaylistBuilderModel) Submitting() bool {
	return len(m.inFlight) > 0
}

// HasInput reports whether the user typed anything worth confirming before quitting
func (m *PlaylistBuilderModel) HasInput() bool {
	if m.ctrl.PlaylistName() != "" {
		return true
	}
	for _, v := range m.ctrl.Values() {
		if v != "" {
			return true
		}
	}
	return false
}

func (m *PlaylistBuilderModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the dimensions used for layout
func (m *PlaylistBuilderModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	boxWidth := width - rowIndent - 4
	if boxWidth > maxBoxWidth {
		boxWidth = maxBoxWidth
	}
	if boxWidth < minBoxWidth {
		boxWidth = minBoxWidth
	}
	m.renderer.Width = boxWidth

	m.nameInput.Width = m.renderer.InputWidth()
	for i := range m.inputs {
		m.inputs[i].Width = m.renderer.InputWidth()
	}
}

// Close cancels every in-flight submission
func (m *PlaylistBuilderModel) Close() {
	for id, cancel := range m.inFlight {
		cancel()
		delete(m.inFlight, id)
	}
}

func (m *PlaylistBuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case submissionResultMsg:
		cmd = m.handleSubmissionResult(msg)

	case spinner.TickMsg:
		if m.Submitting() {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		cmd = m.updateFocusedInput(msg)
	}

	m.syncInputs()
	m.applyFocusRequest()
	return m, cmd
}

func (m *PlaylistBuilderModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.notice.Active() {
		return m.notice.Update(msg)
	}
	if m.exitConfirm.Active() {
		return m.exitConfirm.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.ClearOrRemove):
		m.clearOrRemoveFocused()
		return nil

	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return nil

	case key.Matches(msg, m.keys.Previous):
		m.moveFocus(-1)
		return nil

	case key.Matches(msg, m.keys.CopyURL):
		return m.copyURL()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil

	case key.Matches(msg, m.keys.Cancel):
		return m.requestExit()
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused text input and mirrors its value
func (m *PlaylistBuilderModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.focused == focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		if v := m.nameInput.Value(); v != m.ctrl.PlaylistName() {
			m.ctrl.SetPlaylistName(v)
		}
	case m.focused >= 0 && m.focused < len(m.inputs):
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		if v := m.inputs[m.focused].Value(); v != m.ctrl.Field(m.focused).Value {
			m.ctrl.EditField(m.focused, v)
		}
	}
	return cmd
}

func (m *PlaylistBuilderModel) confirm() tea.Cmd {
	switch {
	case m.focused == focusName:
		m.setFocus(0)
	case m.focused == focusSubmit:
		return m.submit()
	default:
		m.ctrl.HandleEnterKey(m.focused)
	}
	return nil
}

func (m *PlaylistBuilderModel) clearOrRemoveFocused() {
	switch {
	case m.focused == focusName:
		m.ctrl.ClearPlaylistName()
		m.nameInput.SetValue("")
	case m.focused >= 0:
		m.ctrl.ClearOrRemoveField(m.focused)
	}
}

func (m *PlaylistBuilderModel) requestExit() tea.Cmd {
	if !m.HasInput() {
		m.Close()
		return tea.Quit
	}
	m.exitConfirm.Show(ConfirmationConfig{
		Title:       "⚠️  Leave the builder?",
		Message:     "Your playlist name and keywords will be lost.",
		YesLabel:    "Quit",
		NoLabel:     "Stay",
		Destructive: true,
		Type:        ConfirmTypeDialog,
		Width:       m.dialogWidth(),
	}, func() tea.Cmd {
		m.Close()
		return tea.Quit
	}, nil)
	return nil
}

// submit validates, snapshots and sends the current form
func (m *PlaylistBuilderModel) submit() tea.Cmd {
	if m.Submitting() && m.settings.UI.BlockDuplicateSubmit {
		return func() tea.Msg { return StatusMsg("Playlist is already being created…") }
	}

	if err := m.ctrl.Validate(); err != nil {
		log.Printf("submission blocked: %v", err)
		m.notice.ShowNotice("⚠️  Missing keywords", err.Error(), nil, m.dialogWidth())
		return nil
	}

	if m.submitter == nil {
		m.notice.ShowNotice("× Failed to create playlist", "No playlist service is configured.", nil, m.dialogWidth())
		return nil
	}

	sub := m.ctrl.PrepareSubmission()
	m.nextID++
	id := m.nextID

	ctx, cancel := context.WithTimeout(context.Background(), m.settings.Service.Timeout)
	m.inFlight[id] = cancel
	log.Printf("submitting playlist %q with %d keywords (request %d)", sub.PlaylistName, len(sub.Keywords), id)

	submitter := m.submitter
	send := func() tea.Msg {
		defer cancel()
		res, err := submitter.Submit(ctx, sub)
		return submissionResultMsg{id: id, result: res, err: err}
	}

	return tea.Batch(send, m.spinner.Tick)
}

func (m *PlaylistBuilderModel) handleSubmissionResult(msg submissionResultMsg) tea.Cmd {
	cancel, ok := m.inFlight[msg.id]
	if !ok {
		// Cancelled by Close
		return nil
	}
	cancel()
	delete(m.inFlight, msg.id)

	if msg.err != nil {
		log.Printf("request %d failed: %v", msg.id, msg.err)
		m.notice.ShowNotice("× Failed to create playlist", "Your keywords were kept, so you can try again.",
			[]string{msg.err.Error()}, m.dialogWidth())
		return nil
	}

	log.Printf("request %d created %s", msg.id, msg.result.URL)
	m.ctrl.SetResult(msg.result)
	m.notice.ShowNotice("✓ Playlist created successfully!", msg.result.URL, nil, m.dialogWidth())

	if m.settings.UI.CopyURLOnSuccess {
		return m.copyURL()
	}
	return nil
}

func (m *PlaylistBuilderModel) copyURL() tea.Cmd {
	res, ok := m.ctrl.Result()
	if !ok {
		return func() tea.Msg { return StatusMsg("No playlist link yet") }
	}
	write := m.clipboardWrite
	url := res.URL
	return func() tea.Msg {
		if err := write(url); err != nil {
			log.Printf("clipboard: %v", err)
			return StatusMsg("× Failed to copy link: " + err.Error())
		}
		return StatusMsg("Playlist link → clipboard")
	}
}

// syncInputs resizes and refreshes the text inputs from the controller
func (m *PlaylistBuilderModel) syncInputs() {
	n := m.ctrl.Len()
	if len(m.inputs) > n {
		m.inputs = m.inputs[:n]
	}
	for len(m.inputs) < n {
		m.inputs = append(m.inputs, m.newInput(m.settings.UI.KeywordPlaceholder))
	}

	for i := range m.inputs {
		if v := m.ctrl.Field(i).Value; m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
	if m.nameInput.Value() != m.ctrl.PlaylistName() {
		m.nameInput.SetValue(m.ctrl.PlaylistName())
	}

	if m.focused >= n {
		m.setFocus(n - 1)
	}
}

// applyFocusRequest moves focus to the field the controller asked for, consuming the request
func (m *PlaylistBuilderModel) applyFocusRequest() {
	idx, ok := m.ctrl.ConsumeFocusRequest()
	if !ok {
		return
	}
	m.setFocus(idx)
}

func (m *PlaylistBuilderModel) setFocus(target int) {
	m.nameInput.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}

	m.focused = target
	switch {
	case target == focusName:
		m.nameInput.Focus()
	case target >= 0 && target < len(m.inputs):
		m.inputs[target].Focus()
	}
}

// moveFocus cycles name → keyword fields → submit button
func (m *PlaylistBuilderModel) moveFocus(delta int) {
	order := make([]int, 0, len(m.inputs)+2)
	order = append(order, focusName)
	for i := range m.inputs {
		order = append(order, i)
	}
	order = append(order, focusSubmit)

	pos := 0
	for i, target := range order {
		if target == m.focused {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(order)) % len(order)
	m.setFocus(order[pos])
}

func (m *PlaylistBuilderModel) dialogWidth() int {
	w := m.width - 10
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}
