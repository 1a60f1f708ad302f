// Package tui implements the interactive board view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/task"
)

const placeholder = "Add new task..."

// Model is the Bubble Tea model for the board. Every key press runs at most
// one board operation to completion before the next message is handled.
type Model struct {
	ctx   context.Context
	board *board.Board
	log   zerolog.Logger

	keys  KeyMap
	input textinput.Model
	help  help.Model

	cursor   int // index into board.Visible()
	width    int
	quitting bool
}

// New returns a model driving b. The board must already be initialized.
func New(ctx context.Context, b *board.Board, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Width = 40
	ti.SetValue(b.Input())
	ti.Focus()

	return Model{
		ctx:   ctx,
		board: b,
		log:   log,
		keys:  DefaultKeyMap(),
		input: ti,
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if w := msg.Width - 12; w > 10 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.submit()

	case key.Matches(msg, m.keys.Cancel):
		if _, editing := m.board.Editing(); !editing {
			m.quitting = true
			return m, tea.Quit
		}
		m.board.CancelEdit()
		m.syncInput()
		m.clampCursor()

	case key.Matches(msg, m.keys.NextPriority):
		m.board.SetPriority(m.board.Priority().Next())
		m.clampCursor()

	case key.Matches(msg, m.keys.PrevPriority):
		m.board.SetPriority(m.board.Priority().Prev())
		m.clampCursor()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.board.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.board.ToggleCompletion(m.ctx, t.ID)
		}

	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok && m.board.BeginEdit(t.ID) {
			m.syncInput()
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.board.DeleteTask(m.ctx, t.ID)
			m.clampCursor()
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.board.SetInput(m.input.Value())
		return m, cmd
	}

	return m, nil
}

// submit adds a task when idle and commits the edit session otherwise. The
// board input already tracks every keystroke, so a title loaded by BeginEdit
// is committed as stored when the user does not touch it.
func (m *Model) submit() {
	if _, editing := m.board.Editing(); editing {
		if !m.board.CommitEdit(m.ctx) {
			m.log.Debug().Ctx(m.ctx).Msg("blank edit ignored")
		}
	} else if _, added := m.board.AddTask(m.ctx, m.board.Input(), m.board.Priority()); added {
		m.cursor = len(m.board.Visible()) - 1
	}

	m.syncInput()
	m.clampCursor()
}

func (m *Model) syncInput() {
	m.input.SetValue(m.board.Input())
	m.input.CursorEnd()
}

func (m *Model) clampCursor() {
	n := len(m.board.Visible())
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

func (m Model) selected() (task.Task, bool) {
	rows := m.board.Visible()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return task.Task{}, false
	}
	return rows[m.cursor], true
}
