// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// Runes creates a key message typing s.
func Runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Key creates a key message for a special key such as tea.KeyEnter.
func Key(k tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: k}
}

// KeyDown creates a down arrow key message.
func KeyDown() tea.Msg { return Key(tea.KeyDown) }

// KeyUp creates an up arrow key message.
func KeyUp() tea.Msg { return Key(tea.KeyUp) }

// KeyEnter creates an enter key message.
func KeyEnter() tea.Msg { return Key(tea.KeyEnter) }

// KeyEsc creates an escape key message.
func KeyEsc() tea.Msg { return Key(tea.KeyEsc) }

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// Send feeds msgs through m in order and returns the final model. Commands
// returned by Update are discarded.
func Send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}
