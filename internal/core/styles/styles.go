// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/task"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	HeaderStyle  lipgloss.Style
	DividerStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// TUI styles.
	AppStyle            lipgloss.Style
	TitleStyle          lipgloss.Style
	InputStyle          lipgloss.Style
	InputFocusedStyle   lipgloss.Style
	ButtonStyle         lipgloss.Style
	ButtonSelectedStyle lipgloss.Style
	RowStyle            lipgloss.Style
	RowSelectedStyle    lipgloss.Style
	CompletedStyle      lipgloss.Style
	SummaryStyle        lipgloss.Style
	StatusErrorStyle    lipgloss.Style
	HelpStyle           lipgloss.Style

	priorityStyles map[task.Priority]lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	AppStyle = lipgloss.NewStyle().
		Padding(1, 2)
	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)
	InputFocusedStyle = InputStyle.
		BorderForeground(p.Primary)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Muted)
	ButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Primary).
		Foreground(p.Background).
		Bold(true)

	RowStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	CompletedStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	SummaryStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		MarginTop(1)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	priorityStyles = map[task.Priority]lipgloss.Style{
		task.PriorityLow:    lipgloss.NewStyle().Foreground(p.Success),
		task.PriorityMedium: lipgloss.NewStyle().Foreground(p.Warning),
		task.PriorityHigh:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
	}
}

// PriorityStyle returns the style used to render a priority label.
func PriorityStyle(p task.Priority) lipgloss.Style {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return MutedStyle
}

// FormTheme returns a huh theme derived from the active palette.
func FormTheme() *huh.Theme {
	p := CurrentPalette
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(p.Primary)
	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(p.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p.Secondary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p.Secondary)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(p.Foreground)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p.Secondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(p.Muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p.Primary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(p.Background).Background(p.Primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(p.Muted).Background(p.Surface)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(p.Muted).Bold(false)

	return t
}
