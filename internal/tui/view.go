package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
	"github.com/colonyops/taskboard/internal/core/task"
)

const heading = "Todo List"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	_, editing := m.board.Editing()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(heading))
	b.WriteString("\n")

	inputStyle := styles.InputStyle
	if m.input.Focused() {
		inputStyle = styles.InputFocusedStyle
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderControls(editing))
	b.WriteString("\n")
	b.WriteString(styles.SummaryStyle.Render(m.board.Summary().String()))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())

	if err := m.board.SaveErr(); err != nil {
		b.WriteString("\n")
		b.WriteString(styles.StatusErrorStyle.Render(err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(m.help.View(m.keys)))

	return styles.AppStyle.Render(b.String())
}

func (m Model) renderControls(editing bool) string {
	p := m.board.Priority()
	selector := "Priority: " + styles.PriorityStyle(p).Render("‹ "+p.Label()+" ›")

	var buttons string
	if editing {
		buttons = lipgloss.JoinHorizontal(lipgloss.Top,
			styles.ButtonSelectedStyle.Render("Update"),
			" ",
			styles.ButtonStyle.Render("Cancel"),
		)
	} else {
		buttons = styles.ButtonSelectedStyle.Render("Add Task")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, selector, "   ", buttons)
}

func (m Model) renderRows() string {
	rows := m.board.Visible()
	if len(rows) == 0 {
		return styles.MutedStyle.Render("No " + strings.ToLower(m.board.Priority().Label()) + " tasks")
	}

	titleWidth := 0
	for _, t := range rows {
		titleWidth = max(titleWidth, lipgloss.Width(t.Title))
	}

	editingID, _ := m.board.Editing()

	lines := make([]string, 0, len(rows))
	for i, t := range rows {
		lines = append(lines, m.renderRow(t, i == m.cursor, t.ID == editingID, titleWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(t task.Task, selected, editing bool, titleWidth int) string {
	pointer := "  "
	if selected {
		pointer = "> "
	}

	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	title := t.Title + strings.Repeat(" ", titleWidth-lipgloss.Width(t.Title))
	switch {
	case t.Completed:
		title = styles.CompletedStyle.Render(title)
	case selected:
		title = styles.RowSelectedStyle.Render(title)
	default:
		title = styles.RowStyle.Render(title)
	}

	row := pointer + check + " " + title + "  " + styles.PriorityStyle(t.Priority).Render(string(t.Priority))
	if editing {
		row += styles.MutedStyle.Render("  (editing)")
	}
	return row
}
