// Package task defines the task domain model shared by the board, the TUI and the CLI.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no task matches an id or id prefix.
	ErrNotFound = errors.New("task not found")
	// ErrAmbiguous is returned when an id prefix matches more than one task.
	ErrAmbiguous = errors.New("task id prefix is ambiguous")
)

// Priority is the severity label attached to a task. The same value doubles
// as the active view filter.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is the selector value after startup and after a cancelled edit.
const DefaultPriority = PriorityLow

// Priorities returns all priorities in selector order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority converts a string into a Priority. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority %q: must be one of low, medium, high", s)
	}
	return p, nil
}

// IsValid reports whether p is one of the fixed priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Label returns the selector label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low Priority"
	case PriorityMedium:
		return "Medium Priority"
	case PriorityHigh:
		return "High Priority"
	default:
		return string(p)
	}
}

// Next returns the priority after p, wrapping from high to low.
func (p Priority) Next() Priority {
	all := Priorities()
	for i, v := range all {
		if v == p {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultPriority
}

// Prev returns the priority before p, wrapping from low to high.
func (p Priority) Prev() Priority {
	all := Priorities()
	for i, v := range all {
		if v == p {
			return all[(i-1+len(all))%len(all)]
		}
	}
	return DefaultPriority
}

// Task is a single to-do item.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
}

// New creates an incomplete task with a freshly generated id.
func New(title string, priority Priority) Task {
	return Task{
		ID:       NewID(),
		Title:    title,
		Priority: priority,
	}
}

// NewID returns a collision-resistant task identifier.
func NewID() string {
	return uuid.NewString()
}

// ShortID returns the first eight characters of the id for display.
func (t Task) ShortID() string {
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}

// IsBlank reports whether a title is empty or whitespace-only.
func IsBlank(title string) bool {
	return strings.TrimSpace(title) == ""
}
