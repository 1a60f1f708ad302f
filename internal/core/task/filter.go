package task

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects a subset of tasks. All set criteria must match.
type Filter struct {
	Priority Priority // empty means all priorities
	Match    string   // doublestar glob over the title, empty means any
}

// Validate checks that the filter's glob pattern is well formed.
func (f Filter) Validate() error {
	if f.Priority != "" && !f.Priority.IsValid() {
		return fmt.Errorf("invalid priority %q", f.Priority)
	}
	if f.Match != "" && !doublestar.ValidatePattern(f.Match) {
		return fmt.Errorf("invalid match pattern %q", f.Match)
	}
	return nil
}

// Matches reports whether t satisfies the filter. Titles are matched
// case-insensitively.
func (f Filter) Matches(t Task) bool {
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Match != "" {
		ok, err := doublestar.Match(strings.ToLower(f.Match), strings.ToLower(t.Title))
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Apply returns the tasks matching the filter in their original order.
// The result is never nil.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Summary holds counters computed over an entire task list.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Summarize counts all tasks and the completed ones.
func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

// String renders the summary line shown next to the task table.
func (s Summary) String() string {
	return fmt.Sprintf("Total Tasks: %d | Completed Tasks: %d", s.Total, s.Completed)
}

// Resolve finds the task whose id equals ref or, failing that, the single
// task whose id starts with ref.
func Resolve(tasks []Task, ref string) (Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Task{}, fmt.Errorf("resolve %q: %w", ref, ErrNotFound)
	}

	var (
		match Task
		count int
	)
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			match = t
			count++
		}
	}

	switch count {
	case 0:
		return Task{}, fmt.Errorf("resolve %q: %w", ref, ErrNotFound)
	case 1:
		return match, nil
	default:
		return Task{}, fmt.Errorf("resolve %q: %d matches: %w", ref, count, ErrAmbiguous)
	}
}
