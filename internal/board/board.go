// Package board implements the task board: the authoritative task list, the
// shared input controls used to add and edit tasks, and the persistence of the
// list to a kv.Store.
//
// A Board is driven by one caller at a time (the TUI update loop or a single
// CLI command) and is not safe for concurrent use.
package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/core/kv"
	"github.com/colonyops/taskboard/internal/core/task"
)

// DefaultKey is the storage key the task list is persisted under.
const DefaultKey = "tasks"

// Board owns the task list and the edit session.
type Board struct {
	store kv.Store
	key   string
	log   zerolog.Logger
	newID func() string

	tasks []task.Task

	// Shared input controls. priority is both the priority given to new tasks
	// and the filter for Visible; the coupling is intentional.
	input    string
	priority task.Priority
	editing  string // id of the task being edited, empty when idle

	saveErr error
}

// Option configures a Board.
type Option func(*Board)

// WithIDGenerator overrides the task id generator.
func WithIDGenerator(fn func() string) Option {
	return func(b *Board) {
		b.newID = fn
	}
}

// New creates a board persisted to store under key. Call Initialize before use.
func New(store kv.Store, key string, log zerolog.Logger, opts ...Option) *Board {
	if key == "" {
		key = DefaultKey
	}

	b := &Board{
		store:    store,
		key:      key,
		log:      log,
		newID:    task.NewID,
		priority: task.DefaultPriority,
		tasks:    []task.Task{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// SeedTasks returns the default list used when nothing usable is persisted.
func (b *Board) SeedTasks() []task.Task {
	return []task.Task{
		{ID: b.newID(), Title: "Task 1", Priority: task.PriorityLow},
		{ID: b.newID(), Title: "Task 2", Priority: task.PriorityMedium},
		{ID: b.newID(), Title: "Task 3", Priority: task.PriorityHigh},
	}
}

// Initialize loads the persisted list, falling back to the seed list when the
// value is missing or unreadable, and writes the resulting list back.
func (b *Board) Initialize(ctx context.Context) {
	b.tasks = b.load(ctx)
	b.persist(ctx)
}

func (b *Board) load(ctx context.Context) []task.Task {
	value, err := b.store.Get(ctx, b.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			b.log.Debug().Ctx(ctx).Str("key", b.key).Msg("no persisted tasks, seeding defaults")
		} else {
			b.log.Warn().Ctx(ctx).Err(err).Str("key", b.key).Msg("read persisted tasks failed, seeding defaults")
		}
		return b.SeedTasks()
	}

	tasks, err := Decode(value)
	if err != nil {
		b.log.Warn().Ctx(ctx).Err(err).Str("key", b.key).Msg("persisted tasks unreadable, seeding defaults")
		return b.SeedTasks()
	}

	b.log.Debug().Ctx(ctx).Int("count", len(tasks)).Msg("loaded tasks")
	return tasks
}

// persist writes the list to the store. Failures are logged and kept for
// SaveErr; the in-memory list stays authoritative.
func (b *Board) persist(ctx context.Context) {
	value, err := Encode(b.tasks)
	if err == nil {
		err = b.store.Set(ctx, b.key, value)
	}
	if err != nil {
		b.log.Error().Ctx(ctx).Err(err).Str("key", b.key).Msg("failed to persist tasks")
	}
	b.saveErr = err
}

// SaveErr returns the error from the most recent persistence write, if any.
func (b *Board) SaveErr() error {
	if b.saveErr == nil {
		return nil
	}
	return fmt.Errorf("save tasks: %w", b.saveErr)
}

// AddTask appends a new incomplete task and clears the input field. Blank
// titles are ignored. It returns the created task and whether one was added.
func (b *Board) AddTask(ctx context.Context, title string, priority task.Priority) (task.Task, bool) {
	if task.IsBlank(title) {
		return task.Task{}, false
	}
	if !priority.IsValid() {
		priority = task.DefaultPriority
	}

	t := task.Task{ID: b.newID(), Title: title, Priority: priority}
	b.tasks = append(b.tasks, t)
	b.input = ""

	b.log.Debug().Ctx(ctx).Str("id", t.ID).Str("priority", string(priority)).Msg("task added")
	b.persist(ctx)
	return t, true
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op.
func (b *Board) DeleteTask(ctx context.Context, id string) {
	next := make([]task.Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}

	if len(next) != len(b.tasks) {
		b.log.Debug().Ctx(ctx).Str("id", id).Msg("task deleted")
	}
	b.tasks = next
	b.persist(ctx)
}

// ToggleCompletion flips the completed flag of the task with the given id.
// Unknown ids are a no-op.
func (b *Board) ToggleCompletion(ctx context.Context, id string) {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks[i].Completed = !b.tasks[i].Completed
			b.log.Debug().Ctx(ctx).Str("id", id).Bool("completed", b.tasks[i].Completed).Msg("task toggled")
			break
		}
	}
	b.persist(ctx)
}

// BeginEdit enters edit mode for id, copying its title and priority into the
// shared inputs. A prior edit target is replaced without warning. Unknown ids
// are a no-op.
func (b *Board) BeginEdit(id string) bool {
	t, ok := b.find(id)
	if !ok {
		b.log.Debug().Str("id", id).Msg("begin edit on unknown task ignored")
		return false
	}

	b.editing = t.ID
	b.input = t.Title
	b.priority = t.Priority
	return true
}

// CommitEdit applies the input title and priority to the task being edited,
// leaving its id and completed flag untouched, then exits edit mode and clears
// the title input. A blank title is ignored and edit mode is kept. It reports
// whether the edit was committed.
func (b *Board) CommitEdit(ctx context.Context) bool {
	if b.editing == "" || task.IsBlank(b.input) {
		return false
	}

	for i := range b.tasks {
		if b.tasks[i].ID == b.editing {
			b.tasks[i].Title = b.input
			b.tasks[i].Priority = b.priority
			break
		}
	}

	b.log.Debug().Ctx(ctx).Str("id", b.editing).Msg("task updated")
	b.editing = ""
	b.input = ""
	b.persist(ctx)
	return true
}

// CancelEdit leaves edit mode without touching the list and resets the inputs
// to their defaults.
func (b *Board) CancelEdit() {
	b.editing = ""
	b.input = ""
	b.priority = task.DefaultPriority
}

// Replace swaps the whole list. Tasks without an id get one, repeated ids are
// dropped and invalid priorities fall back to the default.
func (b *Board) Replace(ctx context.Context, tasks []task.Task) {
	next := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = b.newID()
		}
		if !t.Priority.IsValid() {
			t.Priority = task.DefaultPriority
		}
		next = append(next, t)
	}

	b.tasks = dedupe(next)
	b.log.Debug().Ctx(ctx).Int("count", len(b.tasks)).Msg("tasks replaced")
	b.persist(ctx)
}

// SetInput updates the shared title input.
func (b *Board) SetInput(title string) {
	b.input = title
}

// Input returns the shared title input.
func (b *Board) Input() string {
	return b.input
}

// SetPriority updates the shared priority selector, which also changes the
// visible rows. Invalid values are ignored.
func (b *Board) SetPriority(p task.Priority) {
	if p.IsValid() {
		b.priority = p
	}
}

// Priority returns the shared priority selector value.
func (b *Board) Priority() task.Priority {
	return b.priority
}

// Editing returns the id of the task being edited and whether edit mode is active.
func (b *Board) Editing() (string, bool) {
	return b.editing, b.editing != ""
}

// Tasks returns a copy of the full list in insertion order.
func (b *Board) Tasks() []task.Task {
	out := make([]task.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Visible returns the tasks whose priority equals the selector value.
func (b *Board) Visible() []task.Task {
	return task.Filter{Priority: b.priority}.Apply(b.tasks)
}

// Summary returns counters over the full list, regardless of the selector.
func (b *Board) Summary() task.Summary {
	return task.Summarize(b.tasks)
}

// Resolve finds a task by id or unique id prefix.
func (b *Board) Resolve(ref string) (task.Task, error) {
	return task.Resolve(b.tasks, ref)
}

func (b *Board) find(id string) (task.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}
