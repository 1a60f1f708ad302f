package board

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"pgregory.net/rapid"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/store/memory"
)

func genPriority(t *rapid.T) task.Priority {
	return rapid.SampledFrom(task.Priorities()).Draw(t, "priority")
}

func genTitle(t *rapid.T) string {
	return rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 ]{0,30}`).Draw(t, "title")
}

func genBlankTitle(t *rapid.T) string {
	return rapid.StringMatching(`[ \t\n]{0,5}`).Draw(t, "blank")
}

func newPropertyBoard(t *rapid.T) (*Board, *memory.KVStore) {
	store := memory.NewKVStore()
	b := New(store, DefaultKey, zerolog.Nop())
	b.Initialize(context.Background())
	if b.SaveErr() != nil {
		t.Fatalf("initialize: %v", b.SaveErr())
	}
	return b, store
}

// genBoard builds a board with random additional tasks and completion flags.
func genBoard(t *rapid.T) (*Board, *memory.KVStore) {
	ctx := context.Background()
	b, store := newPropertyBoard(t)

	n := rapid.IntRange(0, 10).Draw(t, "extra")
	for range n {
		b.AddTask(ctx, genTitle(t), genPriority(t))
	}
	for _, tk := range b.Tasks() {
		if rapid.Bool().Draw(t, "complete") {
			b.ToggleCompletion(ctx, tk.ID)
		}
	}
	return b, store
}

func pickID(t *rapid.T, b *Board) string {
	tasks := b.Tasks()
	return tasks[rapid.IntRange(0, len(tasks)-1).Draw(t, "idx")].ID
}

func TestProperty_AddGrowsByOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		b, _ := newPropertyBoard(t)
		seed := len(b.Tasks())

		n := rapid.IntRange(0, 20).Draw(t, "n")
		for range n {
			if _, ok := b.AddTask(ctx, genTitle(t), genPriority(t)); !ok {
				t.Fatal("non-blank title rejected")
			}
		}

		if got := len(b.Tasks()); got != seed+n {
			t.Fatalf("len = %d, want %d", got, seed+n)
		}
	})
}

func TestProperty_BlankAddIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b, _ := genBoard(t)
		before := b.Tasks()

		b.AddTask(context.Background(), genBlankTitle(t), genPriority(t))

		if len(b.Tasks()) != len(before) {
			t.Fatalf("blank add changed length from %d to %d", len(before), len(b.Tasks()))
		}
	})
}

func TestProperty_ToggleIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		b, _ := genBoard(t)
		before := b.Tasks()
		id := pickID(t, b)

		b.ToggleCompletion(ctx, id)
		b.ToggleCompletion(ctx, id)

		after := b.Tasks()
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("task %d changed: %+v -> %+v", i, before[i], after[i])
			}
		}
	})
}

func TestProperty_DeleteIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		b, _ := genBoard(t)
		id := pickID(t, b)

		b.DeleteTask(ctx, id)
		once := b.Tasks()
		b.DeleteTask(ctx, id)
		twice := b.Tasks()

		if len(once) != len(twice) {
			t.Fatalf("second delete changed length %d -> %d", len(once), len(twice))
		}
		for _, tk := range twice {
			if tk.ID == id {
				t.Fatalf("deleted id %s still present", id)
			}
		}
	})
}

func TestProperty_CommitEditKeepsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		b, _ := genBoard(t)
		id := pickID(t, b)
		before, _ := b.find(id)

		b.BeginEdit(id)
		b.SetInput(genTitle(t))
		b.SetPriority(genPriority(t))
		b.CommitEdit(ctx)

		after, ok := b.find(id)
		if !ok {
			t.Fatalf("task %s vanished after edit", id)
		}
		if after.Completed != before.Completed {
			t.Fatalf("completed changed: %v -> %v", before.Completed, after.Completed)
		}
	})
}

func TestProperty_CancelEditNeverMutates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b, _ := genBoard(t)
		before := b.Tasks()

		b.BeginEdit(pickID(t, b))
		b.SetInput(genTitle(t))
		b.SetPriority(genPriority(t))
		b.CancelEdit()

		after := b.Tasks()
		if len(before) != len(after) {
			t.Fatalf("length changed %d -> %d", len(before), len(after))
		}
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("task %d changed: %+v -> %+v", i, before[i], after[i])
			}
		}
	})
}

func TestProperty_VisibleAndSummary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b, _ := genBoard(t)
		selected := genPriority(t)
		b.SetPriority(selected)

		all := b.Tasks()
		var want []task.Task
		completed := 0
		for _, tk := range all {
			if tk.Priority == selected {
				want = append(want, tk)
			}
			if tk.Completed {
				completed++
			}
		}

		visible := b.Visible()
		if len(visible) != len(want) {
			t.Fatalf("visible = %d rows, want %d", len(visible), len(want))
		}
		for i := range want {
			if visible[i] != want[i] {
				t.Fatalf("row %d = %+v, want %+v", i, visible[i], want[i])
			}
		}

		s := b.Summary()
		if s.Total != len(all) || s.Completed != completed {
			t.Fatalf("summary = %+v, want total=%d completed=%d", s, len(all), completed)
		}
	})
}

func TestProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		b, store := genBoard(t)

		reloaded := New(store, DefaultKey, zerolog.Nop())
		reloaded.Initialize(ctx)

		want, got := b.Tasks(), reloaded.Tasks()
		if len(want) != len(got) {
			t.Fatalf("reloaded %d tasks, want %d", len(got), len(want))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("task %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})
}
