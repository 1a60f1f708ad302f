package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "aaa111", Title: "Task 1", Priority: PriorityLow},
		{ID: "bbb222", Title: "Task 2", Priority: PriorityMedium, Completed: true},
		{ID: "bbb333", Title: "Buy milk", Priority: PriorityHigh},
		{ID: "ccc444", Title: "Task 3", Priority: PriorityHigh},
	}
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no criteria", Filter{}, []string{"aaa111", "bbb222", "bbb333", "ccc444"}},
		{"priority", Filter{Priority: PriorityHigh}, []string{"bbb333", "ccc444"}},
		{"glob", Filter{Match: "task*"}, []string{"aaa111", "bbb222", "ccc444"}},
		{"glob and priority", Filter{Priority: PriorityHigh, Match: "Task ?"}, []string{"ccc444"}},
		{"no match", Filter{Match: "nothing"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleTasks())
			require.NotNil(t, got)

			ids := make([]string, 0, len(got))
			for _, tk := range got {
				ids = append(ids, tk.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	assert.NoError(t, Filter{}.Validate())
	assert.NoError(t, Filter{Priority: PriorityLow, Match: "*milk*"}.Validate())
	assert.Error(t, Filter{Priority: "urgent"}.Validate())
	assert.Error(t, Filter{Match: "[unclosed"}.Validate())
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleTasks())
	assert.Equal(t, Summary{Total: 4, Completed: 1}, s)
	assert.Equal(t, "Total Tasks: 4 | Completed Tasks: 1", s.String())

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestResolve(t *testing.T) {
	tasks := sampleTasks()

	got, err := Resolve(tasks, "aaa111")
	require.NoError(t, err)
	assert.Equal(t, "Task 1", got.Title)

	got, err = Resolve(tasks, "ccc")
	require.NoError(t, err)
	assert.Equal(t, "ccc444", got.ID)

	_, err = Resolve(tasks, "bbb")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = Resolve(tasks, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Resolve(tasks, "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}
