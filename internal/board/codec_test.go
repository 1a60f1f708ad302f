package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/task"
)

func TestEncode_Layout(t *testing.T) {
	got, err := Encode([]task.Task{
		{ID: "a", Title: "Task 1", Priority: task.PriorityLow},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","title":"Task 1","completed":false,"priority":"low"}]`, got)

	empty, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    []task.Task
		wantErr string
	}{
		{
			name:  "empty list",
			value: `[]`,
			want:  []task.Task{},
		},
		{
			name:  "valid",
			value: `[{"id":"a","title":"x","completed":true,"priority":"high"}]`,
			want:  []task.Task{{ID: "a", Title: "x", Completed: true, Priority: task.PriorityHigh}},
		},
		{
			name:  "extra fields tolerated",
			value: `[{"id":"a","title":"x","completed":false,"priority":"low","note":"hi"}]`,
			want:  []task.Task{{ID: "a", Title: "x", Priority: task.PriorityLow}},
		},
		{
			name:  "duplicate ids keep first",
			value: `[{"id":"a","title":"first","completed":false,"priority":"low"},{"id":"a","title":"second","completed":false,"priority":"low"}]`,
			want:  []task.Task{{ID: "a", Title: "first", Priority: task.PriorityLow}},
		},
		{
			name:    "not json",
			value:   `{oops`,
			wantErr: "decode tasks",
		},
		{
			name:    "object instead of array",
			value:   `{"id":"a"}`,
			wantErr: "decode tasks",
		},
		{
			name:    "bad priority",
			value:   `[{"id":"a","title":"x","completed":false,"priority":"urgent"}]`,
			wantErr: "[0].priority",
		},
		{
			name:    "missing id",
			value:   `[{"title":"x","completed":false,"priority":"low"}]`,
			wantErr: "decode tasks",
		},
		{
			name:    "empty id",
			value:   `[{"id":"","title":"x","completed":false,"priority":"low"}]`,
			wantErr: "[0].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONPointerToPath(t *testing.T) {
	assert.Equal(t, "", jsonPointerToPath(""))
	assert.Equal(t, "[0]", jsonPointerToPath("/0"))
	assert.Equal(t, "[2].priority", jsonPointerToPath("/2/priority"))
}
