package board

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/colonyops/taskboard/internal/core/task"
)

// tasksSchema describes the persisted task list. Extra properties are
// tolerated so values written by newer builds still load. Titles carry no
// minLength: a stored blank title loads as is rather than discarding the list.
const tasksSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "completed", "priority"],
    "properties": {
      "id":        {"type": "string", "minLength": 1},
      "title":     {"type": "string"},
      "completed": {"type": "boolean"},
      "priority":  {"enum": ["low", "medium", "high"]}
    }
  }
}`

var schema = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// ValidationError describes a persisted value that does not match the schema.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Encode serializes tasks into the persisted layout. A nil list encodes as an
// empty array.
func Encode(tasks []task.Task) (string, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses and validates a persisted task list. Later entries that repeat
// an earlier id are dropped. The result is never nil on success.
func Decode(value string) ([]task.Task, error) {
	var raw any
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", schemaError(err))
	}

	var tasks []task.Task
	if err := json.Unmarshal([]byte(value), &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	return dedupe(tasks), nil
}

func dedupe(tasks []task.Task) []task.Task {
	seen := make(map[string]struct{}, len(tasks))
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

// schemaError reduces a jsonschema error tree to its first leaf.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{
		Path: jsonPointerToPath(ve.InstanceLocation),
		Err:  fmt.Errorf("%s", ve.Message),
	}
}

// jsonPointerToPath turns "/0/priority" into "[0].priority".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
