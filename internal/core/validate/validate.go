// Package validate provides shared validation functions.
package validate

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/taskboard/internal/core/task"
)

// TaskTitle validates a task title is non-empty after trimming whitespace.
func TaskTitle(title string) error {
	if task.IsBlank(title) {
		return fmt.Errorf("title is required")
	}
	return nil
}

// Priority validates that s names one of the fixed priorities.
func Priority(s string) error {
	_, err := task.ParsePriority(s)
	return err
}

// TaskTitleField returns a criterio validator for task titles.
func TaskTitleField(field, title string) error {
	return criterio.Run(field, title, TaskTitle)
}

// PriorityField returns a criterio validator for priority names.
func PriorityField(field, priority string) error {
	return criterio.Run(field, priority, Priority)
}

// TaskInput validates a title and priority pair as submitted from the CLI.
func TaskInput(title, priority string) error {
	return criterio.ValidateStruct(
		TaskTitleField("title", title),
		PriorityField("priority", priority),
	)
}
