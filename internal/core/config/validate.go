package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ValidationError is a configuration problem that must be fixed.
type ValidationError struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidationCheck records a check that passed.
type ValidationCheck struct {
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Details  []string `json:"details,omitempty"`
}

// ValidationResult collects the outcome of ValidateDeep.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
	Checks   []ValidationCheck
}

// IsValid reports whether no errors were found.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ErrorCount returns the number of errors.
func (r *ValidationResult) ErrorCount() int {
	return len(r.Errors)
}

// ValidateDeep performs structural validation plus file access checks. The
// configPath argument is the config file location to check (empty skips it).
func (c *Config) ValidateDeep(configPath string) *ValidationResult {
	result := &ValidationResult{}

	if err := c.Validate(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Category: "Config",
			Message:  err.Error(),
			Fix:      "edit the config file and correct the listed fields",
		})
	} else {
		result.Checks = append(result.Checks, ValidationCheck{
			Category: "Config",
			Message:  "structure is valid",
			Details: []string{
				"storage.backend: " + c.Storage.Backend,
				"storage.key: " + c.Storage.Key,
				"tui.theme: " + c.TUI.Theme,
			},
		})
	}

	c.checkConfigFile(configPath, result)
	c.checkDataDir(result)
	if c.Storage.Backend == BackendFile {
		c.checkStorageFile(result)
	} else {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Category: "Storage",
			Message:  "memory backend selected, tasks are lost when the process exits",
		})
	}

	return result
}

func (c *Config) checkConfigFile(configPath string, result *ValidationResult) {
	if configPath == "" {
		return
	}

	info, err := os.Stat(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		result.Warnings = append(result.Warnings, ValidationWarning{
			Category: "Config",
			Item:     configPath,
			Message:  "config file not found, using defaults",
		})
	case err != nil:
		result.Errors = append(result.Errors, ValidationError{
			Category: "Config",
			Item:     configPath,
			Message:  fmt.Sprintf("cannot access: %v", err),
		})
	case info.IsDir():
		result.Errors = append(result.Errors, ValidationError{
			Category: "Config",
			Item:     configPath,
			Message:  "is a directory, not a file",
		})
	default:
		result.Checks = append(result.Checks, ValidationCheck{Category: "Config", Message: "file " + configPath})
	}
}

func (c *Config) checkDataDir(result *ValidationResult) {
	if err := isDirectoryOrNotExist(c.DataDir); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Category: "Data directory",
			Item:     c.DataDir,
			Message:  err.Error(),
			Fix:      "point --data-dir at a directory",
		})
		return
	}
	result.Checks = append(result.Checks, ValidationCheck{Category: "Data directory", Message: c.DataDir})
}

func (c *Config) checkStorageFile(result *ValidationResult) {
	path := c.StoragePath()

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if dirErr := isDirectoryOrNotExist(filepath.Dir(path)); dirErr != nil {
			result.Errors = append(result.Errors, ValidationError{
				Category: "Storage",
				Item:     path,
				Message:  fmt.Sprintf("parent %s", dirErr),
			})
			return
		}
		result.Checks = append(result.Checks, ValidationCheck{
			Category: "Storage",
			Message:  path + " (created on first write)",
		})
	case err != nil:
		result.Errors = append(result.Errors, ValidationError{
			Category: "Storage",
			Item:     path,
			Message:  fmt.Sprintf("cannot access: %v", err),
		})
	case info.IsDir():
		result.Errors = append(result.Errors, ValidationError{
			Category: "Storage",
			Item:     path,
			Message:  "is a directory, not a file",
			Fix:      "set storage.path to a file path",
		})
	default:
		result.Checks = append(result.Checks, ValidationCheck{Category: "Storage", Message: path})
	}
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
