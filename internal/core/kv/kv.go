// Package kv defines the string key-value store the task list is persisted to.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned (wrapped) by Get when a key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a durable mapping from string keys to string values, the
// terminal counterpart of browser local storage.
type Store interface {
	// Get returns the value stored under key, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}
