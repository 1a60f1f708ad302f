// Package jsonfile implements stores backed by JSON files on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskboard/internal/core/kv"
)

// KVFile is the root JSON structure stored on disk.
type KVFile map[string]string

// KVStore implements kv.Store using a single JSON file for persistence.
// Every call reads the file, so edits made by another process between
// calls are observed.
type KVStore struct {
	path string
	mu   sync.RWMutex
}

var _ kv.Store = (*KVStore)(nil)

var errCorrupt = errors.New("corrupt store file")

// NewKVStore creates a new JSON file KV store at the given path. The file and
// its parent directory are created on the first write.
func NewKVStore(path string) *KVStore {
	return &KVStore{path: path}
}

// Get returns the value for key. Returns an error wrapping kv.ErrNotFound if
// the key does not exist.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return "", fmt.Errorf("kv get %q: %w", key, err)
	}

	value, ok := file[key]
	if !ok {
		return "", fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
	}

	return value, nil
}

// Set stores value under key. A store file that no longer parses is moved
// aside to <path>.corrupt and replaced by a file holding only this key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if errors.Is(err, errCorrupt) {
		file, err = s.quarantine(ctx, err)
	}
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}

	file[key] = value

	if err := s.save(file); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) quarantine(ctx context.Context, cause error) (KVFile, error) {
	dest := s.path + ".corrupt"
	if err := os.Rename(s.path, dest); err != nil {
		return nil, fmt.Errorf("move corrupt store aside: %w", err)
	}

	log.Warn().Ctx(ctx).
		Err(cause).
		Str("path", s.path).
		Str("moved_to", dest).
		Msg("store file unreadable, starting a new one")

	return KVFile{}, nil
}

// load reads the store file from disk.
// Returns an empty KVFile if the file doesn't exist or is empty.
func (s *KVStore) load() (KVFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return KVFile{}, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return KVFile{}, nil
	}

	var file KVFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", errCorrupt, s.path, err)
	}
	if file == nil {
		file = KVFile{}
	}

	return file, nil
}

// save writes the store file to disk atomically.
func (s *KVStore) save(file KVFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
