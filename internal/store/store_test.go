package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/store/jsonfile"
	"github.com/colonyops/taskboard/internal/store/memory"
)

func TestOpen(t *testing.T) {
	dataDir := t.TempDir()

	tests := []struct {
		name    string
		backend string
		want    any
		wantErr string
	}{
		{"file", config.BackendFile, &jsonfile.KVStore{}, ""},
		{"memory", config.BackendMemory, &memory.KVStore{}, ""},
		{"unknown", "redis", nil, "unknown storage backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.DataDir = dataDir
			cfg.Storage.Backend = tt.backend

			s, err := Open(&cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpen_FileBackendWritesStoragePath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	s, err := Open(&cfg)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "tasks", "[]"))

	_, err = os.Stat(filepath.Join(cfg.DataDir, "storage.json"))
	assert.NoError(t, err)
}
