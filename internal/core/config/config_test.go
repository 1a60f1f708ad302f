package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load("", dataDir)
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dataDir, "storage.json"), cfg.StoragePath())
	assert.Equal(t, filepath.Join(dataDir, "taskboard.log"), cfg.LogFile())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Storage, cfg.Storage)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: memory
  path: /tmp/elsewhere.json
  key: work
tui:
  theme: gruvbox
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "work", cfg.Storage.Key)
	assert.Equal(t, "/tmp/elsewhere.json", cfg.StoragePath())
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: gruvbox\n")

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "storage: [", "parse config file"},
		{"unknown backend", "storage:\n  backend: redis\n", "storage.backend"},
		{"unknown theme", "tui:\n  theme: neon\n", "tui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_dir")
}

func TestValidateDeep(t *testing.T) {
	dataDir := t.TempDir()
	cfg, err := Load("", dataDir)
	require.NoError(t, err)

	result := cfg.ValidateDeep(filepath.Join(dataDir, "missing.yaml"))
	assert.True(t, result.IsValid())
	assert.NotEmpty(t, result.Checks)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Config", result.Warnings[0].Category)
}

func TestValidateDeep_StoragePathIsDirectory(t *testing.T) {
	dataDir := t.TempDir()
	cfg, err := Load("", dataDir)
	require.NoError(t, err)
	cfg.Storage.Path = dataDir

	result := cfg.ValidateDeep("")
	assert.False(t, result.IsValid())
	assert.Equal(t, 1, result.ErrorCount())
	assert.Equal(t, "Storage", result.Errors[0].Category)
}

func TestValidateDeep_MemoryBackendWarns(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	cfg.Storage.Backend = BackendMemory

	result := cfg.ValidateDeep("")
	assert.True(t, result.IsValid())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Storage", result.Warnings[0].Category)
}
