// Package store selects the kv.Store backend described by the configuration.
package store

import (
	"fmt"

	"github.com/colonyops/taskboard/internal/core/config"
	"github.com/colonyops/taskboard/internal/core/kv"
	"github.com/colonyops/taskboard/internal/store/jsonfile"
	"github.com/colonyops/taskboard/internal/store/memory"
)

// Open returns the store for cfg.Storage.Backend.
func Open(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return jsonfile.NewKVStore(cfg.StoragePath()), nil
	case config.BackendMemory:
		return memory.NewKVStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
