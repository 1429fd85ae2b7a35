// Shared helpers for larder CLI commands.
package main

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/larder/internal/rules"
	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// rulesRepo caches loaded rules datasets for the process lifetime. Every
// subcommand invocation in the same process converges on one parse per
// source.
var rulesRepo = rules.NewRepository()

// loadDataset resolves the rules source and returns the dataset: the --rules
// flag, config.yaml rules_path, or LARDER_RULES if any is set, otherwise the
// built-in dataset.
func loadDataset() (*types.RulesDataset, error) {
	path, err := resolveRulesPath()
	if err != nil {
		return nil, fmt.Errorf("resolve rules path: %w", err)
	}
	if path == "" {
		return rulesRepo.Builtin()
	}
	ds, err := rulesRepo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return ds, nil
}

// attachBackend resolves the data directory, creates a SQLite history
// backend, and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// isFoodNotFound returns true if the error wraps ErrFoodNotFound.
func isFoodNotFound(err error) bool {
	return errors.Is(err, types.ErrFoodNotFound)
}

// isRecordNotFound returns true if the error wraps ErrNotFound.
func isRecordNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
