// Package sqlite provides the public API for the SQLite history backend.
// This package exposes the factory function for creating history backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/larder/internal/sqlite"
)

// Backend stores estimate history in a local SQLite database.
type Backend = sqlite.Backend

// HistoryRecord is one logged estimate.
type HistoryRecord = sqlite.HistoryRecord

// NewBackend creates a new history backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".larder-db",
//	})
//	defer backend.Detach()
func NewBackend() *Backend {
	return sqlite.NewBackend()
}
