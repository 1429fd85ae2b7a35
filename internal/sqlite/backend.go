// Package sqlite implements the SQLite history backend for Larder. The
// backend keeps an append-only log of computed estimates in a local database
// file under the data directory.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonboulle/clockwork"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// databaseFile is the history database filename inside the data directory.
const databaseFile = "larder.db"

// Backend stores estimate history in a SQLite database. It follows an
// attach/detach lifecycle: Attach opens the database and applies the schema,
// Detach releases it. Operations on a detached backend return
// types.ErrBackendDetached.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	clock    clockwork.Clock
}

// NewBackend creates a detached backend using the real clock.
func NewBackend() *Backend {
	return &Backend{clock: clockwork.NewRealClock()}
}

// NewBackendWithClock creates a detached backend with an injected clock.
// Used in tests to pin record timestamps.
func NewBackendWithClock(clock clockwork.Clock) *Backend {
	return &Backend{clock: clock}
}

// Attach initializes the backend with the given configuration. Creates the
// data directory if needed, opens the database, and applies the schema.
// Existing history is preserved across attaches.
// Returns types.ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFile))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached backend
// succeeds. After Detach, all operations return types.ErrBackendDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}
