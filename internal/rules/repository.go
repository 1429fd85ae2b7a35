// Package rules loads and holds the immutable rules dataset. Datasets are
// parsed once per source and cached for the life of the process; concurrent
// first loads of the same source perform at most one read and parse.
package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mesh-intelligence/larder/pkg/types"
)

//go:embed rules.json
var builtinJSON []byte

// BuiltinSource is the cache key for the embedded default dataset.
const BuiltinSource = "builtin:rules"

// requiredKeys are the top-level keys a rules file must carry. Presence is
// the only load-time check; deeper validation (factor signs, declared
// state/storage subsets) is the engine's job at computation time.
var requiredKeys = []string{"foods", "modifiers", "sensory_flags"}

// Repository caches parsed rules datasets by source path.
type Repository struct {
	mu    sync.Mutex
	cache map[string]*entry
}

// entry memoizes one source. The once guard guarantees at most one actual
// read and parse per source even under concurrent first loads; every caller
// converges on the same dataset pointer or error.
type entry struct {
	once sync.Once
	ds   *types.RulesDataset
	err  error
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{cache: make(map[string]*entry)}
}

// Load reads and parses the rules file at path, memoized per absolute path.
// Repeated calls with the same source never re-read or re-parse. Failures
// are memoized too: a malformed dataset cannot be repaired by retrying the
// same read.
func (r *Repository) Load(path string) (*types.RulesDataset, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve rules path: %w", err)
	}

	e := r.entryFor(abs)
	e.once.Do(func() {
		data, readErr := os.ReadFile(abs)
		if readErr != nil {
			e.err = fmt.Errorf("%w: read rules file: %v", types.ErrDatasetInvalid, readErr)
			return
		}
		e.ds, e.err = Parse(data)
	})
	return e.ds, e.err
}

// Builtin returns the embedded default dataset, parsed once.
func (r *Repository) Builtin() (*types.RulesDataset, error) {
	e := r.entryFor(BuiltinSource)
	e.once.Do(func() {
		e.ds, e.err = Parse(builtinJSON)
	})
	return e.ds, e.err
}

func (r *Repository) entryFor(key string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.cache[key]
	if !ok {
		e = &entry{}
		r.cache[key] = e
	}
	return e
}

// Parse decodes rules data and checks structural presence of the required
// top-level keys. Malformed data or a missing key wraps
// types.ErrDatasetInvalid.
func Parse(data []byte) (*types.RulesDataset, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrDatasetInvalid, err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing required key %q", types.ErrDatasetInvalid, key)
		}
	}

	var ds types.RulesDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrDatasetInvalid, err)
	}
	return &ds, nil
}

// Export serializes the dataset back to the external file format as indented
// JSON. Serialization is deterministic, so the same in-memory model always
// produces the same bytes, and reloading the output yields an identical
// model.
func Export(ds *types.RulesDataset) ([]byte, error) {
	out, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize rules dataset: %w", err)
	}
	return append(out, '\n'), nil
}
