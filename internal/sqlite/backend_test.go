package sqlite

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// setupBackend attaches a backend with a fake clock to a temp data dir.
func setupBackend(t *testing.T) (*Backend, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	b := NewBackendWithClock(clock)
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	require.NoError(t, b.Attach(cfg))
	t.Cleanup(func() { _ = b.Detach() })
	return b, clock
}

func TestBackendLifecycle(t *testing.T) {
	t.Run("double attach", func(t *testing.T) {
		b, _ := setupBackend(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		b, _ := setupBackend(t)
		require.NoError(t, b.Detach())
		require.NoError(t, b.Detach())
	})

	t.Run("operations on detached backend", func(t *testing.T) {
		b := NewBackend()
		_, err := b.Record(HistoryRecord{Food: "milk"})
		assert.ErrorIs(t, err, types.ErrBackendDetached)
		_, err = b.List(0)
		assert.ErrorIs(t, err, types.ErrBackendDetached)
		assert.ErrorIs(t, b.Clear(), types.ErrBackendDetached)
	})

	t.Run("invalid config", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{Backend: "postgres"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("history survives reattach", func(t *testing.T) {
		dataDir := t.TempDir()
		cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

		b := NewBackend()
		require.NoError(t, b.Attach(cfg))
		_, err := b.Record(HistoryRecord{Food: "pizza", State: "cooked", Storage: "refrigerated", Risk: types.RiskModerate})
		require.NoError(t, err)
		require.NoError(t, b.Detach())

		b2 := NewBackend()
		require.NoError(t, b2.Attach(cfg))
		defer b2.Detach()
		records, err := b2.List(0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "pizza", records[0].Food)
	})
}

func TestHistoryRecordAndGet(t *testing.T) {
	b, clock := setupBackend(t)

	id, err := b.Record(HistoryRecord{
		Food:       "cooked_rice",
		State:      "cooked",
		Storage:    "refrigerated",
		Modifiers:  []string{"reheated_once"},
		BaseHours:  72,
		LowerHours: 27,
		UpperHours: 36,
		Risk:       types.RiskModerate,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := b.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.EstimateID)
	assert.Equal(t, "cooked_rice", rec.Food)
	assert.Equal(t, []string{"reheated_once"}, rec.Modifiers)
	assert.Equal(t, 72.0, rec.BaseHours)
	assert.Equal(t, 27.0, rec.LowerHours)
	assert.Equal(t, 36.0, rec.UpperHours)
	assert.Equal(t, types.RiskModerate, rec.Risk)
	assert.Equal(t, clock.Now().UTC(), rec.CreatedAt)
}

func TestHistoryGetMissing(t *testing.T) {
	b, _ := setupBackend(t)
	_, err := b.Get("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestHistoryList(t *testing.T) {
	b, clock := setupBackend(t)

	for _, food := range []string{"milk", "eggs", "bread"} {
		_, err := b.Record(HistoryRecord{Food: food, State: "opened", Storage: "refrigerated", Risk: types.RiskModerate})
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}

	t.Run("newest first", func(t *testing.T) {
		records, err := b.List(0)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "bread", records[0].Food)
		assert.Equal(t, "milk", records[2].Food)
	})

	t.Run("limit", func(t *testing.T) {
		records, err := b.List(2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "bread", records[0].Food)
	})

	t.Run("empty modifiers decode as empty slice", func(t *testing.T) {
		records, err := b.List(1)
		require.NoError(t, err)
		assert.Equal(t, []string{}, records[0].Modifiers)
	})
}

func TestHistoryClear(t *testing.T) {
	b, _ := setupBackend(t)

	_, err := b.Record(HistoryRecord{Food: "fish", State: "raw", Storage: "frozen", Risk: types.RiskLow})
	require.NoError(t, err)

	require.NoError(t, b.Clear())

	records, err := b.List(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
