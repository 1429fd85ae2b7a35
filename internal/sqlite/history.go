package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// HistoryRecord is one logged estimate.
type HistoryRecord struct {
	EstimateID string    `json:"estimate_id"`
	Food       string    `json:"food"`
	State      string    `json:"state"`
	Storage    string    `json:"storage"`
	Modifiers  []string  `json:"modifiers"`
	BaseHours  float64   `json:"base_hours"`
	LowerHours float64   `json:"lower_hours"`
	UpperHours float64   `json:"upper_hours"`
	Risk       string    `json:"risk"`
	CreatedAt  time.Time `json:"created_at"`
}

// Record appends an estimate to the history log. EstimateID and CreatedAt
// are assigned by the backend; any values on the input are ignored. Returns
// the generated ID.
func (b *Backend) Record(rec HistoryRecord) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrBackendDetached
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate estimate ID: %w", err)
	}
	rec.EstimateID = id.String()
	rec.CreatedAt = b.clock.Now().UTC()

	mods := rec.Modifiers
	if mods == nil {
		mods = []string{}
	}
	modsJSON, err := json.Marshal(mods)
	if err != nil {
		return "", fmt.Errorf("encode modifiers: %w", err)
	}

	_, err = b.db.Exec(
		`INSERT INTO estimates (estimate_id, food, state, storage, modifiers,
		    base_hours, lower_hours, upper_hours, risk, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.EstimateID, rec.Food, rec.State, rec.Storage, string(modsJSON),
		rec.BaseHours, rec.LowerHours, rec.UpperHours, rec.Risk,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert estimate: %w", err)
	}
	return rec.EstimateID, nil
}

// Get retrieves one history record by ID. Returns types.ErrNotFound when no
// record exists with that ID.
func (b *Backend) Get(id string) (*HistoryRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBackendDetached
	}

	row := b.db.QueryRow(
		`SELECT estimate_id, food, state, storage, modifiers,
		    base_hours, lower_hours, upper_hours, risk, created_at
		 FROM estimates WHERE estimate_id = ?`, id,
	)
	rec, err := hydrateRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get estimate %s: %w", id, err)
	}
	return rec, nil
}

// List returns history records newest first. A non-positive limit returns
// every record.
func (b *Backend) List(limit int) ([]HistoryRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBackendDetached
	}

	query := `SELECT estimate_id, food, state, storage, modifiers,
	    base_hours, lower_hours, upper_hours, risk, created_at
	 FROM estimates ORDER BY estimate_id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		rec, err := hydrateRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Clear deletes every history record.
func (b *Backend) Clear() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrBackendDetached
	}

	if _, err := b.db.Exec("DELETE FROM estimates"); err != nil {
		return fmt.Errorf("clear estimates: %w", err)
	}
	return nil
}

// hydrateRecord scans one row into a HistoryRecord.
func hydrateRecord(scan func(...any) error) (*HistoryRecord, error) {
	var rec HistoryRecord
	var modsJSON, createdAt string
	if err := scan(
		&rec.EstimateID, &rec.Food, &rec.State, &rec.Storage, &modsJSON,
		&rec.BaseHours, &rec.LowerHours, &rec.UpperHours, &rec.Risk, &createdAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(modsJSON), &rec.Modifiers); err != nil {
		return nil, fmt.Errorf("decode modifiers: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = ts
	return &rec, nil
}
