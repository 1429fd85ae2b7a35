package sqlite

// Schema DDL for the history database. Attach applies it on every open, so
// creation must be idempotent.
const schemaDDL = `CREATE TABLE IF NOT EXISTS estimates (
    estimate_id TEXT PRIMARY KEY,
    food TEXT NOT NULL,
    state TEXT NOT NULL,
    storage TEXT NOT NULL,
    modifiers TEXT NOT NULL,
    base_hours REAL NOT NULL,
    lower_hours REAL NOT NULL,
    upper_hours REAL NOT NULL,
    risk TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_estimates_food ON estimates(food);
CREATE INDEX IF NOT EXISTS idx_estimates_created ON estimates(created_at);`
