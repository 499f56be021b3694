package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS invoices (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    total REAL NOT NULL,
    tax_rate REAL NOT NULL,
    advance_percent REAL NOT NULL,
    payee_id TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS preferences (
    client_id TEXT PRIMARY KEY,
    theme TEXT NOT NULL CHECK (theme IN ('light', 'dark')),
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_invoices_created_at ON invoices(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
