// Package sqlite provides a SQLite-backed facts store using database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/luggagemoose/factbot/pkg/facts"
)

const schema = `
CREATE TABLE IF NOT EXISTS facts (
	position   INTEGER PRIMARY KEY AUTOINCREMENT,
	text       TEXT    NOT NULL UNIQUE,
	is_enabled BOOLEAN NOT NULL DEFAULT 1
);
`

// Driver implements facts.Store on a SQLite database. Insertion order is
// preserved through the autoincrement position column; uniqueness by text
// is enforced by the schema rather than a load-dedupe-save cycle.
type Driver struct {
	db *sql.DB
}

// NewDriver creates a new SQLite-backed store.
// The dbPath can be a file path or ":memory:" for an in-memory database.
func NewDriver(dbPath string) (*Driver, error) {
	// Open the database using the github.com/mattn/go-sqlite3 driver (registered as "sqlite3")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Driver{db: db}, nil
}

// List returns all facts ordered by insertion position.
func (d *Driver) List(ctx context.Context) ([]facts.Fact, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT text, is_enabled FROM facts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying facts: %w", err)
	}
	defer rows.Close()

	all := []facts.Fact{}
	for rows.Next() {
		var f facts.Fact
		if err := rows.Scan(&f.Text, &f.Enabled); err != nil {
			return nil, fmt.Errorf("scanning fact: %w", err)
		}
		all = append(all, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating facts: %w", err)
	}

	return all, nil
}

// Add upserts the fact keyed by text; the enabled flag from the most
// recent call wins.
func (d *Driver) Add(ctx context.Context, text string, enabled bool) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO facts (text, is_enabled) VALUES (?, ?)
		 ON CONFLICT(text) DO UPDATE SET is_enabled = excluded.is_enabled`,
		text, enabled,
	)
	if err != nil {
		return facts.WriteError{Op: "add", Err: err}
	}

	return nil
}

// SetEnabled enables exactly the facts whose text appears in selected and
// disables the rest, in a single transaction.
func (d *Driver) SetEnabled(ctx context.Context, selected []string) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return facts.WriteError{Op: "set enabled", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE facts SET is_enabled = 0"); err != nil {
		return facts.WriteError{Op: "set enabled", Err: err}
	}

	if len(selected) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(selected)), ",")
		args := make([]any, len(selected))
		for i, text := range selected {
			args[i] = text
		}

		query := "UPDATE facts SET is_enabled = 1 WHERE text IN (" + placeholders + ")"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return facts.WriteError{Op: "set enabled", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return facts.WriteError{Op: "set enabled", Err: err}
	}

	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	return d.db.Close()
}
