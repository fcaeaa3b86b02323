// Package facts
package facts

import "context"

// Fact is a single stored text item with an enabled flag controlling
// whether it is part of the currently active set. The JSON field names
// are the persisted file format and must not change.
type Fact struct {
	Text    string `json:"fact"`
	Enabled bool   `json:"is_enabled"`
}

// Store defines the interface for persisting and retrieving facts in a
// storage backend. The Store is injected into the interaction router so
// backends can be swapped (JSON file, SQLite, in-memory for tests).
type Store interface {
	// List returns all stored facts in insertion order. A missing or
	// unreadable backing store yields an empty slice, not an error.
	List(ctx context.Context) ([]Fact, error)

	// Add inserts a fact with the given text, or updates the enabled
	// flag of an existing fact with the same text. Texts are unique;
	// the last write wins for the flag. New facts append at the tail.
	Add(ctx context.Context, text string, enabled bool) error

	// SetEnabled marks every stored fact whose text appears in selected
	// as enabled and every other stored fact as disabled. It never adds
	// or removes facts.
	SetEnabled(ctx context.Context, selected []string) error

	// Close closes the store and releases any resources.
	Close() error
}
