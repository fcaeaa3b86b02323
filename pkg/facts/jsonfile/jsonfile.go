// Package jsonfile provides a facts store backed by a single JSON file.
//
// The whole file is rewritten on every mutation. That keeps the store
// trivially consistent for its target data volume (a personal fact list)
// and matches the persisted layout: a flat JSON array of
// {"fact": string, "is_enabled": bool} objects with no envelope.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/luggagemoose/factbot/pkg/facts"
)

// Driver implements facts.Store on top of a JSON array file.
type Driver struct {
	// mu serializes the read-modify-write cycle within this process.
	// Cross-process writers still race (last writer wins), which is an
	// accepted limitation at the expected load.
	mu sync.Mutex

	path   string
	logger *slog.Logger
}

// NewDriver creates a store backed by the JSON file at path. The file
// does not need to exist; a missing file reads as an empty collection.
func NewDriver(path string, logger *slog.Logger) *Driver {
	return &Driver{
		path:   path,
		logger: logger,
	}
}

// List returns all stored facts in file order.
func (d *Driver) List(_ context.Context) ([]facts.Fact, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.load(), nil
}

// Add inserts text with the given enabled flag, or overwrites the flag
// of an existing fact with the same text. New facts append at the tail
// so file order tracks insertion order.
func (d *Driver) Add(_ context.Context, text string, enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	all := d.load()
	updated := false
	for i := range all {
		if all[i].Text == text {
			all[i].Enabled = enabled
			updated = true
			break
		}
	}
	if !updated {
		all = append(all, facts.Fact{Text: text, Enabled: enabled})
	}

	if err := d.save(all); err != nil {
		return facts.WriteError{Op: "add", Err: err}
	}

	return nil
}

// SetEnabled recomputes every fact's enabled flag as membership in
// selected. The set of stored texts never changes.
func (d *Driver) SetEnabled(_ context.Context, selected []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	active := make(map[string]struct{}, len(selected))
	for _, text := range selected {
		active[text] = struct{}{}
	}

	all := d.load()
	for i := range all {
		_, ok := active[all[i].Text]
		all[i].Enabled = ok
	}

	if err := d.save(all); err != nil {
		return facts.WriteError{Op: "set enabled", Err: err}
	}

	return nil
}

// Close is a no-op; the driver holds no open handles between calls.
func (d *Driver) Close() error {
	return nil
}

// load reads the backing file. A missing, unreadable, or corrupt file
// degrades to an empty collection so the service stays usable; the
// failure is logged rather than surfaced.
func (d *Driver) load() []facts.Fact {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.logger.Warn("reading facts file failed, treating as empty",
				"path", d.path,
				"error", err,
			)
		}
		return []facts.Fact{}
	}

	var all []facts.Fact
	if err := json.Unmarshal(data, &all); err != nil {
		d.logger.Warn("parsing facts file failed, treating as empty",
			"path", d.path,
			"error", err,
		)
		return []facts.Fact{}
	}

	return all
}

// save rewrites the whole backing file with the given collection.
func (d *Driver) save(all []facts.Fact) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding facts: %w", err)
	}

	if err := os.WriteFile(d.path, data, 0o600); err != nil {
		return fmt.Errorf("writing facts file %s: %w", d.path, err)
	}

	return nil
}
