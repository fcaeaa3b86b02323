package inmemory

import (
	"context"
	"sync"

	"github.com/luggagemoose/factbot/pkg/facts"
)

// Driver implements facts.Store using an in-memory slice.
// Used in tests and when the service runs without a storage path.
type Driver struct {
	// mu is a read write sync mutex guarding the facts slice
	mu sync.RWMutex

	// all holds the facts in insertion order; texts are unique
	all []facts.Fact
}

// NewDriver creates a new in-memory store.
func NewDriver() *Driver {
	return &Driver{}
}

// List returns a copy of all facts in insertion order.
func (d *Driver) List(_ context.Context) ([]facts.Fact, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]facts.Fact, len(d.all))
	copy(out, d.all)
	return out, nil
}

// Add inserts or updates the fact with the given text.
func (d *Driver) Add(_ context.Context, text string, enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.all {
		if d.all[i].Text == text {
			d.all[i].Enabled = enabled
			return nil
		}
	}

	d.all = append(d.all, facts.Fact{Text: text, Enabled: enabled})
	return nil
}

// SetEnabled toggles every fact's enabled flag to membership in selected.
func (d *Driver) SetEnabled(_ context.Context, selected []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	active := make(map[string]struct{}, len(selected))
	for _, text := range selected {
		active[text] = struct{}{}
	}

	for i := range d.all {
		_, ok := active[d.all[i].Text]
		d.all[i].Enabled = ok
	}

	return nil
}

// Count returns the number of stored facts.
func (d *Driver) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.all)
}

// Close is a no-op for the in-memory store.
func (d *Driver) Close() error {
	return nil
}
