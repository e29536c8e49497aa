package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps puzzle keys to solver factories. The zero value is empty and
// ready to use; all methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[Key]Entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Key]Entry)}
}

// Register adds a solver factory under k.
// Returns ErrInvalidKey for an out-of-range key and ErrDuplicatePuzzle if k
// is already taken.
func (r *Registry) Register(k Key, title string, f Factory) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("puzzle: nil factory for %s", k)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[Key]Entry)
	}
	if _, ok := r.entries[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePuzzle, k)
	}
	r.entries[k] = Entry{Key: k, Title: title, Factory: f}
	return nil
}

// Lookup returns the entry registered under k, or ErrUnknownPuzzle.
func (r *Registry) Lookup(k Key) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[k]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownPuzzle, k)
	}
	return e, nil
}

// Entries returns every registered entry ordered by day, then part.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int {
		if a.Key.Day != b.Key.Day {
			return a.Key.Day - b.Key.Day
		}
		return a.Key.Part - b.Key.Part
	})
	return out
}
