// Package watch keeps an in-memory registry of portfolios and reserve
// profiles to be re-evaluated periodically. The registry is the only
// stateful part of the service; it holds nothing but what callers
// registered and is lost on restart.
package watch

import (
	"sort"
	"sync"
	"time"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/reserves"
	"github.com/google/uuid"
)

// TargetKind distinguishes what a watch entry observes.
type TargetKind string

const (
	KindPortfolio TargetKind = "portfolio"
	KindReserves  TargetKind = "reserves"
)

// Entry is one registered watch target. Exactly one of Portfolio or
// Reserves is set, per Kind.
type Entry struct {
	ID           string                    `json:"id"`
	Kind         TargetKind                `json:"kind"`
	Label        string                    `json:"label,omitempty"`
	Portfolio    *domain.PortfolioSnapshot `json:"portfolio,omitempty"`
	Reserves     *reserves.Input           `json:"reserves,omitempty"`
	RegisteredAt time.Time                 `json:"registered_at"`
}

// Registry is a concurrency-safe store of watch entries.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// AddPortfolio registers a portfolio snapshot and returns the new entry.
func (r *Registry) AddPortfolio(label string, snapshot domain.PortfolioSnapshot) (Entry, error) {
	if err := snapshot.Validate(); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:           uuid.New().String(),
		Kind:         KindPortfolio,
		Label:        label,
		Portfolio:    &snapshot,
		RegisteredAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.entries[entry.ID] = entry
	r.mu.Unlock()

	return entry, nil
}

// AddReserves registers a reserve profile and returns the new entry.
// The profile is validated the same way an evaluation would.
func (r *Registry) AddReserves(label string, input reserves.Input) (Entry, error) {
	if _, err := reserves.NewMonitor().Evaluate(input); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:           uuid.New().String(),
		Kind:         KindReserves,
		Label:        label,
		Reserves:     &input,
		RegisteredAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.entries[entry.ID] = entry
	r.mu.Unlock()

	return entry, nil
}

// Get returns the entry with the given id.
func (r *Registry) Get(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	return entry, ok
}

// List returns all entries ordered by registration time, oldest first.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].RegisteredAt.Equal(entries[j].RegisteredAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].RegisteredAt.Before(entries[j].RegisteredAt)
	})
	return entries
}

// Remove deletes the entry with the given id. It reports whether an
// entry was present.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
