package leaderboard

import (
	"context"
	"sort"
	"sync"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// MemoryRepository implements Repository using in-memory storage
type MemoryRepository struct {
	entries []entities.LeaderboardEntry
	mu      sync.RWMutex
}

// NewMemoryRepository creates a new in-memory leaderboard repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load returns a copy of the entries sorted descending by balance
func (r *MemoryRepository) Load(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]entities.LeaderboardEntry, len(r.entries))
	copy(entries, r.entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance > entries[j].Balance
	})

	return entries, nil
}

// Save replaces the stored entries
func (r *MemoryRepository) Save(ctx context.Context, entries []entities.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make([]entities.LeaderboardEntry, len(entries))
	copy(r.entries, entries)
	return nil
}

// AddEntry upserts an entry keyed by name
func (r *MemoryRepository) AddEntry(ctx context.Context, entry entities.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries[i].Balance = entry.Balance
			return nil
		}
	}

	r.entries = append(r.entries, entry)
	return nil
}

// PlayerExists reports whether a name already has an entry
func (r *MemoryRepository) PlayerExists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.Name == name {
			return true, nil
		}
	}
	return false, nil
}
