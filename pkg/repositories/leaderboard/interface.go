package leaderboard

import (
	"context"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// Repository defines the interface for leaderboard persistence
type Repository interface {
	// Load returns all entries sorted descending by balance
	Load(ctx context.Context) ([]entities.LeaderboardEntry, error)

	// Save overwrites the stored entries
	Save(ctx context.Context, entries []entities.LeaderboardEntry) error

	// AddEntry upserts an entry keyed by exact name match
	AddEntry(ctx context.Context, entry entities.LeaderboardEntry) error

	// PlayerExists reports whether a name already has an entry
	PlayerExists(ctx context.Context, name string) (bool, error)
}
