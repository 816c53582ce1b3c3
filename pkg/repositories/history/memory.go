package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// MemoryRepository implements Repository using in-memory storage.
// Round history is lost on restart.
type MemoryRepository struct {
	rounds []*entities.RoundRecord
	mu     sync.RWMutex
}

// NewMemoryRepository creates a new in-memory history repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveRound records a settled round
func (r *MemoryRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.PlayedAt.IsZero() {
		record.PlayedAt = time.Now()
	}

	stored := *record
	r.rounds = append(r.rounds, &stored)
	return nil
}

// GetPlayerRounds retrieves a player's rounds, newest first
func (r *MemoryRepository) GetPlayerRounds(ctx context.Context, playerName string, limit int) ([]*entities.RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*entities.RoundRecord
	for i := len(r.rounds) - 1; i >= 0; i-- {
		if r.rounds[i].PlayerName != playerName {
			continue
		}
		record := *r.rounds[i]
		records = append(records, &record)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

// GetPlayerGameRounds retrieves a player's rounds for one game, newest first
func (r *MemoryRepository) GetPlayerGameRounds(ctx context.Context, playerName string, game entities.GameType) ([]*entities.RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*entities.RoundRecord
	for i := len(r.rounds) - 1; i >= 0; i-- {
		if r.rounds[i].PlayerName != playerName || r.rounds[i].Game != game {
			continue
		}
		record := *r.rounds[i]
		records = append(records, &record)
	}
	return records, nil
}

// Close is a no-op for the in-memory repository
func (r *MemoryRepository) Close() error {
	return nil
}
