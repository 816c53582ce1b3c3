package history

import (
	"context"
	"errors"

	"github.com/marczelloo/kasyno/pkg/entities"
)

var (
	ErrRoundNotFound = errors.New("round not found")
)

// Repository defines the interface for round history persistence
type Repository interface {
	// SaveRound records a settled round
	SaveRound(ctx context.Context, record *entities.RoundRecord) error

	// GetPlayerRounds retrieves the most recent rounds for a player,
	// newest first. A limit <= 0 returns all rounds.
	GetPlayerRounds(ctx context.Context, playerName string, limit int) ([]*entities.RoundRecord, error)

	// GetPlayerGameRounds retrieves a player's rounds for one game
	GetPlayerGameRounds(ctx context.Context, playerName string, game entities.GameType) ([]*entities.RoundRecord, error)

	// Close releases any underlying resources
	Close() error
}
