// Package games defines the contract between the application controller
// and the three game engines, plus the betting helpers they share.
package games

import (
	"context"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// Game represents a casino game engine. PlayRound runs a full play
// session (betting, rounds, in-game menus) against the player's ledger
// and returns the application state the controller should enter next.
type Game interface {
	// Name returns the game's display name
	Name() string

	// PlayRound runs a play session for the player
	PlayRound(player *entities.Player) entities.GameState
}

// Recorder persists settled rounds. Implementations must not fail the
// round: persistence faults are logged and play continues.
type Recorder interface {
	// RecordRound stores the outcome of one settled round
	RecordRound(record *entities.RoundRecord)
}

// ProgressSaver writes the player's current balance to the leaderboard
type ProgressSaver interface {
	// SaveProgress upserts the player's leaderboard entry
	SaveProgress(ctx context.Context, player *entities.Player) error
}
