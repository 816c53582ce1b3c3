// Package statistics aggregates a player's round history into per-game
// session statistics.
package statistics

import (
	"context"
	"time"

	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/repositories/history"
)

// Service provides methods for retrieving and aggregating player statistics
type Service struct {
	repository history.Repository
}

// NewService creates a new statistics service
func NewService(repository history.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// GameStatistics are the aggregates for one player and one game
type GameStatistics struct {
	Game         entities.GameType
	RoundsPlayed int
	Wins         int
	Losses       int
	Pushes       int
	TotalBet     int
	TotalPayout  int
	BiggestWin   int
	LastPlayed   time.Time
}

// NetProfit returns the player's net profit for the game
func (s *GameStatistics) NetProfit() int {
	return s.TotalPayout - s.TotalBet
}

// WinRate returns the player's win rate as a percentage
func (s *GameStatistics) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed) * 100.0
}

// GetPlayerStatistics aggregates a player's rounds per game
func (s *Service) GetPlayerStatistics(ctx context.Context, playerName string) ([]*GameStatistics, error) {
	games := []entities.GameType{entities.GameSlots, entities.GameRoulette, entities.GameBlackjack}

	stats := make([]*GameStatistics, 0, len(games))
	for _, game := range games {
		gameStats, err := s.GetGameStatistics(ctx, playerName, game)
		if err != nil {
			return nil, err
		}
		stats = append(stats, gameStats)
	}

	return stats, nil
}

// GetGameStatistics aggregates a player's rounds for one game
func (s *Service) GetGameStatistics(ctx context.Context, playerName string, game entities.GameType) (*GameStatistics, error) {
	rounds, err := s.repository.GetPlayerGameRounds(ctx, playerName, game)
	if err != nil {
		return nil, err
	}

	stats := &GameStatistics{Game: game}

	for _, round := range rounds {
		stats.RoundsPlayed++
		stats.TotalBet += round.Bet
		stats.TotalPayout += round.Payout

		switch round.Outcome {
		case entities.OutcomeWin:
			stats.Wins++
			if net := round.Net(); net > stats.BiggestWin {
				stats.BiggestWin = net
			}
		case entities.OutcomePush:
			stats.Pushes++
		default:
			stats.Losses++
		}

		if round.PlayedAt.After(stats.LastPlayed) {
			stats.LastPlayed = round.PlayedAt
		}
	}

	return stats, nil
}
