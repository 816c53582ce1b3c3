package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marczelloo/kasyno/pkg/entities"
)

func newTestSQLiteRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	ctx := context.Background()

	saveRound(t, repo, "Tuco", entities.GameBlackjack, 100, 250)
	saveRound(t, repo, "Tuco", entities.GameSlots, 50, 0)

	rounds, err := repo.GetPlayerRounds(ctx, "Tuco", 0)
	require.NoError(t, err)
	require.Len(t, rounds, 2)

	byGame := make(map[entities.GameType]*entities.RoundRecord)
	for _, round := range rounds {
		byGame[round.Game] = round
		assert.NotEmpty(t, round.ID)
		assert.False(t, round.PlayedAt.IsZero())
	}

	require.Contains(t, byGame, entities.GameBlackjack)
	assert.Equal(t, 250, byGame[entities.GameBlackjack].Payout)
	assert.Equal(t, entities.OutcomeWin, byGame[entities.GameBlackjack].Outcome)
	require.Contains(t, byGame, entities.GameSlots)
	assert.Equal(t, entities.OutcomeLose, byGame[entities.GameSlots].Outcome)
}

func TestSQLiteRepositoryFiltersByGame(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	ctx := context.Background()

	saveRound(t, repo, "Tuco", entities.GameBlackjack, 100, 250)
	saveRound(t, repo, "Tuco", entities.GameSlots, 50, 0)
	saveRound(t, repo, "Blondie", entities.GameSlots, 25, 25)

	rounds, err := repo.GetPlayerGameRounds(ctx, "Tuco", entities.GameSlots)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, 50, rounds[0].Bet)
}

func TestSQLiteRepositoryLimit(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	for i := 0; i < 5; i++ {
		saveRound(t, repo, "Tuco", entities.GameRoulette, 10, 20)
	}

	rounds, err := repo.GetPlayerRounds(context.Background(), "Tuco", 3)
	require.NoError(t, err)
	assert.Len(t, rounds, 3)
}
