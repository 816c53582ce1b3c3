package casino

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marczelloo/kasyno/internal/logging"
	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/games/slots"
	"github.com/marczelloo/kasyno/pkg/repositories/history"
	"github.com/marczelloo/kasyno/pkg/repositories/leaderboard"
	"github.com/marczelloo/kasyno/pkg/rng"
	"github.com/marczelloo/kasyno/pkg/ui"
)

// scriptedSource feeds rand fixed values in order, then zeroes once drained
type scriptedSource struct {
	values []int64
}

func (s *scriptedSource) Int63() int64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func (s *scriptedSource) Seed(seed int64) {}

// fakeGame is a Game double recording the players it saw
type fakeGame struct {
	next   entities.GameState
	onPlay func(player *entities.Player)
	played []*entities.Player
}

func (f *fakeGame) Name() string { return "Fake" }

func (f *fakeGame) PlayRound(player *entities.Player) entities.GameState {
	f.played = append(f.played, player)
	if f.onPlay != nil {
		f.onPlay(player)
	}
	return f.next
}

// panicGame blows up mid-round
type panicGame struct{}

func (p *panicGame) Name() string { return "Panic" }

func (p *panicGame) PlayRound(player *entities.Player) entities.GameState {
	panic("table on fire")
}

// failingHistory errors on every operation
type failingHistory struct{}

func (f *failingHistory) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	return errors.New("database gone")
}

func (f *failingHistory) GetPlayerRounds(ctx context.Context, playerName string, limit int) ([]*entities.RoundRecord, error) {
	return nil, errors.New("database gone")
}

func (f *failingHistory) GetPlayerGameRounds(ctx context.Context, playerName string, game entities.GameType) ([]*entities.RoundRecord, error) {
	return nil, errors.New("database gone")
}

func (f *failingHistory) Close() error { return nil }

func newTestCasino(script *ui.Script) *Casino {
	return New(script, rng.NewSeeded(1), logging.Discard,
		leaderboard.NewMemoryRepository(), history.NewMemoryRepository())
}

func TestCreatePlayerSuccess(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{mainOptionCreatePlayer}
	script.Answers = []string{"Tuco"}

	c := newTestCasino(script)

	state := c.handleMainMenu()
	assert.Equal(t, entities.StateCasinoMenu, state)

	require.NotNil(t, c.player)
	assert.Equal(t, "Tuco", c.player.Name)
	assert.GreaterOrEqual(t, c.player.Balance, minStartBalance)
	assert.LessOrEqual(t, c.player.Balance, maxStartBalance)
	assert.True(t, script.Saw("Welcome, Tuco!"))
}

func TestCreatePlayerEmptyName(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{mainOptionCreatePlayer}

	c := newTestCasino(script)

	state := c.handleMainMenu()
	assert.Equal(t, entities.StateMainMenu, state)
	assert.Nil(t, c.player)
	assert.True(t, script.Saw("Name cannot be empty"))
}

func TestCreatePlayerRejectsExistingName(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{mainOptionCreatePlayer}
	script.Answers = []string{"Tuco"}

	c := newTestCasino(script)
	require.NoError(t, c.leaderboard.AddEntry(context.Background(),
		entities.LeaderboardEntry{Name: "Tuco", Balance: 500}))

	state := c.handleMainMenu()
	assert.Equal(t, entities.StateMainMenu, state)
	assert.Nil(t, c.player)
	assert.True(t, script.Saw("already exists"))
}

func TestMainMenuExitWithoutPlayer(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{mainOptionExit}

	c := newTestCasino(script)

	assert.Equal(t, entities.StateExit, c.handleMainMenu())
}

func TestMainMenuClosedInputExits(t *testing.T) {
	c := newTestCasino(ui.NewScript())

	assert.Equal(t, entities.StateExit, c.handleMainMenu())
}

func TestMainMenuShowsLeaderboard(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{mainOptionLeaderboard}

	c := newTestCasino(script)
	require.NoError(t, c.leaderboard.AddEntry(context.Background(),
		entities.LeaderboardEntry{Name: "Blondie", Balance: 9000}))

	state := c.handleMainMenu()
	assert.Equal(t, entities.StateMainMenu, state)
	assert.True(t, script.Saw("leaderboard: 1 entries"))
}

func TestCasinoMenuStatistics(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{casinoOptionStatistics}

	c := newTestCasino(script)
	c.player, _ = entities.NewPlayer("Tuco", 1000)

	require.NoError(t, c.history.SaveRound(context.Background(), &entities.RoundRecord{
		PlayerName: "Tuco",
		Game:       entities.GameSlots,
		Bet:        100,
		Payout:     300,
		Outcome:    entities.OutcomeWin,
	}))

	state := c.handleCasinoMenu()
	assert.Equal(t, entities.StateCasinoMenu, state)
	assert.True(t, script.Saw("STATISTICS - Tuco"))
	assert.True(t, script.Saw("Net profit: 200$"))
}

func TestCasinoMenuReturnsToMainMenu(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{casinoOptionReturn}

	c := newTestCasino(script)
	c.player, _ = entities.NewPlayer("Tuco", 1000)

	assert.Equal(t, entities.StateMainMenu, c.handleCasinoMenu())
}

func TestGameMenuRunsRegisteredGame(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{gameOptionSlots}

	c := newTestCasino(script)
	c.player, _ = entities.NewPlayer("Tuco", 1000)

	fake := &fakeGame{next: entities.StateCasinoMenu}
	c.Register(entities.GameSlots, fake)

	state := c.handleGameMenu()
	assert.Equal(t, entities.StateCasinoMenu, state)
	require.Len(t, fake.played, 1)
	assert.Equal(t, c.player, fake.played[0])
}

func TestGameMenuUnregisteredGame(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{gameOptionRoulette}

	c := newTestCasino(script)
	c.player, _ = entities.NewPlayer("Tuco", 1000)

	state := c.handleGameMenu()
	assert.Equal(t, entities.StateGameMenu, state)
	assert.True(t, script.Saw("not available"))
}

func TestGameMenuGameOverOnZeroBalance(t *testing.T) {
	script := ui.NewScript()

	c := newTestCasino(script)
	c.player, _ = entities.NewPlayer("Tuco", 0)

	state := c.handleGameMenu()
	assert.Equal(t, entities.StateMainMenu, state)
	assert.Nil(t, c.player)
	assert.True(t, script.Saw("GAME OVER"))

	// the busted balance still lands on the leaderboard
	entries, err := c.leaderboard.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entities.LeaderboardEntry{Name: "Tuco", Balance: 0}, entries[0])
}

func TestRecordRoundSwallowsPersistenceFaults(t *testing.T) {
	script := ui.NewScript()
	c := New(script, rng.NewSeeded(1), logging.Discard,
		leaderboard.NewMemoryRepository(), &failingHistory{})

	assert.NotPanics(t, func() {
		c.RecordRound(&entities.RoundRecord{
			PlayerName: "Tuco",
			Game:       entities.GameSlots,
			Bet:        100,
			Outcome:    entities.OutcomeLose,
		})
	})
}

func TestStepRecoversFromPanic(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{gameOptionBlackjack}

	c := newTestCasino(script)
	c.player, _ = entities.NewPlayer("Tuco", 1000)
	c.Register(entities.GameBlackjack, &panicGame{})
	c.state = entities.StateGameMenu

	assert.NotPanics(t, c.step)
	assert.Equal(t, entities.StateMainMenu, c.state)
	assert.True(t, script.Saw("Something went wrong"))
}

func TestRunFullSessionSavesOnExit(t *testing.T) {
	script := ui.NewScript()
	// create a player, then exit the casino menu and confirm
	script.Choices = []int{mainOptionCreatePlayer, casinoOptionExit, 0}
	script.Answers = []string{"Tuco"}

	c := newTestCasino(script)
	c.Run()

	assert.Equal(t, entities.StateExit, c.state)
	assert.True(t, script.Saw("Thanks for playing"))

	exists, err := c.leaderboard.PlayerExists(context.Background(), "Tuco")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunGameOverEndToEnd(t *testing.T) {
	script := ui.NewScript()
	// create a player, enter the game menu, lose everything, then exit
	script.Choices = []int{
		mainOptionCreatePlayer,
		casinoOptionSelectGame,
		gameOptionSlots,
		mainOptionExit,
	}
	script.Answers = []string{"Tuco"}

	c := newTestCasino(script)

	// a game that empties the wallet and sends the player back to the
	// game menu, which must then run the game-over flow
	drain := &fakeGame{
		next:   entities.StateGameMenu,
		onPlay: func(player *entities.Player) { player.Balance = 0 },
	}
	c.Register(entities.GameSlots, drain)

	c.Run()

	require.Len(t, drain.played, 1)
	assert.True(t, script.Saw("GAME OVER"))
	assert.Nil(t, c.player)

	entries, err := c.leaderboard.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entities.LeaderboardEntry{Name: "Tuco", Balance: 0}, entries[0])
}

func TestRunGameOverOnLosingSlotsSpins(t *testing.T) {
	// rand.Intn keeps the top 31 bits of each source value modulo n, so a
	// value of k<<32 comes out as k%n. The first draw pins the starting
	// balance at 5000. Each spin then samples three distinct reel symbols,
	// a combination that never pays, followed by 48 zero draws consumed by
	// the spin animation.
	src := &scriptedSource{values: []int64{0}}
	for i := 0; i < 10; i++ {
		src.values = append(src.values, 0, 49<<32, 79<<32)
		for j := 0; j < 48; j++ {
			src.values = append(src.values, 0)
		}
	}

	script := ui.NewScript()
	choices := []int{
		mainOptionCreatePlayer,
		casinoOptionSelectGame,
		gameOptionSlots,
		5, // the 500$ bet tier
	}
	for i := 0; i < 10; i++ {
		choices = append(choices, 0) // spin until the 5000 is gone
	}
	choices = append(choices, 3, mainOptionExit) // leave slots, then the casino
	script.Choices = choices
	script.Answers = []string{"Tuco"}

	random := rng.NewFromSource(src)
	c := New(script, random, logging.Discard,
		leaderboard.NewMemoryRepository(), history.NewMemoryRepository())
	c.Register(entities.GameSlots, slots.New(random, script, c, c))

	c.Run()

	assert.True(t, script.Saw("GAME OVER"))
	assert.Nil(t, c.player)

	rounds, err := c.history.GetPlayerGameRounds(context.Background(), "Tuco", entities.GameSlots)
	require.NoError(t, err)
	require.Len(t, rounds, 10)
	for _, round := range rounds {
		assert.Equal(t, entities.OutcomeLose, round.Outcome)
		assert.Equal(t, 500, round.Bet)
	}

	entries, err := c.leaderboard.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entities.LeaderboardEntry{Name: "Tuco", Balance: 0}, entries[0])
}
