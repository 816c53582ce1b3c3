package blackjack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/rng"
	"github.com/marczelloo/kasyno/pkg/ui"
)

// stubRecorder captures recorded rounds
type stubRecorder struct {
	records []*entities.RoundRecord
}

func (r *stubRecorder) RecordRound(record *entities.RoundRecord) {
	r.records = append(r.records, record)
}

// stubSaver counts progress saves
type stubSaver struct {
	saves int
}

func (s *stubSaver) SaveProgress(ctx context.Context, player *entities.Player) error {
	s.saves++
	return nil
}

func newTestGame(script *ui.Script) (*Game, *stubRecorder) {
	recorder := &stubRecorder{}
	return New(rng.NewSeeded(1), script, recorder, &stubSaver{}), recorder
}

// stackDeck replaces the game's deck with the given draw order
func stackDeck(g *Game, ranks ...entities.Rank) {
	cards := make([]*entities.Card, 0, len(ranks))
	for _, rank := range ranks {
		cards = append(cards, entities.NewCard(entities.Hearts, rank))
	}
	g.deck = &entities.Deck{Cards: cards}
}

func TestPlayerTurnHitAndBust(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionHit}

	g, _ := newTestGame(script)
	g.hands = []*Hand{hand(100, entities.King, entities.Nine)}
	g.dealer = hand(0, entities.Five)
	stackDeck(g, entities.Five)

	player, _ := entities.NewPlayer("Tuco", 1000)

	dead := g.playerTurn(player, 0)
	assert.True(t, dead)
	assert.True(t, g.hands[0].IsBust())
	assert.True(t, script.Saw("busted"))
}

func TestPlayerTurnStand(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionStand}

	g, _ := newTestGame(script)
	g.hands = []*Hand{hand(100, entities.King, entities.Nine)}
	g.dealer = hand(0, entities.Five)
	stackDeck(g)

	player, _ := entities.NewPlayer("Tuco", 1000)

	dead := g.playerTurn(player, 0)
	assert.False(t, dead)
	assert.Len(t, g.hands[0].Cards, 2)
}

func TestPlayerTurnDoubleDown(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionDoubleDown}

	g, _ := newTestGame(script)
	g.hands = []*Hand{hand(100, entities.Five, entities.Six)}
	g.dealer = hand(0, entities.Five)
	stackDeck(g, entities.Nine)

	player, _ := entities.NewPlayer("Tuco", 1000)

	dead := g.playerTurn(player, 0)
	assert.False(t, dead)
	assert.Equal(t, 200, g.hands[0].Bet)
	assert.Equal(t, 900, player.Balance)
	assert.Len(t, g.hands[0].Cards, 3)
	assert.Equal(t, 20, g.hands[0].Sum())
}

func TestPlayerTurnDoubleDownOnlyOnInitialCards(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionDoubleDown, actionStand}

	g, _ := newTestGame(script)
	g.hands = []*Hand{hand(100, entities.Two, entities.Three, entities.Four)}
	g.dealer = hand(0, entities.Five)
	stackDeck(g)

	player, _ := entities.NewPlayer("Tuco", 1000)

	g.playerTurn(player, 0)
	assert.Equal(t, 100, g.hands[0].Bet)
	assert.Equal(t, 1000, player.Balance)
	assert.True(t, script.Saw("only double-down on your initial two cards"))
}

func TestPlayerTurnSplit(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionSplit, actionStand}

	g, _ := newTestGame(script)
	g.hands = []*Hand{hand(100, entities.Eight, entities.Eight)}
	g.dealer = hand(0, entities.Five)
	stackDeck(g, entities.Two, entities.Three)

	player, _ := entities.NewPlayer("Tuco", 1000)

	dead := g.playerTurn(player, 0)
	assert.False(t, dead)

	// two hands of two cards each, the split stake debited once
	require.Len(t, g.hands, 2)
	assert.Len(t, g.hands[0].Cards, 2)
	assert.Len(t, g.hands[1].Cards, 2)
	assert.Equal(t, 100, g.hands[0].Bet)
	assert.Equal(t, 100, g.hands[1].Bet)
	assert.Equal(t, 900, player.Balance)

	assert.Equal(t, 10, g.hands[0].Sum())
	assert.Equal(t, 11, g.hands[1].Sum())
}

func TestPlayerTurnSplitRequiresPair(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionSplit, actionStand}

	g, _ := newTestGame(script)
	g.hands = []*Hand{hand(100, entities.Eight, entities.Nine)}
	g.dealer = hand(0, entities.Five)
	stackDeck(g)

	player, _ := entities.NewPlayer("Tuco", 1000)

	g.playerTurn(player, 0)
	assert.Len(t, g.hands, 1)
	assert.Equal(t, 1000, player.Balance)
	assert.True(t, script.Saw("only split a pair"))
}

func TestPlayerTurnSurrender(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionSurrender}

	g, _ := newTestGame(script)
	g.hands = []*Hand{hand(100, entities.Ten, entities.Six)}
	g.dealer = hand(0, entities.Five)
	stackDeck(g)

	player, _ := entities.NewPlayer("Tuco", 900)

	dead := g.playerTurn(player, 0)
	assert.True(t, dead)
	assert.True(t, g.hands[0].Surrendered)
	assert.Equal(t, 0, g.hands[0].Bet)
	// half the 100 stake refunded
	assert.Equal(t, 950, player.Balance)
}

func TestDrawCardReshufflesExhaustedDeck(t *testing.T) {
	g, _ := newTestGame(ui.NewScript())
	stackDeck(g)

	card := g.drawCard()
	require.NotNil(t, card)
	assert.Equal(t, 51, g.deck.Remaining())
}

func TestHandleRoundNaturalBlackjack(t *testing.T) {
	// no action choices queued: a natural must settle before any are offered
	script := ui.NewScript()

	g, _ := newTestGame(script)
	stackDeck(g, entities.Ace, entities.King, entities.Five)

	player, _ := entities.NewPlayer("Tuco", 900)
	require.NoError(t, player.PlaceBet(100))

	payout, isBlackjack := g.handleRound(player, 100)
	assert.True(t, isBlackjack)
	assert.Equal(t, 250, payout)
	assert.True(t, script.Saw("Blackjack!"))
}

func TestHandleRoundSplitPairOfEights(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionSplit, actionStand, actionStand}

	g, _ := newTestGame(script)
	// player 8,8; dealer 5; split draws 2 and 3; dealer then draws K,K and busts
	stackDeck(g, entities.Eight, entities.Eight, entities.Five,
		entities.Two, entities.Three, entities.King, entities.King)

	player, _ := entities.NewPlayer("Tuco", 1000)
	require.NoError(t, player.PlaceBet(100))

	payout, isBlackjack := g.handleRound(player, 100)
	assert.False(t, isBlackjack)

	// two hands of exactly two cards, the second stake debited exactly once
	require.Len(t, g.hands, 2)
	assert.Len(t, g.hands[0].Cards, 2)
	assert.Len(t, g.hands[1].Cards, 2)
	assert.Equal(t, 800, player.Balance)

	// dealer busted on 5+K+K, both hands pay double
	assert.Equal(t, 400, payout)
}

func TestSplitRoundRecordsTotalStake(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionSplit, actionStand, actionStand}

	g, recorder := newTestGame(script)
	// player 8,8; dealer 5; split draws 2 and 3; dealer then draws K,K and busts
	stackDeck(g, entities.Eight, entities.Eight, entities.Five,
		entities.Two, entities.Three, entities.King, entities.King)

	player, _ := entities.NewPlayer("Tuco", 1000)
	require.NoError(t, player.PlaceBet(100))
	g.roundStake = player.CurrentBet

	payout, isBlackjack := g.handleRound(player, 100)
	g.settleRound(player, 100, payout, isBlackjack)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]

	// both split stakes count towards the recorded bet
	assert.Equal(t, 200, record.Bet)
	assert.Equal(t, 400, record.Payout)
	assert.Equal(t, entities.OutcomeWin, record.Outcome)

	// the recorded net matches the ledger movement exactly
	assert.Equal(t, 1000+record.Net(), player.Balance)
	assert.Equal(t, 1200, player.Balance)
}

func TestDoubleDownRoundRecordsTotalStake(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionDoubleDown}

	g, recorder := newTestGame(script)
	// player 5,6 doubles into a 9 for 20; dealer draws 5,K,K and busts
	stackDeck(g, entities.Five, entities.Six, entities.Five,
		entities.Nine, entities.King, entities.King)

	player, _ := entities.NewPlayer("Tuco", 1000)
	require.NoError(t, player.PlaceBet(100))
	g.roundStake = player.CurrentBet

	payout, isBlackjack := g.handleRound(player, 100)
	g.settleRound(player, 100, payout, isBlackjack)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]

	assert.Equal(t, 200, record.Bet)
	assert.Equal(t, 400, record.Payout)
	assert.Equal(t, entities.OutcomeWin, record.Outcome)
	assert.Equal(t, 1000+record.Net(), player.Balance)
}

func TestSurrenderRoundRecordsHalvedStake(t *testing.T) {
	script := ui.NewScript()
	script.Choices = []int{actionSurrender}

	g, recorder := newTestGame(script)
	stackDeck(g, entities.Ten, entities.Six, entities.Five)

	player, _ := entities.NewPlayer("Tuco", 1000)
	require.NoError(t, player.PlaceBet(100))
	g.roundStake = player.CurrentBet

	payout, isBlackjack := g.handleRound(player, 100)
	g.settleRound(player, 100, payout, isBlackjack)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]

	// half the stake came back, so only the forfeited half is recorded
	assert.Equal(t, 50, record.Bet)
	assert.Zero(t, record.Payout)
	assert.Equal(t, entities.OutcomeLose, record.Outcome)
	assert.Equal(t, 1000+record.Net(), player.Balance)
	assert.Equal(t, 950, player.Balance)
}

func TestPlayOneRoundSettlesLedger(t *testing.T) {
	script := ui.NewScript()
	// stand on everything; extras are ignored if the round ends early
	script.Choices = []int{actionStand, actionStand, actionStand}

	g, recorder := newTestGame(script)
	player, err := entities.NewPlayer("Tuco", 1000)
	require.NoError(t, err)

	g.playOneRound(player, 100)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, entities.GameBlackjack, record.Game)
	assert.Equal(t, 100, record.Bet)

	// whatever was dealt, the bet is settled and the balance moved by
	// exactly the recorded net
	assert.False(t, player.HasActiveBet())
	assert.Equal(t, 1000+record.Net(), player.Balance)
	assert.Equal(t, record.Payout, g.lastScore)

	switch record.Outcome {
	case entities.OutcomeWin:
		assert.Greater(t, record.Payout, 100)
	case entities.OutcomePush:
		assert.Equal(t, 100, record.Payout)
	default:
		assert.Zero(t, record.Payout)
	}
}

func TestPlayRoundExitToGameMenu(t *testing.T) {
	script := ui.NewScript()
	// all-in at the bet menu, then leave for the game menu
	script.Choices = []int{0, optionExitToGameMenu}

	g, _ := newTestGame(script)
	player, _ := entities.NewPlayer("Tuco", 1000)

	state := g.PlayRound(player)
	assert.Equal(t, entities.StateGameMenu, state)
	assert.Equal(t, 1000, player.Balance)
}
