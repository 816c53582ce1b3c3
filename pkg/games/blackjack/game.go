// Package blackjack implements the European single-hole-card blackjack
// engine: one dealer card until the player finishes, hand splitting with
// per-hand bets, double down, surrender, and distance-to-21 settlement.
package blackjack

import (
	"fmt"

	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/games"
	"github.com/marczelloo/kasyno/pkg/rng"
	"github.com/marczelloo/kasyno/pkg/ui"
)

const (
	minBet          = 1
	dealerStandsOn  = 17
	blackjackPayout = 2.5
)

var menuOptions = []string{
	"Play Round",
	"Change Bet",
	"View payouts",
	"Rules",
	"Exit to Game Menu",
	"Exit",
}

const (
	optionPlayRound = iota
	optionChangeBet
	optionViewPayouts
	optionRules
	optionExitToGameMenu
	optionExit
)

var actionOptions = []string{
	"Hit",
	"Stand",
	"Double Down",
	"Split",
	"Surrender",
}

const (
	actionHit = iota
	actionStand
	actionDoubleDown
	actionSplit
	actionSurrender
)

// Game is the blackjack engine
type Game struct {
	rng      *rng.Rng
	ui       ui.UI
	recorder games.Recorder
	saver    games.ProgressSaver

	deck   *entities.Deck
	hands  []*Hand
	dealer *Hand

	// total amount staked in the current round: the selected bet plus
	// split and double-down stakes, minus surrender refunds
	roundStake int

	lastScore    int
	errorMessage string
}

// New creates a blackjack engine with its collaborators
func New(r *rng.Rng, u ui.UI, recorder games.Recorder, saver games.ProgressSaver) *Game {
	return &Game{
		rng:      r,
		ui:       u,
		recorder: recorder,
		saver:    saver,
		deck:     entities.NewDeck(),
	}
}

// Name returns the game's display name
func (g *Game) Name() string {
	return "Blackjack"
}

// PlayRound runs a blackjack play session against the player's ledger
func (g *Game) PlayRound(player *entities.Player) entities.GameState {
	g.lastScore = -1
	g.errorMessage = ""

	bet := games.AskForBet(g.ui, player.Balance, minBet)
	if bet <= 0 {
		g.ui.Print("Cannot continue playing. Returning to Game Menu.")
		g.ui.WaitForEnter("")
		return entities.StateGameMenu
	}

	for {
		option := g.renderInterface(player, bet)

		switch option {
		case optionPlayRound:
			g.playOneRound(player, bet)

		case optionChangeBet:
			newBet := games.AskForBet(g.ui, player.Balance, minBet)
			if newBet <= 0 {
				g.errorMessage = "Invalid bet amount. Keeping previous bet."
			} else {
				bet = newBet
				g.lastScore = -1
			}

		case optionViewPayouts:
			g.displayPayouts()

		case optionRules:
			g.displayRules()

		case optionExitToGameMenu:
			return entities.StateGameMenu

		case optionExit:
			if games.ConfirmExitAndSave(g.ui, g.saver, player) {
				return entities.StateExit
			}
			g.errorMessage = "Exit cancelled."

		default:
			return entities.StateGameMenu
		}
	}
}

// playOneRound stakes the bet, runs a full round and settles the ledger
// against the originally selected bet.
func (g *Game) playOneRound(player *entities.Player, bet int) {
	if !player.CanAffordBet(bet) && !player.HasActiveBet() {
		g.errorMessage = "Insufficient balance to place the bet"
		return
	}

	if !player.HasActiveBet() {
		if err := player.PlaceBet(bet); err != nil {
			g.errorMessage = fmt.Sprintf("Bet error: %v", err)
			return
		}
	}
	g.roundStake = player.CurrentBet

	g.resetDeck()
	payout, isBlackjack := g.handleRound(player, bet)
	g.settleRound(player, bet, payout, isBlackjack)
}

// settleRound applies the aggregate payout to the ledger and records the
// round against the total amount actually staked across all hands, so the
// recorded net matches the balance movement even after splits and
// double-downs.
func (g *Game) settleRound(player *entities.Player, bet, payout int, isBlackjack bool) {
	g.lastScore = payout

	var err error
	var outcome entities.RoundOutcome

	switch {
	case payout == 0:
		err = player.LoseBet()
		outcome = entities.OutcomeLose
	case isBlackjack:
		err = player.WinBet(blackjackPayout)
		outcome = entities.OutcomeWin
	default:
		// hand bets are always whole multiples of the selected bet, so
		// the aggregate multiplier stays exact
		err = player.WinBet(float64(payout / bet))
		switch {
		case payout > g.roundStake:
			outcome = entities.OutcomeWin
		case payout == g.roundStake:
			outcome = entities.OutcomePush
		default:
			outcome = entities.OutcomeLose
		}
	}

	if err != nil {
		g.errorMessage = fmt.Sprintf("Bet error: %v", err)
		return
	}

	g.recorder.RecordRound(&entities.RoundRecord{
		PlayerName: player.Name,
		Game:       entities.GameBlackjack,
		Bet:        g.roundStake,
		Payout:     payout,
		Outcome:    outcome,
	})
}

// handleRound deals and plays a full round, returning the total payout
// across all hands and whether it settled as an immediate blackjack.
func (g *Game) handleRound(player *entities.Player, bet int) (int, bool) {
	first := NewHand(bet)
	first.AddCard(g.drawCard())
	first.AddCard(g.drawCard())
	g.hands = []*Hand{first}

	g.dealer = NewHand(0)
	g.dealer.AddCard(g.drawCard())

	g.renderRound(player, true, "Starting round.")

	// natural 21 settles immediately, before any action is offered
	if first.Sum() == 21 {
		g.renderRound(player, false, "Blackjack! You win 2.5 times your bet.")
		return int(float64(bet) * blackjackPayout), true
	}

	busted := make([]bool, 0, 2)
	for i := 0; i < len(g.hands); i++ {
		busted = append(busted, g.playerTurn(player, i))
	}

	if allTrue(busted) {
		g.renderRound(player, false, "All your hands busted! You lose your bet(s).")
		return 0, false
	}

	allDead := true
	for i, hand := range g.hands {
		if !busted[i] && !hand.Surrendered {
			allDead = false
			break
		}
	}
	if allDead {
		g.renderRound(player, false, "All your hands are either busted or surrendered.")
		return 0, false
	}

	g.dealer.AddCard(g.drawCard())
	g.renderRound(player, false, "Dealer draws a second card.")

	if g.dealer.Sum() == 21 {
		g.renderRound(player, false, "Dealer has Blackjack! You lose your bet.")
		return 0, false
	}

	for g.dealer.Sum() < dealerStandsOn {
		g.dealer.AddCard(g.drawCard())
		g.renderRound(player, false, "Dealer draws a card.")
	}

	dealerSum := g.dealer.Sum()
	g.renderRound(player, false, fmt.Sprintf("Dealer stands on %d.", dealerSum))

	if dealerSum > 21 {
		g.renderRound(player, false, "Dealer busted! All non-busted hands win even money.")
		totalWin := 0
		for i, hand := range g.hands {
			if !busted[i] && !hand.Surrendered {
				totalWin += hand.Bet * 2
			}
		}
		return totalWin, false
	}

	totalPayout := 0
	for i, hand := range g.hands {
		if busted[i] || hand.Surrendered {
			continue
		}

		playerRange := abs(21 - hand.Sum())
		dealerRange := abs(21 - dealerSum)

		var info string
		switch {
		case playerRange < dealerRange:
			info = "One of your hands wins!"
			totalPayout += hand.Bet * 2
		case playerRange == dealerRange:
			info = "One of your hands pushes."
			totalPayout += hand.Bet
		default:
			info = "One of your hands loses."
		}

		g.renderRound(player, false, info)
	}

	return totalPayout, false
}

// playerTurn loops one hand's actions until it stands, busts or
// surrenders. Returns true when the hand is dead (bust or surrender).
func (g *Game) playerTurn(player *entities.Player, handIndex int) bool {
	hand := g.hands[handIndex]
	status := fmt.Sprintf("Playing hand %d.", handIndex+1)

	for {
		g.renderRound(player, true, status)
		status = ""

		action := g.ui.AskChoice("SELECT YOUR ACTION", actionOptions)

		switch action {
		case actionHit:
			card := g.drawCard()
			hand.AddCard(card)

			if hand.IsBust() {
				g.renderRound(player, false, fmt.Sprintf("You drew %s and busted!", card.Rank))
				return true
			}
			status = fmt.Sprintf("You drew %s.", card.Rank)

		case actionStand:
			g.renderRound(player, false, "You chose to stand.")
			return false

		case actionDoubleDown:
			if !hand.IsInitial() {
				status = "You can only double-down on your initial two cards."
				continue
			}
			if hand.Bet > player.Balance {
				status = "Insufficient balance to double-down!"
				continue
			}

			if err := player.UpdateBalance(-hand.Bet); err != nil {
				status = fmt.Sprintf("Bet error: %v", err)
				continue
			}
			g.roundStake += hand.Bet
			hand.Bet *= 2

			card := g.drawCard()
			hand.AddCard(card)

			if hand.IsBust() {
				g.renderRound(player, false, fmt.Sprintf("You doubled-down, drew %s and busted!", card.Rank))
				return true
			}
			g.renderRound(player, false, fmt.Sprintf("You doubled-down and drew %s.", card.Rank))
			return false

		case actionSplit:
			if !hand.IsInitial() {
				status = "You can only split your initial two cards."
				continue
			}
			if !hand.IsPair() {
				status = "You can only split a pair."
				continue
			}
			if hand.Bet > player.Balance {
				status = "Insufficient balance to split!"
				continue
			}

			if err := player.UpdateBalance(-hand.Bet); err != nil {
				status = fmt.Sprintf("Bet error: %v", err)
				continue
			}
			g.roundStake += hand.Bet

			moved := hand.Cards[len(hand.Cards)-1]
			hand.Cards = hand.Cards[:len(hand.Cards)-1]

			split := NewHand(hand.Bet)
			split.AddCard(moved)

			hand.AddCard(g.drawCard())
			split.AddCard(g.drawCard())

			g.hands = append(g.hands, split)
			status = "You split your hand."

		case actionSurrender:
			if !hand.IsInitial() {
				status = "You can only surrender on your first two cards."
				continue
			}

			refund := hand.Bet / 2
			if err := player.UpdateBalance(refund); err != nil {
				status = fmt.Sprintf("Refund error: %v", err)
				continue
			}
			g.roundStake -= refund

			hand.Surrendered = true
			hand.Bet = 0

			g.renderRound(player, false, "You surrendered this hand and got half your bet back.")
			return true

		default:
			status = "Invalid choice, please try again."
		}
	}
}

// resetDeck starts a fresh shuffled shoe for the next round
func (g *Game) resetDeck() {
	g.deck = entities.NewDeck()
	g.deck.Shuffle(g.rng)
}

// drawCard draws from the round's deck, reinitializing and reshuffling
// when the deck runs out mid-draw.
func (g *Game) drawCard() *entities.Card {
	card := g.deck.Draw()
	if card == nil {
		g.deck = entities.NewDeck()
		g.deck.Shuffle(g.rng)
		card = g.deck.Draw()
	}
	return card
}

// renderInterface draws the session info box and asks for a menu action
func (g *Game) renderInterface(player *entities.Player, bet int) int {
	g.ui.Clear()

	info := []string{
		fmt.Sprintf("%s's Balance: %d", player.Name, player.Balance),
		fmt.Sprintf("Current bet: %d", bet),
	}

	if g.lastScore >= 0 {
		if g.lastScore > 0 {
			info = append(info, fmt.Sprintf("You won %d!", g.lastScore))
		} else {
			info = append(info, "No win this time. Better luck next round!")
		}
	}

	if g.errorMessage != "" {
		info = append(info, "", g.errorMessage)
		g.errorMessage = ""
	}

	g.ui.DrawBox("====BLACKJACK====", info)

	return g.ui.AskChoice("What would you like to do?", menuOptions)
}

// renderRound draws the table state: dealer's hand, every player hand
// with its sum, and the round info line.
func (g *Game) renderRound(player *entities.Player, playerTurn bool, info string) {
	g.ui.Clear()

	turn := "Dealer's Turn"
	if playerTurn {
		turn = "Your Turn"
	}

	lines := []string{fmt.Sprintf("==== %s ====", turn)}

	lines = append(lines, "Dealer's Hand: "+handString(g.dealer), "")

	for i, hand := range g.hands {
		label := fmt.Sprintf("Hand %d: %s", i+1, handString(hand))
		if hand.Surrendered {
			label += " (surrendered)"
		}
		lines = append(lines, label)
	}
	lines = append(lines, fmt.Sprintf("%s's Hand", player.Name))

	g.ui.DrawBox("====BLACKJACK ROUND====", lines)

	g.ui.DrawBox("", []string{
		fmt.Sprintf("%s's Balance: %d", player.Name, player.Balance),
		fmt.Sprintf("Current bet: %d", player.CurrentBet),
		"",
		info,
	})

	g.ui.WaitForEnter("")
}

func handString(hand *Hand) string {
	out := ""
	for _, card := range hand.Cards {
		out += string(card.Rank) + " "
	}
	return fmt.Sprintf("%s (%d)", out, hand.Sum())
}

// displayPayouts shows the blackjack payout table
func (g *Game) displayPayouts() {
	g.ui.Clear()

	g.ui.DrawBox("", []string{
		"=== PAYOUTS TABLE ===",
		"Blackjack (first two cards total 21): 2.5x your bet",
		"Win: 2x your bet",
		"Push: Bet returned",
	})
	g.ui.WaitForEnter("Press ENTER to return")
}

// displayRules shows the house rules
func (g *Game) displayRules() {
	g.ui.Clear()

	g.ui.DrawBox("BLACKJACK RULES", []string{
		"1. Goal:",
		"   Get as close to 21 as possible without exceeding it.",
		"",
		"2. Card Values:",
		"   - Number cards = face value",
		"   - J, Q, K = 10",
		"   - Ace = 11, always",
		"",
		"3. Initial Deal:",
		"   - You receive 2 cards.",
		"   - The dealer receives 1 card (European Blackjack).",
		"",
		"4. Player Actions:",
		"   - HIT: Draw another card.",
		"   - STAND: End your turn.",
		"   - DOUBLE DOWN: Available only on your first two cards.",
		"       Doubles your bet, draws exactly one card, then you must stand.",
		"   - SPLIT: Available when your first two cards have the same value.",
		"       Splits them into two separate hands with separate bets.",
		"   - SURRENDER: Only on your first action.",
		"       You forfeit the hand and lose only half your bet.",
		"",
		"5. Split Hands:",
		"   - Each split hand is played independently.",
		"   - Each hand has its own bet.",
		"",
		"6. Dealer Rules:",
		"   - After all your hands are played, the dealer draws a second card.",
		"   - The dealer must hit until reaching at least 17.",
		"",
		"7. Winning:",
		"   - If your hand exceeds 21, you bust and lose that hand.",
		"   - If the dealer busts, all active player hands win.",
		"   - Otherwise, the closest value to 21 wins.",
		"   - Equal totals result in a 'push' (your bet is returned).",
		"",
		"8. Blackjack:",
		"   - If your first two cards total 21, you win 2.5x your bet",
		"     before the dealer draws a second card.",
	})
	g.ui.WaitForEnter("Press ENTER to return")
}

func allTrue(values []bool) bool {
	for _, v := range values {
		if !v {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
