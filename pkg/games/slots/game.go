// Package slots implements the three-reel slot machine engine: fixed bet
// tiers, weighted symbol sampling and the triplet/pair payout tables.
package slots

import (
	"fmt"
	"time"

	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/games"
	"github.com/marczelloo/kasyno/pkg/rng"
	"github.com/marczelloo/kasyno/pkg/ui"
)

const minBet = 10

// Symbols are the reel faces, most common first
var Symbols = []string{"🍒", "🍋", "💎", "🌟", "🍀", "💰"}

// symbolThresholds are cumulative percentage chances per symbol index
var symbolThresholds = []int{40, 70, 85, 95, 99, 100}

// TripletPayouts is the multiplier for three identical symbols, by symbol
var TripletPayouts = []int{3, 5, 10, 20, 50, 100}

// PairPayouts is the multiplier for exactly two identical symbols, by symbol
var PairPayouts = []int{1, 1, 2, 2, 3, 5}

var betTiers = []int{10, 20, 50, 100, 200, 500}

var betOptions = []string{"10$", "20$", "50$", "100$", "200$", "500$"}

var menuOptions = []string{
	"Spin",
	"Change Bet",
	"View payouts",
	"Exit to Game Menu",
	"Exit",
}

const (
	optionSpin = iota
	optionChangeBet
	optionViewPayouts
	optionExitToGameMenu
	optionExit
)

// Game is the slots engine
type Game struct {
	rng      *rng.Rng
	ui       ui.UI
	recorder games.Recorder
	saver    games.ProgressSaver

	reels        [3]int
	lastScore    int
	errorMessage string
}

// New creates a slots engine with its collaborators
func New(r *rng.Rng, u ui.UI, recorder games.Recorder, saver games.ProgressSaver) *Game {
	return &Game{
		rng:      r,
		ui:       u,
		recorder: recorder,
		saver:    saver,
	}
}

// Name returns the game's display name
func (g *Game) Name() string {
	return "Slots"
}

// PlayRound runs a slots play session against the player's ledger
func (g *Game) PlayRound(player *entities.Player) entities.GameState {
	g.reels = [3]int{-1, -1, -1}
	g.lastScore = -1
	g.errorMessage = ""

	selectedBet := g.askForBet(player)
	if selectedBet <= 0 {
		g.ui.Print("Cannot continue playing. Returning to Game Menu.")
		g.ui.WaitForEnter("")
		return entities.StateGameMenu
	}

	for {
		option := g.renderInterface(player)

		switch option {
		case optionSpin:
			g.spin(player, selectedBet)

		case optionChangeBet:
			// spin stakes and settles in one call, so no bet is pending here
			newBet := g.askForBet(player)
			if newBet <= 0 {
				g.errorMessage = "Bet selection cancelled!"
			} else {
				selectedBet = newBet
				g.lastScore = -1
			}

		case optionViewPayouts:
			g.displayPayouts()

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

// spin places the bet if needed, spins the reels and settles the ledger
func (g *Game) spin(player *entities.Player, selectedBet int) {
	if !player.HasActiveBet() {
		if err := player.PlaceBet(selectedBet); err != nil {
			g.errorMessage = fmt.Sprintf("Bet error: %v", err)
			g.lastScore = -1
			return
		}
	}

	final := g.spinReels()
	g.animateSpin(player, final)

	multiplier := Multiplier(final)

	var err error
	var outcome entities.RoundOutcome
	var payout int

	if multiplier > 0 {
		err = player.WinBet(multiplier)
		payout = int(float64(selectedBet) * multiplier)
		g.lastScore = payout
		outcome = entities.OutcomeWin
	} else {
		err = player.LoseBet()
		g.lastScore = 0
		outcome = entities.OutcomeLose
	}

	if err != nil {
		g.errorMessage = fmt.Sprintf("Bet error: %v", err)
		g.lastScore = -1
		return
	}

	g.recorder.RecordRound(&entities.RoundRecord{
		PlayerName: player.Name,
		Game:       entities.GameSlots,
		Bet:        selectedBet,
		Payout:     payout,
		Outcome:    outcome,
	})
}

// spinReels samples a final symbol for each reel from the weighted
// distribution.
func (g *Game) spinReels() [3]int {
	var reels [3]int
	for i := range reels {
		reels[i] = g.sampleSymbol()
	}
	return reels
}

func (g *Game) sampleSymbol() int {
	chance := g.rng.IntRange(1, 100)
	for symbol, threshold := range symbolThresholds {
		if chance <= threshold {
			return symbol
		}
	}
	return len(symbolThresholds) - 1
}

// Multiplier returns the payout multiplier for the three final symbols:
// the triplet table for three of a kind, the pair table for exactly two,
// zero otherwise.
func Multiplier(reels [3]int) float64 {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		return float64(TripletPayouts[reels[0]])
	}

	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		pairSymbol := reels[0]
		if reels[1] == reels[2] {
			pairSymbol = reels[1]
		}
		return float64(PairPayouts[pairSymbol])
	}

	return 0
}

// askForBet presents the fixed bet tiers, retrying a bounded number of
// times when the tier is not affordable.
func (g *Game) askForBet(player *entities.Player) int {
	g.ui.Clear()
	g.ui.Print(fmt.Sprintf("Your current balance is: %d", player.Balance))

	if player.Balance < minBet {
		g.ui.Print(fmt.Sprintf("Insufficient balance! Minimum bet is %d$.", minBet))
		g.ui.Print("Returning to Game Menu...")
		g.ui.WaitForEnter("")
		return -1
	}

	for attempt := 0; attempt < 3; attempt++ {
		choice := g.ui.AskChoice("SELECT YOUR SLOTS BET", betOptions)
		if choice < 0 || choice >= len(betTiers) {
			return -1
		}

		bet := betTiers[choice]
		if player.CanAffordBet(bet) {
			return bet
		}

		g.ui.Print(fmt.Sprintf("Insufficient balance for this bet (%d$)!", bet))
		g.ui.Print("Please choose a lower amount.")
		g.ui.WaitForEnter("")
	}

	return -1
}

// renderInterface draws the reels and session info, then asks for an action
func (g *Game) renderInterface(player *entities.Player) int {
	g.ui.Clear()

	symbols := []string{"?", "?", "?"}
	if g.reels[0] != -1 {
		symbols = []string{Symbols[g.reels[0]], Symbols[g.reels[1]], Symbols[g.reels[2]]}
	}
	g.ui.RenderSlots(symbols)

	info := []string{fmt.Sprintf("%s's Balance: %d", player.Name, player.Balance)}

	if player.HasActiveBet() {
		info = append(info, fmt.Sprintf("Current bet: %d", player.CurrentBet))
	}

	if g.lastScore >= 0 {
		if g.lastScore > 0 {
			info = append(info, fmt.Sprintf("You won %d!", g.lastScore))
		} else {
			info = append(info, "No win this time. Better luck next spin!")
		}
	}

	if g.errorMessage != "" {
		info = append(info, "", "Error: "+g.errorMessage)
		g.errorMessage = ""
	}

	g.ui.DrawBox("", info)

	return g.ui.AskChoice("What would you like to do?", menuOptions)
}

// displayPayouts shows the triplet and pair multiplier tables
func (g *Game) displayPayouts() {
	g.ui.Clear()

	lines := []string{"", "THREE OF A KIND:"}
	for i, symbol := range Symbols {
		lines = append(lines, fmt.Sprintf("%s %s %s  ->  x%d", symbol, symbol, symbol, TripletPayouts[i]))
	}

	lines = append(lines, "", "TWO OF A KIND:")
	for i, symbol := range Symbols {
		lines = append(lines, fmt.Sprintf("%s %s ?  ->  x%d", symbol, symbol, PairPayouts[i]))
	}

	g.ui.DrawBox("PAYOUTS TABLE", lines)
	g.ui.WaitForEnter("Press ENTER to return")
}

// animateSpin shows each reel spinning for a randomized number of steps
// before locking to its final symbol. Purely cosmetic.
func (g *Game) animateSpin(player *entities.Player, final [3]int) {
	spinCounts := [3]int{
		g.rng.IntRange(10, 20),
		g.rng.IntRange(15, 25),
		g.rng.IntRange(20, 30),
	}

	maxSpins := spinCounts[0]
	for _, count := range spinCounts[1:] {
		if count > maxSpins {
			maxSpins = count
		}
	}

	for spin := 0; spin < maxSpins; spin++ {
		var current [3]string
		for i := 0; i < 3; i++ {
			if spin < spinCounts[i] {
				current[i] = Symbols[g.rng.Intn(len(Symbols))]
			} else {
				current[i] = Symbols[final[i]]
			}
		}

		g.ui.Clear()
		g.ui.RenderSlots(current[:])
		g.ui.DrawBox("", []string{
			fmt.Sprintf("%s's Balance: %d", player.Name, player.Balance),
			fmt.Sprintf("Current bet: %d", player.CurrentBet),
			"SPINNING...",
		})

		g.ui.Pause(time.Duration(50+spin*10) * time.Millisecond)
	}

	g.reels = final
}
