// Package roulette implements the single-bet European roulette engine:
// a 37-pocket wheel in physical order, eight bet categories with fixed
// multipliers and a cosmetic ease-in spin animation.
package roulette

import (
	"fmt"
	"time"

	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/games"
	"github.com/marczelloo/kasyno/pkg/rng"
	"github.com/marczelloo/kasyno/pkg/ui"
)

const minBet = 1

// spin animation tuning: extra full revolutions and the per-step delay
// ramp (quadratic ease-in from first to last step)
const (
	minRevolutions = 2
	maxRevolutions = 4
	startDelay     = 15 * time.Millisecond
	endDelay       = 180 * time.Millisecond
)

var menuOptions = []string{
	"Spin the wheel",
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

// Game is the roulette engine
type Game struct {
	rng      *rng.Rng
	ui       ui.UI
	recorder games.Recorder
	saver    games.ProgressSaver

	wheel        []entities.RouletteTile
	spunTile     int // wheel index the ball currently rests on
	lastScore    int
	errorMessage string
}

// New creates a roulette engine with its collaborators
func New(r *rng.Rng, u ui.UI, recorder games.Recorder, saver games.ProgressSaver) *Game {
	return &Game{
		rng:      r,
		ui:       u,
		recorder: recorder,
		saver:    saver,
		wheel:    NewWheel(),
	}
}

// Name returns the game's display name
func (g *Game) Name() string {
	return "Roulette"
}

// PlayRound runs a roulette play session against the player's ledger
func (g *Game) PlayRound(player *entities.Player) entities.GameState {
	g.lastScore = -1
	g.errorMessage = ""

	bet, ok := g.askForBet(player)
	if !ok {
		g.ui.Print("Cannot continue playing. Returning to Game Menu.")
		g.ui.WaitForEnter("")
		return entities.StateGameMenu
	}

	for {
		option := g.renderInterface(player, bet)

		switch option {
		case optionSpin:
			g.spin(player, bet)

		case optionChangeBet:
			// spin stakes and settles in one call, so no bet is pending here
			newBet, ok := g.askForBet(player)
			if !ok {
				g.errorMessage = "Bet selection cancelled!"
			} else {
				bet = newBet
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

// spin stakes the bet, lands a uniform pocket, animates and settles
func (g *Game) spin(player *entities.Player, bet Bet) {
	if !player.HasActiveBet() {
		if err := player.PlaceBet(bet.Amount); err != nil {
			g.errorMessage = fmt.Sprintf("Bet error: %v", err)
			g.lastScore = -1
			return
		}
	}

	result := g.rng.Intn(len(g.wheel))
	g.animateSpin(player, result)
	g.spunTile = result

	landed := g.wheel[result]

	var err error
	var outcome entities.RoundOutcome
	var payout int

	if bet.Wins(landed) {
		multiplier := bet.Type.Multiplier()
		err = player.WinBet(multiplier)
		payout = int(float64(bet.Amount) * multiplier)
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
		Game:       entities.GameRoulette,
		Bet:        bet.Amount,
		Payout:     payout,
		Outcome:    outcome,
	})
}

// askForBet collects the single bet for the next spins: one category,
// the pocket number for a number bet, and the stake.
func (g *Game) askForBet(player *entities.Player) (Bet, bool) {
	g.ui.Clear()

	if player.Balance < minBet {
		g.ui.Print(fmt.Sprintf("Insufficient balance! Minimum bet is %d$.", minBet))
		g.ui.Print("Returning to Game Menu...")
		g.ui.WaitForEnter("")
		return Bet{}, false
	}

	choice := g.ui.AskChoice("SELECT YOUR ROULETTE BET", BetTypeOptions)
	if choice < 0 || choice >= len(BetTypeOptions) {
		return Bet{}, false
	}

	bet := Bet{Type: BetType(choice)}

	if bet.Type == BetNumber {
		number := g.ui.AskInput("Pick a number (0 - 36): ", 0, 36)
		if number < 0 {
			return Bet{}, false
		}
		bet.Number = number
	}

	amount := games.AskForBet(g.ui, player.Balance, minBet)
	if amount <= 0 {
		return Bet{}, false
	}
	bet.Amount = amount

	return bet, true
}

// renderInterface draws the wheel and session info, then asks for an action
func (g *Game) renderInterface(player *entities.Player, bet Bet) int {
	g.ui.Clear()
	g.ui.RenderWheel(g.wheel, g.spunTile)

	info := []string{
		fmt.Sprintf("%s's Balance: %d", player.Name, player.Balance),
		fmt.Sprintf("Current bet: %d - %s", bet.Amount, bet.Label()),
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

// displayPayouts shows the fixed multiplier per bet category
func (g *Game) displayPayouts() {
	g.ui.Clear()

	lines := []string{""}
	for i, option := range BetTypeOptions {
		lines = append(lines, fmt.Sprintf("%-24s ->  x%.0f", option, BetType(i).Multiplier()))
	}

	g.ui.DrawBox("PAYOUTS TABLE", lines)
	g.ui.WaitForEnter("Press ENTER to return")
}

// animateSpin walks the ball from the current pocket through a few full
// revolutions to the result, slowing quadratically. Purely cosmetic.
func (g *Game) animateSpin(player *entities.Player, result int) {
	size := len(g.wheel)
	delta := ((result - g.spunTile) % size + size) % size
	steps := g.rng.IntRange(minRevolutions, maxRevolutions)*size + delta
	if steps == 0 {
		steps = size
	}

	for step := 1; step <= steps; step++ {
		index := (g.spunTile + step) % size

		g.ui.Clear()
		g.ui.RenderWheel(g.wheel, index)
		g.ui.DrawBox("", []string{
			fmt.Sprintf("%s's Balance: %d", player.Name, player.Balance),
			fmt.Sprintf("Current bet: %d", player.CurrentBet),
			"SPINNING...",
		})

		progress := float64(step) / float64(steps)
		delay := startDelay + time.Duration(progress*progress*float64(endDelay-startDelay))
		g.ui.Pause(delay)
	}
}
