package games

import (
	"context"
	"fmt"

	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/ui"
)

// maxBetAttempts bounds the re-prompt loop when a chosen bet is not
// affordable, instead of recursing forever on persistently bad input.
const maxBetAttempts = 3

// BetSelectTitle is the shared bet menu title
const BetSelectTitle = "SELECT YOUR BET"

var betOptions = []string{
	"All-in",
	"50% of balance",
	"25% of balance",
	"Custom amount",
}

// AskForBet runs the shared bet menu (all-in, half, quarter, custom)
// against the player's balance. Returns the chosen amount, or -1 when the
// balance is below minBet or no valid bet was chosen.
func AskForBet(u ui.UI, balance, minBet int) int {
	u.Clear()
	u.Print(fmt.Sprintf("Your current balance is: %d", balance))

	if balance < minBet {
		u.Print(fmt.Sprintf("Insufficient balance! Minimum bet is %d$.", minBet))
		u.Print("Returning to Game Menu...")
		u.WaitForEnter("")
		return -1
	}

	for attempt := 0; attempt < maxBetAttempts; attempt++ {
		choice := u.AskChoice(BetSelectTitle, betOptions)

		var bet int
		switch choice {
		case 0:
			bet = balance
		case 1:
			bet = balance / 2
		case 2:
			bet = balance / 4
		case 3:
			bet = u.AskInput(fmt.Sprintf("Enter your bet amount (%d - %d): ", minBet, balance), minBet, balance)
		default:
			return -1
		}

		if bet >= minBet && bet <= balance {
			return bet
		}

		u.Print("Invalid bet amount, please try again.")
	}

	return -1
}

// ConfirmExitAndSave prompts for exit confirmation and, when confirmed,
// saves the player's progress to the leaderboard. Returns true when the
// player confirmed the exit.
func ConfirmExitAndSave(u ui.UI, saver ProgressSaver, player *entities.Player) bool {
	// Closed input confirms the exit so a dead stdin cannot trap the
	// state machine in the confirmation prompt.
	response := u.AskChoice("Are you sure you want to exit the casino?", []string{"Yes", "No"})

	if response == 1 {
		u.Print("Exit cancelled.")
		return false
	}

	u.Print("Exiting...")

	if err := saver.SaveProgress(context.Background(), player); err != nil {
		u.Print("Warning: Failed to save your progress!")
	} else {
		u.Print("Your progress has been saved to the leaderboard!")
	}

	return true
}
