package entities

import "time"

// RoundOutcome classifies a settled round
type RoundOutcome string

const (
	OutcomeWin  RoundOutcome = "WIN"
	OutcomeLose RoundOutcome = "LOSE"
	OutcomePush RoundOutcome = "PUSH"
)

// RoundRecord is the persisted history of a single settled game round
type RoundRecord struct {
	ID         string
	PlayerName string
	Game       GameType
	Bet        int
	Payout     int
	Outcome    RoundOutcome
	PlayedAt   time.Time
}

// Net returns the round's net effect on the player's balance
func (r *RoundRecord) Net() int {
	return r.Payout - r.Bet
}
