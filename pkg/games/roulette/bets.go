package roulette

import (
	"fmt"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// BetType is one roulette bet category. A round carries exactly one bet.
type BetType int

const (
	BetRed BetType = iota
	BetBlack
	BetGreen
	BetNumber
	BetOdd
	BetEven
	BetLow
	BetHigh
)

// BetTypeOptions are the menu labels, indexed by BetType
var BetTypeOptions = []string{
	"Red",
	"Black",
	"Green (0)",
	"Specific Number (0-36)",
	"Odd",
	"Even",
	"Low (1-18)",
	"High (19-36)",
}

// String returns the bet category's menu label
func (b BetType) String() string {
	if int(b) < 0 || int(b) >= len(BetTypeOptions) {
		return "Unknown"
	}
	return BetTypeOptions[b]
}

// Multiplier returns the fixed payout multiplier for the category
func (b BetType) Multiplier() float64 {
	switch b {
	case BetGreen, BetNumber:
		return 35
	default:
		return 2
	}
}

// Bet is the player's single bet for a spin
type Bet struct {
	Type   BetType
	Number int // only used for BetNumber
	Amount int
}

// Wins reports whether the landed tile satisfies the bet's predicate.
// Zero is green only: it never counts as odd, even, low or high.
func (b Bet) Wins(tile entities.RouletteTile) bool {
	switch b.Type {
	case BetRed:
		return tile.Color == entities.TileRed
	case BetBlack:
		return tile.Color == entities.TileBlack
	case BetGreen:
		return tile.Number == 0
	case BetNumber:
		return tile.Number == b.Number
	case BetOdd:
		return tile.Number != 0 && tile.Number%2 == 1
	case BetEven:
		return tile.Number != 0 && tile.Number%2 == 0
	case BetLow:
		return tile.Number >= 1 && tile.Number <= 18
	case BetHigh:
		return tile.Number >= 19 && tile.Number <= 36
	default:
		return false
	}
}

// Label describes the bet for the session info box
func (b Bet) Label() string {
	if b.Type == BetNumber {
		return fmt.Sprintf("Number %d", b.Number)
	}
	return b.Type.String()
}
