package entities

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrEmptyName         = errors.New("player name cannot be empty")
	ErrNegativeBalance   = errors.New("balance cannot be negative")
	ErrInvalidBetAmount  = errors.New("bet amount must be positive")
	ErrBetAlreadyActive  = errors.New("player already has an active bet")
	ErrInsufficientFunds = errors.New("bet amount exceeds balance")
	ErrNoActiveBet       = errors.New("no active bet")
	ErrInvalidMultiplier = errors.New("multiplier must be positive")
)

// Player is the ledger for a single casino session: balance, the one
// active bet, and cumulative net winnings. Every mutation either fully
// applies or returns an error with the ledger unchanged.
type Player struct {
	Name       string
	Balance    int
	CurrentBet int
	Winnings   int
}

// NewPlayer creates a player with a starting balance. The name is
// trimmed and must be non-empty; the balance must be non-negative.
func NewPlayer(name string, balance int) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if balance < 0 {
		return nil, ErrNegativeBalance
	}

	return &Player{
		Name:    name,
		Balance: balance,
	}, nil
}

// HasActiveBet reports whether a bet is currently staked
func (p *Player) HasActiveBet() bool {
	return p.CurrentBet > 0
}

// CanAffordBet reports whether the balance covers the amount
func (p *Player) CanAffordBet(amount int) bool {
	return amount >= 0 && amount <= p.Balance
}

// PlaceBet debits the balance and stakes the amount as the active bet
func (p *Player) PlaceBet(amount int) error {
	if amount <= 0 {
		return ErrInvalidBetAmount
	}
	if p.HasActiveBet() {
		return ErrBetAlreadyActive
	}
	if amount > p.Balance {
		return ErrInsufficientFunds
	}

	p.Balance -= amount
	p.CurrentBet = amount
	return nil
}

// WinBet settles the active bet as a win, crediting floor(bet * multiplier)
// to the balance and the net gain to winnings.
func (p *Player) WinBet(multiplier float64) error {
	if !p.HasActiveBet() {
		return ErrNoActiveBet
	}
	if multiplier <= 0 {
		return ErrInvalidMultiplier
	}

	payout := int(math.Floor(float64(p.CurrentBet) * multiplier))
	p.Balance += payout
	p.Winnings += payout - p.CurrentBet
	p.CurrentBet = 0
	return nil
}

// LoseBet settles the active bet as a loss. The stake was already
// debited at PlaceBet time, so only winnings move.
func (p *Player) LoseBet() error {
	if !p.HasActiveBet() {
		return ErrNoActiveBet
	}

	p.Winnings -= p.CurrentBet
	p.CurrentBet = 0
	return nil
}

// CancelBet refunds the active bet without settling it
func (p *Player) CancelBet() error {
	if !p.HasActiveBet() {
		return ErrNoActiveBet
	}

	p.Balance += p.CurrentBet
	p.CurrentBet = 0
	return nil
}

// UpdateBalance applies a signed delta, rejecting any change that would
// take the balance negative.
func (p *Player) UpdateBalance(delta int) error {
	if p.Balance+delta < 0 {
		return ErrNegativeBalance
	}

	p.Balance += delta
	return nil
}
