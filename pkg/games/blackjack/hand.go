package blackjack

import "github.com/marczelloo/kasyno/pkg/entities"

// Hand is one player hand in a round: its cards, its own bet and whether
// it was surrendered. A round holds several hands after a split.
type Hand struct {
	Cards       []*entities.Card
	Bet         int
	Surrendered bool
}

// NewHand creates a hand staking the given bet
func NewHand(bet int) *Hand {
	return &Hand{Bet: bet}
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card *entities.Card) {
	h.Cards = append(h.Cards, card)
}

// Sum totals the fixed card values. Aces always count as 11; there is no
// soft-total downgrade when the hand would bust.
func (h *Hand) Sum() int {
	sum := 0
	for _, card := range h.Cards {
		sum += card.Value
	}
	return sum
}

// IsBust reports whether the hand exceeds 21
func (h *Hand) IsBust() bool {
	return h.Sum() > 21
}

// IsInitial reports whether no action has been taken yet (two cards)
func (h *Hand) IsInitial() bool {
	return len(h.Cards) == 2
}

// IsPair reports whether the two initial cards share a blackjack value
func (h *Hand) IsPair() bool {
	return h.IsInitial() && h.Cards[0].Value == h.Cards[1].Value
}
