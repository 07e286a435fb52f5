package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInvalidState indicates a malformed card set: duplicate cards among the
// known cards, or more cards than a single deck holds.
var ErrInvalidState = errors.New("invalid card state")

// All returns the full 52-card deck in a fixed order.
func All() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Remaining returns the 52-card deck minus the known dealt cards. The result
// is a fresh slice on every call; callers may consume it freely without
// affecting other callers.
func Remaining(known []Card) ([]Card, error) {
	if len(known) > 52 {
		return nil, fmt.Errorf("%d known cards exceeds deck size: %w", len(known), ErrInvalidState)
	}

	seen := make(map[Card]bool, len(known))
	for _, card := range known {
		if seen[card] {
			return nil, fmt.Errorf("duplicate card %s: %w", card, ErrInvalidState)
		}
		seen[card] = true
	}

	remaining := make([]Card, 0, 52-len(known))
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Suit: suit, Rank: rank}
			if !seen[card] {
				remaining = append(remaining, card)
			}
		}
	}

	return remaining, nil
}

// SampleWithoutReplacement draws k distinct cards uniformly at random from
// universe. The universe slice is not modified. If k exceeds the universe
// size the whole universe is returned in random order.
func SampleWithoutReplacement(universe []Card, k int, rng *rand.Rand) []Card {
	if k > len(universe) {
		k = len(universe)
	}
	if k <= 0 {
		return nil
	}

	// Partial Fisher-Yates over a copy: the first k positions end up as a
	// uniform k-subset in random order.
	pool := make([]Card, len(universe))
	copy(pool, universe)

	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
