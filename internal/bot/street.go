package bot

import (
	"fmt"

	"github.com/lox/holdem-brain/internal/deck"
)

// Street is a betting round delimited by community-card reveals.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the street name
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// StreetForBoard returns the street implied by the number of board cards.
func StreetForBoard(boardCards int) (Street, error) {
	switch boardCards {
	case 0:
		return Preflop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	default:
		return 0, fmt.Errorf("no street has %d board cards: %w", boardCards, deck.ErrInvalidState)
	}
}
