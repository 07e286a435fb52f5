package bot

import (
	"fmt"
	"math"

	"github.com/lox/holdem-brain/internal/deck"
)

// foldCurveBase keeps some fold probability even against the tightest range;
// a range of pure premiums still folds occasionally to large raises.
const foldCurveBase = 0.25

// EstimateFoldProbability estimates the probability the opponent folds to a
// raise. The estimate is non-decreasing in raiseTo/pot (bigger relative
// raises fold out more hands) and non-decreasing in villainTopFrac (a wider
// inferred range folds more often than a tight one).
func EstimateFoldProbability(villainTopFrac, raiseTo, pot float64) (float64, error) {
	if villainTopFrac <= 0 || villainTopFrac > 1 || math.IsNaN(villainTopFrac) {
		return 0, fmt.Errorf("villain top fraction %v outside (0,1]: %w", villainTopFrac, deck.ErrInvalidState)
	}
	if raiseTo <= 0 {
		return 0, fmt.Errorf("raise amount %v must be positive: %w", raiseTo, deck.ErrInvalidState)
	}
	if pot <= 0 {
		return 0, fmt.Errorf("pot %v must be positive: %w", pot, deck.ErrInvalidState)
	}

	// Bounded sizing curve: r/(r+1) rises from 0 toward 1 as the raise grows
	// relative to the pot.
	ratio := raiseTo / pot
	sizing := ratio / (ratio + 1.0)

	p := sizing * (foldCurveBase + (1.0-foldCurveBase)*villainTopFrac)

	// Saturate at the bounds rather than exceeding them.
	return math.Min(1.0, math.Max(0.0, p)), nil
}
