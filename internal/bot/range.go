package bot

import (
	"errors"
	"fmt"
	"math"

	"github.com/lox/holdem-brain/internal/deck"
)

// ErrDegenerateRange indicates range inference could not produce a non-empty
// range even at its floor fraction.
var ErrDegenerateRange = errors.New("degenerate opponent range")

// streetTighten scales the retained fraction per street. A consistent bettor
// on later streets is a stronger signal at equal pressure.
var streetTighten = [...]float64{
	Preflop: 1.0,
	Flop:    0.85,
	Turn:    0.75,
	River:   0.65,
}

// Range is the set of canonical starting-hand classes an opponent is modeled
// as holding, taken as a top fraction of the fixed 169-class strength
// ordering.
type Range struct {
	topFraction float64
	classes     []string
	members     map[string]bool
}

// TopFraction returns the retained top fraction of starting-hand classes.
func (r *Range) TopFraction() float64 {
	return r.topFraction
}

// Size returns the number of retained hand classes.
func (r *Range) Size() int {
	return len(r.classes)
}

// Contains reports whether a class key (e.g. "AKs") is in the range.
func (r *Range) Contains(class string) bool {
	return r.members[class]
}

// Classes returns the retained classes, strongest first. Callers must not
// modify the returned slice.
func (r *Range) Classes() []string {
	return r.classes
}

// Combos returns every concrete hole-card combination in the range that can
// be built from the available (unseen) cards. Satisfies evaluator.Range.
func (r *Range) Combos(available []deck.Card) [][2]deck.Card {
	live := make(map[deck.Card]bool, len(available))
	for _, card := range available {
		live[card] = true
	}

	var combos [][2]deck.Card
	for _, class := range r.classes {
		classCombos, err := deck.ClassCombos(class)
		if err != nil {
			continue // ranked classes are always well formed
		}
		for _, combo := range classCombos {
			if live[combo[0]] && live[combo[1]] {
				combos = append(combos, combo)
			}
		}
	}
	return combos
}

// RangeModel maps observed betting pressure and street onto a top fraction
// of the fixed starting-hand ordering.
type RangeModel struct {
	floor float64 // minimum retained fraction, keeps the range non-empty
	slope float64 // how hard pressure shrinks the range
}

// NewRangeModel creates a range model. floor is the minimum retained
// fraction; slope controls how aggressively pressure narrows the range.
func NewRangeModel(floor, slope float64) *RangeModel {
	return &RangeModel{floor: floor, slope: slope}
}

// Infer converts betting pressure (call/(pot+call), in [0,1]) and street into
// an opponent range. The retained fraction is non-increasing in pressure and
// non-increasing as the street advances.
func (m *RangeModel) Infer(pressure float64, street Street) (*Range, error) {
	if pressure < 0 || pressure > 1 || math.IsNaN(pressure) {
		return nil, fmt.Errorf("pressure %v outside [0,1]: %w", pressure, deck.ErrInvalidState)
	}
	if street < Preflop || street > River {
		return nil, fmt.Errorf("unknown street %d: %w", int(street), deck.ErrInvalidState)
	}

	frac := (1.0 - m.slope*pressure) * streetTighten[street]
	if frac < m.floor {
		frac = m.floor
	}

	ordered := deck.ClassesByStrength()
	n := int(math.Ceil(frac * float64(len(ordered))))
	if n > len(ordered) {
		n = len(ordered)
	}
	if n <= 0 {
		return nil, fmt.Errorf("retained fraction %.3f yields no hand classes: %w", frac, ErrDegenerateRange)
	}

	classes := ordered[:n]
	members := make(map[string]bool, n)
	for _, class := range classes {
		members[class] = true
	}

	return &Range{topFraction: frac, classes: classes, members: members}, nil
}

// InferRange infers an opponent range using the default model parameters.
func InferRange(pressure float64, street Street) (*Range, error) {
	cfg := DefaultConfig()
	return NewRangeModel(cfg.FloorFraction, cfg.PressureSlope).Infer(pressure, street)
}
