package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-brain/internal/deck"
)

func TestEstimateFoldProbabilityBounds(t *testing.T) {
	fracs := []float64{0.01, 0.1, 0.5, 1.0}
	raises := []float64{1, 25, 100, 400, 10000}

	for _, frac := range fracs {
		for _, raise := range raises {
			p, err := EstimateFoldProbability(frac, raise, 100)
			require.NoError(t, err, "frac=%f raise=%f", frac, raise)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestEstimateFoldProbabilityMonotonicInSizing(t *testing.T) {
	// Larger raises relative to the pot fold out more hands.
	for _, frac := range []float64{0.1, 0.5, 1.0} {
		prev := -1.0
		for _, raise := range []float64{10, 50, 100, 200, 500, 2000} {
			p, err := EstimateFoldProbability(frac, raise, 100)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, prev, "frac=%f raise=%f", frac, raise)
			prev = p
		}
	}
}

func TestEstimateFoldProbabilityMonotonicInTightness(t *testing.T) {
	// A tighter (smaller) inferred range folds less often at fixed sizing.
	for _, raise := range []float64{50, 100, 300} {
		prev := -1.0
		for _, frac := range []float64{0.05, 0.2, 0.5, 0.8, 1.0} {
			p, err := EstimateFoldProbability(frac, raise, 100)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, prev, "raise=%f frac=%f", raise, frac)
			prev = p
		}
	}
}

func TestEstimateFoldProbabilityInvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		frac  float64
		raise float64
		pot   float64
	}{
		{"zero fraction", 0, 100, 100},
		{"fraction above one", 1.5, 100, 100},
		{"zero raise", 0.5, 0, 100},
		{"negative raise", 0.5, -10, 100},
		{"zero pot", 0.5, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateFoldProbability(tt.frac, tt.raise, tt.pot)
			assert.ErrorIs(t, err, deck.ErrInvalidState)
		})
	}
}
