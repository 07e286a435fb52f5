package deck

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lox/holdem-brain/internal/randutil"
)

func TestRemaining(t *testing.T) {
	t.Run("full deck when nothing known", func(t *testing.T) {
		remaining, err := Remaining(nil)
		if err != nil {
			t.Fatalf("Remaining() error = %v", err)
		}
		if len(remaining) != 52 {
			t.Errorf("Remaining() returned %d cards, want 52", len(remaining))
		}
	})

	t.Run("excludes known cards", func(t *testing.T) {
		known := MustParseCards("AsKdTh2c")
		remaining, err := Remaining(known)
		if err != nil {
			t.Fatalf("Remaining() error = %v", err)
		}
		if len(remaining) != 48 {
			t.Errorf("Remaining() returned %d cards, want 48", len(remaining))
		}
		for _, card := range remaining {
			for _, k := range known {
				if card == k {
					t.Errorf("Remaining() contains known card %s", card)
				}
			}
		}
	})

	t.Run("duplicate known card", func(t *testing.T) {
		_, err := Remaining(MustParseCards("AsAs"))
		if !errors.Is(err, ErrInvalidState) {
			t.Errorf("Remaining() error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("more than 52 known cards", func(t *testing.T) {
		known := append(All(), Card{Suit: Spades, Rank: Ace})
		_, err := Remaining(known)
		if !errors.Is(err, ErrInvalidState) {
			t.Errorf("Remaining() error = %v, want ErrInvalidState", err)
		}
	})
}

func TestSampleWithoutReplacement(t *testing.T) {
	universe, err := Remaining(MustParseCards("AsAd"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("draws distinct cards from the universe", func(t *testing.T) {
		rng := randutil.New(42)
		inUniverse := make(map[Card]bool, len(universe))
		for _, card := range universe {
			inUniverse[card] = true
		}

		// Stateless across calls: repeat many trials against the same universe.
		for trial := 0; trial < 500; trial++ {
			drawn := SampleWithoutReplacement(universe, 5, rng)
			if len(drawn) != 5 {
				t.Fatalf("drew %d cards, want 5", len(drawn))
			}
			seen := make(map[Card]bool, 5)
			for _, card := range drawn {
				if seen[card] {
					t.Fatalf("trial %d drew duplicate card %s", trial, card)
				}
				if !inUniverse[card] {
					t.Fatalf("trial %d drew %s outside the universe", trial, card)
				}
				seen[card] = true
			}
		}

		if len(universe) != 50 {
			t.Errorf("universe mutated: %d cards", len(universe))
		}
	})

	t.Run("reproducible with a fixed seed", func(t *testing.T) {
		a := SampleWithoutReplacement(universe, 7, randutil.New(7))
		b := SampleWithoutReplacement(universe, 7, randutil.New(7))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("same seed produced different draws: %v vs %v", a, b)
		}
	})

	t.Run("k larger than universe returns everything", func(t *testing.T) {
		small := universe[:3]
		drawn := SampleWithoutReplacement(small, 10, randutil.New(1))
		if len(drawn) != 3 {
			t.Errorf("drew %d cards, want 3", len(drawn))
		}
	})

	t.Run("k zero returns nothing", func(t *testing.T) {
		if drawn := SampleWithoutReplacement(universe, 0, randutil.New(1)); drawn != nil {
			t.Errorf("drew %v, want nil", drawn)
		}
	})
}
