package evaluator

import (
	"errors"
	"testing"

	"github.com/lox/holdem-brain/internal/deck"
)

func TestBestHandCategories(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		board    string
		category int
	}{
		{"royal flush", "AsKs", "QsJsTs2h3d", HandCategoryStraightFlush},
		{"wheel straight flush", "As2s", "3s4s5sKdQh", HandCategoryStraightFlush},
		{"four of a kind", "AhAd", "AsAcKh2d3c", HandCategoryFourOfAKind},
		{"full house", "KhKd", "KsQhQd2c3s", HandCategoryFullHouse},
		{"full house from two trips", "KhKd", "KsQhQdQc2s", HandCategoryFullHouse},
		{"flush", "Ah9h", "Kh7h2h3c4d", HandCategoryFlush},
		{"straight", "9h8d", "7s6c5dKhQd", HandCategoryStraight},
		{"wheel straight", "Ah2d", "3s4c5dKhQs", HandCategoryStraight},
		{"three of a kind", "QhQd", "Qs8h4d2c7h", HandCategoryThreeOfAKind},
		{"two pair", "AhKd", "AsKh2c3d7s", HandCategoryTwoPair},
		{"one pair", "2h2d", "AsKhQd9c7s", HandCategoryPair},
		{"high card", "AhKd", "QsJh9c3d2c", HandCategoryHighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := MustBestHand(deck.MustParseCards(tt.hole), deck.MustParseCards(tt.board))
			if rank.Category() != tt.category {
				t.Errorf("category = %s, want category %d", rank, tt.category)
			}
		})
	}
}

func TestBestHandKickers(t *testing.T) {
	tests := []struct {
		name    string
		better  string // hole cards of the stronger hand
		worse   string
		board   string
	}{
		{"pair kicker", "AhKd", "AcQd", "As7h4c2d9s"},
		{"flush kicker", "Ah3d", "Jh3s", "KhQh9h4h2c"},
		{"higher straight beats lower", "Th2c", "5h2d", "6s7d8h9cKs"},
		{"higher two pair", "Ah9d", "Kc9c", "As2cKs7d9h"},
		{"quad kicker", "AhKd", "Jd9c", "7s7h7d7cQs"},
		{"full house trip rank dominates", "KhKd", "QhQd", "KsQsQc2h3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := deck.MustParseCards(tt.board)
			better := MustBestHand(deck.MustParseCards(tt.better), board)
			worse := MustBestHand(deck.MustParseCards(tt.worse), board)
			if Compare(better, worse) != Win {
				t.Errorf("Compare(%v, %v) = %s, want win", better, worse, Compare(better, worse))
			}
		})
	}
}

func TestWheelOrdering(t *testing.T) {
	wheel := MustBestHand(deck.MustParseCards("Ah2d"), deck.MustParseCards("3s4c5dKhQs"))
	sixHigh := MustBestHand(deck.MustParseCards("6h2d"), deck.MustParseCards("3s4c5dKhQs"))
	aceHigh := MustBestHand(deck.MustParseCards("AhKd"), deck.MustParseCards("QsJh9c3d2c"))

	if Compare(sixHigh, wheel) != Win {
		t.Error("6-high straight should beat the wheel")
	}
	if Compare(wheel, aceHigh) != Win {
		t.Error("wheel should beat a high-card hand")
	}
}

func TestCompareTotalOrdering(t *testing.T) {
	board := deck.MustParseCards("2h7d9sJcKs")
	holes := []string{"AhAd", "KhKd", "AcJd", "Th8h", "3c4d", "QdQc", "7h7c"}

	ranks := make([]HandRank, len(holes))
	for i, hole := range holes {
		ranks[i] = MustBestHand(deck.MustParseCards(hole), board)
	}

	for i, a := range ranks {
		if Compare(a, a) != Tie {
			t.Errorf("Compare(%v, %v) != Tie", a, a)
		}
		for j, b := range ranks {
			forward, backward := Compare(a, b), Compare(b, a)
			if forward != -backward {
				t.Errorf("Compare not antisymmetric for holes %s vs %s: %s/%s",
					holes[i], holes[j], forward, backward)
			}
		}
	}
}

func TestBestHandErrors(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
	}{
		{"one hole card", "As", "QsJsTs"},
		{"too few board cards", "AsKs", "QsJs"},
		{"too many board cards", "AsKs", "QsJsTs9s8s7s"},
		{"duplicate across hole and board", "AsKs", "AsJsTs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BestHand(deck.MustParseCards(tt.hole), deck.MustParseCards(tt.board))
			if !errors.Is(err, deck.ErrInvalidState) {
				t.Errorf("BestHand() error = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestHandRankString(t *testing.T) {
	rank := MustBestHand(deck.MustParseCards("AhAd"), deck.MustParseCards("AsAcKh"))
	if rank.String() != "Four of a Kind" {
		t.Errorf("String() = %s, want Four of a Kind", rank.String())
	}
}
