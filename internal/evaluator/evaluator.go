package evaluator

// Bitmask hand evaluator. Rather than enumerating all 21 five-card subsets of
// a seven-card hand, the evaluator scans per-suit rank masks and rank counts
// once and encodes the best hand directly.

import (
	"fmt"
	"math/bits"

	"github.com/lox/holdem-brain/internal/deck"
)

// Hand categories, weakest to strongest.
const (
	HandCategoryHighCard = iota
	HandCategoryPair
	HandCategoryTwoPair
	HandCategoryThreeOfAKind
	HandCategoryStraight
	HandCategoryFlush
	HandCategoryFullHouse
	HandCategoryFourOfAKind
	HandCategoryStraightFlush
)

// HandRank represents the strength of the best five-card hand. Higher values
// are stronger. The category lives in bits 20+ and up to five 4-bit tiebreak
// ranks (card ranks 2-14, highest first) fill the low bits, so integer
// comparison gives exact poker ordering including kickers.
type HandRank uint32

// Outcome is the result of comparing two hands sharing a board.
type Outcome int

const (
	Loss Outcome = iota - 1
	Tie
	Win
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Compare returns the outcome of hand a against hand b. The ordering is
// total: Compare(a, b) and Compare(b, a) are always inverses, and
// Compare(a, a) is Tie.
func Compare(a, b HandRank) Outcome {
	switch {
	case a > b:
		return Win
	case a < b:
		return Loss
	default:
		return Tie
	}
}

// Category returns the hand category (HandCategoryHighCard..HandCategoryStraightFlush)
func (h HandRank) Category() int {
	return int(h >> 20)
}

// String returns the readable name of the hand category
func (h HandRank) String() string {
	switch h.Category() {
	case HandCategoryStraightFlush:
		return "Straight Flush"
	case HandCategoryFourOfAKind:
		return "Four of a Kind"
	case HandCategoryFullHouse:
		return "Full House"
	case HandCategoryFlush:
		return "Flush"
	case HandCategoryStraight:
		return "Straight"
	case HandCategoryThreeOfAKind:
		return "Three of a Kind"
	case HandCategoryTwoPair:
		return "Two Pair"
	case HandCategoryPair:
		return "One Pair"
	case HandCategoryHighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

func makeRank(category int, tiebreaks ...int) HandRank {
	r := HandRank(category) << 20
	shift := 16
	for _, tb := range tiebreaks {
		r |= HandRank(tb) << shift
		shift -= 4
	}
	return r
}

// BestHand evaluates the best five-card hand from two hole cards and three to
// five board cards.
func BestHand(hole []deck.Card, board []deck.Card) (HandRank, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("expected 2 hole cards, got %d: %w", len(hole), deck.ErrInvalidState)
	}
	if len(board) < 3 || len(board) > 5 {
		return 0, fmt.Errorf("expected 3-5 board cards, got %d: %w", len(board), deck.ErrInvalidState)
	}

	cards := make([]deck.Card, 0, 7)
	cards = append(cards, hole...)
	cards = append(cards, board...)

	var seen CardSet
	for _, card := range cards {
		if seen.Contains(card) {
			return 0, fmt.Errorf("duplicate card %s: %w", card, deck.ErrInvalidState)
		}
		seen.Add(card)
	}

	return evaluate(cards), nil
}

// MustBestHand evaluates and panics on error (for tests)
func MustBestHand(hole []deck.Card, board []deck.Card) HandRank {
	rank, err := BestHand(hole, board)
	if err != nil {
		panic(err)
	}
	return rank
}

// evaluate ranks the best five-card hand among 5-7 distinct cards.
func evaluate(cards []deck.Card) HandRank {
	var suitRanks [4]uint16 // bit r set when rank r is present in that suit
	var rankCounts [15]int  // indexed by rank value 2..14

	for _, card := range cards {
		suitRanks[card.Suit] |= 1 << uint(card.Rank)
		rankCounts[card.Rank]++
	}

	ranksMask := suitRanks[0] | suitRanks[1] | suitRanks[2] | suitRanks[3]

	// Flush suit, if any. With at most 7 cards only one suit can have 5+.
	flushSuit := -1
	for suit, mask := range suitRanks {
		if bits.OnesCount16(mask) >= 5 {
			flushSuit = suit
			break
		}
	}

	if flushSuit >= 0 {
		if high := straightHigh(suitRanks[flushSuit]); high > 0 {
			return makeRank(HandCategoryStraightFlush, high)
		}
	}

	quadRank, tripRank, secondTripRank := 0, 0, 0
	highPair, lowPair := 0, 0
	for rank := int(deck.Ace); rank >= int(deck.Two); rank-- {
		switch rankCounts[rank] {
		case 4:
			if quadRank == 0 {
				quadRank = rank
			}
		case 3:
			if tripRank == 0 {
				tripRank = rank
			} else if secondTripRank == 0 {
				secondTripRank = rank
			}
		case 2:
			if highPair == 0 {
				highPair = rank
			} else if lowPair == 0 {
				lowPair = rank
			}
		}
	}

	if quadRank > 0 {
		kicker := highestRanksExcluding(ranksMask, 1, quadRank)
		return makeRank(HandCategoryFourOfAKind, quadRank, kicker[0])
	}

	if tripRank > 0 && (highPair > 0 || secondTripRank > 0) {
		// A second set of trips fills the boat as the pair.
		pair := highPair
		if secondTripRank > pair {
			pair = secondTripRank
		}
		return makeRank(HandCategoryFullHouse, tripRank, pair)
	}

	if flushSuit >= 0 {
		top := highestRanks(suitRanks[flushSuit], 5)
		return makeRank(HandCategoryFlush, top[0], top[1], top[2], top[3], top[4])
	}

	if high := straightHigh(ranksMask); high > 0 {
		return makeRank(HandCategoryStraight, high)
	}

	if tripRank > 0 {
		kickers := highestRanksExcluding(ranksMask, 2, tripRank)
		return makeRank(HandCategoryThreeOfAKind, tripRank, kickers[0], kickers[1])
	}

	if highPair > 0 && lowPair > 0 {
		kicker := highestRanksExcluding(ranksMask, 1, highPair, lowPair)
		return makeRank(HandCategoryTwoPair, highPair, lowPair, kicker[0])
	}

	if highPair > 0 {
		kickers := highestRanksExcluding(ranksMask, 3, highPair)
		return makeRank(HandCategoryPair, highPair, kickers[0], kickers[1], kickers[2])
	}

	top := highestRanks(ranksMask, 5)
	return makeRank(HandCategoryHighCard, top[0], top[1], top[2], top[3], top[4])
}

// straightHigh returns the high-card rank of the best straight in the rank
// mask, or 0 if there is none. The wheel (A-2-3-4-5) counts as a 5-high
// straight.
func straightHigh(ranks uint16) int {
	for high := int(deck.Ace); high >= int(deck.Six); high-- {
		run := uint16(0x1F) << uint(high-4)
		if ranks&run == run {
			return high
		}
	}

	const wheel = 1<<uint(deck.Ace) | 1<<uint(deck.Five) | 1<<uint(deck.Four) |
		1<<uint(deck.Three) | 1<<uint(deck.Two)
	if ranks&wheel == wheel {
		return int(deck.Five)
	}

	return 0
}

// highestRanks returns the count highest ranks present in the mask, descending.
func highestRanks(ranks uint16, count int) []int {
	return highestRanksExcluding(ranks, count)
}

func highestRanksExcluding(ranks uint16, count int, exclude ...int) []int {
	result := make([]int, 0, count)
	for rank := int(deck.Ace); rank >= int(deck.Two) && len(result) < count; rank-- {
		if ranks&(1<<uint(rank)) == 0 {
			continue
		}
		skip := false
		for _, ex := range exclude {
			if rank == ex {
				skip = true
				break
			}
		}
		if !skip {
			result = append(result, rank)
		}
	}
	for len(result) < count {
		result = append(result, 0)
	}
	return result
}
