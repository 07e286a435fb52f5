package evaluator

import (
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-brain/internal/deck"
	"github.com/lox/holdem-brain/internal/randutil"
)

// ErrInsufficientCards indicates the constraints (opponent range plus known
// cards) leave too few unseen cards to complete a sampling trial.
var ErrInsufficientCards = errors.New("insufficient cards to complete trial")

// Range constrains which opponent hole-card combinations the estimator may
// sample.
type Range interface {
	// Combos returns every two-card combination consistent with the range
	// that can be built from the available (unseen) cards.
	Combos(available []deck.Card) [][2]deck.Card
}

// UniformRange places no constraint on the opponent: any two unseen cards.
type UniformRange struct{}

// Combos returns all two-card combinations of the available cards.
func (UniformRange) Combos(available []deck.Card) [][2]deck.Card {
	combos := make([][2]deck.Card, 0, len(available)*(len(available)-1)/2)
	for i := 0; i < len(available); i++ {
		for j := i + 1; j < len(available); j++ {
			combos = append(combos, [2]deck.Card{available[i], available[j]})
		}
	}
	return combos
}

// EquityResult aggregates win/tie/loss counts from Monte Carlo trials.
type EquityResult struct {
	Wins   int
	Ties   int
	Losses int
	Trials int
}

// Equity returns the overall equity (0.0 to 1.0).
// Wins count as 1.0, ties count as 0.5.
func (e EquityResult) Equity() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return (float64(e.Wins) + 0.5*float64(e.Ties)) / float64(e.Trials)
}

// Add merges two results. Counter summation is commutative and associative,
// so partial results from parallel workers or budgeted batches can be merged
// in any order.
func (e EquityResult) Add(other EquityResult) EquityResult {
	return EquityResult{
		Wins:   e.Wins + other.Wins,
		Ties:   e.Ties + other.Ties,
		Losses: e.Losses + other.Losses,
		Trials: e.Trials + other.Trials,
	}
}

// ConfidenceInterval returns the 95% confidence interval for the equity
// estimate using the binomial standard error.
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	if e.Trials == 0 {
		return 0.0, 0.0
	}

	equity := e.Equity()
	se := math.Sqrt(equity * (1.0 - equity) / float64(e.Trials))
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

// DefaultTrials is the default Monte Carlo trial count, trading estimator
// variance for latency.
const DefaultTrials = 2000

// parallelThreshold is the trial count above which the worker-pool path is
// worth the goroutine overhead.
const parallelThreshold = 500

// EstimateEquity estimates hero equity against an opponent range by Monte
// Carlo simulation. Each trial samples an opponent hand from the range and a
// board completion, all disjoint from the known cards, and compares the two
// seven-card hands.
func EstimateEquity(hole, board []deck.Card, opp Range, trials int, rng *rand.Rand) (EquityResult, error) {
	available, combos, err := prepareTrials(hole, board, opp, trials)
	if err != nil {
		return EquityResult{}, err
	}

	if trials >= parallelThreshold {
		return runTrialsParallel(hole, board, available, combos, trials, rng)
	}
	return runTrials(hole, board, available, combos, trials, rng), nil
}

// EstimateEquitySequential runs all trials on the calling goroutine.
// Primarily useful for tests that need exact determinism from a fixed seed.
func EstimateEquitySequential(hole, board []deck.Card, opp Range, trials int, rng *rand.Rand) (EquityResult, error) {
	available, combos, err := prepareTrials(hole, board, opp, trials)
	if err != nil {
		return EquityResult{}, err
	}
	return runTrials(hole, board, available, combos, trials, rng), nil
}

// prepareTrials validates inputs and precomputes the shared immutable state
// read by every trial: the unseen cards and the live range combos.
func prepareTrials(hole, board []deck.Card, opp Range, trials int) ([]deck.Card, [][2]deck.Card, error) {
	if trials < 1 {
		return nil, nil, fmt.Errorf("trial count %d must be positive: %w", trials, deck.ErrInvalidState)
	}
	if len(hole) != 2 {
		return nil, nil, fmt.Errorf("expected 2 hole cards, got %d: %w", len(hole), deck.ErrInvalidState)
	}
	if len(board) > 5 {
		return nil, nil, fmt.Errorf("expected at most 5 board cards, got %d: %w", len(board), deck.ErrInvalidState)
	}

	known := make([]deck.Card, 0, 7)
	known = append(known, hole...)
	known = append(known, board...)

	available, err := deck.Remaining(known)
	if err != nil {
		return nil, nil, err
	}

	boardNeeded := 5 - len(board)
	if len(available)-2 < boardNeeded {
		return nil, nil, fmt.Errorf("%d unseen cards cannot fill opponent hand and %d board cards: %w",
			len(available), boardNeeded, ErrInsufficientCards)
	}

	combos := opp.Combos(available)
	if len(combos) == 0 {
		return nil, nil, fmt.Errorf("opponent range has no live combinations: %w", ErrInsufficientCards)
	}

	return available, combos, nil
}

func runTrials(hole, board, available []deck.Card, combos [][2]deck.Card, trials int, rng *rand.Rand) EquityResult {
	var result EquityResult
	result.Trials = trials

	boardNeeded := 5 - len(board)
	finalBoard := make([]deck.Card, 5)
	copy(finalBoard, board)
	candidates := make([]deck.Card, 0, len(available))

	for i := 0; i < trials; i++ {
		oppHole := combos[rng.IntN(len(combos))]
		oppUsed := NewCardSet(oppHole[:])

		if boardNeeded > 0 {
			candidates = candidates[:0]
			for _, card := range available {
				if !oppUsed.Contains(card) {
					candidates = append(candidates, card)
				}
			}
			drawn := deck.SampleWithoutReplacement(candidates, boardNeeded, rng)
			copy(finalBoard[len(board):], drawn)
		}

		heroRank := MustBestHand(hole, finalBoard)
		oppRank := MustBestHand(oppHole[:], finalBoard)

		switch Compare(heroRank, oppRank) {
		case Win:
			result.Wins++
		case Tie:
			result.Ties++
		case Loss:
			result.Losses++
		}
	}

	return result
}

// runTrialsParallel partitions trials across workers and merges their
// counters. Workers read only shared immutable inputs; each gets a forked
// RNG stream so sampling sequences never overlap.
func runTrialsParallel(hole, board, available []deck.Card, combos [][2]deck.Card, trials int, rng *rand.Rand) (EquityResult, error) {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > trials {
		workers = trials
	}

	perWorker := trials / workers
	remainder := trials % workers

	results := make([]EquityResult, workers)
	var g errgroup.Group

	for w := 0; w < workers; w++ {
		workerTrials := perWorker
		if w < remainder {
			workerTrials++
		}
		workerRng := randutil.Fork(rng)
		slot := w

		g.Go(func() error {
			results[slot] = runTrials(hole, board, available, combos, workerTrials, workerRng)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var merged EquityResult
	for _, r := range results {
		merged = merged.Add(r)
	}
	return merged, nil
}
