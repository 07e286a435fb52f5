// Package bot decides a betting action for a heads-up hold'em agent: it
// infers an opponent range from betting pressure, estimates hand equity by
// Monte Carlo sampling against that range, estimates fold equity for a
// candidate raise, and picks the highest-EV action.
package bot

import (
	"context"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-brain/internal/deck"
	"github.com/lox/holdem-brain/internal/evaluator"
	"github.com/lox/holdem-brain/internal/randutil"
)

// Situation is the per-decision snapshot supplied by the table engine.
type Situation struct {
	Hole       []deck.Card
	Board      []deck.Card
	Street     Street
	Pot        float64
	CallAmount float64
	StackLimit float64  // commitment ceiling; <= 0 means unlimited
	Pressure   *float64 // observed betting pressure; nil derives it from Pot/CallAmount
	RaiseTo    float64  // candidate raise-to amount; 0 uses the configured default sizing
}

// Diagnostics exposes the estimates behind a decision for logging and
// analysis by the surrounding harness.
type Diagnostics struct {
	Equity          evaluator.EquityResult
	FoldProbability float64
	RangeSize       int
	TopFraction     float64
}

// Advisor is the externally consumed entry point: it wires the range model,
// equity estimator, fold-equity estimator, and decision policy together.
type Advisor struct {
	cfg    Config
	logger *log.Logger
	clock  quartz.Clock
	ranges *RangeModel
	rng    *rand.Rand

	lastDiag Diagnostics
}

// AdvisorOption customises an Advisor.
type AdvisorOption func(*Advisor)

// WithClock injects the clock used for decision time budgets.
func WithClock(clock quartz.Clock) AdvisorOption {
	return func(a *Advisor) { a.clock = clock }
}

// WithRand injects the random source, enabling deterministic tests.
func WithRand(rng *rand.Rand) AdvisorOption {
	return func(a *Advisor) { a.rng = rng }
}

// NewAdvisor creates an advisor with the given configuration. By default it
// uses the real clock and a time-seeded random source.
func NewAdvisor(cfg Config, logger *log.Logger, opts ...AdvisorOption) *Advisor {
	a := &Advisor{
		cfg:    cfg,
		logger: logger.WithPrefix("advisor"),
		clock:  quartz.NewReal(),
		ranges: NewRangeModel(cfg.FloorFraction, cfg.PressureSlope),
		rng:    randutil.New(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PressureFromBet derives betting pressure from the amounts on the table:
// call / (pot + call). A free check is zero pressure.
func PressureFromBet(pot, call float64) float64 {
	if pot+call <= 0 {
		return 0
	}
	return call / (pot + call)
}

// Decide produces a betting action for the situation. Component errors
// surface to the caller rather than being approximated away; a fabricated
// equity would corrupt the EV math downstream.
func (a *Advisor) Decide(ctx context.Context, sit Situation) (Decision, error) {
	pressure := PressureFromBet(sit.Pot, sit.CallAmount)
	if sit.Pressure != nil {
		pressure = *sit.Pressure
	}

	oppRange, err := a.ranges.Infer(pressure, sit.Street)
	if err != nil {
		return Decision{}, err
	}

	equity, err := a.estimateEquity(ctx, sit, oppRange)
	if err != nil {
		return Decision{}, err
	}

	raiseTo := sit.RaiseTo
	if raiseTo <= 0 {
		raiseTo = sit.CallAmount + a.cfg.RaisePotFraction*sit.Pot
	}

	foldProb := 0.0
	if raiseTo > 0 && sit.Pot > 0 {
		foldProb, err = EstimateFoldProbability(oppRange.TopFraction(), raiseTo, sit.Pot)
		if err != nil {
			return Decision{}, err
		}
	}

	decision, err := Decide(equity.Equity(), foldProb, BettingContext{
		Pot:        sit.Pot,
		CallAmount: sit.CallAmount,
		RaiseTo:    raiseTo,
		StackLimit: sit.StackLimit,
	})
	if err != nil {
		return Decision{}, err
	}

	a.lastDiag = Diagnostics{
		Equity:          equity,
		FoldProbability: foldProb,
		RangeSize:       oppRange.Size(),
		TopFraction:     oppRange.TopFraction(),
	}

	lower, upper := equity.ConfidenceInterval()
	a.logger.Debug("decision",
		"street", sit.Street,
		"pressure", pressure,
		"range_classes", oppRange.Size(),
		"top_fraction", oppRange.TopFraction(),
		"equity", equity.Equity(),
		"equity_ci_low", lower,
		"equity_ci_high", upper,
		"trials", equity.Trials,
		"fold_prob", foldProb,
		"action", decision.Action,
		"ev", decision.EV,
	)

	return decision, nil
}

// LastDiagnostics returns the estimates behind the most recent decision.
func (a *Advisor) LastDiagnostics() Diagnostics {
	return a.lastDiag
}

// estimateEquity runs the estimator in batches, merging counters until the
// requested trial count is reached or the time budget expires. Running out
// of budget degrades to a lower trial count rather than blocking or failing.
func (a *Advisor) estimateEquity(ctx context.Context, sit Situation, oppRange *Range) (evaluator.EquityResult, error) {
	trials := a.cfg.Trials
	if trials <= 0 {
		trials = evaluator.DefaultTrials
	}
	batch := a.cfg.BatchSize
	if batch <= 0 || batch > trials {
		batch = trials
	}

	var deadline time.Time
	if a.cfg.BudgetMS > 0 {
		deadline = a.clock.Now().Add(time.Duration(a.cfg.BudgetMS) * time.Millisecond)
	}

	var total evaluator.EquityResult
	for done := 0; done < trials; {
		n := trials - done
		if n > batch {
			n = batch
		}

		result, err := evaluator.EstimateEquity(sit.Hole, sit.Board, oppRange, n, a.rng)
		if err != nil {
			return evaluator.EquityResult{}, err
		}
		total = total.Add(result)
		done += n

		if err := ctx.Err(); err != nil {
			break // keep the trials already run
		}
		if !deadline.IsZero() && !a.clock.Now().Before(deadline) {
			break
		}
	}

	return total, nil
}
