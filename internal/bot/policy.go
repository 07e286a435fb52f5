package bot

import (
	"fmt"
	"math"

	"github.com/lox/holdem-brain/internal/deck"
)

// Action is the chosen betting action.
type Action int

const (
	Fold Action = iota
	Call
	Raise
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// BettingContext is the immutable betting snapshot for a single decision.
type BettingContext struct {
	Pot        float64
	CallAmount float64
	RaiseTo    float64 // proposed raise-to amount; 0 disables the raise branch
	StackLimit float64 // commitment ceiling; <= 0 means unlimited
}

// Decision is the chosen action plus the numbers that justified it.
type Decision struct {
	Action          Action
	RaiseTo         float64 // amount to raise to, when Action == Raise
	EV              float64 // expected value of the chosen action
	Equity          float64 // equity estimate the decision was based on
	FoldProbability float64 // fold-equity estimate the decision was based on
}

// Decide picks the highest-EV action among fold, call, and raise.
//
//	call EV  = equity*(pot+call) - (1-equity)*call
//	raise EV = foldProb*pot + (1-foldProb)*(equity*(pot+raise) - (1-equity)*raise)
//
// Exact EV ties resolve toward the more aggressive action (fold < call <
// raise): raising preserves fold equity on future streets, so an equal-EV
// raise strictly dominates in practice. This is a policy choice.
//
// A call amount above the stack limit folds gracefully rather than erroring;
// out-of-range numeric inputs are caller contract violations and fail fast.
func Decide(equity, foldProb float64, ctx BettingContext) (Decision, error) {
	if equity < 0 || equity > 1 || math.IsNaN(equity) {
		return Decision{}, fmt.Errorf("equity %v outside [0,1]: %w", equity, deck.ErrInvalidState)
	}
	if foldProb < 0 || foldProb > 1 || math.IsNaN(foldProb) {
		return Decision{}, fmt.Errorf("fold probability %v outside [0,1]: %w", foldProb, deck.ErrInvalidState)
	}
	if ctx.Pot < 0 || ctx.CallAmount < 0 || ctx.RaiseTo < 0 {
		return Decision{}, fmt.Errorf("negative betting amounts (pot=%v call=%v raise=%v): %w",
			ctx.Pot, ctx.CallAmount, ctx.RaiseTo, deck.ErrInvalidState)
	}

	if ctx.StackLimit > 0 && ctx.CallAmount > ctx.StackLimit {
		return Decision{Action: Fold, Equity: equity, FoldProbability: foldProb}, nil
	}

	best := Decision{Action: Fold, EV: 0, Equity: equity, FoldProbability: foldProb}

	callEV := equity*(ctx.Pot+ctx.CallAmount) - (1.0-equity)*ctx.CallAmount
	if callEV >= best.EV {
		best.Action = Call
		best.EV = callEV
	}

	raiseable := ctx.RaiseTo > 0 && (ctx.StackLimit <= 0 || ctx.RaiseTo <= ctx.StackLimit)
	if raiseable {
		showdownEV := equity*(ctx.Pot+ctx.RaiseTo) - (1.0-equity)*ctx.RaiseTo
		raiseEV := foldProb*ctx.Pot + (1.0-foldProb)*showdownEV
		if raiseEV >= best.EV {
			best.Action = Raise
			best.RaiseTo = ctx.RaiseTo
			best.EV = raiseEV
		}
	}

	return best, nil
}
