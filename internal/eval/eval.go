// Package eval defines the static evaluation of boards, used by the searchers at the frontier
// of the search, where they stop looking ahead.
//
// All scores share one scale: heuristic scores lie within [-MaxHeuristicScore, MaxHeuristicScore],
// while definite wins and losses are +/-WinScore, well outside of it.
package eval

import (
	"github.com/chewxy/math32"
	"github.com/janpfeifer/hexGo/internal/parameters"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/pkg/errors"
)

const (
	// WinScore for the winning side. For the losing side it is -WinScore.
	WinScore = float32(200)

	// MaxHeuristicScore bounds the absolute value of any heuristic (non-terminal) score.
	MaxHeuristicScore = float32(1)

	// DrawScore for a full board with no winner.
	DrawScore = float32(0)
)

// Evaluator estimates how favorable a non-terminal board is for a player.
//
// Implementations must not change the board.
type Evaluator interface {
	Evaluate(b *Board, player PlayerNum) float32
	String() string
}

// Frontier returns the heuristic score of b for the root player of a search: the evaluation
// of the opponent's position minus the evaluation of the root player's own position,
// clipped to [-MaxHeuristicScore, MaxHeuristicScore].
//
// Since the Evaluator counts a player's stones as negative contributions, the root player's
// stones add to the score and the opponent's stones subtract from it.
func Frontier(e Evaluator, b *Board, root PlayerNum) float32 {
	score := e.Evaluate(b, Opponent(root)) - e.Evaluate(b, root)
	return Clip(score)
}

// Clip score to [-MaxHeuristicScore, MaxHeuristicScore].
func Clip(score float32) float32 {
	return math32.Max(-MaxHeuristicScore, math32.Min(MaxHeuristicScore, score))
}

// NewFromParams creates the Evaluator configured by params, consuming the parameters it uses:
//
//   - eval (string): "kernel" or "terminal". If not given, defaultEval is used.
//   - sigma (float32): spread of the "kernel" evaluator, in cells. Default is a quarter of the board size.
//   - randomness (float32): noise amplitude of the "terminal" evaluator. Default is 0.
//   - seed (int): seed for the "terminal" evaluator noise.
func NewFromParams(params parameters.Params, defaultEval string) (Evaluator, error) {
	name, err := parameters.PopParamOr(params, "eval", defaultEval)
	if err != nil {
		return nil, err
	}
	switch name {
	case "kernel":
		sigma, err := parameters.PopParamOr(params, "sigma", float32(0))
		if err != nil {
			return nil, err
		}
		if sigma < 0 {
			return nil, errors.Errorf("negative sigma=%g not possible", sigma)
		}
		return NewKernel(sigma), nil
	case "terminal":
		randomness, err := parameters.PopParamOr(params, "randomness", float32(0))
		if err != nil {
			return nil, err
		}
		if randomness < 0 || randomness > MaxHeuristicScore {
			return nil, errors.Errorf("randomness=%g must be between 0 and %g", randomness, MaxHeuristicScore)
		}
		seed, err := parameters.PopParamOr(params, "seed", 0)
		if err != nil {
			return nil, err
		}
		return NewTerminal(randomness, uint64(seed)), nil
	}
	return nil, errors.Errorf("unknown evaluator eval=%q, valid values are \"kernel\" or \"terminal\"", name)
}
