package alphabeta

import (
	"github.com/janpfeifer/hexGo/internal/eval"
	"github.com/janpfeifer/hexGo/internal/parameters"
	"github.com/janpfeifer/hexGo/internal/searchers"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/pkg/errors"
)

// NewFromParams creates a Searcher if params select one of the two minimax flavours, and
// returns nil otherwise:
//
//   - minimax (bool): plain minimax, no pruning, fixed depth (max_depth, default DefaultMaxDepth)
//     and "terminal" evaluator (only wins and losses count).
//   - ab (bool): alpha-beta pruning, adaptive depth unless max_depth is given, and "kernel"
//     evaluator.
//   - max_depth (int): fixed depth limit in plies.
//   - pruning (bool): overrides the pruning of the flavour.
//   - keep_tree (bool): keep the explored tree until the next search (for debugging).
//
// The evaluator parameters (eval, sigma, randomness, seed) are documented in eval.NewFromParams.
// Used parameters are removed from params.
func NewFromParams(rules Rules, params parameters.Params) (searchers.Searcher, error) {
	isMinimax, err := parameters.PopParamOr(params, "minimax", false)
	if err != nil {
		return nil, err
	}
	isAB, err := parameters.PopParamOr(params, "ab", false)
	if err != nil {
		return nil, err
	}
	if !isMinimax && !isAB {
		return nil, nil
	}
	if isMinimax && isAB {
		return nil, errors.New("only one of \"minimax\" or \"ab\" can be selected")
	}

	defaultDepth, defaultEval := 0, "kernel"
	if isMinimax {
		defaultDepth, defaultEval = DefaultMaxDepth, "terminal"
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", defaultDepth)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 || (isMinimax && maxDepth == 0) {
		return nil, errors.Errorf("invalid max_depth=%d", maxDepth)
	}
	pruning, err := parameters.PopParamOr(params, "pruning", isAB)
	if err != nil {
		return nil, err
	}
	keepTree, err := parameters.PopParamOr(params, "keep_tree", false)
	if err != nil {
		return nil, err
	}
	evaluator, err := eval.NewFromParams(params, defaultEval)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create evaluator for minimax searcher")
	}
	return New(rules, evaluator).
		WithMaxDepth(maxDepth).
		WithPruning(pruning).
		WithKeepTree(keepTree), nil
}
