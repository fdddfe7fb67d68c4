// Package _default registers the default players that can be included in any
// front-end for hexGo.
//
// Currently, it includes "random", "minimax" (plain, depth limited) and "ab" (alpha-beta pruning with
// adaptive depth and the gaussian kernel evaluator).
package _default

import (
	"github.com/janpfeifer/hexGo/internal/parameters"
	"github.com/janpfeifer/hexGo/internal/players"
	"github.com/janpfeifer/hexGo/internal/searchers"
	"github.com/janpfeifer/hexGo/internal/searchers/alphabeta"
	"github.com/janpfeifer/hexGo/internal/state"
	"github.com/pkg/errors"
	"time"
)

func init() {
	players.RegisterModule("random", &Random{})
	players.RegisterModule("minimax", &Minimax{})
	players.RegisterModule("ab", &Minimax{})
}

// Random implements players.Module for a player that picks uniformly among the legal moves.
// It accepts the optional parameter "seed" (int), otherwise it is seeded with the current time.
type Random struct{}

// Assert Random implements Module.
var _ players.Module = (*Random)(nil)

// NewPlayer implements players.Module.
func (r *Random) NewPlayer(rules state.Rules, params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", -1)
	if err != nil {
		return nil, err
	}
	if seed < 0 {
		seed = int(time.Now().UnixNano() & 0x7FFFFFFF)
	}
	return players.NewSearcherPlayer(searchers.NewRandomSearcher(rules, uint64(seed))), nil
}

// Minimax implements players.Module for both the "minimax" and the "ab" players.
// See alphabeta.NewFromParams for the parameters.
type Minimax struct{}

// Assert Minimax implements Module.
var _ players.Module = (*Minimax)(nil)

// NewPlayer implements players.Module.
func (m *Minimax) NewPlayer(rules state.Rules, params parameters.Params) (players.Player, error) {
	searcher, err := alphabeta.NewFromParams(rules, params)
	if err != nil {
		return nil, err
	}
	if searcher == nil {
		return nil, errors.New("neither \"minimax\" nor \"ab\" selected")
	}
	return players.NewSearcherPlayer(searcher), nil
}
