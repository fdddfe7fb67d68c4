// Package searchers defines the Searcher interface, implemented by the various algorithms that
// choose a move, and the Node used by them to build the explored game tree.
package searchers

import (
	. "github.com/janpfeifer/hexGo/internal/state"
)

// Searcher is the interface that any of the search algorithms
// must adhere to be valid.
//
// A Searcher may keep state across calls (statistics, random number generators), so it is not
// safe for concurrent use.
type Searcher interface {
	// Search returns the move for player to play on the given board, and the expected score of
	// taking it (in the eval package scale).
	//
	// If there are no legal moves (a draw), or the board is already decided, ok is false and
	// move should be ignored.
	Search(b *Board, player PlayerNum) (move Move, score float32, ok bool)

	// String returns a short description of the searcher and its configuration.
	String() string
}
