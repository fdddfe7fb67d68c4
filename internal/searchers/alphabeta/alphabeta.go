// Package alphabeta implements a minimax searcher, with optional alpha-beta pruning and
// an adaptive depth limit.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package alphabeta

import (
	"fmt"
	"github.com/chewxy/math32"
	"github.com/janpfeifer/hexGo/internal/eval"
	"github.com/janpfeifer/hexGo/internal/searchers"
	. "github.com/janpfeifer/hexGo/internal/state"
	"k8s.io/klog/v2"
	"time"
)

// Searcher implements the searchers.Searcher interface.
// It is used by the players package to implement the "minimax" and "ab" strategies.
type Searcher struct {
	rules     Rules
	evaluator eval.Evaluator

	// maxDepth is the fixed depth limit, or 0 for the adaptive depth.
	maxDepth int
	pruning  bool
	keepTree bool

	lastStats Stats
	lastRoot  *searchers.Node
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// DepthLimit used for the search, in plies.
	DepthLimit int

	// Nodes created during search: execution of a move in a board, creating a new board.
	Nodes int

	// Evals is the number of frontier nodes scored by the evaluator.
	Evals int

	// Terminals is the number of nodes where the player who just moved had won.
	Terminals int

	// Draws is the number of nodes with no legal moves left and no winner.
	Draws int

	// Prunes is the number of cut-offs.
	Prunes int
}

// DefaultMaxDepth for the plain minimax.
const DefaultMaxDepth = 3

// New returns a minimax searcher with alpha-beta pruning and adaptive depth (see AdaptiveDepth).
// There are other optional configurations, see methods Searcher.With...
//
// Frontier boards are scored with eval.Frontier using the given evaluator.
func New(rules Rules, evaluator eval.Evaluator) *Searcher {
	return &Searcher{
		rules:     rules,
		evaluator: evaluator,
		pruning:   true,
	}
}

// WithMaxDepth sets a fixed max depth of search: the unit here are plies (ply singular). Each player
// playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// A value <= 0 reverts to the adaptive depth, the default.
func (ab *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	ab.maxDepth = max(maxDepth, 0)
	return ab
}

// WithAdaptiveDepth makes the depth limit be recomputed at every search with AdaptiveDepth.
// This is the default.
func (ab *Searcher) WithAdaptiveDepth() *Searcher {
	ab.maxDepth = 0
	return ab
}

// WithPruning enables or disables the alpha-beta cut-offs. Without pruning it is an exhaustive
// minimax to the depth limit, and the selected move and score are the same.
//
// The default is true.
func (ab *Searcher) WithPruning(pruning bool) *Searcher {
	ab.pruning = pruning
	return ab
}

// WithKeepTree keeps the whole explored tree linked until the next search, see LastRoot.
// Otherwise, the default, subtrees are released as soon as their score is folded into their parent.
func (ab *Searcher) WithKeepTree(keepTree bool) *Searcher {
	ab.keepTree = keepTree
	return ab
}

// AdaptiveDepth returns the depth limit floor(sqrt(occupied+1)) for a board with occupied
// non-empty cells: the branching factor shrinks as the board fills, so one can afford to look
// further ahead.
func AdaptiveDepth(occupied int) int {
	return int(math32.Floor(math32.Sqrt(float32(occupied + 1))))
}

// DepthLimit returns the depth limit that will be used to search b.
func (ab *Searcher) DepthLimit(b *Board) int {
	if ab.maxDepth > 0 {
		return ab.maxDepth
	}
	return AdaptiveDepth(b.Occupied())
}

// String implements searchers.Searcher.
func (ab *Searcher) String() string {
	name := "minimax"
	if ab.pruning {
		name = "ab"
	}
	depth := "adaptive"
	if ab.maxDepth > 0 {
		depth = fmt.Sprint(ab.maxDepth)
	}
	return fmt.Sprintf("%s(depth=%s, eval=%s, rules=%s)", name, depth, ab.evaluator, ab.rules)
}

// LastStats returns the stats of the last search.
func (ab *Searcher) LastStats() Stats {
	return ab.lastStats
}

// LastRoot returns the root of the tree of the last search. Its subtrees are only kept if
// configured WithKeepTree.
func (ab *Searcher) LastRoot() *searchers.Node {
	return ab.lastRoot
}

// Search implements the searchers.Searcher interface.
//
// If there are no legal moves, or if the opponent already won on b, it returns ok=false and
// the score is the initial value of the search (-Inf) or the loss sentinel respectively.
func (ab *Searcher) Search(b *Board, player PlayerNum) (move Move, score float32, ok bool) {
	start := time.Now()
	s := &search{
		Searcher:   ab,
		rootPlayer: player,
		stats:      Stats{DepthLimit: ab.DepthLimit(b)},
	}
	root := searchers.NewRoot(b, player)
	score, move, ok = s.maxValue(root, s.stats.DepthLimit, 0, math32.Inf(-1), math32.Inf(1))
	ab.lastStats = s.stats
	ab.lastRoot = root

	if klog.V(2).Enabled() {
		elapsed := time.Since(start).Seconds()
		klog.Infof("%s for %s: move=%s ok=%v score=%.3f", ab, player, move, ok, score)
		klog.Infof("  Counts: %+v", s.stats)
		klog.Infof("  nodes/s=%.1f, evals/s=%.1f", float64(s.stats.Nodes)/elapsed, float64(s.stats.Evals)/elapsed)
	}
	if klog.V(3).Enabled() {
		klog.Infof("Board searched:\n%s", b)
	}
	return
}

// search holds the state of one call to Searcher.Search.
type search struct {
	*Searcher
	rootPlayer PlayerNum
	stats      Stats
}

// frontier checks the stopping conditions of node, in order: whether the player who moved into
// node won, and whether the depth limit was reached. If stop is true, score is the node's value.
func (s *search) frontier(node *searchers.Node, depthLimit, depth int) (stop bool, score float32) {
	if s.rules.Winner(node.Player, node.Board) == node.Player {
		s.stats.Terminals++
		if node.Player == s.rootPlayer {
			return true, eval.WinScore
		}
		return true, -eval.WinScore
	}
	if depth >= depthLimit {
		s.stats.Evals++
		return true, eval.Frontier(s.evaluator, node.Board, s.rootPlayer)
	}
	return false, 0
}

// maxValue returns the best score the player to act at node (the root player) can achieve, and the
// move that leads to it. If there are no legal moves it returns ok=false and -Inf.
func (s *search) maxValue(node *searchers.Node, depthLimit, depth int, alpha, beta float32) (
	bestScore float32, bestMove Move, ok bool) {
	if stop, score := s.frontier(node, depthLimit, depth); stop {
		return score, node.Move, node.HasMove
	}
	if !s.keepTree {
		defer node.Release()
	}

	bestScore = math32.Inf(-1)
	mover := node.ToPlay()
	for _, move := range s.rules.LegalMoves(node.Board) {
		child := node.Expand(move, mover)
		s.stats.Nodes++
		value, _, childOk := s.minValue(child, depthLimit, depth+1, alpha, beta)
		if !childOk {
			// Child filled the board without a winner.
			s.stats.Draws++
			value = eval.DrawScore
		}
		if value > bestScore {
			bestScore, bestMove, ok = value, move, true
		}
		alpha = max(alpha, value)
		if s.pruning && value >= beta {
			// The minimizing player will never let the game reach this node.
			s.stats.Prunes++
			return
		}
	}
	return
}

// minValue returns the lowest score the opponent of the root player, acting at node, can force,
// and the move that leads to it. If there are no legal moves it returns ok=false and +Inf.
func (s *search) minValue(node *searchers.Node, depthLimit, depth int, alpha, beta float32) (
	bestScore float32, bestMove Move, ok bool) {
	if stop, score := s.frontier(node, depthLimit, depth); stop {
		return score, node.Move, node.HasMove
	}
	if !s.keepTree {
		defer node.Release()
	}

	bestScore = math32.Inf(1)
	mover := node.ToPlay()
	for _, move := range s.rules.LegalMoves(node.Board) {
		child := node.Expand(move, mover)
		s.stats.Nodes++
		value, _, childOk := s.maxValue(child, depthLimit, depth+1, alpha, beta)
		if !childOk {
			s.stats.Draws++
			value = eval.DrawScore
		}
		if value < bestScore {
			bestScore, bestMove, ok = value, move, true
		}
		beta = min(beta, value)
		if s.pruning && value <= alpha {
			// The maximizing player already has a better alternative.
			s.stats.Prunes++
			return
		}
	}
	return
}
