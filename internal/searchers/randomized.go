package searchers

import (
	"fmt"
	. "github.com/janpfeifer/hexGo/internal/state"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
)

// RandomSearcher chooses uniformly among the legal moves.
type RandomSearcher struct {
	rules Rules
	seed  uint64
	rng   *rand.Rand
}

// Assert RandomSearcher is a Searcher.
var _ Searcher = (*RandomSearcher)(nil)

// NewRandomSearcher returns a Searcher that picks a uniformly random legal move, using a random
// number generator seeded with seed: the same seed plays the same sequence of choices.
func NewRandomSearcher(rules Rules, seed uint64) *RandomSearcher {
	return &RandomSearcher{rules: rules, seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// String implements Searcher.
func (rs *RandomSearcher) String() string {
	return fmt.Sprintf("random(seed=%d)", rs.seed)
}

// Search implements Searcher. The score is always 0, random play has no opinion about the board.
func (rs *RandomSearcher) Search(b *Board, player PlayerNum) (move Move, score float32, ok bool) {
	moves := rs.rules.LegalMoves(b)
	if len(moves) == 0 {
		return
	}
	move = moves[rs.rng.Intn(len(moves))]
	if klog.V(2).Enabled() {
		klog.Infof("random selection for %s: %s out of %d moves", player, move, len(moves))
	}
	return move, 0, true
}
