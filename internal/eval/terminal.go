package eval

import (
	"fmt"
	. "github.com/janpfeifer/hexGo/internal/state"
	"golang.org/x/exp/rand"
)

// Terminal is the evaluator of the plain minimax: it holds no positional knowledge, so only
// the win/loss sentinels of terminal boards guide the search. Non-terminal boards score 0,
// optionally with uniform noise in [-randomness, randomness] to vary the play.
type Terminal struct {
	randomness float32
	rng        *rand.Rand
}

var _ Evaluator = (*Terminal)(nil)

// NewTerminal creates a Terminal evaluator. With randomness 0 (the default) it is deterministic
// and the seed is not used.
func NewTerminal(randomness float32, seed uint64) *Terminal {
	t := &Terminal{randomness: randomness}
	if randomness > 0 {
		t.rng = rand.New(rand.NewSource(seed))
	}
	return t
}

// String implements Evaluator.
func (t *Terminal) String() string {
	if t.randomness == 0 {
		return "terminal"
	}
	return fmt.Sprintf("terminal(randomness=%g)", t.randomness)
}

// Evaluate implements Evaluator.
func (t *Terminal) Evaluate(_ *Board, _ PlayerNum) float32 {
	if t.rng == nil {
		return 0
	}
	return Clip((2*t.rng.Float32() - 1) * t.randomness)
}
