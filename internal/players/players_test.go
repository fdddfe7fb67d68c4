package players_test

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/hexGo/internal/players"
	_ "github.com/janpfeifer/hexGo/internal/players/default"
	. "github.com/janpfeifer/hexGo/internal/state"
	. "github.com/janpfeifer/hexGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNew(t *testing.T) {
	assert.Equal(t, []string{"ab", "minimax", "random"}, players.RegisteredModules())

	for config, want := range map[string]string{
		"":                                "ab(depth=adaptive, eval=kernel, rules=hex)",
		"ab":                              "ab(depth=adaptive, eval=kernel, rules=hex)",
		"ab, max_depth=2, sigma=1":        "ab(depth=2, eval=kernel(sigma=1), rules=hex)",
		"minimax":                         "minimax(depth=3, eval=terminal, rules=hex)",
		"minimax,randomness=0.2":          "minimax(depth=3, eval=terminal(randomness=0.2), rules=hex)",
		"minimax,max_depth=1,eval=kernel": "minimax(depth=1, eval=kernel, rules=hex)",
		"random,seed=7":                   "random(seed=7)",
	} {
		p, err := players.New(HexRules{}, config)
		require.NoError(t, err, "config %q", config)
		assert.Equal(t, want, p.String(), "config %q", config)
	}

	for _, config := range []string{"mcts", "ab,foo=1", "random,max_depth=2", "minimax,ab", "ab,max_depth=x", "max_depth=2,ab"} {
		_, err := players.New(HexRules{}, config)
		assert.Error(t, err, "config %q", config)
	}
}

func TestSelectMove(t *testing.T) {
	b := BuildBoard(`
		. X . .
		. O . .
		. . X .
		O . . .`)
	for _, config := range []string{"random", "minimax,max_depth=2", "ab"} {
		for _, rules := range []Rules{HexRules{}, SquareRules{}} {
			p, err := players.New(rules, config)
			require.NoError(t, err)
			for _, player := range Players {
				move, ok := players.SelectMove(p, rules, b, player)
				require.True(t, ok)
				assert.True(t, b.IsEmpty(move), "%s selected occupied cell %s", p, move)
			}
		}
	}
}

func TestSelectMoveDeterminism(t *testing.T) {
	b := BuildBoard(`
		. . . . .
		. . X . .
		. O . . .
		. . . . .
		. . . . .`)
	for _, config := range []string{"minimax,max_depth=2", "ab", "ab,max_depth=3", "random,seed=5"} {
		p1, err := players.New(HexRules{}, config)
		require.NoError(t, err)
		p2, err := players.New(HexRules{}, config)
		require.NoError(t, err)
		want, ok := players.SelectMove(p1, HexRules{}, b, PlayerFirst)
		require.True(t, ok)
		got, ok := players.SelectMove(p2, HexRules{}, b, PlayerFirst)
		require.True(t, ok)
		assert.Equal(t, want, got, "config %q", config)
	}
}

func TestSelectMoveDraw(t *testing.T) {
	full := BuildBoard(`
		X O X
		O X O
		X O X`)
	for _, config := range []string{"random", "minimax", "ab"} {
		p, err := players.New(SquareRules{}, config)
		require.NoError(t, err)
		_, ok := players.SelectMove(p, SquareRules{}, full, PlayerFirst)
		assert.False(t, ok, "config %q", config)
	}
}

// cheater always plays the top-left corner.
type cheater struct{}

func (cheater) Play(_ *Board, _ PlayerNum) (Move, float32, bool) { return Move{0, 0}, 0, true }
func (cheater) Finalize()                                          {}
func (cheater) String() string                                     { return "cheater" }

func TestSelectMoveIllegal(t *testing.T) {
	b := BuildBoard("X .\n. .")
	err := exceptions.TryCatch[error](func() { players.SelectMove(cheater{}, HexRules{}, b, PlayerSecond) })
	require.Error(t, err)
	move, ok := players.SelectMove(cheater{}, HexRules{}, NewBoard(2), PlayerSecond)
	assert.True(t, ok)
	assert.Equal(t, Move{0, 0}, move)
}

func TestFinalize(t *testing.T) {
	p, err := players.New(HexRules{}, "ab")
	require.NoError(t, err)
	p.Finalize()
	assert.Equal(t, "finalized player", p.String())
}
