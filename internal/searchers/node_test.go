package searchers

import (
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/hexGo/internal/state"
	. "github.com/janpfeifer/hexGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNode(t *testing.T) {
	b := BuildBoard(`
		X . .
		. . .
		. . O`)
	root := NewRoot(b, PlayerFirst)
	assert.False(t, root.HasMove)
	assert.Nil(t, root.Parent)
	assert.Equal(t, PlayerSecond, root.Player, "root is owned by the player who moved last")
	assert.Equal(t, PlayerFirst, root.ToPlay())

	// Root holds a copy of the board.
	require.NoError(t, b.Set(Pos{1, 1}, PlayerSecond))
	assert.Equal(t, PlayerNone, root.Board.At(Pos{1, 1}))

	child := root.Expand(Move{0, 1}, PlayerFirst)
	sibling := root.Expand(Move{0, 2}, PlayerFirst)
	assert.Equal(t, []*Node{child, sibling}, root.Children)
	assert.Equal(t, root, child.Parent)
	assert.Equal(t, PlayerFirst, child.Player)
	assert.Equal(t, PlayerSecond, child.ToPlay())
	assert.True(t, child.HasMove)
	assert.Equal(t, PlayerFirst, child.Board.At(Move{0, 1}))
	assert.Equal(t, PlayerNone, sibling.Board.At(Move{0, 1}), "siblings must not see each other's moves")
	assert.Equal(t, PlayerNone, root.Board.At(Move{0, 1}))

	grandChild := child.Expand(Move{2, 0}, PlayerSecond)
	assert.Equal(t, 2, grandChild.Depth())
	assert.Equal(t, []Move{{0, 1}, {2, 0}}, grandChild.Path())
	assert.Empty(t, root.Path())
	assert.Equal(t, 4, root.CountNodes())

	root.Release()
	assert.Empty(t, root.Children)
	assert.Nil(t, child.Parent)
	assert.Equal(t, 1, root.CountNodes())
}

func TestNodeExpandInvalid(t *testing.T) {
	root := NewRoot(BuildBoard("X.\n.."), PlayerSecond)
	for _, move := range []Move{{0, 0}, {2, 0}, {-1, 1}} {
		err := exceptions.TryCatch[error](func() { root.Expand(move, PlayerSecond) })
		assert.Error(t, err, "expanding %s should fail", move)
	}
	err := exceptions.TryCatch[error](func() { root.Expand(Move{1, 1}, PlayerNone) })
	assert.Error(t, err)
	assert.Empty(t, root.Children)
	assert.Equal(t, PlayerFirst, root.Board.At(Pos{0, 0}), "failed expansions must not overwrite cells")
}

func TestRandomSearcher(t *testing.T) {
	b := BuildBoard(`
		X . O
		. X .
		O . .`)
	legal := HexRules{}.LegalMoves(b)
	rs1, rs2 := NewRandomSearcher(HexRules{}, 42), NewRandomSearcher(HexRules{}, 42)
	seen := make(map[Move]int)
	for range 200 {
		move, score, ok := rs1.Search(b, PlayerSecond)
		require.True(t, ok)
		assert.Equal(t, float32(0), score)
		assert.Contains(t, legal, move)
		move2, _, _ := rs2.Search(b, PlayerSecond)
		assert.Equal(t, move, move2, "same seed must reproduce the choices")
		seen[move]++
	}
	assert.Len(t, seen, len(legal), "all legal moves should be chosen at some point")
	assert.Equal(t, "random(seed=42)", rs1.String())

	_, _, ok := rs1.Search(BuildBoard("XO\nOX"), PlayerFirst)
	assert.False(t, ok)
}
