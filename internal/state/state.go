// Package state holds the board of the game and the rules (the "oracle") that answer which
// moves are legal and whether a player has won.
//
// The board is a square of Size×Size cells, each either empty (PlayerNone) or holding a stone
// of PlayerFirst or PlayerSecond.
package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"strings"
)

const (
	// NumPlayers currently limited to 2.
	NumPlayers = 2

	// MaxBoardSize is limited by the int8 coordinates of Pos.
	MaxBoardSize = 26

	// DefaultBoardSize used by the front-ends if none is configured.
	DefaultBoardSize = 7
)

// PlayerNum is either PlayerFirst or PlayerSecond. The zero value PlayerNone is also the
// symbol of an empty cell.
type PlayerNum uint8

const (
	PlayerNone PlayerNum = iota
	PlayerFirst
	PlayerSecond
)

// Players enumerates the 2 players, in order of play.
var Players = [NumPlayers]PlayerNum{PlayerFirst, PlayerSecond}

var playerNames = [...]string{"None", "Black", "White"}

// String returns the player's color name.
func (p PlayerNum) String() string {
	if int(p) >= len(playerNames) {
		return fmt.Sprintf("PlayerNum(%d)", p)
	}
	return playerNames[p]
}

// Valid returns whether p is one of the 2 players.
func (p PlayerNum) Valid() bool {
	return p == PlayerFirst || p == PlayerSecond
}

// Opponent returns the other player. It panics if p is not a valid player.
//
// This is the only place where the player numbering convention is used: everywhere a player
// needs to be inverted it must go through Opponent.
func Opponent(p PlayerNum) PlayerNum {
	switch p {
	case PlayerFirst:
		return PlayerSecond
	case PlayerSecond:
		return PlayerFirst
	}
	exceptions.Panicf("state.Opponent(%s): not a valid player", p)
	return PlayerNone
}

// Pos is a (row, column) position on the board.
type Pos struct {
	Row, Col int8
}

// Move is a position where the next stone is placed. It is only valid while the cell is empty.
type Move = Pos

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

// Board holds the cells of the game in row-major order.
//
// Boards are never shared between search branches: use Clone or Act to derive a new board.
type Board struct {
	// Size of the side of the board.
	Size int

	cells []PlayerNum
}

// ValidateSize returns an error if size is not a valid board size.
func ValidateSize(size int) error {
	if size < 1 || size > MaxBoardSize {
		return errors.Errorf("invalid board size %d, it must be between 1 and %d", size, MaxBoardSize)
	}
	return nil
}

// NewBoard creates an empty board of the given size. It panics on an invalid size, see ValidateSize.
func NewBoard(size int) *Board {
	if err := ValidateSize(size); err != nil {
		panic(err)
	}
	return &Board{Size: size, cells: make([]PlayerNum, size*size)}
}

// Clone returns a structurally independent copy of the board.
func (b *Board) Clone() *Board {
	newB := &Board{Size: b.Size, cells: make([]PlayerNum, len(b.cells))}
	copy(newB.cells, b.cells)
	return newB
}

// Valid returns whether pos is within the board.
func (b *Board) Valid(pos Pos) bool {
	return pos.Row >= 0 && int(pos.Row) < b.Size && pos.Col >= 0 && int(pos.Col) < b.Size
}

func (b *Board) index(pos Pos) int {
	return int(pos.Row)*b.Size + int(pos.Col)
}

// At returns the owner of the cell at pos, or PlayerNone if it is empty or out of the board.
func (b *Board) At(pos Pos) PlayerNum {
	if !b.Valid(pos) {
		return PlayerNone
	}
	return b.cells[b.index(pos)]
}

// IsEmpty returns whether pos is on the board and empty.
func (b *Board) IsEmpty(pos Pos) bool {
	return b.Valid(pos) && b.cells[b.index(pos)] == PlayerNone
}

// Set the cell at pos to player (PlayerNone clears it). It doesn't check whether the cell was empty.
func (b *Board) Set(pos Pos, player PlayerNum) error {
	if !b.Valid(pos) {
		return errors.Errorf("position %s out of the %dx%d board", pos, b.Size, b.Size)
	}
	if player != PlayerNone && !player.Valid() {
		return errors.Errorf("invalid cell value %d at %s", player, pos)
	}
	b.cells[b.index(pos)] = player
	return nil
}

// Act returns a new board with player's stone placed at move. The receiver is not changed.
//
// It panics if move doesn't address an empty cell: callers must only use legal moves.
func (b *Board) Act(move Move, player PlayerNum) *Board {
	if !player.Valid() {
		exceptions.Panicf("Board.Act(%s, %s): invalid player", move, player)
	}
	if !b.IsEmpty(move) {
		exceptions.Panicf("Board.Act(%s, %s): cell is not empty (holds %s) or is out of the %dx%d board",
			move, player, b.At(move), b.Size, b.Size)
	}
	newB := b.Clone()
	newB.cells[newB.index(move)] = player
	return newB
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	count := 0
	for _, cell := range b.cells {
		if cell != PlayerNone {
			count++
		}
	}
	return count
}

// Full returns whether there are no empty cells left.
func (b *Board) Full() bool {
	return b.Occupied() == len(b.cells)
}

// Count returns the number of stones of the given player.
func (b *Board) Count(player PlayerNum) int {
	count := 0
	for _, cell := range b.cells {
		if cell == player {
			count++
		}
	}
	return count
}

// EmptyPositions returns the empty cells in board-scan (row-major) order.
func (b *Board) EmptyPositions() []Pos {
	poss := make([]Pos, 0, len(b.cells))
	for idx, cell := range b.cells {
		if cell == PlayerNone {
			poss = append(poss, Pos{Row: int8(idx / b.Size), Col: int8(idx % b.Size)})
		}
	}
	return poss
}

// Equal returns whether both boards have the same size and cells.
func (b *Board) Equal(b2 *Board) bool {
	if b.Size != b2.Size {
		return false
	}
	for idx, cell := range b.cells {
		if b2.cells[idx] != cell {
			return false
		}
	}
	return true
}

// CellLetters used by String: empty, first and second player.
var CellLetters = [...]string{".", "X", "O"}

// String returns one line per row, using CellLetters.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.Size {
		for col := range b.Size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(CellLetters[b.cells[row*b.Size+col]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
