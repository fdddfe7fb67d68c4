// Package statetest provides helper functions to create tests using the game state.
package statetest

import (
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/hexGo/internal/state"
	"strings"
)

// BuildBoard from a text layout, one line per row, using the letters in state.CellLetters
// ("." empty, "X" first player, "O" second player). Spaces are ignored, as are empty lines.
//
// It panics if the layout is not square or holds an unknown letter.
func BuildBoard(layout string) *Board {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	b := NewBoard(len(rows))
	for row, line := range rows {
		if len(line) != len(rows) {
			exceptions.Panicf("statetest.BuildBoard: row %d has %d cells, board has %d rows", row, len(line), len(rows))
		}
		for col, letter := range line {
			player := PlayerNone
			switch string(letter) {
			case CellLetters[PlayerNone]:
			case CellLetters[PlayerFirst]:
				player = PlayerFirst
			case CellLetters[PlayerSecond]:
				player = PlayerSecond
			default:
				exceptions.Panicf("statetest.BuildBoard: unknown cell %q at row %d", letter, row)
			}
			if err := b.Set(Pos{Row: int8(row), Col: int8(col)}, player); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Reflect returns the board mirrored through its center: (r, c) -> (n-1-r, n-1-c).
func Reflect(b *Board) *Board {
	n := int8(b.Size)
	newB := NewBoard(b.Size)
	for row := range n {
		for col := range n {
			_ = newB.Set(Pos{Row: n - 1 - row, Col: n - 1 - col}, b.At(Pos{Row: row, Col: col}))
		}
	}
	return newB
}
