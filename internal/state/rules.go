package state

import (
	"github.com/janpfeifer/hexGo/internal/generics"
	"github.com/pkg/errors"
)

// Rules is the oracle consulted by the players: which moves are legal, and whether a player
// has won.
//
// Implementations must be pure functions of their inputs, and must not change the board.
type Rules interface {
	// LegalMoves returns all empty cells, in the deterministic board-scan (row-major) order.
	LegalMoves(b *Board) []Move

	// Winner returns player if its connection goal is met on b, or PlayerNone otherwise.
	Winner(player PlayerNum, b *Board) PlayerNum

	// String returns the name of the rules.
	String() string
}

// HexRules are the standard connection rules on a rhombus of hexagons: each cell touches up to
// 6 neighbours.
//
// PlayerFirst connects the top row to the bottom row, PlayerSecond connects the left column
// to the right column.
type HexRules struct{}

// SquareRules use the same goals as HexRules, but cells only connect to their 4 orthogonal
// neighbours. Unlike in HexRules, a full board may have no winner, which is a draw.
type SquareRules struct{}

var (
	// hexNeighbours on a rhombus board stored in row-major order.
	hexNeighbours    = []Pos{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}
	squareNeighbours = []Pos{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

	_ Rules = HexRules{}
	_ Rules = SquareRules{}
)

// LegalMoves implements Rules.
func (HexRules) LegalMoves(b *Board) []Move { return b.EmptyPositions() }

// Winner implements Rules.
func (HexRules) Winner(player PlayerNum, b *Board) PlayerNum {
	return connectedWinner(player, b, hexNeighbours)
}

// String implements Rules.
func (HexRules) String() string { return "hex" }

// LegalMoves implements Rules.
func (SquareRules) LegalMoves(b *Board) []Move { return b.EmptyPositions() }

// Winner implements Rules.
func (SquareRules) Winner(player PlayerNum, b *Board) PlayerNum {
	return connectedWinner(player, b, squareNeighbours)
}

// String implements Rules.
func (SquareRules) String() string { return "square" }

// RulesByName returns the Rules for "hex" or "square".
func RulesByName(name string) (Rules, error) {
	switch name {
	case "", "hex":
		return HexRules{}, nil
	case "square":
		return SquareRules{}, nil
	}
	return nil, errors.Errorf("unknown rules %q, valid values are \"hex\" or \"square\"", name)
}

// connectedWinner runs a BFS over player's stones starting at its starting edge, and returns
// player if it reaches the opposing edge.
func connectedWinner(player PlayerNum, b *Board, neighbours []Pos) PlayerNum {
	if !player.Valid() {
		return PlayerNone
	}
	// Positions along the starting edge, and the test for the goal edge.
	start := make([]Pos, 0, b.Size)
	last := int8(b.Size - 1)
	isGoal := func(pos Pos) bool { return pos.Row == last }
	for ii := range int8(b.Size) {
		pos := Pos{Row: 0, Col: ii}
		if player == PlayerSecond {
			pos = Pos{Row: ii, Col: 0}
		}
		if b.At(pos) == player {
			start = append(start, pos)
		}
	}
	if player == PlayerSecond {
		isGoal = func(pos Pos) bool { return pos.Col == last }
	}

	visited := generics.SetWith(start...)
	toVisit := start
	for len(toVisit) > 0 {
		pos := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if isGoal(pos) {
			return player
		}
		for _, delta := range neighbours {
			next := Pos{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
			if b.At(next) != player || visited.Has(next) {
				continue
			}
			visited.Insert(next)
			toVisit = append(toVisit, next)
		}
	}
	return PlayerNone
}

// Outcome of a board position.
type Outcome uint8

const (
	NoWinner Outcome = iota
	FirstWins
	SecondWins
	Draw
)

var outcomeNames = [...]string{"NoWinner", "FirstWins", "SecondWins", "Draw"}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if int(o) >= len(outcomeNames) {
		return "Outcome(?)"
	}
	return outcomeNames[o]
}

// Winner returns the winning player of the outcome, or PlayerNone for NoWinner and Draw.
func (o Outcome) Winner() PlayerNum {
	switch o {
	case FirstWins:
		return PlayerFirst
	case SecondWins:
		return PlayerSecond
	}
	return PlayerNone
}

// IsFinished returns true for a win or a draw.
func (o Outcome) IsFinished() bool {
	return o != NoWinner
}

// OutcomeOf checks both players for a win, and otherwise reports a Draw if no legal moves
// are left.
func OutcomeOf(rules Rules, b *Board) Outcome {
	if rules.Winner(PlayerFirst, b) == PlayerFirst {
		return FirstWins
	}
	if rules.Winner(PlayerSecond, b) == PlayerSecond {
		return SecondWins
	}
	if len(rules.LegalMoves(b)) == 0 {
		return Draw
	}
	return NoWinner
}
