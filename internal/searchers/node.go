package searchers

import (
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/hexGo/internal/state"
)

// Node of a search tree: a snapshot of the board plus the bookkeeping to link it into the tree.
//
// Each node owns its board: it is cloned when the node is created, so sibling branches never
// observe each other's changes. Nodes don't cache whether the board is won or drawn, the Rules
// must be asked.
type Node struct {
	Board *Board

	// Move that produced this node from its parent. Only valid if HasMove (not set for the root).
	Move    Move
	HasMove bool

	// Player who moved into this node. For the root, it is the opponent of the player to act.
	Player PlayerNum

	Parent   *Node
	Children []*Node
}

// NewRoot creates the root of a search tree where toPlay is the player to act.
// The board is copied, so later changes to b are not seen by the tree.
func NewRoot(b *Board, toPlay PlayerNum) *Node {
	return &Node{Board: b.Clone(), Player: Opponent(toPlay)}
}

// ToPlay returns the player to act at this node.
func (n *Node) ToPlay() PlayerNum {
	return Opponent(n.Player)
}

// Expand creates a child with mover's stone placed at move, and appends it to the node's children.
//
// It panics if move doesn't address an empty cell: only moves returned by Rules.LegalMoves
// should be given.
func (n *Node) Expand(move Move, mover PlayerNum) *Node {
	if !mover.Valid() {
		exceptions.Panicf("Node.Expand(%s, %s): invalid mover", move, mover)
	}
	if !n.Board.IsEmpty(move) {
		exceptions.Panicf("Node.Expand(%s, %s): cell is not empty (holds %s) or is out of the %dx%d board",
			move, mover, n.Board.At(move), n.Board.Size, n.Board.Size)
	}
	child := &Node{
		Board:   n.Board.Act(move, mover),
		Move:    move,
		HasMove: true,
		Player:  mover,
		Parent:  n,
	}
	n.Children = append(n.Children, child)
	return child
}

// Release drops the links to the children, so the explored subtree can be garbage collected.
func (n *Node) Release() {
	for _, child := range n.Children {
		child.Parent = nil
	}
	n.Children = nil
}

// Depth returns the number of moves from the root to this node.
func (n *Node) Depth() int {
	depth := 0
	for node := n; node.Parent != nil; node = node.Parent {
		depth++
	}
	return depth
}

// Path returns the moves from the root to this node.
func (n *Node) Path() []Move {
	path := make([]Move, n.Depth())
	for node, ii := n, len(path)-1; node.Parent != nil; node, ii = node.Parent, ii-1 {
		path[ii] = node.Move
	}
	return path
}

// CountNodes returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) CountNodes() int {
	count := 1
	for _, child := range n.Children {
		count += child.CountNodes()
	}
	return count
}
