package players

import (
	"github.com/janpfeifer/hexGo/internal/searchers"
	. "github.com/janpfeifer/hexGo/internal/state"
	"k8s.io/klog/v2"
)

// SearcherPlayer is the standard set up for an AI: a searcher, and the evaluator configured within it.
// It implements the Player interface.
type SearcherPlayer struct {
	Searcher searchers.Searcher
}

// Assert that SearcherPlayer is a Player.
var _ Player = &SearcherPlayer{}

// NewSearcherPlayer returns a Player that plays the moves chosen by searcher.
func NewSearcherPlayer(searcher searchers.Searcher) *SearcherPlayer {
	return &SearcherPlayer{Searcher: searcher}
}

// Play implements the Player interface: it chooses a move given a Board.
func (s *SearcherPlayer) Play(b *Board, player PlayerNum) (move Move, score float32, ok bool) {
	move, score, ok = s.Searcher.Search(b, player)
	if klog.V(2).Enabled() {
		if ok {
			klog.Infof("Move #%d: AI (%s) playing %s as %s, score=%.3f", b.Occupied()+1, s.Searcher, move, player, score)
		} else {
			klog.Infof("Move #%d: AI (%s) has no move available as %s", b.Occupied()+1, s.Searcher, player)
		}
	}
	return
}

// String implements Player.
func (s *SearcherPlayer) String() string {
	if s.Searcher == nil {
		return "finalized player"
	}
	return s.Searcher.String()
}

// Finalize is called at the end of a match.
func (s *SearcherPlayer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("Player (searcher=%s) finalized", s.Searcher)
	}
	s.Searcher = nil
}
