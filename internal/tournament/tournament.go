// Package tournament runs a championship: a series of matches between the same two AI
// configurations, and tallies the results.
//
// The first AI always plays state.PlayerFirst (Black) and the second AI plays
// state.PlayerSecond (White). The first half of the matches is started by Black, the
// remaining half by White, so that neither configuration keeps the advantage of the first move.
package tournament

import (
	"context"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/hexGo/internal/players"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Tournament configures a championship between two AI configurations.
type Tournament struct {
	Rules     Rules
	BoardSize int

	// Configs of the AI players (see players.New): Configs[0] plays Black and Configs[1] plays White.
	// A new player is created for each match, so matches can run in parallel.
	Configs [2]string

	// NumMatches to play.
	NumMatches int

	// Parallelism is the maximum number of matches played simultaneously.
	// If <= 0 it uses GOMAXPROCS.
	Parallelism int

	// OnMove, if set, is called after every move. It may be called concurrently from different matches.
	OnMove func(match *Match, player PlayerNum, move Move)

	// OnMatchEnd, if set, is called at the end of every match, after the results are updated.
	// Calls are serialized.
	OnMatchEnd func(match *Match, results *Results)
}

// Match holds the state of one match.
type Match struct {
	// Index of the match in the tournament.
	Index int

	// Starter is the player that made the first move.
	Starter PlayerNum

	// Board is the current board, and at the end of the match the final board.
	Board *Board

	// Moves played so far, in order.
	Moves []Move

	// Outcome is set at the end of the match.
	Outcome Outcome
}

// String returns a short name of the match.
func (m *Match) String() string {
	return fmt.Sprintf("Match-%05d", m.Index)
}

// Results of a tournament. Indices refer to the AI configuration: 0 for Configs[0] (Black) and 1 for
// Configs[1] (White).
type Results struct {
	mu sync.Mutex

	Start time.Time

	// Wins of each AI, and how many of those were in matches it started.
	Wins, WinsAsStarter [2]int

	// Draws are only possible with rules where a full board may have no winner.
	Draws int

	Played, Total int
}

// Scores returns the number of wins of each AI.
func (r *Results) Scores() [2]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Wins
}

// record the outcome of a finished match. It must be called with the lock held.
func (r *Results) record(m *Match) {
	r.Played++
	winner := m.Outcome.Winner()
	if winner == PlayerNone {
		r.Draws++
		return
	}
	idx := int(winner) - 1
	r.Wins[idx]++
	if winner == m.Starter {
		r.WinsAsStarter[idx]++
	}
}

// String implements fmt.Stringer.
func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.Played, r.Total))
	for idx, player := range Players {
		parts = append(parts, fmt.Sprintf("AI-%d (%s): %d wins (%d as starter) / ",
			idx+1, player, r.Wins[idx], r.WinsAsStarter[idx]))
	}
	parts = append(parts, fmt.Sprintf("%d draws - %s", r.Draws, time.Since(r.Start).Round(time.Millisecond)))
	return strings.Join(parts, "")
}

// StarterFor returns the player that starts the match matchIdx out of numMatches:
// PlayerFirst for the first half, PlayerSecond for the remaining matches.
func StarterFor(matchIdx, numMatches int) PlayerNum {
	if 2*matchIdx < numMatches {
		return PlayerFirst
	}
	return PlayerSecond
}

// Run plays all the matches, and returns the results.
//
// If ctx is cancelled, the matches in progress are abandoned (they are not counted), and it returns the
// partial results along with the context error.
func (t *Tournament) Run(ctx context.Context) (*Results, error) {
	if err := ValidateSize(t.BoardSize); err != nil {
		return nil, err
	}
	if t.NumMatches <= 0 {
		return nil, errors.Errorf("invalid number of matches %d", t.NumMatches)
	}
	results := &Results{Start: time.Now(), Total: t.NumMatches}
	parallelism := t.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for matchIdx := range t.NumMatches {
		g.Go(func() error {
			match, err := t.PlayMatch(gCtx, matchIdx, StarterFor(matchIdx, t.NumMatches))
			if err != nil {
				return err
			}
			results.mu.Lock()
			defer results.mu.Unlock()
			results.record(match)
			if t.OnMatchEnd != nil {
				t.OnMatchEnd(match, results)
			}
			return nil
		})
	}
	err := g.Wait()
	if ctx.Err() != nil {
		return results, ctx.Err()
	}
	return results, err
}

// PlayMatch plays one match started by starter, creating new players from t.Configs.
//
// The context is checked between moves: if it is cancelled, the match is abandoned and the context
// error is returned. A player choosing an illegal move is also reported as an error.
func (t *Tournament) PlayMatch(ctx context.Context, matchIdx int, starter PlayerNum) (match *Match, err error) {
	var matchPlayers [NumPlayers]players.Player
	for idx, config := range t.Configs {
		matchPlayers[idx], err = players.New(t.Rules, config)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create AI-%d", idx+1)
		}
	}
	defer func() {
		for _, p := range matchPlayers {
			p.Finalize()
		}
	}()

	match = &Match{Index: matchIdx, Starter: starter, Board: NewBoard(t.BoardSize)}
	if klog.V(1).Enabled() {
		klog.Infof("Starting %s, %s starts", match, starter)
		defer func() {
			if err == nil {
				klog.Infof("Finished %s: %s after %d moves", match, match.Outcome, len(match.Moves))
			}
		}()
	}
	var playErr error
	err = exceptions.TryCatch[error](func() {
		playErr = match.play(ctx, t.Rules, matchPlayers, t.OnMove)
	})
	if err == nil {
		err = playErr
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "%s failed", match)
	}
	return match, nil
}

// play the match until it is finished or ctx is cancelled.
func (m *Match) play(ctx context.Context, rules Rules, matchPlayers [NumPlayers]players.Player,
	onMove func(*Match, PlayerNum, Move)) error {
	player := m.Starter
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Outcome = OutcomeOf(rules, m.Board)
		if m.Outcome.IsFinished() {
			return nil
		}
		if klog.V(2).Enabled() {
			klog.Infof("%s: %s at move #%d", m, player, len(m.Moves)+1)
		}
		move, ok := players.SelectMove(matchPlayers[player-1], rules, m.Board, player)
		if !ok {
			m.Outcome = Draw
			return nil
		}
		m.Board = m.Board.Act(move, player)
		m.Moves = append(m.Moves, move)
		if onMove != nil {
			onMove(m, player, move)
		}
		player = Opponent(player)
	}
}
