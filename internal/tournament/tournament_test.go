package tournament

import (
	"context"
	_ "github.com/janpfeifer/hexGo/internal/players/default"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestStarterFor(t *testing.T) {
	var got []PlayerNum
	for idx := range 4 {
		got = append(got, StarterFor(idx, 4))
	}
	assert.Equal(t, []PlayerNum{PlayerFirst, PlayerFirst, PlayerSecond, PlayerSecond}, got)

	got = nil
	for idx := range 3 {
		got = append(got, StarterFor(idx, 3))
	}
	assert.Equal(t, []PlayerNum{PlayerFirst, PlayerFirst, PlayerSecond}, got)
}

func TestPlayMatch(t *testing.T) {
	for _, rules := range []Rules{HexRules{}, SquareRules{}} {
		for _, starter := range Players {
			tour := &Tournament{Rules: rules, BoardSize: 4, Configs: [2]string{"random,seed=1", "random,seed=2"}}
			var movers []PlayerNum
			tour.OnMove = func(m *Match, player PlayerNum, move Move) {
				assert.Equal(t, player, m.Board.At(move))
				movers = append(movers, player)
			}
			match, err := tour.PlayMatch(context.Background(), 0, starter)
			require.NoError(t, err)
			assert.True(t, match.Outcome.IsFinished())
			assert.Equal(t, OutcomeOf(rules, match.Board), match.Outcome)
			assert.Equal(t, len(match.Moves), match.Board.Occupied())
			require.Len(t, movers, len(match.Moves))
			for idx, player := range movers {
				want := starter
				if idx%2 == 1 {
					want = Opponent(starter)
				}
				assert.Equal(t, want, player)
			}
			if _, isHex := rules.(HexRules); isHex {
				assert.NotEqual(t, Draw, match.Outcome, "hex matches can't end in a draw")
			}
		}
	}
}

func TestRun(t *testing.T) {
	// An exhaustive search on a 3x3 board always wins the matches it starts.
	tour := &Tournament{
		Rules:       HexRules{},
		BoardSize:   3,
		Configs:     [2]string{"ab,max_depth=9", "random,seed=3"},
		NumMatches:  6,
		Parallelism: 2,
	}
	var mu sync.Mutex
	var matches []*Match
	tour.OnMatchEnd = func(m *Match, r *Results) {
		mu.Lock()
		defer mu.Unlock()
		matches = append(matches, m)
	}
	results, err := tour.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, results.Played)
	assert.Equal(t, 6, results.Total)
	assert.Equal(t, 0, results.Draws)
	assert.Equal(t, 6, results.Wins[0]+results.Wins[1])
	assert.Equal(t, 3, results.WinsAsStarter[0])
	assert.GreaterOrEqual(t, results.Scores()[0], 3)
	require.Len(t, matches, 6)
	for _, m := range matches {
		if m.Starter == PlayerFirst {
			assert.Equal(t, FirstWins, m.Outcome, "%s", m)
		}
	}
	assert.Contains(t, results.String(), "Played 6 of 6: AI-1 (Black): ")
}

func TestRunErrors(t *testing.T) {
	tour := &Tournament{Rules: HexRules{}, BoardSize: 3, Configs: [2]string{"ab", "mcts"}, NumMatches: 2}
	_, err := tour.Run(context.Background())
	assert.Error(t, err)

	tour.Configs[1] = "random"
	tour.NumMatches = 0
	_, err = tour.Run(context.Background())
	assert.Error(t, err)

	tour.NumMatches = 2
	tour.BoardSize = 0
	_, err = tour.Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tour := &Tournament{Rules: HexRules{}, BoardSize: 5, Configs: [2]string{"random", "random"}, NumMatches: 4}
	results, err := tour.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, results.Played)
}
