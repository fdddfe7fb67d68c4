// Package players provides a factory of AI players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/hexGo/internal/generics"
	"github.com/janpfeifer/hexGo/internal/parameters"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/pkg/errors"
	"slices"
	"strings"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen for player on the given board, and the score the player
	// expects from it.
	//
	// If ok is false there are no moves available: the caller should treat it as a draw.
	Play(b *Board, player PlayerNum) (move Move, score float32, ok bool)

	// Finalize is called at the end of a match.
	Finalize()

	// String describes the player and its configuration.
	String() string
}

// Module creates players of one type. It must consume (delete) from params all the parameters
// it uses, any left-over parameter is reported as an error by New.
type Module interface {
	NewPlayer(rules Rules, params parameters.Params) (Player, error)
}

var (
	// Registered modules, by name.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends. The name is the first keyword of
// the configuration string selecting the module.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// RegisteredModules returns the sorted names of the registered modules.
func RegisteredModules() []string {
	return generics.KeysSlice(keywordToModules)
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "ab"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//	config: the module name (e.g. "random", "minimax" or "ab") followed by a comma-separated list of optional
//		parameters with optional values associated, e.g. "ab,max_depth=4,sigma=1.5".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(rules Rules, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	if len(keywordToModules) == 0 {
		return nil, errors.New("no registered player modules. Perhaps you need to import _ \"github.com/janpfeifer/hexGo/internal/players/default\" to your binary ?")
	}
	moduleName, _, _ := strings.Cut(config, ",")
	moduleName = strings.TrimSpace(moduleName)
	module, ok := keywordToModules[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown AI player %q in config %q, registered players are %q",
			moduleName, config, RegisteredModules())
	}

	params := parameters.NewFromConfigString(config)
	player, err := module.NewPlayer(rules, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", moduleName)
	}
	delete(params, moduleName)
	if len(params) > 0 {
		return nil, errors.Errorf("unknown AI parameters \"%s\" passed to %q",
			strings.Join(generics.KeysSlice(params), "\", \""), moduleName)
	}
	return player, nil
}

// SelectMove asks p for its move for player on b, and checks that the move is one of the
// current legal moves: a move out of the legal set is a bug in the player, and it panics.
//
// If ok is false there are no moves available, and the caller should treat it as a draw.
func SelectMove(p Player, rules Rules, b *Board, player PlayerNum) (move Move, ok bool) {
	move, _, ok = p.Play(b, player)
	if !ok {
		return
	}
	if !slices.Contains(rules.LegalMoves(b), move) {
		exceptions.Panicf("player %s selected move %s for %s, which is not a legal move on the board:\n%s",
			p, move, player, b)
	}
	return
}
