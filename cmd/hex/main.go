// hex plays a match on the terminal: human vs AI (default), AI vs AI (-watch) or human vs human (-hotseat).
//
// Defaults for the board size, rules and AI configurations are read from the user's config file
// ($XDG_CONFIG_HOME/hexgo/config.json) if present. Flags explicitly set take precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/hexGo/internal/config"
	"github.com/janpfeifer/hexGo/internal/players"
	_ "github.com/janpfeifer/hexGo/internal/players/default"
	. "github.com/janpfeifer/hexGo/internal/state"
	"github.com/janpfeifer/hexGo/internal/ui/cli"
	"github.com/janpfeifer/hexGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	flagHotseat    = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch      = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagFirst      = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagSize       = flag.Int("size", config.Default.BoardSize, "Size of the side of the board.")
	flagRules      = flag.String("rules", config.Default.Rules, "Rules: \"hex\" or \"square\" (4 neighbours, draws are possible).")
	flagAIConfig   = flag.String("config", config.Default.AIConfig, "AI configuration against which to play")
	flagAIConfig2  = flag.String("config2", config.Default.AIConfig2, "Second AI configuration, if playing AI vs AI with --watch")
	flagQuiet      = flag.Bool("quiet", false, "Quiet mode for when watching AI play, only the moves and the last board position is printed.")
	flagSaveConfig = flag.Bool("save_config", false, "Save the board size, rules and AI configurations as the user defaults.")

	// aiPlayers indexed by PlayerNum-1: if nil, it's a human playing.
	aiPlayers = [NumPlayers]players.Player{nil, nil}

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg, cfgPath, err := config.Load()
	if err != nil {
		klog.Exitf("Failed to load configuration: %+v", err)
	}
	if cfgPath != "" {
		klog.V(1).Infof("Loaded defaults from %q", cfgPath)
	}
	if err = cfg.MergeFlags(flag.CommandLine); err != nil {
		klog.Exitf("Invalid flags: %+v", err)
	}
	if *flagSaveConfig {
		path := must.M1(cfg.Save())
		fmt.Printf("Defaults saved to %q\n", path)
	}
	rules := must.M1(cfg.NewRules())

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	createPlayers(rules, cfg)
	defer func() {
		for _, p := range aiPlayers {
			if p != nil {
				p.Finalize()
			}
		}
	}()

	board := NewBoard(cfg.BoardSize)
	ui := cli.New(true, false)
	toPlay := PlayerFirst
	var outcome Outcome
	fmt.Printf("%s connects top and bottom rows, %s connects left and right columns (%s rules).\n",
		ui.PlayerString(PlayerFirst), ui.PlayerString(PlayerSecond), rules)

	for outcome = OutcomeOf(rules, board); !outcome.IsFinished(); outcome = OutcomeOf(rules, board) {
		if globalCtx.Err() != nil {
			klog.Exitf("Match interrupted: %s", globalCtx.Err())
		}
		aiPlayer := aiPlayers[toPlay-1]
		if aiPlayer == nil {
			board, _, err = ui.RunNextMove(rules, board, toPlay)
			if err != nil {
				klog.Exitf("Failed to run match: %+v", err)
			}
		} else {
			// AI plays.
			if !*flagWatch || !*flagQuiet {
				ui.Print(board, toPlay)
			}
			fmt.Printf("\t%s (%s) move: ", ui.PlayerString(toPlay), aiPlayer)
			s := spinning.New(globalCtx)
			move, ok := players.SelectMove(aiPlayer, rules, board, toPlay)
			s.Done()
			if !ok {
				fmt.Println("no moves available")
				outcome = Draw
				break
			}
			fmt.Printf(" %s\n", move)
			board = board.Act(move, toPlay)
		}
		toPlay = Opponent(toPlay)
	}

	ui.Print(board, PlayerNone)
	ui.PrintOutcome(outcome)
}

// createPlayers in aiPlayers.
func createPlayers(rules Rules, cfg *config.Config) {
	if *flagHotseat && *flagWatch {
		klog.Exitf("--hotseat and --watch cannot be used together")
	}
	if *flagHotseat {
		// Both players are human, nothing to do.
		return
	}

	// Index of the AI player.
	var aiIdx int
	if *flagWatch {
		aiIdx = 0
	} else {
		switch strings.ToLower(*flagFirst) {
		case "human":
			aiIdx = 1
		case "ai":
			aiIdx = 0
		case "":
			aiIdx = rand.IntN(2)
		default:
			exceptions.Panicf("invalid --first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
		}
	}
	aiPlayers[aiIdx] = must.M1(players.New(rules, cfg.AIConfig))
	klog.V(1).Infof("AI playing %s: %s", Players[aiIdx], aiPlayers[aiIdx])
	if !*flagWatch {
		return
	}

	// Create second AI
	otherIdx := 1 - aiIdx
	aiPlayers[otherIdx] = must.M1(players.New(rules, cfg.AIConfig2))
	klog.V(1).Infof("AI playing %s: %s", Players[otherIdx], aiPlayers[otherIdx])
}
