// compare runs a championship between two AI configurations, and prints the tally of wins.
//
// The first AI plays Black, the second plays White. The first half of the matches is started by Black,
// and the remaining half by White.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/hexGo/internal/config"
	_ "github.com/janpfeifer/hexGo/internal/players/default"
	"github.com/janpfeifer/hexGo/internal/profilers"
	"github.com/janpfeifer/hexGo/internal/state"
	"github.com/janpfeifer/hexGo/internal/tournament"
	"github.com/janpfeifer/hexGo/internal/ui/cli"
	"github.com/janpfeifer/hexGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"sync"
	"time"
)

var (
	flagSize        = flag.Int("size", config.Default.BoardSize, "Size of the side of the board.")
	flagRules       = flag.String("rules", config.Default.Rules, "Rules: \"hex\" or \"square\".")
	flagAIConfig    = flag.String("config", config.Default.AIConfig, "1st AI configuration, playing Black.")
	flagAIConfig2   = flag.String("config2", config.Default.AIConfig2, "2nd AI configuration, playing White.")
	flagNumMatches  = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set -parallelism=1.")
	flagQuiet = flag.Bool("quiet", false, "Only print the final results.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg, _, err := config.Load()
	if err != nil {
		klog.Exitf("Failed to load configuration: %+v", err)
	}
	must.M(cfg.MergeFlags(flag.CommandLine))

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	must.M(profilers.Setup(globalCtx))
	defer profilers.OnQuit()

	tour := &tournament.Tournament{
		Rules:       must.M1(cfg.NewRules()),
		BoardSize:   cfg.BoardSize,
		Configs:     [2]string{cfg.AIConfig, cfg.AIConfig2},
		NumMatches:  *flagNumMatches,
		Parallelism: *flagParallelism,
	}
	klog.V(1).Infof("AI-1 (Black): %q, AI-2 (White): %q, %dx%d board, %s rules",
		tour.Configs[0], tour.Configs[1], tour.BoardSize, tour.BoardSize, tour.Rules)
	if !*flagQuiet {
		tour.OnMatchEnd = func(_ *tournament.Match, r *tournament.Results) {
			fmt.Printf("\r%s\033[0K", r)
		}
	}
	if *flagPrintSteps {
		tour.OnMove = printStep
	}

	results, err := tour.Run(globalCtx)
	fmt.Println()
	if errors.Is(err, context.Canceled) {
		fmt.Printf("Interrupted: %s\n", err)
		err = nil
	}
	if err != nil {
		klog.Exitf("Tournament failed: %+v", err)
	}
	fmt.Println(results)
	scores := results.Scores()
	fmt.Printf("Scores: [%d, %d]\n", scores[0], scores[1])
}

var (
	stepUI   = cli.New(true, false)
	muStepUI sync.Mutex
)

// printStep prints the board after each move.
func printStep(match *tournament.Match, player state.PlayerNum, move state.Move) {
	muStepUI.Lock()
	defer muStepUI.Unlock()
	fmt.Printf("%s, move #%d: %s plays %s\n\n", match, len(match.Moves), stepUI.PlayerString(player), move)
	stepUI.PrintBoard(match.Board)
	fmt.Println()
	fmt.Println("------------------")
}
