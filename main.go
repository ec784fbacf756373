package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"checkers/engine"
	"checkers/experiments"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/player"
	"checkers/render"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, demo, bench, experiment")
	difficulty := flag.String("difficulty", "medium", "AI difficulty in play mode: easy, medium or hard")
	color := flag.String("color", "white", "Colour played by the human in play mode")
	white := flag.String("white", "easy", "White player in demo mode: easy, medium, hard or random")
	black := flag.String("black", "hard", "Black player in demo mode: easy, medium, hard or random")
	games := flag.Int("games", 0, "Games per match up in experiment mode (0 for the default)")
	concurrency := flag.Int("concurrency", 0, "Games played in parallel in experiment mode (0 for the default)")
	depth := flag.Int("depth", 0, "Overrides the search depth of every AI (0 keeps the tier depth)")
	out := flag.String("out", "experiments", "Directory for experiment records, empty to skip writing")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random players")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = play(ctx, *difficulty, *color, *depth)
	case "demo":
		err = demo(ctx, *white, *black, *depth, *seed)
	case "bench":
		err = bench(*depth, *out)
	case "experiment":
		err = experiment(ctx, *games, *concurrency, *depth, *out, *seed)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error().Err(err).Msgf("%s failed", *mode)
		os.Exit(1)
	}
}

// newPlayer builds a player from a difficulty name or "random".
func newPlayer(name string, depth int, seed uint64) (player.Player, error) {
	if strings.EqualFold(name, "random") {
		return player.NewRandom(seed), nil
	}
	d, err := player.ParseDifficulty(name)
	if err != nil {
		return nil, err
	}
	if depth <= 0 {
		return player.NewAI(d), nil
	}
	settings := d.Settings()
	return player.NewCustomAI(fmt.Sprintf("AI %s (depth %d)", d, depth), depth,
		searcher.WithAlgorithm(settings.Algorithm),
		searcher.WithEvaluator(settings.Evaluator),
	), nil
}

func play(ctx context.Context, difficulty, color string, depth int) error {
	ai, err := newPlayer(difficulty, depth, 0)
	if err != nil {
		return err
	}

	renderer := render.NewText(os.Stdin, os.Stdout)
	human := player.NewHuman("You", renderer)

	var e *engine.Engine
	switch strings.ToLower(color) {
	case "white", "w":
		e = engine.NewEngine(human, ai, engine.WithRenderer(renderer))
	case "black", "b":
		e = engine.NewEngine(ai, human, engine.WithRenderer(renderer))
	default:
		return fmt.Errorf("unknown colour %q", color)
	}

	renderer.ShowMessage(fmt.Sprintf("You play %s against %s. White moves first.", strings.ToLower(color), ai.Name()))
	_, err = e.Run(ctx)
	return err
}

func demo(ctx context.Context, white, black string, depth int, seed uint64) error {
	whitePlayer, err := newPlayer(white, depth, seed)
	if err != nil {
		return err
	}
	blackPlayer, err := newPlayer(black, depth, seed+1)
	if err != nil {
		return err
	}

	renderer := render.NewText(os.Stdin, os.Stdout)
	e := engine.NewEngine(whitePlayer, blackPlayer,
		engine.WithRenderer(renderer),
		engine.WithCollector(metrics.NewCollector()),
	)

	result, err := e.Run(ctx)
	if err != nil {
		return err
	}

	whiteNodes, blackNodes := 0, 0
	for _, mm := range result.MoveMetrics {
		if mm.Player == game.White.String() {
			whiteNodes += mm.Nodes
		} else {
			blackNodes += mm.Nodes
		}
	}
	log.Info().Msgf("nodes explored: %s %d, %s %d", whitePlayer.Name(), whiteNodes, blackPlayer.Name(), blackNodes)
	return nil
}

func bench(depth int, out string) error {
	opts := experiments.DefaultBenchmarkOptions()
	if depth > 0 {
		opts.MaxDepth = depth
	}
	opts.OutputDir = out

	records, err := experiments.RunSearchBenchmark(opts)
	if err != nil {
		return err
	}
	experiments.PrintBenchmark(os.Stdout, records)
	return nil
}

func experiment(ctx context.Context, games, concurrency, depth int, out string, seed uint64) error {
	opts := experiments.DefaultOptions()
	if games > 0 {
		opts.Games = games
	}
	if concurrency > 0 {
		opts.Concurrency = concurrency
	}
	opts.Depth = depth
	opts.OutputDir = out
	opts.Seed = seed

	summary, err := experiments.RunTournament(ctx, opts)
	if err != nil {
		return err
	}

	for _, config := range experiments.AgentConfigs(opts) {
		fmt.Printf("%-10s %3d wins\n", config.Name, summary.Wins[config.ID])
	}
	fmt.Printf("%-10s %3d\n", "Draws", summary.Draws)
	return nil
}
