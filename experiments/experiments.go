package experiments

import (
	"context"
	"fmt"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/player"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Games       int // Per match up
	Concurrency int
	MaxTurns    int
	OutputDir   string // Records are not written when empty
	Seed        uint64
	Depth       int // Overrides the tier depth when positive
}

func DefaultOptions() Options {
	return Options{
		Games:       meta.GAMES,
		Concurrency: meta.GO_ROUTINES,
		MaxTurns:    meta.MAX_TURNS,
		OutputDir:   "experiments",
	}
}

// MatchUp pairs two agents. Colours alternate from game to game, with
// White playing the first game.
type MatchUp struct {
	White metrics.AgentConfig
	Black metrics.AgentConfig
}

// Summary holds every record of an experiment. Wins are keyed by agent ID.
type Summary struct {
	Played int
	Wins   map[int]int
	Draws  int
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
}

// AgentConfigs describes the random baseline followed by every difficulty tier.
func AgentConfigs(opts Options) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{
		{ID: 0, Name: "Random", Difficulty: "random", Seed: opts.Seed},
	}
	for i, d := range player.Difficulties {
		settings := d.Settings()
		depth := settings.Depth
		if opts.Depth > 0 {
			depth = opts.Depth
		}
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Name:       fmt.Sprintf("AI %s", d),
			Difficulty: d.String(),
			Depth:      depth,
			Evaluator:  settings.Evaluator.Name(),
			Algorithm:  settings.Algorithm.String(),
		})
	}
	return configs
}

// RunTournament plays every agent against every other agent.
func RunTournament(ctx context.Context, opts Options) (Summary, error) {
	configs := AgentConfigs(opts)
	matchUps := []MatchUp{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, MatchUp{White: configs[i], Black: configs[j]})
		}
	}
	return runExperiment(ctx, "tournament", configs, matchUps, opts)
}

// RunDifficultyLadder plays each tier against the next stronger one.
func RunDifficultyLadder(ctx context.Context, opts Options) (Summary, error) {
	configs := AgentConfigs(opts)
	matchUps := []MatchUp{}
	for i := 0; i+1 < len(configs); i++ {
		matchUps = append(matchUps, MatchUp{White: configs[i], Black: configs[i+1]})
	}
	return runExperiment(ctx, "difficulty_ladder", configs, matchUps, opts)
}

type gameResult struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps []MatchUp, opts Options) (Summary, error) {
	if opts.Games < 1 {
		return Summary{}, fmt.Errorf("games per match up must be positive, got %d", opts.Games)
	}

	log.Info().Msgf("starting %s experiment with %d match ups of %d games...", name, len(matchUps), opts.Games)

	results := make([]gameResult, len(matchUps)*opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for mi, matchUp := range matchUps {
		for i := 0; i < opts.Games; i++ {
			white, black := matchUp.White, matchUp.Black
			if i%2 == 1 {
				white, black = black, white
			}
			slot := mi*opts.Games + i
			seed := opts.Seed + uint64(slot)
			mi, i := mi, i

			g.Go(func() error {
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, opts.Games)

				result, err := runGame(ctx, white, black, seed, opts.MaxTurns)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[slot] = result

				log.Info().Msgf("completed matchup %d of %d game %d with result: %s", mi+1, len(matchUps), i+1, result.game.Outcome)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("completed %s experiment", name)

	summary := summarize(results)
	if opts.OutputDir == "" {
		return summary, nil
	}

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(opts.OutputDir, name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return summary, nil
}

func summarize(results []gameResult) Summary {
	summary := Summary{Wins: map[int]int{}}
	for _, r := range results {
		summary.Played++
		summary.Games = append(summary.Games, r.game)
		summary.Moves = append(summary.Moves, r.moves...)

		switch r.game.Winner {
		case game.White.String():
			summary.Wins[r.game.White]++
		case game.Black.String():
			summary.Wins[r.game.Black]++
		default:
			summary.Draws++
		}
	}
	return summary
}

// runGame executes a single game between two agents
func runGame(ctx context.Context, white, black metrics.AgentConfig, seed uint64, maxTurns int) (gameResult, error) {
	whitePlayer, err := newPlayer(white, seed)
	if err != nil {
		return gameResult{}, err
	}
	blackPlayer, err := newPlayer(black, seed+1)
	if err != nil {
		return gameResult{}, err
	}

	e := engine.NewEngine(whitePlayer, blackPlayer,
		engine.WithCollector(metrics.NewCollector()),
		engine.WithMaxTurns(maxTurns),
	)

	result, err := e.Run(ctx)
	if err != nil {
		return gameResult{}, err
	}

	id := uuid.New()
	moves := make([]metrics.MoveRecord, len(result.MoveMetrics))
	for i, mm := range result.MoveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: mm}
	}

	return gameResult{
		game: metrics.GameRecord{
			ID:         id,
			White:      white.ID,
			Black:      black.ID,
			GameMetric: result.Game,
		},
		moves: moves,
	}, nil
}

func newPlayer(config metrics.AgentConfig, seed uint64) (player.Player, error) {
	if config.Difficulty == "random" {
		return player.NewRandom(config.Seed + seed), nil
	}

	d, err := player.ParseDifficulty(config.Difficulty)
	if err != nil {
		return nil, err
	}
	settings := d.Settings()

	depth := settings.Depth
	if config.Depth > 0 {
		depth = config.Depth
	}
	evaluator := settings.Evaluator
	if config.Evaluator != "" {
		evaluator, err = game.EvaluatorByName(config.Evaluator)
		if err != nil {
			return nil, err
		}
	}
	algorithm := settings.Algorithm
	if config.Algorithm != "" {
		algorithm, err = searcher.ParseAlgorithm(config.Algorithm)
		if err != nil {
			return nil, err
		}
	}

	return player.NewCustomAI(config.Name, depth,
		searcher.WithAlgorithm(algorithm),
		searcher.WithEvaluator(evaluator),
	), nil
}
