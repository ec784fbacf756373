package experiments

import (
	"fmt"
	"io"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/player"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

type BenchmarkOptions struct {
	Board     *game.Board // Defaults to the initial position
	MaxDepth  int         // Caps every tier's depth when positive
	OutputDir string      // Records are not written when empty
}

func DefaultBenchmarkOptions() BenchmarkOptions {
	return BenchmarkOptions{
		MaxDepth:  meta.BENCHMARK_DEPTH,
		OutputDir: "experiments",
	}
}

// RunSearchBenchmark searches the same position at every difficulty tier,
// once with minimax and once with alpha-beta, so that node counts and times
// can be compared.
func RunSearchBenchmark(opts BenchmarkOptions) ([]metrics.BenchmarkRecord, error) {
	board := opts.Board
	if board == nil {
		board = game.InitialBoard()
	}

	records := []metrics.BenchmarkRecord{}
	for _, d := range player.Difficulties {
		settings := d.Settings()
		depth := settings.Depth
		if opts.MaxDepth > 0 && depth > opts.MaxDepth {
			depth = opts.MaxDepth
		}

		for _, algorithm := range []searcher.Algorithm{searcher.MinimaxSearch, searcher.AlphaBetaSearch} {
			s := searcher.NewSearcher(depth,
				searcher.WithAlgorithm(algorithm),
				searcher.WithEvaluator(settings.Evaluator),
			)
			move, _, stats := s.ChooseMove(board)

			records = append(records, metrics.BenchmarkRecord{
				Difficulty: d.String(),
				Algorithm:  algorithm.String(),
				Evaluator:  settings.Evaluator.Name(),
				Depth:      depth,
				Nodes:      stats.NodesExplored,
				Duration:   stats.Duration,
				Move:       move.String(),
			})
			log.Info().Msgf("benchmarked %s %s at depth %d: %d nodes in %s", d, algorithm, depth, stats.NodesExplored, stats.Duration)
		}
	}

	if opts.OutputDir == "" {
		return records, nil
	}

	writer, err := metrics.NewWriter(opts.OutputDir, "search_benchmark")
	if err != nil {
		return records, fmt.Errorf("failed to create benchmark writer: %w", err)
	}
	if err := writer.WriteBenchmarkRecords(records); err != nil {
		return records, fmt.Errorf("failed to write benchmark records: %w", err)
	}
	log.Info().Msgf("stored benchmark records in %s", writer.Dir())

	return records, nil
}

// PrintBenchmark writes one line per record.
func PrintBenchmark(w io.Writer, records []metrics.BenchmarkRecord) {
	fmt.Fprintf(w, "%-8s %-10s %-18s %5s %10s %12s  %s\n", "tier", "algorithm", "evaluator", "depth", "nodes", "time", "move")
	for _, r := range records {
		fmt.Fprintf(w, "%-8s %-10s %-18s %5d %10d %12s  %s\n", r.Difficulty, r.Algorithm, r.Evaluator, r.Depth, r.Nodes, r.Duration, r.Move)
	}
}
