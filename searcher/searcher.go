package searcher

import (
	"math"
	"time"

	"checkers/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher runs a fixed-depth search with a configured algorithm and evaluator.
type Searcher struct {
	depth     int
	algorithm Algorithm
	evaluator game.Evaluator
	ordering  bool
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *Searcher) {
		s.algorithm = algorithm
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(s *Searcher) {
		if evaluator != nil {
			s.evaluator = evaluator
		}
	}
}

// WithMoveOrdering toggles capture-first ordering in alpha-beta. Minimax
// always searches in generation order.
func WithMoveOrdering(enabled bool) Option {
	return func(s *Searcher) {
		s.ordering = enabled
	}
}

func NewSearcher(depth int, options ...Option) *Searcher {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	s := &Searcher{ // Default values
		depth:     depth,
		algorithm: AlphaBetaSearch,
		evaluator: game.MaterialEvaluator{},
		ordering:  true,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Algorithm() Algorithm {
	return s.algorithm
}

func (s *Searcher) Evaluator() game.Evaluator {
	return s.evaluator
}

// ChooseMove searches from the side to move on board. ok is false when that
// side has no legal move; recognizing game over is left to the caller.
// The board is never modified.
func (s *Searcher) ChooseMove(board *game.Board) (move game.Move, ok bool, stats SearchStats) {
	start := time.Now()

	var score float64
	switch s.algorithm {
	case MinimaxSearch:
		score, move, ok = Minimax(board, s.depth, true, s.evaluator, &stats)
	default:
		score, move, ok = AlphaBeta(board, s.depth, math.Inf(-1), math.Inf(1), true, s.evaluator, &stats, s.ordering)
	}

	stats.Duration = time.Since(start)
	stats.DepthReached = s.depth

	log.Debug().
		Str("algorithm", s.algorithm.String()).
		Str("evaluator", s.evaluator.Name()).
		Int("depth", s.depth).
		Int("nodes", stats.NodesExplored).
		Dur("duration", stats.Duration).
		Float64("score", score).
		Msg("search completed")

	return move, ok, stats
}

// ChooseMove searches board with either algorithm from a full window.
func ChooseMove(board *game.Board, depth int, evaluator game.Evaluator, useAlphaBeta bool) (game.Move, bool, SearchStats) {
	algorithm := MinimaxSearch
	if useAlphaBeta {
		algorithm = AlphaBetaSearch
	}
	return NewSearcher(depth, WithAlgorithm(algorithm), WithEvaluator(evaluator)).ChooseMove(board)
}
