package player

import (
	"fmt"

	"checkers/game"
	"checkers/searcher"
)

// AI chooses moves with a fixed-depth search.
type AI struct {
	name      string
	searcher  *searcher.Searcher
	lastStats searcher.SearchStats
}

// NewAI returns an AI playing at the given tier. Extra options are applied
// after the tier's settings and may override them.
func NewAI(d Difficulty, options ...searcher.Option) *AI {
	settings := d.Settings()
	opts := []searcher.Option{
		searcher.WithAlgorithm(settings.Algorithm),
		searcher.WithEvaluator(settings.Evaluator),
	}
	return NewCustomAI(fmt.Sprintf("AI %s", d), settings.Depth, append(opts, options...)...)
}

func NewCustomAI(name string, depth int, options ...searcher.Option) *AI {
	return &AI{
		name:     name,
		searcher: searcher.NewSearcher(depth, options...),
	}
}

func (a *AI) ChooseMove(board *game.Board) (game.Move, error) {
	move, ok, stats := a.searcher.ChooseMove(board)
	a.lastStats = stats
	if !ok {
		return game.Move{}, ErrNoMoves
	}
	return move, nil
}

func (a *AI) Name() string {
	return a.name
}

// LastStats returns the statistics of the most recent search.
func (a *AI) LastStats() searcher.SearchStats {
	return a.lastStats
}

func (a *AI) Searcher() *searcher.Searcher {
	return a.searcher
}
