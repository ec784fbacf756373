package engine

import (
	"fmt"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/render"
)

// Result describes how a game ended.
type Result struct {
	Status      gamemaster.Status
	Winner      game.Player
	HasWinner   bool
	Moves       []game.Move
	Board       *game.Board // Final position
	Game        metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

func (r Result) String() string {
	if r.HasWinner {
		return fmt.Sprintf("%s wins (%s) after %d moves", r.Winner, r.Status, len(r.Moves))
	}
	return fmt.Sprintf("%s after %d moves", r.Status, len(r.Moves))
}

type Option func(e *Engine)

// WithBoard starts the game from board instead of the initial position.
func WithBoard(board *game.Board) Option {
	return func(e *Engine) {
		e.board = board.Clone()
	}
}

func WithRenderer(renderer render.Renderer) Option {
	return func(e *Engine) {
		e.renderer = renderer
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = collector
	}
}

// WithMaxTurns sets the number of moves after which the game is drawn. Zero
// removes the limit.
func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		e.maxTurns = maxTurns
	}
}

func defaults(e *Engine) {
	e.board = game.InitialBoard()
	e.collector = metrics.NewDummyCollector()
	e.maxTurns = meta.MAX_TURNS
}
