package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"checkers/render"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

// statsReporter is implemented by players that search for their moves.
type statsReporter interface {
	LastStats() searcher.SearchStats
}

// Engine plays one game between two players, refereed by a gamemaster.
type Engine struct {
	players   map[game.Player]player.Player
	board     *game.Board
	renderer  render.Renderer
	collector metrics.Collector
	maxTurns  int
}

func NewEngine(white, black player.Player, options ...Option) *Engine {
	if white == nil || black == nil {
		panic("both players are required")
	}
	e := &Engine{
		players: map[game.Player]player.Player{
			game.White: white,
			game.Black: black,
		},
	}
	defaults(e)
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is won, resigned or drawn, or
// until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	referee := gamemaster.NewReferee(e.board, e.maxTurns)
	if e.renderer != nil {
		defer e.renderer.Cleanup()
	}

	e.collector.Start(e.board.CurrentPlayer.String())
	log.Info().Msgf("%s (White) vs %s (Black), %s to move",
		e.players[game.White].Name(), e.players[game.Black].Name(), e.board.CurrentPlayer)

	for !referee.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		board := referee.Board()
		current := board.CurrentPlayer
		p := e.players[current]

		if e.renderer != nil {
			e.renderer.Render(board)
		}

		start := time.Now()
		move, err := p.ChooseMove(board)
		elapsed := time.Since(start)

		if errors.Is(err, player.ErrResigned) {
			log.Info().Msgf("%s (%s) resigned", p.Name(), current)
			if err := referee.Resign(current); err != nil {
				return Result{}, err
			}
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("%s failed to choose a move: %w", p.Name(), err)
		}

		if err := referee.Play(move); err != nil {
			return Result{}, fmt.Errorf("%s: %w", p.Name(), err)
		}

		metric := metrics.MoveMetric{
			Step:     referee.Turns(),
			Player:   current.String(),
			Move:     move.String(),
			Captures: move.CaptureCount(),
			Duration: elapsed,
		}
		if reporter, ok := p.(statsReporter); ok {
			stats := reporter.LastStats()
			metric.Nodes = stats.NodesExplored
			metric.Depth = stats.DepthReached
			metric.Duration = stats.Duration
		}
		e.collector.AddMove(metric)

		log.Debug().
			Int("turn", metric.Step).
			Str("player", p.Name()).
			Str("move", metric.Move).
			Int("nodes", metric.Nodes).
			Dur("duration", metric.Duration).
			Msg("move played")

		if e.renderer != nil {
			if metric.Nodes > 0 {
				e.renderer.ShowMessage(fmt.Sprintf("%s played %s (%d nodes, %s)", p.Name(), move, metric.Nodes, metric.Duration.Round(time.Microsecond)))
			} else {
				e.renderer.ShowMessage(fmt.Sprintf("%s played %s", p.Name(), move))
			}
		}
	}

	result := Result{
		Status: referee.Status(),
		Moves:  referee.History(),
		Board:  referee.Board(),
	}
	winnerName := ""
	if winner, ok := referee.Winner(); ok {
		result.Winner, result.HasWinner = winner, true
		winnerName = winner.String()
	}
	result.Game, result.MoveMetrics = e.collector.Complete(winnerName, result.Status.String())

	if e.renderer != nil {
		e.renderer.Render(result.Board)
		e.renderer.ShowMessage(result.String())
	}
	log.Info().Msgf("game over: %s", result)

	return result, nil
}
