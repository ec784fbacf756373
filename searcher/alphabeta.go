package searcher

import (
	"math"

	"checkers/game"
)

// AlphaBeta returns the same root score as Minimax while skipping siblings
// once beta <= alpha. With ordering enabled, captures and promotions are
// searched first to tighten the window early.
func AlphaBeta(board *game.Board, depth int, alpha, beta float64, maximizing bool, evaluator game.Evaluator, stats *SearchStats, ordering bool) (score float64, best game.Move, ok bool) {
	stats.NodesExplored++

	moves := board.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		return terminalScore(board, maximizing, evaluator), game.Move{}, false
	}

	if ordering {
		moves = orderMoves(board, moves)
	}

	if maximizing {
		score = math.Inf(-1)
		for _, move := range moves {
			child, _, _ := AlphaBeta(board.Play(move), depth-1, alpha, beta, false, evaluator, stats, ordering)
			if !ok || child > score {
				score, best, ok = child, move, true
			}
			alpha = math.Max(alpha, child)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return score, best, ok
	}

	score = math.Inf(1)
	for _, move := range moves {
		child, _, _ := AlphaBeta(board.Play(move), depth-1, alpha, beta, true, evaluator, stats, ordering)
		if !ok || child < score {
			score, best, ok = child, move, true
		}
		beta = math.Min(beta, child)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return score, best, ok
}
