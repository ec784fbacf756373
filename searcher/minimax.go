package searcher

import (
	"math"

	"checkers/game"
)

// terminalScore evaluates a leaf from the maximizing side's point of view.
func terminalScore(board *game.Board, maximizing bool, evaluator game.Evaluator) float64 {
	score := evaluator.Evaluate(board)
	if maximizing {
		return score
	}
	return -score
}

// Minimax explores every legal move down to depth plies and returns the
// best score with the move reaching it. ok is false at terminal nodes.
// Ties keep the first move in generation order.
func Minimax(board *game.Board, depth int, maximizing bool, evaluator game.Evaluator, stats *SearchStats) (score float64, best game.Move, ok bool) {
	stats.NodesExplored++

	moves := board.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		return terminalScore(board, maximizing, evaluator), game.Move{}, false
	}

	if maximizing {
		score = math.Inf(-1)
	} else {
		score = math.Inf(1)
	}

	for _, move := range moves {
		child, _, _ := Minimax(board.Play(move), depth-1, !maximizing, evaluator, stats)

		improves := child > score
		if !maximizing {
			improves = child < score
		}
		if !ok || improves {
			score, best, ok = child, move, true
		}
	}

	return score, best, ok
}
