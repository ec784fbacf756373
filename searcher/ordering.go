package searcher

import (
	"checkers/game"

	"golang.org/x/exp/slices"
)

type orderedMove struct {
	move game.Move
	key  int
}

// movePriority ranks captures (longer chains first), then promotions.
func movePriority(board *game.Board, move game.Move) int {
	priority := 0

	if move.IsCapture() {
		priority += CapturePriority + move.CaptureCount()*CaptureCountPriority
	}

	cell := board.Cell(move.Start())
	if !cell.IsEmpty() && cell.Piece() == game.Pawn && move.End().Row == cell.Player().PromotionRow() {
		priority += PromotionPriority
	}

	return priority
}

// orderMoves returns the moves sorted by descending priority. Equal
// priorities keep generation order; the input slice is not modified.
func orderMoves(board *game.Board, moves []game.Move) []game.Move {
	scored := make([]orderedMove, len(moves))
	for i, m := range moves {
		scored[i] = orderedMove{move: m, key: movePriority(board, m)}
	}

	slices.SortStableFunc(scored, func(a, b orderedMove) int {
		return b.key - a.key
	})

	ordered := make([]game.Move, len(scored))
	for i, om := range scored {
		ordered[i] = om.move
	}
	return ordered
}
