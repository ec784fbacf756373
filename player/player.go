package player

import (
	"errors"

	"checkers/game"
)

var (
	ErrResigned = errors.New("player resigned")
	ErrNoMoves  = errors.New("no legal moves available")
)

// Player picks a move for the side to move on the given board.
type Player interface {
	ChooseMove(board *game.Board) (game.Move, error)
	Name() string
}
