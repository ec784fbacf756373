package render

import (
	"errors"

	"checkers/game"
)

// ErrQuit is returned by WaitForMove when the user gives up or the input ends.
var ErrQuit = errors.New("user quit")

// Renderer is the boundary between the game loop and whoever watches or plays it.
type Renderer interface {
	// Render draws the board.
	Render(board *game.Board)
	// WaitForMove blocks until the user picks one of moves.
	WaitForMove(board *game.Board, moves []game.Move) (game.Move, error)
	ShowMessage(message string)
	Cleanup()
}
