package player

import (
	"errors"

	"checkers/game"
	"checkers/render"
)

// Human asks a renderer for every move.
type Human struct {
	name     string
	renderer render.Renderer
}

func NewHuman(name string, renderer render.Renderer) *Human {
	return &Human{
		name:     name,
		renderer: renderer,
	}
}

func (h *Human) ChooseMove(board *game.Board) (game.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}

	move, err := h.renderer.WaitForMove(board, moves)
	if errors.Is(err, render.ErrQuit) {
		return game.Move{}, ErrResigned
	}
	return move, err
}

func (h *Human) Name() string {
	return h.name
}
