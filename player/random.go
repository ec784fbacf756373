package player

import (
	"checkers/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It serves as a baseline
// opponent in experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(board *game.Board) (game.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

func (r *Random) Name() string {
	return "Random"
}
