package game

// Size is the number of rows and columns of the board.
const Size = 8

// PiecesPerSide is the number of pawns each player starts with.
const PiecesPerSide = 12

type StateHash uint64

// Evaluator scores a board from the perspective of the player to move:
// positive values favor board.CurrentPlayer.
type Evaluator interface {
	Evaluate(board *Board) float64
	Name() string
}
