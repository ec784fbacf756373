package gamemaster

import (
	"errors"
	"fmt"

	"checkers/game"
	"checkers/meta"

	"golang.org/x/exp/slices"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

type Status int

const (
	InProgress Status = iota
	Won
	Resigned
	DrawByTurnLimit
	DrawByRepetition
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Resigned:
		return "resigned"
	case DrawByTurnLimit:
		return "draw (turn limit)"
	case DrawByRepetition:
		return "draw (repetition)"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) IsDraw() bool {
	return s == DrawByTurnLimit || s == DrawByRepetition
}

// Referee owns the authoritative board of one game. Every submitted move is
// checked against the rule engine before it is applied.
type Referee struct {
	board    *game.Board
	history  []game.Move
	seen     map[game.Board]int // Positions are compared in full, side to move included
	maxTurns int
	status   Status
	winner   game.Player
}

// NewReferee starts refereeing from board. A maxTurns of zero disables the
// turn limit.
func NewReferee(board *game.Board, maxTurns int) *Referee {
	if maxTurns < 0 {
		panic("max turns cannot be negative")
	}
	r := &Referee{
		board:    board.Clone(),
		seen:     map[game.Board]int{},
		maxTurns: maxTurns,
	}
	r.seen[*r.board]++
	r.updateStatus()
	return r
}

// Board returns a copy of the current position.
func (r *Referee) Board() *game.Board {
	return r.board.Clone()
}

func (r *Referee) Play(move game.Move) error {
	if r.IsGameOver() {
		return ErrGameOver
	}

	legalMoves := r.board.LegalMoves()
	i := slices.IndexFunc(legalMoves, move.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %v is not available to %v", ErrIllegalMove, move, r.board.CurrentPlayer)
	}

	r.board = r.board.Play(legalMoves[i])
	r.history = append(r.history, legalMoves[i])
	r.seen[*r.board]++
	r.updateStatus()

	return nil
}

// Resign ends the game in favour of the opponent of player.
func (r *Referee) Resign(player game.Player) error {
	if r.IsGameOver() {
		return ErrGameOver
	}
	r.status = Resigned
	r.winner = player.Opponent()
	return nil
}

func (r *Referee) updateStatus() {
	if winner, over := r.board.Winner(); over {
		r.status = Won
		r.winner = winner
		return
	}
	if r.seen[*r.board] >= meta.REPETITION_LIMIT {
		r.status = DrawByRepetition
		return
	}
	if r.maxTurns > 0 && len(r.history) >= r.maxTurns {
		r.status = DrawByTurnLimit
	}
}

func (r *Referee) IsGameOver() bool {
	return r.status != InProgress
}

func (r *Referee) Status() Status {
	return r.status
}

// Winner returns the winning side. ok is false while the game is in
// progress or when it ended in a draw.
func (r *Referee) Winner() (winner game.Player, ok bool) {
	if r.status == Won || r.status == Resigned {
		return r.winner, true
	}
	return 0, false
}

func (r *Referee) History() []game.Move {
	return slices.Clone(r.history)
}

func (r *Referee) Turns() int {
	return len(r.history)
}
