package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// Position is a (row, column) coordinate on the board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// OnBoard reports whether the position lies inside the 8x8 grid.
func (p Position) OnBoard() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Playable reports whether the position is a dark square that may hold a piece.
func (p Position) Playable() bool {
	return p.OnBoard() && (p.Row+p.Col)%2 == 1
}

func (p Position) step(dir direction, distance int) Position {
	return Position{Row: p.Row + dir.dr*distance, Col: p.Col + dir.dc*distance}
}

func (p Position) bit() uint64 {
	return 1 << uint(p.Row*Size+p.Col)
}

// Squares is an immutable set of board positions. Adding a position returns
// a new set and leaves the receiver untouched.
type Squares uint64

// SquaresOf builds a set from the given positions.
func SquaresOf(positions ...Position) Squares {
	var s Squares
	for _, p := range positions {
		s = s.With(p)
	}
	return s
}

func (s Squares) Has(p Position) bool {
	return p.OnBoard() && uint64(s)&p.bit() != 0
}

func (s Squares) With(p Position) Squares {
	return Squares(uint64(s) | p.bit())
}

func (s Squares) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Positions lists the members in row-major order.
func (s Squares) Positions() []Position {
	positions := make([]Position, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		index := bits.TrailingZeros64(rest)
		positions = append(positions, Position{Row: index / Size, Col: index % Size})
	}
	return positions
}

// Move is a path of squares visited by one piece plus the squares whose
// pieces it captures. A simple move has a path of exactly two squares; a
// capture chain has one entry per landing square, start included.
type Move struct {
	Path     []Position
	Captured Squares
}

// NewMove builds a move from a path and the captured positions.
func NewMove(path []Position, captured ...Position) Move {
	return Move{Path: path, Captured: SquaresOf(captured...)}
}

func (m Move) Start() Position {
	return m.Path[0]
}

func (m Move) End() Position {
	return m.Path[len(m.Path)-1]
}

func (m Move) IsCapture() bool {
	return m.Captured != 0
}

func (m Move) CaptureCount() int {
	return m.Captured.Len()
}

func (m Move) CapturedPositions() []Position {
	return m.Captured.Positions()
}

// Equal reports whether both moves follow the same path and capture the same squares.
func (m Move) Equal(other Move) bool {
	if m.Captured != other.Captured || len(m.Path) != len(other.Path) {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != other.Path[i] {
			return false
		}
	}
	return true
}

// String renders the full path, e.g. "(5,0) -> (3,2) -> (1,4) (x2)".
func (m Move) String() string {
	if len(m.Path) == 0 {
		return "<none>"
	}
	steps := make([]string, len(m.Path))
	for i, p := range m.Path {
		steps[i] = p.String()
	}
	s := strings.Join(steps, " -> ")
	if m.IsCapture() {
		s += fmt.Sprintf(" (x%d)", m.CaptureCount())
	}
	return s
}
