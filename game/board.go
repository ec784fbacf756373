package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Board is the 8x8 grid plus the side to move. Grid is an array, so copying a
// Board value copies every cell.
type Board struct {
	Grid          [Size][Size]CellState
	CurrentPlayer Player
}

// NewBoard returns an empty board with the given player to move.
func NewBoard(current Player) *Board {
	return &Board{CurrentPlayer: current}
}

// InitialBoard returns the starting position: Black pawns on rows 0-2,
// White pawns on rows 5-7, White to move.
func InitialBoard() *Board {
	b := NewBoard(White)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !(Position{Row: row, Col: col}).Playable() {
				continue
			}
			switch {
			case row < 3:
				b.Grid[row][col] = BlackPawn
			case row >= Size-3:
				b.Grid[row][col] = WhitePawn
			}
		}
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// GetPiece returns the owner and kind of the piece at (row, col); ok is false
// when the square is empty.
func (b *Board) GetPiece(row, col int) (player Player, piece Piece, ok bool) {
	cell := b.Grid[row][col]
	if cell.IsEmpty() {
		return 0, 0, false
	}
	return cell.Player(), cell.Piece(), true
}

func (b *Board) Cell(p Position) CellState {
	return b.Grid[p.Row][p.Col]
}

func (b *Board) SetPiece(row, col int, cell CellState) {
	b.Grid[row][col] = cell
}

func (b *Board) RemovePiece(row, col int) {
	b.Grid[row][col] = Empty
}

// ApplyMove plays a move in place: the moving piece leaves its start square,
// captured pieces are removed, a pawn ending on its promotion row becomes a
// king, and the turn passes. The move is trusted to come from the rule engine.
func (b *Board) ApplyMove(move Move) {
	start, end := move.Start(), move.End()

	cell := b.Cell(start)
	b.RemovePiece(start.Row, start.Col)

	for _, p := range move.CapturedPositions() {
		b.RemovePiece(p.Row, p.Col)
	}

	if !cell.IsEmpty() && cell.Piece() == Pawn && end.Row == cell.Player().PromotionRow() {
		cell = CellOf(cell.Player(), King)
	}

	b.SetPiece(end.Row, end.Col, cell)
	b.CurrentPlayer = b.CurrentPlayer.Opponent()
}

// Play returns a copy of the board with the move applied, leaving b untouched.
func (b *Board) Play(move Move) *Board {
	next := b.Clone()
	next.ApplyMove(move)
	return next
}

func (b *Board) CountPieces(player Player) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := b.Grid[row][col]
			if !cell.IsEmpty() && cell.Player() == player {
				count++
			}
		}
	}
	return count
}

// GetAllPieces returns the positions of the player's pieces in row-major order.
func (b *Board) GetAllPieces(player Player) []Position {
	var positions []Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := b.Grid[row][col]
			if !cell.IsEmpty() && cell.Player() == player {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.CurrentPlayer))

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			binary.Write(hasher, binary.LittleEndian, int8(b.Grid[row][col]))
		}
	}

	return StateHash(hasher.Sum64())
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	sb.WriteString("  +-+-+-+-+-+-+-+-+\n")
	for row := 0; row < Size; row++ {
		cells := make([]string, Size)
		for col := 0; col < Size; col++ {
			cells[col] = b.Grid[row][col].String()
		}
		fmt.Fprintf(&sb, "%d|%s|\n", row, strings.Join(cells, "|"))
		sb.WriteString("  +-+-+-+-+-+-+-+-+\n")
	}
	fmt.Fprintf(&sb, "To move: %s", b.CurrentPlayer)
	return sb.String()
}
