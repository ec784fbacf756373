package game

// Player identifies one of the two sides.
type Player int

const (
	White Player = iota
	Black
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// PromotionRow is the row on which this player's pawns become kings.
func (p Player) PromotionRow() int {
	if p == White {
		return 0
	}
	return Size - 1
}

// HomeRow is the row this player's pieces start on and defend.
func (p Player) HomeRow() int {
	return p.Opponent().PromotionRow()
}

// Piece is the kind of a piece on the board.
type Piece int

const (
	Pawn Piece = iota
	King
)

func (p Piece) String() string {
	if p == Pawn {
		return "Pawn"
	}
	return "King"
}

// CellState is the content of a single square.
type CellState int

const (
	Empty CellState = iota
	WhitePawn
	WhiteKing
	BlackPawn
	BlackKing
)

// CellOf builds the cell state holding the given piece.
func CellOf(player Player, piece Piece) CellState {
	switch {
	case player == White && piece == Pawn:
		return WhitePawn
	case player == White:
		return WhiteKing
	case piece == Pawn:
		return BlackPawn
	default:
		return BlackKing
	}
}

func (c CellState) IsEmpty() bool {
	return c == Empty
}

// Player returns the owner of the piece. Meaningless for an empty cell.
func (c CellState) Player() Player {
	if c == WhitePawn || c == WhiteKing {
		return White
	}
	return Black
}

// Piece returns the kind of the piece. Meaningless for an empty cell.
func (c CellState) Piece() Piece {
	if c == WhitePawn || c == BlackPawn {
		return Pawn
	}
	return King
}

func (c CellState) String() string {
	switch c {
	case WhitePawn:
		return "w"
	case WhiteKing:
		return "W"
	case BlackPawn:
		return "b"
	case BlackKing:
		return "B"
	default:
		return "."
	}
}
