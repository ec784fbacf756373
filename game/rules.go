package game

type direction struct {
	dr, dc int
}

var kingDirections = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

var (
	whitePawnDirections = []direction{{-1, -1}, {-1, 1}} // White moves up the board
	blackPawnDirections = []direction{{1, -1}, {1, 1}}
)

func pawnDirections(player Player) []direction {
	if player == White {
		return whitePawnDirections
	}
	return blackPawnDirections
}

// LegalMoves returns the legal moves of the player to move.
func (b *Board) LegalMoves() []Move {
	return GenerateLegalMoves(b, b.CurrentPlayer)
}

// GenerateLegalMoves returns every legal move for player. Captures are
// mandatory: when at least one exists, only captures are returned.
func GenerateLegalMoves(b *Board, player Player) []Move {
	if captures := generateCaptureMoves(b, player); len(captures) > 0 {
		return captures
	}
	return generateSimpleMoves(b, player)
}

// IsGameOver reports whether the player to move is stuck.
func (b *Board) IsGameOver() bool {
	return len(b.LegalMoves()) == 0
}

// Winner returns the opponent of the stuck player once the game is over.
func (b *Board) Winner() (Player, bool) {
	if !b.IsGameOver() {
		return 0, false
	}
	return b.CurrentPlayer.Opponent(), true
}

func generateSimpleMoves(b *Board, player Player) []Move {
	var moves []Move

	for _, from := range b.GetAllPieces(player) {
		if b.Cell(from).Piece() == Pawn {
			for _, dir := range pawnDirections(player) {
				to := from.step(dir, 1)
				if to.Playable() && b.Cell(to).IsEmpty() {
					moves = append(moves, Move{Path: []Position{from, to}})
				}
			}
			continue
		}

		// Kings slide any distance until blocked
		for _, dir := range kingDirections {
			for distance := 1; ; distance++ {
				to := from.step(dir, distance)
				if !to.Playable() || !b.Cell(to).IsEmpty() {
					break
				}
				moves = append(moves, Move{Path: []Position{from, to}})
			}
		}
	}

	return moves
}

func generateCaptureMoves(b *Board, player Player) []Move {
	var captures []Move

	for _, from := range b.GetAllPieces(player) {
		search := captureSearch{board: b, player: player}
		captures = append(captures, search.find(from, b.Cell(from).Piece(), []Position{from}, 0)...)
	}

	return captures
}

// captureSearch discovers the maximal capture chains of one piece. The board
// is never modified: jumped pieces stay in place and are tracked in the
// captured set, and the moving piece still occupies its start square, so a
// chain can neither land on nor fly through it.
type captureSearch struct {
	board  *Board
	player Player
}

func (s captureSearch) isEmpty(p Position) bool {
	return s.board.Cell(p).IsEmpty()
}

func (s captureSearch) isEnemy(p Position) bool {
	cell := s.board.Cell(p)
	return !cell.IsEmpty() && cell.Player() != s.player
}

// find returns every maximal chain continuing from at. path and captured are
// never mutated; each continuation extends its own copy.
func (s captureSearch) find(at Position, piece Piece, path []Position, captured Squares) []Move {
	var found []Move

	jump := func(enemy, landing Position, next Piece) {
		nextPath := append(path[:len(path):len(path)], landing)
		nextCaptured := captured.With(enemy)

		continuations := s.find(landing, next, nextPath, nextCaptured)
		if len(continuations) > 0 {
			found = append(found, continuations...)
			return
		}
		found = append(found, Move{Path: nextPath, Captured: nextCaptured})
	}

	if piece == Pawn {
		for _, dir := range pawnDirections(s.player) {
			enemy, landing := at.step(dir, 1), at.step(dir, 2)
			if !landing.Playable() || captured.Has(enemy) || !s.isEnemy(enemy) || !s.isEmpty(landing) {
				continue
			}
			next := Pawn
			if landing.Row == s.player.PromotionRow() {
				next = King
			}
			jump(enemy, landing, next)
		}
		return found
	}

	for _, dir := range kingDirections {
		var enemy Position
		seen := false
		for distance := 1; ; distance++ {
			p := at.step(dir, distance)
			if !p.Playable() {
				break
			}
			if !s.isEmpty(p) {
				// Only the first uncaptured enemy on the diagonal can be jumped
				if seen || captured.Has(p) || !s.isEnemy(p) {
					break
				}
				enemy, seen = p, true
				continue
			}
			if seen {
				jump(enemy, p, King)
			}
		}
	}
	return found
}
