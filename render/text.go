package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"checkers/game"

	"golang.org/x/exp/slices"
)

// Text renders to a terminal-like writer and reads moves line by line.
//
// A move is entered either as its number in the printed menu or as its path,
// e.g. "5,0 3,2 1,4". A path with only a start and an end square is accepted
// when it identifies a single legal move. "q" resigns.
type Text struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewText(in io.Reader, out io.Writer) *Text {
	return &Text{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (t *Text) Render(board *game.Board) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, board.String())
}

func (t *Text) WaitForMove(board *game.Board, moves []game.Move) (game.Move, error) {
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("no moves to choose from")
	}

	fmt.Fprintf(t.out, "Legal moves for %s:\n", board.CurrentPlayer)
	for i, m := range moves {
		fmt.Fprintf(t.out, "  %2d) %s\n", i+1, m)
	}

	for {
		fmt.Fprint(t.out, "Your move (number, path like '5,0 4,1', or q): ")
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return game.Move{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, ErrQuit
		}

		line := strings.TrimSpace(t.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return game.Move{}, ErrQuit
		}

		move, err := parseMove(line, moves)
		if err != nil {
			fmt.Fprintf(t.out, "Invalid move: %v\n", err)
			continue
		}
		return move, nil
	}
}

func (t *Text) ShowMessage(message string) {
	fmt.Fprintln(t.out, message)
}

func (t *Text) Cleanup() {
	fmt.Fprintln(t.out)
}

// parseMove resolves user input to one of moves.
func parseMove(input string, moves []game.Move) (game.Move, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(moves) {
			return game.Move{}, fmt.Errorf("choose a number between 1 and %d", len(moves))
		}
		return moves[n-1], nil
	}

	path, err := parsePath(input)
	if err != nil {
		return game.Move{}, err
	}

	i := slices.IndexFunc(moves, func(m game.Move) bool {
		return slices.Equal(m.Path, path)
	})
	if i >= 0 {
		return moves[i], nil
	}

	if len(path) == 2 {
		var matches []game.Move
		for _, m := range moves {
			if m.Start() == path[0] && m.End() == path[1] {
				matches = append(matches, m)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
		default:
			return game.Move{}, fmt.Errorf("%d moves go from %v to %v, enter the full path", len(matches), path[0], path[1])
		}
	}

	return game.Move{}, fmt.Errorf("%q is not a legal move", input)
}

func parsePath(input string) ([]game.Position, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '-' || r == '>' || r == '(' || r == ')'
	})
	// A printed capture ends with its count, e.g. "(x2)"
	if n := len(fields); n > 0 && isCaptureCount(fields[n-1]) {
		fields = fields[:n-1]
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("a path needs at least two squares")
	}

	path := make([]game.Position, 0, len(fields))
	for _, field := range fields {
		row, col, found := strings.Cut(field, ",")
		if !found {
			return nil, fmt.Errorf("square %q should look like row,col", field)
		}
		r, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return nil, fmt.Errorf("invalid row in %q: %w", field, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return nil, fmt.Errorf("invalid column in %q: %w", field, err)
		}
		p := game.Position{Row: r, Col: c}
		if !p.OnBoard() {
			return nil, fmt.Errorf("square %v is off the board", p)
		}
		path = append(path, p)
	}
	return path, nil
}

func isCaptureCount(field string) bool {
	count, found := strings.CutPrefix(field, "x")
	if !found {
		return false
	}
	_, err := strconv.Atoi(count)
	return err == nil
}
