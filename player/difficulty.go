package player

import (
	"fmt"
	"strings"

	"checkers/game"
	"checkers/searcher"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every tier from weakest to strongest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Settings is the search configuration behind a difficulty tier.
type Settings struct {
	Depth     int
	Evaluator game.Evaluator
	Algorithm searcher.Algorithm
}

func (d Difficulty) Settings() Settings {
	switch d {
	case Easy:
		return Settings{Depth: 2, Evaluator: game.MaterialEvaluator{}, Algorithm: searcher.MinimaxSearch}
	case Medium:
		return Settings{Depth: 4, Evaluator: game.MobilityEvaluator{}, Algorithm: searcher.AlphaBetaSearch}
	default:
		return Settings{Depth: 7, Evaluator: game.AdvancedEvaluator{}, Algorithm: searcher.AlphaBetaSearch}
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
