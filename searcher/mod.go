package searcher

import (
	"fmt"
	"strings"
	"time"
)

// Move ordering priorities for alpha-beta
const (
	CapturePriority      = 100
	CaptureCountPriority = 10
	PromotionPriority    = 50
)

// SearchStats is the telemetry of a single search.
type SearchStats struct {
	NodesExplored int
	Duration      time.Duration
	DepthReached  int
}

type Algorithm int

const (
	MinimaxSearch Algorithm = iota
	AlphaBetaSearch
)

func (a Algorithm) String() string {
	if a == MinimaxSearch {
		return "minimax"
	}
	return "alphabeta"
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "minimax":
		return MinimaxSearch, nil
	case "alphabeta", "alpha-beta":
		return AlphaBetaSearch, nil
	}
	return 0, fmt.Errorf("unknown search algorithm %q", name)
}
