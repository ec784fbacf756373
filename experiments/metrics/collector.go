package metrics

import (
	"sync"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   string
	Move     string
	Captures int
	Nodes    int // Zero for players that do not search
	Depth    int
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	TotalNodes     int
}

type Collector interface {
	Start(startingPlayer string)
	AddMove(move MoveMetric)
	Complete(winner, outcome string) (GameMetric, []MoveMetric)
}

type collector struct {
	mu             sync.Mutex
	startingPlayer string
	startTime      time.Time
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.startTime = time.Now()
	c.startingPlayer = startingPlayer
	c.moves = nil
}

func (c *collector) AddMove(move MoveMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.moves = append(c.moves, move)
}

func (c *collector) Complete(winner, outcome string) (GameMetric, []MoveMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := time.Now()
	nodes := 0
	for _, m := range c.moves {
		nodes += m.Nodes
	}

	return GameMetric{
		StartingPlayer: c.startingPlayer,
		Winner:         winner,
		Outcome:        outcome,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
		TotalNodes:     nodes,
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(startingPlayer string) {}
func (c *dummyCollector) AddMove(move MoveMetric)     {}
func (c *dummyCollector) Complete(winner, outcome string) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
