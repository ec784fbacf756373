package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("summarizing a game", func(t *testing.T) {
		c := NewCollector()
		c.Start("White")
		c.AddMove(MoveMetric{Step: 1, Player: "White", Nodes: 57, Depth: 2})
		c.AddMove(MoveMetric{Step: 2, Player: "Black", Captures: 1})

		game, moves := c.Complete("White", "won")

		require.Equal(t, "White", game.StartingPlayer)
		require.Equal(t, "White", game.Winner)
		require.Equal(t, "won", game.Outcome)
		require.Equal(t, 2, game.TotalMoves)
		require.Equal(t, 57, game.TotalNodes)
		require.False(t, game.EndTime.Before(game.StartTime))
		require.Len(t, moves, 2)
	})

	t.Run("start resets recorded moves", func(t *testing.T) {
		c := NewCollector()
		c.Start("White")
		c.AddMove(MoveMetric{Step: 1})
		c.Start("Black")

		game, moves := c.Complete("", "draw (turn limit)")

		require.Zero(t, game.TotalMoves)
		require.Empty(t, moves)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("White")
		c.AddMove(MoveMetric{Step: 1})

		game, moves := c.Complete("White", "won")

		require.Equal(t, GameMetric{}, game)
		require.Nil(t, moves)
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "tournament")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "tournament"), filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Name: "Random", Difficulty: "random", Seed: 42},
			{ID: 1, Name: "AI Easy", Difficulty: "Easy", Depth: 2, Evaluator: "Material", Algorithm: "minimax"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3, "Header and two configs")
		require.Equal(t, []string{"id", "name", "difficulty", "depth", "evaluator", "algorithm", "seed"}, rows[0])
		require.Equal(t, []string{"0", "Random", "random", "0", "", "", "42"}, rows[1])
		require.Equal(t, []string{"1", "AI Easy", "Easy", "2", "Material", "minimax", "0"}, rows[2])
	})

	t.Run("writing game and move records", func(t *testing.T) {
		id := uuid.New()
		start := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    id,
			White: 1,
			Black: 0,
			GameMetric: GameMetric{
				StartingPlayer: "White",
				Winner:         "White",
				Outcome:        "won",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     31,
				TotalNodes:     1200,
			},
		}})
		require.NoError(t, err)

		err = w.WriteMoveRecords([]MoveRecord{{
			Game:       id,
			MoveMetric: MoveMetric{Step: 1, Player: "White", Move: "(5,0) -> (4,1)", Nodes: 57, Depth: 2, Duration: time.Millisecond},
		}})
		require.NoError(t, err)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, id.String(), games[1][0])
		require.Equal(t, "2024-10-01T12:00:00Z", games[1][6])
		require.Equal(t, "1s", games[1][8])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{id.String(), "1", "White", "(5,0) -> (4,1)", "0", "57", "2", "1ms"}, moves[1])
	})

	t.Run("writing benchmark records", func(t *testing.T) {
		err := w.WriteBenchmarkRecords([]BenchmarkRecord{
			{Difficulty: "Easy", Algorithm: "minimax", Evaluator: "Material", Depth: 2, Nodes: 57, Duration: 2 * time.Millisecond, Move: "(5,0) -> (4,1)"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "benchmark_records.csv"))
		require.Equal(t, []string{"Easy", "minimax", "Material", "2", "57", "2ms", "(5,0) -> (4,1)"}, rows[1])
	})

	t.Run("failing on a missing directory", func(t *testing.T) {
		broken := &Writer{baseDir: filepath.Join(root, "does", "not", "exist")}

		err := broken.WriteBenchmarkRecords(nil)

		require.Error(t, err)
	})
}
