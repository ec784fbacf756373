package experiments

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/stretchr/testify/require"
)

func TestAgentConfigs(t *testing.T) {
	configs := AgentConfigs(Options{Seed: 9, Depth: 1})

	require.Len(t, configs, 4)
	require.Equal(t, "random", configs[0].Difficulty)
	require.Equal(t, uint64(9), configs[0].Seed)
	for i, c := range configs {
		require.Equal(t, i, c.ID)
		if i > 0 {
			require.Equal(t, 1, c.Depth, "Depth override should apply to %s", c.Name)
		}
	}
	require.Equal(t, "Advanced", configs[3].Evaluator)
	require.Equal(t, "minimax", configs[1].Algorithm)
}

func TestNewPlayer(t *testing.T) {
	t.Run("random baseline", func(t *testing.T) {
		p, err := newPlayer(metrics.AgentConfig{Difficulty: "random"}, 1)
		require.NoError(t, err)
		require.Equal(t, "Random", p.Name())
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		_, err := newPlayer(metrics.AgentConfig{Difficulty: "grandmaster"}, 1)
		require.Error(t, err)
	})

	t.Run("unknown evaluator", func(t *testing.T) {
		_, err := newPlayer(metrics.AgentConfig{Difficulty: "Easy", Evaluator: "neural"}, 1)
		require.Error(t, err)
	})
}

func TestRunExperiment(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 0, Name: "Random", Difficulty: "random"},
		{ID: 1, Name: "AI Easy", Difficulty: "Easy", Depth: 1},
	}
	matchUps := []MatchUp{{White: configs[0], Black: configs[1]}}

	t.Run("playing and recording every game", func(t *testing.T) {
		dir := t.TempDir()
		opts := Options{Games: 4, Concurrency: 2, MaxTurns: 30, OutputDir: dir, Seed: 3}

		summary, err := runExperiment(context.Background(), "smoke", configs, matchUps, opts)

		require.NoError(t, err)
		require.Equal(t, 4, summary.Played)
		require.Len(t, summary.Games, 4)
		require.Equal(t, 4, summary.Wins[0]+summary.Wins[1]+summary.Draws)

		for i, record := range summary.Games {
			if i%2 == 0 {
				require.Equal(t, 0, record.White, "Game %d should start with the first agent as White", i)
			} else {
				require.Equal(t, 1, record.White, "Game %d should swap colours", i)
			}
			require.LessOrEqual(t, record.TotalMoves, 30)
		}

		moves := 0
		for _, g := range summary.Games {
			moves += g.TotalMoves
		}
		require.Len(t, summary.Moves, moves)

		runs, err := os.ReadDir(filepath.Join(dir, "smoke"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(dir, "smoke", runs[0].Name(), file))
		}
	})

	t.Run("rejecting an empty schedule", func(t *testing.T) {
		_, err := runExperiment(context.Background(), "smoke", configs, matchUps, Options{Games: 0})
		require.Error(t, err)
	})

	t.Run("stopping on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runExperiment(ctx, "smoke", configs, matchUps, Options{Games: 2, MaxTurns: 30})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSummarize(t *testing.T) {
	results := []gameResult{
		{game: metrics.GameRecord{White: 0, Black: 1, GameMetric: metrics.GameMetric{Winner: "Black"}}},
		{game: metrics.GameRecord{White: 1, Black: 0, GameMetric: metrics.GameMetric{Winner: "White"}}},
		{game: metrics.GameRecord{White: 0, Black: 1}},
	}

	summary := summarize(results)

	require.Equal(t, 3, summary.Played)
	require.Equal(t, 2, summary.Wins[1])
	require.Zero(t, summary.Wins[0])
	require.Equal(t, 1, summary.Draws)
}

func TestRunSearchBenchmark(t *testing.T) {
	dir := t.TempDir()

	records, err := RunSearchBenchmark(BenchmarkOptions{MaxDepth: 3, OutputDir: dir})

	require.NoError(t, err)
	require.Len(t, records, 6, "Two algorithms per tier")
	for i := 0; i < len(records); i += 2 {
		minimax, alphaBeta := records[i], records[i+1]
		require.Equal(t, "minimax", minimax.Algorithm)
		require.Equal(t, "alphabeta", alphaBeta.Algorithm)
		require.Equal(t, minimax.Depth, alphaBeta.Depth)
		require.LessOrEqual(t, alphaBeta.Nodes, minimax.Nodes, "%s tier", minimax.Difficulty)
	}
	require.Equal(t, 2, records[0].Depth, "Easy searches below the cap")
	require.Equal(t, 3, records[4].Depth, "Hard is capped")
	require.Equal(t, 57, records[0].Nodes)

	out := &bytes.Buffer{}
	PrintBenchmark(out, records)
	require.Contains(t, out.String(), "Material+Mobility")

	require.DirExists(t, filepath.Join(dir, "search_benchmark"))
}

func TestRunSearchBenchmarkOnCustomBoard(t *testing.T) {
	records, err := RunSearchBenchmark(BenchmarkOptions{Board: game.NewBoard(game.White), MaxDepth: 2})

	require.NoError(t, err)
	for _, r := range records {
		require.Equal(t, 1, r.Nodes, "Finished position is a single node")
		require.Equal(t, "<none>", r.Move)
	}
}
