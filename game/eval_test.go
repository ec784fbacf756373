package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaterialEvaluator(t *testing.T) {
	t.Run("scoring pawn against king", func(t *testing.T) {
		b := NewBoard(White)
		b.SetPiece(0, 0, WhitePawn)
		b.SetPiece(1, 1, BlackKing)

		require.Equal(t, -4.0, MaterialEvaluator{}.Evaluate(b), "1 pawn - 1 king should score -4")
	})

	t.Run("score is relative to the side to move", func(t *testing.T) {
		b := NewBoard(Black)
		b.SetPiece(0, 0, WhitePawn)
		b.SetPiece(1, 1, BlackKing)

		require.Equal(t, 4.0, MaterialEvaluator{}.Evaluate(b))
	})

	t.Run("initial position is balanced", func(t *testing.T) {
		require.Equal(t, 0.0, MaterialEvaluator{}.Evaluate(InitialBoard()))
	})
}

func TestMobilityEvaluator(t *testing.T) {
	t.Run("initial position is balanced", func(t *testing.T) {
		require.InDelta(t, 0.0, MobilityEvaluator{}.Evaluate(InitialBoard()), 1e-9)
	})

	t.Run("counting the opponent's moves", func(t *testing.T) {
		b := NewBoard(White)
		b.SetPiece(5, 0, WhitePawn) // 1 move
		b.SetPiece(0, 1, BlackPawn) // 2 moves

		require.InDelta(t, -0.1, MobilityEvaluator{}.Evaluate(b), 1e-9,
			"Equal material with one move fewer should score -0.1")
	})

	t.Run("evaluating leaves the board untouched", func(t *testing.T) {
		b := InitialBoard()
		MobilityEvaluator{}.Evaluate(b)

		require.Equal(t, InitialBoard(), b)
	})
}

func TestAdvancedEvaluator(t *testing.T) {
	t.Run("initial position is balanced", func(t *testing.T) {
		require.InDelta(t, 0.0, AdvancedEvaluator{}.Evaluate(InitialBoard()), 1e-9)
	})

	t.Run("rewarding a pawn about to promote", func(t *testing.T) {
		b := NewBoard(White)
		b.SetPiece(1, 2, WhitePawn)

		// material 1 + promotion threat 2*0.3 + mobility 2*0.1
		require.InDelta(t, 1.8, AdvancedEvaluator{}.Evaluate(b), 1e-9)

		b.CurrentPlayer = Black
		require.InDelta(t, -1.8, AdvancedEvaluator{}.Evaluate(b), 1e-9,
			"Same position should score negatively for the other side")
	})

	t.Run("rewarding centre control and home row defence", func(t *testing.T) {
		b := NewBoard(White)
		b.SetPiece(4, 3, WhiteKing) // centre
		b.SetPiece(7, 6, WhitePawn) // home row
		b.SetPiece(1, 6, BlackKing)

		withoutMobility := calculateMaterial(b) + calculatePositionBonus(b)

		require.InDelta(t, 1.0+CenterWeight+BackRowWeight, withoutMobility, 1e-9)
	})
}

func TestEvaluatorByName(t *testing.T) {
	t.Run("resolving known evaluators", func(t *testing.T) {
		for name, want := range map[string]Evaluator{
			"material":          MaterialEvaluator{},
			"Material+Mobility": MobilityEvaluator{},
			"mobility":          MobilityEvaluator{},
			"ADVANCED":          AdvancedEvaluator{},
		} {
			got, err := EvaluatorByName(name)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("rejecting unknown evaluators", func(t *testing.T) {
		_, err := EvaluatorByName("neural")
		require.Error(t, err)
	})
}
