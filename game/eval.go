package game

import (
	"fmt"
	"strings"
)

const (
	PawnValue      = 1.0
	KingValue      = 5.0
	MobilityWeight = 0.1

	PromotionThreatWeight = 0.3
	BackRowWeight         = 0.2
	CenterWeight          = 0.15
)

// MaterialEvaluator counts piece values: own pieces minus the opponent's.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(b *Board) float64 {
	return calculateMaterial(b)
}

func (MaterialEvaluator) Name() string {
	return "Material"
}

// MobilityEvaluator adds the difference in legal move counts to material.
type MobilityEvaluator struct{}

func (MobilityEvaluator) Evaluate(b *Board) float64 {
	return calculateMaterial(b) + calculateMobility(b)
}

func (MobilityEvaluator) Name() string {
	return "Material+Mobility"
}

// AdvancedEvaluator adds positional bonuses (promotion threats, centre
// control, home row defence) to material and mobility.
type AdvancedEvaluator struct{}

func (AdvancedEvaluator) Evaluate(b *Board) float64 {
	return calculateMaterial(b) + calculatePositionBonus(b) + calculateMobility(b)
}

func (AdvancedEvaluator) Name() string {
	return "Advanced"
}

// EvaluatorByName resolves an evaluator from its name, case-insensitively.
// "mobility" is accepted as a short form of "Material+Mobility".
func EvaluatorByName(name string) (Evaluator, error) {
	switch strings.ToLower(name) {
	case "material":
		return MaterialEvaluator{}, nil
	case "material+mobility", "mobility":
		return MobilityEvaluator{}, nil
	case "advanced":
		return AdvancedEvaluator{}, nil
	}
	return nil, fmt.Errorf("unknown evaluator %q", name)
}

func pieceValue(piece Piece) float64 {
	if piece == Pawn {
		return PawnValue
	}
	return KingValue
}

func calculateMaterial(b *Board) float64 {
	current := b.CurrentPlayer
	score := 0.0

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			player, piece, ok := b.GetPiece(row, col)
			if !ok {
				continue
			}
			if player == current {
				score += pieceValue(piece)
			} else {
				score -= pieceValue(piece)
			}
		}
	}

	return score
}

// calculateMobility runs the full rule engine for both sides; the opponent's
// moves are generated on a copy with the side to move swapped.
func calculateMobility(b *Board) float64 {
	current := b.CurrentPlayer
	opponent := current.Opponent()

	currentMoves := len(GenerateLegalMoves(b, current))

	swapped := b.Clone()
	swapped.CurrentPlayer = opponent
	opponentMoves := len(GenerateLegalMoves(swapped, opponent))

	return float64(currentMoves-opponentMoves) * MobilityWeight
}

func calculatePositionBonus(b *Board) float64 {
	current := b.CurrentPlayer
	bonus := 0.0

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			player, piece, ok := b.GetPiece(row, col)
			if !ok {
				continue
			}

			positional := 0.0

			if piece == Pawn {
				distance := row - player.PromotionRow()
				if distance < 0 {
					distance = -distance
				}
				if distance <= 2 {
					positional += float64(3-distance) * PromotionThreatWeight
				}
			}

			if row >= 2 && row <= 5 && col >= 2 && col <= 5 {
				positional += CenterWeight
			}

			if row == player.HomeRow() {
				positional += BackRowWeight
			}

			if player == current {
				bonus += positional
			} else {
				bonus -= positional
			}
		}
	}

	return bonus
}
