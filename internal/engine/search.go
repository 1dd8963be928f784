package engine

import (
	"math"

	"github.com/matecheck/matecheck-go/internal/chess"
	"github.com/matecheck/matecheck-go/internal/errors"
)

// MateScore is the magnitude assigned to a checkmated side: a mated White
// scores -MateScore and a mated Black +MateScore, dwarfing any material
// balance.
const MateScore = 1000000

// Half-open alpha-beta window bounds, kept well inside the int range so the
// caller-side comparisons never overflow.
const (
	alphaInit = math.MinInt / 2
	betaInit  = math.MaxInt / 2
)

// Minimax searches the game tree below the position to the given remaining
// depth and returns the best achievable score under optimal play, oriented
// so larger is better for White. maximizing is true when White is the side
// to move at this node.
//
// A node with no legal moves is terminal regardless of depth: checkmate
// scores ±MateScore signed against the side to move, stalemate scores 0.
// At depth zero with moves remaining the static evaluation is returned.
// Sibling subtrees are pruned as soon as beta <= alpha.
func Minimax(b *chess.Board, depth int, alpha, beta int, maximizing bool) int {
	colour := chess.Black
	if maximizing {
		colour = chess.White
	}
	moves := LegalMoves(b, colour)
	if len(moves) == 0 {
		if IsInCheck(b, colour) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0 // stalemate
	}
	if depth <= 0 {
		return Evaluate(b)
	}

	if maximizing {
		best := math.MinInt
		for _, m := range moves {
			child := b.Copy()
			Apply(child, m)
			score := Minimax(child, depth-1, alpha, beta, false)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, m := range moves {
		child := b.Copy()
		Apply(child, m)
		score := Minimax(child, depth-1, alpha, beta, true)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// BestMove selects a move for the given colour by scoring every legal move
// with a Minimax search of the remaining depth-1 plies. White picks the
// maximum score, Black the minimum; ties go to the first-encountered move in
// the deterministic LegalMoves order. When the colour has no legal move at
// all, errors.ErrNoMoveAvailable is returned; callers normally detect the
// game end before asking.
func BestMove(b *chess.Board, colour chess.Colour, depth int) (chess.Move, error) {
	moves := LegalMoves(b, colour)
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrNoMoveAvailable
	}

	best := moves[0]
	bestScore := math.MaxInt
	if colour == chess.White {
		bestScore = math.MinInt
	}
	for _, m := range moves {
		child := b.Copy()
		Apply(child, m)
		score := Minimax(child, depth-1, alphaInit, betaInit, colour == chess.Black)
		if colour == chess.White {
			if score > bestScore {
				bestScore = score
				best = m
			}
		} else {
			if score < bestScore {
				bestScore = score
				best = m
			}
		}
	}
	return best, nil
}
