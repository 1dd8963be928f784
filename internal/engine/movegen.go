// Package engine provides move generation, legality checking, position
// evaluation and game-tree search over chess.Board values.
package engine

import "github.com/matecheck/matecheck-go/internal/chess"

// Offset tables for the leaper pieces and the ray directions for the
// sliders. Shared by move generation; order fixes the generation order.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	straightDirs  = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// PieceMoves generates the pseudo-legal moves for the piece on the given
// square: every destination reachable under the piece's movement rules that
// is in bounds and not occupied by a same-colour piece. The moves may still
// leave the mover's own king attacked; LegalMoves filters those out.
// Promotion is not encoded here, reaching the far rank is only recognised
// when a move is applied. An empty square generates nothing.
func PieceMoves(b *chess.Board, from chess.Square) []chess.Move {
	piece := b.Get(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(b, from, colour)
	case chess.Knight:
		return leaperMoves(b, from, colour, knightOffsets)
	case chess.King:
		return leaperMoves(b, from, colour, kingOffsets)
	case chess.Rook:
		return slidingMoves(b, from, colour, straightDirs[:])
	case chess.Bishop:
		return slidingMoves(b, from, colour, diagonalDirs[:])
	case chess.Queen:
		moves := slidingMoves(b, from, colour, straightDirs[:])
		return append(moves, slidingMoves(b, from, colour, diagonalDirs[:])...)
	}
	return nil
}

// pawnMoves generates pawn advances and diagonal captures. No en passant.
func pawnMoves(b *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 4)
	dir := chess.ColourOffset(colour)

	// Single advance onto an empty square, and the double advance from the
	// home rank when both squares ahead are empty.
	one := chess.Square{Rank: from.Rank + dir, File: from.File}
	if one.InBounds() && b.Get(one) == chess.Empty {
		moves = append(moves, chess.Move{From: from, To: one})
		if from.Rank == chess.HomeRank(colour) {
			two := chess.Square{Rank: from.Rank + 2*dir, File: from.File}
			if two.InBounds() && b.Get(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	// Diagonal captures, only onto squares held by the opposing colour.
	for df := -1; df <= 1; df += 2 {
		to := chess.Square{Rank: from.Rank + dir, File: from.File + df}
		if !to.InBounds() {
			continue
		}
		target := b.Get(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// leaperMoves generates moves for the fixed-offset pieces (knight, king).
func leaperMoves(b *chess.Board, from chess.Square, colour chess.Colour, offsets [8][2]int) []chess.Move {
	moves := make([]chess.Move, 0, 8)
	for _, off := range offsets {
		to := chess.Square{Rank: from.Rank + off[0], File: from.File + off[1]}
		if !to.InBounds() {
			continue
		}
		target := b.Get(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// slidingMoves casts rays for the sliding pieces. A ray extends square by
// square until the board edge; an occupied square ends the ray and is
// included only when it holds an opposing piece.
func slidingMoves(b *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	moves := make([]chess.Move, 0, 14)
	for _, dir := range dirs {
		to := chess.Square{Rank: from.Rank + dir[0], File: from.File + dir[1]}
		for to.InBounds() {
			target := b.Get(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = chess.Square{Rank: to.Rank + dir[0], File: to.File + dir[1]}
		}
	}
	return moves
}
