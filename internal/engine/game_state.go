package engine

import "github.com/matecheck/matecheck-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(b *chess.Board) bool {
	colour := b.ToMove
	return IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(b *chess.Board) bool {
	colour := b.ToMove
	return !IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}
