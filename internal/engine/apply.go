package engine

import "github.com/matecheck/matecheck-go/internal/chess"

// resolvePromotion maps an unset promotion piece to the Queen default.
// The same rule serves both king-safety simulation and genuine application
// of a move whose promotion was left unspecified.
func resolvePromotion(piece chess.Piece) chess.Piece {
	if piece == chess.Empty {
		return chess.Queen
	}
	return piece
}

// Apply executes a move on the board: the origin square is cleared and the
// moved piece placed on the destination, capturing whatever occupied it.
// A pawn reaching the far rank becomes the move's promotion piece, Queen
// when none was specified. The side to move and move number advance.
//
// Apply performs no legality checking and must only be called with moves
// validated against LegalMoves (or on scratch copies during simulation).
func Apply(b *chess.Board, m chess.Move) {
	moved := b.Get(m.From)
	colour := chess.ExtractColour(moved)
	b.Set(m.From, chess.Empty)

	if chess.ExtractPiece(moved) == chess.Pawn && m.To.Rank == chess.PromotionRank(colour) {
		b.Set(m.To, chess.MakeColouredPiece(colour, resolvePromotion(m.Promotion)))
	} else {
		b.Set(m.To, moved)
	}

	if b.ToMove == chess.Black {
		b.MoveNumber++
	}
	b.ToMove = b.ToMove.Opposite()
}
