package engine

import "github.com/matecheck/matecheck-go/internal/chess"

// maxMoves is the pseudo-legal move capacity per side. 256 comfortably
// exceeds the worst case.
const maxMoves = 256

// LegalMoves returns every legal move for the given colour: each pseudo-legal
// move is applied to a scratch copy of the board (promotions defaulting to
// Queen, the simulation only cares about king safety) and kept iff the
// mover's own king is not attacked afterwards. The order is the board scan
// order, rank-major and file-minor from a8; it carries no meaning but is
// deterministic.
func LegalMoves(b *chess.Board, colour chess.Colour) []chess.Move {
	pseudo := make([]chess.Move, 0, maxMoves)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := b.Cells[rank][file]
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			pseudo = append(pseudo, PieceMoves(b, chess.Square{Rank: rank, File: file})...)
		}
	}

	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		scratch := b.Copy()
		Apply(scratch, m)
		if !IsInCheck(scratch, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(b *chess.Board, colour chess.Colour) bool {
	return len(LegalMoves(b, colour)) > 0
}
