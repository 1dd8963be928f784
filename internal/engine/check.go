package engine

import "github.com/matecheck/matecheck-go/internal/chess"

// IsInCheck returns true if the given colour's king is currently attacked.
// A board with no king of that colour reports true: the state is unreachable
// under correct legality filtering, and failing closed keeps the search and
// legality code free of a special case for it.
func IsInCheck(b *chess.Board, colour chess.Colour) bool {
	king, ok := FindKing(b, colour)
	if !ok {
		return true
	}

	opponent := colour.Opposite()
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := b.Cells[rank][file]
			if piece == chess.Empty || chess.ExtractColour(piece) != opponent {
				continue
			}
			from := chess.Square{Rank: rank, File: file}
			for _, m := range PieceMoves(b, from) {
				if m.To == king {
					return true
				}
			}
		}
	}
	return false
}

// FindKing locates the king of the given colour. The second return value is
// false when the board holds no such king.
func FindKing(b *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if b.Cells[rank][file] == king {
				return chess.Square{Rank: rank, File: file}, true
			}
		}
	}
	return chess.Square{}, false
}
