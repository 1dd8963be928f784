package engine

import "github.com/matecheck/matecheck-go/internal/chess"

// Material values in centipawns, indexed by piece type.
var pieceValues = [chess.NumPieceValues]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// PieceValue returns the material value of a piece type.
func PieceValue(piece chess.Piece) int {
	if piece < 0 || piece >= chess.NumPieceValues {
		return 0
	}
	return pieceValues[piece]
}

// Evaluate returns the static material balance of the board: piece values
// summed for White and subtracted for Black, so larger is better for White.
// There are no positional, mobility or king-safety terms.
func Evaluate(b *chess.Board) int {
	score := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := b.Cells[rank][file]
			if piece == chess.Empty {
				continue
			}
			value := PieceValue(chess.ExtractPiece(piece))
			if chess.ExtractColour(piece) == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}
