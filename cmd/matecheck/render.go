package main

import (
	"strings"

	"github.com/matecheck/matecheck-go/internal/chess"
	"github.com/matecheck/matecheck-go/internal/engine"
)

const fileHeader = "   a b c d e f g h"

// Render draws the board as text, rank 8 at the top, with file letters
// above and below and rank digits on both sides.
func Render(b *chess.Board) string {
	var sb strings.Builder
	sb.WriteString(fileHeader)
	sb.WriteByte('\n')
	for rank := 0; rank < chess.BoardSize; rank++ {
		digit := byte('8' - rank)
		sb.WriteByte(digit)
		sb.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			piece := b.Cells[rank][file]
			if piece == chess.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(engine.ColouredPieceToFENLetter(piece))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		sb.WriteByte(digit)
		sb.WriteByte('\n')
	}
	sb.WriteString(fileHeader)
	sb.WriteByte('\n')
	return sb.String()
}
