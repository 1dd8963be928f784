package main

import (
	"strings"

	"github.com/matecheck/matecheck-go/internal/chess"
	"github.com/matecheck/matecheck-go/internal/errors"
)

// Algebraic square notation: file letter 'a'..'h' maps to file index 0..7
// and rank digit '1'..'8' maps to rank index 7..0, since rank index 0 is
// the eighth rank.

// ParseSquare converts algebraic notation like "e2" to a square.
func ParseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	return chess.Square{
		Rank: int('8' - rank),
		File: int(file - 'a'),
	}, nil
}

// FormatSquare converts a square back to algebraic notation.
func FormatSquare(sq chess.Square) string {
	return string([]byte{
		byte('a' + sq.File),
		byte('8' - sq.Rank),
	})
}

// ParseMove parses user input of the form "e2e4", "e2 e4" or "e7e8n" (with
// a trailing promotion letter). Whitespace is ignored.
func ParseMove(input string) (chess.Move, error) {
	compact := strings.Join(strings.Fields(input), "")
	if len(compact) < 4 {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "malformed move %q", input)
	}

	from, err := ParseSquare(compact[0:2])
	if err != nil {
		return chess.Move{}, err
	}
	to, err := ParseSquare(compact[2:4])
	if err != nil {
		return chess.Move{}, err
	}

	move := chess.Move{From: from, To: to}
	if len(compact) >= 5 {
		promotion, ok := parsePromotionLetter(compact[4])
		if !ok {
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "invalid promotion piece %q", compact[4:5])
		}
		move.Promotion = promotion
	}
	return move, nil
}

// FormatMove renders a move as "e2e4", with a lowercase promotion letter
// suffix when one is set.
func FormatMove(m chess.Move) string {
	var sb strings.Builder
	sb.WriteString(FormatSquare(m.From))
	sb.WriteString(FormatSquare(m.To))
	if m.Promotion != chess.Empty {
		sb.WriteByte(byte(m.Promotion.Letter() - 'A' + 'a'))
	}
	return sb.String()
}

// parsePromotionLetter maps a promotion letter (either case) to a piece.
func parsePromotionLetter(c byte) (chess.Piece, bool) {
	switch c {
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'N', 'n':
		return chess.Knight, true
	default:
		return chess.Empty, false
	}
}
