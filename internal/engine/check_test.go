package engine

import (
	"testing"

	"github.com/matecheck/matecheck-go/internal/chess"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"starting position white", InitialFEN, chess.White, false},
		{"starting position black", InitialFEN, chess.Black, false},
		{"rook on open file", "4k3/8/8/8/8/8/8/4R2K b - - 0 1", chess.Black, true},
		{"rook blocked by own piece", "4k3/4p3/8/8/8/8/8/4R2K b - - 0 1", chess.Black, false},
		{"bishop on the long diagonal", "7k/8/8/8/8/8/8/B6K b - - 0 1", chess.Black, true},
		{"knight check", "4k3/8/3N4/8/8/8/8/7K b - - 0 1", chess.Black, true},
		{"pawn attacks diagonally", "8/8/8/3k4/4P3/8/8/7K b - - 0 1", chess.Black, true},
		{"pawn does not attack straight ahead", "8/8/8/4k3/4P3/8/8/7K b - - 0 1", chess.Black, false},
		{"adjacent enemy king", "8/8/8/3kK3/8/8/8/8 b - - 0 1", chess.Black, true},
		{"queen check is caught for the other side too", "4k3/8/8/8/8/8/8/4q2K w - - 0 1", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

// A board with no king of the queried colour reports check: the fail-closed
// fallback keeps legality filtering from ever approving a move into a
// king-less state.
func TestIsInCheck_MissingKing(t *testing.T) {
	board := mustBoard(t, "8/8/8/8/8/8/8/8 w - - 0 1")
	if !IsInCheck(board, chess.White) {
		t.Error("IsInCheck(White) on an empty board = false, want true")
	}
	if !IsInCheck(board, chess.Black) {
		t.Error("IsInCheck(Black) on an empty board = false, want true")
	}
}

func TestFindKing(t *testing.T) {
	board := mustBoard(t, InitialFEN)

	sq, ok := FindKing(board, chess.White)
	if !ok || sq != (chess.Square{Rank: 7, File: 4}) {
		t.Errorf("FindKing(White) = %v, %v; want e1", sq, ok)
	}
	sq, ok = FindKing(board, chess.Black)
	if !ok || sq != (chess.Square{Rank: 0, File: 4}) {
		t.Errorf("FindKing(Black) = %v, %v; want e8", sq, ok)
	}

	empty := mustBoard(t, "8/8/8/8/8/8/8/8 w - - 0 1")
	if _, ok := FindKing(empty, chess.White); ok {
		t.Error("FindKing on an empty board reported a king")
	}
}
