package engine

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/matecheck/matecheck-go/internal/chess"
	"github.com/matecheck/matecheck-go/internal/errors"
)

func TestMinimax_CheckmateScores(t *testing.T) {
	// Black king on h8 boxed in by the queen on g7, defended by the king
	// on g6. Black to move, no legal moves, in check: mate against Black.
	board := mustBoard(t, "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	if !IsCheckmate(board) {
		t.Fatal("position is not classified as checkmate")
	}
	for _, depth := range []int{0, 1, 4} {
		if got := Minimax(board, depth, alphaInit, betaInit, false); got != MateScore {
			t.Errorf("Minimax(depth %d) = %d, want %d (mate against Black)", depth, got, MateScore)
		}
	}

	// The mirrored position mates White.
	board = mustBoard(t, "8/8/8/8/8/6k1/6q1/7K w - - 0 1")
	if !IsCheckmate(board) {
		t.Fatal("mirrored position is not classified as checkmate")
	}
	if got := Minimax(board, 3, alphaInit, betaInit, true); got != -MateScore {
		t.Errorf("Minimax() = %d, want %d (mate against White)", got, -MateScore)
	}
}

func TestMinimax_StalemateScoresZero(t *testing.T) {
	// Black king on a8 smothered by the queen on b6: not in check, no
	// legal moves. Zero legal moves overrides any depth handling.
	board := mustBoard(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if !IsStalemate(board) {
		t.Fatal("position is not classified as stalemate")
	}
	for _, depth := range []int{0, 1, 3} {
		if got := Minimax(board, depth, alphaInit, betaInit, false); got != 0 {
			t.Errorf("Minimax(depth %d) = %d, want 0 (stalemate)", depth, got)
		}
	}
}

func TestMinimax_DepthZeroFallsBackToEvaluation(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if got := Minimax(board, 0, alphaInit, betaInit, true); got != Evaluate(board) {
		t.Errorf("Minimax(depth 0) = %d, want static evaluation %d", got, Evaluate(board))
	}
}

// plainMinimax is the unpruned reference: identical recursion without the
// alpha-beta window.
func plainMinimax(b *chess.Board, depth int, maximizing bool) int {
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
		return 0
	}
	if depth <= 0 {
		return Evaluate(b)
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, m := range moves {
		child := b.Copy()
		Apply(child, m)
		score := plainMinimax(child, depth-1, !maximizing)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best
}

// Pruning changes the node count, never the returned score.
func TestMinimax_PruningPreservesScores(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"starting position", InitialFEN, 2},
		{"queen endgame", "4k3/8/8/3q4/8/8/3P4/4K3 w - - 0 1", 3},
		{"rook endgame", "k7/8/1K6/8/8/8/8/7R w - - 0 1", 3},
		{"bishop endgame black to move", "8/2k5/8/8/3B4/8/2K5/8 b - - 0 1", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			maximizing := board.ToMove == chess.White
			pruned := Minimax(board, tt.depth, alphaInit, betaInit, maximizing)
			full := plainMinimax(board, tt.depth, maximizing)
			if pruned != full {
				t.Errorf("pruned score %d != unpruned score %d", pruned, full)
			}
		})
	}
}

func TestBestMove_FindsMateInOne(t *testing.T) {
	// White: Kb6, Rh1. Black: Ka8. Rh8 is the only immediate mate, so at
	// depth 2 it alone scores the mate value.
	board := mustBoard(t, "k7/8/1K6/8/8/8/8/7R w - - 0 1")
	move, err := BestMove(board, chess.White, 2)
	if err != nil {
		t.Fatalf("BestMove() error: %v", err)
	}
	want := chess.Move{
		From: chess.Square{Rank: 7, File: 7}, // h1
		To:   chess.Square{Rank: 0, File: 7}, // h8
	}
	if !move.Equal(want) {
		t.Errorf("BestMove() = %v, want h1h8", move)
	}
}

func TestBestMove_TakesHangingMaterial(t *testing.T) {
	// The black queen on d8 hangs to the rook on d6.
	board := mustBoard(t, "3q3k/8/3R4/8/8/8/8/7K w - - 0 1")
	move, err := BestMove(board, chess.White, 1)
	if err != nil {
		t.Fatalf("BestMove() error: %v", err)
	}
	want := chess.Move{
		From: chess.Square{Rank: 2, File: 3}, // d6
		To:   chess.Square{Rank: 0, File: 3}, // d8
	}
	if !move.Equal(want) {
		t.Errorf("BestMove() = %v, want d6xd8", move)
	}
}

func TestBestMove_BlackMinimizes(t *testing.T) {
	// The white queen on d1 hangs to the rook on d3.
	board := mustBoard(t, "7k/8/8/8/8/3r4/8/3Q3K b - - 0 1")
	move, err := BestMove(board, chess.Black, 1)
	if err != nil {
		t.Fatalf("BestMove() error: %v", err)
	}
	want := chess.Move{
		From: chess.Square{Rank: 5, File: 3}, // d3
		To:   chess.Square{Rank: 7, File: 3}, // d1
	}
	if !move.Equal(want) {
		t.Errorf("BestMove() = %v, want d3xd1", move)
	}
}

func TestBestMove_NoMoveAvailable(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
	}{
		{"stalemate", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", chess.Black},
		{"checkmate", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1", chess.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			_, err := BestMove(board, tt.colour, 2)
			if !stderrors.Is(err, errors.ErrNoMoveAvailable) {
				t.Errorf("BestMove() error = %v, want ErrNoMoveAvailable", err)
			}
		})
	}
}

// Search works on copies: the caller's board must be untouched afterwards.
func TestBestMove_DoesNotMutateBoard(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	before := *board
	if _, err := BestMove(board, chess.White, 2); err != nil {
		t.Fatalf("BestMove() error: %v", err)
	}
	if *board != before {
		t.Error("BestMove mutated the caller's board")
	}
}

func TestGameStatePredicates(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheckmate bool
		wantStalemate bool
	}{
		{"starting position", InitialFEN, false, false},
		{"checkmate", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1", true, false},
		{"stalemate", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", false, true},
		{"check but not mate", "4k3/8/8/8/8/8/4q3/4K3 w - - 0 1", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsCheckmate(board); got != tt.wantCheckmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.wantCheckmate)
			}
			if got := IsStalemate(board); got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.wantStalemate)
			}
		})
	}
}
