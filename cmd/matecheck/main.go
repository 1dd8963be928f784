// matecheck is a console chess game against a minimax engine. No castling
// and no en passant; pawn promotion to Q/R/B/N.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/matecheck/matecheck-go/internal/chess"
	"github.com/matecheck/matecheck-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("matecheck version %s\n", programVersion)
		os.Exit(0)
	}

	engineColour, err := parseSide(*engineSide)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, err := setupBoard(*startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("matecheck: you play %s, the engine plays %s (depth %d)\n",
		engineColour.Opposite(), engineColour, *depth)
	fmt.Println("Enter moves as e2e4 or e2 e4; 'moves' lists legal moves, 'quit' exits.")
	fmt.Println("Note: no castling, no en passant. Promotion to Q/R/B/N.")
	fmt.Println()

	run(board, engineColour, bufio.NewScanner(os.Stdin))
}

// parseSide maps the -engine flag value to a colour.
func parseSide(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	default:
		return chess.Black, fmt.Errorf("invalid side %q (want white or black)", s)
	}
}

// setupBoard builds the starting board from a FEN string, or the standard
// starting position when fen is empty.
func setupBoard(fen string) (*chess.Board, error) {
	if fen == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(fen)
}

// run alternates human input and engine moves on the authoritative board
// until the game ends or the human quits.
func run(board *chess.Board, engineColour chess.Colour, input *bufio.Scanner) {
	for {
		fmt.Print(Render(board))

		legal := engine.LegalMoves(board, board.ToMove)
		if len(legal) == 0 {
			announceGameEnd(board)
			return
		}

		if board.ToMove == engineColour {
			playEngineMove(board, engineColour, legal)
			continue
		}
		if !playHumanMove(board, legal, input) {
			return
		}
	}
}

// announceGameEnd reports checkmate or stalemate for the side to move.
func announceGameEnd(board *chess.Board) {
	if engine.IsInCheck(board, board.ToMove) {
		fmt.Printf("Checkmate! %s wins.\n", board.ToMove.Opposite())
	} else {
		fmt.Println("Draw by stalemate.")
	}
}

// playEngineMove selects and applies the engine's move.
func playEngineMove(board *chess.Board, colour chess.Colour, legal []chess.Move) {
	fmt.Printf("\nEngine (%s) thinking...\n", colour)
	move, err := engine.BestMove(board, colour, *depth)
	if err != nil {
		// Unreachable: the caller has already checked for legal moves.
		move = legal[0]
	}

	// Name the promotion piece in the report even when the search left it
	// to the queen default.
	moved := board.Get(move.From)
	if chess.ExtractPiece(moved) == chess.Pawn &&
		move.To.Rank == chess.PromotionRank(colour) && move.Promotion == chess.Empty {
		move.Promotion = chess.Queen
	}

	fmt.Printf("Engine plays %s\n", FormatMove(move))
	engine.Apply(board, move)
	if !*quiet {
		fmt.Printf("Material balance: %+d\n\n", engine.Evaluate(board))
	} else {
		fmt.Println()
	}
}

// playHumanMove reads, validates and applies one human move. It returns
// false when the human quits or input is exhausted.
func playHumanMove(board *chess.Board, legal []chess.Move, input *bufio.Scanner) bool {
	for {
		fmt.Printf("\nYour move (%s): ", board.ToMove)
		if !input.Scan() {
			fmt.Println()
			return false
		}
		line := strings.TrimSpace(input.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			fmt.Println("Goodbye.")
			return false
		case "moves":
			printLegalMoves(legal)
			continue
		}

		move, err := ParseMove(line)
		if err != nil {
			fmt.Printf("Invalid input (%v). Use e2e4.\n", err)
			continue
		}

		matched, ok := matchLegalMove(legal, move)
		if !ok {
			fmt.Println("Illegal move. Try again ('moves' lists your options).")
			continue
		}

		// Promotion choice: prompt when the move needs one and the input
		// did not carry a letter.
		moved := board.Get(matched.From)
		colour := chess.ExtractColour(moved)
		if chess.ExtractPiece(moved) == chess.Pawn && matched.To.Rank == chess.PromotionRank(colour) {
			if move.Promotion == chess.Empty {
				move.Promotion = promptPromotion(input)
			}
			matched.Promotion = move.Promotion
		}

		engine.Apply(board, matched)
		fmt.Println()
		return true
	}
}

// matchLegalMove finds the legal move with the given source and destination.
func matchLegalMove(legal []chess.Move, move chess.Move) (chess.Move, bool) {
	for _, lm := range legal {
		if lm.SameSquares(move) {
			return lm, true
		}
	}
	return chess.Move{}, false
}

// printLegalMoves lists the legal moves in generation order.
func printLegalMoves(legal []chess.Move) {
	parts := make([]string, len(legal))
	for i, m := range legal {
		parts[i] = FormatMove(m)
	}
	fmt.Printf("%d legal moves: %s\n", len(legal), strings.Join(parts, " "))
}

// promptPromotion asks the user which piece a pawn promotes to.
func promptPromotion(input *bufio.Scanner) chess.Piece {
	for {
		fmt.Print("Promote to (Q/R/B/N): ")
		if !input.Scan() {
			return chess.Queen
		}
		line := strings.TrimSpace(input.Text())
		if len(line) == 0 {
			continue
		}
		if piece, ok := parsePromotionLetter(line[0]); ok {
			return piece
		}
	}
}
