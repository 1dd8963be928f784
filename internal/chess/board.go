package chess

// Board represents a chess position. Cells is indexed [rank][file] with
// (0,0) = a8 and (7,7) = h1; each cell holds Empty or a coloured piece.
// The model stores pieces only: there is no castling or en passant state,
// and nothing enforces one king per side. A board may transiently hold zero
// or several kings of a colour during search simulation.
type Board struct {
	Cells [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			b.Cells[rank][file] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Cells[0][file] = B(backRank[file])
		b.Cells[1][file] = B(Pawn)
		b.Cells[6][file] = W(Pawn)
		b.Cells[7][file] = W(backRank[file])
	}

	b.ToMove = White
	b.MoveNumber = 1
}

// Get returns the piece at the given square.
func (b *Board) Get(sq Square) Piece {
	return b.Cells[sq.Rank][sq.File]
}

// Set places a piece at the given square.
func (b *Board) Set(sq Square, piece Piece) {
	b.Cells[sq.Rank][sq.File] = piece
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
