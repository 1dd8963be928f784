// Package errors provides sentinel errors and wrapping helpers for the
// matecheck engine. The sentinels support inspection with errors.Is();
// nothing in the engine is fatal, every failure is reported to the caller.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates square notation outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a candidate move absent from the legal
	// move list of the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoMoveAvailable indicates the side to move has no legal move;
	// the game has ended in checkmate or stalemate.
	ErrNoMoveAvailable = errors.New("no move available")
)

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
