package gridstore

import "errors"

var (
	// ErrInvalidSize indicates a requested grid size below 1 or above the ceiling.
	ErrInvalidSize = errors.New("gridstore: invalid grid size")
	// ErrNonSquare indicates a fixed configuration whose rows do not form a square.
	ErrNonSquare = errors.New("gridstore: grid must be square")
	// ErrCellValue indicates a cell value other than 0 (empty) or 1 (filled).
	ErrCellValue = errors.New("gridstore: cell value must be 0 or 1")
	// ErrOutOfBounds indicates a coordinate outside [0, size) on either axis.
	ErrOutOfBounds = errors.New("gridstore: coordinate out of bounds")
)
