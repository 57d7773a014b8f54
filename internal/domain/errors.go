package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrIndexOutOfRange = errors.New("row index out of range")
	ErrReadOnlyColumn  = errors.New("column is read-only")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrMissingLot      = errors.New("lot is required on every row before submission")
	ErrDuplicateRows   = errors.New("batch holds duplicate (order, part, lot, version) rows")
	ErrEmptyBatch      = errors.New("nothing to submit")
)
