package editor

import (
	"errors"
	"fmt"
)

// Editor errors.
var (
	// ErrNoCurrentBlock indicates no block is currently bound.
	ErrNoCurrentBlock = errors.New("no current block")

	// ErrBlockNotFound indicates a block is not in the sequence.
	ErrBlockNotFound = errors.New("block not found")

	// ErrFirstBlock indicates a merge was requested on the first block.
	ErrFirstBlock = errors.New("no preceding block to merge into")

	// ErrParse indicates source content could not be parsed.
	ErrParse = errors.New("parse failed")
)

// OperationError records a failed editor operation.
type OperationError struct {
	Op     string // Operation name (e.g., "split", "merge", "convert")
	Target string // Target of the operation (e.g., a block id or type)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
