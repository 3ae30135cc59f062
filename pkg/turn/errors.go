package turn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is matched by every InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrClosed is returned by every operation after Shutdown.
	ErrClosed = errors.New("coordinator is shut down")
	// ErrProtocol means the worker sent something the turn protocol does not allow.
	ErrProtocol = errors.New("turn protocol violated")
)

// InvalidTransitionError is returned when an operation is called in a phase
// that does not accept it. The caller may ignore it and retry on a later tick.
type InvalidTransitionError struct {
	Op    string
	Phase Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s is not valid in phase %s", e.Op, e.Phase)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// IllegalMoveError is returned by Submit for a column the engine rejects or
// that differs from the move being revealed.
type IllegalMoveError struct {
	Identity string
	Column   int
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move for %s: column %d", e.Identity, e.Column)
}

// WorkerCrashedError is the payload of PhaseFailed.
type WorkerCrashedError struct {
	Err error
}

func (e *WorkerCrashedError) Error() string {
	return fmt.Sprintf("player logic crashed: %v", e.Err)
}

func (e *WorkerCrashedError) Unwrap() error {
	return e.Err
}
