package rendezvous

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelInvalidated is returned to a caller blocked on, or about to block on,
	// a channel that has been torn down.
	ErrChannelInvalidated = errors.New("rendezvous channel invalidated")
	// ErrSlotOccupied is returned by Post when the single slot already holds a message.
	// It means one side spoke twice without waiting for the other.
	ErrSlotOccupied = errors.New("rendezvous slot already holds a message")
	// ErrEmptyIdentity is returned when a request or report names no party.
	ErrEmptyIdentity = errors.New("identity must be a non-empty string")
	// ErrNoResponse is returned when the other side released the worker without
	// posting an answer.
	ErrNoResponse = errors.New("released without a response")
)

// IdentityMismatchError is returned by RequestChoice when the answer is tagged
// for a different party than the one that asked.
type IdentityMismatchError struct {
	Want string
	Got  string
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("response tagged %q, expected %q", e.Got, e.Want)
}
