package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks caller bugs (bad pair count, index out of range,
	// bad grid parameters). It is never a gameplay outcome.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
	ErrEmptyDeck       = fmt.Errorf("%w: deck is empty", ErrInvalidArgument)
)
