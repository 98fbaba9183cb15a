package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing record, node or edge.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument signals a malformed identifier or an out-of-range field.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable signals a transient infrastructure failure (store unreachable).
	ErrUnavailable = errors.New("store unavailable")
	// ErrAlreadyOwned signals a purchase of an item the person already owns.
	ErrAlreadyOwned = errors.New("item already owned")
	// ErrInsufficientFunds signals a purchase exceeding the person's balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InvalidArgument wraps ErrInvalidArgument with a formatted reason.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsTransient reports whether err is a retryable infrastructure failure.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
