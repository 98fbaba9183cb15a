package bonfire

import "github.com/kailas-cloud/bonfire/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrInvalidArgument   = domain.ErrInvalidArgument
	ErrUnavailable       = domain.ErrUnavailable
	ErrAlreadyOwned      = domain.ErrAlreadyOwned
	ErrInsufficientFunds = domain.ErrInsufficientFunds
)
