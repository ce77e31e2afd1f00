package patterngen

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	// ErrInvalidArgument is returned when a caller passes a value the generator cannot accept.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when the generator is not configured for the requested operation.
	ErrInvalidState = errors.New("invalid state")
)

var (
	ErrUnknownPattern = fmt.Errorf("%w: no pattern for such key", ErrInvalidArgument)
	ErrKeyExists      = fmt.Errorf("%w: key already exists", ErrInvalidArgument)
	ErrEmptyKey       = fmt.Errorf("%w: pattern key cannot be empty", ErrInvalidArgument)
	ErrEmptyPattern   = fmt.Errorf("%w: pattern cannot be empty", ErrInvalidArgument)
	ErrInvalidLength  = fmt.Errorf("%w: length must be positive", ErrInvalidArgument)

	ErrNoPatterns       = fmt.Errorf("%w: there are no patterns to generate", ErrInvalidState)
	ErrMultiplePatterns = fmt.Errorf("%w: multiple patterns not supported", ErrInvalidState)

	// ErrInvalidConfig is returned when configuration cannot be loaded or fails validation.
	ErrInvalidConfig = fmt.Errorf("%w: invalid generator configuration", ErrInvalidArgument)
)

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}
