package field

import "github.com/webfield/webfield/internal/errorutil"

// Field access errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrNoValue is returned when a field is missing from the store and the
	// accessor has no default to fall back to.
	ErrNoValue Error = "no value for field"
	// ErrDeprecated is returned by deprecated accessors in the fail mode.
	ErrDeprecated Error = "deprecated field"
)

// Error represents a field access error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
