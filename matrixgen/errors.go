package matrixgen

import (
	"github.com/pkg/errors"
)

// Every error returned by this package matches one of these sentinels via errors.Is.
// None of them are transient: retrying with the same inputs fails the same way.
var (
	// ErrInvalidParameter is returned by New when n, q, the strategy or an option is unsupported.
	ErrInvalidParameter = errors.New("matrixgen: invalid parameter")

	// ErrInvalidSeedLength is returned by GenMatrix before any primitive is invoked.
	ErrInvalidSeedLength = errors.New("matrixgen: invalid seed length")

	// ErrPrimitiveFailure is matched by every *PrimitiveError.
	ErrPrimitiveFailure = errors.New("matrixgen: primitive failure")
)

// PrimitiveError reports that the underlying hash or cipher rejected an operation.
type PrimitiveError struct {
	Op  string
	Err error
}

func (e *PrimitiveError) Error() string {
	return "matrixgen: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the primitive's own error.
func (e *PrimitiveError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPrimitiveFailure) hold.
func (e *PrimitiveError) Is(target error) bool {
	return target == ErrPrimitiveFailure
}

func invalidParameter(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

func invalidSeedLength(got, want int) error {
	return errors.Wrapf(ErrInvalidSeedLength, "got %d bytes, want %d", got, want)
}
