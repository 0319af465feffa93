// errors.go defines public error types for the jtransforms-go package.

package jtransforms

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel error kinds. Use errors.Is against these to classify a
// failure; wrapped errors carry the offending dimensions/coordinates in
// their message.
var (
	// ErrDimensionMismatch indicates a buffer length incompatible with
	// the plan's transform length.
	ErrDimensionMismatch = errors.New("jtransforms: dimension mismatch")

	// ErrInvalidLength indicates a plan was constructed with N <= 0.
	ErrInvalidLength = errors.New("jtransforms: invalid length (must be > 0)")

	// ErrInvalidPackedCoordinate indicates a pack/unpack call with (r, c)
	// outside the valid range for the plan's dimensions, or a pack value
	// that would break Hermitian symmetry.
	ErrInvalidPackedCoordinate = errors.New("jtransforms: invalid packed coordinate")

	// ErrWorkerFailure indicates a pool worker failed to complete; it is
	// propagated from a join handle.
	ErrWorkerFailure = errors.New("jtransforms: worker failure")
)

func dimensionMismatchf(format string, args ...interface{}) error {
	return pkgerrors.Wrap(ErrDimensionMismatch, fmt.Sprintf(format, args...))
}

func invalidPackedCoordinatef(format string, args ...interface{}) error {
	return pkgerrors.Wrap(ErrInvalidPackedCoordinate, fmt.Sprintf(format, args...))
}

func pkgWrapWorkerFailure(cause error) error {
	return pkgerrors.Wrap(ErrWorkerFailure, cause.Error())
}
