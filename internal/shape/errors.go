package shape

import "github.com/pkg/errors"

// Every sentinel is prefixed with "ndarray: " so messages can be grepped
// across packages. Callers add context with errors.Wrapf and match with
// errors.Is.
var (
	// ErrDimensionSize is returned when a backing buffer is shorter than the
	// span a shape needs.
	ErrDimensionSize = errors.New("ndarray: buffer too short for shape")

	// ErrIndexOutOfRange is returned when an index resolves outside
	// [0, length) after negative-index normalisation.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch is returned when ranks or per-dimension lengths
	// disagree where exact or broadcast compatibility is required.
	ErrShapeMismatch = errors.New("ndarray: incompatible shapes")

	// ErrSizeMismatch is returned when a repeat-count list does not evenly
	// divide the length it is repeated over.
	ErrSizeMismatch = errors.New("ndarray: size mismatch")

	// ErrInvalidAxis is returned for an axis or dimension argument outside
	// the rank of the shape.
	ErrInvalidAxis = errors.New("ndarray: invalid axis")

	// ErrInvalidRange is returned for a range whose stride is not positive.
	ErrInvalidRange = errors.New("ndarray: invalid range")
)
