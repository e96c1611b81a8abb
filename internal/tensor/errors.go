package tensor

import "github.com/born-ml/ndarray/internal/shape"

// Errors returned by array operations, matched with errors.Is.
var (
	ErrDimensionSize   = shape.ErrDimensionSize
	ErrIndexOutOfRange = shape.ErrIndexOutOfRange
	ErrShapeMismatch   = shape.ErrShapeMismatch
	ErrSizeMismatch    = shape.ErrSizeMismatch
	ErrInvalidAxis     = shape.ErrInvalidAxis
	ErrInvalidRange    = shape.ErrInvalidRange
)
