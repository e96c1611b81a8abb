package tensor

import (
	"github.com/born-ml/ndarray/internal/accessor"
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/born-ml/ndarray/internal/ufunc"
	"github.com/pkg/errors"
)

// Array is a strided view onto a shared accessor.
//
// Views derived from an Array (Reshape, Subview, Slice, Transpose, ...)
// share its accessor: writes through any of them are visible through all of
// them. Only Clone and Flatten produce independent storage.
//
// Type Parameters:
//   - T: element type
//
// Example:
//
//	a := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5}, tensor.Config[float32]{})
//	m, _ := a.ReshapeLengths(2, 3)
//	row, _ := m.Subview(1) // [3, 4, 5], same storage
type Array[T any] struct {
	shape  shape.Shape
	acc    accessor.Accessor[T]
	lazy   accessor.Lazy[T] // nil for eager accessors
	cfg    *Config[T]
	scalar bool

	// Tag is free for the caller; the array never reads it.
	Tag any
	// Name is a debug label.
	Name string
}

// newArray wraps acc without validating s.
func newArray[T any](acc accessor.Accessor[T], s shape.Shape, cfg *Config[T]) *Array[T] {
	lz, _ := accessor.AsLazy(acc)
	return &Array[T]{shape: s, acc: acc, lazy: lz, cfg: cfg}
}

// view returns a new Array over the same accessor.
func (a *Array[T]) view(s shape.Shape) *Array[T] {
	return &Array[T]{shape: s, acc: a.acc, lazy: a.lazy, cfg: a.cfg}
}

// alloc creates a fresh array of the given row-major shape using a's config.
func (a *Array[T]) alloc(s shape.Shape) *Array[T] {
	return newArray(a.cfg.Factory.Create(s.Length()), s, a.cfg)
}

func (a *Array[T]) operand() ufunc.Operand[T] {
	return ufunc.Operand[T]{Shape: a.shape, Acc: a.acc}
}

// Scalar wraps a single value as a 1-D array of length 1.
func Scalar[T any](v T, cfg Config[T]) *Array[T] {
	c := cfg.resolve()
	arr := newArray(c.Factory.Wrap([]T{v}), shape.New(1), c)
	arr.scalar = true
	return arr
}

// New allocates a zeroed array with shape s.
func New[T any](s shape.Shape, cfg Config[T]) (*Array[T], error) {
	for i, d := range s.Dims() {
		if d.Length < 0 {
			return nil, errors.Wrapf(ErrDimensionSize, "dimension %d has negative length %d", i, d.Length)
		}
	}
	lo, _ := s.Span()
	if s.Elements() > 0 && lo < 0 {
		return nil, errors.Wrapf(ErrDimensionSize, "shape %s reaches offset %d", s, lo)
	}
	c := cfg.resolve()
	return newArray(c.Factory.Create(s.Length()), s, c), nil
}

// FromSlice wraps data as a 1-D array. The slice is shared, not copied.
func FromSlice[T any](data []T, cfg Config[T]) *Array[T] {
	c := cfg.resolve()
	return newArray(c.Factory.Wrap(data), shape.New(len(data)), c)
}

// FromSliceShaped wraps data with shape s. It returns ErrDimensionSize if
// data is shorter than s requires.
func FromSliceShaped[T any](data []T, s shape.Shape, cfg Config[T]) (*Array[T], error) {
	if err := s.Validate(len(data)); err != nil {
		return nil, err
	}
	c := cfg.resolve()
	return newArray(c.Factory.Wrap(data), s, c), nil
}

// FromAccessor wraps an existing accessor with shape s.
func FromAccessor[T any](acc accessor.Accessor[T], s shape.Shape, cfg Config[T]) (*Array[T], error) {
	if err := s.Validate(acc.Len()); err != nil {
		return nil, err
	}
	return newArray(acc, s, cfg.resolve()), nil
}

// Shape returns the view's shape.
func (a *Array[T]) Shape() shape.Shape {
	return a.shape
}

// Lengths returns the per-dimension lengths.
func (a *Array[T]) Lengths() []int {
	return a.shape.Lengths()
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return a.shape.Rank()
}

// Elements returns the number of visible elements.
func (a *Array[T]) Elements() int {
	return a.shape.Elements()
}

// Accessor returns the backing accessor shared by every alias of a.
func (a *Array[T]) Accessor() accessor.Accessor[T] {
	return a.acc
}

// IsScalar reports whether a was built by Scalar.
func (a *Array[T]) IsScalar() bool {
	return a.scalar
}

// IsLazy reports whether writes to a may be deferred.
func (a *Array[T]) IsLazy() bool {
	return a.lazy != nil
}

// Config returns the configuration a was built with, defaults filled in.
func (a *Array[T]) Config() Config[T] {
	return *a.cfg
}

// Pending returns the number of operations queued on a's accessor, or 0 for
// eager arrays.
func (a *Array[T]) Pending() int {
	if a.lazy == nil {
		return 0
	}
	return a.lazy.Pending()
}

// Flush forces every operation queued on a's accessor to complete. It is a
// no-op for eager arrays.
func (a *Array[T]) Flush() {
	if a.lazy != nil {
		a.lazy.Flush()
	}
}

// Data returns the whole backing buffer, not just the visible elements.
// For lazy arrays it flushes first.
//
// WARNING: the slice is shared with every alias of a.
func (a *Array[T]) Data() []T {
	return a.acc.Data()
}

// SameStorage reports whether a and b share a backing accessor.
func (a *Array[T]) SameStorage(b *Array[T]) bool {
	return a.acc == b.acc
}
