// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/accessor"
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// Type aliases for public API

// Array is a strided view onto a shared accessor.
//
// Example:
//
//	m, _ := ndarray.Arange[int](6, cfg).ReshapeLengths(2, 3)
//	row, _ := m.Subview(1) // [3, 4, 5]
type Array[T any] = tensor.Array[T]

// Values reads and writes single elements of an Array.
type Values[T any] = tensor.Values[T]

// Config selects the accessor factory and the parallel configuration.
// The zero value means dense accessors and default parallelism.
type Config[T any] = tensor.Config[T]

// Number is the constraint of the numeric helpers.
type Number = ufunc.Number

// Shape describes a view: per-dimension length and stride plus an offset.
type Shape = shape.Shape

// Dim is one dimension of a Shape.
type Dim = shape.Dim

// Range selects elements along one dimension.
type Range = shape.Range

// Auto requests the row-major stride in NewStrided.
const Auto = shape.Auto

// Errors, matched with errors.Is.
var (
	ErrDimensionSize   = tensor.ErrDimensionSize
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrSizeMismatch    = tensor.ErrSizeMismatch
	ErrInvalidAxis     = tensor.ErrInvalidAxis
	ErrInvalidRange    = tensor.ErrInvalidRange
)

// Shapes

// NewShape builds a row-major shape with offset 0.
func NewShape(lengths ...int) Shape {
	return shape.New(lengths...)
}

// NewStrided builds a shape from explicit dimensions. Dims with Stride Auto
// get the row-major stride; a zero stride replays the same elements.
func NewStrided(dims []Dim, offset int) Shape {
	return shape.NewStrided(dims, offset)
}

// ToBroadcastShapes returns views of a and b with identical lengths,
// stretched dimensions having stride 0.
func ToBroadcastShapes(a, b Shape) (Shape, Shape, error) {
	return shape.ToBroadcastShapes(a, b)
}

// Ranges

// All selects the whole dimension.
func All() Range { return shape.All() }

// Span selects [first, last). Negative values count from the end and a last
// of 0 means "to the end".
func Span(first, last int) Range { return shape.Span(first, last) }

// Step selects every stride-th element of [first, last).
func Step(first, last, stride int) Range { return shape.Step(first, last, stride) }

// El selects a single element.
func El(i int) Range { return shape.El(i) }

// NewAxis inserts a length-1, stride-0 dimension.
func NewAxis() Range { return shape.NewAxis() }

// Rev selects the whole dimension in reverse order.
func Rev() Range { return shape.Rev() }

// Configuration

// Lazy returns a Config whose arrays share one fresh queue.
func Lazy[T any]() Config[T] {
	return tensor.Lazy[T]()
}

// LazyOn returns a Config deferring to an existing queue, so arrays of
// different element types keep program order.
func LazyOn[T any](q *accessor.Queue) Config[T] {
	return Config[T]{Factory: accessor.NewLazyFactoryOn[T](q)}
}

// Creation functions

// Scalar wraps v as a 1-D array of length 1.
func Scalar[T any](v T, cfg Config[T]) *Array[T] {
	return tensor.Scalar(v, cfg)
}

// New allocates a zeroed array with shape s.
func New[T any](s Shape, cfg Config[T]) (*Array[T], error) {
	return tensor.New(s, cfg)
}

// FromSlice wraps data as a 1-D array without copying.
//
// Example:
//
//	a := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Config[float64]{})
func FromSlice[T any](data []T, cfg Config[T]) *Array[T] {
	return tensor.FromSlice(data, cfg)
}

// FromSliceShaped wraps data with shape s without copying.
func FromSliceShaped[T any](data []T, s Shape, cfg Config[T]) (*Array[T], error) {
	return tensor.FromSliceShaped(data, s, cfg)
}

// FromAccessor wraps an existing accessor with shape s.
func FromAccessor[T any](acc accessor.Accessor[T], s Shape, cfg Config[T]) (*Array[T], error) {
	return tensor.FromAccessor(acc, s, cfg)
}

// Zeros allocates a zero-filled row-major array.
func Zeros[T Number](cfg Config[T], lengths ...int) (*Array[T], error) {
	return tensor.Zeros(cfg, lengths...)
}

// Full allocates a row-major array filled with v.
func Full[T any](v T, cfg Config[T], lengths ...int) (*Array[T], error) {
	return tensor.Full(v, cfg, lengths...)
}

// Arange returns [0, 1, ..., n-1].
func Arange[T Number](n int, cfg Config[T]) *Array[T] {
	return tensor.Arange(n, cfg)
}

// Combining arrays

// Concatenate joins arrays along axis into fresh storage.
func Concatenate[T any](arrays []*Array[T], axis int) (*Array[T], error) {
	return tensor.Concatenate(arrays, axis)
}

// Add returns a + b with broadcasting.
func Add[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Sub(a, b) }

// Mul returns a * b elementwise with broadcasting.
func Mul[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Mul(a, b) }

// Div returns a / b elementwise with broadcasting.
func Div[T Number](a, b *Array[T]) (*Array[T], error) { return tensor.Div(a, b) }

// Apply returns op applied to every element of a, in new storage.
func Apply[T any](op ufunc.UnaryOp[T], a *Array[T]) (*Array[T], error) {
	return tensor.Apply(op, a)
}
