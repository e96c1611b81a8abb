// Package shape implements the stride/offset algebra behind array views.
//
// A Shape is an ordered list of (length, stride) pairs plus a base offset
// into a flat buffer. Indexing with a full multi-index i_0..i_{k-1} yields
//
//	offset + Σ i_d * stride_d
//
// Shapes are immutable: every transformation returns a new Shape.
package shape

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Auto requests the row-major stride for a Dim passed to NewStrided.
const Auto = int(^uint(0) >> 1)

// Dim is one dimension of a Shape.
type Dim struct {
	Length int
	Stride int
}

// Shape describes a view onto a flat buffer.
type Shape struct {
	dims   []Dim
	offset int
}

// New builds a row-major (C-order) shape with offset 0.
//
// Example:
//
//	s := shape.New(3, 4) // strides (4, 1)
func New(lengths ...int) Shape {
	dims := make([]Dim, len(lengths))
	for i, n := range lengths {
		dims[i] = Dim{Length: n, Stride: Auto}
	}
	return NewStrided(dims, 0)
}

// NewStrided builds a shape from explicit dimensions and an offset.
// Dimensions whose Stride is Auto get the row-major stride implied by the
// lengths that follow them. A zero stride is kept as-is: it replays the same
// elements along that axis.
func NewStrided(dims []Dim, offset int) Shape {
	out := make([]Dim, len(dims))
	copy(out, dims)
	stride := 1
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].Stride == Auto {
			out[i].Stride = stride
		}
		stride *= out[i].Length
	}
	return Shape{dims: out, offset: offset}
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.dims)
}

// Offset returns the base offset into the flat buffer.
func (s Shape) Offset() int {
	return s.offset
}

// Dims returns a copy of the dimensions.
func (s Shape) Dims() []Dim {
	out := make([]Dim, len(s.dims))
	copy(out, s.dims)
	return out
}

// Dim returns dimension i.
func (s Shape) Dim(i int) Dim {
	return s.dims[i]
}

// Lengths returns the per-dimension lengths.
func (s Shape) Lengths() []int {
	out := make([]int, len(s.dims))
	for i, d := range s.dims {
		out[i] = d.Length
	}
	return out
}

// Strides returns the per-dimension strides.
func (s Shape) Strides() []int {
	out := make([]int, len(s.dims))
	for i, d := range s.dims {
		out[i] = d.Stride
	}
	return out
}

// Elements returns the product of the dimension lengths (1 for rank 0).
func (s Shape) Elements() int {
	n := 1
	for _, d := range s.dims {
		n *= d.Length
	}
	return n
}

// span returns the smallest and largest flat offsets reachable.
func (s Shape) span() (lo, hi int) {
	lo, hi = s.offset, s.offset
	for _, d := range s.dims {
		reach := (d.Length - 1) * d.Stride
		if reach > 0 {
			hi += reach
		} else {
			lo += reach
		}
	}
	return lo, hi
}

// Span returns the smallest and largest flat offsets reachable through the
// shape. It is only meaningful when Elements() > 0.
func (s Shape) Span() (lo, hi int) {
	return s.span()
}

// Length returns the number of buffer elements the shape needs: the largest
// reachable offset plus one, or 0 when the shape has no elements.
func (s Shape) Length() int {
	if s.Elements() == 0 {
		return 0
	}
	_, hi := s.span()
	return hi + 1
}

// Validate checks that every reachable offset lies inside a buffer of
// bufferLen elements.
func (s Shape) Validate(bufferLen int) error {
	for i, d := range s.dims {
		if d.Length < 0 {
			return errors.Wrapf(ErrDimensionSize, "dimension %d has negative length %d", i, d.Length)
		}
	}
	if s.Elements() == 0 {
		return nil
	}
	lo, hi := s.span()
	if lo < 0 {
		return errors.Wrapf(ErrDimensionSize, "shape %s reaches offset %d", s, lo)
	}
	if hi >= bufferLen {
		return errors.Wrapf(ErrDimensionSize, "the length of the data is %d but the shape %s requires %d elements",
			bufferLen, s, hi+1)
	}
	return nil
}

// Index returns the flat offset of a full multi-index.
// It panics if the number of indices differs from the rank or an index is
// outside its dimension; use Locate for a checked variant.
func (s Shape) Index(idx ...int) int {
	if len(idx) != len(s.dims) {
		exceptions.Panicf("shape %s: expected %d indices, got %d", s, len(s.dims), len(idx))
	}
	pos := s.offset
	for i, n := range idx {
		d := s.dims[i]
		if n < 0 || n >= d.Length {
			exceptions.Panicf("shape %s: index %d out of bounds for dimension %d (size %d)", s, n, i, d.Length)
		}
		pos += n * d.Stride
	}
	return pos
}

// Locate is the checked variant of Index.
func (s Shape) Locate(idx ...int) (int, error) {
	if len(idx) != len(s.dims) {
		return 0, errors.Wrapf(ErrShapeMismatch, "shape %s: expected %d indices, got %d", s, len(s.dims), len(idx))
	}
	pos := s.offset
	for i, n := range idx {
		d := s.dims[i]
		if n < 0 || n >= d.Length {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d for dimension %d (size %d)", n, i, d.Length)
		}
		pos += n * d.Stride
	}
	return pos, nil
}

// Equal reports whether both shapes have the same lengths, strides and
// offset.
func (s Shape) Equal(other Shape) bool {
	if s.offset != other.offset || len(s.dims) != len(other.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// SameLengths reports whether both shapes have the same rank and lengths.
func (s Shape) SameLengths(other Shape) bool {
	if len(s.dims) != len(other.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i].Length != other.dims[i].Length {
			return false
		}
	}
	return true
}

// Plain returns a row-major shape with the same lengths and offset 0.
func (s Shape) Plain() Shape {
	return New(s.Lengths()...)
}

// IsContiguous reports whether the shape addresses a dense row-major block.
func (s Shape) IsContiguous() bool {
	stride := 1
	for i := len(s.dims) - 1; i >= 0; i-- {
		d := s.dims[i]
		if d.Length != 1 && d.Stride != stride {
			return false
		}
		stride *= d.Length
	}
	return true
}

// WithOffset returns a copy of s with a different base offset.
func (s Shape) WithOffset(offset int) Shape {
	return Shape{dims: s.Dims(), offset: offset}
}

// Reversed returns the shape with its dimension order reversed.
func (s Shape) Reversed() Shape {
	dims := make([]Dim, len(s.dims))
	for i, d := range s.dims {
		dims[len(dims)-1-i] = d
	}
	return Shape{dims: dims, offset: s.offset}
}

// Permute reorders the dimensions: dimension i of the result is dimension
// axes[i] of s.
func (s Shape) Permute(axes ...int) (Shape, error) {
	if len(axes) != len(s.dims) {
		return Shape{}, errors.Wrapf(ErrInvalidAxis, "permute %v of shape %s", axes, s)
	}
	seen := make([]bool, len(axes))
	dims := make([]Dim, len(axes))
	for i, a := range axes {
		if a < 0 || a >= len(axes) || seen[a] {
			return Shape{}, errors.Wrapf(ErrInvalidAxis, "permute %v of shape %s", axes, s)
		}
		seen[a] = true
		dims[i] = s.dims[a]
	}
	return Shape{dims: dims, offset: s.offset}, nil
}

// DropDim removes dimension i, keeping the offset.
func (s Shape) DropDim(i int) Shape {
	dims := make([]Dim, 0, len(s.dims)-1)
	dims = append(dims, s.dims[:i]...)
	dims = append(dims, s.dims[i+1:]...)
	return Shape{dims: dims, offset: s.offset}
}

// InsertDim inserts d before dimension i (i may equal the rank).
func (s Shape) InsertDim(i int, d Dim) Shape {
	dims := make([]Dim, 0, len(s.dims)+1)
	dims = append(dims, s.dims[:i]...)
	dims = append(dims, d)
	dims = append(dims, s.dims[i:]...)
	return Shape{dims: dims, offset: s.offset}
}

// WithDim replaces dimension i.
func (s Shape) WithDim(i int, d Dim) Shape {
	dims := s.Dims()
	dims[i] = d
	return Shape{dims: dims, offset: s.offset}
}

// NormalizeAxis resolves a possibly negative axis against rank.
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, errors.Wrapf(ErrInvalidAxis, "axis %d for rank %d", axis, rank)
	}
	return axis, nil
}

// String returns the lengths, e.g. "(3, 4)", followed by strides and offset
// when they differ from a plain row-major layout.
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range s.dims {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", d.Length)
	}
	sb.WriteByte(')')
	if s.offset != 0 || !s.IsContiguous() {
		fmt.Fprintf(&sb, "{strides=%v, offset=%d}", s.Strides(), s.offset)
	}
	return sb.String()
}
