package tensor

import (
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Reshape returns a view of the same storage with shape s. Nothing is
// copied; s only has to fit inside the accessor.
func (a *Array[T]) Reshape(s shape.Shape) (*Array[T], error) {
	if err := s.Validate(a.acc.Len()); err != nil {
		return nil, err
	}
	return a.view(s), nil
}

// ReshapeLengths returns a row-major view with new lengths and the same
// number of elements. a must be contiguous.
//
// Example:
//
//	m, _ := tensor.Arange[int](6, cfg).ReshapeLengths(2, 3)
func (a *Array[T]) ReshapeLengths(lengths ...int) (*Array[T], error) {
	s := shape.New(lengths...).WithOffset(a.shape.Offset())
	if s.Elements() != a.shape.Elements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape %s (%d elements) to %v", a.shape, a.shape.Elements(), lengths)
	}
	if !a.shape.IsContiguous() {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape non-contiguous %s to %v, clone it first", a.shape, lengths)
	}
	return a.Reshape(s)
}

// Subview selects one element along the leading dimension and drops that
// dimension. Negative indices count from the end.
//
// A 1-D array yields a 1-D view of length 1, so the result can still be
// enumerated.
func (a *Array[T]) Subview(index int) (*Array[T], error) {
	if a.shape.Rank() == 0 {
		return nil, errors.Wrapf(ErrInvalidAxis, "subview of a rank-0 array")
	}
	d := a.shape.Dim(0)
	if index < 0 {
		index += d.Length
	}
	if index < 0 || index >= d.Length {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d for dimension of size %d", index, d.Length)
	}
	offset := a.shape.Offset() + index*d.Stride
	if a.shape.Rank() == 1 {
		return a.view(shape.NewStrided([]shape.Dim{{Length: 1, Stride: d.Stride}}, offset)), nil
	}
	return a.view(a.shape.DropDim(0).WithOffset(offset)), nil
}

// SubviewRange applies r to dimension dim.
func (a *Array[T]) SubviewRange(r shape.Range, dim int) (*Array[T], error) {
	s, err := a.shape.SubRange(r, dim)
	if err != nil {
		return nil, err
	}
	return a.view(s), nil
}

// Get applies Subview once per index, left to right.
func (a *Array[T]) Get(idx ...int) (*Array[T], error) {
	v := a
	for i, n := range idx {
		var err error
		if v, err = v.Subview(n); err != nil {
			return nil, errors.WithMessagef(err, "index %d of %v", i, idx)
		}
	}
	if v == a {
		v = a.view(a.shape)
	}
	return v, nil
}

// At is Get for indices known to be valid. It panics otherwise.
func (a *Array[T]) At(idx ...int) *Array[T] {
	v, err := a.Get(idx...)
	if err != nil {
		exceptions.Panicf("%+v", err)
	}
	return v
}

// Slice applies ranges[i] to dimension i, left to right.
//
// When every dimension was addressed, trailing dimensions pinned by El
// ranges are dropped, down to rank 1:
//
//	m.Slice(shape.All(), shape.El(2)) // column 2, rank 1
//	m.Slice(shape.El(1), shape.All()) // row 1, rank 2 with a leading 1
func (a *Array[T]) Slice(ranges ...shape.Range) (*Array[T], error) {
	s := a.shape
	for i, r := range ranges {
		var err error
		if s, err = s.SubRange(r, i); err != nil {
			return nil, err
		}
	}
	for k := len(ranges) - 1; k > 0 && k == s.Rank()-1; k-- {
		if !ranges[k].IsSingle() || s.Dim(k).Length != 1 {
			break
		}
		s = s.DropDim(k)
	}
	return a.view(s), nil
}
