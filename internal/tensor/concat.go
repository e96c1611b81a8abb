package tensor

import (
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/born-ml/ndarray/internal/ufunc"
	"github.com/pkg/errors"
)

// Concatenate joins arrays along axis into fresh storage allocated with the
// first array's config. Every array must have the same rank and the same
// lengths on every other axis. A single array is returned as-is.
//
// Example:
//
//	a := ... // (2, 3)
//	b := ... // (5, 3)
//	c, _ := tensor.Concatenate([]*tensor.Array[float32]{a, b}, 0) // (7, 3)
func Concatenate[T any](arrays []*Array[T], axis int) (*Array[T], error) {
	if len(arrays) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "concatenate: at least one array required")
	}
	if len(arrays) == 1 {
		return arrays[0], nil
	}

	first := arrays[0]
	rank := first.shape.Rank()
	ax, err := shape.NormalizeAxis(axis, rank)
	if err != nil {
		return nil, err
	}
	lengths := first.shape.Lengths()
	total := 0
	for k, a := range arrays {
		if a.shape.Rank() != rank {
			return nil, errors.Wrapf(ErrShapeMismatch, "concatenate: array %d has rank %d, expected %d", k, a.shape.Rank(), rank)
		}
		for i, n := range a.shape.Lengths() {
			if i == ax {
				total += n
				continue
			}
			if n != lengths[i] {
				return nil, errors.Wrapf(ErrShapeMismatch, "concatenate: array %d has length %d in dimension %d, expected %d",
					k, n, i, lengths[i])
			}
		}
	}
	lengths[ax] = total
	res := first.alloc(shape.New(lengths...))

	start := 0
	for _, a := range arrays {
		n := a.shape.Dim(ax).Length
		if n == 0 {
			continue
		}
		dst, err := res.shape.SubRange(shape.Span(start, start+n), ax)
		if err != nil {
			return nil, err
		}
		if err := ufunc.Copy(a.operand(), ufunc.Operand[T]{Shape: dst, Acc: res.acc}, first.cfg.Parallel); err != nil {
			return nil, err
		}
		start += n
	}
	return res, nil
}

// Concat joins other onto a along axis. See Concatenate.
func (a *Array[T]) Concat(other *Array[T], axis int) (*Array[T], error) {
	return Concatenate([]*Array[T]{a, other}, axis)
}
