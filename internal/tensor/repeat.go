package tensor

import (
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/born-ml/ndarray/internal/ufunc"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Repeat repeats every element n times over the row-major ordering of a and
// returns a 1-D array.
//
// Example:
//
//	[[1, 2], [3, 4]].Repeat(2) → [1, 1, 2, 2, 3, 3, 4, 4]
func (a *Array[T]) Repeat(n int) (*Array[T], error) {
	return a.repeat(n, 0, false)
}

// RepeatAxis repeats every element n times along axis. Element i of the
// result along axis reads element i/n of a. Negative axes count from the
// end.
func (a *Array[T]) RepeatAxis(n, axis int) (*Array[T], error) {
	return a.repeat(n, axis, true)
}

// repeat inserts a stride-0 axis right after the repeated one, broadcasts it
// to n and copies. Row-major order then places the n copies of an element
// next to each other.
func (a *Array[T]) repeat(n, axis int, hasAxis bool) (*Array[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrSizeMismatch, "negative repeat count %d", n)
	}
	insert := a.shape.Rank()
	if hasAxis {
		ax, err := shape.NormalizeAxis(axis, a.shape.Rank())
		if err != nil {
			return nil, err
		}
		axis, insert = ax, ax+1
	}
	src, err := a.shape.SubRange(shape.NewAxis(), insert)
	if err != nil {
		return nil, err
	}
	target := src.Lengths()
	target[insert] = n

	res := a.alloc(shape.New(target...))
	in := ufunc.Operand[T]{Shape: src, Acc: a.acc}
	if err := ufunc.Copy(in, res.operand(), a.cfg.Parallel); err != nil {
		return nil, err
	}

	if !hasAxis {
		res.shape = shape.New(res.shape.Elements())
		return res, nil
	}
	lengths := a.shape.Lengths()
	lengths[axis] *= n
	res.shape = shape.New(lengths...)
	return res, nil
}

// RepeatEach repeats element i of the row-major ordering of a
// counts[i%len(counts)] times and returns a 1-D array. len(counts) must
// divide the number of elements.
//
// RepeatEach reads a's values, so it flushes lazy arrays.
func (a *Array[T]) RepeatEach(counts []int) (*Array[T], error) {
	elements := a.shape.Elements()
	if err := checkCounts(counts, elements); err != nil {
		return nil, err
	}
	total := 0
	for i := range elements {
		total += counts[i%len(counts)]
	}
	result := make([]T, 0, total)

	data := a.acc.Data()
	rank := a.shape.Rank()
	lengths := a.shape.Lengths()
	counters := make([]int, rank)
	for i := range elements {
		v := data[a.shape.Index(counters...)]
		for range counts[i%len(counts)] {
			result = append(result, v)
		}

		// Ripple-carry increment of the multi-index.
		for p := rank - 1; p >= 0; p-- {
			counters[p]++
			if counters[p] < lengths[p] {
				break
			}
			counters[p] = 0
		}
	}
	klog.V(3).Infof("tensor: per-element repeat of %s produced %d elements", a.shape, total)
	return newArray(a.cfg.Factory.Wrap(result), shape.New(total), a.cfg), nil
}

// RepeatEachAxis repeats slice i along axis counts[i%len(counts)] times.
// len(counts) must divide the length of axis.
//
// Example:
//
//	[[1, 2], [3, 4]].RepeatEachAxis([]int{1, 2}, 0) → [[1, 2], [3, 4], [3, 4]]
func (a *Array[T]) RepeatEachAxis(counts []int, axis int) (*Array[T], error) {
	ax, err := shape.NormalizeAxis(axis, a.shape.Rank())
	if err != nil {
		return nil, err
	}
	n := a.shape.Dim(ax).Length
	if err := checkCounts(counts, n); err != nil {
		return nil, err
	}
	expanded := make([]int, n)
	total := 0
	for i := range expanded {
		expanded[i] = counts[i%len(counts)]
		total += expanded[i]
	}

	lengths := a.shape.Lengths()
	lengths[ax] = total
	res := a.alloc(shape.New(lengths...))

	start := 0
	for i, c := range expanded {
		if c == 0 {
			// Span(0, 0) would select the whole dimension.
			continue
		}
		src, err := a.shape.SubRange(shape.El(i), ax)
		if err != nil {
			return nil, err
		}
		dst, err := res.shape.SubRange(shape.Span(start, start+c), ax)
		if err != nil {
			return nil, err
		}
		in := ufunc.Operand[T]{Shape: src, Acc: a.acc}
		out := ufunc.Operand[T]{Shape: dst, Acc: res.acc}
		if err := ufunc.Copy(in, out, a.cfg.Parallel); err != nil {
			return nil, err
		}
		start += c
	}
	return res, nil
}

func checkCounts(counts []int, n int) error {
	if len(counts) == 0 {
		return errors.Wrapf(ErrSizeMismatch, "empty repeat counts for length %d", n)
	}
	if n%len(counts) != 0 {
		return errors.Wrapf(ErrSizeMismatch, "the repeat counts have length %d and do not divide length %d", len(counts), n)
	}
	for _, c := range counts {
		if c < 0 {
			return errors.Wrapf(ErrSizeMismatch, "negative repeat count %d", c)
		}
	}
	return nil
}
