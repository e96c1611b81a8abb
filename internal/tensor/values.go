package tensor

import "iter"

// Values reads and writes single elements of an array. Every call goes
// through Accessor.Data, so queued work on a lazy array is flushed first.
type Values[T any] struct {
	arr *Array[T]
}

// Values returns the element proxy of a.
func (a *Array[T]) Values() Values[T] {
	return Values[T]{arr: a}
}

// Len returns the number of visible elements.
func (v Values[T]) Len() int {
	return v.arr.shape.Elements()
}

// At returns the element at a full multi-index. It panics on a bad index.
func (v Values[T]) At(idx ...int) T {
	return v.arr.acc.Data()[v.arr.shape.Index(idx...)]
}

// Get is the checked variant of At. Bad indices return ErrIndexOutOfRange
// or ErrShapeMismatch.
func (v Values[T]) Get(idx ...int) (T, error) {
	pos, err := v.arr.shape.Locate(idx...)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.arr.acc.Data()[pos], nil
}

// SetAt writes x at a full multi-index. It panics on a bad index.
func (v Values[T]) SetAt(x T, idx ...int) {
	v.arr.acc.Data()[v.arr.shape.Index(idx...)] = x
}

// All yields the visible elements in row-major order with their position
// in that order. For a 1-D array that is the order along dimension 0.
func (v Values[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.arr.shape
		n := s.Elements()
		if n == 0 {
			return
		}
		data := v.arr.acc.Data()
		lengths := s.Lengths()
		strides := s.Strides()
		counters := make([]int, len(lengths))
		pos := s.Offset()
		for i := range n {
			if !yield(i, data[pos]) {
				return
			}
			for p := len(lengths) - 1; p >= 0; p-- {
				counters[p]++
				pos += strides[p]
				if counters[p] < lengths[p] {
					break
				}
				pos -= strides[p] * lengths[p]
				counters[p] = 0
			}
		}
	}
}

// Slice copies the visible elements into a new slice, in row-major order.
func (v Values[T]) Slice() []T {
	out := make([]T, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, x)
	}
	return out
}

// All yields the sub-views along the leading dimension. A rank-0 array
// yields itself once.
func (a *Array[T]) All() iter.Seq2[int, *Array[T]] {
	return func(yield func(int, *Array[T]) bool) {
		if a.shape.Rank() == 0 {
			yield(0, a)
			return
		}
		for i := range a.shape.Dim(0).Length {
			sub, _ := a.Subview(i)
			if !yield(i, sub) {
				return
			}
		}
	}
}
