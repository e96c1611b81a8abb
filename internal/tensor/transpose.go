package tensor

import "github.com/born-ml/ndarray/internal/ufunc"

// Transpose reverses the dimension order.
//
// Without out it returns a zero-copy view. With out it copies the reversed
// view into out and returns out. Arrays of rank 0 or 1 come back as an
// equivalent view.
//
// Example:
//
//	m := ... // (2, 3)
//	t, _ := m.Transpose(nil) // (3, 2), same storage
func (a *Array[T]) Transpose(out *Array[T]) (*Array[T], error) {
	if a.shape.Rank() <= 1 {
		return a.view(a.shape), nil
	}
	v := a.view(a.shape.Reversed())
	if out == nil {
		return v, nil
	}
	if err := ufunc.Copy(v.operand(), out.operand(), a.cfg.Parallel); err != nil {
		return nil, err
	}
	return out, nil
}

// Transposed returns the zero-copy transposed view.
func (a *Array[T]) Transposed() *Array[T] {
	v, _ := a.Transpose(nil)
	return v
}

// SetTransposed copies value into the transposed view of a, so that
// a.Transposed() reads back value.
func (a *Array[T]) SetTransposed(value *Array[T]) error {
	return a.Transposed().AssignSlice(value)
}
