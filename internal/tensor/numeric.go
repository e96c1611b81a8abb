package tensor

import (
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// Zeros allocates a row-major array of the given lengths filled with 0.
func Zeros[T ufunc.Number](cfg Config[T], lengths ...int) (*Array[T], error) {
	return New(shape.New(lengths...), cfg)
}

// Full allocates a row-major array of the given lengths filled with v.
func Full[T any](v T, cfg Config[T], lengths ...int) (*Array[T], error) {
	a, err := New(shape.New(lengths...), cfg)
	if err != nil {
		return nil, err
	}
	a.Set(v)
	return a, nil
}

// Arange returns the 1-D array [0, 1, ..., n-1].
func Arange[T ufunc.Number](n int, cfg Config[T]) *Array[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = T(i)
	}
	return FromSlice(data, cfg)
}

// Add returns a + b, broadcasting both operands.
func Add[T ufunc.Number](a, b *Array[T]) (*Array[T], error) {
	return binary[T](ufunc.AddOp[T]{}, a, b)
}

// Sub returns a - b, broadcasting both operands.
func Sub[T ufunc.Number](a, b *Array[T]) (*Array[T], error) {
	return binary[T](ufunc.SubOp[T]{}, a, b)
}

// Mul returns a * b elementwise, broadcasting both operands.
func Mul[T ufunc.Number](a, b *Array[T]) (*Array[T], error) {
	return binary[T](ufunc.MulOp[T]{}, a, b)
}

// Div returns a / b elementwise, broadcasting both operands.
func Div[T ufunc.Number](a, b *Array[T]) (*Array[T], error) {
	return binary[T](ufunc.DivOp[T]{}, a, b)
}

// binary allocates the broadcast result with a's config and applies op.
func binary[T any](op ufunc.BinaryOp[T], a, b *Array[T]) (*Array[T], error) {
	lengths, _, err := shape.BroadcastLengths(a.shape.Lengths(), b.shape.Lengths())
	if err != nil {
		return nil, err
	}
	out := a.alloc(shape.New(lengths...))
	if err := ufunc.ApplyBinary(op, a.operand(), b.operand(), out.operand(), a.cfg.Parallel); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply writes op(x) for every element x of a into a new array.
func Apply[T any](op ufunc.UnaryOp[T], a *Array[T]) (*Array[T], error) {
	out := a.alloc(a.shape.Plain())
	if err := ufunc.Apply(op, a.operand(), out.operand(), a.cfg.Parallel); err != nil {
		return nil, err
	}
	return out, nil
}
