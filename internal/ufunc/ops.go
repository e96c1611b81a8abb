// Package ufunc applies elementwise operators to array views.
//
// Operands are (Shape, Accessor) pairs. Inputs are broadcast to the output
// shape; the output is never stretched. When the output accessor is lazy and
// every input shares its queue, the work is enqueued instead of run.
package ufunc

import "golang.org/x/exp/constraints"

// UnaryOp maps one input element to one output element.
type UnaryOp[T any] interface {
	Op(in T) T
}

// BinaryOp combines two input elements into one output element.
type BinaryOp[T any] interface {
	Op(a, b T) T
}

// Generator produces output elements without reading any input.
type Generator[T any] interface {
	Generate() T
}

// Number is the constraint of the arithmetic catalog.
type Number interface {
	constraints.Integer | constraints.Float
}

// CopyOp copies its input.
type CopyOp[T any] struct{}

// Op implements UnaryOp.
func (CopyOp[T]) Op(in T) T { return in }

// GenerateOp fills the output with Value.
type GenerateOp[T any] struct {
	Value T
}

// Generate implements Generator.
func (g GenerateOp[T]) Generate() T { return g.Value }

// AddOp is a + b.
type AddOp[T Number] struct{}

// Op implements BinaryOp.
func (AddOp[T]) Op(a, b T) T { return a + b }

// SubOp is a - b.
type SubOp[T Number] struct{}

// Op implements BinaryOp.
func (SubOp[T]) Op(a, b T) T { return a - b }

// MulOp is a * b.
type MulOp[T Number] struct{}

// Op implements BinaryOp.
func (MulOp[T]) Op(a, b T) T { return a * b }

// DivOp is a / b. Integer division by zero panics as in Go.
type DivOp[T Number] struct{}

// Op implements BinaryOp.
func (DivOp[T]) Op(a, b T) T { return a / b }

// ScaleOp multiplies its input by Factor.
type ScaleOp[T Number] struct {
	Factor T
}

// Op implements UnaryOp.
func (s ScaleOp[T]) Op(in T) T { return in * s.Factor }

// UnaryFunc adapts a plain function to UnaryOp.
type UnaryFunc[T any] func(T) T

// Op implements UnaryOp.
func (f UnaryFunc[T]) Op(in T) T { return f(in) }

// BinaryFunc adapts a plain function to BinaryOp.
type BinaryFunc[T any] func(a, b T) T

// Op implements BinaryOp.
func (f BinaryFunc[T]) Op(a, b T) T { return f(a, b) }
