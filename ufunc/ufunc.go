// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ufunc exposes the elementwise operator catalog used by ndarray.
//
// Operators are small value types; pass them to ndarray.Apply or use the
// arithmetic helpers directly:
//
//	neg := ufunc.UnaryFunc[float32](func(v float32) float32 { return -v })
//	b, _ := ndarray.Apply[float32](neg, a)
//	c, _ := ndarray.Apply[float32](ufunc.ScaleOp[float32]{Factor: 2}, a)
package ufunc

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// UnaryOp maps one input element to one output element.
type UnaryOp[T any] = ufunc.UnaryOp[T]

// BinaryOp combines two input elements.
type BinaryOp[T any] = ufunc.BinaryOp[T]

// Generator produces output elements without input.
type Generator[T any] = ufunc.Generator[T]

// Number is the constraint of the arithmetic operators.
type Number = ufunc.Number

// Operand is a (shape, accessor) pair the apply functions work on.
type Operand[T any] = ufunc.Operand[T]

// ParallelConfig controls how the apply functions split work.
type ParallelConfig = parallel.Config

// CopyOp copies its input.
type CopyOp[T any] = ufunc.CopyOp[T]

// GenerateOp fills the output with Value.
type GenerateOp[T any] = ufunc.GenerateOp[T]

// AddOp is a + b.
type AddOp[T Number] = ufunc.AddOp[T]

// SubOp is a - b.
type SubOp[T Number] = ufunc.SubOp[T]

// MulOp is a * b.
type MulOp[T Number] = ufunc.MulOp[T]

// DivOp is a / b.
type DivOp[T Number] = ufunc.DivOp[T]

// ScaleOp multiplies its input by Factor.
type ScaleOp[T Number] = ufunc.ScaleOp[T]

// UnaryFunc adapts a function to UnaryOp.
type UnaryFunc[T any] = ufunc.UnaryFunc[T]

// BinaryFunc adapts a function to BinaryOp.
type BinaryFunc[T any] = ufunc.BinaryFunc[T]

// DefaultParallelConfig returns the CPU-count based defaults.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Apply writes op(in) into out, broadcasting in. It may defer the work when
// out is lazy.
func Apply[T any](op UnaryOp[T], in, out Operand[T], cfg ParallelConfig) error {
	return ufunc.Apply(op, in, out, cfg)
}

// Copy copies in into out, broadcasting in.
func Copy[T any](in, out Operand[T], cfg ParallelConfig) error {
	return ufunc.Copy(in, out, cfg)
}

// Generate fills out with gen.Generate().
func Generate[T any](gen Generator[T], out Operand[T], cfg ParallelConfig) error {
	return ufunc.Generate(gen, out, cfg)
}

// ApplyBinary writes op(a, b) into out, broadcasting a and b.
func ApplyBinary[T any](op BinaryOp[T], a, b, out Operand[T], cfg ParallelConfig) error {
	return ufunc.ApplyBinary(op, a, b, out, cfg)
}
