// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides strided N-dimensional array views with NumPy-style
// broadcasting and deferred elementwise execution.
//
// # Overview
//
// An Array pairs a Shape (per-dimension length and stride plus a base
// offset) with a backing accessor. Reshaping, slicing, transposing and
// subviews only compute a new Shape: the result shares the accessor, so
// writes through one view are visible through every other view of the same
// storage. Clone and Flatten are the operations that copy.
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	func main() {
//	    var cfg ndarray.Config[float32]
//
//	    a := ndarray.Arange[float32](12, cfg)
//	    m, _ := a.ReshapeLengths(3, 4)
//
//	    col, _ := m.Slice(ndarray.All(), ndarray.El(2)) // (3), shares storage
//	    col.Set(0)                                      // writes into a
//
//	    t := m.Transposed()   // (4, 3), zero-copy
//	    c := t.Clone()        // independent row-major copy
//	}
//
// # Ranges
//
// Slice and SubviewRange take Range values:
//
//	ndarray.All()          // the whole dimension
//	ndarray.Span(1, 3)     // [1, 3)
//	ndarray.Span(-2, 0)    // the last two elements
//	ndarray.Step(0, 0, 2)  // every other element
//	ndarray.El(1)          // one element; Slice drops it when trailing
//	ndarray.NewAxis()      // insert a length-1, stride-0 dimension
//	ndarray.Rev()          // the whole dimension, reversed
//
// # Broadcasting
//
// AssignSlice and the arithmetic helpers follow NumPy broadcasting rules:
//
//	a := ... // (3, 1)
//	b := ... // (1, 4)
//	c, _ := ndarray.Add(a, b) // (3, 4)
//
// # Deferred Execution
//
// Arrays built with a lazy configuration queue their elementwise work
// instead of running it:
//
//	cfg := ndarray.Lazy[float32]()
//	a, _ := ndarray.Full(float32(1), cfg, 1024)
//	b := a.Clone()     // queued
//	_ = b.Pending()    // 2
//	data := b.Data()   // flushes the queue, then returns the buffer
//
// Every accessor created from one lazy factory shares a queue, so work runs
// in program order. Operations whose operands live on different queues run
// immediately after draining both. Methods that may flush say so.
//
// # Errors
//
// Errors wrap the package sentinels (ErrDimensionSize, ErrIndexOutOfRange,
// ErrShapeMismatch, ErrSizeMismatch, ErrInvalidAxis, ErrInvalidRange) and
// are matched with errors.Is. At, Values.At and Shape.Index panic instead.
package ndarray
