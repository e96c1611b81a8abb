// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package accessor exposes the backing stores behind ndarray views.
//
// An Accessor owns a flat buffer shared by every view built on it. Dense
// accessors run writes immediately. Queued accessors defer them to a Queue
// shared by every accessor of one LazyFactory; Flush, or reading Data,
// drains it.
//
// Example:
//
//	f := accessor.NewLazyFactory[float32]()
//	cfg := ndarray.Config[float32]{Factory: f}
//	a, _ := ndarray.Full(float32(1), cfg, 8)
//	_ = f.Queue().Len() // 1
//	f.Queue().Flush()
package accessor

import (
	"github.com/born-ml/ndarray/internal/accessor"
)

// Accessor is the backing store of one or more array views.
type Accessor[T any] = accessor.Accessor[T]

// Lazy is an Accessor whose writes may be deferred.
type Lazy[T any] = accessor.Lazy[T]

// Factory creates accessors.
type Factory[T any] = accessor.Factory[T]

// Queue runs deferred operations in submission order.
type Queue = accessor.Queue

// Dense is an eager accessor over a Go slice.
type Dense[T any] = accessor.Dense[T]

// Queued is a lazy accessor deferring to a Queue.
type Queued[T any] = accessor.Queued[T]

// DenseFactory creates Dense accessors. Its zero value is ready to use.
type DenseFactory[T any] = accessor.DenseFactory[T]

// LazyFactory creates Queued accessors sharing one Queue.
type LazyFactory[T any] = accessor.LazyFactory[T]

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return accessor.NewQueue()
}

// NewDense allocates a zeroed dense accessor of n elements.
func NewDense[T any](n int) *Dense[T] {
	return accessor.NewDense[T](n)
}

// WrapDense returns a dense accessor over data without copying.
func WrapDense[T any](data []T) *Dense[T] {
	return accessor.WrapDense(data)
}

// NewLazyFactory returns a factory with a fresh queue.
func NewLazyFactory[T any]() *LazyFactory[T] {
	return accessor.NewLazyFactory[T]()
}

// NewLazyFactoryOn returns a factory deferring to q.
func NewLazyFactoryOn[T any](q *Queue) *LazyFactory[T] {
	return accessor.NewLazyFactoryOn[T](q)
}

// AsLazy reports whether acc defers work.
func AsLazy[T any](acc Accessor[T]) (Lazy[T], bool) {
	return accessor.AsLazy(acc)
}

// Flush forces the queued work of acc, if any.
func Flush[T any](acc Accessor[T]) {
	accessor.Flush(acc)
}
