// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package accessor_test

import (
	"testing"

	"github.com/born-ml/ndarray/accessor"
)

// TestFactoriesImplementInterface verifies both factories satisfy Factory.
func TestFactoriesImplementInterface(_ *testing.T) {
	var _ accessor.Factory[float32] = accessor.DenseFactory[float32]{}
	var _ accessor.Factory[float32] = (*accessor.LazyFactory[float32])(nil)
	var _ accessor.Lazy[float32] = (*accessor.Queued[float32])(nil)
}

// TestLazyRoundTrip verifies queued work runs on Flush.
func TestLazyRoundTrip(t *testing.T) {
	f := accessor.NewLazyFactory[int]()
	acc := f.Create(2)
	lz, ok := accessor.AsLazy(acc)
	if !ok {
		t.Fatal("LazyFactory accessor is not Lazy")
	}
	lz.Enqueue("fill", func() { lz.Raw()[1] = 5 })
	if lz.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", lz.Pending())
	}
	accessor.Flush(acc)
	if got := lz.Raw()[1]; got != 5 {
		t.Errorf("Raw()[1] = %d, want 5", got)
	}

	if _, ok := accessor.AsLazy[int](accessor.NewDense[int](1)); ok {
		t.Error("Dense accessor reported as Lazy")
	}
}
