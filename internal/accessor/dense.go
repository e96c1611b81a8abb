package accessor

import (
	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"
)

// Dense is an eager in-process accessor over a Go slice.
type Dense[T any] struct {
	data []T
}

// NewDense allocates a zeroed buffer of n elements.
func NewDense[T any](n int) *Dense[T] {
	if klog.V(3).Enabled() {
		klog.Infof("accessor: allocating %s elements", humanize.Comma(int64(n)))
	}
	return &Dense[T]{data: make([]T, n)}
}

// WrapDense returns an accessor over data. The slice is shared, not copied.
func WrapDense[T any](data []T) *Dense[T] {
	return &Dense[T]{data: data}
}

// Len returns the number of elements.
func (d *Dense[T]) Len() int {
	return len(d.data)
}

// Data returns the underlying slice (zero-copy).
//
// WARNING: modifications to the returned slice are visible through every
// view of this accessor.
func (d *Dense[T]) Data() []T {
	return d.data
}

// DenseFactory creates Dense accessors. Its zero value is ready to use.
type DenseFactory[T any] struct{}

// Create allocates a zeroed Dense accessor.
func (DenseFactory[T]) Create(n int) Accessor[T] {
	return NewDense[T](n)
}

// Wrap returns a Dense accessor over data.
func (DenseFactory[T]) Wrap(data []T) Accessor[T] {
	return WrapDense(data)
}

var _ Factory[float32] = DenseFactory[float32]{}
