package tensor

import (
	"github.com/born-ml/ndarray/internal/accessor"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Config controls how arrays allocate storage and run elementwise work.
// The zero value selects dense in-process accessors and the default
// parallel configuration.
//
// Arrays derived from another array (views, clones, repeats, concatenations)
// inherit its Config.
type Config[T any] struct {
	// Factory creates the backing accessors. Use accessor.NewLazyFactory to
	// defer work until a flush.
	Factory accessor.Factory[T]

	// Parallel controls how the apply engine splits large copies.
	Parallel parallel.Config
}

// resolve fills in defaults and returns a pointer shared by every array
// built from this Config.
func (c Config[T]) resolve() *Config[T] {
	if c.Factory == nil {
		c.Factory = accessor.DenseFactory[T]{}
	}
	if c.Parallel.IsZero() {
		c.Parallel = parallel.DefaultConfig()
	}
	return &c
}

// Lazy returns a Config whose arrays share one fresh queue.
func Lazy[T any]() Config[T] {
	return Config[T]{Factory: accessor.NewLazyFactory[T]()}
}
