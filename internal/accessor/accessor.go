// Package accessor provides the backing stores that array views share.
//
// An Accessor owns a flat buffer. Many views may alias the same Accessor;
// writes through any of them are visible through all of them. A Lazy
// accessor additionally queues work and only runs it when Flush is called
// or when its data is read.
package accessor

// Accessor is the backing store of one or more array views.
//
// Implementations must be comparable (pointer types are expected): views
// use == on accessors to detect aliasing.
type Accessor[T any] interface {
	// Len returns the number of elements in the buffer.
	Len() int

	// Data returns the flat buffer. For lazy accessors this forces every
	// queued operation to complete first.
	Data() []T
}

// Lazy is an Accessor whose writes may be deferred.
type Lazy[T any] interface {
	Accessor[T]

	// Raw returns the flat buffer without flushing. Only queued operations
	// themselves should use it.
	Raw() []T

	// Flush blocks until every queued operation has run.
	Flush()

	// Enqueue defers fn until the next Flush. name is used for tracing.
	Enqueue(name string, fn func())

	// Pending returns the number of queued operations.
	Pending() int

	// Queue returns the queue this accessor defers work to. Accessors that
	// share a queue have their work run in submission order.
	Queue() *Queue
}

// AsLazy reports whether acc defers work.
func AsLazy[T any](acc Accessor[T]) (Lazy[T], bool) {
	lz, ok := acc.(Lazy[T])
	return lz, ok
}

// Buffer returns the flat buffer of acc without forcing queued work.
func Buffer[T any](acc Accessor[T]) []T {
	if lz, ok := AsLazy(acc); ok {
		return lz.Raw()
	}
	return acc.Data()
}

// Flush forces the queued work of acc, if any.
func Flush[T any](acc Accessor[T]) {
	if lz, ok := AsLazy(acc); ok {
		lz.Flush()
	}
}

// Factory creates accessors.
type Factory[T any] interface {
	// Create allocates a zeroed accessor of n elements.
	Create(n int) Accessor[T]

	// Wrap returns an accessor over an existing buffer, without copying.
	Wrap(data []T) Accessor[T]
}
