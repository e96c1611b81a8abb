package accessor

import (
	"sync"

	"github.com/eapache/queue"
	"k8s.io/klog/v2"
)

// Queue accumulates deferred operations and runs them in submission order.
// Every Queued accessor created by one LazyFactory shares a single Queue, so
// work touching several of them keeps program order.
type Queue struct {
	mu       sync.Mutex // protects ops and executed
	drain    sync.Mutex // held for the whole of Flush
	ops      *queue.Queue
	executed int
}

// pendingOp is a single operation waiting to be executed.
type pendingOp struct {
	name string // for tracing, e.g. "copy", "generate"
	run  func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{ops: queue.New()}
}

// Enqueue adds an operation to the end of the queue.
func (q *Queue) Enqueue(name string, fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops.Add(pendingOp{name: name, run: fn})
}

// Len returns the number of queued operations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ops.Length()
}

// Executed returns the number of operations run since the queue was created.
func (q *Queue) Executed() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.executed
}

// Flush runs every queued operation, including ones enqueued while flushing,
// and returns how many ran. Concurrent callers block until the queue is
// drained. Operations must not call Flush themselves.
func (q *Queue) Flush() int {
	q.drain.Lock()
	defer q.drain.Unlock()

	n := 0
	var names map[string]int
	for {
		q.mu.Lock()
		if q.ops.Length() == 0 {
			q.mu.Unlock()
			break
		}
		op := q.ops.Remove().(pendingOp)
		q.mu.Unlock()

		op.run()
		n++

		q.mu.Lock()
		q.executed++
		q.mu.Unlock()

		if klog.V(3).Enabled() {
			if names == nil {
				names = make(map[string]int)
			}
			names[op.name]++
		}
	}
	if n > 0 && klog.V(2).Enabled() {
		klog.Infof("accessor: flushed %d queued operations %v", n, names)
	}
	return n
}

// Queued is a lazy accessor: writes scheduled through Enqueue only happen
// when the queue is flushed, explicitly or by reading Data.
type Queued[T any] struct {
	data  []T
	queue *Queue
}

// NewQueued allocates a zeroed buffer of n elements deferring to q.
func NewQueued[T any](n int, q *Queue) *Queued[T] {
	return &Queued[T]{data: make([]T, n), queue: q}
}

// WrapQueued returns a lazy accessor over data deferring to q.
func WrapQueued[T any](data []T, q *Queue) *Queued[T] {
	return &Queued[T]{data: data, queue: q}
}

// Len returns the number of elements.
func (a *Queued[T]) Len() int {
	return len(a.data)
}

// Data flushes the queue and returns the buffer.
func (a *Queued[T]) Data() []T {
	a.queue.Flush()
	return a.data
}

// Raw returns the buffer without flushing.
func (a *Queued[T]) Raw() []T {
	return a.data
}

// Flush runs every queued operation.
func (a *Queued[T]) Flush() {
	a.queue.Flush()
}

// Enqueue defers fn until the next flush.
func (a *Queued[T]) Enqueue(name string, fn func()) {
	a.queue.Enqueue(name, fn)
}

// Pending returns the number of operations waiting in the queue.
func (a *Queued[T]) Pending() int {
	return a.queue.Len()
}

// Queue returns the shared queue.
func (a *Queued[T]) Queue() *Queue {
	return a.queue
}

// LazyFactory creates Queued accessors sharing one Queue.
type LazyFactory[T any] struct {
	queue *Queue
}

// NewLazyFactory returns a factory with a fresh queue.
func NewLazyFactory[T any]() *LazyFactory[T] {
	return &LazyFactory[T]{queue: NewQueue()}
}

// NewLazyFactoryOn returns a factory deferring to an existing queue, so
// arrays of different element types can share program order.
func NewLazyFactoryOn[T any](q *Queue) *LazyFactory[T] {
	return &LazyFactory[T]{queue: q}
}

// Queue returns the factory's queue.
func (f *LazyFactory[T]) Queue() *Queue {
	return f.queue
}

// Create allocates a zeroed Queued accessor.
func (f *LazyFactory[T]) Create(n int) Accessor[T] {
	return NewQueued[T](n, f.queue)
}

// Wrap returns a Queued accessor over data.
func (f *LazyFactory[T]) Wrap(data []T) Accessor[T] {
	return WrapQueued(data, f.queue)
}

var (
	_ Lazy[float32]    = (*Queued[float32])(nil)
	_ Factory[float32] = (*LazyFactory[float32])(nil)
)
