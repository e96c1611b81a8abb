package ufunc

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/accessor"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Operand is one side of an elementwise operation: a view onto an accessor.
type Operand[T any] struct {
	Shape shape.Shape
	Acc   accessor.Accessor[T]
}

// Apply writes op(in) into every element of out. in is broadcast to out.
//
// If out is lazy and in shares its queue, the work is deferred until the
// queue is flushed; otherwise it runs before Apply returns, flushing any
// queued work on either operand first.
func Apply[T any](op UnaryOp[T], in, out Operand[T], cfg parallel.Config) error {
	stretched, err := in.Shape.BroadcastTo(out.Shape.Lengths())
	if err != nil {
		return errors.WithMessagef(err, "%s", opName(op))
	}
	p := &plan[T]{
		name: opName(op),
		out:  out,
		ins:  []Operand[T]{{Shape: stretched, Acc: in.Acc}},
		cfg:  cfg,
		kernel: func(dst []T, srcs [][]T, offs []int) {
			dst[offs[0]] = op.Op(srcs[0][offs[1]])
		},
	}
	schedule(p)
	return nil
}

// Copy copies in into out, broadcasting in to out's shape.
func Copy[T any](in, out Operand[T], cfg parallel.Config) error {
	return Apply[T](CopyOp[T]{}, in, out, cfg)
}

// Generate writes gen.Generate() into every element of out.
func Generate[T any](gen Generator[T], out Operand[T], cfg parallel.Config) error {
	p := &plan[T]{
		name: opName(gen),
		out:  out,
		cfg:  cfg,
		kernel: func(dst []T, _ [][]T, offs []int) {
			dst[offs[0]] = gen.Generate()
		},
	}
	schedule(p)
	return nil
}

// ApplyBinary writes op(a, b) into every element of out. a and b are
// broadcast to out.
func ApplyBinary[T any](op BinaryOp[T], a, b, out Operand[T], cfg parallel.Config) error {
	lengths := out.Shape.Lengths()
	sa, err := a.Shape.BroadcastTo(lengths)
	if err != nil {
		return errors.WithMessagef(err, "%s: left operand", opName(op))
	}
	sb, err := b.Shape.BroadcastTo(lengths)
	if err != nil {
		return errors.WithMessagef(err, "%s: right operand", opName(op))
	}
	p := &plan[T]{
		name: opName(op),
		out:  out,
		ins:  []Operand[T]{{Shape: sa, Acc: a.Acc}, {Shape: sb, Acc: b.Acc}},
		cfg:  cfg,
		kernel: func(dst []T, srcs [][]T, offs []int) {
			dst[offs[0]] = op.Op(srcs[0][offs[1]], srcs[1][offs[2]])
		},
	}
	schedule(p)
	return nil
}

func opName(op any) string {
	return fmt.Sprintf("%T", op)
}

// schedule runs p now or enqueues it on the output's queue.
func schedule[T any](p *plan[T]) {
	lz, lazy := accessor.AsLazy(p.out.Acc)
	if !lazy {
		p.flushInputs()
		p.run()
		return
	}
	for _, in := range p.ins {
		inLz, ok := accessor.AsLazy(in.Acc)
		if !ok || inLz.Queue() != lz.Queue() {
			klog.V(3).Infof("ufunc: %s runs eagerly, its operands do not share a queue", p.name)
			lz.Flush()
			p.flushInputs()
			p.run()
			return
		}
	}
	lz.Enqueue(p.name, p.run)
}

// plan is one elementwise operation, ready to run against raw buffers.
type plan[T any] struct {
	name string
	out  Operand[T]
	ins  []Operand[T] // already stretched to out's lengths
	cfg  parallel.Config

	// kernel handles one element: offs[0] indexes dst, offs[1+i] indexes srcs[i].
	kernel func(dst []T, srcs [][]T, offs []int)
}

func (p *plan[T]) flushInputs() {
	for _, in := range p.ins {
		accessor.Flush(in.Acc)
	}
}

// run executes the plan. It reads raw buffers and never flushes, so it is
// safe to call from inside a queue drain.
func (p *plan[T]) run() {
	outShape := p.out.Shape
	elements := outShape.Elements()
	if elements == 0 {
		return
	}

	dst := accessor.Buffer(p.out.Acc)
	srcs := make([][]T, len(p.ins))
	strides := make([][]int, 1+len(p.ins))
	bases := make([]int, 1+len(p.ins))
	strides[0] = outShape.Strides()
	bases[0] = outShape.Offset()
	for i, in := range p.ins {
		buf := accessor.Buffer(in.Acc)
		base := in.Shape.Offset()
		if in.Acc == p.out.Acc && aliased(in.Shape, outShape) {
			// Reading and writing overlapping regions: read from a snapshot.
			lo, hi := in.Shape.Span()
			buf = append([]T(nil), buf[lo:hi+1]...)
			base -= lo
		}
		srcs[i] = buf
		strides[1+i] = in.Shape.Strides()
		bases[1+i] = base
	}

	visit := func(offs []int) { p.kernel(dst, srcs, offs) }
	lengths := outShape.Lengths()
	if len(lengths) == 0 {
		visit(bases)
		return
	}

	cfg := p.cfg
	if outShape.Overlapping() {
		// Several indices write the same element: keep the write order.
		cfg.Enabled = false
	}
	rows := lengths[0]
	perRow := elements / rows
	cfg.MinChunkSize = max(1, (cfg.MinChunkSize+perRow-1)/perRow)
	parallel.ForChunks(rows, func(start, end int) {
		walk(lengths, strides, bases, start, end, visit)
	}, cfg)
}

// aliased reports whether reading in while writing out may observe
// already-written elements.
func aliased(in, out shape.Shape) bool {
	if in.Equal(out) {
		// Element i is read before it is written, and by nobody else.
		return false
	}
	inLo, inHi := in.Span()
	outLo, outHi := out.Span()
	return inLo <= outHi && outLo <= inHi
}

// walk visits every multi-index with leading index in [lo, hi) in row-major
// order, passing the flat offset of each operand. Dimension 0 must exist.
func walk(lengths []int, strides [][]int, bases []int, lo, hi int, visit func(offs []int)) {
	rank := len(lengths)
	for _, n := range lengths[1:] {
		if n == 0 {
			return
		}
	}
	cur := make([]int, len(bases))
	idx := make([]int, rank)
	for i0 := lo; i0 < hi; i0++ {
		for k := range cur {
			cur[k] = bases[k] + i0*strides[k][0]
		}
		for d := 1; d < rank; d++ {
			idx[d] = 0
		}
		for {
			visit(cur)

			// Ripple-carry increment over dimensions 1..rank-1.
			d := rank - 1
			for ; d >= 1; d-- {
				idx[d]++
				for k := range cur {
					cur[k] += strides[k][d]
				}
				if idx[d] < lengths[d] {
					break
				}
				for k := range cur {
					cur[k] -= strides[k][d] * lengths[d]
				}
				idx[d] = 0
			}
			if d < 1 {
				break
			}
		}
	}
}
