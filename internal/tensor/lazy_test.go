package tensor

import (
	"testing"

	"github.com/born-ml/ndarray/internal/accessor"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyPendingUntilFlush(t *testing.T) {
	a := must.M1(Full(float32(2), Lazy[float32](), 4))
	assert.True(t, a.IsLazy())
	assert.Equal(t, 1, a.Pending())
	assert.Equal(t, []float32{0, 0, 0, 0}, accessor.Buffer(a.Accessor()), "nothing runs before a flush")

	a.Flush()
	assert.Equal(t, 0, a.Pending())
	assert.Equal(t, []float32{2, 2, 2, 2}, accessor.Buffer(a.Accessor()))
}

func TestLazyDataForcesFlush(t *testing.T) {
	cfg := Lazy[int]()
	a := must.M1(Full(3, cfg, 2, 2))
	b := a.Transposed().Clone()
	assert.Equal(t, 2, b.Pending(), "Set and Clone share one queue")

	assert.Equal(t, []int{3, 3, 3, 3}, b.Data())
	assert.Equal(t, 0, a.Pending())
}

func TestLazyValuesSeeQueuedWrites(t *testing.T) {
	a := must.M1(Zeros(Lazy[int](), 3))
	a.Set(5)
	require.Equal(t, 1, a.Pending())

	assert.Equal(t, 5, a.Values().At(1))
	assert.Equal(t, 0, a.Pending())
}

func TestLazyKeepsProgramOrder(t *testing.T) {
	cfg := Lazy[int]()
	a := must.M1(Full(1, cfg, 3))
	snapshot := a.Clone()
	a.Set(2)
	b := must.M1(Add(a, snapshot))
	assert.Equal(t, 4, a.Pending())

	assert.Equal(t, []int{1, 1, 1}, snapshot.Data())
	assert.Equal(t, []int{3, 3, 3}, b.Data())
}

func TestCrossQueueFallsBackToEager(t *testing.T) {
	src := must.M1(Full(1, Lazy[int](), 3))
	dst := must.M1(New(shape.New(3), Lazy[int]()))
	require.Equal(t, 1, src.Pending())

	require.NoError(t, dst.AssignSlice(src))
	assert.Equal(t, 0, dst.Pending(), "cross-queue copy runs eagerly")
	assert.Equal(t, 0, src.Pending(), "the input queue is drained first")
	assert.Equal(t, []int{1, 1, 1}, accessor.Buffer(dst.Accessor()))

	// Dense inputs into lazy outputs also run eagerly.
	require.NoError(t, dst.AssignSlice(Arange[int](3, Config[int]{})))
	assert.Equal(t, 0, dst.Pending())
	assert.Equal(t, []int{0, 1, 2}, accessor.Buffer(dst.Accessor()))
}

func TestSharedQueueAcrossElementTypes(t *testing.T) {
	f := accessor.NewLazyFactory[int]()
	g := accessor.NewLazyFactoryOn[float64](f.Queue())

	a := must.M1(Full(1, Config[int]{Factory: f}, 2))
	b := must.M1(Full(0.5, Config[float64]{Factory: g}, 2))
	assert.Equal(t, 2, f.Queue().Len())

	// Reading either array drains both.
	assert.Equal(t, []float64{0.5, 0.5}, b.Data())
	assert.Equal(t, 0, a.Pending())
}

func TestSelfAssignCopiesNothing(t *testing.T) {
	m := must.M1(Full(1, Lazy[int](), 2, 3))
	m.Flush()
	executed := m.cfg.Factory.(*accessor.LazyFactory[int]).Queue().Executed()

	require.NoError(t, m.Assign(m.At(1), 1))
	require.NoError(t, m.AssignSlice(must.M1(m.Slice(shape.Span(0, 1))), shape.Span(0, 1)))
	require.NoError(t, m.AssignSlice(m))
	assert.Equal(t, 0, m.Pending(), "self-assignment must not enqueue a copy")

	m.Flush()
	assert.Equal(t, executed, m.cfg.Factory.(*accessor.LazyFactory[int]).Queue().Executed())
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, m.Data())

	// A real copy between different rows is queued.
	require.NoError(t, m.Assign(Arange[int](3, m.Config()), 0))
	require.NoError(t, m.Assign(m.At(0), 1))
	assert.Equal(t, 2, m.Pending())
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, m.Data())
}

func TestSelfAssignEager(t *testing.T) {
	m := matrix(t, 2, 3)
	before := append([]int(nil), m.Data()...)
	require.NoError(t, m.Assign(m.At(0), 0))
	assert.Equal(t, before, m.Data())
}

func TestParallelCopyMatchesSequential(t *testing.T) {
	const n = 96
	par := Config[int]{Parallel: parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}}
	seq := Config[int]{Parallel: parallel.Config{Enabled: false, NumWorkers: 1}}

	a := must.M1(Arange[int](n*n, par).ReshapeLengths(n, n))
	b := must.M1(Arange[int](n*n, seq).ReshapeLengths(n, n))

	pc := a.Transposed().Clone()
	sc := b.Transposed().Clone()
	assert.Equal(t, sc.Data(), pc.Data())
	assert.Equal(t, n, pc.Values().At(0, 1))
}
