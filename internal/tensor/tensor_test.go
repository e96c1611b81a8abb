package tensor

import (
	"testing"

	"github.com/born-ml/ndarray/internal/shape"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matrix returns Arange(rows*cols) viewed as rows x cols.
func matrix(t *testing.T, rows, cols int) *Array[int] {
	t.Helper()
	m, err := Arange[int](rows*cols, Config[int]{}).ReshapeLengths(rows, cols)
	require.NoError(t, err)
	return m
}

func TestScalar(t *testing.T) {
	s := Scalar(3.5, Config[float64]{})
	assert.True(t, s.IsScalar())
	assert.Equal(t, []int{1}, s.Lengths())
	assert.Equal(t, 3.5, s.Values().At(0))
	assert.False(t, s.IsLazy())
}

func TestFromSliceShaped(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	m, err := FromSliceShaped(data, shape.New(2, 3), Config[int]{})
	require.NoError(t, err)
	assert.Equal(t, 5, m.Values().At(1, 1))

	// The slice is shared.
	data[4] = 50
	assert.Equal(t, 50, m.Values().At(1, 1))

	_, err = FromSliceShaped([]int{1, 2}, shape.New(3), Config[int]{})
	assert.ErrorIs(t, err, ErrDimensionSize)
}

func TestNewRejectsNegativeLength(t *testing.T) {
	_, err := New(shape.New(2, -1), Config[int]{})
	assert.ErrorIs(t, err, ErrDimensionSize)
}

func TestConfigDefaults(t *testing.T) {
	a := Arange[int](3, Config[int]{})
	cfg := a.Config()
	assert.NotNil(t, cfg.Factory)
	assert.False(t, cfg.Parallel.IsZero())

	// Derived arrays share the resolved config.
	c := a.Clone()
	assert.Same(t, a.cfg, c.cfg)
}

func TestReshapeSharesStorage(t *testing.T) {
	a := Arange[int](6, Config[int]{})
	m := must.M1(a.ReshapeLengths(2, 3))
	assert.True(t, m.SameStorage(a))
	assert.Same(t, &a.Data()[0], &m.Data()[0])

	m.Values().SetAt(42, 1, 2)
	assert.Equal(t, 42, a.Values().At(5))

	_, err := a.Reshape(shape.New(2, 4))
	assert.ErrorIs(t, err, ErrDimensionSize)

	// Any shape that fits the accessor is accepted, even with fewer elements.
	r := must.M1(a.Reshape(shape.New(2, 2).WithOffset(2)))
	assert.Equal(t, []int{2, 3, 4, 42}, r.Values().Slice())
}

func TestReshapeLengthsErrors(t *testing.T) {
	m := matrix(t, 2, 3)
	_, err := m.ReshapeLengths(4)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = m.Transposed().ReshapeLengths(6)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSubview(t *testing.T) {
	m := matrix(t, 2, 3)

	row := must.M1(m.Subview(1))
	assert.Equal(t, []int{3}, row.Lengths())
	assert.Equal(t, []int{3, 4, 5}, row.Values().Slice())

	last := must.M1(m.Subview(-1))
	assert.True(t, last.Shape().Equal(row.Shape()))

	_, err := m.Subview(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.Subview(-3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Arange[int](4, Config[int]{}).Subview(10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSubviewOneDimensionalKeepsRank(t *testing.T) {
	a := Arange[int](6, Config[int]{})
	el := must.M1(a.Subview(4))
	assert.Equal(t, 1, el.Rank())
	assert.Equal(t, []int{1}, el.Lengths())
	assert.Equal(t, []int{4}, el.Values().Slice())
}

func TestSubviewRangeMatchesSource(t *testing.T) {
	v := matrix(t, 4, 5)
	sub := must.M1(v.SubviewRange(shape.Span(1, 3), 0))
	require.Equal(t, []int{2, 5}, sub.Lengths())
	for i := range 2 {
		for j := range 5 {
			assert.Equal(t, v.Values().At(i+1, j), sub.Values().At(i, j), "(%d, %d)", i, j)
		}
	}
}

func TestGetAndAt(t *testing.T) {
	m := matrix(t, 2, 3)

	el := must.M1(m.Get(1, 2))
	assert.Equal(t, []int{5}, el.Values().Slice())

	same := must.M1(m.Get())
	assert.NotSame(t, m, same)
	assert.True(t, same.Shape().Equal(m.Shape()))

	_, err := m.Get(0, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Equal(t, []int{0, 1, 2}, m.At(0).Values().Slice())
	err = exceptions.TryCatch[error](func() { m.At(7) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index out of range")
}

func TestSlice(t *testing.T) {
	m := matrix(t, 3, 4)

	tests := []struct {
		name    string
		ranges  []shape.Range
		lengths []int
		values  []int
	}{
		{"column", []shape.Range{shape.All(), shape.El(2)}, []int{3}, []int{2, 6, 10}},
		{"row keeps leading unit", []shape.Range{shape.El(1), shape.All()}, []int{1, 4}, []int{4, 5, 6, 7}},
		{"element", []shape.Range{shape.El(1), shape.El(2)}, []int{1}, []int{6}},
		{"step and reverse", []shape.Range{shape.Step(0, 0, 2), shape.Rev()}, []int{2, 4}, []int{3, 2, 1, 0, 11, 10, 9, 8}},
		{"negative start", []shape.Range{shape.Span(-2, 0)}, []int{2, 4}, []int{4, 5, 6, 7, 8, 9, 10, 11}},
		{"new axis", []shape.Range{shape.NewAxis(), shape.All()}, []int{1, 3, 4}, nil},
		{"no ranges", nil, []int{3, 4}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := m.Slice(tt.ranges...)
			require.NoError(t, err)
			assert.Equal(t, tt.lengths, v.Lengths())
			assert.True(t, v.SameStorage(m))
			if tt.values != nil {
				assert.Equal(t, tt.values, v.Values().Slice())
			}
		})
	}

	_, err := m.Slice(shape.El(3))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.Slice(shape.Step(0, 0, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestValues(t *testing.T) {
	m := matrix(t, 2, 3)
	vals := m.Values()
	assert.Equal(t, 6, vals.Len())

	v, err := vals.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = vals.Get(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = vals.Get(1)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	err = exceptions.TryCatch[error](func() { vals.SetAt(1, 0, 3) })
	assert.Error(t, err)

	// Early exit from the iterator.
	var seen []int
	for i, x := range m.Transposed().Values().All() {
		if i == 3 {
			break
		}
		seen = append(seen, x)
	}
	assert.Equal(t, []int{0, 3, 1}, seen)
}

func TestEnumerateLeadingAxis(t *testing.T) {
	m := matrix(t, 2, 3)
	var rows [][]int
	for i, row := range m.All() {
		assert.Equal(t, len(rows), i)
		assert.Equal(t, []int{3}, row.Lengths())
		rows = append(rows, row.Values().Slice())
	}
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, rows)

	// Restartable.
	n := 0
	for range m.All() {
		n++
	}
	assert.Equal(t, 2, n)

	r0 := must.M1(FromSliceShaped([]int{5}, shape.New(), Config[int]{}))
	for i, v := range r0.All() {
		assert.Equal(t, 0, i)
		assert.Same(t, r0, v)
	}
	assert.Equal(t, []int{5}, r0.Values().Slice())
}

func TestTagAndName(t *testing.T) {
	a := Arange[int](2, Config[int]{})
	a.Tag = "opaque"
	a.Name = "weights"
	v := must.M1(a.Subview(0))
	assert.Nil(t, v.Tag)
	assert.Empty(t, v.Name)
}
