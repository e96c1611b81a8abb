package tensor

import (
	"strings"
	"testing"

	"github.com/born-ml/ndarray/internal/shape"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
)

func TestAsString(t *testing.T) {
	assert.Equal(t, "[0, \n1, \n2] ", Arange[int](3, Config[int]{}).AsString())
	assert.Equal(t, "[[0, \n1] , \n[2, \n3] ] ", matrix(t, 2, 2).AsString())
	assert.Equal(t, "[] ", must.M1(Zeros(Config[int]{}, 0)).AsString())

	r0 := must.M1(FromSliceShaped([]int{7}, shape.New(), Config[int]{}))
	assert.Equal(t, "7", r0.AsString())
}

func TestString(t *testing.T) {
	s := matrix(t, 2, 2).String()
	assert.Equal(t, "NdArray[int](2, 2) 4 elements: [[0, \n1] , \n[2, \n3] ] ", s)

	big := must.M1(Zeros(Config[float32]{}, 1200))
	assert.True(t, strings.HasPrefix(big.String(), "NdArray[float32](1200) 1,200 elements: ["))
}

func TestStringFlushesLazy(t *testing.T) {
	a := must.M1(Full(4, Lazy[int](), 2))
	assert.Equal(t, "[4, \n4] ", a.AsString())
	assert.Equal(t, 0, a.Pending())
}
