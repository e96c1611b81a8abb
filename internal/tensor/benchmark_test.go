package tensor

import (
	"fmt"
	"testing"

	"github.com/born-ml/ndarray/internal/shape"
)

func BenchmarkClone(b *testing.B) {
	for _, n := range []int{16, 256, 1024} {
		a, _ := Arange[float32](n*n, Config[float32]{}).ReshapeLengths(n, n)
		b.Run(fmt.Sprintf("contiguous_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = a.Clone()
			}
		})
		tr := a.Transposed()
		b.Run(fmt.Sprintf("transposed_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = tr.Clone()
			}
		})
	}
}

func BenchmarkViews(b *testing.B) {
	a, _ := Arange[float32](64*64, Config[float32]{}).ReshapeLengths(64, 64)

	b.Run("Subview", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = a.Subview(i % 64)
		}
	})

	b.Run("Slice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = a.Slice(shape.Step(0, 0, 2), shape.Rev())
		}
	})
}

func BenchmarkRepeat(b *testing.B) {
	a, _ := Arange[float32](256*256, Config[float32]{}).ReshapeLengths(256, 256)

	b.Run("uniform", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = a.RepeatAxis(2, 0)
		}
	})

	b.Run("each", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = a.RepeatEach([]int{1, 2})
		}
	})
}
