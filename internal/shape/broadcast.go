package shape

import (
	"github.com/pkg/errors"
)

// BroadcastLengths implements NumPy-style broadcasting on plain length
// lists.
//
// Rules:
//  1. Compare lengths element-wise from right to left.
//  2. Two lengths are compatible if they are equal or one of them is 1.
//  3. Missing leading dimensions are treated as 1.
//
// It returns the broadcast lengths and whether any stretching is needed.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, ErrShapeMismatch
func BroadcastLengths(a, b []int) ([]int, bool, error) {
	n := max(len(a), len(b))
	out := make([]int, n)
	stretched := len(a) != len(b)
	for i := 0; i < n; i++ {
		aLen := lengthFromEnd(a, i)
		bLen := lengthFromEnd(b, i)
		switch {
		case aLen == bLen:
			out[n-1-i] = aLen
		case aLen == 1:
			out[n-1-i] = bLen
			stretched = true
		case bLen == 1:
			out[n-1-i] = aLen
			stretched = true
		default:
			return nil, false, errors.Wrapf(ErrShapeMismatch,
				"cannot broadcast %v with %v (dimension %d: %d vs %d)", a, b, n-1-i, aLen, bLen)
		}
	}
	return out, stretched, nil
}

func lengthFromEnd(lengths []int, i int) int {
	j := len(lengths) - 1 - i
	if j < 0 {
		return 1
	}
	return lengths[j]
}

// ToBroadcastShapes returns views of a and b with identical lengths.
// Dimensions stretched from length 1, and dimensions virtually prepended to
// the shorter shape, get stride 0 so they replay the same elements.
// Offsets are preserved.
//
// Example: (3, 1) and (1, 4) both become (3, 4); the first result reads
// element (i, 0) of a for every j.
func ToBroadcastShapes(a, b Shape) (Shape, Shape, error) {
	lengths, _, err := BroadcastLengths(a.Lengths(), b.Lengths())
	if err != nil {
		return Shape{}, Shape{}, err
	}
	return a.stretchTo(lengths), b.stretchTo(lengths), nil
}

// BroadcastTo stretches s to the given lengths.
func (s Shape) BroadcastTo(lengths []int) (Shape, error) {
	out, _, err := BroadcastLengths(s.Lengths(), lengths)
	if err != nil {
		return Shape{}, err
	}
	if len(out) != len(lengths) {
		return Shape{}, errors.Wrapf(ErrShapeMismatch, "cannot broadcast %s to %v", s, lengths)
	}
	for i := range out {
		if out[i] != lengths[i] {
			return Shape{}, errors.Wrapf(ErrShapeMismatch, "cannot broadcast %s to %v", s, lengths)
		}
	}
	return s.stretchTo(lengths), nil
}

// stretchTo assumes lengths is a valid broadcast target for s.
func (s Shape) stretchTo(lengths []int) Shape {
	dims := make([]Dim, len(lengths))
	lead := len(lengths) - len(s.dims)
	for i, n := range lengths {
		j := i - lead
		switch {
		case j < 0:
			dims[i] = Dim{Length: n, Stride: 0}
		case s.dims[j].Length == n:
			dims[i] = s.dims[j]
		default:
			dims[i] = Dim{Length: n, Stride: 0}
		}
	}
	return Shape{dims: dims, offset: s.offset}
}

// Overlapping reports whether two different multi-indices of s may address
// the same flat offset. Broadcast (stride 0) axes always overlap.
func (s Shape) Overlapping() bool {
	type axis struct{ length, stride int }
	axes := make([]axis, 0, len(s.dims))
	for _, d := range s.dims {
		if d.Length <= 1 {
			continue
		}
		st := d.Stride
		if st < 0 {
			st = -st
		}
		if st == 0 {
			return true
		}
		axes = append(axes, axis{d.Length, st})
	}
	// Insertion sort by stride; ranks are small.
	for i := 1; i < len(axes); i++ {
		for j := i; j > 0 && axes[j].stride < axes[j-1].stride; j-- {
			axes[j], axes[j-1] = axes[j-1], axes[j]
		}
	}
	reach := 0
	for _, a := range axes {
		if a.stride <= reach {
			return true
		}
		reach += a.stride * (a.length - 1)
	}
	return false
}
