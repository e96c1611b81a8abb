package shape

import (
	"fmt"

	"github.com/pkg/errors"
)

type rangeKind uint8

const (
	rangeAll rangeKind = iota
	rangeSpan
	rangeSingle
	rangeNewAxis
	rangeReverse
)

// Range selects elements along one dimension.
//
// The zero value selects the entire dimension. Negative First values count
// from the end of the dimension. Last is exclusive; a Last <= 0 counts from
// the end, so Span(1, 0) means "from 1 to the end" and Span(0, -1) drops the
// last element.
type Range struct {
	First  int
	Last   int
	Stride int
	kind   rangeKind
}

// All selects the entire dimension.
func All() Range {
	return Range{}
}

// Span selects the half-open interval [first, last).
func Span(first, last int) Range {
	return Range{First: first, Last: last, Stride: 1, kind: rangeSpan}
}

// Step selects every stride-th element of [first, last).
func Step(first, last, stride int) Range {
	return Range{First: first, Last: last, Stride: stride, kind: rangeSpan}
}

// El selects a single element, keeping the dimension with length 1.
func El(i int) Range {
	return Range{First: i, Last: i + 1, Stride: 1, kind: rangeSingle}
}

// NewAxis inserts a length-1, stride-0 dimension instead of slicing one.
func NewAxis() Range {
	return Range{kind: rangeNewAxis}
}

// Rev selects the entire dimension in reverse order.
func Rev() Range {
	return Range{Stride: -1, kind: rangeReverse}
}

// IsAll reports whether r selects the entire dimension.
func (r Range) IsAll() bool { return r.kind == rangeAll }

// IsSingle reports whether r was built with El.
func (r Range) IsSingle() bool { return r.kind == rangeSingle }

// IsNewAxis reports whether r was built with NewAxis.
func (r Range) IsNewAxis() bool { return r.kind == rangeNewAxis }

// String implements fmt.Stringer.
func (r Range) String() string {
	switch r.kind {
	case rangeAll:
		return ":"
	case rangeSingle:
		return fmt.Sprintf("%d", r.First)
	case rangeNewAxis:
		return "newaxis"
	case rangeReverse:
		return "::-1"
	}
	if r.Stride == 1 {
		return fmt.Sprintf("%d:%d", r.First, r.Last)
	}
	return fmt.Sprintf("%d:%d:%d", r.First, r.Last, r.Stride)
}

// SubRange applies r to dimension dim and returns the resulting shape.
//
// The offset advances to the first selected element, the dimension length
// becomes the number of selected elements and its stride is multiplied by
// the range stride. A NewAxis range inserts a length-1, stride-0 dimension
// before dim, and dim may then equal the rank.
func (s Shape) SubRange(r Range, dim int) (Shape, error) {
	if r.kind == rangeNewAxis {
		if dim < 0 || dim > len(s.dims) {
			return Shape{}, errors.Wrapf(ErrInvalidAxis, "new axis at %d for shape %s", dim, s)
		}
		return s.InsertDim(dim, Dim{Length: 1, Stride: 0}), nil
	}
	if dim < 0 || dim >= len(s.dims) {
		return Shape{}, errors.Wrapf(ErrInvalidAxis, "range %s at dimension %d for shape %s", r, dim, s)
	}

	d := s.dims[dim]
	switch r.kind {
	case rangeAll:
		return s.WithOffset(s.offset), nil

	case rangeReverse:
		if d.Length == 0 {
			return s.WithOffset(s.offset), nil
		}
		out := s.WithDim(dim, Dim{Length: d.Length, Stride: -d.Stride})
		out.offset = s.offset + (d.Length-1)*d.Stride
		return out, nil

	case rangeSingle:
		first := r.First
		if first < 0 {
			first += d.Length
		}
		if first < 0 || first >= d.Length {
			return Shape{}, errors.Wrapf(ErrIndexOutOfRange, "element %d of dimension %d (size %d)", r.First, dim, d.Length)
		}
		out := s.WithDim(dim, Dim{Length: 1, Stride: d.Stride})
		out.offset = s.offset + first*d.Stride
		return out, nil
	}

	if r.Stride <= 0 {
		return Shape{}, errors.Wrapf(ErrInvalidRange, "range %s has stride %d", r, r.Stride)
	}
	first := r.First
	if first < 0 {
		first += d.Length
	}
	if first < 0 || first > d.Length {
		return Shape{}, errors.Wrapf(ErrIndexOutOfRange, "range %s start for dimension %d (size %d)", r, dim, d.Length)
	}
	// last is inclusive from here on.
	last := r.Last - 1
	if r.Last <= 0 {
		last = d.Length - 1 + r.Last
	}
	if last > d.Length-1 {
		last = d.Length - 1
	}
	length := 0
	if last >= first {
		length = (last-first)/r.Stride + 1
	}
	out := s.WithDim(dim, Dim{Length: length, Stride: d.Stride * r.Stride})
	if length > 0 {
		out.offset = s.offset + first*d.Stride
	}
	return out, nil
}
