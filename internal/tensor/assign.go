package tensor

import (
	"github.com/born-ml/ndarray/internal/shape"
	"github.com/born-ml/ndarray/internal/ufunc"
	"github.com/pkg/errors"
)

// Assign copies value into the view selected by idx (see Get).
//
// The shapes must have the same rank and lengths; no broadcasting is done.
// Assigning a view onto itself (same shape, same accessor) is a no-op.
// On lazy arrays the copy may be deferred until the next flush.
func (a *Array[T]) Assign(value *Array[T], idx ...int) error {
	lv, err := a.Get(idx...)
	if err != nil {
		return err
	}
	if lv.isSelf(value) {
		return nil
	}
	if !lv.shape.SameLengths(value.shape) {
		return errors.Wrapf(ErrShapeMismatch, "cannot assign %s to %s", value.shape, lv.shape)
	}
	return ufunc.Copy(value.operand(), lv.operand(), a.cfg.Parallel)
}

// AssignSlice copies value into the view selected by ranges (see Slice),
// broadcasting value to the selected lengths.
func (a *Array[T]) AssignSlice(value *Array[T], ranges ...shape.Range) error {
	lv, err := a.Slice(ranges...)
	if err != nil {
		return err
	}
	if lv.isSelf(value) {
		return nil
	}
	return ufunc.Copy(value.operand(), lv.operand(), a.cfg.Parallel)
}

// isSelf reports whether copying value into a would leave a unchanged.
func (a *Array[T]) isSelf(value *Array[T]) bool {
	return a.acc == value.acc && a.shape.Equal(value.shape)
}

// Set writes v into every visible element.
func (a *Array[T]) Set(v T) {
	// Generate has no inputs to validate against.
	_ = ufunc.Generate[T](ufunc.GenerateOp[T]{Value: v}, a.operand(), a.cfg.Parallel)
}

// Clone copies the visible elements into new row-major storage with the
// same lengths.
func (a *Array[T]) Clone() *Array[T] {
	out := a.alloc(a.shape.Plain())
	// Same lengths on both sides: the copy cannot fail.
	_ = ufunc.Copy(a.operand(), out.operand(), a.cfg.Parallel)
	return out
}

// Flatten copies the visible elements into new 1-D storage. Together with
// Clone it is the way to stop aliasing a's accessor.
func (a *Array[T]) Flatten() *Array[T] {
	cp := a.Clone()
	cp.shape = shape.New(cp.shape.Elements())
	return cp
}
