package tensor

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// String returns a debug representation: element type, lengths, element
// count and the nested contents.
func (a *Array[T]) String() string {
	var zero T
	lengths := strings.Trim(fmt.Sprint(a.shape.Lengths()), "[]")
	return fmt.Sprintf("NdArray[%T](%s) %s elements: %s",
		zero, strings.ReplaceAll(lengths, " ", ", "), humanize.Comma(int64(a.Elements())), a.AsString())
}

// AsString returns the contents as nested brackets, elements separated by
// ", \n". It flushes lazy arrays.
func (a *Array[T]) AsString() string {
	var sb strings.Builder
	a.writeTo(&sb)
	return sb.String()
}

func (a *Array[T]) writeTo(sb *strings.Builder) {
	switch a.shape.Rank() {
	case 0:
		fmt.Fprint(sb, a.Values().At())
		return
	case 1:
		sb.WriteByte('[')
		for i, v := range a.Values().All() {
			if i > 0 {
				sb.WriteString(", \n")
			}
			fmt.Fprint(sb, v)
		}
		sb.WriteString("] ")
		return
	}
	sb.WriteByte('[')
	for i, sub := range a.All() {
		if i > 0 {
			sb.WriteString(", \n")
		}
		sub.writeTo(sb)
	}
	sb.WriteString("] ")
}
