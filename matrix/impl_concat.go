// SPDX-License-Identifier: MIT

package matrix

const opConcat = "Concat"

// Concat joins a and b along ax into a fresh Dense.
//   - AxisRow:    b's rows are stacked below a's; requires equal Cols().
//   - AxisColumn: b's columns are appended right of a's; requires equal Rows().
//
// Errors:
//   - ErrNilMatrix, ErrBadAxis (AxisBoth or unknown), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(len(a)+len(b)), Space the same.
func Concat[T Number](a, b *Dense[T], ax Axis) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}

	switch ax {
	case AxisRow:
		if a.c != b.c {
			return nil, matrixErrorf(opConcat, ErrDimensionMismatch)
		}
		// Row-major: stacking rows is a plain buffer append.
		out := make([]T, 0, len(a.data)+len(b.data))
		out = append(out, a.data...)
		out = append(out, b.data...)
		return newDenseUnchecked(a.r+b.r, a.c, out), nil
	case AxisColumn:
		if a.r != b.r {
			return nil, matrixErrorf(opConcat, ErrDimensionMismatch)
		}
		c := a.c + b.c
		out := make([]T, a.r*c)
		for i := 0; i < a.r; i++ {
			copy(out[i*c:], a.data[i*a.c:(i+1)*a.c])
			copy(out[i*c+a.c:], b.data[i*b.c:(i+1)*b.c])
		}
		return newDenseUnchecked(a.r, c, out), nil
	default:
		return nil, matrixErrorf(opConcat, ErrBadAxis)
	}
}
