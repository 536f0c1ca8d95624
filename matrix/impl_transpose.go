// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvmat/internal/parallel"

// Transpose returns mᵀ as a fresh Dense.
// Implementation:
//   - Stage 1: 1×1 and vectors: the row-major buffer of a 1×N row equals the
//     buffer of its N×1 transpose, so only the shape flips (plain copy).
//   - Stage 2: general shapes: gather out[j*r+i] = m[i*c+j], output rows
//     fanned out.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transpose(m, gatherOptions(opts...).exec()), nil
}

const opTranspose = "Transpose"

// transpose assumes m is non-nil.
func transpose[T Number](m *Dense[T], cfg parallel.Config) *Dense[T] {
	r, c := m.r, m.c
	if r == 1 || c == 1 {
		return newDenseUnchecked(c, r, m.Data())
	}

	out := make([]T, r*c)
	src := m.data
	// Output row j is input column j.
	parallel.For(c, cfg.PerItem(r), func(lo, hi int) {
		for j := lo; j < hi; j++ {
			dst := out[j*r : (j+1)*r]
			for i := range dst {
				dst[i] = src[i*c+j]
			}
		}
	})

	return newDenseUnchecked(c, r, out)
}
