// SPDX-License-Identifier: MIT
// Package matrix - axis reductions (Sum, Max, Min, Mean).
//
// Result shapes:
//   - AxisRow    -> rows×1 (one value per row)
//   - AxisColumn -> 1×cols (one value per column)
//   - AxisBoth   -> 1×1
//
// Single values are always returned as 1×1 matrices, never as bare scalars,
// so reductions compose with the rest of the API.
//
// NaN policy:
//   - Sum propagates NaN by IEEE-754 arithmetic.
//   - Max/Min: a NaN anywhere in the folded slice makes the result NaN.
//
// Determinism:
//   - Row and column folds run left-to-right within each slice in every mode,
//     so they are bit-identical between sequential and parallel execution.
//   - AxisBoth folds fixed chunks and combines them in chunk order; the chunk
//     plan depends on the Options, not on timing.

package matrix

import "github.com/katalvlaran/lvmat/internal/parallel"

const (
	opSum  = "Sum"
	opMax  = "Max"
	opMin  = "Min"
	opMean = "Mean"
)

// reduce folds m along ax starting every slice from identity.
// m must be non-nil and ax valid.
func reduce[T Number](m *Dense[T], ax Axis, identity T, combine func(acc, v T) T, cfg parallel.Config) *Dense[T] {
	switch ax {
	case AxisRow:
		return reduceRows(m, identity, combine, cfg)
	case AxisColumn:
		// Column j of m is row j of mᵀ; the rows×1 result of the transposed
		// fold has the same buffer as the 1×cols answer.
		out := reduceRows(transpose(m, cfg), identity, combine, cfg)
		out.r, out.c = 1, m.c
		return out
	default:
		src := m.data
		total := parallel.Reduce(len(src), cfg, identity, func(lo, hi int, acc T) T {
			for _, v := range src[lo:hi] {
				acc = combine(acc, v)
			}
			return acc
		}, combine)
		return newDenseUnchecked(1, 1, []T{total})
	}
}

// reduceRows returns the rows×1 fold of every row; rows are fanned out.
func reduceRows[T Number](m *Dense[T], identity T, combine func(acc, v T) T, cfg parallel.Config) *Dense[T] {
	r, c := m.r, m.c
	out := make([]T, r)
	src := m.data
	parallel.For(r, cfg.PerItem(c), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			acc := identity
			for _, v := range src[i*c : (i+1)*c] {
				acc = combine(acc, v)
			}
			out[i] = acc
		}
	})

	return newDenseUnchecked(r, 1, out)
}

// reduceChecked is the validated entry shared by the public reductions.
// Error priority: nil -> axis.
func reduceChecked[T Number](m *Dense[T], ax Axis, identity T, combine func(acc, v T) T, tag string, opts []Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateAxis(ax); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return reduce(m, ax, identity, combine, gatherOptions(opts...).exec()), nil
}

// Sum adds the entries of m along ax.
// Implementation:
//   - Stage 1: validate m (ErrNilMatrix) and ax (ErrBadAxis).
//   - Stage 2: fold with identity 0.
//
// Complexity:
//   - Time O(r*c); AxisColumn adds one O(r*c) transpose.
func Sum[T Number](m *Dense[T], ax Axis, opts ...Option) (*Dense[T], error) {
	return reduceChecked(m, ax, 0, add[T], opSum, opts)
}

// Max returns the largest entry along ax.
// The fold starts from -Inf for floats and from the type minimum for integers.
func Max[T Number](m *Dense[T], ax Axis, opts ...Option) (*Dense[T], error) {
	return reduceChecked(m, ax, lowest[T](), maxOf[T], opMax, opts)
}

// Min returns the smallest entry along ax.
// The fold starts from +Inf for floats and from the type maximum for integers.
func Min[T Number](m *Dense[T], ax Axis, opts ...Option) (*Dense[T], error) {
	return reduceChecked(m, ax, highest[T](), minOf[T], opMin, opts)
}

// Mean returns the arithmetic mean along ax (Sum divided by the slice length).
func Mean[T Float](m *Dense[T], ax Axis, opts ...Option) (*Dense[T], error) {
	s, err := reduceChecked(m, ax, 0, add[T], opMean, opts)
	if err != nil {
		return nil, err
	}
	n := m.c
	switch ax {
	case AxisColumn:
		n = m.r
	case AxisBoth:
		n = m.r * m.c
	}
	for i := range s.data {
		s.data[i] /= T(n)
	}

	return s, nil
}
