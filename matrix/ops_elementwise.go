// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (arithmetic, activation
//     maps, centering, normalization).
//   - Write each loop once; the concurrency substrate is a parameter
//     (parallel.Config), so sequential and parallel execution share code.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels) and assume validated,
//     non-nil operands. Public API validates and wraps errors.
//
// Determinism & Performance:
//   - Position-wise kernels are order-independent: the parallel result is
//     bit-identical to the sequential one.
//   - Work is split over the flat row-major buffer (contiguous chunks).

package matrix

import (
	"github.com/katalvlaran/lvmat/internal/parallel"
)

// ewBinary computes out[k] = op(a[k], b[k]) into a fresh Dense.
// Shapes must already be validated equal.
// Time: O(r*c). Space: O(r*c).
func ewBinary[T Number](a, b *Dense[T], op func(x, y T) T, cfg parallel.Config) *Dense[T] {
	out := make([]T, len(a.data))
	ad, bd := a.data, b.data
	parallel.For(len(out), cfg, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			out[k] = op(ad[k], bd[k])
		}
	})

	return newDenseUnchecked(a.r, a.c, out)
}

// ewUnary computes out[k] = f(m[k]) into a fresh Dense.
// Time: O(r*c). Space: O(r*c).
func ewUnary[T Number](m *Dense[T], f func(v T) T, cfg parallel.Config) *Dense[T] {
	out := make([]T, len(m.data))
	src := m.data
	parallel.For(len(out), cfg, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			out[k] = f(src[k])
		}
	})

	return newDenseUnchecked(m.r, m.c, out)
}

// ewBinaryInPlace computes dst[k] = op(dst[k], src[k]).
// Shapes must already be validated equal; dst and src may alias.
func ewBinaryInPlace[T Number](dst, src *Dense[T], op func(x, y T) T, cfg parallel.Config) {
	dd, sd := dst.data, src.data
	parallel.For(len(dd), cfg, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			dd[k] = op(dd[k], sd[k])
		}
	})
}

// ewUnaryInPlace computes m[k] = f(m[k]).
func ewUnaryInPlace[T Number](m *Dense[T], f func(v T) T, cfg parallel.Config) {
	d := m.data
	parallel.For(len(d), cfg, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			d[k] = f(d[k])
		}
	})
}

// ewBroadcastRows computes out[i,j] = op(X[i,j], vec[i]).
// len(vec) must equal X.Rows(). Rows are fanned out.
func ewBroadcastRows[T Number](X *Dense[T], vec []T, op func(x, y T) T, cfg parallel.Config) *Dense[T] {
	r, c := X.r, X.c
	out := make([]T, r*c)
	parallel.For(r, cfg.PerItem(c), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			base := i * c // row base offset
			v := vec[i]   // cached once per row
			for j := 0; j < c; j++ {
				out[base+j] = op(X.data[base+j], v)
			}
		}
	})

	return newDenseUnchecked(r, c, out)
}

// ewBroadcastCols computes out[i,j] = op(X[i,j], vec[j]).
// len(vec) must equal X.Cols(). Rows are fanned out.
func ewBroadcastCols[T Number](X *Dense[T], vec []T, op func(x, y T) T, cfg parallel.Config) *Dense[T] {
	r, c := X.r, X.c
	out := make([]T, r*c)
	parallel.For(r, cfg.PerItem(c), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out[base+j] = op(X.data[base+j], vec[j])
			}
		}
	})

	return newDenseUnchecked(r, c, out)
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i]. Used by row-wise normalization.
func ewScaleRows[T Number](X *Dense[T], scale []T, cfg parallel.Config) *Dense[T] {
	return ewBroadcastRows(X, scale, mul[T], cfg)
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols[T Number](X *Dense[T], scale []T, cfg parallel.Config) *Dense[T] {
	return ewBroadcastCols(X, scale, mul[T], cfg)
}

// ewBroadcastSubRows computes out[i,j] = X[i,j] - rowMeans[i].
func ewBroadcastSubRows[T Number](X *Dense[T], rowMeans []T, cfg parallel.Config) *Dense[T] {
	return ewBroadcastRows(X, rowMeans, sub[T], cfg)
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
func ewBroadcastSubCols[T Number](X *Dense[T], colMeans []T, cfg parallel.Config) *Dense[T] {
	return ewBroadcastCols(X, colMeans, sub[T], cfg)
}

// ewAllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Dense fast path walks both flat buffers; any other Matrix goes through At.
// NaN never compares close. Time: O(r*c). Space: O(1).
func ewAllClose[T Number](a, b Matrix[T], rtol, atol float64) (bool, error) {
	r, c := a.Rows(), a.Cols()
	if r != b.Rows() || c != b.Cols() {
		return false, ErrDimensionMismatch
	}
	near := func(x, y T) bool {
		diff := float64(x) - float64(y)
		if diff < 0 {
			diff = -diff
		}
		absy := float64(y)
		if absy < 0 {
			absy = -absy
		}
		return diff <= atol+rtol*absy || x == y
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for k, x := range da.data {
				if !near(x, db.data[k]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			x, err := a.At(i, j)
			if err != nil {
				return false, err
			}
			y, err := b.At(i, j)
			if err != nil {
				return false, err
			}
			if !near(x, y) {
				return false, nil
			}
		}
	}

	return true, nil
}
