// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms (centering, L1/L2 normalization)
//     as compositions over the reduction engine and the ew* broadcast kernels.
//
// Exposed API:
//   - CenterRows(X)         -> (Xc, means)  // subtract per-row mean; means rows×1
//   - CenterColumns(X)      -> (Xc, means)  // subtract per-column mean; means 1×cols
//   - NormalizeL1(X, axis)  -> (Y, norms)   // Σ|x| == 1 per slice (degenerate slices unchanged)
//   - NormalizeL2(X, axis)  -> (Y, norms)   // √Σx² == 1 per slice (degenerate slices unchanged)
//
// Norms use the reduction result shapes: rows×1 for AxisRow, 1×cols for
// AxisColumn, 1×1 for AxisBoth.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmat/internal/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
	opNormalizeL1   = "NormalizeL1"
	opNormalizeL2   = "NormalizeL2"
)

// CenterRows subtracts the row mean from every element of that row.
// Returns the centered copy and the means (rows×1).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterRows[T Float](X *Dense[T], opts ...Option) (*Dense[T], *Dense[T], error) {
	means, err := Mean(X, AxisRow, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return ewBroadcastSubRows(X, means.data, gatherOptions(opts...).exec()), means, nil
}

// CenterColumns subtracts the column mean from every element of that column.
// Returns the centered copy and the means (1×cols).
func CenterColumns[T Float](X *Dense[T], opts ...Option) (*Dense[T], *Dense[T], error) {
	means, err := Mean(X, AxisColumn, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return ewBroadcastSubCols(X, means.data, gatherOptions(opts...).exec()), means, nil
}

// NormalizeL1 scales every slice along ax so its L1 norm (Σ|x|) becomes 1.
// Implementation:
//   - Stage 1: validate X (ErrNilMatrix) and ax (ErrBadAxis).
//   - Stage 2: L1 norms via the reduction engine.
//   - Stage 3: scale = 1/norm; for norm==0 scale = 1 so the slice is left unchanged.
//   - Stage 4: broadcast multiply along ax.
//
// Returns:
//   - the normalized copy and the original norms.
func NormalizeL1[T Float](X *Dense[T], ax Axis, opts ...Option) (*Dense[T], *Dense[T], error) {
	return normalize(X, ax, func(acc, v T) T { return acc + absOf(v) }, nil, opNormalizeL1, opts)
}

// NormalizeL2 scales every slice along ax so its Euclidean norm becomes 1.
// Same contract as NormalizeL1 with norm = √Σx².
func NormalizeL2[T Float](X *Dense[T], ax Axis, opts ...Option) (*Dense[T], *Dense[T], error) {
	return normalize(X, ax, func(acc, v T) T { return acc + v*v }, func(s T) T { return T(math.Sqrt(float64(s))) }, opNormalizeL2, opts)
}

// normalize is the shared body of NormalizeL1/NormalizeL2.
// finish (optional) maps the folded accumulator to the norm.
func normalize[T Float](X *Dense[T], ax Axis, fold func(acc, v T) T, finish func(T) T, tag string, opts []Option) (*Dense[T], *Dense[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err := ValidateAxis(ax); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	cfg := gatherOptions(opts...).exec()

	norms := reduce(X, ax, 0, fold, cfg)
	if finish != nil {
		for i, s := range norms.data {
			norms.data[i] = finish(s)
		}
	}

	scale := make([]T, len(norms.data))
	for i, n := range norms.data {
		if n > 0 {
			scale[i] = 1 / n
		} else {
			scale[i] = 1 // degenerate slice stays as is
		}
	}

	return applyScale(X, ax, scale, cfg), norms, nil
}

// applyScale multiplies X by scale broadcast along ax.
func applyScale[T Number](X *Dense[T], ax Axis, scale []T, cfg parallel.Config) *Dense[T] {
	switch ax {
	case AxisRow:
		return ewScaleRows(X, scale, cfg)
	case AxisColumn:
		return ewScaleCols(X, scale, cfg)
	default:
		s := scale[0]
		return ewUnary(X, func(v T) T { return v * s }, cfg)
	}
}
