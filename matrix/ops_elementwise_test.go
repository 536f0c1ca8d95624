// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

func TestAddSub_Scenario(t *testing.T) {
	t.Parallel()
	a := mustNew(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b := mustNew(t, [][]int{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireGrid(t, [][]int{{10, 10, 10}, {10, 10, 10}, {10, 10, 10}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireGrid(t, [][]int{{-8, -6, -4}, {-2, 0, 2}, {4, 6, 8}}, diff)

	// Operands are untouched.
	requireGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a)
}

func TestAdd_AdditiveInverse(t *testing.T) {
	t.Parallel()
	m := mustRand(t, 7, 5, 11)
	neg, err := matrix.Neg(m)
	require.NoError(t, err)
	sum, err := matrix.Add(m, neg)
	require.NoError(t, err)
	zero, err := matrix.ZerosLike[float64](m)
	require.NoError(t, err)
	assert.True(t, sum.Equal(zero))
}

func TestBinary_Errors(t *testing.T) {
	t.Parallel()
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1}, {2}})

	binaries := map[string]func(x, y *matrix.Dense[float64], opts ...matrix.Option) (*matrix.Dense[float64], error){
		"Add":      matrix.Add[float64],
		"Sub":      matrix.Sub[float64],
		"Hadamard": matrix.Hadamard[float64],
		"DivElem":  matrix.DivElem[float64],
		"Maximum":  matrix.Maximum[float64],
		"Minimum":  matrix.Minimum[float64],
	}
	for name, op := range binaries {
		t.Run(name, func(t *testing.T) {
			_, err := op(a, b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			_, err = op(nil, b)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = op(a, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

func TestHadamardDivElem(t *testing.T) {
	t.Parallel()
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{2, 4}, {6, 8}})

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{2, 8}, {18, 32}}, h)

	d, err := matrix.DivElem(b, a)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{2, 2}, {2, 2}}, d)

	hp, err := matrix.HadamardProd(a, b)
	require.NoError(t, err)
	assert.True(t, hp.Equal(h))
}

func TestMaximumMinimum_NaNPoisons(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	a := mustNew(t, [][]float64{{1, 5, nan}})
	b := mustNew(t, [][]float64{{3, 2, 0}})

	mx, err := matrix.Maximum(a, b)
	require.NoError(t, err)
	mn, err := matrix.Minimum(a, b)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 5}, mx.RawData()[:2])
	assert.Equal(t, []float64{1, 2}, mn.RawData()[:2])
	assert.True(t, math.IsNaN(mx.RawData()[2]))
	assert.True(t, math.IsNaN(mn.RawData()[2]))
}

func TestScalarOps(t *testing.T) {
	t.Parallel()
	m := mustNew(t, [][]float64{{1, 2}, {4, 8}})

	s, err := matrix.Scale(m, 3)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{3, 6}, {12, 24}}, s)

	sb, err := matrix.ScaleBy(m, 3)
	require.NoError(t, err)
	assert.True(t, sb.Equal(s))

	d, err := matrix.DivScalar(m, 2)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{0.5, 1}, {2, 4}}, d)

	sd, err := matrix.ScalarDiv(8, m)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{8, 4}, {2, 1}}, sd)

	_, err = matrix.Scale[float64](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIntegerScale(t *testing.T) {
	t.Parallel()
	m := mustNew(t, [][]int32{{1, -2}})
	s, err := matrix.Scale(m, int32(-4))
	require.NoError(t, err)
	requireGrid(t, [][]int32{{-4, 8}}, s)
}

func TestClampAbsApply(t *testing.T) {
	t.Parallel()
	m := mustNew(t, [][]int{{-5, 0, 3, 10}})

	c, err := matrix.Clamp(m, -1, 5)
	require.NoError(t, err)
	requireGrid(t, [][]int{{-1, 0, 3, 5}}, c)

	_, err = matrix.Clamp(m, 5, -1)
	require.ErrorIs(t, err, matrix.ErrBadRange)
	_, err = matrix.Clamp(mustNew(t, [][]float64{{1}}), math.NaN(), 1)
	require.ErrorIs(t, err, matrix.ErrBadRange)

	a, err := matrix.Abs(m)
	require.NoError(t, err)
	requireGrid(t, [][]int{{5, 0, 3, 10}}, a)

	sq, err := matrix.Apply(m, func(v int) int { return v * v })
	require.NoError(t, err)
	requireGrid(t, [][]int{{25, 0, 9, 100}}, sq)
}

func TestInPlace(t *testing.T) {
	t.Parallel()
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{1, 1}, {1, 1}})

	require.NoError(t, m.AddInPlace(b))
	requireGrid(t, [][]float64{{2, 3}, {4, 5}}, m)
	require.NoError(t, m.SubInPlace(b))
	requireGrid(t, [][]float64{{1, 2}, {3, 4}}, m)
	require.NoError(t, m.HadamardInPlace(m))
	requireGrid(t, [][]float64{{1, 4}, {9, 16}}, m)
	require.NoError(t, m.DivElemInPlace(mustNew(t, [][]float64{{1, 2}, {3, 4}})))
	requireGrid(t, [][]float64{{1, 2}, {3, 4}}, m)
	require.NoError(t, m.ScaleInPlace(2))
	requireGrid(t, [][]float64{{2, 4}, {6, 8}}, m)
	require.NoError(t, m.DivScalarInPlace(2))
	requireGrid(t, [][]float64{{1, 2}, {3, 4}}, m)
	require.NoError(t, m.NegInPlace())
	requireGrid(t, [][]float64{{-1, -2}, {-3, -4}}, m)
	require.NoError(t, m.ApplyInPlace(math.Abs))
	requireGrid(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestInPlace_NoPartialMutation(t *testing.T) {
	t.Parallel()
	m := mustNew(t, [][]int{{1, 2}, {3, 4}})
	err := m.AddInPlace(mustNew(t, [][]int{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	requireGrid(t, [][]int{{1, 2}, {3, 4}}, m)

	require.ErrorIs(t, m.SubInPlace(nil), matrix.ErrNilMatrix)
	requireGrid(t, [][]int{{1, 2}, {3, 4}}, m)

	var nilM *matrix.Dense[int]
	require.ErrorIs(t, nilM.NegInPlace(), matrix.ErrNilMatrix)
}

func TestElementwise_SequentialMatchesParallel(t *testing.T) {
	t.Parallel()
	a := mustRand(t, 37, 23, 1)
	b := mustRand(t, 37, 23, 2)

	seq, err := matrix.Hadamard(a, b, matrix.WithSequential())
	require.NoError(t, err)
	par, err := matrix.Hadamard(a, b, forceParallel()...)
	require.NoError(t, err)
	assert.True(t, seq.Equal(par), "position-wise kernels are order independent")

	x := a.Clone()
	y := a.Clone()
	require.NoError(t, x.AddInPlace(b, matrix.WithSequential()))
	require.NoError(t, y.AddInPlace(b, forceParallel()...))
	assert.True(t, x.Equal(y))
}

func TestAllClose(t *testing.T) {
	t.Parallel()
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{1, 2}, {3, 4 + 1e-12}})
	c := mustNew(t, [][]float64{{1, 2}, {3, 4.1}})

	ok, err := matrix.AllClose[float64](a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose[float64](a, c, 0, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose[float64](a, c, 0.1, 0)
	require.NoError(t, err)
	assert.True(t, ok, "relative tolerance covers 0.1")

	ok, err = matrix.AllCloseOpt[float64](a, b)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = matrix.AllCloseOpt[float64](a, c, matrix.WithEpsilon(0.2))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose[float64](a, mustNew(t, [][]float64{{1, 2}}), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose[float64](a, nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilD *matrix.Dense[float64]
	_, err = matrix.AllClose[float64](a, nilD, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose[float64](a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrBadRange)
}

func TestAllClose_InfAndNaN(t *testing.T) {
	t.Parallel()
	inf := mustNew(t, [][]float64{{math.Inf(1), math.Inf(-1)}})
	ok, err := matrix.AllClose[float64](inf, inf.Clone(), 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "equal infinities are close")

	nan := mustNew(t, [][]float64{{math.NaN()}})
	ok, err = matrix.AllClose[float64](nan, nan.Clone(), 1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "NaN is never close")
}

func TestEwAllClose_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()
	a := mustRand(t, 6, 4, 5)
	b, err := matrix.Scale(a, 1+1e-12)
	require.NoError(t, err)

	fast, err := matrix.EwAllClose_TestOnly[float64](a, b, 1e-9, 0)
	require.NoError(t, err)
	slow, err := matrix.EwAllClose_TestOnly[float64](hide{a}, hide{b}, 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, fast)
	assert.Equal(t, fast, slow)

	s, err := matrix.ToSparse(a)
	require.NoError(t, err)
	ok, err := matrix.AllClose[float64](s, a, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "CSR compares through At")
}

func TestEwScaleRowsCols(t *testing.T) {
	t.Parallel()
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	rows := matrix.EwScaleRows_TestOnly(m, []float64{1, 10, 100}, forceParallel()...)
	requireGrid(t, [][]float64{{1, 2}, {30, 40}, {500, 600}}, rows)

	cols := matrix.EwScaleCols_TestOnly(m, []float64{2, -1})
	requireGrid(t, [][]float64{{2, -2}, {6, -4}, {10, -6}}, cols)
}
