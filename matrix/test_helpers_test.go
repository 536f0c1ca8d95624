// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for builders/kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback paths in code under test.
type hide struct{ matrix.Matrix[float64] }

// mustNew builds a Dense from a literal grid or fails the test.
func mustNew[T matrix.Number](tb testing.TB, grid [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(grid)
	require.NoError(tb, err)

	return m
}

// mustRand builds an r×c matrix of U[-1, 1) samples for a fixed seed.
func mustRand(tb testing.TB, r, c int, seed uint64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.RandU[float64](r, c, -1, 1, rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	require.NoError(tb, err)

	return m
}

// requireGrid asserts shape and exact contents of m against a literal grid.
func requireGrid[T matrix.Number](tb testing.TB, want [][]T, m *matrix.Dense[T]) {
	tb.Helper()
	require.NotNil(tb, m)
	require.Equal(tb, len(want), m.Rows(), "rows")
	require.Equal(tb, len(want[0]), m.Cols(), "cols")
	for i, row := range want {
		got, err := m.Row(i)
		require.NoError(tb, err)
		require.Equal(tb, row, got, "row %d", i)
	}
}

// requireClose asserts equal shapes and |a-b| <= tol element-wise.
func requireClose(tb testing.TB, want, got matrix.Matrix[float64], tol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(tb, err)
	require.True(tb, ok, "matrices differ beyond %g:\nwant %v\ngot  %v", tol, want, got)
}

// forceParallel makes even tiny inputs fan out across several goroutines.
func forceParallel() []matrix.Option {
	return []matrix.Option{matrix.WithWorkers(4), matrix.WithMinChunk(1)}
}
