// SPDX-License-Identifier: MIT

package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	t.Parallel()

	cfg := Config{Workers: 4, MinChunk: 8}
	var counter int64
	n := 1000

	For(n, cfg, func(lo, hi int) {
		atomic.AddInt64(&counter, int64(hi-lo))
	})

	require.Equal(t, int64(n), counter)
}

func TestFor_CoversEveryIndexOnce(t *testing.T) {
	t.Parallel()

	cfg := Config{Workers: 3, MinChunk: 5}
	n := 101
	seen := make([]int32, n)

	For(n, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, v := range seen {
		assert.Equalf(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestFor_Sequential(t *testing.T) {
	t.Parallel()

	var calls int
	For(100, Sequential(), func(lo, hi int) {
		calls++
		assert.Equal(t, 0, lo)
		assert.Equal(t, 100, hi)
	})

	require.Equal(t, 1, calls)
}

func TestFor_Empty(t *testing.T) {
	t.Parallel()

	For(0, DefaultConfig(), func(_, _ int) {
		t.Fatal("body must not run for n == 0")
	})
}

func TestSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		n    int
		want []Span
	}{
		{"empty", Config{Workers: 4, MinChunk: 1}, 0, nil},
		{"inline", Config{Workers: 1, MinChunk: 1}, 10, []Span{{0, 10}}},
		{"too small", Config{Workers: 4, MinChunk: 8}, 15, []Span{{0, 15}}},
		{"even", Config{Workers: 2, MinChunk: 1}, 10, []Span{{0, 5}, {5, 10}}},
		{"min chunk wins", Config{Workers: 8, MinChunk: 4}, 10, []Span{{0, 4}, {4, 8}, {8, 10}}},
		{"zero min chunk", Config{Workers: 3, MinChunk: 0}, 3, []Span{{0, 1}, {1, 2}, {2, 3}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.cfg.Spans(tc.n))
		})
	}
}

func TestPerItem(t *testing.T) {
	t.Parallel()

	cfg := Config{Workers: 4, MinChunk: 100}
	assert.Equal(t, 10, cfg.PerItem(10).MinChunk)
	assert.Equal(t, 34, cfg.PerItem(3).MinChunk)
	assert.Equal(t, 100, cfg.PerItem(1).MinChunk)
	assert.Equal(t, 4, cfg.PerItem(10).Workers)
}

func TestReduce_MatchesSequential(t *testing.T) {
	t.Parallel()

	n := 10000
	partial := func(lo, hi int, acc int64) int64 {
		for i := lo; i < hi; i++ {
			acc += int64(i)
		}
		return acc
	}
	add := func(x, y int64) int64 { return x + y }

	seq := Reduce(n, Sequential(), 0, partial, add)
	par := Reduce(n, Config{Workers: 4, MinChunk: 16}, 0, partial, add)

	require.Equal(t, int64(n*(n-1)/2), seq)
	require.Equal(t, seq, par)
}

func TestReduce_Empty(t *testing.T) {
	t.Parallel()

	got := Reduce(0, DefaultConfig(), 7, func(_, _ int, acc int) int { return acc + 1 }, func(x, y int) int { return x + y })
	require.Equal(t, 7, got)
}

func BenchmarkFor(b *testing.B) {
	n := 1 << 16

	b.Run("parallel", func(b *testing.B) {
		cfg := DefaultConfig()
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, cfg, func(lo, hi int) {
				atomic.AddInt64(&sum, int64(hi-lo))
			})
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfg := Sequential()
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, cfg, func(lo, hi int) {
				atomic.AddInt64(&sum, int64(hi-lo))
			})
		}
	})
}
