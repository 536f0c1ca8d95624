// SPDX-License-Identifier: MIT

// Package parallel is the fork-join substrate shared by the matrix kernels.
//
// Work is expressed as a half-open index range [0, n) which is split into
// contiguous chunks. Every chunk is handed to a body that owns the matching
// [lo, hi) slice of the output, so bodies never share mutable state and no
// locks are needed. A Config with Workers <= 1 runs everything inline, which
// is the deterministic reference behavior.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the minimum number of indices handed to one goroutine.
// Below that the scheduling overhead dominates the arithmetic.
const DefaultMinChunk = 2048

// Config controls the fan-out of For and Reduce.
type Config struct {
	Workers  int // maximum goroutines in flight; <= 1 means inline execution
	MinChunk int // minimum indices per chunk; values < 1 are treated as 1
}

// DefaultConfig uses every schedulable CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0), MinChunk: DefaultMinChunk}
}

// Sequential returns a Config that never spawns goroutines.
func Sequential() Config {
	return Config{Workers: 1, MinChunk: DefaultMinChunk}
}

// PerItem rescales MinChunk for loops whose single index costs `cost`
// element operations (e.g. one output row of width cols). The returned
// Config keeps the same worker limit.
func (c Config) PerItem(cost int) Config {
	if cost <= 1 {
		return c
	}
	mc := c.minChunk()
	c.MinChunk = (mc + cost - 1) / cost

	return c
}

// Span is one contiguous [Lo, Hi) chunk of an index range.
type Span struct {
	Lo, Hi int
}

// Spans returns the chunk plan used for n indices. The plan depends only on
// n and the Config, never on timing, so partial results combined in span
// order are reproducible for a fixed Config.
func (c Config) Spans(n int) []Span {
	if n <= 0 {
		return nil
	}
	mc := c.minChunk()
	if c.Workers <= 1 || n < 2*mc {
		return []Span{{Lo: 0, Hi: n}}
	}
	size := max((n+c.Workers-1)/c.Workers, mc)
	spans := make([]Span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, Span{Lo: lo, Hi: min(lo+size, n)})
	}

	return spans
}

func (c Config) minChunk() int {
	if c.MinChunk < 1 {
		return 1
	}

	return c.MinChunk
}

// For runs body over [0, n) split into the spans of c.
// Bodies must only write to the part of the output owned by their span.
// For returns once every span has completed.
func For(n int, c Config, body func(lo, hi int)) {
	spans := c.Spans(n)
	switch len(spans) {
	case 0:
		return
	case 1:
		body(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(c.Workers)
	for _, s := range spans {
		g.Go(func() error {
			body(s.Lo, s.Hi)
			return nil
		})
	}
	_ = g.Wait() // bodies cannot fail
}

// Reduce folds [0, n) with partial, one call per span starting from
// identity, then combines the partial results in span order.
// With a single span the result is exactly partial(0, n, identity).
func Reduce[T any](n int, c Config, identity T, partial func(lo, hi int, acc T) T, combine func(x, y T) T) T {
	spans := c.Spans(n)
	switch len(spans) {
	case 0:
		return identity
	case 1:
		return partial(0, n, identity)
	}

	parts := make([]T, len(spans))
	var g errgroup.Group
	g.SetLimit(c.Workers)
	for k, s := range spans {
		g.Go(func() error {
			parts[k] = partial(s.Lo, s.Hi, identity)
			return nil
		})
	}
	_ = g.Wait()

	acc := parts[0]
	for _, p := range parts[1:] {
		acc = combine(acc, p)
	}

	return acc
}
