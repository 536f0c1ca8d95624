// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the compute kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; the concurrency substrate is a
//     per-call strategy, so tests can force single-threaded execution.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Parallel and sequential runs produce the same value for every
//     multiplication entry and every row/column reduction. Whole-matrix
//     (AxisBoth) reductions combine per-chunk partials, so under parallel
//     execution they may differ from the sequential fold by floating-point
//     reassociation, including which NaN/Inf operand is seen first.
package matrix

import (
	"math"
	"runtime"

	"github.com/katalvlaran/lvmat/internal/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose-style checks
	// when no explicit tolerance is given.
	DefaultEpsilon = 1e-9

	// DefaultMinChunk is the minimum number of element operations handed to
	// one worker. Smaller inputs run inline.
	DefaultMinChunk = parallel.DefaultMinChunk
)

// DefaultWorkers returns the default worker count (all schedulable CPUs).
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "matrix: WithWorkers: n must be >= 1"
	panicMinChunkInvalid = "matrix: WithMinChunk: n must be >= 1"
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	workers  int     // >= 1; DefaultWorkers()
	minChunk int     // >= 1; DefaultMinChunk
	eps      float64 // >= 0; DefaultEpsilon
}

// WithWorkers caps the number of goroutines a single operation may use.
// n == 1 is equivalent to WithSequential.
//
// Errors:
//   - Panics with a stable message when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSequential forces inline, single-threaded execution.
// Results are then bit-for-bit reproducible across runs and machines.
func WithSequential() Option {
	return func(o *Options) { o.workers = 1 }
}

// WithMinChunk sets the minimum number of element operations per worker.
// Lower values increase fan-out on small inputs (useful in tests).
//
// Errors:
//   - Panics with a stable message when n < 1.
func WithMinChunk(n int) Option {
	if n < 1 {
		panic(panicMinChunkInvalid)
	}

	return func(o *Options) { o.minChunk = n }
}

// WithEpsilon sets the absolute tolerance used by AllCloseOpt.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		workers:  DefaultWorkers(),
		minChunk: DefaultMinChunk,
		eps:      DefaultEpsilon,
	}
}

// gatherOptions applies opts over the defaults in order (last write wins).
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	// Invariants (setters already validate; keep the resolved struct sane).
	if o.workers < 1 {
		o.workers = 1
	}
	if o.minChunk < 1 {
		o.minChunk = 1
	}

	return o
}

// exec converts the resolved options into the fork-join strategy.
func (o Options) exec() parallel.Config {
	return parallel.Config{Workers: o.workers, MinChunk: o.minChunk}
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// MinChunk reports the resolved minimum chunk size.
func (o Options) MinChunk() int { return o.minChunk }

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ResolveOptions exposes gatherOptions for callers that want to inspect the
// effective configuration (e.g. for logging a benchmark setup).
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts...) }
