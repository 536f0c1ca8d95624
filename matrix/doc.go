// Package matrix offers generic dense and compressed-sparse-row matrices
// and the numeric kernels that operate on them.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major buffer with safe accessors (At/Set return
//     errors, Get/Ref report ok=false), O(1) Reshape and constructors for
//     grids, flat buffers, vectors, constant fills, identity, diagonals and
//     random samples drawn from an injected math/rand/v2 Source.
//   - Element-wise arithmetic (Add, Sub, Hadamard, Scale, Clamp, Wrap, ...)
//     with value and *InPlace forms, plus Float-only maps (Exp, Log, Sigmoid, ...).
//   - Axis reductions (Sum, Max, Min, Mean) and L1/L2 normalization.
//   - Mul, which routes scalar, vector and outer-product shapes to dedicated
//     kernels before falling back to the general product.
//   - CSR[T] with ToSparse, ToDense and SpMV.
//
// Every operation accepts a trailing ...Option. WithSequential forces
// single-threaded execution; WithWorkers and WithMinChunk tune the fork-join
// fan-out. Errors are package sentinels wrapped with the operation name;
// match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
