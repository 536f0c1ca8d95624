// Package lvmat is a generic dense/sparse matrix toolkit for Go.
//
// Everything lives in the matrix subpackage:
//
//	matrix/             - Dense[T], CSR[T], element-wise ops, reductions, Mul, SpMV
//	internal/parallel/  - fork-join substrate used by the kernels
//
// Quick example:
//
//	a, _ := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := matrix.New([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	c, _ := matrix.Mul(a, b)
//	fmt.Println(c)
//	// [
//	//  [ 22.0000 28.0000 ]
//	//  [ 49.0000 64.0000 ]
//	// ]
//
// Element types are any Go integer or float kind (matrix.Number);
// transcendental maps and random constructors require matrix.Float.
// Operations run in parallel for large inputs; pass matrix.WithSequential()
// for single-threaded, bit-reproducible execution.
package lvmat
