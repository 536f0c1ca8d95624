// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported kernels to the black-box matrix_test
// package. Compiled only by `go test`.

// EwAllClose_TestOnly calls the private ewAllClose kernel directly.
func EwAllClose_TestOnly[T Number](a, b Matrix[T], rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// EwScaleRows_TestOnly runs ewScaleRows with the resolved options.
func EwScaleRows_TestOnly[T Number](X *Dense[T], scale []T, opts ...Option) *Dense[T] {
	return ewScaleRows(X, scale, gatherOptions(opts...).exec())
}

// EwScaleCols_TestOnly runs ewScaleCols with the resolved options.
func EwScaleCols_TestOnly[T Number](X *Dense[T], scale []T, opts ...Option) *Dense[T] {
	return ewScaleCols(X, scale, gatherOptions(opts...).exec())
}

// Lowest_TestOnly and Highest_TestOnly expose the max/min fold identities.
func Lowest_TestOnly[T Number]() T  { return lowest[T]() }
func Highest_TestOnly[T Number]() T { return highest[T]() }

// IsFloatKind_TestOnly exposes the element-kind probe.
func IsFloatKind_TestOnly[T Number]() bool { return isFloatKind[T]() }

// Stable panic messages of the With* constructors.
const (
	PanicWorkersInvalid_TestOnly  = panicWorkersInvalid
	PanicMinChunkInvalid_TestOnly = panicMinChunkInvalid
	PanicEpsilonInvalid_TestOnly  = panicEpsilonInvalid
)
