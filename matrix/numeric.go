// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"unsafe"
)

// Element-kind probes. They work on any type in Number, including defined
// types such as `type Celsius float64`, which a type switch would miss.

// isFloatKind reports whether T has a fractional part (float32/float64 kinds).
func isFloatKind[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}

// isSignedKind reports whether T can hold negative values.
func isSignedKind[T Number]() bool {
	var z T
	z--

	return z < 0
}

// bitSize is the storage width of T in bits.
func bitSize[T Number]() int {
	var z T

	return int(unsafe.Sizeof(z)) * 8
}

// lowest is the identity of max: -Inf for floats, the minimum value for integers.
func lowest[T Number]() T {
	switch {
	case isFloatKind[T]():
		return T(math.Inf(-1))
	case isSignedKind[T]():
		return T(int64(-1) << (bitSize[T]() - 1))
	default:
		return 0
	}
}

// highest is the identity of min: +Inf for floats, the maximum value for integers.
func highest[T Number]() T {
	switch {
	case isFloatKind[T]():
		return T(math.Inf(1))
	case isSignedKind[T]():
		return T(int64(1)<<(bitSize[T]()-1) - 1)
	default:
		return T(uint64(math.MaxUint64) >> (64 - bitSize[T]()))
	}
}

// isNaN is true only for float NaN (x != x never holds for integers).
func isNaN[T Number](v T) bool { return v != v }

// maxOf returns the larger operand; a NaN on either side poisons the result.
func maxOf[T Number](x, y T) T {
	if isNaN(x) {
		return x
	}
	if isNaN(y) || y > x {
		return y
	}

	return x
}

// minOf returns the smaller operand; a NaN on either side poisons the result.
func minOf[T Number](x, y T) T {
	if isNaN(x) {
		return x
	}
	if isNaN(y) || y < x {
		return y
	}

	return x
}

func add[T Number](x, y T) T { return x + y }

func absOf[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
