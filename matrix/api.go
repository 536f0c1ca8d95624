// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points under the names used by operator-style call
//     sites (a*b, -m, s*m, m/s, m[i][j]).
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// NewIdentity returns I_n.
func NewIdentity[T Number](n int) (*Dense[T], error) { return Identity[T](n) }

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) { return Mul(a, b, opts...) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rc).
func HadamardProd[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return Hadamard(a, b, opts...)
}

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T[E Number](m *Dense[E], opts ...Option) (*Dense[E], error) { return Transpose(m, opts...) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy[T Number](m *Dense[T], alpha T, opts ...Option) (*Dense[T], error) {
	return Scale(m, alpha, opts...)
}

// MatVecMul is an alias for MulVec: y = m·x.
func MatVecMul[T Number](m *Dense[T], x []T, opts ...Option) ([]T, error) { return MulVec(m, x, opts...) }

// ---------- Operator-style names ----------

// Negate is an alias for Neg.
func Negate[T Number](m *Dense[T], opts ...Option) (*Dense[T], error) { return Neg(m, opts...) }

// Subtract is an alias for Sub.
func Subtract[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) { return Sub(a, b, opts...) }

// Multiply is an alias for Mul.
func Multiply[T Number](a, b *Dense[T], opts ...Option) (*Dense[T], error) { return Mul(a, b, opts...) }
