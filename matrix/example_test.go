// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

// ExampleMul shows the general product and the shape-driven fast paths.
func ExampleMul() {
	a, _ := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.New([][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})
	c, _ := matrix.Mul(a, b)
	fmt.Println(c)

	row, _ := matrix.NewRowVector([]float64{1, 2, 3})
	col, _ := matrix.T(row)
	p, _ := matrix.MulPath(row, col)
	d, _ := matrix.Mul(row, col)
	fmt.Println(p, d.RawData())

	_, err := matrix.Mul(a, a)
	fmt.Println(errors.Is(err, matrix.ErrInnerMismatch))

	// Output:
	// [
	//  [ 38.0000 44.0000 50.0000 56.0000 ]
	//  [ 83.0000 98.0000 113.0000 128.0000 ]
	// ]
	// dot [14]
	// true
}

// ExampleSum reduces along each axis.
func ExampleSum() {
	x, _ := matrix.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	rows, _ := matrix.Sum(x, matrix.AxisRow)
	cols, _ := matrix.Sum(x, matrix.AxisColumn)
	all, _ := matrix.Sum(x, matrix.AxisBoth)
	fmt.Println(rows.RawData(), cols.RawData(), all.RawData())

	// Output:
	// [6 15 24] [12 15 18] [45]
}

// ExampleToSparse converts a dense matrix to CSR and multiplies a vector.
func ExampleToSparse() {
	d, _ := matrix.New([][]float64{{1, 0, 0, 0}, {0, 2, 1, 0}, {3, 0, 0, 2}, {0, 0, 1, 0}})
	s, _ := matrix.ToSparse(d)
	fmt.Println(s.Values(), s.ColIndices(), s.RowPtr())

	v, _ := matrix.NewColVector([]float64{1, 1, 1, 1})
	y, _ := matrix.SpMV(s, v)
	fmt.Println(y.RawData())

	// Output:
	// [1 2 1 3 2 1] [0 1 2 0 3 2] [0 1 3 5 6]
	// [1 3 5 1]
}

// ExampleDense_Reshape keeps row-major order.
func ExampleDense_Reshape() {
	m, _ := matrix.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	_ = m.Reshape(1, 9)
	fmt.Println(m)

	// Output:
	// [
	//  [ 1 2 3 4 5 6 7 8 9 ]
	// ]
}
