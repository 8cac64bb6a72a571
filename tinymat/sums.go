// SPDX-License-Identifier: MIT
// Package tinymat: order-generic reductions over the Square surface.

package tinymat

// RowSums returns the sum of each row, one entry per row, in row order.
// Works for any order via the Square interface.
// Complexity: O(order²).
func RowSums(m Square) []float64 {
	res := make([]float64, m.Order())
	m.Do(func(row, _ int, v float64) bool {
		res[row] += v

		return true
	})

	return res
}

// ColSums returns the sum of each column, one entry per column, in
// column order.
// Complexity: O(order²).
func ColSums(m Square) []float64 {
	res := make([]float64, m.Order())
	m.Do(func(_, col int, v float64) bool {
		res[col] += v

		return true
	})

	return res
}

// Trace returns the sum of the diagonal elements.
// Complexity: O(order²) via the generic traversal.
func Trace(m Square) float64 {
	var t float64
	m.Do(func(row, col int, v float64) bool {
		if row == col {
			t += v
		}

		return true
	})

	return t
}
