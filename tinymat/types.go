// SPDX-License-Identifier: MIT
// Package tinymat: shared types and interface surface.

package tinymat

// Orders of the concrete matrix types. Fixed at the type level; the
// recursion Mat4 → Mat3 → Mat2 → Mat1 terminates at order 1.
const (
	order1 = 1
	order2 = 2
	order3 = 3
	order4 = 4
)

// Square is the read-only surface shared by Mat1..Mat4. Consumers that
// do not care about the concrete order (formatting, row/column sums,
// generic assertions) accept a Square; all package operations return
// the concrete types.
type Square interface {
	// Order reports the number of rows (= columns).
	Order() int

	// At retrieves the element at (row, col), or ErrOutOfRange.
	At(row, col int) (float64, error)

	// Do visits every element in row-major order. Returning false from
	// f stops the traversal early.
	Do(f func(row, col int, v float64) bool)
}

// Compile-time interface conformance for all four orders.
var (
	_ Square = Mat1{}
	_ Square = Mat2{}
	_ Square = Mat3{}
	_ Square = Mat4{}
)
