// Package tinymat offers fixed-size square matrices for geometric
// transforms, at orders 1 through 4.
//
// The tinymat package provides:
//
//   - Mat1, Mat2, Mat3 and Mat4: immutable row-major value types with
//     elementwise algebra (negation, addition, subtraction, scalar
//     scaling and division) and the standard matrix product.
//   - A minor/cofactor engine: Delete removes one row and one column
//     and yields the next-smaller order; Cofactor applies the
//     checkerboard sign of Laplace expansion.
//   - Determinant by recursive Laplace expansion along the first row,
//     and Inverse via the adjugate (cofactor matrix, transposed,
//     divided by the determinant).
//
// Every operation returns a fresh value; nothing is mutated in place
// except the explicit Apply pass, which requires exclusive access to
// its receiver. Matrices may therefore be shared read-only across
// goroutines without synchronization.
//
// The recursive cofactor expansion is exponential in the order, which
// is a deliberate simplicity-over-asymptotics choice: the order is
// bounded at 4 by construction. Do not imitate this approach for
// larger matrices.
//
// Equality (Equal) is exact elementwise floating-point comparison and
// exists for test assertions; numeric comparisons after arithmetic
// should use ApproxEqual with a small tolerance. The singularity test
// inside Inverse is likewise exact (det == 0): near-singular inputs
// are not rejected and produce numerically unstable results. See the
// Inverse docs on each type.
//
// See the examples in this package for usage patterns.
package tinymat
