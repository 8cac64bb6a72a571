// SPDX-License-Identifier: MIT
// Package tinymat: order-2 matrix.

package tinymat

// Mat2 is a 2×2 row-major matrix value type.
type Mat2 struct {
	data [order2 * order2]float64
}

// NewMat2 wraps the given row-major elements verbatim.
func NewMat2(data [order2 * order2]float64) Mat2 {
	return Mat2{data: data}
}

// Mat2FromSlice copies a 4-element row-major slice, or returns
// ErrBadShape when the length does not match.
func Mat2FromSlice(data []float64) (Mat2, error) {
	if len(data) != order2*order2 {
		return Mat2{}, ErrBadShape
	}
	var m Mat2
	copy(m.data[:], data)

	return m, nil
}

// Zero2 returns the all-zero matrix of order 2.
func Zero2() Mat2 { return Mat2{} }

// One2 returns the all-one matrix of order 2.
func One2() Mat2 {
	return NewMat2([...]float64{
		1, 1,
		1, 1,
	})
}

// Identity2 returns the order-2 identity, built directly on the
// diagonal — independent of the cofactor recursion.
func Identity2() Mat2 {
	var m Mat2
	identityKernel(m.data[:], order2)

	return m
}

// Order reports 2.
func (m Mat2) Order() int { return order2 }

// At retrieves the element at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (m Mat2) At(row, col int) (float64, error) {
	if err := checkIndex(order2, row, col); err != nil {
		return 0, err
	}

	return m.data[row*order2+col], nil
}

// Neg returns -m elementwise.
func (m Mat2) Neg() Mat2 {
	var out Mat2
	ewNeg(out.data[:], m.data[:])

	return out
}

// Add returns m + o elementwise.
func (m Mat2) Add(o Mat2) Mat2 {
	var out Mat2
	ewAdd(out.data[:], m.data[:], o.data[:])

	return out
}

// Sub returns m - o, defined as m + (-o).
func (m Mat2) Sub(o Mat2) Mat2 { return m.Add(o.Neg()) }

// Scale returns m with every element multiplied by alpha.
func (m Mat2) Scale(alpha float64) Mat2 {
	var out Mat2
	ewScale(out.data[:], m.data[:], alpha)

	return out
}

// DivScalar returns m with every element divided by alpha. A zero alpha
// is not guarded; elements become ±Inf or NaN per IEEE semantics.
func (m Mat2) DivScalar(alpha float64) Mat2 {
	var out Mat2
	ewDiv(out.data[:], m.data[:], alpha)

	return out
}

// Mul returns the matrix product m·o.
// Complexity: O(order³).
func (m Mat2) Mul(o Mat2) Mat2 {
	var out Mat2
	mulKernel(out.data[:], m.data[:], o.data[:], order2)

	return out
}

// MulVec returns the product m·x with x as a column vector. Any
// homogeneous point/vector convention is the caller's concern; this is
// plain 2×2 algebra.
func (m Mat2) MulVec(x [order2]float64) [order2]float64 {
	var out [order2]float64
	mulVecKernel(out[:], m.data[:], x[:], order2)

	return out
}

// Transposed returns mᵀ as a new value; m is unchanged.
func (m Mat2) Transposed() Mat2 {
	var out Mat2
	transposeKernel(out.data[:], m.data[:], order2)

	return out
}

// Equal reports exact elementwise equality. Test-oriented; use
// ApproxEqual after arithmetic.
func (m Mat2) Equal(o Mat2) bool { return eqExact(m.data[:], o.data[:]) }

// ApproxEqual reports elementwise equality within absolute eps.
func (m Mat2) ApproxEqual(o Mat2, eps float64) bool {
	return eqApprox(m.data[:], o.data[:], eps)
}

// Do visits every element in row-major order; returning false from f
// stops the traversal early.
func (m Mat2) Do(f func(row, col int, v float64) bool) {
	for r := 0; r < order2; r++ {
		for c := 0; c < order2; c++ {
			if !f(r, c, m.data[r*order2+c]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(row, col, element), row-major, in
// place. Requires exclusive access to the receiver.
func (m *Mat2) Apply(f func(row, col int, v float64) float64) {
	for r := 0; r < order2; r++ {
		for c := 0; c < order2; c++ {
			m.data[r*order2+c] = f(r, c, m.data[r*order2+c])
		}
	}
}

// minor is the unchecked Delete used by the determinant recursion;
// indices are provably in range there.
func (m Mat2) minor(row, col int) Mat1 {
	var out Mat1
	deleteKernel(out.data[:], m.data[:], order2, row, col)

	return out
}

// cofactor is the unchecked Cofactor: checkerboard sign times the
// determinant of the minor.
func (m Mat2) cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.minor(row, col).Determinant()
}

// Delete returns the 1×1 matrix left after removing row and col, or
// ErrOutOfRange for indices outside [0, 2).
func (m Mat2) Delete(row, col int) (Mat1, error) {
	if err := checkIndex(order2, row, col); err != nil {
		return Mat1{}, err
	}

	return m.minor(row, col), nil
}

// Cofactor returns sign·det(minor(row, col)) with sign +1 when row+col
// is even and -1 otherwise, or ErrOutOfRange for invalid indices.
func (m Mat2) Cofactor(row, col int) (float64, error) {
	if err := checkIndex(order2, row, col); err != nil {
		return 0, err
	}

	return m.cofactor(row, col), nil
}

// Determinant computes the determinant by Laplace expansion along the
// first row: Σ_c m[0][c]·cofactor(0, c).
func (m Mat2) Determinant() float64 {
	var det float64
	for c := 0; c < order2; c++ {
		det += m.data[c] * m.cofactor(0, c)
	}

	return det
}

// Inverse returns the adjugate divided by the determinant, or
// ErrSingular when the determinant is exactly zero. The zero test has
// no tolerance band: near-singular matrices are not rejected and the
// returned "inverse" may be wildly scaled. Verified round trips
// (m·m⁻¹ ≈ identity) hold only within floating-point rounding — compare
// with ApproxEqual, never Equal.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat2{}, ErrSingular
	}

	// Cofactor matrix, then transpose (adjugate), then divide by det.
	var cof Mat2
	for r := 0; r < order2; r++ {
		for c := 0; c < order2; c++ {
			cof.data[r*order2+c] = m.cofactor(r, c)
		}
	}

	return cof.Transposed().DivScalar(det), nil
}

// String implements fmt.Stringer for easy debugging.
func (m Mat2) String() string { return formatRows(m.data[:], order2) }
