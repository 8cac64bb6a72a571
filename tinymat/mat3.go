// SPDX-License-Identifier: MIT
// Package tinymat: order-3 matrix.

package tinymat

// Mat3 is a 3×3 row-major matrix value type.
type Mat3 struct {
	data [order3 * order3]float64
}

// NewMat3 wraps the given row-major elements verbatim.
func NewMat3(data [order3 * order3]float64) Mat3 {
	return Mat3{data: data}
}

// Mat3FromSlice copies a 9-element row-major slice, or returns
// ErrBadShape when the length does not match.
func Mat3FromSlice(data []float64) (Mat3, error) {
	if len(data) != order3*order3 {
		return Mat3{}, ErrBadShape
	}
	var m Mat3
	copy(m.data[:], data)

	return m, nil
}

// Zero3 returns the all-zero matrix of order 3.
func Zero3() Mat3 { return Mat3{} }

// One3 returns the all-one matrix of order 3.
func One3() Mat3 {
	return NewMat3([...]float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	})
}

// Identity3 returns the order-3 identity.
func Identity3() Mat3 {
	var m Mat3
	identityKernel(m.data[:], order3)

	return m
}

// Order reports 3.
func (m Mat3) Order() int { return order3 }

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m Mat3) At(row, col int) (float64, error) {
	if err := checkIndex(order3, row, col); err != nil {
		return 0, err
	}

	return m.data[row*order3+col], nil
}

// Neg returns -m elementwise.
func (m Mat3) Neg() Mat3 {
	var out Mat3
	ewNeg(out.data[:], m.data[:])

	return out
}

// Add returns m + o elementwise.
func (m Mat3) Add(o Mat3) Mat3 {
	var out Mat3
	ewAdd(out.data[:], m.data[:], o.data[:])

	return out
}

// Sub returns m - o, defined as m + (-o).
func (m Mat3) Sub(o Mat3) Mat3 { return m.Add(o.Neg()) }

// Scale returns m with every element multiplied by alpha.
func (m Mat3) Scale(alpha float64) Mat3 {
	var out Mat3
	ewScale(out.data[:], m.data[:], alpha)

	return out
}

// DivScalar returns m with every element divided by alpha; zero alpha
// follows IEEE semantics, no guard.
func (m Mat3) DivScalar(alpha float64) Mat3 {
	var out Mat3
	ewDiv(out.data[:], m.data[:], alpha)

	return out
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	mulKernel(out.data[:], m.data[:], o.data[:], order3)

	return out
}

// MulVec returns the product m·x with x as a column vector.
func (m Mat3) MulVec(x [order3]float64) [order3]float64 {
	var out [order3]float64
	mulVecKernel(out[:], m.data[:], x[:], order3)

	return out
}

// Transposed returns mᵀ as a new value; m is unchanged.
func (m Mat3) Transposed() Mat3 {
	var out Mat3
	transposeKernel(out.data[:], m.data[:], order3)

	return out
}

// Equal reports exact elementwise equality. Test-oriented.
func (m Mat3) Equal(o Mat3) bool { return eqExact(m.data[:], o.data[:]) }

// ApproxEqual reports elementwise equality within absolute eps.
func (m Mat3) ApproxEqual(o Mat3, eps float64) bool {
	return eqApprox(m.data[:], o.data[:], eps)
}

// Do visits every element in row-major order; returning false stops
// the traversal early.
func (m Mat3) Do(f func(row, col int, v float64) bool) {
	for r := 0; r < order3; r++ {
		for c := 0; c < order3; c++ {
			if !f(r, c, m.data[r*order3+c]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(row, col, element) in place.
// Requires exclusive access to the receiver.
func (m *Mat3) Apply(f func(row, col int, v float64) float64) {
	for r := 0; r < order3; r++ {
		for c := 0; c < order3; c++ {
			m.data[r*order3+c] = f(r, c, m.data[r*order3+c])
		}
	}
}

func (m Mat3) minor(row, col int) Mat2 {
	var out Mat2
	deleteKernel(out.data[:], m.data[:], order3, row, col)

	return out
}

func (m Mat3) cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.minor(row, col).Determinant()
}

// Delete returns the 2×2 matrix left after removing row and col, or
// ErrOutOfRange for indices outside [0, 3).
func (m Mat3) Delete(row, col int) (Mat2, error) {
	if err := checkIndex(order3, row, col); err != nil {
		return Mat2{}, err
	}

	return m.minor(row, col), nil
}

// Cofactor returns the signed determinant of the minor at (row, col),
// or ErrOutOfRange for invalid indices.
func (m Mat3) Cofactor(row, col int) (float64, error) {
	if err := checkIndex(order3, row, col); err != nil {
		return 0, err
	}

	return m.cofactor(row, col), nil
}

// Determinant computes the determinant by Laplace expansion along the
// first row, recursing through Mat2.
func (m Mat3) Determinant() float64 {
	var det float64
	for c := 0; c < order3; c++ {
		det += m.data[c] * m.cofactor(0, c)
	}

	return det
}

// Inverse returns the adjugate divided by the determinant, or
// ErrSingular when the determinant is exactly zero. See Mat2.Inverse
// for the exact-zero caveat; it applies identically here.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat3{}, ErrSingular
	}

	var cof Mat3
	for r := 0; r < order3; r++ {
		for c := 0; c < order3; c++ {
			cof.data[r*order3+c] = m.cofactor(r, c)
		}
	}

	return cof.Transposed().DivScalar(det), nil
}

// String implements fmt.Stringer for easy debugging.
func (m Mat3) String() string { return formatRows(m.data[:], order3) }
