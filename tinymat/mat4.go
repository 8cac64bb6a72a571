// SPDX-License-Identifier: MIT
// Package tinymat: order-4 matrix — the workhorse order for geometric
// transforms. Its determinant recursion walks Mat4 → Mat3 → Mat2 → Mat1.

package tinymat

// Mat4 is a 4×4 row-major matrix value type.
type Mat4 struct {
	data [order4 * order4]float64
}

// NewMat4 wraps the given row-major elements verbatim.
func NewMat4(data [order4 * order4]float64) Mat4 {
	return Mat4{data: data}
}

// Mat4FromSlice copies a 16-element row-major slice, or returns
// ErrBadShape when the length does not match.
func Mat4FromSlice(data []float64) (Mat4, error) {
	if len(data) != order4*order4 {
		return Mat4{}, ErrBadShape
	}
	var m Mat4
	copy(m.data[:], data)

	return m, nil
}

// Zero4 returns the all-zero matrix of order 4.
func Zero4() Mat4 { return Mat4{} }

// One4 returns the all-one matrix of order 4.
func One4() Mat4 {
	return NewMat4([...]float64{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	})
}

// Identity4 returns the order-4 identity, built directly on the
// diagonal.
func Identity4() Mat4 {
	var m Mat4
	identityKernel(m.data[:], order4)

	return m
}

// Order reports 4.
func (m Mat4) Order() int { return order4 }

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m Mat4) At(row, col int) (float64, error) {
	if err := checkIndex(order4, row, col); err != nil {
		return 0, err
	}

	return m.data[row*order4+col], nil
}

// Neg returns -m elementwise.
func (m Mat4) Neg() Mat4 {
	var out Mat4
	ewNeg(out.data[:], m.data[:])

	return out
}

// Add returns m + o elementwise.
func (m Mat4) Add(o Mat4) Mat4 {
	var out Mat4
	ewAdd(out.data[:], m.data[:], o.data[:])

	return out
}

// Sub returns m - o, defined as m + (-o).
func (m Mat4) Sub(o Mat4) Mat4 { return m.Add(o.Neg()) }

// Scale returns m with every element multiplied by alpha.
func (m Mat4) Scale(alpha float64) Mat4 {
	var out Mat4
	ewScale(out.data[:], m.data[:], alpha)

	return out
}

// DivScalar returns m with every element divided by alpha. A zero alpha
// is not guarded; elements become ±Inf or NaN per IEEE semantics.
func (m Mat4) DivScalar(alpha float64) Mat4 {
	var out Mat4
	ewDiv(out.data[:], m.data[:], alpha)

	return out
}

// Mul returns the matrix product m·o.
// Complexity: O(order³) with fixed r→c→k loop order.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	mulKernel(out.data[:], m.data[:], o.data[:], order4)

	return out
}

// MulVec returns the product m·x with x as a column vector. The
// homogeneous coordinate convention for points vs. directions is the
// caller's: this is plain 4×4 algebra.
func (m Mat4) MulVec(x [order4]float64) [order4]float64 {
	var out [order4]float64
	mulVecKernel(out[:], m.data[:], x[:], order4)

	return out
}

// Transposed returns mᵀ as a new value; m is unchanged. Pure element
// relocation: Transposed().Transposed() round-trips exactly.
func (m Mat4) Transposed() Mat4 {
	var out Mat4
	transposeKernel(out.data[:], m.data[:], order4)

	return out
}

// Equal reports exact elementwise equality. Test-oriented; use
// ApproxEqual after arithmetic.
func (m Mat4) Equal(o Mat4) bool { return eqExact(m.data[:], o.data[:]) }

// ApproxEqual reports elementwise equality within absolute eps.
func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	return eqApprox(m.data[:], o.data[:], eps)
}

// Do visits every element in row-major order; returning false from f
// stops the traversal early. Each call starts a fresh traversal.
func (m Mat4) Do(f func(row, col int, v float64) bool) {
	for r := 0; r < order4; r++ {
		for c := 0; c < order4; c++ {
			if !f(r, c, m.data[r*order4+c]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(row, col, element), row-major, in
// place. Requires exclusive access to the receiver; all other
// operations stay value-pure.
func (m *Mat4) Apply(f func(row, col int, v float64) float64) {
	for r := 0; r < order4; r++ {
		for c := 0; c < order4; c++ {
			m.data[r*order4+c] = f(r, c, m.data[r*order4+c])
		}
	}
}

// minor is the unchecked Delete used by the determinant recursion.
func (m Mat4) minor(row, col int) Mat3 {
	var out Mat3
	deleteKernel(out.data[:], m.data[:], order4, row, col)

	return out
}

// cofactor is the unchecked Cofactor.
func (m Mat4) cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.minor(row, col).Determinant()
}

// Delete returns the 3×3 matrix left after removing row and col, or
// ErrOutOfRange for indices outside [0, 4).
func (m Mat4) Delete(row, col int) (Mat3, error) {
	if err := checkIndex(order4, row, col); err != nil {
		return Mat3{}, err
	}

	return m.minor(row, col), nil
}

// Cofactor returns sign·det(minor(row, col)) with the checkerboard
// sign of Laplace expansion, or ErrOutOfRange for invalid indices.
func (m Mat4) Cofactor(row, col int) (float64, error) {
	if err := checkIndex(order4, row, col); err != nil {
		return 0, err
	}

	return m.cofactor(row, col), nil
}

// Determinant computes the determinant by Laplace expansion along the
// first row: Σ_c m[0][c]·cofactor(0, c). Cost is exponential in the
// order in this naive recursive form, which is fine at order ≤ 4.
func (m Mat4) Determinant() float64 {
	var det float64
	for c := 0; c < order4; c++ {
		det += m.data[c] * m.cofactor(0, c)
	}

	return det
}

// Inverse builds the full cofactor matrix, transposes it into the
// adjugate, and divides every element by the determinant. Returns
// ErrSingular when the determinant is exactly zero — no tolerance
// band, so near-singular matrices still "invert" into unstable
// results. Round trips (m·m⁻¹ ≈ Identity4) hold within floating-point
// rounding only; compare with ApproxEqual.
func (m Mat4) Inverse() (Mat4, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat4{}, ErrSingular
	}

	var cof Mat4
	for r := 0; r < order4; r++ {
		for c := 0; c < order4; c++ {
			cof.data[r*order4+c] = m.cofactor(r, c)
		}
	}

	return cof.Transposed().DivScalar(det), nil
}

// String implements fmt.Stringer for easy debugging.
func (m Mat4) String() string { return formatRows(m.data[:], order4) }
