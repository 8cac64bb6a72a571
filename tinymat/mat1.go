// SPDX-License-Identifier: MIT
// Package tinymat: order-1 matrix. Base case of the cofactor recursion:
// no minors exist, the determinant is the single element.

package tinymat

// Mat1 is a 1×1 matrix. It exists so that the minor/cofactor recursion
// of Mat2 has a concrete order to bottom out on.
type Mat1 struct {
	data [order1 * order1]float64
}

// NewMat1 wraps the given element verbatim.
func NewMat1(data [order1 * order1]float64) Mat1 {
	return Mat1{data: data}
}

// Mat1FromSlice copies a 1-element slice, or returns ErrBadShape.
func Mat1FromSlice(data []float64) (Mat1, error) {
	if len(data) != order1*order1 {
		return Mat1{}, ErrBadShape
	}
	var m Mat1
	copy(m.data[:], data)

	return m, nil
}

// Zero1 returns the all-zero matrix of order 1.
func Zero1() Mat1 { return Mat1{} }

// One1 returns the all-one matrix of order 1.
func One1() Mat1 { return NewMat1([...]float64{1}) }

// Identity1 returns the order-1 identity.
func Identity1() Mat1 { return One1() }

// Order reports 1.
func (m Mat1) Order() int { return order1 }

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m Mat1) At(row, col int) (float64, error) {
	if err := checkIndex(order1, row, col); err != nil {
		return 0, err
	}

	return m.data[row*order1+col], nil
}

// Neg returns -m.
func (m Mat1) Neg() Mat1 {
	var out Mat1
	ewNeg(out.data[:], m.data[:])

	return out
}

// Add returns m + o elementwise.
func (m Mat1) Add(o Mat1) Mat1 {
	var out Mat1
	ewAdd(out.data[:], m.data[:], o.data[:])

	return out
}

// Sub returns m - o, defined as m + (-o).
func (m Mat1) Sub(o Mat1) Mat1 { return m.Add(o.Neg()) }

// Scale returns m with every element multiplied by alpha.
func (m Mat1) Scale(alpha float64) Mat1 {
	var out Mat1
	ewScale(out.data[:], m.data[:], alpha)

	return out
}

// DivScalar returns m with every element divided by alpha. A zero alpha
// is not guarded; elements become ±Inf or NaN per IEEE semantics.
func (m Mat1) DivScalar(alpha float64) Mat1 {
	var out Mat1
	ewDiv(out.data[:], m.data[:], alpha)

	return out
}

// Mul returns the matrix product m·o.
func (m Mat1) Mul(o Mat1) Mat1 {
	var out Mat1
	mulKernel(out.data[:], m.data[:], o.data[:], order1)

	return out
}

// MulVec returns the product m·x with x as a column vector.
func (m Mat1) MulVec(x [order1]float64) [order1]float64 {
	var out [order1]float64
	mulVecKernel(out[:], m.data[:], x[:], order1)

	return out
}

// Transposed returns mᵀ (which equals m at order 1).
func (m Mat1) Transposed() Mat1 { return m }

// Equal reports exact elementwise equality. Test-oriented; use
// ApproxEqual after arithmetic.
func (m Mat1) Equal(o Mat1) bool { return eqExact(m.data[:], o.data[:]) }

// ApproxEqual reports elementwise equality within absolute eps.
func (m Mat1) ApproxEqual(o Mat1, eps float64) bool {
	return eqApprox(m.data[:], o.data[:], eps)
}

// Do visits the single element; with one element the early-stop return
// value has nothing left to skip.
func (m Mat1) Do(f func(row, col int, v float64) bool) {
	f(0, 0, m.data[0])
}

// Apply replaces the element with f(0, 0, element) in place. Requires
// exclusive access to the receiver.
func (m *Mat1) Apply(f func(row, col int, v float64) float64) {
	m.data[0] = f(0, 0, m.data[0])
}

// Determinant returns the single element.
func (m Mat1) Determinant() float64 { return m.data[0] }

// Inverse returns the reciprocal matrix, or ErrSingular when the
// element is exactly zero.
func (m Mat1) Inverse() (Mat1, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat1{}, ErrSingular
	}

	return NewMat1([...]float64{1 / det}), nil
}

// String implements fmt.Stringer for easy debugging.
func (m Mat1) String() string { return formatRows(m.data[:], order1) }
