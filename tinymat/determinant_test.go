// Package tinymat_test: minor extraction, cofactors and determinants.
package tinymat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raynum/tinymat"
)

// TestDelete verifies minor extraction against hand-picked rows and
// columns at orders 4, 3 and 2.
func TestDelete(t *testing.T) {
	m4 := tinymat.NewMat4([...]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})

	m3, err := m4.Delete(1, 2) // drop second row, third column
	require.NoError(t, err)
	require.True(t, m3.Equal(tinymat.NewMat3([...]float64{
		1, 2, 4,
		9, 10, 12,
		13, 14, 16,
	})))

	m2, err := m3.Delete(0, 0) // drop first row and column
	require.NoError(t, err)
	require.True(t, m2.Equal(tinymat.NewMat2([...]float64{
		10, 12,
		14, 16,
	})))

	m1, err := m2.Delete(1, 1) // down to the base case
	require.NoError(t, err)
	require.Equal(t, 10.0, m1.Determinant())
}

// TestDeleteCofactorOutOfRange ensures the hardened index boundary:
// invalid rows/columns surface ErrOutOfRange instead of panicking.
func TestDeleteCofactorOutOfRange(t *testing.T) {
	m := tinymat.Identity3()

	_, err := m.Delete(3, 0) // row == order
	require.ErrorIs(t, err, tinymat.ErrOutOfRange)

	_, err = m.Delete(0, -1) // negative column
	require.ErrorIs(t, err, tinymat.ErrOutOfRange)

	_, err = m.Cofactor(-1, 0)
	require.ErrorIs(t, err, tinymat.ErrOutOfRange)

	_, err = tinymat.Identity4().Cofactor(0, 4)
	require.ErrorIs(t, err, tinymat.ErrOutOfRange)
}

// TestCofactorSign verifies the checkerboard sign pattern of Laplace
// expansion on an order-3 matrix.
func TestCofactorSign(t *testing.T) {
	m := tinymat.NewMat3([...]float64{
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	})

	// minor(0,0) = det [[-1,-7],[-1,5]] = -12; even parity keeps sign.
	cof, err := m.Cofactor(0, 0)
	require.NoError(t, err)
	require.Equal(t, -12.0, cof)

	// minor(1,0) = det [[5,0],[-1,5]] = 25; odd parity flips sign.
	cof, err = m.Cofactor(1, 0)
	require.NoError(t, err)
	require.Equal(t, -25.0, cof)
}

// TestDeterminantOrder2 reproduces the concrete order-2 scenario:
// det [[1,2],[2,1]] = 1·1 - 2·2 = -3.
func TestDeterminantOrder2(t *testing.T) {
	a := tinymat.NewMat2([...]float64{
		1, 2,
		2, 1,
	})

	require.Equal(t, -3.0, a.Determinant())
}

// TestDeterminantOrder3 verifies the circulant scenario by direct
// first-row expansion:
// det [[1,2,3],[3,1,2],[2,3,1]]
//   = 1·(1·1-2·3) - 2·(3·1-2·2) + 3·(3·3-1·2)
//   = -5 + 2 + 21 = 18.
func TestDeterminantOrder3(t *testing.T) {
	a := tinymat.NewMat3([...]float64{
		1, 2, 3,
		3, 1, 2,
		2, 3, 1,
	})

	require.Equal(t, 18.0, a.Determinant())
}

// TestDeterminantOrder4 checks a full order-4 expansion against a
// hand-verified value.
func TestDeterminantOrder4(t *testing.T) {
	a := tinymat.NewMat4([...]float64{
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	})

	require.Equal(t, -4071.0, a.Determinant())
}

// TestDeterminantIdentityAndZero: det(identity) = 1 and det(zero) = 0
// at every order.
func TestDeterminantIdentityAndZero(t *testing.T) {
	require.Equal(t, 1.0, tinymat.Identity1().Determinant())
	require.Equal(t, 1.0, tinymat.Identity2().Determinant())
	require.Equal(t, 1.0, tinymat.Identity3().Determinant())
	require.Equal(t, 1.0, tinymat.Identity4().Determinant())

	require.Equal(t, 0.0, tinymat.Zero1().Determinant())
	require.Equal(t, 0.0, tinymat.Zero2().Determinant())
	require.Equal(t, 0.0, tinymat.Zero3().Determinant())
	require.Equal(t, 0.0, tinymat.Zero4().Determinant())
}

// TestDeterminantOrder1 is the recursion base case: the determinant is
// the single element.
func TestDeterminantOrder1(t *testing.T) {
	require.Equal(t, 42.0, tinymat.NewMat1([...]float64{42}).Determinant())
}
