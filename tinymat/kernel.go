// SPDX-License-Identifier: MIT
// Package tinymat: shared flat-slice kernels.
//
// The four concrete types are near-identical except for their order, so
// all elementwise and structural logic is hoisted here as unexported
// kernels over row-major slices plus an order. The typed methods on
// Mat1..Mat4 are thin wrappers that pass their backing arrays through.
// Kernels never validate: callers guarantee len(dst) == len(a) == d*d.

package tinymat

import (
	"math"
	"strconv"
	"strings"
)

// checkIndex validates 0 ≤ row < d and 0 ≤ col < d.
// Complexity: O(1).
func checkIndex(d, row, col int) error {
	if row < 0 || row >= d {
		return ErrOutOfRange
	}
	if col < 0 || col >= d {
		return ErrOutOfRange
	}

	return nil
}

// ewNeg writes dst = -src over the flat backing storage.
// Complexity: O(d²).
func ewNeg(dst, src []float64) {
	for i := range src { // deterministic 0..n-1
		dst[i] = -src[i]
	}
}

// ewAdd writes dst = a + b elementwise.
// Complexity: O(d²).
func ewAdd(dst, a, b []float64) {
	for i := range a { // deterministic 0..n-1
		dst[i] = a[i] + b[i]
	}
}

// ewDiv writes dst = src / alpha elementwise. A zero alpha is NOT
// guarded: IEEE semantics apply and elements become ±Inf or NaN.
// Complexity: O(d²).
func ewDiv(dst, src []float64, alpha float64) {
	for i := range src {
		dst[i] = src[i] / alpha
	}
}

// ewScale writes dst = src * alpha elementwise.
// Complexity: O(d²).
func ewScale(dst, src []float64, alpha float64) {
	for i := range src {
		dst[i] = src[i] * alpha
	}
}

// mulKernel writes the d×d matrix product dst = a·b,
// dst[r][c] = Σ_k a[r][k]·b[k][c], with fixed r→c→k loop order.
// dst must not alias a or b.
// Complexity: O(d³).
func mulKernel(dst, a, b []float64, d int) {
	var sum float64
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			sum = 0
			for k := 0; k < d; k++ {
				sum += a[r*d+k] * b[k*d+c]
			}
			dst[r*d+c] = sum
		}
	}
}

// mulVecKernel writes the matrix-vector product dst = a·x, treating x
// as a column vector: dst[r] = Σ_k a[r][k]·x[k].
// Complexity: O(d²).
func mulVecKernel(dst, a, x []float64, d int) {
	var sum float64
	for r := 0; r < d; r++ {
		sum = 0
		for k := 0; k < d; k++ {
			sum += a[r*d+k] * x[k]
		}
		dst[r] = sum
	}
}

// transposeKernel writes dst[r][c] = src[c][r]. Pure relocation, no
// floating-point arithmetic, so transposition round-trips exactly.
// dst must not alias src.
// Complexity: O(d²).
func transposeKernel(dst, src []float64, d int) {
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			dst[r*d+c] = src[c*d+r]
		}
	}
}

// identityKernel writes ones on the diagonal of dst, zeros elsewhere.
// Complexity: O(d²).
func identityKernel(dst []float64, d int) {
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < d; i++ {
		dst[i*d+i] = 1
	}
}

// deleteKernel writes into dst the (d-1)×(d-1) minor of src obtained by
// removing row dr and column dc. Indices are assumed in range.
// Complexity: O(d²).
func deleteKernel(dst, src []float64, d, dr, dc int) {
	i := 0 // write cursor into dst, row-major
	for r := 0; r < d; r++ {
		if r == dr {
			continue
		}
		for c := 0; c < d; c++ {
			if c == dc {
				continue
			}
			dst[i] = src[r*d+c]
			i++
		}
	}
}

// cofactorSign returns +1 when row+col is even, -1 otherwise — the
// checkerboard sign pattern of Laplace expansion.
// Complexity: O(1).
func cofactorSign(row, col int) float64 {
	if (row+col)%2 == 0 {
		return 1
	}

	return -1
}

// eqExact reports exact elementwise equality. Intended for test
// assertions; NaN elements compare unequal per IEEE rules.
// Complexity: O(d²).
func eqExact(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// eqApprox reports elementwise equality within absolute tolerance eps.
// Complexity: O(d²).
func eqApprox(a, b []float64, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

// formatRows renders the matrix as one bracketed row per line, e.g.
// "[1, 2]\n[3, 4]\n".
// Complexity: O(d²).
func formatRows(src []float64, d int) string {
	var sb strings.Builder
	for r := 0; r < d; r++ {
		sb.WriteByte('[')
		for c := 0; c < d; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(src[r*d+c], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
