// SPDX-License-Identifier: MIT
// Package tinymat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// tinymat package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package tinymat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tinymat: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX)
// only where extra context is essential — callers still match via
// errors.Is.

var (
	// ErrBadShape is returned when a raw element slice does not hold
	// exactly order×order values. Construction validates before copying.
	ErrBadShape = errors.New("tinymat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0, order). Public indexers (At, Delete, Cofactor) MUST return
	// this, not panic.
	ErrOutOfRange = errors.New("tinymat: index out of range")

	// ErrSingular is returned by Inverse when the determinant is exactly
	// zero. The test is exact floating-point equality: matrices with a
	// determinant extremely close to zero are NOT rejected and yield an
	// unstable inverse instead. Callers needing protection from
	// near-singular input must screen the determinant themselves.
	ErrSingular = errors.New("tinymat: singular matrix")
)
