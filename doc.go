// Package raynum is the numeric substrate for a ray tracer: tiny
// fixed-size square matrices with cofactor determinants and inverses,
// 3-component geometry and color types, and a pixel canvas with PPM
// emission.
//
// 🚀 What is raynum?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• tinymat: square matrices of order 1–4 (row-major, value types)
//		  with elementwise algebra, minors, cofactors, Laplace
//		  determinants and adjugate inverses
//		• geom: Point, Vector and Color — immutable 3-component values
//		  with the usual ray-tracer algebra (dot, cross, Hadamard)
//		• canvas: a rectangular pixel store with concurrent per-row
//		  rendering and plain-text PPM (P3) output
//
// ✨ Why choose raynum?
//
//   - Value semantics everywhere – every operation returns a new value,
//     so instances are freely shareable across goroutines
//   - Rock-solid error surfaces – sentinel errors, errors.Is friendly,
//     no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Sized for its domain – order ≤ 4 by construction, which keeps the
//     recursive cofactor expansion simple and exact
//
// Under the hood, everything is organized under three subpackages:
//
//	tinymat/ — Mat1..Mat4 types, the minor/cofactor engine, determinant & inverse
//	geom/    — Point, Vector, Color primitives and their algebra
//	canvas/  — Canvas pixel grid, concurrent Render, PPM encoding
//
// Dive into examples/ for runnable demos: a transform pipeline with a
// determinant/inverse round trip, and a gradient render written to PPM.
//
//	go get github.com/katalvlaran/raynum
package raynum
