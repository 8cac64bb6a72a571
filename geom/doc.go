// Package geom defines the 3-component primitives of the ray tracer:
// Point (a location), Vector (a displacement) and Color (an RGB
// triple), together with their algebra.
//
// All three are small immutable value types: every operation returns a
// fresh value and no method mutates its receiver, so instances may be
// shared freely across goroutines. Arithmetic is plain attribute-wise
// float64 with no validation and no error paths.
//
// Equality via == is exact floating-point comparison, which is the
// convention the test suites rely on; after chains of arithmetic use
// the ApproxEqual helpers with a small tolerance instead.
//
// Points and vectors interoperate the usual way: point + vector moves a
// point, point - point yields the vector between them. Colors are
// unrelated to the matrix types and are consumed only by the canvas.
package geom
