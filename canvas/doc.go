// Package canvas provides the rectangular pixel store of the ray
// tracer and its only externally visible output format: the plain-text
// PPM (P3) image file.
//
// A Canvas is a width×height grid of geom.Color values stored row-major
// in a flat slice. Pixel access is bounds-checked and returns the
// ErrOutOfRange sentinel rather than panicking. Render fills the canvas
// from a per-pixel shading function, one goroutine per row, and honors
// context cancellation.
//
// The PPM encoding is fixed: a three-line header (the "P3" magic token,
// "width height", and the maximum channel value 255) followed by one
// "r g b" line of 0–255 integers per pixel in row-major order.
package canvas
