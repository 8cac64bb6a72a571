package geom

import "math"

// Point is a location in 3-space. The zero value is the origin.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Vec converts the point to the vector with the same coordinates.
func (p Point) Vec() Vector {
	return NewVector(p.X, p.Y, p.Z)
}

// Add moves the point by v.
func (p Point) Add(v Vector) Point {
	return p.Vec().Add(v).Point()
}

// Sub moves the point by -v.
func (p Point) Sub(v Vector) Point {
	return p.Add(v.Neg())
}

// SubPoint returns the vector between two points: p - other.
func (p Point) SubPoint(other Point) Vector {
	return p.Vec().Sub(other.Vec())
}

// To returns the vector from p to other: other - p.
func (p Point) To(other Point) Vector {
	return other.SubPoint(p)
}

// ApproxEqual reports componentwise equality within absolute eps.
func (p Point) ApproxEqual(o Point, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps &&
		math.Abs(p.Y-o.Y) <= eps &&
		math.Abs(p.Z-o.Z) <= eps
}
