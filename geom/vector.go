package geom

import "math"

// Vector is a displacement in 3-space. The zero value is the zero
// vector.
type Vector struct {
	X, Y, Z float64
}

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Point converts the vector to the point with the same coordinates.
func (v Vector) Point() Point {
	return NewPoint(v.X, v.Y, v.Z)
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return NewVector(-v.X, -v.Y, -v.Z)
}

// Add returns v + o componentwise.
func (v Vector) Add(o Vector) Vector {
	return NewVector(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

// Sub returns v - o, defined as v + (-o).
func (v Vector) Sub(o Vector) Vector {
	return v.Add(o.Neg())
}

// AddScalar returns v with s added to every component.
func (v Vector) AddScalar(s float64) Vector {
	return v.Add(NewVector(s, s, s))
}

// Scale returns v with every component multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return NewVector(v.X*s, v.Y*s, v.Z*s)
}

// Div returns v with every component divided by s. A zero s is not
// guarded; IEEE semantics apply.
func (v Vector) Div(s float64) Vector {
	return NewVector(v.X/s, v.Y/s, v.Z/s)
}

// LengthSquared returns |v|², avoiding the square root.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns |v|.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector in v's direction. The zero vector
// normalizes to NaN components (division by zero length).
func (v Vector) Normalize() Vector {
	return v.Div(v.Length())
}

// Dot returns the scalar product v·o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the vector product v×o. Order matters: o.Cross(v) is
// the negation.
func (v Vector) Cross(o Vector) Vector {
	return NewVector(
		v.Y*o.Z-v.Z*o.Y,
		v.Z*o.X-v.X*o.Z,
		v.X*o.Y-v.Y*o.X,
	)
}

// Hadamard returns the componentwise product.
func (v Vector) Hadamard(o Vector) Vector {
	return NewVector(v.X*o.X, v.Y*o.Y, v.Z*o.Z)
}

// ApproxEqual reports componentwise equality within absolute eps.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps &&
		math.Abs(v.Y-o.Y) <= eps &&
		math.Abs(v.Z-o.Z) <= eps
}
