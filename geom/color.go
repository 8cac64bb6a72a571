package geom

import (
	"fmt"
	"math"
)

// Color is an RGB triple with float64 channels. Channels nominally
// range over [0, 1]; values outside that range are legal intermediates
// and are clamped only at PPM emission time.
type Color struct {
	R, G, B float64
}

// Black and White are the usual endpoints of the gray ramp. Black is
// also the zero value of Color.
var (
	Black = Color{}
	White = NewColor(1, 1, 1)
)

// NewColor returns the color with channels (r, g, b).
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns the color with all three channels set to value.
func Gray(value float64) Color {
	return NewColor(value, value, value)
}

// Add returns c + o channelwise.
func (c Color) Add(o Color) Color {
	return NewColor(c.R+o.R, c.G+o.G, c.B+o.B)
}

// Sub returns c - o channelwise.
func (c Color) Sub(o Color) Color {
	return NewColor(c.R-o.R, c.G-o.G, c.B-o.B)
}

// Mul returns the Hadamard (channelwise) product — the usual model for
// filtering one color through another.
func (c Color) Mul(o Color) Color {
	return NewColor(c.R*o.R, c.G*o.G, c.B*o.B)
}

// Scale returns c with every channel multiplied by s.
func (c Color) Scale(s float64) Color {
	return c.Mul(Gray(s))
}

// ApproxEqual reports channelwise equality within absolute eps.
func (c Color) ApproxEqual(o Color, eps float64) bool {
	return math.Abs(c.R-o.R) <= eps &&
		math.Abs(c.G-o.G) <= eps &&
		math.Abs(c.B-o.B) <= eps
}

// RGB255 quantizes the channels to integers in [0, 255]: each channel
// is multiplied by 255, truncated, and clamped.
func (c Color) RGB255() (r, g, b int) {
	return channel255(c.R), channel255(c.G), channel255(c.B)
}

// channel255 maps one float channel onto the 0..255 PPM range.
func channel255(v float64) int {
	n := int(255 * v)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}

	return n
}

// String renders the color as the three space-separated 0–255 channel
// integers of a PPM pixel row.
func (c Color) String() string {
	r, g, b := c.RGB255()

	return fmt.Sprintf("%d %d %d", r, g, b)
}
