// SPDX-License-Identifier: MIT

package canvas

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/raynum/geom"
)

// Sentinel errors for canvas operations.
var (
	// ErrBadShape indicates non-positive canvas dimensions.
	ErrBadShape = errors.New("canvas: width and height must be > 0")
	// ErrOutOfRange indicates a pixel coordinate outside the canvas.
	ErrOutOfRange = errors.New("canvas: pixel index out of range")
)

// Canvas is a rectangular grid of pixels. Pixels are stored row-major:
// index = x + y*width.
type Canvas struct {
	width, height int
	pixels        []geom.Color
}

// New creates a width×height canvas with every pixel black, or
// ErrBadShape for non-positive dimensions.
func New(width, height int) (*Canvas, error) {
	return NewWithColor(width, height, geom.Black)
}

// NewWithColor creates a width×height canvas with every pixel set to
// color, or ErrBadShape for non-positive dimensions.
func NewWithColor(width, height int, color geom.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadShape
	}

	pixels := make([]geom.Color, width*height)
	for i := range pixels {
		pixels[i] = color
	}

	return &Canvas{width: width, height: height, pixels: pixels}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixels exposes the backing pixel slice, row-major. Mutating it
// requires the same exclusive access as Set.
func (c *Canvas) Pixels() []geom.Color { return c.pixels }

// index computes the flat offset of (x, y) or returns ErrOutOfRange.
func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, ErrOutOfRange
	}

	return x + y*c.width, nil
}

// At retrieves the pixel at (x, y), or ErrOutOfRange.
func (c *Canvas) At(x, y int) (geom.Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return geom.Color{}, err
	}

	return c.pixels[i], nil
}

// Set assigns the pixel at (x, y), or returns ErrOutOfRange.
func (c *Canvas) Set(x, y int, color geom.Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = color

	return nil
}

// Fill sets every pixel to color.
func (c *Canvas) Fill(color geom.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// Render fills the canvas by evaluating shade once per pixel. Rows are
// rendered concurrently, at most GOMAXPROCS at a time; rows are
// disjoint slices of the pixel store, so no synchronization is needed
// beyond the errgroup itself. Returns ctx.Err() if the context is
// canceled before all rows complete; the canvas content is then
// partially rendered and should be discarded.
func (c *Canvas) Render(ctx context.Context, shade func(x, y int) geom.Color) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y := 0; y < c.height; y++ {
		row := c.pixels[y*c.width : (y+1)*c.width]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			for x := range row {
				row[x] = shade(x, y)
			}

			return nil
		})
	}

	return g.Wait()
}
