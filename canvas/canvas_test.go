// Package canvas_test contains unit tests for the pixel store and the
// concurrent renderer.
package canvas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raynum/canvas"
	"github.com/katalvlaran/raynum/geom"
)

// TestNewCanvasIsAllBlack mirrors the canonical construction check.
func TestNewCanvasIsAllBlack(t *testing.T) {
	c, err := canvas.New(10, 20)
	require.NoError(t, err)

	require.Equal(t, 10, c.Width())
	require.Equal(t, 20, c.Height())
	require.Len(t, c.Pixels(), 200)
	for _, p := range c.Pixels() {
		require.Equal(t, geom.Black, p) // every pixel starts black
	}
}

// TestNewBadShape rejects non-positive dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := canvas.New(0, 5)
	require.ErrorIs(t, err, canvas.ErrBadShape)

	_, err = canvas.NewWithColor(5, -1, geom.White)
	require.ErrorIs(t, err, canvas.ErrBadShape)
}

// TestNewWithColor fills every pixel with the given color.
func TestNewWithColor(t *testing.T) {
	c, err := canvas.NewWithColor(3, 2, geom.Gray(0.5))
	require.NoError(t, err)

	for _, p := range c.Pixels() {
		require.Equal(t, geom.Gray(0.5), p)
	}
}

// TestWriteSinglePixel sets one pixel and leaves the rest untouched.
func TestWriteSinglePixel(t *testing.T) {
	c, err := canvas.New(10, 20)
	require.NoError(t, err)

	require.NoError(t, c.Set(0, 0, geom.White))

	got, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, geom.White, got)

	for _, p := range c.Pixels()[1:] {
		require.Equal(t, geom.Black, p) // only pixel (0,0) changed
	}
}

// TestPixelOutOfRange: both accessors surface ErrOutOfRange.
func TestPixelOutOfRange(t *testing.T) {
	c, err := canvas.New(4, 4)
	require.NoError(t, err)

	_, err = c.At(4, 0) // x == width
	require.ErrorIs(t, err, canvas.ErrOutOfRange)

	_, err = c.At(0, -1) // negative y
	require.ErrorIs(t, err, canvas.ErrOutOfRange)

	err = c.Set(0, 4, geom.White) // y == height
	require.ErrorIs(t, err, canvas.ErrOutOfRange)
}

// TestFill overwrites every pixel.
func TestFill(t *testing.T) {
	c, err := canvas.New(3, 3)
	require.NoError(t, err)

	c.Fill(geom.White)
	for _, p := range c.Pixels() {
		require.Equal(t, geom.White, p)
	}
}

// TestRender shades every pixel from its coordinates, concurrently.
func TestRender(t *testing.T) {
	c, err := canvas.New(8, 8)
	require.NoError(t, err)

	err = c.Render(context.Background(), func(x, y int) geom.Color {
		return geom.NewColor(float64(x), float64(y), 0)
	})
	require.NoError(t, err)

	got, err := c.At(3, 5)
	require.NoError(t, err)
	require.Equal(t, geom.NewColor(3, 5, 0), got) // coordinates encoded

	got, err = c.At(7, 0)
	require.NoError(t, err)
	require.Equal(t, geom.NewColor(7, 0, 0), got)
}

// TestRenderCanceled: a canceled context aborts the render.
func TestRenderCanceled(t *testing.T) {
	c, err := canvas.New(64, 64)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before rendering starts

	err = c.Render(ctx, func(x, y int) geom.Color { return geom.White })
	require.ErrorIs(t, err, context.Canceled)
}
