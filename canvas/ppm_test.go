// Package canvas_test: PPM encoding.
package canvas_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raynum/canvas"
	"github.com/katalvlaran/raynum/geom"
)

// TestEncodePPMHeader verifies the fixed three-line header.
func TestEncodePPMHeader(t *testing.T) {
	c, err := canvas.New(5, 3)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, c.EncodePPM(&sb))

	lines := strings.Split(sb.String(), "\n")
	require.Equal(t, "P3", lines[0])  // magic token
	require.Equal(t, "5 3", lines[1]) // width height
	require.Equal(t, "255", lines[2]) // maximum channel value
}

// TestEncodePPMPixels checks the full byte-for-byte output of a tiny
// canvas: one pixel line of three space-separated integers per pixel,
// row-major.
func TestEncodePPMPixels(t *testing.T) {
	c, err := canvas.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, c.Set(0, 0, geom.White))
	require.NoError(t, c.Set(1, 1, geom.NewColor(0.5, 0, 1)))

	var sb strings.Builder
	require.NoError(t, c.EncodePPM(&sb))

	want := "P3\n" +
		"2 2\n" +
		"255\n" +
		"255 255 255\n" +
		"0 0 0\n" +
		"0 0 0\n" +
		"127 0 255\n"
	require.Equal(t, want, sb.String())
}

// TestWriteFile writes and re-reads a PPM from disk.
func TestWriteFile(t *testing.T) {
	c, err := canvas.NewWithColor(1, 1, geom.White)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.ppm")
	require.NoError(t, c.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "P3\n1 1\n255\n255 255 255\n", string(data))
}
