// SPDX-License-Identifier: MIT

package canvas

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ppmMagic is the token identifying a plain-text (ASCII) PPM file.
const ppmMagic = "P3"

// ppmMaxChannel is the maximum channel value declared in the header.
const ppmMaxChannel = 255

// EncodePPM writes the canvas as a plain-text PPM image: the three-line
// header (magic token, "width height", maximum channel value) followed
// by one "r g b" line per pixel in row-major order.
// Complexity: O(width·height).
func (c *Canvas) EncodePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", ppmMagic, c.width, c.height, ppmMaxChannel); err != nil {
		return fmt.Errorf("canvas: encode header: %w", err)
	}
	for _, p := range c.pixels {
		if _, err := fmt.Fprintln(bw, p); err != nil {
			return fmt.Errorf("canvas: encode pixel: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile encodes the canvas as PPM into the file at path, creating
// or truncating it.
func (c *Canvas) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: write file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("canvas: write file: %w", cerr)
		}
	}()

	return c.EncodePPM(f)
}
