package io

import (
	"io"
	"strings"
)

const (
	CRT_WIDTH    = 40                     // Pixels per row.
	CRT_HEIGHT   = 6                      // Rows per frame.
	CRT_PIXELS   = CRT_WIDTH * CRT_HEIGHT // Pixels per frame.
	SPRITE_WIDTH = 3                      // Width of the sprite, centered on X.
	PIXEL_LIT    = '#'                    // Rendering of a lit pixel.
	PIXEL_DARK   = '.'                    // Rendering of a dark pixel.
)

// Crt is a single frame CRT framebuffer. The beam draws one pixel per cycle,
// left to right and top to bottom. A pixel is lit if any column of the sprite
// covers it while it is drawn.
type Crt struct {
	Pixels   [CRT_HEIGHT][CRT_WIDTH]bool // Framebuffer, by row then column.
	Overscan int                         // Cycles drawn past the end of the frame.
}

var _ Probe = (*Crt)(nil)

// Reset darkens all pixels.
func (crt *Crt) Reset() {
	crt.Pixels = [CRT_HEIGHT][CRT_WIDTH]bool{}
	crt.Overscan = 0
}

// Observe draws the pixel at position cycle-1.
func (crt *Crt) Observe(cycle int, x int) (err error) {
	pos := cycle - 1
	if pos < 0 || pos >= CRT_PIXELS {
		crt.Overscan++
		return
	}

	row := pos / CRT_WIDTH
	col := pos % CRT_WIDTH

	dist := x - col
	if dist < 0 {
		dist = -dist
	}
	if dist <= SPRITE_WIDTH/2 {
		crt.Pixels[row][col] = true
	}

	return
}

// Lit returns the state of a single pixel. Off-screen pixels are dark.
func (crt *Crt) Lit(row int, col int) bool {
	if row < 0 || row >= CRT_HEIGHT || col < 0 || col >= CRT_WIDTH {
		return false
	}
	return crt.Pixels[row][col]
}

// Rows returns the frame as text, one string per row.
func (crt *Crt) Rows() (rows []string) {
	rows = make([]string, 0, CRT_HEIGHT)
	for _, pixels := range crt.Pixels {
		var sb strings.Builder
		sb.Grow(CRT_WIDTH)
		for _, lit := range pixels {
			if lit {
				sb.WriteByte(PIXEL_LIT)
			} else {
				sb.WriteByte(PIXEL_DARK)
			}
		}
		rows = append(rows, sb.String())
	}
	return
}

// String returns the frame as newline terminated rows.
func (crt *Crt) String() string {
	return strings.Join(crt.Rows(), "\n") + "\n"
}

// Render writes the frame to an output.
func (crt *Crt) Render(out io.Writer) (err error) {
	_, err = io.WriteString(out, crt.String())
	return
}
