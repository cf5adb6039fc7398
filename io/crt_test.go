package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrt_Reset(t *testing.T) {
	assert := assert.New(t)

	crt := &Crt{}
	crt.Reset()

	for row := range CRT_HEIGHT {
		for col := range CRT_WIDTH {
			assert.False(crt.Lit(row, col))
		}
	}

	dark := strings.Repeat(".", CRT_WIDTH)
	assert.Equal([]string{dark, dark, dark, dark, dark, dark}, crt.Rows())
}

func TestCrt_Sprite(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		cycle int
		x     int
		row   int
		col   int
		lit   bool
	}){
		{"left", 1, 1, 0, 0, true},
		{"center", 2, 1, 0, 1, true},
		{"right", 3, 1, 0, 2, true},
		{"past", 4, 1, 0, 3, false},
		{"before", 5, 6, 0, 4, false},
		{"negative", 1, -1, 0, 0, true},
		{"far negative", 1, -2, 0, 0, false},
		{"row 1", 41, 0, 1, 0, true},
		{"row 1 no wrap", 41, 39, 1, 0, false},
		{"last", 240, 39, 5, 39, true},
		{"last edge", 240, 40, 5, 39, true},
		{"last dark", 240, 37, 5, 39, false},
	}

	for _, entry := range table {
		crt := &Crt{}
		assert.NoError(crt.Observe(entry.cycle, entry.x), entry.name)
		assert.Equal(entry.lit, crt.Lit(entry.row, entry.col), entry.name)
	}
}

func TestCrt_NeverDarkens(t *testing.T) {
	assert := assert.New(t)

	crt := &Crt{}
	assert.NoError(crt.Observe(1, 0))
	assert.True(crt.Lit(0, 0))

	// Redrawing the same position with the sprite elsewhere keeps the pixel.
	assert.NoError(crt.Observe(1, 30))
	assert.True(crt.Lit(0, 0))

	crt.Reset()
	assert.False(crt.Lit(0, 0))
}

func TestCrt_Overscan(t *testing.T) {
	assert := assert.New(t)

	crt := &Crt{}
	assert.NoError(crt.Observe(0, 0))
	assert.NoError(crt.Observe(241, 0))
	assert.NoError(crt.Observe(1000, 0))
	assert.Equal(3, crt.Overscan)
	assert.Equal(strings.Repeat(strings.Repeat(".", CRT_WIDTH)+"\n", CRT_HEIGHT), crt.String())

	crt.Reset()
	assert.Equal(0, crt.Overscan)
}

func TestCrt_Lit_OffScreen(t *testing.T) {
	assert := assert.New(t)

	crt := &Crt{}
	crt.Pixels[0][0] = true
	assert.False(crt.Lit(-1, 0))
	assert.False(crt.Lit(0, -1))
	assert.False(crt.Lit(CRT_HEIGHT, 0))
	assert.False(crt.Lit(0, CRT_WIDTH))
}

func TestCrt_Render(t *testing.T) {
	assert := assert.New(t)

	crt := &Crt{}
	for cycle := 1; cycle <= CRT_PIXELS; cycle++ {
		// Sprite tracks the beam, so every pixel is lit.
		assert.NoError(crt.Observe(cycle, (cycle-1)%CRT_WIDTH))
	}

	buf := &bytes.Buffer{}
	assert.NoError(crt.Render(buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(CRT_HEIGHT, len(lines))
	for _, line := range lines {
		assert.Equal(strings.Repeat("#", CRT_WIDTH), line)
	}
}
