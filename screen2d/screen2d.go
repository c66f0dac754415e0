// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a 2D display.Drawer that outputs to
// terminal (stdout) using ANSI color codes.
//
// Useful to preview matrix animations while the board with the real
// panel is still in the mail, and as a development stand-in for the LED
// matrix in demos.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	W, H    int
	Palette *ansi256.Palette
	// Writer overrides the output destination; the colorable stdout is
	// used when nil.
	Writer io.Writer

	_ struct{}
}

// Dev is a 2D LED matrix emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	palette ansi256.Palette

	pixels []byte
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		width:   opts.W,
		height:  opts.H,
		palette: *p,
		pixels:  make([]byte, 3*opts.W*opts.H),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.width, d.height)
}

// Halt implements conn.Resource.
//
// It moves the cursor below the frame and resets the attributes so the
// terminal is not corrupted.
func (d *Dev) Halt() error {
	_, err := fmt.Fprintf(d.w, "\033[%dB\033[0m\n", d.height)
	return err
}

// Write accepts a stream of raw RGB pixels, row major, and writes it to
// the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.pixels) {
		return 0, errors.New("invalid RGB stream length")
	}
	copy(d.pixels, pixels)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			r16, g16, b16, _ := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y).RGBA()
			i := 3 * (y*d.width + x)
			d.pixels[i] = byte(r16 >> 8)
			d.pixels[i+1] = byte(g16 >> 8)
			d.pixels[i+2] = byte(b16 >> 8)
		}
	}
	_, err := d.refresh()
	return err
}

func (d *Dev) refresh() (int, error) {
	// This code is designed to minimize the amount of memory allocated
	// per call. After the frame is printed the cursor moves back to its
	// origin, so consecutive frames animate in place.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			i := 3 * (y*d.width + x)
			c := color.NRGBA{d.pixels[i], d.pixels[i+1], d.pixels[i+2], 255}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[%dA\r", d.height)
	_, err := d.buf.WriteTo(d.w)
	return len(d.pixels), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
