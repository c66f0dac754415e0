// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

import (
	"time"

	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/picoed/is31fl3731"
)

const (
	// glyphAdvance is the column stride per character: a 5 cell glyph
	// plus one blank separator column.
	glyphAdvance = 6

	staticIntensity = 10
	scrollIntensity = 20
)

// DefaultDisplayOpts is the recommended default options.
var DefaultDisplayOpts = DisplayOpts{
	ScrollInterval: 50 * time.Millisecond,
}

// DisplayOpts defines the options for the board display.
type DisplayOpts struct {
	// ScrollInterval is the pause between two scroll positions. Zero
	// selects the default.
	ScrollInterval time.Duration
	// Matrix overrides the I²C options of the matrix driver.
	Matrix *is31fl3731.Opts
}

// Display is the board's LED matrix with a 5x7 text compositor on top.
// The embedded is31fl3731.Dev is fully usable for raw drawing.
type Display struct {
	*is31fl3731.Dev
	interval time.Duration
}

// NewDisplay returns the board display on the provided bus, reset and
// blanked.
func NewDisplay(bus i2c.Bus, opts *DisplayOpts) (*Display, error) {
	if opts == nil {
		opts = &DefaultDisplayOpts
	}
	dev, err := is31fl3731.NewI2C(bus, opts.Matrix)
	if err != nil {
		return nil, err
	}
	interval := opts.ScrollInterval
	if interval == 0 {
		interval = DefaultDisplayOpts.ScrollInterval
	}
	return &Display{Dev: dev, interval: interval}, nil
}

// Show renders text on the matrix. Strings of up to 3 characters are
// drawn once, statically. Longer strings scroll left through the panel,
// one column at a time, blocking until the animation ran to completion.
// The device must not be driven from another goroutine while a scroll is
// in progress. Characters without a glyph render blank.
func (d *Display) Show(text string) error {
	if err := d.Fill(is31fl3731.ActiveFrame, 0); err != nil {
		return err
	}
	chars := []rune(text)
	if len(chars) < 4 {
		return d.drawStatic(chars)
	}
	return d.scroll(chars)
}

func (d *Display) drawStatic(chars []rune) error {
	for i, r := range chars {
		for _, o := range font5x7[r] {
			if err := d.SetPixel(is31fl3731.ActiveFrame, int(o.X)+i*glyphAdvance, int(o.Y), staticIntensity); err != nil {
				return err
			}
		}
	}
	return nil
}

// scroll repaints the frame at decreasing horizontal offsets. For n
// characters that is 6n+1 paints, the last one fully off screen so the
// text exits the panel instead of vanishing.
func (d *Display) scroll(chars []rune) error {
	total := glyphAdvance * len(chars)
	for shift := 0; shift >= -total; shift-- {
		if err := d.Fill(is31fl3731.ActiveFrame, 0); err != nil {
			return err
		}
		for i, r := range chars {
			col := i*glyphAdvance + shift
			for _, o := range font5x7[r] {
				if int(o.X)+col < 0 {
					// Already scrolled out on the left. The right edge
					// is clipped by SetPixel.
					continue
				}
				if err := d.SetPixel(is31fl3731.ActiveFrame, int(o.X)+col, int(o.Y), scrollIntensity); err != nil {
					return err
				}
			}
		}
		time.Sleep(d.interval)
	}
	return nil
}

// Clear blanks the active frame.
func (d *Display) Clear() error {
	return d.Fill(is31fl3731.ActiveFrame, 0)
}
