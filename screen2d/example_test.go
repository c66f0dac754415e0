// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d_test

import (
	"image"
	"image/color"
	"log"
	"time"

	"github.com/GermanBionicSystems/picoed/screen2d"
)

func Example() {
	// Emulate the Pico:ed matrix in the terminal.
	d := screen2d.New(&screen2d.Opts{W: 17, H: 7})
	defer d.Halt()

	img := image.NewNRGBA(d.Bounds())
	for i := 0; i < 17; i++ {
		img.SetNRGBA(i, 3, color.NRGBA{R: 255, G: 64, A: 255})
		if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
			log.Fatal(err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
