// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3731_test

import (
	"image"
	"log"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/GermanBionicSystems/picoed/is31fl3731"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := is31fl3731.NewI2C(b, &is31fl3731.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	// Draw a one character banner with a stock bitmap face. Anything
	// wider than the panel is clipped by Draw.
	img := image.NewGray(dev.Bounds())
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, img.Bounds().Dy()),
	}
	drawer.DrawString("K")
	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
	time.Sleep(2 * time.Second)

	if err := dev.Halt(); err != nil {
		log.Fatal(err)
	}
}

func Example_autoplay() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := is31fl3731.NewI2C(b, nil)
	if err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	// Paint a moving dot into the first four frames and let the device
	// cycle through them on its own.
	for frame := 0; frame < 4; frame++ {
		if err := dev.SetPixel(frame, 2*frame, 3, 60); err != nil {
			log.Fatal(err)
		}
	}
	if err := dev.Autoplay(110*time.Millisecond, 0, 4); err != nil {
		log.Fatal(err)
	}
	time.Sleep(5 * time.Second)

	// A zero delay is the documented way back to picture mode.
	if err := dev.Autoplay(0, 0, 0); err != nil {
		log.Fatal(err)
	}
}
