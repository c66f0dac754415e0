// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed_test

import (
	"image"
	"log"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GermanBionicSystems/picoed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// The matrix lives on I²C1; the registry default works on hosts with
	// a single bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	display, err := picoed.NewDisplay(b, nil)
	if err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}
	defer display.Halt()

	led, err := picoed.StatusLED()
	if err != nil {
		log.Fatal(err)
	}
	buttonA, err := picoed.ButtonA()
	if err != nil {
		log.Fatal(err)
	}

	// Greet, then echo button presses on the status LED.
	if err := display.Show("Hello"); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if err := led.Set(buttonA.Pressed()); err != nil {
			log.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func Example_buzzer() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	buzzer, err := picoed.BoardBuzzer()
	if err != nil {
		log.Fatal(err)
	}
	// Ode to Joy, numbered notation.
	if err := buzzer.Play("3345-5432-1123-322-"); err != nil {
		log.Fatal(err)
	}
}

func Example_freetype() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	display, err := picoed.NewDisplay(b, nil)
	if err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	// Rasterize a vector font into the 17x7 panel. Antialiased coverage
	// maps straight onto the PWM intensity of each LED.
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	bounds := display.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 8}))
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored("Go", float64(bounds.Dx())/2, float64(bounds.Dy())/2, 0.5, 0.5)

	if err := display.Draw(bounds, dc.Image(), image.Point{}); err != nil {
		log.Fatal(err)
	}
	time.Sleep(2 * time.Second)
}
