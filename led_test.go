// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestLED(t *testing.T) {
	pin := &gpiotest.Pin{N: "led"}
	l := NewLED(pin)
	if err := l.On(); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.High {
		t.Error("On() did not drive the pin high")
	}
	if err := l.Toggle(); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.Low {
		t.Error("Toggle() after On() did not drive the pin low")
	}
	if err := l.Halt(); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.Low {
		t.Error("Halt() did not leave the pin low")
	}
}

func TestLEDString(t *testing.T) {
	l := NewLED(&gpiotest.Pin{N: "led"})
	if len(l.String()) == 0 {
		t.Error("String() returned an empty string")
	}
}
