// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// LED is a simple on/off status LED.
type LED struct {
	pin gpio.PinOut
	on  bool
}

// NewLED returns an LED on the given pin.
func NewLED(pin gpio.PinOut) *LED {
	return &LED{pin: pin}
}

// StatusLED returns the board's status LED.
func StatusLED() (*LED, error) {
	p := gpioreg.ByName(statusLEDPin)
	if p == nil {
		return nil, fmt.Errorf("picoed: no GPIO named %q", statusLEDPin)
	}
	return NewLED(p), nil
}

// On turns the LED on.
func (l *LED) On() error {
	return l.Set(true)
}

// Off turns the LED off.
func (l *LED) Off() error {
	return l.Set(false)
}

// Set drives the LED to the given state.
func (l *LED) Set(on bool) error {
	if err := l.pin.Out(gpio.Level(on)); err != nil {
		return err
	}
	l.on = on
	return nil
}

// Toggle inverts the LED state as last driven through this wrapper.
func (l *LED) Toggle() error {
	return l.Set(!l.on)
}

// Halt implements conn.Resource. It turns the LED off.
func (l *LED) Halt() error {
	return l.Off()
}

func (l *LED) String() string {
	return fmt.Sprintf("picoed.LED{%s}", l.pin)
}
