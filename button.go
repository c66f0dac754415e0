// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Button is one of the two front face switches. The line idles high and
// reads low while held down.
type Button struct {
	// Settle is the confirmation delay of the two-sample debounce. A
	// press only counts if the line is still low after this long.
	Settle time.Duration

	pin gpio.PinIn
}

// NewButton returns a debounced button on the given pin, configured with
// the internal pull-up.
func NewButton(pin gpio.PinIn) (*Button, error) {
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("picoed: %w", err)
	}
	return &Button{Settle: 130 * time.Millisecond, pin: pin}, nil
}

// ButtonA returns the board's A button.
func ButtonA() (*Button, error) {
	return buttonByName(buttonAPin)
}

// ButtonB returns the board's B button.
func ButtonB() (*Button, error) {
	return buttonByName(buttonBPin)
}

func buttonByName(name string) (*Button, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("picoed: no GPIO named %q", name)
	}
	return NewButton(p)
}

// Pressed samples the button, blocking for the settle delay when the
// first sample reads low.
func (b *Button) Pressed() bool {
	if b.pin.Read() != gpio.Low {
		return false
	}
	time.Sleep(b.Settle)
	return b.pin.Read() == gpio.Low
}

func (b *Button) String() string {
	return fmt.Sprintf("picoed.Button{%s}", b.pin)
}
