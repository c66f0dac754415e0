// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// On-board peripherals and their RP2040 GPIOs.
const (
	buzzerPin    = "GPIO0"
	i2cSDAPin    = "GPIO18"
	i2cSCLPin    = "GPIO19"
	buttonAPin   = "GPIO20"
	buttonBPin   = "GPIO21"
	statusLEDPin = "GPIO25"
)

// edgePins maps the micro:bit style edge connector names to the RP2040
// GPIOs they are routed to. The numbering is not contiguous: P0-P3 sit
// on the ADC capable GPIO26-GPIO29, the rest follows the GPIO number.
var edgePins = map[string]string{
	"P0":  "GPIO26",
	"P1":  "GPIO27",
	"P2":  "GPIO28",
	"P3":  "GPIO29",
	"P4":  "GPIO4",
	"P5":  "GPIO5",
	"P6":  "GPIO6",
	"P7":  "GPIO7",
	"P8":  "GPIO8",
	"P9":  "GPIO9",
	"P10": "GPIO10",
	"P11": "GPIO11",
	"P12": "GPIO12",
	"P13": "GPIO13",
	"P14": "GPIO14",
	"P15": "GPIO15",
	"P16": "GPIO16",
}

// PinName returns the host GPIO name behind an edge connector pin name,
// or the empty string if the name is unknown.
func PinName(name string) string {
	return edgePins[name]
}

// Pin returns the GPIO routed to the named edge connector pin. It
// returns nil if the name is unknown or the host exposes no such GPIO.
func Pin(name string) gpio.PinIO {
	gpioName, ok := edgePins[name]
	if !ok {
		return nil
	}
	return gpioreg.ByName(gpioName)
}
