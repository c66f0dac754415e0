// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package picoed provides board support for the Elecfreaks Pico:ed, an
// RP2040 education board in the micro:bit form factor.
//
// The board carries a 17x7 LED matrix behind an IS31FL3731 driver on
// I²C1 (SDA GPIO18, SCL GPIO19), two front face buttons on GPIO20 and
// GPIO21, a status LED on GPIO25, a buzzer on GPIO0 and a 17 pin edge
// connector.
//
// Display renders text on the matrix, scrolling strings that do not fit,
// and exposes the full underlying is31fl3731.Dev for raw drawing. Button,
// LED and Buzzer wrap the discrete peripherals. The edge connector pin
// names P0-P16 resolve to host GPIOs through Pin.
//
// # Product page
//
// https://www.elecfreaks.com/elecfreaks-pico-ed.html
package picoed
