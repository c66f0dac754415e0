// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package is31fl3731 controls a charlieplexed LED matrix via the Lumissil
// IS31FL3731 matrix driver over I²C.
//
// The device holds eight independent frames, each with a 144 byte PWM
// intensity plane and a 144 bit blink plane. All registers live in
// hardware-selected banks: eight frame banks plus one configuration bank,
// and the bank select register must be written before every access. The
// driver never caches the selected bank, so each logical operation is safe
// against external device resets.
//
// Beyond the static picture mode, the chip can step through frames on its
// own (autoplay) and modulate display intensity from a microphone input
// (audio play). In every case a zero parameter is the documented way to
// cancel back to picture mode.
//
// The 17x7 logical layout matches the Elecfreaks Pico:ed and the Pimoroni
// Scroll pHAT HD: the panel is wired as two mirrored quadrants split at
// column 8, which is why the pixel address translation is not a plain
// row-major formula.
//
// # Datasheet
//
// https://www.lumissil.com/assets/pdf/core/IS31FL3731_DS.pdf
package is31fl3731
