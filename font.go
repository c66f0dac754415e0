// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

// Offset is one lit cell within the nominal 5x7 glyph cell.
type Offset struct {
	X, Y int8
}

// font5x7 maps a character to the cells lit for it. The table covers
// A-Z, a-z, 0-9 and space; the compositor skips characters without an
// entry. Data only, consumed by Display.
var font5x7 = map[rune][]Offset{
	'A': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'B': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}},
	'C': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'D': {{0, 0}, {1, 0}, {2, 0}, {0, 1}, {3, 1}, {0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {3, 5}, {0, 6}, {1, 6}, {2, 6}},
	'E': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {0, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	'F': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {0, 4}, {0, 5}, {0, 6}},
	'G': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {0, 3}, {0, 4}, {3, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'H': {{0, 0}, {4, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'I': {{1, 0}, {2, 0}, {3, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}, {1, 6}, {2, 6}, {3, 6}},
	'J': {{2, 0}, {3, 0}, {4, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {0, 5}, {3, 5}, {1, 6}, {2, 6}},
	'K': {{0, 0}, {4, 0}, {0, 1}, {3, 1}, {0, 2}, {2, 2}, {0, 3}, {1, 3}, {0, 4}, {2, 4}, {0, 5}, {3, 5}, {0, 6}, {4, 6}},
	'L': {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	'M': {{0, 0}, {4, 0}, {0, 1}, {1, 1}, {3, 1}, {4, 1}, {0, 2}, {2, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'N': {{0, 0}, {4, 0}, {0, 1}, {4, 1}, {0, 2}, {1, 2}, {4, 2}, {0, 3}, {2, 3}, {4, 3}, {0, 4}, {3, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'O': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'P': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {0, 5}, {0, 6}},
	'Q': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {2, 4}, {4, 4}, {0, 5}, {3, 5}, {1, 6}, {2, 6}, {4, 6}},
	'R': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {2, 4}, {0, 5}, {3, 5}, {0, 6}, {4, 6}},
	'S': {{1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 3}, {4, 4}, {4, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}},
	'T': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}},
	'U': {{0, 0}, {4, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'V': {{0, 0}, {4, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {1, 5}, {3, 5}, {2, 6}},
	'W': {{0, 0}, {4, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {0, 3}, {2, 3}, {4, 3}, {0, 4}, {2, 4}, {4, 4}, {0, 5}, {1, 5}, {3, 5}, {4, 5}, {0, 6}, {4, 6}},
	'X': {{0, 0}, {4, 0}, {0, 1}, {4, 1}, {1, 2}, {3, 2}, {2, 3}, {1, 4}, {3, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'Y': {{0, 0}, {4, 0}, {0, 1}, {4, 1}, {1, 2}, {3, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}},
	'Z': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {4, 1}, {3, 2}, {2, 3}, {1, 4}, {0, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	'a': {{1, 2}, {2, 2}, {3, 2}, {4, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	'b': {{0, 0}, {0, 1}, {0, 2}, {2, 2}, {3, 2}, {0, 3}, {1, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}},
	'c': {{1, 2}, {2, 2}, {3, 2}, {0, 3}, {0, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'd': {{4, 0}, {4, 1}, {1, 2}, {2, 2}, {4, 2}, {0, 3}, {3, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	'e': {{1, 2}, {2, 2}, {3, 2}, {0, 3}, {4, 3}, {0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {0, 5}, {1, 6}, {2, 6}, {3, 6}},
	'f': {{2, 0}, {3, 0}, {1, 1}, {4, 1}, {1, 2}, {0, 3}, {1, 3}, {2, 3}, {1, 4}, {1, 5}, {1, 6}},
	'g': {{1, 2}, {2, 2}, {3, 2}, {4, 2}, {0, 3}, {4, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {4, 5}, {2, 6}, {3, 6}},
	'h': {{0, 0}, {0, 1}, {0, 2}, {2, 2}, {3, 2}, {0, 3}, {1, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'i': {{2, 0}, {1, 2}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {1, 6}, {2, 6}, {3, 6}},
	'j': {{3, 0}, {2, 2}, {3, 2}, {3, 3}, {3, 4}, {0, 5}, {3, 5}, {1, 6}, {2, 6}},
	'k': {{1, 0}, {1, 1}, {1, 2}, {4, 2}, {1, 3}, {3, 3}, {1, 4}, {2, 4}, {1, 5}, {3, 5}, {1, 6}, {4, 6}},
	'l': {{1, 0}, {2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {1, 6}, {2, 6}, {3, 6}},
	'm': {{0, 2}, {1, 2}, {3, 2}, {0, 3}, {2, 3}, {4, 3}, {0, 4}, {2, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'n': {{0, 2}, {2, 2}, {3, 2}, {0, 3}, {1, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {0, 6}, {4, 6}},
	'o': {{1, 2}, {2, 2}, {3, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'p': {{0, 2}, {1, 2}, {2, 2}, {3, 2}, {0, 3}, {4, 3}, {0, 4}, {1, 4}, {2, 4}, {3, 4}, {0, 5}, {0, 6}},
	'q': {{1, 2}, {2, 2}, {4, 2}, {0, 3}, {3, 3}, {4, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {4, 5}, {4, 6}},
	'r': {{0, 2}, {2, 2}, {3, 2}, {0, 3}, {1, 3}, {4, 3}, {0, 4}, {0, 5}, {0, 6}},
	's': {{1, 2}, {2, 2}, {3, 2}, {0, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}},
	't': {{1, 0}, {1, 1}, {0, 2}, {1, 2}, {2, 2}, {1, 3}, {1, 4}, {1, 5}, {4, 5}, {2, 6}, {3, 6}},
	'u': {{0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {0, 5}, {3, 5}, {4, 5}, {1, 6}, {2, 6}, {4, 6}},
	'v': {{0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {4, 4}, {1, 5}, {3, 5}, {2, 6}},
	'w': {{0, 2}, {4, 2}, {0, 3}, {4, 3}, {0, 4}, {2, 4}, {4, 4}, {0, 5}, {2, 5}, {4, 5}, {1, 6}, {3, 6}},
	'x': {{0, 2}, {4, 2}, {1, 3}, {3, 3}, {2, 4}, {1, 5}, {3, 5}, {0, 6}, {4, 6}},
	'y': {{0, 2}, {4, 2}, {0, 3}, {4, 3}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'z': {{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {3, 3}, {2, 4}, {1, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	' ': {},
	'0': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {3, 2}, {4, 2}, {0, 3}, {2, 3}, {4, 3}, {0, 4}, {1, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'1': {{2, 0}, {1, 1}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {1, 6}, {2, 6}, {3, 6}},
	'2': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {4, 2}, {3, 3}, {2, 4}, {1, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	'3': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {3, 1}, {2, 2}, {3, 3}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'4': {{3, 0}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {0, 3}, {3, 3}, {0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {3, 5}, {3, 6}},
	'5': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 3}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'6': {{2, 0}, {3, 0}, {1, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'7': {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {4, 1}, {3, 2}, {2, 3}, {1, 4}, {1, 5}, {1, 6}},
	'8': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {1, 3}, {2, 3}, {3, 3}, {0, 4}, {4, 4}, {0, 5}, {4, 5}, {1, 6}, {2, 6}, {3, 6}},
	'9': {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {4, 2}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {4, 4}, {3, 5}, {1, 6}, {2, 6}},
}

// Glyph returns the lit cell offsets for r, and whether the font covers
// it.
func Glyph(r rune) ([]Offset, bool) {
	g, ok := font5x7[r]
	return g, ok
}
