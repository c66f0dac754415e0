// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestBounds(t *testing.T) {
	d := New(&Opts{W: 17, H: 7})
	if got := d.Bounds(); got != image.Rect(0, 0, 17, 7) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 4, H: 2, Writer: &buf})
	img := image.NewNRGBA(d.Bounds())
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[") {
		t.Error("output carries no ANSI escape sequence")
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("output has %d rows, want 2", got)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 4, H: 2, Writer: &buf})
	if _, err := d.Write(make([]byte, 3*4*2)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("Write produced no output")
	}
	if _, err := d.Write(make([]byte, 5)); err == nil {
		t.Error("short pixel stream should be rejected")
	}
}

func TestHalt(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 4, H: 2, Writer: &buf})
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\033[0m") {
		t.Error("Halt did not reset terminal attributes")
	}
}
