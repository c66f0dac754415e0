// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// pwmPin records the drive sequence applied to it.
type pwmPin struct {
	ops []string
}

func (p *pwmPin) String() string   { return "pwm" }
func (p *pwmPin) Name() string     { return "pwm" }
func (p *pwmPin) Number() int      { return -1 }
func (p *pwmPin) Function() string { return "PWM" }

func (p *pwmPin) Halt() error {
	p.ops = append(p.ops, "halt")
	return nil
}

func (p *pwmPin) Out(l gpio.Level) error {
	p.ops = append(p.ops, fmt.Sprintf("out %s", l))
	return nil
}

func (p *pwmPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	p.ops = append(p.ops, fmt.Sprintf("pwm %s", f))
	return nil
}

func TestBuzzerPlay(t *testing.T) {
	pin := &pwmPin{}
	z := NewBuzzer(pin)
	z.NoteLength = 0
	z.NoteGap = 0

	if err := z.Play("15-"); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"pwm 262Hz",
		"out Low",
		"pwm 392Hz",
		"out Low",
		// Rest: unpowered for the whole note.
		"out Low",
		"out Low",
		"halt",
	}
	if diff := cmp.Diff(pin.ops, want); diff != "" {
		t.Errorf("drive sequence difference (-got +want):\n%s", diff)
	}
}

func TestBuzzerUnknownNote(t *testing.T) {
	pin := &pwmPin{}
	z := NewBuzzer(pin)
	z.NoteLength = 0
	z.NoteGap = 0

	err := z.Play("12x")
	if !errors.Is(err, ErrUnknownNote) {
		t.Fatalf("Play(\"12x\") = %v, want ErrUnknownNote", err)
	}
	// Playback stops at the bad note, after two good ones.
	if len(pin.ops) != 4 {
		t.Errorf("played %d operations before failing, want 4", len(pin.ops))
	}
}

var _ gpio.PinOut = &pwmPin{}
