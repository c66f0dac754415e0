// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package picoed

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
)

// ErrUnknownNote is returned by Buzzer.Play for melody characters
// outside the numbered scale.
var ErrUnknownNote = errors.New("picoed: unknown note")

// noteFrequencies maps the numbered musical notation to pitch: '1'
// through '7' are C4 to B4, '-' is a rest.
var noteFrequencies = map[rune]physic.Frequency{
	'1': 262 * physic.Hertz,
	'2': 294 * physic.Hertz,
	'3': 330 * physic.Hertz,
	'4': 349 * physic.Hertz,
	'5': 392 * physic.Hertz,
	'6': 440 * physic.Hertz,
	'7': 494 * physic.Hertz,
	'-': 0,
}

// Buzzer plays tone sequences on a PWM capable pin.
type Buzzer struct {
	// NoteLength is how long each note sounds, NoteGap the silence
	// between consecutive notes.
	NoteLength time.Duration
	NoteGap    time.Duration

	pin gpio.PinOut
}

// NewBuzzer returns a buzzer on the given pin.
func NewBuzzer(pin gpio.PinOut) *Buzzer {
	return &Buzzer{
		NoteLength: 400 * time.Millisecond,
		NoteGap:    100 * time.Millisecond,
		pin:        pin,
	}
}

// BoardBuzzer returns the board's buzzer.
func BoardBuzzer() (*Buzzer, error) {
	p := gpioreg.ByName(buzzerPin)
	if p == nil {
		return nil, fmt.Errorf("picoed: no GPIO named %q", buzzerPin)
	}
	return NewBuzzer(p), nil
}

// Play sounds melody note by note, blocking until it finished. Each
// melody character is a numbered scale step '1'-'7' or a '-' rest; any
// other character stops playback with ErrUnknownNote.
func (z *Buzzer) Play(melody string) error {
	for _, note := range melody {
		f, ok := noteFrequencies[note]
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownNote, note)
		}
		if f == 0 {
			// Rest: keep the pin unpowered for the length of the note.
			if err := z.pin.Out(gpio.Low); err != nil {
				return fmt.Errorf("picoed: %w", err)
			}
		} else {
			if err := z.pin.PWM(gpio.DutyHalf, f); err != nil {
				return fmt.Errorf("picoed: %w", err)
			}
		}
		time.Sleep(z.NoteLength)
		if err := z.pin.Out(gpio.Low); err != nil {
			return fmt.Errorf("picoed: %w", err)
		}
		time.Sleep(z.NoteGap)
	}
	return z.Halt()
}

// Halt implements conn.Resource. It silences the buzzer.
func (z *Buzzer) Halt() error {
	return z.pin.Halt()
}

func (z *Buzzer) String() string {
	return fmt.Sprintf("picoed.Buzzer{%s}", z.pin)
}
