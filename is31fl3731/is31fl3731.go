// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package is31fl3731

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Logical size of the matrix. 119 of the 144 plane cells are wired to
// LEDs; the rest is padding inherent to the two 8x16 addressing blocks.
const (
	Width  = 17
	Height = 7
)

const (
	_MODE_REGISTER      byte = 0x00
	_FRAME_REGISTER     byte = 0x01
	_AUTOPLAY1_REGISTER byte = 0x02
	_AUTOPLAY2_REGISTER byte = 0x03
	_BLINK_REGISTER     byte = 0x05
	_AUDIOSYNC_REGISTER byte = 0x06
	_BREATH1_REGISTER   byte = 0x08
	_BREATH2_REGISTER   byte = 0x09
	_SHUTDOWN_REGISTER  byte = 0x0a
	_GAIN_REGISTER      byte = 0x0b
	_ADC_REGISTER       byte = 0x0c

	_CONFIG_BANK  byte = 0x0b
	_BANK_ADDRESS byte = 0xfd

	_PICTURE_MODE   byte = 0x00
	_AUTOPLAY_MODE  byte = 0x08
	_AUDIOPLAY_MODE byte = 0x18

	// Register offsets within each frame bank.
	_ENABLE_OFFSET byte = 0x00
	_BLINK_OFFSET  byte = 0x12
	_COLOR_OFFSET  byte = 0x24
)

// frameSize is the byte length of one intensity plane.
const frameSize = 144

// ActiveFrame can be passed wherever a frame index is expected to address
// the frame currently selected by SetFrame.
const ActiveFrame = -1

// RangeError is returned when a caller-supplied parameter falls outside
// its documented bounds. The rejected operation performs no register
// write, so the device is never left half-configured.
type RangeError struct {
	Param    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("is31fl3731: %s %d out of range [%d, %d]", e.Param, e.Value, e.Min, e.Max)
}

// SizeError is returned when a bulk payload exceeds the 144 byte
// intensity plane of a frame.
type SizeError struct {
	Len int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("is31fl3731: payload of %d bytes exceeds frame capacity of %d", e.Len, frameSize)
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("is31fl3731: %w", err)
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{Addr: 0x74}

// Opts defines the options for the device.
type Opts struct {
	// Addr is the I²C address. AD connected to ground is 0x74, the
	// default on Pico:ed and Scroll pHAT HD boards.
	Addr uint16
}

// NewI2C returns a Dev that drives an IS31FL3731 on the provided bus.
//
// The device is reset and initialized: picture mode, frame 0 active, all
// eight frames blanked with every LED column enabled, audio sync off.
func NewI2C(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	d := &Dev{d: &i2c.Dev{Bus: bus, Addr: addr}}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	if err := d.initialize(); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is an open handle to an IS31FL3731 matrix driver.
//
// All exported methods are safe for concurrent use; a single lock
// serializes whole logical operations so that the bank selection side
// effect of one operation is never visible to another mid-flight.
type Dev struct {
	d *i2c.Dev

	mu    sync.Mutex
	frame byte
}

func (d *Dev) String() string {
	return fmt.Sprintf("is31fl3731.Dev{%s}", d.d)
}

// Reset power cycles the display logic: shutdown is asserted, held for a
// short delay and deasserted. Register state is undefined afterwards
// until the initialization sequence runs, which NewI2C does.
func (d *Dev) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.sleep(true); err != nil {
		return wrap(err)
	}
	time.Sleep(10 * time.Microsecond)
	return wrap(d.sleep(false))
}

// Sleep toggles the software shutdown bit. The display turns off but all
// register contents are retained. It does not change the display mode
// and is idempotent.
func (d *Dev) Sleep(enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return wrap(d.sleep(enabled))
}

// Halt implements conn.Resource. It puts the device in shutdown.
func (d *Dev) Halt() error {
	return d.Sleep(true)
}

// SetFrame selects the active frame. When show is true the frame is also
// displayed immediately (picture mode); otherwise it only becomes the
// drawing target and the frame encoded in a later Autoplay call.
func (d *Dev) SetFrame(frame int, show bool) error {
	if frame < 0 || frame > 7 {
		return &RangeError{Param: "frame", Value: frame, Min: 0, Max: 7}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = byte(frame)
	if !show {
		return nil
	}
	return wrap(d.writeRegister(_CONFIG_BANK, _FRAME_REGISTER, byte(frame)))
}

// Frame returns the active frame index.
func (d *Dev) Frame() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int(d.frame)
}

// AudioSync enables or disables synchronization of the display with the
// audio input signal.
func (d *Dev) AudioSync(enabled bool) error {
	v := byte(0)
	if enabled {
		v = 1
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return wrap(d.writeRegister(_CONFIG_BANK, _AUDIOSYNC_REGISTER, v))
}

// Autoplay makes the device cycle through frames on its own, starting at
// the active frame. delay is the time per frame, in 11ms hardware units
// after truncation; the scaled value must lie in [1, 64]. loops is the
// number of repetitions and frames the number of frames to play, both in
// [0, 7] where 0 means "all".
//
// A zero delay cancels autoplay and returns to picture mode.
func (d *Dev) Autoplay(delay time.Duration, loops, frames int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if delay == 0 {
		return wrap(d.setMode(_PICTURE_MODE))
	}
	scaled := int(delay / (11 * time.Millisecond))
	if loops < 0 || loops > 7 {
		return &RangeError{Param: "loops", Value: loops, Min: 0, Max: 7}
	}
	if frames < 0 || frames > 7 {
		return &RangeError{Param: "frames", Value: frames, Min: 0, Max: 7}
	}
	if scaled < 1 || scaled > 64 {
		return &RangeError{Param: "delay", Value: scaled, Min: 1, Max: 64}
	}
	if err := d.writeRegister(_CONFIG_BANK, _AUTOPLAY1_REGISTER, byte(loops<<4|frames)); err != nil {
		return wrap(err)
	}
	if err := d.writeRegister(_CONFIG_BANK, _AUTOPLAY2_REGISTER, byte(scaled%64)); err != nil {
		return wrap(err)
	}
	// The mode switch is last: the hardware latches the parameters only
	// once the mode register enters autoplay.
	return wrap(d.setMode(_AUTOPLAY_MODE | d.frame))
}

// AudioPlay puts the device in audio play mode, modulating the display
// from the microphone input. rate is the ADC sample rate in 46Hz units
// after truncation, with the scaled value in [1, 256]. gain is the audio
// gain in dB, in 3dB hardware steps scaled to [0, 7].
//
// A zero rate cancels audio play and returns to picture mode.
func (d *Dev) AudioPlay(rate physic.Frequency, gain int, agcEnable, agcFast bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if rate == 0 {
		return wrap(d.setMode(_PICTURE_MODE))
	}
	scaled := int(rate / (46 * physic.Hertz))
	if scaled < 1 || scaled > 256 {
		return &RangeError{Param: "sample rate", Value: scaled, Min: 1, Max: 256}
	}
	g := gain / 3
	if g < 0 || g > 7 {
		return &RangeError{Param: "audio gain", Value: g, Min: 0, Max: 7}
	}
	if err := d.writeRegister(_CONFIG_BANK, _ADC_REGISTER, byte(scaled%256)); err != nil {
		return wrap(err)
	}
	v := byte(g)
	if agcEnable {
		v |= 1 << 3
	}
	if agcFast {
		v |= 1 << 4
	}
	if err := d.writeRegister(_CONFIG_BANK, _GAIN_REGISTER, v); err != nil {
		return wrap(err)
	}
	return wrap(d.setMode(_AUDIOPLAY_MODE))
}

// Fade configures the breathing effect: intensity ramps up over fadeIn,
// down over fadeOut, and stays dark for pause between cycles. Each
// duration is encoded as log2(d/26ms) which must land in [0, 7], so only
// powers of two of 26ms are represented exactly. A zero fadeIn or
// fadeOut is mirrored from the other; both zero disables the effect.
func (d *Dev) Fade(fadeIn, fadeOut, pause time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fadeIn == 0 && fadeOut == 0 {
		return wrap(d.writeRegister(_CONFIG_BANK, _BREATH2_REGISTER, 0))
	}
	if fadeIn == 0 {
		fadeIn = fadeOut
	}
	if fadeOut == 0 {
		fadeOut = fadeIn
	}
	in, err := breathScale("fade in", fadeIn)
	if err != nil {
		return err
	}
	out, err := breathScale("fade out", fadeOut)
	if err != nil {
		return err
	}
	p, err := breathScale("pause", pause)
	if err != nil {
		return err
	}
	if err := d.writeRegister(_CONFIG_BANK, _BREATH1_REGISTER, out<<4|in); err != nil {
		return wrap(err)
	}
	return wrap(d.writeRegister(_CONFIG_BANK, _BREATH2_REGISTER, 1<<4|p))
}

// breathScale encodes a breathing duration into the 3 bit exponent the
// chip expects.
func breathScale(param string, dur time.Duration) (byte, error) {
	v := -1
	if dur > 0 {
		v = int(math.Log2(float64(dur) / float64(26*time.Millisecond)))
	}
	if v < 0 || v > 7 {
		return 0, &RangeError{Param: param, Value: v, Min: 0, Max: 7}
	}
	return byte(v), nil
}

// SetBlinkRate sets the period of the global blink effect for cells with
// their blink flag set, in 270ms hardware units. A zero period disables
// blinking and leaves the display mode unchanged.
func (d *Dev) SetBlinkRate(period time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if period == 0 {
		return wrap(d.writeRegister(_CONFIG_BANK, _BLINK_REGISTER, 0))
	}
	scaled := byte(period/(270*time.Millisecond)) & 0x07
	return wrap(d.writeRegister(_CONFIG_BANK, _BLINK_REGISTER, scaled|0x08))
}

// BlinkRate reads back the configured blink period. It returns 0 when
// blinking is disabled.
func (d *Dev) BlinkRate() (time.Duration, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readRegister(_CONFIG_BANK, _BLINK_REGISTER)
	if err != nil {
		return 0, wrap(err)
	}
	return time.Duration(v&0x07) * 270 * time.Millisecond, nil
}

// Fill overwrites the whole intensity plane of a frame with color. The
// plane is written as six 24 byte bursts. frame may be ActiveFrame.
func (d *Dev) Fill(frame, color int) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	if color < 0 || color > 255 {
		return &RangeError{Param: "color", Value: color, Min: 0, Max: 255}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return wrap(d.fill(d.resolve(frame), byte(color)))
}

// FillBlink sets or clears the blink flag of every cell of a frame.
func (d *Dev) FillBlink(frame int, on bool) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return wrap(d.fillBlink(d.resolve(frame), on))
}

// WriteFrame bulk-writes pixels into a frame's intensity plane, starting
// at cell 0. Payloads larger than the 144 byte plane are rejected with
// SizeError. Note the cells follow the hardware plane layout, not the
// logical (x, y) space; use PixelAddr to build such a payload.
func (d *Dev) WriteFrame(frame int, pixels []byte) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	if len(pixels) > frameSize {
		return &SizeError{Len: len(pixels)}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.selectBank(d.resolve(frame)); err != nil {
		return wrap(err)
	}
	w := make([]byte, len(pixels)+1)
	w[0] = _COLOR_OFFSET
	copy(w[1:], pixels)
	return wrap(d.d.Tx(w, nil))
}

// SetPixel sets the intensity of the cell at the logical coordinate
// (x, y). Coordinates off the matrix are silently ignored, so callers
// doing arithmetic-derived layout (scrolling text for example) need not
// pre-clip. An invalid color is still rejected with RangeError.
func (d *Dev) SetPixel(frame, x, y, color int) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return nil
	}
	if color < 0 || color > 255 {
		return &RangeError{Param: "color", Value: color, Min: 0, Max: 255}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return wrap(d.writeRegister(d.resolve(frame), _COLOR_OFFSET+PixelAddr(x, y), byte(color)))
}

// Pixel reads back the intensity of the cell at (x, y). Coordinates off
// the matrix read as 0, mirroring the tolerant SetPixel policy.
func (d *Dev) Pixel(frame, x, y int) (int, error) {
	if err := checkFrame(frame); err != nil {
		return 0, err
	}
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readRegister(d.resolve(frame), _COLOR_OFFSET+PixelAddr(x, y))
	if err != nil {
		return 0, wrap(err)
	}
	return int(v), nil
}

// SetPixelBlink sets or clears the blink flag of the cell at (x, y) with
// a read-modify-write of the packed mask byte, LSB first. Coordinates
// off the matrix are silently ignored.
func (d *Dev) SetPixelBlink(frame, x, y int, on bool) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return nil
	}
	p := PixelAddr(x, y)
	reg := _BLINK_OFFSET + p/8
	bit := byte(1) << (p % 8)
	d.mu.Lock()
	defer d.mu.Unlock()
	f := d.resolve(frame)
	bits, err := d.readRegister(f, reg)
	if err != nil {
		return wrap(err)
	}
	if on {
		bits |= bit
	} else {
		bits &^= bit
	}
	return wrap(d.writeRegister(f, reg, bits))
}

// PixelAddr maps a logical matrix coordinate, x in [0, 17) and y in
// [0, 7), to the cell offset within a frame plane. The panel is wired as
// two mirrored quadrants split at column 8, each an 8x16 addressing
// block, so the two sides use different formulas. The split is dictated
// by the pin-to-pixel wiring; changing it mirrors or shifts the image.
func PixelAddr(x, y int) byte {
	if x > 8 {
		x = 17 - x
		y += 8
	} else {
		y = 7 - y
	}
	return byte(x*16 + y)
}

// ColorModel implements display.Drawer. Pixels are 8 bit PWM
// intensities, modeled as grayscale.
func (d *Dev) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Draw implements display.Drawer by writing src into the active frame's
// intensity plane. It draws synchronously; once it returns the matrix is
// updated.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	d.mu.Lock()
	defer d.mu.Unlock()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.GrayModel.Convert(src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)).(color.Gray)
			if err := d.writeRegister(d.frame, _COLOR_OFFSET+PixelAddr(x, y), c.Y); err != nil {
				return wrap(err)
			}
		}
	}
	return nil
}

// initialize is the canonical startup sequence and the only place the
// column enable masks are written.
func (d *Dev) initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.setMode(_PICTURE_MODE); err != nil {
		return wrap(err)
	}
	d.frame = 0
	if err := d.writeRegister(_CONFIG_BANK, _FRAME_REGISTER, 0); err != nil {
		return wrap(err)
	}
	for frame := byte(0); frame < 8; frame++ {
		if err := d.fill(frame, 0); err != nil {
			return wrap(err)
		}
		if err := d.fillBlink(frame, false); err != nil {
			return wrap(err)
		}
		for col := byte(0); col < 18; col++ {
			if err := d.writeRegister(frame, _ENABLE_OFFSET+col, 0xff); err != nil {
				return wrap(err)
			}
		}
	}
	return wrap(d.writeRegister(_CONFIG_BANK, _AUDIOSYNC_REGISTER, 0))
}

func checkFrame(frame int) error {
	if frame != ActiveFrame && (frame < 0 || frame > 7) {
		return &RangeError{Param: "frame", Value: frame, Min: 0, Max: 7}
	}
	return nil
}

// resolve must be called with the lock held.
func (d *Dev) resolve(frame int) byte {
	if frame == ActiveFrame {
		return d.frame
	}
	return byte(frame)
}

func (d *Dev) sleep(enabled bool) error {
	v := byte(1)
	if enabled {
		v = 0
	}
	return d.writeRegister(_CONFIG_BANK, _SHUTDOWN_REGISTER, v)
}

func (d *Dev) setMode(mode byte) error {
	return d.writeRegister(_CONFIG_BANK, _MODE_REGISTER, mode)
}

func (d *Dev) fill(frame, color byte) error {
	if err := d.selectBank(frame); err != nil {
		return err
	}
	var w [25]byte
	for i := range w {
		w[i] = color
	}
	for row := byte(0); row < 6; row++ {
		w[0] = _COLOR_OFFSET + row*24
		if err := d.d.Tx(w[:], nil); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) fillBlink(frame byte, on bool) error {
	v := byte(0)
	if on {
		v = 0xff
	}
	for col := byte(0); col < 18; col++ {
		if err := d.writeRegister(frame, _BLINK_OFFSET+col, v); err != nil {
			return err
		}
	}
	return nil
}

// selectBank writes the bank select register. Every logical register
// access re-selects its bank; the hardware gives no guarantee that the
// selection survives across operations.
func (d *Dev) selectBank(bank byte) error {
	return d.d.Tx([]byte{_BANK_ADDRESS, bank}, nil)
}

func (d *Dev) writeRegister(bank, reg, value byte) error {
	if err := d.selectBank(bank); err != nil {
		return err
	}
	return d.d.Tx([]byte{reg, value}, nil)
}

func (d *Dev) readRegister(bank, reg byte) (byte, error) {
	if err := d.selectBank(bank); err != nil {
		return 0, err
	}
	var r [1]byte
	if err := d.d.Tx([]byte{reg}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
