// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package epd2in13 is for the 2.13 inch 122x250 black/white e-Paper display,
// as found on the LilyGo T5.
package epd2in13

import (
	"fmt"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

const (
	// Device width in pixels.
	DisplayWidth = 122
	// Device width in bytes. The 122 pixels of a row pack into 16 bytes,
	// the last 6 bits unused.
	DisplayWidthBytes = (DisplayWidth + 7) / 8
	// Device height in pixels.
	DisplayHeight = 250
	// Full frame buffer size in bytes.
	BufSize = DisplayWidthBytes * DisplayHeight
)

// Reset pulse and settle times. The controller wants at least 10ms each.
const (
	resetPulse  = 10 * time.Millisecond
	resetSettle = 10 * time.Millisecond
)

// Display is a client for the e-Paper display.
//
// Standard pin locations are as follows:
//  Busy - Busy      - Pin 18 (GPIO 24)
//  CLK  - SPI0 SCLK - Pin 23 (GPIO 11)
//  CS   - SPI0 CE0  - Pin 24 (GPIO 8)
//  DC   - Data/Cmd  - Pin 22 (GPIO 25)
//  DIN  - SPI0 MOSI - Pin 19 (GPIO 10)
//  RST  - Reset     - Pin 11 (GPIO 17)
//
// The Display owns the bus and pins exclusively for its lifetime. The
// controller keeps internal state (RAM counters, LUT, sleep mode) that is
// only well-defined under strictly sequential access, so nothing else may
// drive them concurrently.
type Display struct {
	hw *hardware

	sleepMode  DeepSleepMode
	background Color
	refresh    RefreshLUT
}

type Pins struct {
	// Busy pin name, typically "P1_18"
	Busy string
	// CS pin name, typically "P1_24"
	CS string
	// DC pin name, typically "P1_22"
	DC string
	// RST pin name, typically "P1_11"
	RST string
}

var DefaultPins = Pins{
	Busy: "P1_18",
	CS:   "P1_24",
	DC:   "P1_22",
	RST:  "P1_11",
}

// DefaultWait is the time a full refresh takes to settle on screen.
var DefaultWait = 3 * time.Second

// New creates a Display configured for use and runs the cold init sequence.
//
// The pin names all expect valid gpioreg.ByName() values, such as P1_22.
//
//  d, err := epd2in13.New(epd2in13.DefaultPins)
//  if err != nil {
//    // Handle error.
//  }
func New(p Pins) (*Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host.Init() = %w", err)
	}

	dc := gpioreg.ByName(p.DC)
	if dc == nil {
		return nil, fmt.Errorf("invalid dc pin %q", p.DC)
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("dc.Out(%v) = %w", gpio.Low, err)
	}

	cs := gpioreg.ByName(p.CS)
	if cs == nil {
		return nil, fmt.Errorf("invalid cs pin %q", p.CS)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("cs.Out(%v) = %w", gpio.High, err)
	}

	rst := gpioreg.ByName(p.RST)
	if rst == nil {
		return nil, fmt.Errorf("invalid rst pin %q", p.RST)
	}
	if err := rst.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("rst.Out(%v) = %w", gpio.High, err)
	}

	busy := gpioreg.ByName(p.Busy)
	if busy == nil {
		return nil, fmt.Errorf("invalid busy pin %q", p.Busy)
	}
	if err := busy.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("busy.In(%v, %v) = %w", gpio.PullNoChange, gpio.NoEdge, err)
	}

	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("spireg.Open(%q) = _, %w", "", err)
	}
	// 4Mhz is well within what the controller accepts for writes; wire
	// length and health impact the maximum workable speed.
	c, err := port.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		connerr := fmt.Errorf("port.Connect(%v, %v, %v) = %w", 4*physic.MegaHertz, spi.Mode0, 8, err)
		if err := port.Close(); err != nil {
			return nil, fmt.Errorf("port.Close() = %w while handling %q", err, connerr)
		}
		return nil, connerr
	}

	d := &Display{
		hw: &hardware{
			txLimit: 2048,
			c:       c,
			dc:      dc,
			cs:      cs,
			rst:     rst,
			busy:    busy,
		},
		sleepMode:  SleepMode1,
		background: White,
		refresh:    RefreshFull,
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init runs the cold initialization sequence: reset pulse, software reset,
// gate/scan configuration, data entry mode, full RAM window, border
// waveform, update control, temperature sensor, RAM counters. The controller
// requires this exact ordering: registers are undefined until reset, and the
// counters clip to whatever window is configured when they are set.
//
// Init leaves the controller idle. It is also the wake path after Sleep.
func (d *Display) Init() error {
	if err := d.hw.reset(resetPulse, resetSettle); err != nil {
		return err
	}
	d.hw.waitUntilIdle()
	if err := d.hw.sendCommand(swReset); err != nil {
		return err
	}
	d.hw.waitUntilIdle()

	err := d.hw.sendCommandWithData(driverOutputControl, DriverOutput{
		ScanIsLinear:  false,
		ScanG0IsFirst: false,
		ScanDirIncr:   false,
		Gates:         DisplayHeight,
	}.payload())
	if err != nil {
		return err
	}

	if err := d.hw.sendCommandWithData(dataEntryMode, dataEntryPayload(XIncrYIncr, XDir)); err != nil {
		return err
	}

	if err := d.setRamArea(0, 0, DisplayWidth-1, DisplayHeight-1); err != nil {
		return err
	}

	err = d.hw.sendCommandWithData(borderWaveformControl, BorderWaveform{
		Vbd:      VbdGS,
		FixLevel: FixLevelVSS,
		Gs:       BorderGs{FollowLUT: true, LUT: 1},
	}.payload())
	if err != nil {
		return err
	}

	// Use the internal temperature sensor path.
	if err := d.hw.sendCommandWithData(displayUpdateControl1, []byte{0x00, 0x80}); err != nil {
		return err
	}
	if err := d.hw.sendCommandWithData(tempSensorControl, []byte{0x80}); err != nil {
		return err
	}

	if err := d.setRamCounters(0, 0); err != nil {
		return err
	}
	d.hw.waitUntilIdle()
	return nil
}

// Wake re-initializes the display after Sleep. There is no abbreviated wake
// path; it is the full Init sequence.
func (d *Display) Wake() error {
	return d.Init()
}

// Sleep stages the analog/clock teardown, triggers it, then enters the
// configured deep sleep mode. No further commands may be sent until Wake.
func (d *Display) Sleep() error {
	d.hw.waitUntilIdle()

	ctl := UpdateControl2(0).
		EnableAnalog().
		EnableClock().
		DisableAnalog().
		DisableClock()
	if err := d.hw.sendCommandWithData(displayUpdateControl2, ctl.payload()); err != nil {
		return err
	}
	if err := d.hw.sendCommand(masterActivation); err != nil {
		return err
	}

	return d.hw.sendCommandWithData(deepSleepMode, d.sleepMode.payload())
}

// UpdateFrame streams buf into the controller's RAM. It does not change
// what is on screen; DisplayFrame does that.
//
// buf must be exactly BufSize bytes, one bit per pixel, row major, 8 pixels
// per byte. Anything else is rejected before any bus traffic is sent.
//
// The controller is fully re-initialized on every update, so the RAM window
// and counters never carry over from a previous state.
func (d *Display) UpdateFrame(buf []byte) error {
	if len(buf) != BufSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(buf), BufSize)
	}

	if err := d.Init(); err != nil {
		return err
	}

	if err := d.setRamArea(0, 0, DisplayWidth-1, DisplayHeight-1); err != nil {
		return err
	}
	if err := d.setRamCounters(0, 0); err != nil {
		return err
	}

	return d.hw.sendCommandWithData(writeRAM, buf)
}

// UpdatePartialFrame would write a sub-rectangle of the frame. The
// controller configuration used here does not support it; attempting the
// write against this init sequence produces an undefined on-panel result,
// so the call is rejected outright.
func (d *Display) UpdatePartialFrame(buf []byte, x, y, w, h int) error {
	return ErrPartialUpdate
}

// DisplayFrame makes the staged RAM contents visible: it stages the full
// enable clock, enable analog, display, disable analog, disable clock
// sequence and pulses master activation. Blocks until the refresh finishes.
func (d *Display) DisplayFrame() error {
	ctl := UpdateControl2(0).
		EnableClock().
		EnableAnalog().
		Display().
		DisableAnalog().
		DisableClock()
	if err := d.hw.sendCommandWithData(displayUpdateControl2, ctl.payload()); err != nil {
		return err
	}
	if err := d.hw.sendCommand(masterActivation); err != nil {
		return err
	}
	d.hw.waitUntilIdle()
	return nil
}

// UpdateAndDisplayFrame is UpdateFrame followed by DisplayFrame.
func (d *Display) UpdateAndDisplayFrame(buf []byte) error {
	if err := d.UpdateFrame(buf); err != nil {
		return err
	}
	return d.DisplayFrame()
}

// ClearFrame would blank the panel without a caller-supplied buffer. Not
// supported by this controller configuration; draw a full white frame
// through UpdateAndDisplayFrame instead.
func (d *Display) ClearFrame() error {
	return ErrClearFrame
}

// SetRefresh selects the waveform table used for refreshes. Changing the
// value writes the matching table to the LUT register; re-selecting the
// current value sends nothing. The panel itself is not refreshed.
func (d *Display) SetRefresh(r RefreshLUT) error {
	if r == d.refresh {
		return nil
	}
	if err := d.hw.sendCommandWithData(writeLutRegister, waveformTable(r)); err != nil {
		return err
	}
	d.refresh = r
	return nil
}

// SetDeepSleepMode selects the sleep depth used by the next Sleep call.
func (d *Display) SetDeepSleepMode(m DeepSleepMode) {
	d.sleepMode = m
}

// SetBackgroundColor sets the color used for pixels no source image covers.
// It is driver state only; nothing is sent to the hardware.
func (d *Display) SetBackgroundColor(c Color) {
	d.background = c
}

// BackgroundColor returns the stored background color.
func (d *Display) BackgroundColor() Color {
	return d.background
}

// Width returns the panel width in pixels.
func (d *Display) Width() int {
	return DisplayWidth
}

// Height returns the panel height in pixels.
func (d *Display) Height() int {
	return DisplayHeight
}

func (d *Display) setRamArea(startX, startY, endX, endY int) error {
	err := d.hw.sendCommandWithData(setRamXStartEnd, ramXRangePayload(uint8(startX), uint8(endX)))
	if err != nil {
		return err
	}
	return d.hw.sendCommandWithData(setRamYStartEnd, ramYRangePayload(uint16(startY), uint16(endY)))
}

func (d *Display) setRamCounters(x, y int) error {
	d.hw.waitUntilIdle()
	if err := d.hw.sendCommandWithData(setRamXAddressCounter, ramXCounterPayload(uint8(x))); err != nil {
		return err
	}
	return d.hw.sendCommandWithData(setRamYAddressCounter, ramYCounterPayload(uint16(y)))
}
