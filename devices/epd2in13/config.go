package epd2in13

// Payload encoders for the configuration-carrying opcodes. These are pure:
// they turn named fields into the byte layout the controller expects and
// perform no I/O.

// DriverOutput configures gate scanning. Gates is the number of gate lines
// driven, i.e. the panel height.
type DriverOutput struct {
	// ScanIsLinear selects sequential gate scanning (G0, G1, G2, ...)
	// instead of interlaced.
	ScanIsLinear bool
	// ScanG0IsFirst selects the scan starting gate.
	ScanG0IsFirst bool
	// ScanDirIncr selects the gate scan direction.
	ScanDirIncr bool
	Gates       uint16
}

func (d DriverOutput) payload() []byte {
	mux := d.Gates - 1
	var gd byte
	if d.ScanIsLinear {
		gd |= 0x04
	}
	if d.ScanG0IsFirst {
		gd |= 0x02
	}
	if d.ScanDirIncr {
		gd |= 0x01
	}
	return []byte{byte(mux), byte(mux >> 8), gd}
}

// DataEntryIncr selects how the X and Y RAM counters move after each byte
// write.
type DataEntryIncr byte

const (
	XDecrYDecr DataEntryIncr = 0x00
	XIncrYDecr DataEntryIncr = 0x01
	XDecrYIncr DataEntryIncr = 0x02
	XIncrYIncr DataEntryIncr = 0x03
)

// DataEntryDir selects which counter advances first.
type DataEntryDir byte

const (
	XDir DataEntryDir = 0x00
	YDir DataEntryDir = 0x04
)

func dataEntryPayload(incr DataEntryIncr, dir DataEntryDir) []byte {
	return []byte{byte(incr) | byte(dir)}
}

// BorderVbd selects the source driving the border pixel.
type BorderVbd byte

const (
	VbdGS       BorderVbd = 0x00
	VbdFixLevel BorderVbd = 0x01
	VbdVcom     BorderVbd = 0x02
	VbdHiZ      BorderVbd = 0x03
)

// BorderFixLevel selects the voltage used when VbdFixLevel is chosen.
type BorderFixLevel byte

const (
	FixLevelVSS  BorderFixLevel = 0x00
	FixLevelVSH1 BorderFixLevel = 0x01
	FixLevelVSL  BorderFixLevel = 0x02
	FixLevelVSH2 BorderFixLevel = 0x03
)

// BorderGs selects the gray-level transition applied to the border.
type BorderGs struct {
	// FollowLUT drives the border through the selected LUT instead of
	// holding it fixed.
	FollowLUT bool
	LUT       byte // 0..3
}

// BorderWaveform is the 0x3C payload, one byte of three packed sub-fields.
type BorderWaveform struct {
	Vbd      BorderVbd
	FixLevel BorderFixLevel
	Gs       BorderGs
}

func (b BorderWaveform) payload() []byte {
	v := byte(b.Vbd)<<6 | byte(b.FixLevel)<<4 | b.Gs.LUT&0x03
	if b.Gs.FollowLUT {
		v |= 0x04
	}
	return []byte{v}
}

// UpdateControl2 accumulates the operations the next masterActivation pulse
// will execute. The zero value stages nothing.
type UpdateControl2 byte

func (u UpdateControl2) EnableClock() UpdateControl2  { return u | 0x80 }
func (u UpdateControl2) EnableAnalog() UpdateControl2 { return u | 0x40 }
func (u UpdateControl2) LoadTemp() UpdateControl2     { return u | 0x20 }
func (u UpdateControl2) LoadLUT() UpdateControl2      { return u | 0x10 }
func (u UpdateControl2) DisplayMode2() UpdateControl2 { return u | 0x08 }
func (u UpdateControl2) Display() UpdateControl2      { return u | 0x04 }
func (u UpdateControl2) DisableAnalog() UpdateControl2 {
	return u | 0x02
}
func (u UpdateControl2) DisableClock() UpdateControl2 { return u | 0x01 }

func (u UpdateControl2) payload() []byte { return []byte{byte(u)} }

// DeepSleepMode selects how much of the controller stays alive while asleep.
type DeepSleepMode byte

const (
	// SleepNormal keeps RAM and register access.
	SleepNormal DeepSleepMode = 0x00
	// SleepMode1 cuts register access but retains RAM contents.
	SleepMode1 DeepSleepMode = 0x01
	// SleepMode2 cuts register access and discards RAM contents.
	SleepMode2 DeepSleepMode = 0x03
)

func (m DeepSleepMode) payload() []byte { return []byte{byte(m)} }

// RAM addressing payloads. X addresses count in bytes (8 pixels), Y in
// lines; Y spans two bytes.

func ramXRangePayload(start, end uint8) []byte {
	return []byte{start >> 3, end >> 3}
}

func ramYRangePayload(start, end uint16) []byte {
	return []byte{byte(start), byte(start >> 8), byte(end), byte(end >> 8)}
}

func ramXCounterPayload(x uint8) []byte {
	return []byte{x >> 3}
}

func ramYCounterPayload(y uint16) []byte {
	return []byte{byte(y), byte(y >> 8)}
}
