package epd2in13

// RefreshLUT selects which waveform table drives a refresh.
type RefreshLUT int

const (
	// RefreshFull redraws the whole panel with the flashing full-update
	// waveform. Slow, best quality.
	RefreshFull RefreshLUT = iota
	// RefreshQuick uses the fast waveform. Quicker, prone to ghosting.
	RefreshQuick
)

func (r RefreshLUT) String() string {
	switch r {
	case RefreshFull:
		return "full"
	case RefreshQuick:
		return "quick"
	}
	return "RefreshLUT(unknown)"
}

// The waveform tables are fixed hardware data sized to the controller's LUT
// register. The values come from the panel vendor's reference code and must
// be written verbatim.

var lutFullUpdate = [70]byte{
	0x80, 0x60, 0x40, 0x00, 0x00, 0x00, 0x00,
	0x10, 0x60, 0x20, 0x00, 0x00, 0x00, 0x00,
	0x80, 0x60, 0x40, 0x00, 0x00, 0x00, 0x00,
	0x10, 0x60, 0x20, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

	0x03, 0x03, 0x00, 0x00, 0x02,
	0x09, 0x09, 0x00, 0x00, 0x02,
	0x03, 0x03, 0x00, 0x00, 0x02,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
}

var lutQuickUpdate = [70]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

	0x0A, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
}

func waveformTable(r RefreshLUT) []byte {
	if r == RefreshQuick {
		return lutQuickUpdate[:]
	}
	return lutFullUpdate[:]
}
