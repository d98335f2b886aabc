package epd2in13

import (
	"bytes"
	"testing"
)

func TestDriverOutputPayload(t *testing.T) {
	cases := []struct {
		desc string
		out  DriverOutput
		want []byte
	}{
		{
			desc: "this panel",
			out:  DriverOutput{Gates: DisplayHeight},
			want: []byte{0xF9, 0x00, 0x00},
		},
		{
			desc: "all scan flags",
			out:  DriverOutput{ScanIsLinear: true, ScanG0IsFirst: true, ScanDirIncr: true, Gates: 296},
			want: []byte{0x27, 0x01, 0x07},
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			if got := c.out.payload(); !bytes.Equal(got, c.want) {
				t.Errorf("payload() = % X, want % X", got, c.want)
			}
		})
	}
}

func TestDataEntryPayload(t *testing.T) {
	cases := []struct {
		desc string
		incr DataEntryIncr
		dir  DataEntryDir
		want byte
	}{
		{desc: "x incr y incr, x first", incr: XIncrYIncr, dir: XDir, want: 0x03},
		{desc: "x decr y incr, x first", incr: XDecrYIncr, dir: XDir, want: 0x02},
		{desc: "x decr y decr, y first", incr: XDecrYDecr, dir: YDir, want: 0x04},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			if got := dataEntryPayload(c.incr, c.dir); got[0] != c.want {
				t.Errorf("dataEntryPayload() = %#02x, want %#02x", got[0], c.want)
			}
		})
	}
}

func TestBorderWaveformPayload(t *testing.T) {
	cases := []struct {
		desc string
		b    BorderWaveform
		want byte
	}{
		{
			desc: "this panel",
			b:    BorderWaveform{Vbd: VbdGS, FixLevel: FixLevelVSS, Gs: BorderGs{FollowLUT: true, LUT: 1}},
			want: 0x05,
		},
		{
			desc: "hiz",
			b:    BorderWaveform{Vbd: VbdHiZ},
			want: 0xC0,
		},
		{
			desc: "fixed vsh1",
			b:    BorderWaveform{Vbd: VbdFixLevel, FixLevel: FixLevelVSH1},
			want: 0x50,
		},
		{
			desc: "lut3 fixed transition",
			b:    BorderWaveform{Gs: BorderGs{LUT: 3}},
			want: 0x03,
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			if got := c.b.payload(); got[0] != c.want {
				t.Errorf("payload() = %#02x, want %#02x", got[0], c.want)
			}
		})
	}
}

func TestUpdateControl2(t *testing.T) {
	cases := []struct {
		desc string
		ctl  UpdateControl2
		want byte
	}{
		{
			desc: "full display sequence",
			ctl:  UpdateControl2(0).EnableClock().EnableAnalog().Display().DisableAnalog().DisableClock(),
			want: 0xC7,
		},
		{
			desc: "sleep teardown",
			ctl:  UpdateControl2(0).EnableAnalog().EnableClock().DisableAnalog().DisableClock(),
			want: 0xC3,
		},
		{
			desc: "load temperature and lut",
			ctl:  UpdateControl2(0).EnableClock().LoadTemp().LoadLUT().DisableClock(),
			want: 0xB1,
		},
		{desc: "nothing staged", ctl: UpdateControl2(0), want: 0x00},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			if got := c.ctl.payload(); got[0] != c.want {
				t.Errorf("payload() = %#02x, want %#02x", got[0], c.want)
			}
		})
	}
}

func TestRamPayloads(t *testing.T) {
	if got, want := ramXRangePayload(0, DisplayWidth-1), []byte{0x00, 0x0F}; !bytes.Equal(got, want) {
		t.Errorf("ramXRangePayload(0, %d) = % X, want % X", DisplayWidth-1, got, want)
	}
	if got, want := ramYRangePayload(0, DisplayHeight-1), []byte{0x00, 0x00, 0xF9, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("ramYRangePayload(0, %d) = % X, want % X", DisplayHeight-1, got, want)
	}
	if got, want := ramXCounterPayload(0), []byte{0x00}; !bytes.Equal(got, want) {
		t.Errorf("ramXCounterPayload(0) = % X, want % X", got, want)
	}
	// The Y counter is a two byte register; 250 lines need the high byte.
	if got, want := ramYCounterPayload(0x0123), []byte{0x23, 0x01}; !bytes.Equal(got, want) {
		t.Errorf("ramYCounterPayload(0x0123) = % X, want % X", got, want)
	}
}

func TestWaveformTable(t *testing.T) {
	if got := waveformTable(RefreshFull); !bytes.Equal(got, lutFullUpdate[:]) {
		t.Error("waveformTable(RefreshFull) did not return the full update table")
	}
	if got := waveformTable(RefreshQuick); !bytes.Equal(got, lutQuickUpdate[:]) {
		t.Error("waveformTable(RefreshQuick) did not return the quick update table")
	}
	if len(lutFullUpdate) != len(lutQuickUpdate) {
		t.Errorf("table lengths differ: %d vs %d", len(lutFullUpdate), len(lutQuickUpdate))
	}
}
