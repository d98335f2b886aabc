package epd2in13

import (
	"image"
	"image/color"
	"testing"
)

type pixel struct {
	pt image.Point
	c  color.Color
}
type want struct {
	idx int
	b   byte
}

func TestImageSet(t *testing.T) {
	cases := []struct {
		desc   string
		pixels []pixel
		want   []want
	}{
		{
			desc: "simple",
			pixels: []pixel{
				{pt: image.Point{0, 0}, c: color.Black},
				{pt: image.Point{8, 0}, c: color.Black},
				{pt: image.Point{15, 0}, c: color.Black},
				{pt: image.Point{0, 1}, c: color.Black},
				{pt: image.Point{7, 1}, c: color.Black},
			},
			want: []want{
				{idx: 0, b: 0b0111_1111},
				{idx: 1, b: 0b0111_1110},
				{idx: 2, b: 0b0111_1110},
			},
		},
		{
			desc: "set then clear",
			pixels: []pixel{
				{pt: image.Point{3, 0}, c: color.Black},
				{pt: image.Point{3, 0}, c: color.White},
			},
			want: []want{
				{idx: 0, b: 0xFF},
			},
		},
		{
			desc: "out of bounds ignored",
			pixels: []pixel{
				{pt: image.Point{-1, 0}, c: color.Black},
				{pt: image.Point{16, 0}, c: color.Black},
				{pt: image.Point{0, 2}, c: color.Black},
			},
			want: []want{
				{idx: 0, b: 0xFF},
				{idx: 1, b: 0xFF},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			img := NewImage(image.Rect(0, 0, 16, 2))
			for _, p := range c.pixels {
				img.Set(p.pt.X, p.pt.Y, p.c)
			}
			for _, w := range c.want {
				if img.Pix[w.idx] != w.b {
					t.Errorf("img.Pix[%d] = %08b, wanted %08b", w.idx, img.Pix[w.idx], w.b)
				}
			}
		})
	}
}

func TestImageAt(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 16, 2))
	img.Set(5, 1, color.Black)
	if got := img.At(5, 1); got != Black {
		t.Errorf("At(5, 1) = %v, want Black", got)
	}
	if got := img.At(6, 1); got != White {
		t.Errorf("At(6, 1) = %v, want White", got)
	}
	if got := img.At(100, 100); got != White {
		t.Errorf("At(100, 100) = %v, want White", got)
	}
}

func TestImageStride(t *testing.T) {
	// 122 pixels pack into 16 bytes per row.
	img := NewImage(DisplayBounds)
	if img.Stride != DisplayWidthBytes {
		t.Errorf("Stride = %d, want %d", img.Stride, DisplayWidthBytes)
	}
	if len(img.Pix) != BufSize {
		t.Errorf("len(Pix) = %d, want %d", len(img.Pix), BufSize)
	}
}

func TestConvert(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.Black)
		}
	}

	buf := Convert(src, White)
	if len(buf) != BufSize {
		t.Fatalf("len(Convert(...)) = %d, want %d", len(buf), BufSize)
	}
	if buf[0] != 0x00 {
		t.Errorf("buf[0] = %08b, want all black", buf[0])
	}
	// Uncovered pixels take the background color.
	if got := buf[len(buf)-1]; got != 0xFF {
		t.Errorf("buf[last] = %08b, want all white background", got)
	}

	buf = Convert(src, Black)
	if got := buf[len(buf)-1]; got != 0x00 {
		t.Errorf("buf[last] = %08b, want all black background", got)
	}
}

func TestConvertThroughDraw(t *testing.T) {
	d, rc := newTestDisplay()
	d.SetBackgroundColor(White)
	if err := d.Draw(image.NewUniform(color.Black)); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	var ram []byte
	for _, op := range rc.ops {
		if op.cmd == writeRAM {
			ram = op.data
		}
	}
	if len(ram) != BufSize {
		t.Fatalf("writeRAM payload = %d bytes, want %d", len(ram), BufSize)
	}
	for i, b := range ram {
		// A row's last byte keeps its 6 pad bits white.
		wantPad := i%DisplayWidthBytes == DisplayWidthBytes-1
		if !wantPad && b != 0x00 {
			t.Fatalf("ram[%d] = %08b, want all black", i, b)
		}
	}
}
