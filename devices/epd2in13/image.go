package epd2in13

import (
	"bytes"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	White = Color{0}
	Black = Color{1}

	Model = color.ModelFunc(model)

	defaultPalette = color.Palette{White, Black}

	DisplayBounds = image.Rect(0, 0, DisplayWidth, DisplayHeight)
)

type Color struct {
	// 0 white, 1 black
	C uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	if c.C == 0 {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func model(c color.Color) color.Color {
	return defaultPalette.Convert(c)
}

// Image is a bit-per-pixel mono image packed the way the controller's RAM
// wants it: row major, 8 pixels per byte, 1 white, 0 black.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewImage returns an all-white Image covering r.
func NewImage(r image.Rectangle) *Image {
	stride := (r.Dx() + 7) / 8
	return &Image{
		Pix:    bytes.Repeat([]byte{0xff}, stride*r.Dy()),
		Stride: stride,
		Rect:   r,
	}
}

func (i *Image) ColorModel() color.Model {
	return Model
}

func (i *Image) Bounds() image.Rectangle {
	return i.Rect
}

func (i *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(i.Rect) {
		return White
	}
	px := (x-i.Rect.Min.X)/8 + (y-i.Rect.Min.Y)*i.Stride
	bit := byte(0x80 >> (uint32(x-i.Rect.Min.X) % 8))
	if i.Pix[px]&bit != 0 {
		return White
	}
	return Black
}

func (i *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	var pi int
	if cc, ok := c.(Color); ok {
		pi = int(cc.C)
	} else {
		pi = defaultPalette.Index(c)
	}
	px := (x-i.Rect.Min.X)/8 + (y-i.Rect.Min.Y)*i.Stride
	bit := byte(0x80 >> (uint32(x-i.Rect.Min.X) % 8))
	if pi == 0 {
		i.Pix[px] |= bit
	} else {
		i.Pix[px] &= ^bit
	}
}

// Convert packs img into a full frame buffer suitable for
// Display.UpdateFrame. Pixels outside img's bounds are filled with bg.
func Convert(img image.Image, bg Color) []byte {
	dst := NewImage(DisplayBounds)
	if bg == Black {
		for i := range dst.Pix {
			dst.Pix[i] = 0x00
		}
	}
	b := img.Bounds().Intersect(DisplayBounds)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst.Pix
}

// Draw rasterizes img into a frame buffer, using the stored background
// color for uncovered pixels, and stages it in controller RAM.
func (d *Display) Draw(img image.Image) error {
	return d.UpdateFrame(Convert(img, d.background))
}

// DrawAndDisplay is Draw followed by DisplayFrame.
func (d *Display) DrawAndDisplay(img image.Image) error {
	if err := d.Draw(img); err != nil {
		return err
	}
	return d.DisplayFrame()
}
