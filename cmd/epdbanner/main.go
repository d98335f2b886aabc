// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary epdbanner displays wrapped text on the e-paper display.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/toothrot/goepaper/devices/epd2in13"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

var (
	text     = flag.String("text", "Hello, world!", "Text to display.")
	rotate   = flag.Float64("rotate", 0.0, "Image rotation in degrees.")
	fontSize = flag.Float64("size", 28, "Font size in points.")
)

func main() {
	flag.Parse()
	d, err := epd2in13.New(epd2in13.DefaultPins)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Sleep()

	img := imaging.New(epd2in13.DisplayWidth, epd2in13.DisplayHeight, color.White)
	ctx := gg.NewContextForImage(img)
	ctx.SetFontFace(fontFace(*fontSize))
	ctx.SetRGB(0, 0, 0)
	ctx.DrawStringWrapped(*text, epd2in13.DisplayWidth/2, epd2in13.DisplayHeight/2, 0.5, 0.5, epd2in13.DisplayWidth-8, 1.0, gg.AlignCenter)

	rot := imaging.Rotate(ctx.Image(), *rotate, color.White)
	fit := imaging.Fit(rot, epd2in13.DisplayWidth, epd2in13.DisplayHeight, imaging.Lanczos)
	final := imaging.PasteCenter(imaging.New(epd2in13.DisplayWidth, epd2in13.DisplayHeight, color.White), fit)

	log.Println("Displaying banner")
	if err := d.DrawAndDisplay(final); err != nil {
		log.Fatal(err)
	}
	time.Sleep(epd2in13.DefaultWait)
}

func fontFace(size float64) font.Face {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		log.Fatal(err)
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Fatal(err)
	}
	return ff
}
