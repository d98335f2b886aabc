// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary epdclock displays a clock on the e-paper display.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/toothrot/goepaper/devices/epd2in13"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

var (
	format = flag.String("format", "15:04", "time.Time format.")
	rotate = flag.Float64("rotate", 90.0, "Image rotation in degrees.")
	quick  = flag.Bool("quick", true, "Use the quick refresh waveform for updates.")
)

func main() {
	flag.Parse()
	d, err := epd2in13.New(epd2in13.DefaultPins)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Sleep()

	if *quick {
		if err := d.SetRefresh(epd2in13.RefreshQuick); err != nil {
			log.Fatal(err)
		}
	}

	update(d, time.Now().Format(*format))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case s := <-c:
			log.Printf("Got signal %q, quitting", s.String())
			return
		case t := <-ticker.C:
			update(d, t.Format(*format))
		}
	}
}

func update(d *epd2in13.Display, text string) {
	img := imaging.New(epd2in13.DisplayHeight, epd2in13.DisplayWidth, color.White)
	ctx := gg.NewContextForImage(img)
	ctx.SetFontFace(fontFace())
	ctx.SetRGB(0, 0, 0)
	ctx.DrawStringAnchored(text, float64(epd2in13.DisplayHeight)/2, float64(epd2in13.DisplayWidth)/2, 0.5, 0.5)

	// The panel is portrait; rotate the landscape render onto it.
	rot := imaging.Rotate(ctx.Image(), *rotate, color.White)
	final := imaging.PasteCenter(imaging.New(epd2in13.DisplayWidth, epd2in13.DisplayHeight, color.White), rot)
	if err := d.DrawAndDisplay(final); err != nil {
		log.Printf("DrawAndDisplay failed: %v", err)
	}
}

func fontFace() font.Face {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		log.Fatal(err)
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    64,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Fatal(err)
	}
	return ff
}
