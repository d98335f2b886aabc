// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary epdimage displays an image file on the e-paper display.
package main

import (
	"flag"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/makeworld-the-better-one/dither"
	"github.com/toothrot/goepaper/devices/epd2in13"
)

var (
	path     = flag.String("image", "", "Path to a PNG or JPEG to display.")
	rotate   = flag.Float64("rotate", 0.0, "Image rotation in degrees.")
	noDither = flag.Bool("no_dither", false, "Threshold instead of dithering.")
)

func main() {
	flag.Parse()
	if *path == "" {
		log.Fatal("-image is required")
	}

	img, err := loadImage(*path)
	if err != nil {
		log.Fatal(err)
	}

	if !*noDither {
		colors := []color.Color{color.White, color.Black}
		dith := dither.NewDitherer(colors)
		dith.Matrix = dither.FloydSteinberg
		dith.Serpentine = true
		if tmp := dith.DitherPaletted(img); tmp != nil {
			img = tmp
		}
	}

	d, err := epd2in13.New(epd2in13.DefaultPins)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Sleep()

	log.Println("Displaying image")
	if err := d.DrawAndDisplay(img); err != nil {
		log.Fatal(err)
	}
	time.Sleep(epd2in13.DefaultWait)
}

func loadImage(path string) (image.Image, error) {
	imgf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer imgf.Close()
	img, _, err := image.Decode(imgf)
	if err != nil {
		return nil, err
	}
	rot := imaging.Rotate(img, *rotate, color.White)
	fit := imaging.Fit(rot, epd2in13.DisplayWidth, epd2in13.DisplayHeight, imaging.Lanczos)
	return imaging.PasteCenter(imaging.New(epd2in13.DisplayWidth, epd2in13.DisplayHeight, color.White), fit), nil
}
