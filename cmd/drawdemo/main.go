// github.com/LambdaGoblin/pygame - a 2D shape rasterization library
// Copyright (C) 2026  The pygame-go authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command drawdemo renders a sample scene with every rasterizer and
// writes it to a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"

	"github.com/LambdaGoblin/pygame/draw"
	"github.com/LambdaGoblin/pygame/geom"
	"github.com/LambdaGoblin/pygame/surface"
)

func main() {
	var (
		width  = flag.Int("width", 200, "surface width in pixels")
		height = flag.Int("height", 150, "surface height in pixels")
		scale  = flag.Int("scale", 4, "nearest-neighbor output scale factor")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	s := surface.New(surface.RGBA8888, *width, *height)
	s.Fill(colornames.Midnightblue)
	if err := renderScene(s); err != nil {
		log.Fatalf("rendering scene: %v", err)
	}

	if err := writePNG(*output, s, *scale); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	log.Printf("wrote %s (%dx%d, scale %d)", *output, *width, *height, *scale)
}

func renderScene(s *surface.Image) error {
	w := s.Width()
	h := s.Height()

	// Nested rectangle borders in the top-left corner.
	if _, err := draw.Rect(s, colornames.Darkslategray, geom.R(8, 8, 60, 44), 0); err != nil {
		return err
	}
	if _, err := draw.Rect(s, colornames.Orange, geom.R(8, 8, 60, 44), 2); err != nil {
		return err
	}
	if _, err := draw.Rect(s, colornames.Gold, geom.R(14, 14, 48, 32), 1); err != nil {
		return err
	}

	// A fan of aliased lines and their anti-aliased mirror.
	center := geom.Pt(36, 110)
	for i := 0; i <= 8; i++ {
		tip := geom.Pt(4+i*8, 70)
		if _, err := draw.Line(s, colornames.Lightsteelblue, center, tip, 1); err != nil {
			return err
		}
		aatip := geom.Pt(tip.X+70, tip.Y)
		if _, err := draw.AALine(s, colornames.White, geom.Pt(center.X+70, center.Y), aatip); err != nil {
			return err
		}
	}

	// Filled and ringed ellipses.
	if _, err := draw.Ellipse(s, colornames.Seagreen, geom.R(84, 10, 50, 34), 0); err != nil {
		return err
	}
	if _, err := draw.Ellipse(s, colornames.Palegreen, geom.R(84, 10, 50, 34), 2); err != nil {
		return err
	}
	if _, err := draw.Circle(s, colornames.Tomato, geom.Pt(164, 40), 22, 0); err != nil {
		return err
	}
	if _, err := draw.Circle(s, colornames.Mistyrose, geom.Pt(164, 40), 22, 1); err != nil {
		return err
	}

	// A closed polyline hugging the surface border.
	border := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(w-1, 0),
		geom.Pt(w-1, h-1),
		geom.Pt(0, h-1),
	}
	if _, err := draw.Lines(s, colornames.Silver, true, border, 1); err != nil {
		return err
	}

	// An open anti-aliased zig-zag.
	zig := []geom.Point{
		geom.Pt(120, 140),
		geom.Pt(140, 80),
		geom.Pt(160, 130),
		geom.Pt(180, 90),
		geom.Pt(195, 135),
	}
	_, err := draw.AALines(s, colornames.Khaki, false, zig)
	return err
}

// writePNG upscales the surface with nearest-neighbor sampling so the
// individual pixels stay inspectable, then encodes it.
func writePNG(path string, s *surface.Image, scale int) (err error) {
	scale = max(scale, 1)
	dst := image.NewRGBA(image.Rect(0, 0, s.Width()*scale, s.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), s, s.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, dst)
}
