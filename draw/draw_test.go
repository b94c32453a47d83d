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

package draw_test

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/LambdaGoblin/pygame/geom"
	"github.com/LambdaGoblin/pygame/surface"
)

// testFormats covers the 16/32-bit, with/without alpha surface grid.
var testFormats = []surface.Format{
	surface.RGBA8888,
	surface.XRGB8888,
	surface.RGB565,
	surface.ARGB4444,
}

// primaries are the eight full-intensity RGB corner colors. They
// round-trip exactly through every test format.
var primaries = []color.RGBA{
	colornames.Black,
	colornames.Red,
	colornames.Lime,
	colornames.Blue,
	colornames.Yellow,
	colornames.Magenta,
	colornames.Cyan,
	colornames.White,
}

var testSizes = []int{49, 50}

// borderValues returns the four border pixel arrays of the surface:
// top row, left column, right column, bottom row.
func borderValues(s surface.Surface) [4][]color.RGBA {
	w := s.Width()
	h := s.Height()
	var b [4][]color.RGBA
	for x := range w {
		b[0] = append(b[0], s.Get(x, 0))
		b[3] = append(b[3], s.Get(x, h-1))
	}
	for y := range h {
		b[1] = append(b[1], s.Get(0, y))
		b[2] = append(b[2], s.Get(w-1, y))
	}
	return b
}

func containsColor(colors []color.RGBA, c color.RGBA) bool {
	for _, got := range colors {
		if got == c {
			return true
		}
	}
	return false
}

func allColor(colors []color.RGBA, c color.RGBA) bool {
	for _, got := range colors {
		if got != c {
			return false
		}
	}
	return true
}

// rectPoints returns every pixel inside r.
func rectPoints(r geom.Rect) []geom.Point {
	pts := make([]geom.Point, 0, r.W*r.H)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			pts = append(pts, geom.Pt(x, y))
		}
	}
	return pts
}

// outerRing returns the one-pixel ring immediately outside r. Points
// off the surface are harmless: Get reports the zero color there.
func outerRing(r geom.Rect) []geom.Point {
	var pts []geom.Point
	for x := r.X - 1; x <= r.Right(); x++ {
		pts = append(pts, geom.Pt(x, r.Y-1), geom.Pt(x, r.Bottom()))
	}
	for y := r.Y; y < r.Bottom(); y++ {
		pts = append(pts, geom.Pt(r.X-1, y), geom.Pt(r.Right(), y))
	}
	return pts
}
