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

package draw

import (
	"fmt"
	"image/color"

	"github.com/LambdaGoblin/pygame/geom"
	"github.com/LambdaGoblin/pygame/surface"
)

// Line draws an aliased line segment from p0 to p1, inclusive of both
// endpoint pixels, and returns the bounding rectangle of the touched
// pixels.
//
// A width of 0 is clamped to 1; a negative width is ErrNegativeWidth.
// For width > 1 the segment becomes a band of width parallel lines:
// x-dominant segments widen downward, all other segments (including a
// zero-length dot) widen to the right. A zero-length segment with
// width 1 draws a single pixel and returns a 1×1 rectangle.
func Line(dst surface.Surface, c color.RGBA, p0, p1 geom.Point, width int) (geom.Rect, error) {
	if width < 0 {
		return geom.Rect{}, fmt.Errorf("line width %d: %w", width, ErrNegativeWidth)
	}
	if width == 0 {
		width = 1
	}
	p := newPainter(dst, c)
	lineBand(p, p0, p1, width)
	return p.bounds(p0), nil
}

// lineBand rasterizes one segment as a band of the given width. The
// band always extends from the nominal segment in the positive minor
// axis direction, so widened lines stay symmetric between a segment
// and its reverse.
func lineBand(p *painter, p0, p1 geom.Point, width int) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	// Purely horizontal and vertical segments widen into an
	// axis-aligned rectangle; no stepping needed.
	switch {
	case dy == 0 && dx != 0:
		x0, x1 := p0.X, p1.X
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		p.fillRect(geom.Rect{X: x0, Y: p0.Y, W: x1 - x0 + 1, H: width})
		return
	case dx == 0:
		// Vertical segment or single point; widens to the right.
		y0, y1 := p0.Y, p1.Y
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		p.fillRect(geom.Rect{X: p0.X, Y: y0, W: width, H: y1 - y0 + 1})
		return
	}

	if geom.Abs(dx) > geom.Abs(dy) {
		for i := range width {
			bresenham(p, p0.X, p0.Y+i, p1.X, p1.Y+i)
		}
	} else {
		for i := range width {
			bresenham(p, p0.X+i, p0.Y, p1.X+i, p1.Y)
		}
	}
}

// bresenham walks the segment one step per pixel, carrying the
// doubled minor-axis error in an integer accumulator. Both endpoints
// are written.
func bresenham(p *painter, x0, y0, x1, y1 int) {
	dx := geom.Abs(x1 - x0)
	dy := geom.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		p.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
