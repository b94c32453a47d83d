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

// Package draw rasterizes lines, polylines, rectangles, ellipses, and
// circles into a pixel surface with pixel-exact boundary semantics.
//
// All entry points share the same shape: the caller supplies a
// surface.Surface, a color, and integer geometry; the rasterizer
// computes the touched pixel set, writes the color through the
// surface, and returns the bounding geom.Rect of the draw call.
// Endpoints are inclusive: a line from (1,0) to (200,0) colors both
// endpoint pixels and spans 200 columns.
//
// Coordinates outside the surface are valid input; writes that fall
// off the surface are silently clipped. Degenerate geometry
// (zero-length lines, one-pixel rectangles, tiny ellipses) is drawn
// with well-defined results, never rejected. The only errors are
// caller contract violations: fewer than two polyline vertices, or a
// negative width or radius.
//
// Rasterization is synchronous and runs to completion. A draw call
// assumes exclusive access to its surface; callers must serialize
// concurrent draws to the same surface.
package draw

import (
	"errors"
	"image/color"

	"github.com/LambdaGoblin/pygame/geom"
	"github.com/LambdaGoblin/pygame/surface"
)

var (
	// ErrTooFewPoints is returned when a polyline is given fewer than
	// two vertices.
	ErrTooFewPoints = errors.New("draw: need at least two points")

	// ErrNegativeWidth is returned for a negative stroke or border
	// width.
	ErrNegativeWidth = errors.New("draw: negative width")

	// ErrNegativeRadius is returned for a negative circle radius.
	ErrNegativeRadius = errors.New("draw: negative radius")
)

// painter writes a single color through a Surface. It clips every
// write to the surface bounds and records the bounding box of the
// pixels it actually touches, which becomes the rectangle reported to
// the caller. Keeping the write path in one place separates pixel
// selection (the rasterizers) from compositing and clipping.
type painter struct {
	dst  surface.Surface
	c    color.RGBA
	w, h int

	touched                bool
	minX, minY, maxX, maxY int
}

func newPainter(dst surface.Surface, c color.RGBA) *painter {
	return &painter{
		dst: dst,
		c:   c,
		w:   dst.Width(),
		h:   dst.Height(),
	}
}

// set writes the draw color at (x, y), dropping out-of-bounds writes.
func (p *painter) set(x, y int) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.dst.Set(x, y, p.c)
	p.mark(x, y)
}

// blend mixes the draw color into the destination pixel with the
// given coverage fraction in [0, 1]. Coverage 1 is an opaque write;
// coverage 0 leaves the pixel untouched.
func (p *painter) blend(x, y int, cov float64) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h || cov <= 0 {
		return
	}
	if cov >= 1 {
		p.dst.Set(x, y, p.c)
		p.mark(x, y)
		return
	}
	bg := p.dst.Get(x, y)
	p.dst.Set(x, y, color.RGBA{
		R: mix(bg.R, p.c.R, cov),
		G: mix(bg.G, p.c.G, cov),
		B: mix(bg.B, p.c.B, cov),
		A: mix(bg.A, p.c.A, cov),
	})
	p.mark(x, y)
}

// mix interpolates a single channel from bg toward fg by cov,
// rounding to nearest.
func mix(bg, fg uint8, cov float64) uint8 {
	return uint8(float64(bg) + (float64(fg)-float64(bg))*cov + 0.5)
}

// fillRect writes the draw color to every pixel of r that lies on the
// surface. The input need not be normalized.
func (p *painter) fillRect(r geom.Rect) {
	r = r.Normalized().Intersect(geom.Rect{W: p.w, H: p.h})
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			p.dst.Set(x, y, p.c)
		}
	}
	p.mark(r.X, r.Y)
	p.mark(r.Right()-1, r.Bottom()-1)
}

func (p *painter) mark(x, y int) {
	if !p.touched {
		p.touched = true
		p.minX, p.maxX = x, x
		p.minY, p.maxY = y, y
		return
	}
	p.minX = min(p.minX, x)
	p.maxX = max(p.maxX, x)
	p.minY = min(p.minY, y)
	p.maxY = max(p.maxY, y)
}

// bounds returns the bounding box of all touched pixels, or a
// zero-size rectangle at the fallback point if every write was
// clipped away.
func (p *painter) bounds(fallback geom.Point) geom.Rect {
	if !p.touched {
		return geom.Rect{X: fallback.X, Y: fallback.Y}
	}
	return geom.Rect{
		X: p.minX,
		Y: p.minY,
		W: p.maxX - p.minX + 1,
		H: p.maxY - p.minY + 1,
	}
}
