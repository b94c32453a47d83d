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

// Ellipse draws the ellipse inscribed in bounds and returns the
// normalized bounds rectangle.
//
// With borderWidth 0 the ellipse is filled: every pixel whose center
// lies on or inside the inscribed ellipse (semi-axes W/2 and H/2,
// centered on the rectangle center) gets the draw color. With
// borderWidth >= 1 only the ring between the inscribed ellipse and an
// inner ellipse shrunk by borderWidth per axis is drawn; the interior
// stays untouched. A borderWidth at least as large as a semi-axis
// degenerates to the filled case. A negative borderWidth is
// ErrNegativeWidth.
//
// The extremal pixels of the outline touch the rectangle's edges at
// the midpoints of each side for every size down to 4×4.
func Ellipse(dst surface.Surface, c color.RGBA, bounds geom.Rect, borderWidth int) (geom.Rect, error) {
	if borderWidth < 0 {
		return geom.Rect{}, fmt.Errorf("border width %d: %w", borderWidth, ErrNegativeWidth)
	}
	r := bounds.Normalized()
	p := newPainter(dst, c)
	ellipseRing(p, r, borderWidth)
	return r, nil
}

// Circle draws the circle of the given radius centered at center: the
// ellipse inscribed in the square (cx-r, cy-r, 2r, 2r). Border
// semantics match Ellipse. A radius of 0 draws a single pixel; a
// negative radius is ErrNegativeRadius.
func Circle(dst surface.Surface, c color.RGBA, center geom.Point, radius, borderWidth int) (geom.Rect, error) {
	if radius < 0 {
		return geom.Rect{}, fmt.Errorf("radius %d: %w", radius, ErrNegativeRadius)
	}
	if borderWidth < 0 {
		return geom.Rect{}, fmt.Errorf("border width %d: %w", borderWidth, ErrNegativeWidth)
	}
	p := newPainter(dst, c)
	if radius == 0 {
		p.set(center.X, center.Y)
		return geom.Rect{X: center.X, Y: center.Y, W: 1, H: 1}, nil
	}
	r := geom.Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}
	ellipseRing(p, r, borderWidth)
	return r, nil
}

// ellipseRing rasterizes the ellipse inscribed in r by testing every
// pixel center in the bounding rectangle against the normalized
// ellipse equation. For borderWidth > 0 a second, inner equation
// carves out the interior.
func ellipseRing(p *painter, r geom.Rect, borderWidth int) {
	if r.W == 0 || r.H == 0 {
		return
	}

	a := float64(r.W) / 2
	b := float64(r.H) / 2
	cx := float64(r.X) + a
	cy := float64(r.Y) + b

	innerA := a - float64(borderWidth)
	innerB := b - float64(borderWidth)
	hollow := borderWidth > 0 && innerA > 0 && innerB > 0

	for y := r.Y; y < r.Bottom(); y++ {
		py := float64(y) + 0.5 - cy
		for x := r.X; x < r.Right(); x++ {
			px := float64(x) + 0.5 - cx
			if !insideEllipse(px, py, a, b) {
				continue
			}
			if hollow && strictlyInsideEllipse(px, py, innerA, innerB) {
				continue
			}
			p.set(x, y)
		}
	}
}

// insideEllipse reports whether the point is on or inside the ellipse
// with semi-axes a and b centered at the origin.
func insideEllipse(px, py, a, b float64) bool {
	nx := px / a
	ny := py / b
	return nx*nx+ny*ny <= 1
}

// strictlyInsideEllipse excludes the boundary, so border rings keep
// the pixels that land exactly on the inner ellipse.
func strictlyInsideEllipse(px, py, a, b float64) bool {
	nx := px / a
	ny := py / b
	return nx*nx+ny*ny < 1
}
