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
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/LambdaGoblin/pygame/geom"
	"github.com/LambdaGoblin/pygame/surface"
)

// Anti-aliasing model:
//
// The line is stepped once per pixel along the dominant axis. At each
// step the pixel nearest the true (sub-pixel) line position receives
// the draw color at full opacity, and the minor-axis neighbor on the
// side the line leans toward is blended against the destination by
// the fractional distance. Forcing the nearest pixel to full coverage
// keeps every dominant-axis column (or row) saturated somewhere, so
// an anti-aliased line can never open a gap, and axis-aligned lines
// come out bit-exact along their whole length.
//
// Coverage fractions only affect blend weights, never pixel
// selection, so float arithmetic here cannot cause platform-dependent
// geometry.

// coverageEpsilon is the smallest coverage fraction worth blending;
// anything below it vanishes in 8-bit quantization.
const coverageEpsilon = 1.0 / 512

// AALine draws an anti-aliased line segment from p0 to p1, inclusive
// of both endpoints, and returns the bounding rectangle of the
// touched pixels. The effective width is always 1.
//
// Both endpoint pixels carry the draw color at full opacity, and
// every column (x-dominant) or row (y-dominant) along the segment
// contains at least one pixel of the exact draw color.
func AALine(dst surface.Surface, c color.RGBA, p0, p1 geom.Point) (geom.Rect, error) {
	p := newPainter(dst, c)
	aaLine(p, p0, p1)
	return p.bounds(p0), nil
}

func aaLine(p *painter, a, b geom.Point) {
	v0 := vec.Vec2{X: float64(a.X), Y: float64(a.Y)}
	v1 := vec.Vec2{X: float64(b.X), Y: float64(b.Y)}
	d := v1.Sub(v0)

	if d.X == 0 && d.Y == 0 {
		p.set(a.X, a.Y)
		return
	}

	if math.Abs(d.X) >= math.Abs(d.Y) {
		if v1.X < v0.X {
			v0, v1 = v1, v0
			d = d.Mul(-1)
		}
		grad := d.Y / d.X
		x0 := int(math.Round(v0.X))
		x1 := int(math.Round(v1.X))
		for x := x0; x <= x1; x++ {
			yf := v0.Y + grad*(float64(x)-v0.X)
			y := int(math.Round(yf))
			p.set(x, y)
			frac := yf - float64(y) // in [-0.5, 0.5)
			if frac > coverageEpsilon {
				p.blend(x, y+1, frac)
			} else if frac < -coverageEpsilon {
				p.blend(x, y-1, -frac)
			}
		}
	} else {
		if v1.Y < v0.Y {
			v0, v1 = v1, v0
			d = d.Mul(-1)
		}
		grad := d.X / d.Y
		y0 := int(math.Round(v0.Y))
		y1 := int(math.Round(v1.Y))
		for y := y0; y <= y1; y++ {
			xf := v0.X + grad*(float64(y)-v0.Y)
			x := int(math.Round(xf))
			p.set(x, y)
			frac := xf - float64(x)
			if frac > coverageEpsilon {
				p.blend(x+1, y, frac)
			} else if frac < -coverageEpsilon {
				p.blend(x-1, y, -frac)
			}
		}
	}
}
