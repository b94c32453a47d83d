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

// Rect draws r filled (borderWidth 0) or as four border bands of the
// given thickness inset from r's edges, and returns the normalized
// input rectangle. The outermost pixel ring of the border coincides
// with r's boundary; the border never extends outside r, and the
// interior beyond the border thickness stays untouched.
//
// A rectangle only one pixel tall or wide draws as a full
// one-pixel-thick line. If twice the border width reaches either
// dimension the bands would overlap, so the call degenerates to a
// fill. A negative borderWidth is ErrNegativeWidth.
func Rect(dst surface.Surface, c color.RGBA, r geom.Rect, borderWidth int) (geom.Rect, error) {
	if borderWidth < 0 {
		return geom.Rect{}, fmt.Errorf("border width %d: %w", borderWidth, ErrNegativeWidth)
	}
	r = r.Normalized()
	p := newPainter(dst, c)

	if borderWidth == 0 || 2*borderWidth >= r.W || 2*borderWidth >= r.H {
		p.fillRect(r)
		return r, nil
	}

	bw := borderWidth
	p.fillRect(geom.Rect{X: r.X, Y: r.Y, W: r.W, H: bw})                       // top
	p.fillRect(geom.Rect{X: r.X, Y: r.Bottom() - bw, W: r.W, H: bw})           // bottom
	p.fillRect(geom.Rect{X: r.X, Y: r.Y + bw, W: bw, H: r.H - 2*bw})           // left
	p.fillRect(geom.Rect{X: r.Right() - bw, Y: r.Y + bw, W: bw, H: r.H - 2*bw}) // right
	return r, nil
}
