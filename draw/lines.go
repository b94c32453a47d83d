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

// Lines draws aliased segments connecting consecutive points; with
// closed it also connects the last point back to the first. It
// returns the union bounding rectangle of all segments.
//
// Each vertex shared by two segments is written by both, so the path
// is gap-free regardless of segment direction. Fewer than two points
// is ErrTooFewPoints. Width semantics match Line. Two points with
// closed draw the same segment twice; color writes are idempotent, so
// the result is identical to a single segment.
func Lines(dst surface.Surface, c color.RGBA, closed bool, points []geom.Point, width int) (geom.Rect, error) {
	if err := checkPolyline(points, width); err != nil {
		return geom.Rect{}, err
	}
	if width == 0 {
		width = 1
	}
	p := newPainter(dst, c)
	for i := 0; i+1 < len(points); i++ {
		lineBand(p, points[i], points[i+1], width)
	}
	if closed {
		lineBand(p, points[len(points)-1], points[0], width)
	}
	return p.bounds(points[0]), nil
}

// AALines draws anti-aliased segments connecting consecutive points;
// with closed it also connects the last point back to the first. It
// returns the union bounding rectangle of all segments. Fewer than
// two points is ErrTooFewPoints.
func AALines(dst surface.Surface, c color.RGBA, closed bool, points []geom.Point) (geom.Rect, error) {
	if err := checkPolyline(points, 1); err != nil {
		return geom.Rect{}, err
	}
	p := newPainter(dst, c)
	for i := 0; i+1 < len(points); i++ {
		aaLine(p, points[i], points[i+1])
	}
	if closed {
		aaLine(p, points[len(points)-1], points[0])
	}
	return p.bounds(points[0]), nil
}

func checkPolyline(points []geom.Point, width int) error {
	if len(points) < 2 {
		return fmt.Errorf("%d points: %w", len(points), ErrTooFewPoints)
	}
	if width < 0 {
		return fmt.Errorf("line width %d: %w", width, ErrNegativeWidth)
	}
	return nil
}
