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
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/LambdaGoblin/pygame/draw"
	"github.com/LambdaGoblin/pygame/geom"
	"github.com/LambdaGoblin/pygame/surface"
)

type linesDrawer struct {
	name string
	draw func(dst surface.Surface, c color.RGBA, closed bool, points []geom.Point) (geom.Rect, error)
}

var linesDrawers = []linesDrawer{
	{"lines", func(dst surface.Surface, c color.RGBA, closed bool, points []geom.Point) (geom.Rect, error) {
		return draw.Lines(dst, c, closed, points, 1)
	}},
	{"aalines", draw.AALines},
}

// borderTrace returns the four surface corners in drawing order.
func borderTrace(w, h int) []geom.Point {
	return []geom.Point{
		{X: 0, Y: 0},
		{X: w - 1, Y: 0},
		{X: w - 1, Y: h - 1},
		{X: 0, Y: h - 1},
	}
}

// TestLinesBorderColor traces a closed polyline around the surface
// border and requires all four border arrays to hold exactly the draw
// color, for every color, size, and format combination — both gap
// freedom and color exactness at once.
func TestLinesBorderColor(t *testing.T) {
	for _, d := range linesDrawers {
		for _, size := range testSizes {
			for _, format := range testFormats {
				name := fmt.Sprintf("%s_%dx%d_%v", d.name, size, size, format)
				t.Run(name, func(t *testing.T) {
					for _, c := range primaries {
						s := surface.New(format, size, size)
						_, err := d.draw(s, c, true, borderTrace(size, size))
						require.NoError(t, err)
						want := withAlpha(c, format)
						for i, border := range borderValues(s) {
							require.True(t, allColor(border[:], want),
								"border %d not uniformly %v", i, want)
						}
					}
				})
			}
		}
	}
}

// TestLinesUnionRect checks the reported rectangle is the union of
// all segment bounding boxes.
func TestLinesUnionRect(t *testing.T) {
	s := surface.New(surface.XRGB8888, 40, 40)
	c := colornames.Red
	points := []geom.Point{{X: 5, Y: 5}, {X: 20, Y: 5}, {X: 20, Y: 15}}

	drawn, err := draw.Lines(s, c, false, points, 1)
	require.NoError(t, err)
	require.Equal(t, geom.Rect{X: 5, Y: 5, W: 16, H: 11}, drawn)

	// Closing the path adds the diagonal back to the first point but
	// cannot grow the union here.
	s2 := surface.New(surface.XRGB8888, 40, 40)
	drawn, err = draw.Lines(s2, c, true, points, 1)
	require.NoError(t, err)
	require.Equal(t, geom.Rect{X: 5, Y: 5, W: 16, H: 11}, drawn)
}

// TestLinesSharedVertex checks the continuity contract: the vertex
// where two segments meet is drawn no matter how the segments round.
func TestLinesSharedVertex(t *testing.T) {
	for _, d := range linesDrawers {
		t.Run(d.name, func(t *testing.T) {
			s := surface.New(surface.RGBA8888, 30, 30)
			c := colornames.White
			points := []geom.Point{{X: 3, Y: 20}, {X: 14, Y: 5}, {X: 26, Y: 22}}
			_, err := d.draw(s, c, false, points)
			require.NoError(t, err)
			for _, p := range points {
				require.Equal(t, c, s.Get(p.X, p.Y), "vertex %v", p)
			}
		})
	}
}

// TestLinesClosedTwoPoints draws a closed two-point polyline, which
// retraces the same segment; writes are idempotent so the result
// matches the single segment.
func TestLinesClosedTwoPoints(t *testing.T) {
	s := surface.New(surface.XRGB8888, 20, 20)
	c := colornames.Blue
	drawn, err := draw.Lines(s, c, true, []geom.Point{{X: 5, Y: 5}, {X: 10, Y: 5}}, 1)
	require.NoError(t, err)
	require.Equal(t, geom.Rect{X: 5, Y: 5, W: 6, H: 1}, drawn)
	for x := 5; x <= 10; x++ {
		require.Equal(t, c, s.Get(x, 5))
	}
	require.NotEqual(t, c, s.Get(4, 5))
	require.NotEqual(t, c, s.Get(11, 5))
}

// TestLinesErrors exercises the caller contract violations.
func TestLinesErrors(t *testing.T) {
	s := surface.New(surface.XRGB8888, 10, 10)
	c := colornames.Red

	_, err := draw.Lines(s, c, false, []geom.Point{{X: 1, Y: 1}}, 1)
	require.ErrorIs(t, err, draw.ErrTooFewPoints)

	_, err = draw.Lines(s, c, false, nil, 1)
	require.ErrorIs(t, err, draw.ErrTooFewPoints)

	_, err = draw.AALines(s, c, true, []geom.Point{{X: 1, Y: 1}})
	require.ErrorIs(t, err, draw.ErrTooFewPoints)

	_, err = draw.Lines(s, c, false, []geom.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}, -2)
	require.ErrorIs(t, err, draw.ErrNegativeWidth)

	// The surface stays untouched after a rejected call.
	for y := range 10 {
		for x := range 10 {
			require.Equal(t, color.RGBA{A: 255}, s.Get(x, y))
		}
	}
}
