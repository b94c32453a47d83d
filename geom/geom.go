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

// Package geom provides the integer pixel geometry shared by the
// rasterizers: points and normalized axis-aligned rectangles.
//
// It is patterned after image.Point and image.Rectangle, but uses the
// (x, y, width, height) representation with inclusive pixel semantics:
// a 1×1 rectangle covers exactly one pixel, and a rectangle built from
// two endpoints covers both of them.
package geom

import "golang.org/x/exp/constraints"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in integer pixel units. The stored
// origin is the top-left corner; W and H are non-negative for every
// rectangle obtained through R, FromPoints, or Normalized.
//
// A rectangle with W == 1 or H == 1 is a valid one-pixel-thick band,
// not a degenerate no-op.
type Rect struct {
	X, Y, W, H int
}

// R returns the normalized rectangle with the given origin and size.
// Negative width or height moves the origin so that the covered area
// is unchanged.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}.Normalized()
}

// FromPoints returns the minimal rectangle covering both pixels,
// inclusive of the endpoints. The point order does not matter.
func FromPoints(p0, p1 Point) Rect {
	x0, x1 := minmax(p0.X, p1.X)
	y0, y1 := minmax(p0.Y, p1.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Normalized returns the rectangle with non-negative width and height,
// moving the origin so that the covered area is unchanged.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Right returns the exclusive right edge, r.X+r.W.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge, r.Y+r.H.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p is a pixel inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := min(r.X, s.X)
	y0 := min(r.Y, s.Y)
	x1 := max(r.Right(), s.Right())
	y1 := max(r.Bottom(), s.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the largest rectangle contained in both r and s.
// If the rectangles do not overlap, the result is empty.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.Right(), s.Right())
	y1 := min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
