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

// Package surface provides in-memory pixel buffers for the rasterizers
// in package draw.
//
// A Surface is a dumb grid of colored pixels. It knows nothing about
// shapes; the rasterizers compute pixel coordinates and write through
// Set, reading back through Get only for anti-aliased blending. Each
// concrete surface has a pixel Format that may quantize colors on
// write (a 16-bit surface stores only the high bits of each channel),
// so a Get after a Set returns a close, not necessarily bit-identical,
// color.
//
// A Surface is not safe for concurrent use. Concurrent draws to
// different surfaces are independent and safe.
package surface

import "image/color"

// Surface is the minimal pixel-addressable target required by the
// rasterizers.
//
// Get and Set outside the surface bounds are a zero-value read and a
// no-op write, matching the behavior of the standard library's image
// types. The rasterizers clip before writing, so out-of-bounds access
// is never an error.
type Surface interface {
	// Width returns the number of pixel columns.
	Width() int

	// Height returns the number of pixel rows.
	Height() int

	// Get returns the color stored at (x, y), after any quantization
	// the surface format applies.
	Get(x, y int) color.RGBA

	// Set stores c at (x, y), quantized to the surface format.
	Set(x, y int, c color.RGBA)
}
