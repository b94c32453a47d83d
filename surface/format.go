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

package surface

import "image/color"

// Format describes how a single pixel is packed into bytes. The zero
// value is not usable; use one of the package-level format values.
//
// Formats without alpha discard the alpha channel on write and report
// full opacity on read. Formats with fewer than 8 bits per channel
// expand the stored bits by replication on read, so that 0x00 and 0xFF
// survive a round trip exactly.
type Format struct {
	name  string
	size  int // bytes per pixel
	alpha bool
	write func(p []byte, c color.RGBA)
	read  func(p []byte) color.RGBA
}

// String returns the format name.
func (f Format) String() string { return f.name }

// BytesPerPixel returns the storage size of one pixel.
func (f Format) BytesPerPixel() int { return f.size }

// HasAlpha reports whether the format stores an alpha channel.
func (f Format) HasAlpha() bool { return f.alpha }

var (
	// RGBA8888 stores four 8-bit channels. Colors round-trip exactly.
	RGBA8888 = Format{
		name:  "RGBA8888",
		size:  4,
		alpha: true,
		write: func(p []byte, c color.RGBA) {
			p[0] = c.R
			p[1] = c.G
			p[2] = c.B
			p[3] = c.A
		},
		read: func(p []byte) color.RGBA {
			return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
		},
	}

	// XRGB8888 stores three 8-bit channels in a 32-bit pixel and
	// ignores alpha; reads report full opacity.
	XRGB8888 = Format{
		name: "XRGB8888",
		size: 4,
		write: func(p []byte, c color.RGBA) {
			p[0] = c.R
			p[1] = c.G
			p[2] = c.B
			p[3] = 0
		},
		read: func(p []byte) color.RGBA {
			return color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xFF}
		},
	}

	// RGB565 stores 5-6-5 bits per channel in a 16-bit pixel
	// (little-endian) and ignores alpha.
	RGB565 = Format{
		name: "RGB565",
		size: 2,
		write: func(p []byte, c color.RGBA) {
			v := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
			p[0] = byte(v)
			p[1] = byte(v >> 8)
		},
		read: func(p []byte) color.RGBA {
			v := uint16(p[0]) | uint16(p[1])<<8
			r := uint8(v >> 11)
			g := uint8(v >> 5 & 0x3F)
			b := uint8(v & 0x1F)
			return color.RGBA{
				R: r<<3 | r>>2,
				G: g<<2 | g>>4,
				B: b<<3 | b>>2,
				A: 0xFF,
			}
		},
	}

	// ARGB4444 stores four 4-bit channels in a 16-bit pixel
	// (little-endian).
	ARGB4444 = Format{
		name:  "ARGB4444",
		size:  2,
		alpha: true,
		write: func(p []byte, c color.RGBA) {
			v := uint16(c.A>>4)<<12 | uint16(c.R>>4)<<8 | uint16(c.G>>4)<<4 | uint16(c.B>>4)
			p[0] = byte(v)
			p[1] = byte(v >> 8)
		},
		read: func(p []byte) color.RGBA {
			v := uint16(p[0]) | uint16(p[1])<<8
			// 4-bit values expand by replication: x * 0x11
			return color.RGBA{
				A: uint8(v>>12) * 0x11,
				R: uint8(v>>8&0xF) * 0x11,
				G: uint8(v>>4&0xF) * 0x11,
				B: uint8(v&0xF) * 0x11,
			}
		},
	}
)
