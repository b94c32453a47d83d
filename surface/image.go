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

import (
	"image"
	"image/color"
)

// Image is an in-memory Surface backed by a packed byte buffer with a
// fixed pixel Format. It also implements image.Image, so it can be
// handed directly to image/png and friends.
type Image struct {
	format Format
	w, h   int
	stride int // bytes per row
	pix    []byte
}

// New returns a zero-initialized surface of the given size. Negative
// dimensions are treated as zero.
func New(f Format, w, h int) *Image {
	w = max(w, 0)
	h = max(h, 0)
	stride := w * f.size
	return &Image{
		format: f,
		w:      w,
		h:      h,
		stride: stride,
		pix:    make([]byte, stride*h),
	}
}

// Width returns the number of pixel columns.
func (img *Image) Width() int { return img.w }

// Height returns the number of pixel rows.
func (img *Image) Height() int { return img.h }

// Format returns the pixel format of the surface.
func (img *Image) Format() Format { return img.format }

// Get returns the color stored at (x, y). Outside the surface bounds
// it returns the zero color.
func (img *Image) Get(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= img.w || y >= img.h {
		return color.RGBA{}
	}
	off := y*img.stride + x*img.format.size
	return img.format.read(img.pix[off:])
}

// Set stores c at (x, y), quantized to the surface format. Writes
// outside the surface bounds are dropped.
func (img *Image) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= img.w || y >= img.h {
		return
	}
	off := y*img.stride + x*img.format.size
	img.format.write(img.pix[off:], c)
}

// Fill sets every pixel of the surface to c.
func (img *Image) Fill(c color.RGBA) {
	if img.w == 0 || img.h == 0 {
		return
	}

	// Encode one pixel, then replicate it across the first row and
	// copy the row down the buffer.
	img.format.write(img.pix, c)
	px := img.format.size
	for off := px; off < img.stride; off *= 2 {
		copy(img.pix[off:img.stride], img.pix[:off])
	}
	for y := 1; y < img.h; y++ {
		copy(img.pix[y*img.stride:(y+1)*img.stride], img.pix[:img.stride])
	}
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.w, img.h) }

// At implements image.Image.
func (img *Image) At(x, y int) color.Color { return img.Get(x, y) }

var (
	_ Surface     = (*Image)(nil)
	_ image.Image = (*Image)(nil)
)
