// seehuhn.de/go/metaball - metaball silhouettes from point sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package metaball

import (
	"image"
	"image/color"
)

// RasterMask is the output of the raster path.
type RasterMask struct {
	Width  int
	Height int

	// Alpha holds one coverage byte per pixel in row-major order,
	// 0 for transparent and 255 for opaque.
	Alpha []uint8

	// Pix holds the coloured mask as non-premultiplied RGBA, four bytes
	// per pixel in row-major order.
	Pix []uint8
}

// newRasterMask allocates a fully transparent mask.
func newRasterMask(w, h int) *RasterMask {
	return &RasterMask{
		Width:  w,
		Height: h,
		Alpha:  make([]uint8, w*h),
		Pix:    make([]uint8, 4*w*h),
	}
}

// setPixel stores colour c with alpha a at pixel index i.
func (m *RasterMask) setPixel(i int, c color.NRGBA, a uint8) {
	m.Alpha[i] = a
	if a == 0 {
		return
	}
	p := m.Pix[4*i : 4*i+4 : 4*i+4]
	p[0], p[1], p[2] = c.R, c.G, c.B
	p[3] = uint8((uint32(a)*uint32(c.A) + 127) / 255)
}

// AlphaAt returns the alpha value at (x, y), or 0 outside the mask.
func (m *RasterMask) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Alpha[y*m.Width+x]
}

// Covered returns the number of pixels with alpha at least threshold.
func (m *RasterMask) Covered(threshold uint8) int {
	n := 0
	for _, a := range m.Alpha {
		if a >= threshold {
			n++
		}
	}
	return n
}

// Image returns the coloured mask as an image sharing the Pix buffer.
func (m *RasterMask) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: 4 * m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
