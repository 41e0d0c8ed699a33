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
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// RenderRasterMask renders the fused shape of points as a mask covering
// cfg.Bounds, one pixel per unit, with row 0 at Bounds.LLy. Covered pixels
// are painted with fg.
//
// With StrategyBlur, a disk of cfg.Radius is drawn for every point inside
// the bounds at 1/cfg.WorkingScale resolution. The disks are box-blurred
// with radius cfg.Fusion, thresholded according to cfg.IsoLevel and scaled
// back up with bilinear smoothing.
//
// With StrategyDirect, the Gaussian field is evaluated at the centre of
// every cfg.SamplingStride × cfg.SamplingStride block. Blocks with a value
// of at least cfg.IsoLevel are opaque; if cfg.SoftEdge is set, values in a
// band below the iso-level give partial alpha.
//
// An invalid configuration gives an error wrapping [ErrInvalidConfig].
// Without points the mask is fully transparent.
func RenderRasterMask(points []vec.Vec2, cfg RasterConfig, fg color.NRGBA) (*RasterMask, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := cfg.size()
	sources := finitePoints(points)
	if len(sources) == 0 {
		return newRasterMask(w, h), nil
	}

	var m *RasterMask
	switch cfg.Strategy {
	case StrategyDirect:
		m = renderDirect(sources, cfg, fg, w, h)
	default:
		m = renderBlur(sources, cfg, fg, w, h)
	}

	Logger().Debug("raster mask rendered",
		"strategy", cfg.Strategy,
		"width", w, "height", h,
		"sources", len(sources))
	return m, nil
}

// BlurThreshold maps an iso-level to the alpha threshold of the blur
// strategy: iso-levels 0.5 to 2.5 map linearly to 60 to 220, values outside
// this range are clamped. Higher iso-levels never lower the threshold.
func BlurThreshold(iso float64) uint8 {
	t := min(max((iso-0.5)/2, 0), 1)
	return uint8(math.Round(60 + t*160))
}

func renderBlur(sources []vec.Vec2, cfg RasterConfig, fg color.NRGBA, w, h int) *RasterMask {
	s := float64(cfg.WorkingScale)
	sw := max(1, w/cfg.WorkingScale)
	sh := max(1, h/cfg.WorkingScale)

	disks := &path.Data{}
	for _, p := range sources {
		if !insideBounds(p, cfg.Bounds) {
			continue
		}
		disks = appendDisk(disks, p, cfg.Radius)
	}

	alpha := make([]uint8, sw*sh)
	r := NewRasteriser(rect.Rect{URx: float64(sw), URy: float64(sh)})
	r.CTM = matrix.Matrix{1 / s, 0, 0, 1 / s, -cfg.Bounds.LLx / s, -cfg.Bounds.LLy / s}
	r.FillNonZero(disks, alphaSink(alpha, sw, 0, 0))

	blurred := BoxBlur(alpha, sw, sh, int(min(cfg.Fusion/s, MaxBlurRadius)))
	thr := BlurThreshold(cfg.IsoLevel)

	small := image.NewNRGBA(image.Rect(0, 0, sw, sh))
	for i, a := range blurred {
		if a < thr {
			continue
		}
		p := small.Pix[4*i : 4*i+4 : 4*i+4]
		p[0], p[1], p[2], p[3] = fg.R, fg.G, fg.B, 255
	}

	full := small
	if sw != w || sh != h {
		full = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.BiLinear.Scale(full, full.Bounds(), small, small.Bounds(), draw.Src, nil)
	}

	m := newRasterMask(w, h)
	for i := range w * h {
		m.setPixel(i, fg, full.Pix[4*i+3])
	}
	return m
}

func renderDirect(sources []vec.Vec2, cfg RasterConfig, fg color.NRGBA, w, h int) *RasterMask {
	m := newRasterMask(w, h)

	iso := cfg.IsoLevel
	limit := iso + saturationMargin
	band := 0.35 * (1 + 2*cfg.SmoothAmount)
	stride := cfg.SamplingStride
	var k Gaussian

	for by := 0; by < h; by += stride {
		bh := min(stride, h-by)
		for bx := 0; bx < w; bx += stride {
			bw := min(stride, w-bx)
			pos := vec.Vec2{
				X: cfg.Bounds.LLx + float64(bx) + float64(bw)/2,
				Y: cfg.Bounds.LLy + float64(by) + float64(bh)/2,
			}
			v := k.SampleBounded(pos, sources, cfg.FieldConfig, limit)

			var a uint8
			switch {
			case cfg.SoftEdge:
				t := min(max((v-(iso-band))/band, 0), 1)
				a = uint8(math.Round(t * 255))
			case v >= iso:
				a = 255
			}
			if a == 0 {
				continue
			}

			for y := by; y < by+bh; y++ {
				for x := bx; x < bx+bw; x++ {
					m.setPixel(y*w+x, fg, a)
				}
			}
		}
	}
	return m
}

func insideBounds(p vec.Vec2, b rect.Rect) bool {
	return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy
}
