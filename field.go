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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Kernel evaluates the summed influence field of a set of sources.
type Kernel interface {
	Sample(pos vec.Vec2, sources []vec.Vec2, cfg FieldConfig) float64
}

// distanceEpsilon keeps the inverse-square kernel finite at a source.
const distanceEpsilon = 1e-6

// InverseSquare is the classic metaball kernel used by the contour path.
// Each source contributes (Radius+Fusion)² / d², which is exactly 1 at
// distance Radius+Fusion from an isolated source.
type InverseSquare struct{}

// Sample implements [Kernel].
func (InverseSquare) Sample(pos vec.Vec2, sources []vec.Vec2, cfg FieldConfig) float64 {
	rr := cfg.Radius + cfg.Fusion
	rr2 := rr * rr

	var v float64
	for _, p := range sources {
		dx := pos.X - p.X
		dy := pos.Y - p.Y
		v += rr2 / (dx*dx + dy*dy + distanceEpsilon)
	}
	return v
}

// Gaussian is the smooth, blur-like kernel used by the direct raster
// strategy. Each source contributes exp(-d²/(2σ²)) with
// σ = Radius·(1+Fusion/120).
type Gaussian struct{}

// Sample implements [Kernel]. The full sum over all sources is returned.
func (g Gaussian) Sample(pos vec.Vec2, sources []vec.Vec2, cfg FieldConfig) float64 {
	return g.SampleBounded(pos, sources, cfg, math.Inf(1))
}

// SampleBounded is like Sample, but stops accumulating as soon as the sum
// exceeds limit. The result is then some value above limit.
func (Gaussian) SampleBounded(pos vec.Vec2, sources []vec.Vec2, cfg FieldConfig, limit float64) float64 {
	sigma := gaussianSigma(cfg)
	k := -1 / (2 * sigma * sigma)

	var v float64
	for _, p := range sources {
		dx := pos.X - p.X
		dy := pos.Y - p.Y
		v += math.Exp((dx*dx + dy*dy) * k)
		if v > limit {
			break
		}
	}
	return v
}

func gaussianSigma(cfg FieldConfig) float64 {
	return cfg.Radius * (1 + cfg.Fusion/120)
}

// saturationMargin is added to the iso-level to obtain the early exit limit
// for Gaussian sums. Above iso+margin a pixel is fully inside for every
// edge mode.
const saturationMargin = 1.5
