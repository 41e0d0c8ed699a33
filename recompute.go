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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mode selects the output of [Recompute].
type Mode int

const (
	// ModeContour produces polygons.
	ModeContour Mode = iota

	// ModeRaster produces a mask.
	ModeRaster
)

func (m Mode) String() string {
	switch m {
	case ModeContour:
		return "contour"
	case ModeRaster:
		return "raster"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Symmetry describes the mirror axes applied to the user's points.
type Symmetry struct {
	Axes   Axis
	Center vec.Vec2
}

// PipelineInput is everything [Recompute] needs. The value is not modified.
type PipelineInput struct {
	// Points are the user-placed sources, before symmetry expansion.
	Points []vec.Vec2

	Params Params

	// Symmetry is applied on top of the SymmetryV/SymmetryH flags of
	// Params. The Center is used for both; the zero value selects the
	// centre of Bounds.
	Symmetry Symmetry

	// Bounds is the canvas area.
	Bounds rect.Rect

	// CellSize is the layout unit the grid step and simplification
	// tolerance are derived from.
	CellSize float64

	Mode Mode

	// Strategy, SoftEdge and Foreground apply to ModeRaster only.
	Strategy   Strategy
	SoftEdge   bool
	Foreground color.NRGBA

	// Interactive lowers the raster quality while a gesture is in
	// progress.
	Interactive bool
}

// PipelineOutput holds the result of [Recompute]. Exactly one of Polygons
// and Mask is set, according to the mode. Sources lists the field sources
// after symmetry expansion.
type PipelineOutput struct {
	Sources  []vec.Vec2
	Polygons []Polygon
	Mask     *RasterMask
}

// Recompute runs the pipeline for one frame.
//
// The parameters are validated, the points are expanded by the enabled
// symmetry axes (about the centre of in.Bounds unless in.Symmetry.Center
// is set), and then either [ExtractPolygons] or [RenderRasterMask] is
// called with settings derived from in.Params:
//   - the grid step is GridStep(in.CellSize, Resolution),
//   - the simplification tolerance is SimplifyEpsilon(Simplify, in.CellSize),
//   - the number of smoothing passes is SmoothIterations(Smooth),
//   - the raster working scale and sampling stride come from RasterQuality.
func Recompute(in PipelineInput) (PipelineOutput, error) {
	if err := in.Params.Validate(); err != nil {
		return PipelineOutput{}, err
	}
	if !isFinite(in.CellSize) || in.CellSize <= 0 {
		return PipelineOutput{}, fmt.Errorf("%w: cell size %g must be positive", ErrInvalidConfig, in.CellSize)
	}

	p := in.Params
	axes := in.Symmetry.Axes | p.Axes()
	center := in.Symmetry.Center
	if center == (vec.Vec2{}) {
		center = vec.Vec2{
			X: (in.Bounds.LLx + in.Bounds.URx) / 2,
			Y: (in.Bounds.LLy + in.Bounds.URy) / 2,
		}
	}
	out := PipelineOutput{
		Sources: ExpandAll(in.Points, axes, center),
	}

	switch in.Mode {
	case ModeContour:
		cfg := ContourConfig{
			FieldConfig: p.Field(),
			Grid: SampleGrid{
				Bounds: in.Bounds,
				Step:   GridStep(in.CellSize, p.Resolution),
			},
			SimplifyEps:      SimplifyEpsilon(p.Simplify, in.CellSize),
			SmoothAmount:     p.Smooth,
			SmoothIterations: SmoothIterations(p.Smooth),
		}
		polys, err := ExtractPolygons(out.Sources, cfg)
		if err != nil {
			return PipelineOutput{}, err
		}
		out.Polygons = polys

	case ModeRaster:
		scale, stride := RasterQuality(p.Resolution, in.Interactive)
		cfg := RasterConfig{
			FieldConfig:    p.Field(),
			Bounds:         in.Bounds,
			WorkingScale:   scale,
			SamplingStride: stride,
			Strategy:       in.Strategy,
			SoftEdge:       in.SoftEdge,
			SmoothAmount:   p.Smooth,
		}
		m, err := RenderRasterMask(out.Sources, cfg, in.Foreground)
		if err != nil {
			return PipelineOutput{}, err
		}
		out.Mask = m

	default:
		return PipelineOutput{}, fmt.Errorf("%w: unknown mode %s", ErrInvalidConfig, in.Mode)
	}

	return out, nil
}
