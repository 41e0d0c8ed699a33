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
	"math"
)

// Params collects every user-facing option of the pipeline. The zero value
// is not useful; start from DefaultParams.
type Params struct {
	// Radius of a single source, 4 to 140, default 40.
	Radius float64 `json:"radius"`

	// Fusion distance, 0 to 160, default 30.
	Fusion float64 `json:"fusion"`

	// IsoLevel threshold, 0.5 to 2.5, default 1.
	IsoLevel float64 `json:"isoLevel"`

	// Resolution trades quality for speed, 4 to 48, default 24.
	// It sets the contour grid step (see GridStep) and the raster quality
	// (see RasterQuality).
	Resolution int `json:"resolution"`

	// Simplify level of the contour path, 0 to 12, default 3.
	// See SimplifyEpsilon.
	Simplify int `json:"simplify"`

	// Smooth amount, 0 to 1, default 0.5. See SmoothIterations.
	Smooth float64 `json:"smooth"`

	// SymmetryV and SymmetryH enable mirroring across the vertical and
	// horizontal centre line. Both default to false.
	SymmetryV bool `json:"symmetryV"`
	SymmetryH bool `json:"symmetryH"`
}

// Ranges of the Params fields.
const (
	MinRadius     = 4.0
	MaxRadius     = 140.0
	MinFusion     = 0.0
	MaxFusion     = 160.0
	MinIsoLevel   = 0.5
	MaxIsoLevel   = 2.5
	MinResolution = 4
	MaxResolution = 48
	MinSimplify   = 0
	MaxSimplify   = 12
)

// DefaultParams returns the default settings.
func DefaultParams() Params {
	return Params{
		Radius:     40,
		Fusion:     30,
		IsoLevel:   1,
		Resolution: 24,
		Simplify:   3,
		Smooth:     0.5,
	}
}

// Clamp returns a copy of p with every field forced into its range.
// Non-finite values are replaced by the corresponding default.
func (p Params) Clamp() Params {
	def := DefaultParams()
	p.Radius = clampFloat(p.Radius, MinRadius, MaxRadius, def.Radius)
	p.Fusion = clampFloat(p.Fusion, MinFusion, MaxFusion, def.Fusion)
	p.IsoLevel = clampFloat(p.IsoLevel, MinIsoLevel, MaxIsoLevel, def.IsoLevel)
	p.Smooth = clampFloat(p.Smooth, 0, 1, def.Smooth)
	p.Resolution = min(max(p.Resolution, MinResolution), MaxResolution)
	p.Simplify = min(max(p.Simplify, MinSimplify), MaxSimplify)
	return p
}

// Validate reports the first field outside its range.
func (p Params) Validate() error {
	switch {
	case !inRange(p.Radius, MinRadius, MaxRadius):
		return fmt.Errorf("%w: radius %g not in [%g, %g]", ErrInvalidConfig, p.Radius, MinRadius, MaxRadius)
	case !inRange(p.Fusion, MinFusion, MaxFusion):
		return fmt.Errorf("%w: fusion %g not in [%g, %g]", ErrInvalidConfig, p.Fusion, MinFusion, MaxFusion)
	case !inRange(p.IsoLevel, MinIsoLevel, MaxIsoLevel):
		return fmt.Errorf("%w: iso level %g not in [%g, %g]", ErrInvalidConfig, p.IsoLevel, MinIsoLevel, MaxIsoLevel)
	case !inRange(p.Smooth, 0, 1):
		return fmt.Errorf("%w: smooth %g not in [0, 1]", ErrInvalidConfig, p.Smooth)
	case p.Resolution < MinResolution || p.Resolution > MaxResolution:
		return fmt.Errorf("%w: resolution %d not in [%d, %d]", ErrInvalidConfig, p.Resolution, MinResolution, MaxResolution)
	case p.Simplify < MinSimplify || p.Simplify > MaxSimplify:
		return fmt.Errorf("%w: simplify %d not in [%d, %d]", ErrInvalidConfig, p.Simplify, MinSimplify, MaxSimplify)
	}
	return nil
}

// Field returns the field parameters.
func (p Params) Field() FieldConfig {
	return FieldConfig{Radius: p.Radius, Fusion: p.Fusion, IsoLevel: p.IsoLevel}
}

// Axes returns the enabled mirror axes.
func (p Params) Axes() Axis {
	var a Axis
	if p.SymmetryV {
		a |= AxisVertical
	}
	if p.SymmetryH {
		a |= AxisHorizontal
	}
	return a
}

func clampFloat(x, lo, hi, def float64) float64 {
	if !isFinite(x) {
		return def
	}
	return math.Min(math.Max(x, lo), hi)
}

func inRange(x, lo, hi float64) bool {
	return isFinite(x) && x >= lo && x <= hi
}
