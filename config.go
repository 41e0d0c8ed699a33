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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// ErrInvalidConfig is returned (wrapped) when a configuration value is out
// of range or not finite. Callers are expected to clamp their inputs before
// calling into the package; see [Params.Clamp].
var ErrInvalidConfig = errors.New("metaball: invalid configuration")

// Limits on the work a single call may request.
const (
	// MaxGridNodes is the maximum number of field samples of a SampleGrid.
	MaxGridNodes = 1 << 24

	// MaxMaskPixels is the maximum number of pixels of a raster mask.
	MaxMaskPixels = 1 << 26
)

// FieldConfig holds the parameters of the scalar field.
type FieldConfig struct {
	// Radius is the nominal radius of a single source. Must be > 0.
	Radius float64

	// Fusion widens the falloff so that neighbouring sources merge earlier.
	// Must be >= 0.
	Fusion float64

	// IsoLevel is the threshold separating inside (>= IsoLevel) from
	// outside. Must be > 0.
	IsoLevel float64
}

// Validate reports whether all fields are finite and within range.
func (c FieldConfig) Validate() error {
	switch {
	case !isFinite(c.Radius) || c.Radius <= 0:
		return fmt.Errorf("%w: radius %g must be positive", ErrInvalidConfig, c.Radius)
	case !isFinite(c.Fusion) || c.Fusion < 0:
		return fmt.Errorf("%w: fusion %g must be non-negative", ErrInvalidConfig, c.Fusion)
	case !isFinite(c.IsoLevel) || c.IsoLevel <= 0:
		return fmt.Errorf("%w: iso level %g must be positive", ErrInvalidConfig, c.IsoLevel)
	}
	return nil
}

// SampleGrid is a regular sampling lattice over an axis-aligned region.
// LLx/LLy of Bounds is the minimum corner; y grows downwards.
type SampleGrid struct {
	Bounds rect.Rect
	Step   float64
}

// Validate checks that the step is positive, the bounds are a finite,
// non-empty rectangle and the grid has at most MaxGridNodes nodes.
func (g SampleGrid) Validate() error {
	if !isFinite(g.Step) || g.Step <= 0 {
		return fmt.Errorf("%w: grid step %g must be positive", ErrInvalidConfig, g.Step)
	}
	if err := validBounds(g.Bounds); err != nil {
		return err
	}
	cols := math.Ceil((g.Bounds.URx - g.Bounds.LLx) / g.Step)
	rows := math.Ceil((g.Bounds.URy - g.Bounds.LLy) / g.Step)
	if n := (cols + 1) * (rows + 1); !(n <= MaxGridNodes) {
		return fmt.Errorf("%w: grid of %gx%g cells is too large", ErrInvalidConfig, cols, rows)
	}
	return nil
}

// Dims returns the number of grid cells in x and y direction.
func (g SampleGrid) Dims() (cols, rows int) {
	cols = int(math.Ceil((g.Bounds.URx - g.Bounds.LLx) / g.Step))
	rows = int(math.Ceil((g.Bounds.URy - g.Bounds.LLy) / g.Step))
	return cols, rows
}

// ContourConfig configures [ExtractPolygons].
type ContourConfig struct {
	FieldConfig

	// Grid is the region sampled by marching squares.
	Grid SampleGrid

	// SimplifyEps is the RDP tolerance. Values up to 0.01 disable
	// simplification. See [SimplifyEpsilon].
	SimplifyEps float64

	// SmoothAmount in [0, 1] sets the Chaikin cut ratio. Zero disables
	// smoothing.
	SmoothAmount float64

	// SmoothIterations is the number of Chaikin passes, normally
	// SmoothIterations(SmoothAmount).
	SmoothIterations int

	// Kernel evaluates the field. Nil selects InverseSquare.
	Kernel Kernel
}

// Validate checks the field parameters, the grid and the post-processing
// options.
func (c ContourConfig) Validate() error {
	if err := c.FieldConfig.Validate(); err != nil {
		return err
	}
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if !isFinite(c.SimplifyEps) || c.SimplifyEps < 0 {
		return fmt.Errorf("%w: simplify tolerance %g", ErrInvalidConfig, c.SimplifyEps)
	}
	if !isFinite(c.SmoothAmount) || c.SmoothAmount < 0 || c.SmoothAmount > 1 {
		return fmt.Errorf("%w: smooth amount %g not in [0, 1]", ErrInvalidConfig, c.SmoothAmount)
	}
	if c.SmoothIterations < 0 {
		return fmt.Errorf("%w: %d smoothing iterations", ErrInvalidConfig, c.SmoothIterations)
	}
	return nil
}

// Strategy selects how [RenderRasterMask] builds the mask.
type Strategy int

const (
	// StrategyBlur rasterises one disk per source, box-blurs the result and
	// thresholds it.
	StrategyBlur Strategy = iota

	// StrategyDirect evaluates the Gaussian field once per pixel block.
	StrategyDirect
)

func (s Strategy) String() string {
	switch s {
	case StrategyBlur:
		return "blur"
	case StrategyDirect:
		return "direct"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// RasterConfig configures [RenderRasterMask].
type RasterConfig struct {
	FieldConfig

	// Bounds is the region covered by the mask, one pixel per unit.
	Bounds rect.Rect

	// WorkingScale divides the resolution used by the blur strategy.
	// Must be >= 1; 1 means full resolution.
	WorkingScale int

	// SamplingStride is the block size, in pixels, of the direct strategy.
	// Must be >= 1.
	SamplingStride int

	Strategy Strategy

	// SoftEdge makes the direct strategy produce anti-aliased alpha values
	// in a band below the iso-level.
	SoftEdge bool

	// SmoothAmount in [0, 1] widens the soft edge band.
	SmoothAmount float64
}

// Validate checks the field parameters and the raster options.
func (c RasterConfig) Validate() error {
	if err := c.FieldConfig.Validate(); err != nil {
		return err
	}
	if err := validBounds(c.Bounds); err != nil {
		return err
	}
	w := math.Ceil(c.Bounds.URx - c.Bounds.LLx)
	h := math.Ceil(c.Bounds.URy - c.Bounds.LLy)
	if n := w * h; !(n <= MaxMaskPixels) {
		return fmt.Errorf("%w: mask of %gx%g pixels is too large", ErrInvalidConfig, w, h)
	}
	if c.WorkingScale < 1 {
		return fmt.Errorf("%w: working scale %d must be at least 1", ErrInvalidConfig, c.WorkingScale)
	}
	if c.SamplingStride < 1 {
		return fmt.Errorf("%w: sampling stride %d must be at least 1", ErrInvalidConfig, c.SamplingStride)
	}
	if c.Strategy != StrategyBlur && c.Strategy != StrategyDirect {
		return fmt.Errorf("%w: unknown strategy %s", ErrInvalidConfig, c.Strategy)
	}
	if !isFinite(c.SmoothAmount) || c.SmoothAmount < 0 || c.SmoothAmount > 1 {
		return fmt.Errorf("%w: smooth amount %g not in [0, 1]", ErrInvalidConfig, c.SmoothAmount)
	}
	return nil
}

// size returns the mask dimensions for the bounds.
func (c RasterConfig) size() (w, h int) {
	w = int(math.Ceil(c.Bounds.URx - c.Bounds.LLx))
	h = int(math.Ceil(c.Bounds.URy - c.Bounds.LLy))
	return w, h
}

// SimplifyEpsilon maps a simplification level in 0..12 to an RDP tolerance
// relative to the grid cell size.
func SimplifyEpsilon(level int, cellSize float64) float64 {
	return float64(level) / 12 * cellSize * 0.9
}

// SmoothIterations returns the number of Chaikin passes for a smoothing
// amount: two above 0.66, one for any other positive amount, else none.
func SmoothIterations(amount float64) int {
	switch {
	case amount > 0.66:
		return 2
	case amount > 0:
		return 1
	default:
		return 0
	}
}

// GridStep returns the marching squares step for a layout cell size and a
// resolution setting in 4..48. Higher resolutions give finer grids; the
// step never drops below two units.
func GridStep(cellSize float64, resolution int) float64 {
	return max(2, math.Round(cellSize*12/float64(resolution)))
}

// RasterQuality returns the blur working scale and the direct sampling
// stride for a resolution setting in 4..48. While a gesture is in progress
// (interactive) both are coarsened to bound the cost per frame.
func RasterQuality(resolution int, interactive bool) (scale, stride int) {
	scale = int(math.Round(1 + float64(48-resolution)/16))
	scale = min(max(scale, 1), 4)
	stride = 1
	if interactive {
		scale = min(scale+1, 4)
		stride = 3
	}
	return scale, stride
}

func validBounds(b rect.Rect) error {
	if !isFinite(b.LLx) || !isFinite(b.LLy) || !isFinite(b.URx) || !isFinite(b.URy) {
		return fmt.Errorf("%w: bounds %v not finite", ErrInvalidConfig, b)
	}
	if b.URx <= b.LLx || b.URy <= b.LLy {
		return fmt.Errorf("%w: bounds %v are empty", ErrInvalidConfig, b)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
