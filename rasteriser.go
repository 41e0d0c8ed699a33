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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts closed paths to pixel coverage values in [0, 1].
// It is used to draw the disks of the blur strategy and to turn polygons
// into masks. Internal buffers grow as needed and are reused across calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	cover       []float32 // signed vertical extent per pixel; reused as output
	area        []float32 // cover weighted by the uncovered part of the pixel
	edges       []edge
	rowHasEdges []bool

	// device space bounding box of edges
	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewRasteriser returns a Rasteriser with the identity CTM and default
// flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the defaults of NewRasteriser for a new clip rectangle,
// keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.rowHasEdges = r.rowHasEdges[:0]
}

// FillNonZero fills p using the nonzero winding rule. The emit callback
// receives coverage row by row; its slice argument is valid only during the
// call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule. The emit callback receives
// coverage row by row; its slice argument is valid only during the call.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			if accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin) {
				r.rowHasEdges[row] = true
			}
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// collectEdges flattens p into device space edges and returns their
// bounding box, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// elevate to a cubic with the same shape
			c := p.Coords[k]
			end := p.Coords[k+1]
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			r.flattenCubic(current, c1, c2, end)
			current = end
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// fills close open subpaths implicitly
	if current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// flattenCubic approximates a cubic Bézier curve by line segments. The
// number of segments follows Wang's formula, evaluated in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// addEdge transforms a segment to device space and records it. Horizontal
// edges do not contribute coverage and are skipped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// Coverage model: for every pixel two values are accumulated,
//
//	cover: the signed vertical extent of edges crossing the pixel
//	area:  cover times the part of the pixel right of the crossing
//
// Integrating a row from left to right, the signed area of the path inside
// pixel i is carry+area[i], after which cover[i] is added to the carry.

// accumulate adds the part of e inside scanline [y, y+1) to a row of
// cover/area values starting at device column xMin. Pieces left of the row
// count as fully covering its first pixel; pieces right of it are dropped.
// It reports whether anything was added.
func accumulate(e *edge, y int, cover, area []float32, xMin int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}

	// walk the piece from left to right, splitting at pixel boundaries
	xl, yl := e.x0+e.dxdy*(yTop-e.y0), yTop
	xr, yr := e.x0+e.dxdy*(yBot-e.y0), yBot
	if xl > xr {
		xl, xr = xr, xl
		yl, yr = yr, yl
	}

	width := len(cover)
	deposit := func(px int, dy, xMid float64) {
		c := float32(sign * dy)
		col := px - xMin
		switch {
		case col < 0:
			cover[0] += c
			area[0] += c
		case col < width:
			cover[col] += c
			area[col] += c * float32(1-(xMid-float64(px)))
		}
	}

	left := float64(xMin)
	switch {
	case xl >= left+float64(width):
		return true
	case xr <= left:
		deposit(xMin-1, math.Abs(yr-yl), 0)
		return true
	case xl < left:
		// the part left of the row covers its first pixel completely
		ny := yl + (left-xl)*(yr-yl)/(xr-xl)
		deposit(xMin-1, math.Abs(ny-yl), 0)
		xl, yl = left, ny
	}

	px := int(math.Floor(xl))
	cx, cy := xl, yl
	for {
		nx := min(float64(px+1), xr)
		ny := yr
		if xr > xl {
			ny = yl + (nx-xl)*(yr-yl)/(xr-xl)
		}
		if dy := math.Abs(ny - cy); dy > 0 {
			deposit(px, dy, (cx+nx)/2)
		}
		if nx >= xr || px-xMin >= width {
			break
		}
		cx, cy = nx, ny
		px++
	}
	return true
}

// integrate turns a row of accumulated cover/area values into coverage,
// in place.
func integrate(cover, area []float32, rule fillRule) {
	var carry float32
	for i := range cover {
		raw := carry + area[i]
		carry += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == fillEvenOdd {
			mod := raw - 2*float32(int(raw/2))
			raw = 1 - abs32(1-mod)
		}
		cover[i] = min(raw, 1)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and last non-zero
// value, together with its offset. It returns nil if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// alphaSink returns an emit callback which writes coverage into an 8-bit
// buffer of the given stride, covering the device rectangle starting at
// (x0, y0). Existing values are only ever raised, so several fills combine
// to their union.
func alphaSink(buf []uint8, stride, x0, y0 int) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		row := buf[(y-y0)*stride+(xMin-x0):]
		for i, c := range coverage {
			row[i] = max(row[i], uint8(min(255, int(c*255+0.5))))
		}
	}
}

// kappa is the control point distance for a quarter circle cubic.
const kappa = 0.5522847498

// DiskPath returns a closed path approximating the disk of the given radius
// around center by four cubic Bézier curves, counter-clockwise in a y-down
// coordinate system.
func DiskPath(center vec.Vec2, radius float64) *path.Data {
	return appendDisk(&path.Data{}, center, radius)
}

func appendDisk(p *path.Data, c vec.Vec2, r float64) *path.Data {
	k := kappa * r
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: c.X + x, Y: c.Y + y} }
	return p.
		MoveTo(pt(0, -r)).
		CubeTo(pt(-k, -r), pt(-r, -k), pt(-r, 0)).
		CubeTo(pt(-r, k), pt(-k, r), pt(0, r)).
		CubeTo(pt(k, r), pt(r, k), pt(r, 0)).
		CubeTo(pt(r, -k), pt(k, -r), pt(0, -r)).
		Close()
}

// RasterizePolygons fills polygons into an alpha buffer of size w×h whose
// pixel (0, 0) covers the unit square at origin. The even-odd rule is used,
// so holes stay empty whatever the orientation of the linked polygons.
func RasterizePolygons(polys []Polygon, origin vec.Vec2, w, h int) []uint8 {
	alpha := make([]uint8, w*h)
	if w <= 0 || h <= 0 || len(polys) == 0 {
		return alpha
	}
	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Matrix{1, 0, 0, 1, -origin.X, -origin.Y}
	r.FillEvenOdd(PathOf(polys), alphaSink(alpha, w, 0, 0))
	return alpha
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25
)

// Numerical tolerances for the rasteriser.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
