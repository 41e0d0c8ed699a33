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
	"seehuhn.de/go/geom/vec"
)

// Segment is one piece of iso-contour produced by a single grid cell.
type Segment struct {
	A, B vec.Vec2
}

// cellEdge names the sides of a marching squares cell.
type cellEdge uint8

const (
	edgeTop cellEdge = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// edgePair is a contour segment joining the crossings on two cell edges.
type edgePair [2]cellEdge

// caseTable maps the corner classification of a cell to the segments it
// contains. The case index has bit 3 for the top-left corner, bit 2 for
// top-right, bit 1 for bottom-right and bit 0 for bottom-left; a set bit
// means the corner is inside.
//
// The saddle cases 5 and 10 always use the pairing listed here. The value at
// the cell centre is not consulted, so symmetric configurations can be
// bridged or split differently from the true field. Changing the pairing
// changes the output shapes.
var caseTable = [16][]edgePair{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeTop, edgeLeft}, {edgeRight, edgeBottom}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeTop, edgeBottom}},
	10: {{edgeTop, edgeRight}, {edgeLeft, edgeBottom}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

// interpEpsilon keeps the crossing interpolation finite on flat edges.
const interpEpsilon = 1e-9

// MarchSquares samples the field of sources on grid and returns the
// iso-contour as an unordered list of segments. The field is evaluated once
// per grid node. A corner is inside when its value is at least
// cfg.IsoLevel. A nil kernel selects InverseSquare.
//
// The arguments are assumed to be valid; see [ContourConfig.Validate].
func MarchSquares(grid SampleGrid, cfg FieldConfig, sources []vec.Vec2, k Kernel) []Segment {
	if len(sources) == 0 {
		return nil
	}
	if k == nil {
		k = InverseSquare{}
	}

	cols, rows := grid.Dims()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	x0, y0, step := grid.Bounds.LLx, grid.Bounds.LLy, grid.Step
	stride := cols + 1

	values := make([]float64, (cols+1)*(rows+1))
	for j := 0; j <= rows; j++ {
		y := y0 + float64(j)*step
		for i := 0; i <= cols; i++ {
			x := x0 + float64(i)*step
			values[j*stride+i] = k.Sample(vec.Vec2{X: x, Y: y}, sources, cfg)
		}
	}

	iso := cfg.IsoLevel
	var segs []Segment
	for j := range rows {
		for i := range cols {
			x := x0 + float64(i)*step
			y := y0 + float64(j)*step

			// corners clockwise from the top-left
			var corner [4]vec.Vec2
			corner[0] = vec.Vec2{X: x, Y: y}
			corner[1] = vec.Vec2{X: x + step, Y: y}
			corner[2] = vec.Vec2{X: x + step, Y: y + step}
			corner[3] = vec.Vec2{X: x, Y: y + step}

			var v [4]float64
			v[0] = values[j*stride+i]
			v[1] = values[j*stride+i+1]
			v[2] = values[(j+1)*stride+i+1]
			v[3] = values[(j+1)*stride+i]

			idx := 0
			for c := range 4 {
				idx <<= 1
				if v[c] >= iso {
					idx |= 1
				}
			}

			pairs := caseTable[idx]
			if pairs == nil {
				continue
			}

			// edge e runs from corner e to corner (e+1)%4
			var cross [4]vec.Vec2
			for e := range 4 {
				c1, c2 := e, (e+1)%4
				t := (iso - v[c1]) / (v[c2] - v[c1] + interpEpsilon)
				cross[e] = corner[c1].Add(corner[c2].Sub(corner[c1]).Mul(t))
			}

			for _, pair := range pairs {
				segs = append(segs, Segment{A: cross[pair[0]], B: cross[pair[1]]})
			}
		}
	}
	return segs
}
