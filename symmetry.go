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

import "seehuhn.de/go/geom/vec"

// Axis is a set of mirror axes.
type Axis uint8

const (
	// AxisVertical mirrors across the vertical line x = center.X.
	AxisVertical Axis = 1 << iota

	// AxisHorizontal mirrors across the horizontal line y = center.Y.
	AxisHorizontal
)

// symmetryTolerance is the distance below which two mirrored points count as
// the same point.
const symmetryTolerance = 0.5

// ExpandSymmetry returns p followed by its mirror images for the given axes.
// Images closer than 0.5 units to an earlier point are dropped, so a point on
// an axis is not duplicated. The result has between one and four points.
func ExpandSymmetry(p vec.Vec2, axes Axis, center vec.Vec2) []vec.Vec2 {
	mx := vec.Vec2{X: 2*center.X - p.X, Y: p.Y}
	my := vec.Vec2{X: p.X, Y: 2*center.Y - p.Y}

	candidates := [4]vec.Vec2{p}
	n := 1
	if axes&AxisVertical != 0 {
		candidates[n] = mx
		n++
	}
	if axes&AxisHorizontal != 0 {
		candidates[n] = my
		n++
	}
	if axes&AxisVertical != 0 && axes&AxisHorizontal != 0 {
		candidates[n] = vec.Vec2{X: mx.X, Y: my.Y}
		n++
	}

	out := make([]vec.Vec2, 0, n)
	for _, q := range candidates[:n] {
		if !containsNear(out, q, symmetryTolerance) {
			out = append(out, q)
		}
	}
	return out
}

// ExpandAll applies ExpandSymmetry to every point. Without axes the points
// are copied unchanged.
func ExpandAll(points []vec.Vec2, axes Axis, center vec.Vec2) []vec.Vec2 {
	if axes == 0 {
		return append([]vec.Vec2(nil), points...)
	}
	out := make([]vec.Vec2, 0, 4*len(points))
	for _, p := range points {
		out = append(out, ExpandSymmetry(p, axes, center)...)
	}
	return out
}

func containsNear(pts []vec.Vec2, q vec.Vec2, tol float64) bool {
	for _, p := range pts {
		if p.Sub(q).Length() < tol {
			return true
		}
	}
	return false
}
