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

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a polyline produced by the contour path. Polygons returned by
// ExtractPolygons are normally closed, i.e. the last vertex repeats the
// first one within [closeDistance].
type Polygon []vec.Vec2

// Closed reports whether the first and last vertex coincide within one unit.
func (p Polygon) Closed() bool {
	if len(p) < 2 {
		return false
	}
	return p[0].Sub(p[len(p)-1]).Length() <= closeDistance
}

// Clone returns a copy of p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	return append(Polygon(nil), p...)
}

// Path converts p to a path with a single closed subpath.
// Polygons with fewer than three vertices give an empty path.
func (p Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p) < 3 {
		return res
	}
	res = res.MoveTo(p[0])
	for _, q := range p[1:] {
		res = res.LineTo(q)
	}
	return res.Close()
}

// Bounds returns the smallest rectangle containing all vertices.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, q := range p {
		b.LLx = min(b.LLx, q.X)
		b.LLy = min(b.LLy, q.Y)
		b.URx = max(b.URx, q.X)
		b.URy = max(b.URy, q.Y)
	}
	return b
}

// Ring converts p to a closed orb ring.
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p)+1)
	for _, q := range p {
		ring = append(ring, orb.Point{q.X, q.Y})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// Area returns the enclosed area, independent of orientation.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	return math.Abs(planar.Area(p.Ring()))
}

// Contains reports whether q lies inside the polygon.
func (p Polygon) Contains(q vec.Vec2) bool {
	if len(p) < 3 {
		return false
	}
	return planar.RingContains(p.Ring(), orb.Point{q.X, q.Y})
}

// PathOf combines several polygons into one path, one subpath each.
func PathOf(polys []Polygon) *path.Data {
	res := &path.Data{}
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		res = res.MoveTo(p[0])
		for _, q := range p[1:] {
			res = res.LineTo(q)
		}
		res = res.Close()
	}
	return res
}
