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

// SimplifyRDP reduces the number of vertices of p with the
// Ramer–Douglas–Peucker algorithm. A vertex is kept when it lies more than
// eps away from the chord between the endpoints of the current range.
//
// For eps <= 0, or for polylines with fewer than four vertices, an unchanged
// copy of p is returned. The endpoints are always kept, so closed polygons
// stay closed.
func SimplifyRDP(p Polygon, eps float64) Polygon {
	if eps <= 0 || len(p) < 4 {
		return p.Clone()
	}
	return rdp(p, eps, make(Polygon, 0, len(p)))
}

// rdp appends the simplification of p to out. The last vertex of a left
// half is the first vertex of the right half and is emitted once.
func rdp(p Polygon, eps float64, out Polygon) Polygon {
	first, last := p[0], p[len(p)-1]

	maxDist := 0.0
	idx := 0
	for i := 1; i < len(p)-1; i++ {
		d := perpDistance(p[i], first, last)
		if d > maxDist {
			maxDist = d
			idx = i
		}
	}

	if maxDist > eps {
		out = rdp(p[:idx+1], eps, out)
		out = out[:len(out)-1]
		return rdp(p[idx:], eps, out)
	}
	return append(out, first, last)
}

// perpDistance returns the distance from q to the line through a and b, or
// the distance to a if a and b coincide.
func perpDistance(q, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return q.Sub(a).Length()
	}
	t := q.Sub(a).Dot(d) / d.Dot(d)
	foot := a.Add(d.Mul(t))
	return math.Hypot(q.X-foot.X, q.Y-foot.Y)
}
