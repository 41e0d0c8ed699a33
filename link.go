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

// Tolerances for LinkSegments. Interpolated crossings of neighbouring cells
// rarely agree bit for bit, so endpoints are matched by proximity.
const (
	// keyResolution is the number of quantisation steps per unit used to
	// match segment endpoints.
	keyResolution = 2

	// backtrackDistance rejects continuations this close to the previous
	// vertex.
	backtrackDistance = 0.75

	// closeDistance closes a walk which returns this close to its start.
	closeDistance = 1.0

	// closeMinVertices is the length a walk must exceed before it may close.
	closeMinVertices = 6

	// forceCloseDistance is the endpoint gap above which a kept walk gets a
	// copy of its first point appended.
	forceCloseDistance = 1.5

	// minPolygonVertices is the shortest walk kept as a polygon.
	minPolygonVertices = 8

	// maxWalkSteps bounds a single walk.
	maxWalkSteps = 20000
)

// pointKey is a quantised endpoint position.
type pointKey struct {
	x, y int64
}

func keyOf(p vec.Vec2) pointKey {
	// round half up
	return pointKey{
		x: int64(math.Floor(p.X*keyResolution + 0.5)),
		y: int64(math.Floor(p.Y*keyResolution + 0.5)),
	}
}

// edgeKey identifies a directed edge between two quantised endpoints.
type edgeKey struct {
	from, to pointKey
}

// linker holds the state of one LinkSegments call.
type linker struct {
	neighbours map[pointKey][]vec.Vec2
	used       map[edgeKey]bool
}

func (l *linker) isUsed(a, b vec.Vec2) bool {
	ka, kb := keyOf(a), keyOf(b)
	return l.used[edgeKey{ka, kb}] || l.used[edgeKey{kb, ka}]
}

func (l *linker) markUsed(a, b vec.Vec2) {
	l.used[edgeKey{keyOf(a), keyOf(b)}] = true
}

// LinkSegments stitches an unordered segment list into polylines.
//
// Each walk starts from an unused segment and repeatedly continues to the
// first unused neighbour of its tail which is not within 0.75 units of the
// previous vertex. A walk ends when no continuation exists, when it returns
// within 1.0 unit of its start after more than six vertices (the start point
// is then appended), or after 20000 steps. Walks with fewer than eight
// vertices are dropped; kept walks whose endpoints are more than 1.5 units
// apart are closed by appending their first point.
func LinkSegments(segs []Segment) []Polygon {
	if len(segs) == 0 {
		return nil
	}

	l := &linker{
		neighbours: make(map[pointKey][]vec.Vec2, 2*len(segs)),
		used:       make(map[edgeKey]bool, len(segs)),
	}
	for _, s := range segs {
		ka, kb := keyOf(s.A), keyOf(s.B)
		l.neighbours[ka] = append(l.neighbours[ka], s.B)
		l.neighbours[kb] = append(l.neighbours[kb], s.A)
	}

	var polys []Polygon
	for _, s := range segs {
		if l.isUsed(s.A, s.B) {
			continue
		}
		poly := l.walk(s)
		if len(poly) < minPolygonVertices {
			continue
		}
		first, last := poly[0], poly[len(poly)-1]
		if first.Sub(last).Length() > forceCloseDistance {
			poly = append(poly, first)
		}
		polys = append(polys, poly)
	}
	return polys
}

// walk follows the segment graph starting with s.
func (l *linker) walk(s Segment) Polygon {
	start := s.A
	prev, cur := s.A, s.B
	l.markUsed(s.A, s.B)

	poly := Polygon{start}
	for step := 0; ; step++ {
		if step == maxWalkSteps {
			Logger().Debug("segment walk hit step limit",
				"steps", maxWalkSteps, "vertices", len(poly))
			break
		}

		poly = append(poly, cur)

		next, ok := l.continuation(prev, cur)
		if !ok {
			break
		}
		l.markUsed(cur, next)
		prev, cur = cur, next

		if cur.Sub(start).Length() < closeDistance && len(poly) > closeMinVertices {
			poly = append(poly, start)
			break
		}
	}
	return poly
}

// continuation returns the first usable neighbour of cur.
func (l *linker) continuation(prev, cur vec.Vec2) (vec.Vec2, bool) {
	for _, n := range l.neighbours[keyOf(cur)] {
		if n.Sub(prev).Length() < backtrackDistance {
			continue
		}
		if l.isUsed(cur, n) {
			continue
		}
		return n, true
	}
	return vec.Vec2{}, false
}
