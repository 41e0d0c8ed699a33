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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestPolygonPath(t *testing.T) {
	p := unitSquare.Path()
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	diff(t, want, p.Cmds)
	diff(t, []vec.Vec2(unitSquare), p.Coords)

	if p := (Polygon{{X: 1, Y: 1}, {X: 2, Y: 2}}).Path(); len(p.Cmds) != 0 {
		t.Errorf("degenerate polygon gave %d commands", len(p.Cmds))
	}
}

func TestPathOf(t *testing.T) {
	polys := []Polygon{unitSquare, {{X: 0, Y: 0}}, unitSquare}
	p := PathOf(polys)
	moves := 0
	for _, c := range p.Cmds {
		if c == path.CmdMoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("got %d subpaths, want 2", moves)
	}
}

func TestPolygonBounds(t *testing.T) {
	p := Polygon{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 7, Y: 2}}
	diff(t, rect.Rect{LLx: -2, LLy: -1, URx: 7, URy: 4}, p.Bounds())
	diff(t, rect.Rect{}, Polygon(nil).Bounds())
}

func TestPolygonArea(t *testing.T) {
	if a := unitSquare.Area(); math.Abs(a-100) > 1e-9 {
		t.Errorf("area %g, want 100", a)
	}

	// orientation does not matter, and an open ring is closed implicitly
	rev := Polygon{{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	if a := rev.Area(); math.Abs(a-100) > 1e-9 {
		t.Errorf("reversed area %g, want 100", a)
	}
}

func TestPolygonContains(t *testing.T) {
	if !unitSquare.Contains(vec.Vec2{X: 5, Y: 5}) {
		t.Error("centre not inside")
	}
	if unitSquare.Contains(vec.Vec2{X: 15, Y: 5}) {
		t.Error("outside point reported inside")
	}
}

func TestPolygonClosed(t *testing.T) {
	if !unitSquare.Closed() {
		t.Error("square not closed")
	}
	open := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0.5, Y: 0.5}}
	if !open.Closed() {
		t.Error("gap below one unit counts as closed")
	}
	open = append(open, vec.Vec2{X: 2, Y: 0})
	if open.Closed() {
		t.Error("gap of two units counts as closed")
	}
}
