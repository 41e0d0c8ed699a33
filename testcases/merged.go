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

package testcases

import "seehuhn.de/go/geom/vec"

// mergedCases place sources close enough for their fields to fuse into a
// single shape.
var mergedCases = []TestCase{
	{
		Name:       "pair_close",
		Points:     []vec.Vec2{pt(85, 100), pt(115, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		Name:       "triple_cluster",
		Points:     []vec.Vec2{pt(80, 100), pt(110, 100), pt(95, 126)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		Name:       "chain",
		Points:     line(pt(40, 100), pt(180, 100), 6),
		Width:      240,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		// sources far apart, joined only through a large fusion distance
		Name:       "bridge_fusion",
		Points:     []vec.Vec2{pt(70, 120), pt(170, 120)},
		Width:      240,
		Height:     240,
		Radius:     10,
		Fusion:     30,
		Components: 1,
	},
}

// line returns n points evenly spaced from a to b, inclusive.
func line(a, b vec.Vec2, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		res[i] = a.Add(b.Sub(a).Mul(t))
	}
	return res
}
