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

// isolatedCases place every source more than twice the combined radius
// away from all others, so each one forms its own shape.
var isolatedCases = []TestCase{
	{
		Name:       "single",
		Points:     []vec.Vec2{pt(100, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		Name:       "pair_wide",
		Points:     []vec.Vec2{pt(60, 100), pt(140, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 2,
	},
	{
		Name:       "triangle_wide",
		Points:     []vec.Vec2{pt(60, 60), pt(180, 60), pt(120, 164)},
		Width:      240,
		Height:     224,
		Radius:     12,
		Fusion:     8,
		Components: 3,
	},
	{
		Name:       "row",
		Points:     []vec.Vec2{pt(40, 80), pt(120, 80), pt(200, 80), pt(280, 80)},
		Width:      320,
		Height:     160,
		Radius:     15,
		Fusion:     5,
		Components: 4,
	},
}
