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

var precisionCases = []TestCase{
	{
		Name:       "subpixel",
		Points:     []vec.Vec2{pt(100.25, 100.75)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		Name:       "coincident",
		Points:     []vec.Vec2{pt(100, 100), pt(100, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		Name:       "on_grid_node",
		Points:     []vec.Vec2{pt(96, 96)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		Name:       "fine_step",
		Points:     []vec.Vec2{pt(100, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Step:       2,
		Components: 1,
	},
	{
		Name:       "coarse_step",
		Points:     []vec.Vec2{pt(100, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		Step:       10,
		Components: 1,
	},
	{
		Name:       "high_iso",
		Points:     []vec.Vec2{pt(100, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		IsoLevel:   2.5,
		Components: 1,
	},
	{
		Name:       "low_iso",
		Points:     []vec.Vec2{pt(100, 100)},
		Width:      200,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		IsoLevel:   0.5,
		Components: 1,
	},
}
