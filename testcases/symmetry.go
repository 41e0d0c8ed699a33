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

var symmetryCases = []TestCase{
	{
		Name:       "quad",
		Points:     []vec.Vec2{pt(60, 60)},
		Width:      240,
		Height:     240,
		Radius:     12,
		Fusion:     8,
		SymmetryV:  true,
		SymmetryH:  true,
		Components: 4,
	},
	{
		Name:       "mirror_v",
		Points:     []vec.Vec2{pt(50, 100)},
		Width:      240,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		SymmetryV:  true,
		Components: 2,
	},
	{
		Name:       "mirror_h",
		Points:     []vec.Vec2{pt(120, 50)},
		Width:      240,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		SymmetryH:  true,
		Components: 2,
	},
	{
		// the vertical mirror image coincides with the point itself
		Name:       "on_axis",
		Points:     []vec.Vec2{pt(120, 60)},
		Width:      240,
		Height:     240,
		Radius:     12,
		Fusion:     8,
		SymmetryV:  true,
		SymmetryH:  true,
		Components: 2,
	},
	{
		Name:       "centre",
		Points:     []vec.Vec2{pt(120, 120)},
		Width:      240,
		Height:     240,
		Radius:     12,
		Fusion:     8,
		SymmetryV:  true,
		SymmetryH:  true,
		Components: 1,
	},
	{
		Name:       "mirror_merge",
		Points:     []vec.Vec2{pt(105, 100)},
		Width:      240,
		Height:     200,
		Radius:     12,
		Fusion:     8,
		SymmetryV:  true,
		Components: 1,
	},
}
