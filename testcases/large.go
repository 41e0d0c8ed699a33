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

// largeCases contain many sources, to check that linking copes with long
// contours and that no contour is left open.
var largeCases = []TestCase{
	{
		Name:   "lattice_10x10",
		Points: lattice(pt(60, 60), 20, 10, 10),
		Width:  300,
		Height: 300,
		Radius: 4,
		Fusion: 2,
	},
	{
		Name:   "lattice_sparse",
		Points: lattice(pt(40, 40), 60, 6, 4),
		Width:  380,
		Height: 260,
		Radius: 12,
		Fusion: 8,
	},
}

// lattice returns nx·ny points on a square grid with the given spacing,
// starting at origin.
func lattice(origin vec.Vec2, spacing float64, nx, ny int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, nx*ny)
	for j := range ny {
		for i := range nx {
			res = append(res, pt(origin.X+float64(i)*spacing, origin.Y+float64(j)*spacing))
		}
	}
	return res
}
