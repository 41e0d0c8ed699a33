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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var complexCases = []TestCase{
	{
		// the sources fuse into an annulus; the centre stays outside
		Name:       "ring",
		Points:     ring(pt(150, 150), 100, 16),
		Width:      300,
		Height:     300,
		Radius:     12,
		Fusion:     8,
		Components: 1,
	},
	{
		Name:       "cluster_and_island",
		Points:     []vec.Vec2{pt(80, 100), pt(110, 100), pt(95, 126), pt(220, 100)},
		Width:      280,
		Height:     220,
		Radius:     12,
		Fusion:     8,
		Components: 2,
	},
	{
		Name:   "spiral",
		Points: spiral(pt(150, 150), 10, 6, 4*math.Pi, 0.5),
		Width:  300,
		Height: 300,
		Radius: 6,
		Fusion: 4,
	},
}

// ring returns n points evenly spaced on a circle.
func ring(center vec.Vec2, radius float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		res[i] = pt(center.X+radius*math.Cos(phi), center.Y+radius*math.Sin(phi))
	}
	return res
}

// spiral returns points on the Archimedean spiral r = r0 + k·φ for φ from
// 0 to maxPhi in steps of dPhi.
func spiral(center vec.Vec2, r0, k, maxPhi, dPhi float64) []vec.Vec2 {
	var res []vec.Vec2
	for phi := 0.0; phi <= maxPhi; phi += dPhi {
		r := r0 + k*phi
		res = append(res, pt(center.X+r*math.Cos(phi), center.Y+r*math.Sin(phi)))
	}
	return res
}
