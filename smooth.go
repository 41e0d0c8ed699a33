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

// SmoothChaikin rounds the corners of p by Chaikin corner cutting.
//
// Every pass replaces each edge (p0, p1) by the two points at fractions
// 0.25+0.25·amount and 0.75−0.25·amount along it, then repeats the first new
// point at the end so that closed input stays closed. amount should lie in
// [0, 1]; at 1 both points meet at the edge midpoint.
//
// For iterations <= 0, or fewer than two vertices, an unchanged copy of p is
// returned.
func SmoothChaikin(p Polygon, iterations int, amount float64) Polygon {
	if iterations <= 0 || len(p) < 2 {
		return p.Clone()
	}

	near := 0.25 + 0.25*amount
	far := 0.75 - 0.25*amount

	cur := p
	for range iterations {
		out := make(Polygon, 0, 2*(len(cur)-1)+1)
		for i := 0; i < len(cur)-1; i++ {
			p0, p1 := cur[i], cur[i+1]
			d := p1.Sub(p0)
			out = append(out, p0.Add(d.Mul(near)), p0.Add(d.Mul(far)))
		}
		out = append(out, out[0])
		cur = out
	}
	return cur
}
