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

// MaxBlurRadius is the largest radius used by [BoxBlur].
const MaxBlurRadius = 1 << 20

// BoxBlur blurs an 8-bit w×h buffer with a square box of side 2·radius+1.
//
// The blur is separable: a horizontal pass sums each row into a wide
// intermediate buffer, then a vertical pass sums the columns and divides by
// the box area, rounding to nearest. Both passes use a sliding window, so
// the cost does not depend on the radius. Pixels outside the buffer take
// the value of the nearest edge pixel.
//
// For radius <= 0 a copy of src is returned. Radii above MaxBlurRadius are
// reduced to MaxBlurRadius.
func BoxBlur(src []uint8, w, h, radius int) []uint8 {
	out := make([]uint8, w*h)
	if radius <= 0 || w <= 0 || h <= 0 {
		copy(out, src)
		return out
	}
	radius = min(radius, MaxBlurRadius)

	tmp := make([]uint32, w*h)
	for y := range h {
		row := src[y*w : (y+1)*w]
		sum := uint32(clampedWindowSum(w, radius, func(i int) uint64 { return uint64(row[i]) }))
		for x := range w {
			tmp[y*w+x] = sum
			sum += uint32(row[clampIndex(x+radius+1, w)])
			sum -= uint32(row[clampIndex(x-radius, w)])
		}
	}

	window := uint64(2*radius + 1)
	area := window * window
	for x := range w {
		sum := clampedWindowSum(h, radius, func(i int) uint64 { return uint64(tmp[i*w+x]) })
		for y := range h {
			out[y*w+x] = uint8((2*sum + area) / (2 * area))
			sum += uint64(tmp[clampIndex(y+radius+1, h)*w+x])
			sum -= uint64(tmp[clampIndex(y-radius, h)*w+x])
		}
	}
	return out
}

// clampedWindowSum returns the sum of at(clampIndex(i, n)) for i in
// [-radius, radius].
func clampedWindowSum(n, radius int, at func(int) uint64) uint64 {
	last := min(radius, n-1)
	sum := uint64(radius)*at(0) + uint64(radius-last)*at(n-1)
	for i := 0; i <= last; i++ {
		sum += at(i)
	}
	return sum
}

// clampIndex clamps i to [0, n-1].
func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
