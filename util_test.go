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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point values up to a small absolute error.
var approx = cmpopts.EquateApprox(0, 1e-9)

// components counts the 4-connected regions of pixels with alpha at least
// thr.
func components(alpha []uint8, w, h int, thr uint8) int {
	seen := make([]bool, w*h)
	var stack []int
	n := 0
	for start := range alpha {
		if seen[start] || alpha[start] < thr {
			continue
		}
		n++
		seen[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%w, i/w
			for _, nb := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if nb[0] < 0 || nb[0] >= w || nb[1] < 0 || nb[1] >= h {
					continue
				}
				j := nb[1]*w + nb[0]
				if !seen[j] && alpha[j] >= thr {
					seen[j] = true
					stack = append(stack, j)
				}
			}
		}
	}
	return n
}

// writeDebugImage saves an alpha buffer to debug/<name>.png, the shape in
// green and the sources in red.
func writeDebugImage(name string, alpha []uint8, w, h int, sources []vec.Vec2) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{G: alpha[y*w+x], A: 255})
		}
	}
	for _, p := range sources {
		img.Set(int(p.X), int(p.Y), color.RGBA{R: 255, A: 255})
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
