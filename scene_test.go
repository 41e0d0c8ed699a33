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
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/metaball/testcases"
)

func sceneAxes(tc *testcases.TestCase) Axis {
	var a Axis
	if tc.SymmetryV {
		a |= AxisVertical
	}
	if tc.SymmetryH {
		a |= AxisHorizontal
	}
	return a
}

func sceneConfig(tc *testcases.TestCase) ContourConfig {
	return ContourConfig{
		FieldConfig: FieldConfig{
			Radius:   tc.Radius,
			Fusion:   tc.Fusion,
			IsoLevel: tc.Iso(),
		},
		Grid: SampleGrid{
			Bounds: rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)},
			Step:   tc.GridStep(),
		},
		SimplifyEps:      SimplifyEpsilon(3, 12),
		SmoothAmount:     0.5,
		SmoothIterations: SmoothIterations(0.5),
	}
}

// TestScenes checks that every scene gives closed polygons and, where the
// scene says so, the expected number of separate shapes.
func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				sources := ExpandAll(tc.Points, sceneAxes(&tc), tc.Center())
				polys, err := ExtractPolygons(sources, sceneConfig(&tc))
				if err != nil {
					t.Fatal(err)
				}
				if len(polys) == 0 {
					t.Fatal("no polygons")
				}
				for i, p := range polys {
					if !p.Closed() {
						t.Errorf("polygon %d is open: %v ... %v", i, p[0], p[len(p)-1])
					}
				}

				if tc.Components == 0 {
					return
				}
				alpha := RasterizePolygons(polys, vec.Vec2{}, tc.Width, tc.Height)
				if n := components(alpha, tc.Width, tc.Height, 128); n != tc.Components {
					t.Errorf("got %d components, want %d", n, tc.Components)
					writeDebugImage(name, alpha, tc.Width, tc.Height, sources)
				}
			})
		}
	}
}

func TestSceneRingHasHole(t *testing.T) {
	var tc testcases.TestCase
	for _, c := range testcases.All["complex"] {
		if c.Name == "ring" {
			tc = c
		}
	}
	if tc.Name == "" {
		t.Fatal("ring scene not found")
	}

	polys, err := ExtractPolygons(tc.Points, sceneConfig(&tc))
	if err != nil {
		t.Fatal(err)
	}
	alpha := RasterizePolygons(polys, vec.Vec2{}, tc.Width, tc.Height)
	c := tc.Center()
	if a := alpha[int(c.Y)*tc.Width+int(c.X)]; a != 0 {
		t.Errorf("centre of ring covered with alpha %d", a)
	}
	for _, p := range tc.Points {
		if a := alpha[int(p.Y)*tc.Width+int(p.X)]; a < 128 {
			t.Errorf("source %v not covered, alpha %d", p, a)
		}
	}
}
