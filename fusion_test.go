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
	"errors"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var testFG = color.NRGBA{R: 200, G: 40, B: 10, A: 255}

// testRasterConfig returns a configuration where one source on its own
// covers its surroundings. The Gaussian kernel peaks at 1, so the direct
// strategy needs an iso-level below that.
func testRasterConfig(s Strategy) RasterConfig {
	cfg := RasterConfig{
		FieldConfig:    FieldConfig{Radius: 10, Fusion: 6, IsoLevel: 1},
		Bounds:         rect.Rect{URx: 200, URy: 120},
		WorkingScale:   1,
		SamplingStride: 1,
		Strategy:       s,
	}
	if s == StrategyDirect {
		cfg.IsoLevel = 0.5
	}
	return cfg
}

var strategies = []Strategy{StrategyBlur, StrategyDirect}

func TestRasterEmpty(t *testing.T) {
	for _, s := range strategies {
		m, err := RenderRasterMask(nil, testRasterConfig(s), testFG)
		if err != nil {
			t.Fatal(err)
		}
		if m.Width != 200 || m.Height != 120 {
			t.Errorf("%s: size %dx%d", s, m.Width, m.Height)
		}
		if n := m.Covered(1); n != 0 {
			t.Errorf("%s: %d pixels covered without points", s, n)
		}
	}
}

func TestRasterInvalidConfig(t *testing.T) {
	mods := map[string]func(*RasterConfig){
		"scale":    func(c *RasterConfig) { c.WorkingScale = 0 },
		"stride":   func(c *RasterConfig) { c.SamplingStride = 0 },
		"strategy": func(c *RasterConfig) { c.Strategy = 7 },
		"bounds":   func(c *RasterConfig) { c.Bounds = rect.Rect{} },
		"radius":   func(c *RasterConfig) { c.Radius = -3 },
		"smooth":   func(c *RasterConfig) { c.SmoothAmount = 1.5 },
		"huge":     func(c *RasterConfig) { c.Bounds = rect.Rect{URx: 1e12, URy: 1e12} },
		"too_many": func(c *RasterConfig) { c.Bounds = rect.Rect{URx: 1e5, URy: 1e5} },
		"extent":   func(c *RasterConfig) { c.Bounds = rect.Rect{LLx: -1e308, URx: 1e308, URy: 1} },
	}
	for name, mod := range mods {
		cfg := testRasterConfig(StrategyBlur)
		mod(&cfg)
		if _, err := RenderRasterMask([]vec.Vec2{{X: 10, Y: 10}}, cfg, testFG); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: got error %v", name, err)
		}
	}
}

func TestRasterIsolation(t *testing.T) {
	pts := []vec.Vec2{{X: 50, Y: 60}, {X: 150, Y: 60}}
	for _, s := range strategies {
		cfg := testRasterConfig(s)
		m, err := RenderRasterMask(pts, cfg, testFG)
		if err != nil {
			t.Fatal(err)
		}
		if n := components(m.Alpha, m.Width, m.Height, 128); n != 2 {
			t.Errorf("%s: got %d components, want 2", s, n)
			writeDebugImage("raster_isolation_"+s.String(), m.Alpha, m.Width, m.Height, pts)
		}
	}
}

func TestRasterMerge(t *testing.T) {
	pts := []vec.Vec2{{X: 92, Y: 60}, {X: 108, Y: 60}}
	for _, s := range strategies {
		m, err := RenderRasterMask(pts, testRasterConfig(s), testFG)
		if err != nil {
			t.Fatal(err)
		}
		if n := components(m.Alpha, m.Width, m.Height, 128); n != 1 {
			t.Errorf("%s: got %d components, want 1", s, n)
			writeDebugImage("raster_merge_"+s.String(), m.Alpha, m.Width, m.Height, pts)
		}
		if m.AlphaAt(100, 60) < 128 {
			t.Errorf("%s: midpoint not covered", s)
		}
	}
}

// TestRasterIsoMonotone checks that raising the iso-level never adds
// pixels.
func TestRasterIsoMonotone(t *testing.T) {
	pts := []vec.Vec2{{X: 80, Y: 60}, {X: 100, Y: 50}, {X: 130, Y: 70}}
	for _, s := range strategies {
		for _, scale := range []int{1, 2, 3} {
			var prev *RasterMask
			for _, iso := range []float64{0.5, 0.9, 1.3, 1.8, 2.5} {
				cfg := testRasterConfig(s)
				cfg.IsoLevel = iso
				cfg.WorkingScale = scale
				m, err := RenderRasterMask(pts, cfg, testFG)
				if err != nil {
					t.Fatal(err)
				}
				if prev != nil {
					for i, a := range m.Alpha {
						if a > prev.Alpha[i] {
							t.Fatalf("%s scale %d iso %g: pixel %d grew from %d to %d",
								s, scale, iso, i, prev.Alpha[i], a)
						}
					}
				}
				prev = m
			}
		}
	}
}

func TestBlurThreshold(t *testing.T) {
	if got := BlurThreshold(0.5); got != 60 {
		t.Errorf("iso 0.5: got %d, want 60", got)
	}
	if got := BlurThreshold(2.5); got != 220 {
		t.Errorf("iso 2.5: got %d, want 220", got)
	}
	if BlurThreshold(0) != 60 || BlurThreshold(10) != 220 {
		t.Error("out of range iso levels are not clamped")
	}
	prev := uint8(0)
	for iso := 0.5; iso <= 2.5; iso += 0.05 {
		thr := BlurThreshold(iso)
		if thr < prev {
			t.Errorf("threshold decreases at iso %g", iso)
		}
		prev = thr
	}
}

func TestRasterSoftEdge(t *testing.T) {
	pts := []vec.Vec2{{X: 100, Y: 60}}

	hard := testRasterConfig(StrategyDirect)
	m, err := RenderRasterMask(pts, hard, testFG)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range m.Alpha {
		if a != 0 && a != 255 {
			t.Fatalf("hard edge: pixel %d has alpha %d", i, a)
		}
	}

	soft := hard
	soft.SoftEdge = true
	ms, err := RenderRasterMask(pts, soft, testFG)
	if err != nil {
		t.Fatal(err)
	}
	partial := 0
	for i, a := range ms.Alpha {
		if a > 0 && a < 255 {
			partial++
		}
		if m.Alpha[i] == 255 && a != 255 {
			t.Fatalf("soft edge: inside pixel %d has alpha %d", i, a)
		}
	}
	if partial == 0 {
		t.Error("soft edge gave no partial alpha values")
	}
}

func TestRasterStride(t *testing.T) {
	cfg := testRasterConfig(StrategyDirect)
	cfg.SamplingStride = 3
	m, err := RenderRasterMask([]vec.Vec2{{X: 100, Y: 60}}, cfg, testFG)
	if err != nil {
		t.Fatal(err)
	}
	for y := range m.Height {
		for x := range m.Width {
			if a, b := m.AlphaAt(x, y), m.AlphaAt(x-x%3, y-y%3); a != b {
				t.Fatalf("pixel (%d,%d) differs from its block", x, y)
			}
		}
	}
	if m.AlphaAt(100, 60) != 255 {
		t.Error("source not covered")
	}
}

func TestRasterColour(t *testing.T) {
	fg := color.NRGBA{R: 10, G: 20, B: 30, A: 128}
	m, err := RenderRasterMask([]vec.Vec2{{X: 100, Y: 60}}, testRasterConfig(StrategyBlur), fg)
	if err != nil {
		t.Fatal(err)
	}
	img := m.Image()
	diff(t, fg, img.NRGBAAt(100, 60))
	diff(t, color.NRGBA{}, img.NRGBAAt(0, 0))
}

func TestRasterBlurIgnoresOutside(t *testing.T) {
	cfg := testRasterConfig(StrategyBlur)
	m, err := RenderRasterMask([]vec.Vec2{{X: -5, Y: 60}}, cfg, testFG)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.Covered(1); n != 0 {
		t.Errorf("%d pixels covered by a source outside the bounds", n)
	}
}

func TestRasterOffsetBounds(t *testing.T) {
	pts := []vec.Vec2{{X: 1050, Y: 530}}
	for _, s := range strategies {
		for _, scale := range []int{1, 2, 4} {
			cfg := testRasterConfig(s)
			cfg.Bounds = rect.Rect{LLx: 1000, LLy: 500, URx: 1100, URy: 560}
			cfg.WorkingScale = scale
			m, err := RenderRasterMask(pts, cfg, testFG)
			if err != nil {
				t.Fatal(err)
			}
			if m.Width != 100 || m.Height != 60 {
				t.Fatalf("size %dx%d", m.Width, m.Height)
			}
			if a := m.AlphaAt(50, 30); a < 128 {
				t.Errorf("%s scale %d: source pixel has alpha %d", s, scale, a)
			}
			if a := m.AlphaAt(5, 5); a != 0 {
				t.Errorf("%s scale %d: corner has alpha %d", s, scale, a)
			}
		}
	}
}
