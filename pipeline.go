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
	"seehuhn.de/go/geom/vec"
)

// minSimplifyEps is the RDP tolerance below which simplification is skipped.
const minSimplifyEps = 0.01

// ExtractPolygons computes the iso-contour of the field of points and
// returns it as polygons.
//
// The field is sampled on cfg.Grid, marching squares produces segments,
// LinkSegments joins them, and each polygon is then simplified with
// SimplifyRDP (if cfg.SimplifyEps > 0.01) and smoothed with SmoothChaikin
// (if cfg.SmoothAmount > 0 and cfg.SmoothIterations > 0).
//
// An invalid configuration gives an error wrapping [ErrInvalidConfig].
// Without points the result is empty. Points with non-finite coordinates
// are ignored.
func ExtractPolygons(points []vec.Vec2, cfg ContourConfig) ([]Polygon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sources := finitePoints(points)
	if len(sources) == 0 {
		return nil, nil
	}

	segs := MarchSquares(cfg.Grid, cfg.FieldConfig, sources, cfg.Kernel)
	polys := LinkSegments(segs)

	for i, poly := range polys {
		if cfg.SimplifyEps > minSimplifyEps {
			poly = SimplifyRDP(poly, cfg.SimplifyEps)
			if poly[0].Sub(poly[len(poly)-1]).Length() > forceCloseDistance {
				poly = append(poly, poly[0])
			}
		}
		if cfg.SmoothAmount > 0 && cfg.SmoothIterations > 0 {
			poly = SmoothChaikin(poly, cfg.SmoothIterations, cfg.SmoothAmount)
		}
		polys[i] = poly
	}

	Logger().Debug("contour extracted",
		"sources", len(sources),
		"segments", len(segs),
		"polygons", len(polys))
	return polys, nil
}

// finitePoints returns the points with finite coordinates. The input slice
// is returned as is when all points are usable.
func finitePoints(points []vec.Vec2) []vec.Vec2 {
	bad := 0
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			bad++
		}
	}
	if bad == 0 {
		return points
	}

	Logger().Debug("ignoring non-finite points", "count", bad)
	out := make([]vec.Vec2, 0, len(points)-bad)
	for _, p := range points {
		if isFinite(p.X) && isFinite(p.Y) {
			out = append(out, p)
		}
	}
	return out
}
