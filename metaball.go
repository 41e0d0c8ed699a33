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

// Package metaball turns a set of point sources into a closed silhouette.
//
// Every point is the centre of an influence field. The shape is the region
// where the summed field reaches an iso-level. Two independent paths extract
// it:
//
//   - [ExtractPolygons] samples the field on a grid, runs marching squares,
//     links the resulting segments into polygons, and optionally simplifies
//     ([SimplifyRDP]) and smooths ([SmoothChaikin]) them.
//   - [RenderRasterMask] produces an alpha mask, either by blurring and
//     thresholding rasterised disks or by evaluating a Gaussian field per
//     pixel block.
//
// All entry points are pure functions of their arguments. The caller owns the
// point set and configuration; [Recompute] bundles both paths behind a single
// call for hosts which re-render on input events.
package metaball

//go:generate go run ./testcases/export
