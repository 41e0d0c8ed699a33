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
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single scene.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2 // the sources, before symmetry expansion
	Width  int        // canvas width
	Height int        // canvas height

	Radius   float64 // source radius
	Fusion   float64 // fusion distance
	IsoLevel float64 // threshold, 1 if zero
	Step     float64 // contour grid step, 4 if zero

	// SymmetryV and SymmetryH mirror the points across the centre lines of
	// the canvas.
	SymmetryV bool
	SymmetryH bool

	// Components is the number of separate shapes the points must form,
	// or 0 if the scene does not check this.
	Components int
}

// Iso returns the iso-level of the scene.
func (tc *TestCase) Iso() float64 {
	if tc.IsoLevel == 0 {
		return 1
	}
	return tc.IsoLevel
}

// GridStep returns the contour grid step of the scene.
func (tc *TestCase) GridStep() float64 {
	if tc.Step == 0 {
		return 4
	}
	return tc.Step
}

// Center returns the centre of the canvas, which is also the centre of
// symmetry.
func (tc *TestCase) Center() vec.Vec2 {
	return vec.Vec2{X: float64(tc.Width) / 2, Y: float64(tc.Height) / 2}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
