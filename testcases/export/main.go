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

// Command export writes the scenes of package testcases as documents, one
// file per scene, to testdata/scenes/<category>_<name>.json.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/metaball"
	"seehuhn.de/go/metaball/testcases"
)

func main() {
	dir := flag.String("dir", filepath.Join("testdata", "scenes"), "output directory")
	verbose := flag.Bool("v", false, "log progress")
	flag.Parse()

	if *verbose {
		metaball.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := filepath.Join(*dir, category+"_"+tc.Name+".json")
			if err := writeScene(name, &tc); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			metaball.Logger().Debug("scene exported", "file", name, "points", len(tc.Points))
			n++
		}
	}
	metaball.Logger().Info("export finished", "scenes", n)
}

func writeScene(name string, tc *testcases.TestCase) error {
	p := metaball.DefaultParams()
	p.Radius = tc.Radius
	p.Fusion = tc.Fusion
	p.IsoLevel = tc.Iso()
	p.SymmetryV = tc.SymmetryV
	p.SymmetryH = tc.SymmetryH
	if err := p.Validate(); err != nil {
		return fmt.Errorf("scene %s: %w", tc.Name, err)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = metaball.WriteDocument(f, metaball.NewDocument(tc.Points, p))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
