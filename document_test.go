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
	"bytes"
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestDocumentRoundTrip(t *testing.T) {
	p := DefaultParams()
	p.Radius = 55.5
	p.SymmetryH = true
	doc := NewDocument([]vec.Vec2{{X: 1, Y: 2}, {X: 300.25, Y: -4}}, p)

	buf := &bytes.Buffer{}
	if err := WriteDocument(buf, doc); err != nil {
		t.Fatal(err)
	}
	got, err := ReadDocument(buf)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, doc, got)
}

func TestDocumentFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	doc := NewDocument([]vec.Vec2{{X: 3, Y: 4}}, DefaultParams())
	if err := WriteDocument(buf, doc); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, key := range []string{
		`"version": 1`, `"x": 3`, `"y": 4`, `"radius": 40`, `"fusion": 30`,
		`"isoLevel": 1`, `"resolution": 24`, `"simplify": 3`, `"smooth": 0.5`,
		`"symmetryV": false`, `"symmetryH": false`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("output lacks %s:\n%s", key, out)
		}
	}
}

func TestDocumentEmptyPoints(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`{"version":1,"points":[],"config":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Points == nil || len(doc.Points) != 0 {
		t.Errorf("got points %v", doc.Points)
	}
	diff(t, DefaultParams(), doc.Params)
}

func TestDocumentPartialConfig(t *testing.T) {
	in := `{"version":1,"points":[{"x":5,"y":6}],"config":{"radius":70,"symmetryV":true}}`
	doc, err := ReadDocument(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultParams()
	want.Radius = 70
	want.SymmetryV = true
	diff(t, want, doc.Params)
	diff(t, []vec.Vec2{{X: 5, Y: 6}}, doc.Points)
}

func TestDocumentInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":         `{"version":1,`,
		"not_object":     `[1,2,3]`,
		"version":        `{"version":2,"points":[],"config":{}}`,
		"no_version":     `{"points":[],"config":{}}`,
		"no_points":      `{"version":1,"config":{}}`,
		"null_points":    `{"version":1,"points":null,"config":{}}`,
		"no_config":      `{"version":1,"points":[]}`,
		"null_config":    `{"version":1,"points":[],"config":null}`,
		"bad_config":     `{"version":1,"points":[],"config":{"radius":"big"}}`,
		"bad_point":      `{"version":1,"points":[{"x":"a"}],"config":{}}`,
		"config_is_list": `{"version":1,"points":[],"config":[1]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(in))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("got error %v", err)
			}
		})
	}
}
