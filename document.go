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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"
)

// DocumentVersion is the current version of the persisted document format.
const DocumentVersion = 1

// ErrInvalidDocument is returned (wrapped) by ReadDocument for input which
// is not a valid document.
var ErrInvalidDocument = errors.New("metaball: invalid document")

// Document is the persisted form of the pipeline inputs.
type Document struct {
	Version int
	Points  []vec.Vec2
	Params  Params
}

// NewDocument returns a document of the current version.
func NewDocument(points []vec.Vec2, p Params) *Document {
	return &Document{
		Version: DocumentVersion,
		Points:  append([]vec.Vec2(nil), points...),
		Params:  p,
	}
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonDocument struct {
	Version int          `json:"version"`
	Points  *[]jsonPoint `json:"points"`
	Config  *Params      `json:"config"`
}

// ReadDocument decodes a JSON document. The version must be known and the
// points and config members must be present. Config fields missing from the
// input keep their default value; the values are not clamped.
func ReadDocument(r io.Reader) (*Document, error) {
	var raw struct {
		Version int             `json:"version"`
		Points  *[]jsonPoint    `json:"points"`
		Config  json.RawMessage `json:"config"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	switch {
	case raw.Version != DocumentVersion:
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, raw.Version)
	case raw.Points == nil:
		return nil, fmt.Errorf("%w: missing points", ErrInvalidDocument)
	case len(raw.Config) == 0 || string(raw.Config) == "null":
		return nil, fmt.Errorf("%w: missing config", ErrInvalidDocument)
	}

	params := DefaultParams()
	if err := json.Unmarshal(raw.Config, &params); err != nil {
		return nil, fmt.Errorf("%w: config: %w", ErrInvalidDocument, err)
	}

	doc := &Document{
		Version: raw.Version,
		Points:  make([]vec.Vec2, len(*raw.Points)),
		Params:  params,
	}
	for i, p := range *raw.Points {
		doc.Points[i] = vec.Vec2{X: p.X, Y: p.Y}
	}
	return doc, nil
}

// WriteDocument encodes doc as indented JSON.
func WriteDocument(w io.Writer, doc *Document) error {
	pts := make([]jsonPoint, len(doc.Points))
	for i, p := range doc.Points {
		pts[i] = jsonPoint{X: p.X, Y: p.Y}
	}
	raw := jsonDocument{
		Version: doc.Version,
		Points:  &pts,
		Config:  &doc.Params,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}
