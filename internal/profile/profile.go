/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package profile reads and writes crosshair profiles: small JSON documents
// describing one named crosshair, validated against an embedded JSON Schema.
package profile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"crosshairengine/internal/domain"
)

//go:embed schema.json
var schemaJSON []byte

// ErrInvalid is wrapped when a document does not conform to the profile schema.
var ErrInvalid = errors.New("invalid crosshair profile")

// Defaults applied when a profile omits the optional fields.
const (
	DefaultThickness = 2.0
	DefaultOpacity   = 1.0
)

// Profile is one named crosshair.
type Profile struct {
	Name   string
	Note   string
	Params domain.RenderParams
}

type document struct {
	Name      string          `json:"name"`
	Shape     json.RawMessage `json:"shape"`
	Color     json.RawMessage `json:"color"`
	Size      float64         `json:"size"`
	Thickness *float64        `json:"thickness,omitempty"`
	Opacity   *float64        `json:"opacity,omitempty"`
	Note      string          `json:"note,omitempty"`
}

// Schema returns the embedded JSON Schema.
func Schema() []byte { return append([]byte(nil), schemaJSON...) }

// Validate checks data against the profile schema. Violations are joined into one ErrInvalid error.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Decode validates and decodes a profile document.
func Decode(data []byte) (Profile, error) {
	if err := Validate(data); err != nil {
		return Profile{}, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	shape, err := decodeShape(doc.Shape)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	col, err := decodeColor(doc.Color)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	p := Profile{
		Name: doc.Name,
		Note: doc.Note,
		Params: domain.RenderParams{
			Shape:     shape,
			Color:     col,
			Size:      doc.Size,
			Thickness: DefaultThickness,
			Opacity:   DefaultOpacity,
		},
	}
	if doc.Thickness != nil {
		p.Params.Thickness = *doc.Thickness
	}
	if doc.Opacity != nil {
		p.Params.Opacity = *doc.Opacity
	}
	return p, nil
}

// Load reads and decodes the profile at path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Encode renders p as an indented profile document. Known shapes are written
// by name, colors as #AARRGGBB.
func Encode(p Profile) ([]byte, error) {
	var shape any = p.Params.Shape.String()
	if !p.Params.Shape.Known() {
		shape = int32(p.Params.Shape)
	}
	th, op := p.Params.Thickness, p.Params.Opacity
	out := struct {
		Name      string   `json:"name"`
		Shape     any      `json:"shape"`
		Color     string   `json:"color"`
		Size      float64  `json:"size"`
		Thickness *float64 `json:"thickness"`
		Opacity   *float64 `json:"opacity"`
		Note      string   `json:"note,omitempty"`
	}{
		Name:      p.Name,
		Shape:     shape,
		Color:     fmt.Sprintf("#%08x", p.Params.Color.ARGB()),
		Size:      p.Params.Size,
		Thickness: &th,
		Opacity:   &op,
		Note:      p.Note,
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func decodeShape(raw json.RawMessage) (domain.ShapeKind, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return domain.ParseShapeKind(name)
	}
	var code int32
	if err := json.Unmarshal(raw, &code); err != nil {
		return 0, fmt.Errorf("shape: %w", err)
	}
	return domain.ShapeKind(code), nil
}

func decodeColor(raw json.RawMessage) (domain.Color, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return domain.ParseColor(s)
	}
	var n uint32
	if err := json.Unmarshal(raw, &n); err != nil {
		return domain.Color{}, fmt.Errorf("color: %w", err)
	}
	return domain.DecodeARGB(n), nil
}

