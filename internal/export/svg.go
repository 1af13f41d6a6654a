/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export frames crosshair geometry into documents and hands them to a fileio.Writer.
package export

import (
	"bytes"
	"errors"
	"fmt"

	"crosshairengine/internal/crosshair"
	"crosshairengine/internal/domain"
	"crosshairengine/internal/fileio"
)

// ErrCreate is wrapped when an output file cannot be created.
var ErrCreate = errors.New("cannot create output file")

// RenderOnly builds the shape and its fragment without any I/O.
func RenderOnly(p domain.RenderParams) (string, error) {
	return crosshair.New(p).EmitFragment(), nil
}

// SVGDocument frames the shape's fragment in a standalone SVG document whose
// canvas is the shape's 4*size square.
func SVGDocument(s crosshair.Shape) []byte {
	side := domain.FormatNumber(s.Params().CanvasSize())

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	_, _ = fmt.Fprintf(&buf, "<svg width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\" xmlns=\"http://www.w3.org/2000/svg\">\n", side, side, side, side)
	buf.WriteString(s.EmitFragment())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// ExportSVG writes the SVG document for p to path.
func ExportSVG(w fileio.Writer, p domain.RenderParams, path string) error {
	doc := SVGDocument(crosshair.New(p))
	if err := w.WriteFile(path, doc, fileio.Text); err != nil {
		return wrapWrite("svg", err)
	}
	return nil
}

func wrapWrite(format string, err error) error {
	if errors.Is(err, fileio.ErrOpen) {
		return fmt.Errorf("create %s: %w: %w", format, ErrCreate, err)
	}
	return fmt.Errorf("write %s: %w", format, err)
}
