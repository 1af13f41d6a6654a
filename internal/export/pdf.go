/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"crosshairengine/internal/crosshair"
	"crosshairengine/internal/domain"
	"crosshairengine/internal/fileio"
	"crosshairengine/internal/vector"
)

// PDFOptions controls PDF export behavior.
// Units are points; one canvas pixel maps to one point, so the page is 4*size square.
//
// Guides are hairlines along the canvas border and through the center, useful when
// checking alignment in print.
type PDFOptions struct {
	Title         string
	IncludeGuides bool
	GuideColor    domain.Color
}

// ExportPDF draws the crosshair's elements as vector paths on a single page.
func ExportPDF(w fileio.Writer, p domain.RenderParams, path string, opt PDFOptions) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("pdf params: %w", err)
	}
	data, err := PDFDocument(crosshair.New(p), opt)
	if err != nil {
		return err
	}
	if err := w.WriteFile(path, data, fileio.Binary); err != nil {
		return wrapWrite("pdf", err)
	}
	return nil
}

// PDFDocument renders s into an in-memory PDF.
func PDFDocument(s crosshair.Shape, opt PDFOptions) ([]byte, error) {
	side := s.Params().CanvasSize()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: side, Ht: side},
	})
	title := opt.Title
	if title == "" {
		title = fmt.Sprintf("Crosshair (%s)", s.Kind())
	}
	pdf.SetTitle(title, true)
	pdf.SetAuthor("Crosshair Engine", false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if opt.IncludeGuides {
		gc := opt.GuideColor
		if gc == (domain.Color{}) {
			gc = domain.Color{R: 255, A: 255}
		}
		setDrawColor(pdf, gc)
		pdf.SetLineWidth(0.2)
		pdf.Rect(0, 0, side, side, "D")
		pdf.Line(side/2, 0, side/2, side)
		pdf.Line(0, side/2, side, side/2)
	}

	for _, el := range s.Elements() {
		drawElement(pdf, el)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawElement(pdf *gofpdf.Fpdf, el vector.Element) {
	paint := el.Paint()
	style := applyPaint(pdf, paint)
	switch e := el.(type) {
	case *vector.CircleElement:
		pdf.Circle(e.C.X, e.C.Y, e.R, style)
	case *vector.RectElement:
		pdf.Rect(e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H, style)
	case *vector.PathElement:
		pts := e.Path.Points()
		poly := make([]gofpdf.PointType, len(pts))
		for i, q := range pts {
			poly[i] = gofpdf.PointType{X: q.X, Y: q.Y}
		}
		pdf.Polygon(poly, style)
	}
	pdf.SetAlpha(1, "Normal")
}

// applyPaint sets colors, line width and alpha and returns the gofpdf style string.
func applyPaint(pdf *gofpdf.Fpdf, p vector.Paint) string {
	// PDF rejects alpha outside [0,1]; markup output is not clamped, this one must be.
	alpha := min(max(p.Opacity, 0), 1)
	pdf.SetAlpha(alpha, "Normal")
	style := ""
	if p.Fill.Enabled {
		setFillColor(pdf, p.Fill.Color)
		style += "F"
	}
	if p.Stroke.Enabled {
		setDrawColor(pdf, p.Stroke.Color)
		pdf.SetLineWidth(p.Stroke.Width)
		style += "D"
	}
	return style
}

func setDrawColor(pdf *gofpdf.Fpdf, c domain.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *gofpdf.Fpdf, c domain.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}
