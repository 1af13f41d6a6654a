/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "strings"

// Element is one styled primitive. The set is closed: circle, rect and path.
// Backends switch on the concrete type.
type Element interface {
	Paint() Paint
	Bounds() Rect
	// WriteSVG appends the element as one indented markup line.
	WriteSVG(b *strings.Builder)
	element()
}

// CircleElement is a circle of radius R around C.
type CircleElement struct {
	C     Pt
	R     float64
	Style Paint
}

func NewCircle(c Pt, r float64, p Paint) *CircleElement {
	return &CircleElement{C: c, R: r, Style: p}
}

func (e *CircleElement) Paint() Paint { return e.Style }
func (e *CircleElement) Bounds() Rect { return Rect{X: e.C.X - e.R, Y: e.C.Y - e.R, W: 2 * e.R, H: 2 * e.R} }
func (e *CircleElement) element()     {}

func (e *CircleElement) WriteSVG(b *strings.Builder) {
	b.WriteString("  <circle")
	attr(b, "cx", num(e.C.X))
	attr(b, "cy", num(e.C.Y))
	attr(b, "r", num(e.R))
	e.Style.writeAttrs(b)
	b.WriteString(" />\n")
}

// RectElement is an axis-aligned rectangle.
type RectElement struct {
	Rect  Rect
	Style Paint
}

func NewRect(r Rect, p Paint) *RectElement { return &RectElement{Rect: r, Style: p} }

func (e *RectElement) Paint() Paint { return e.Style }
func (e *RectElement) Bounds() Rect { return e.Rect }
func (e *RectElement) element()     {}

func (e *RectElement) WriteSVG(b *strings.Builder) {
	b.WriteString("  <rect")
	attr(b, "x", num(e.Rect.X))
	attr(b, "y", num(e.Rect.Y))
	attr(b, "width", num(e.Rect.W))
	attr(b, "height", num(e.Rect.H))
	e.Style.writeAttrs(b)
	b.WriteString(" />\n")
}

// PathElement is a polygon outline.
type PathElement struct {
	Path  Path
	Style Paint
}

func NewPath(p Path, s Paint) *PathElement { return &PathElement{Path: p, Style: s} }

func (e *PathElement) Paint() Paint { return e.Style }
func (e *PathElement) Bounds() Rect { return e.Path.Bounds() }
func (e *PathElement) element()     {}

func (e *PathElement) WriteSVG(b *strings.Builder) {
	b.WriteString("  <path")
	attr(b, "d", e.Path.Data())
	e.Style.writeAttrs(b)
	b.WriteString(" />\n")
}

// SVG serializes elements in order.
func SVG(els ...Element) string {
	var b strings.Builder
	for _, e := range els {
		e.WriteSVG(&b)
	}
	return b.String()
}
