/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crosshair generates the geometry of each crosshair shape.
//
// Every shape lives in the same canonical frame: a square canvas of side 4*size with the
// shape centred at (2*size, 2*size). Exporters frame the fragment with a document of that size.
package crosshair

import (
	"crosshairengine/internal/domain"
	"crosshairengine/internal/vector"
)

// CrossGap separates each cross arm from the center.
const CrossGap = 4.0

// Shape is one of Dot, Cross, Circle, Square or Chevron. The set is closed.
type Shape interface {
	// Kind is the geometry actually produced, which is Cross for custom or unknown codes.
	Kind() domain.ShapeKind
	// Params returns the construction input, including the originally requested code.
	Params() domain.RenderParams
	EffectiveOpacity() float64
	Elements() []vector.Element
	// EmitFragment serializes Elements as SVG markup. It is pure and never fails.
	EmitFragment() string
	shape()
}

type base struct {
	params  domain.RenderParams
	opacity float64
}

func newBase(p domain.RenderParams) base {
	return base{params: p, opacity: p.EffectiveOpacity()}
}

func (b base) Params() domain.RenderParams { return b.params }
func (b base) EffectiveOpacity() float64   { return b.opacity }
func (base) shape()                        {}

func (b base) center() vector.Pt {
	x, y := b.params.Center()
	return vector.Pt{X: x, Y: y}
}

func (b base) fill() vector.Paint { return vector.Filled(b.params.Color, b.opacity) }

func (b base) outline() vector.Paint {
	return vector.Outlined(b.params.Color, b.params.Thickness, b.opacity)
}

// Dot is a filled circle of diameter size.
type Dot struct{ base }

func (s *Dot) Kind() domain.ShapeKind { return domain.Dot }
func (s *Dot) EmitFragment() string   { return vector.SVG(s.Elements()...) }

func (s *Dot) Elements() []vector.Element {
	return []vector.Element{vector.NewCircle(s.center(), s.params.Size/2, s.fill())}
}

// Cross is a plus sign of four filled arms with a gap around the center.
// When size/2 is smaller than half the gap the arm lengths go negative; they are emitted as is.
type Cross struct{ base }

func (s *Cross) Kind() domain.ShapeKind { return domain.Cross }
func (s *Cross) EmitFragment() string   { return vector.SVG(s.Elements()...) }

func (s *Cross) Elements() []vector.Element {
	c := s.center()
	half := s.params.Size / 2
	t := s.params.Thickness
	arm := half - CrossGap/2
	p := s.fill()
	return []vector.Element{
		vector.NewRect(vector.R(c.X-half, c.Y-t/2, arm, t), p),
		vector.NewRect(vector.R(c.X+CrossGap/2, c.Y-t/2, arm, t), p),
		vector.NewRect(vector.R(c.X-t/2, c.Y-half, t, arm), p),
		vector.NewRect(vector.R(c.X-t/2, c.Y+CrossGap/2, t, arm), p),
	}
}

// Circle is a stroked ring of diameter size.
type Circle struct{ base }

func (s *Circle) Kind() domain.ShapeKind { return domain.Circle }
func (s *Circle) EmitFragment() string   { return vector.SVG(s.Elements()...) }

func (s *Circle) Elements() []vector.Element {
	return []vector.Element{vector.NewCircle(s.center(), s.params.Size/2, s.outline())}
}

// Square is a stroked square of side size.
type Square struct{ base }

func (s *Square) Kind() domain.ShapeKind { return domain.Square }
func (s *Square) EmitFragment() string   { return vector.SVG(s.Elements()...) }

func (s *Square) Elements() []vector.Element {
	c := s.center()
	half := s.params.Size / 2
	return []vector.Element{
		vector.NewRect(vector.R(c.X-half, c.Y-half, s.params.Size, s.params.Size), s.outline()),
	}
}

// Chevron is a pair of filled peaks, one above the center pointing up and one below pointing down.
type Chevron struct{ base }

func (s *Chevron) Kind() domain.ShapeKind { return domain.Chevron }
func (s *Chevron) EmitFragment() string   { return vector.SVG(s.Elements()...) }

func (s *Chevron) Elements() []vector.Element {
	c := s.center()
	p := s.fill()
	return []vector.Element{
		vector.NewPath(s.peak(c, -1), p),
		vector.NewPath(s.peak(c, 1), p),
	}
}

// peak builds one six-vertex chevron; dir is -1 for the upper one and +1 for the lower one.
func (s *Chevron) peak(c vector.Pt, dir float64) vector.Path {
	half := s.params.Size / 2
	inset := s.params.Thickness / 2
	baseY := c.Y + dir*half/2
	tipY := c.Y + dir*half
	return vector.Polygon(
		vector.Pt{X: c.X - half, Y: baseY},
		vector.Pt{X: c.X, Y: tipY},
		vector.Pt{X: c.X + half, Y: baseY},
		vector.Pt{X: c.X + half - inset, Y: baseY},
		vector.Pt{X: c.X, Y: tipY - dir*inset},
		vector.Pt{X: c.X - half + inset, Y: baseY},
	)
}
