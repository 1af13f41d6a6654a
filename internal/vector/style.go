/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"strings"

	"crosshairengine/internal/domain"
)

// Styles and paint definitions.

type Fill struct {
	Color   domain.Color
	Enabled bool
}

type Stroke struct {
	Color   domain.Color
	Width   float64
	Enabled bool
}

// Paint is the complete styling of one element. Opacity applies to the whole element.
type Paint struct {
	Fill    Fill
	Stroke  Stroke
	Opacity float64
}

// Filled paints a solid shape.
func Filled(c domain.Color, opacity float64) Paint {
	return Paint{Fill: Fill{Color: c, Enabled: true}, Opacity: opacity}
}

// Outlined paints a stroke-only shape.
func Outlined(c domain.Color, width, opacity float64) Paint {
	return Paint{Stroke: Stroke{Color: c, Width: width, Enabled: true}, Opacity: opacity}
}

// writeAttrs appends fill, stroke and opacity attributes in markup order.
func (p Paint) writeAttrs(b *strings.Builder) {
	if p.Fill.Enabled {
		attr(b, "fill", p.Fill.Color.Hex())
	} else {
		attr(b, "fill", "none")
	}
	if p.Stroke.Enabled {
		attr(b, "stroke", p.Stroke.Color.Hex())
		attr(b, "stroke-width", num(p.Stroke.Width))
	}
	attr(b, "opacity", num(p.Opacity))
}

func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

func num(v float64) string { return domain.FormatNumber(v) }
