/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color holds four 8-bit channels decoded from a packed ARGB value.
type Color struct{ R, G, B, A uint8 }

// DecodeARGB splits a packed 0xAARRGGBB value into channels.
func DecodeARGB(argb uint32) Color {
	return Color{
		A: uint8((argb >> 24) & 0xFF),
		R: uint8((argb >> 16) & 0xFF),
		G: uint8((argb >> 8) & 0xFF),
		B: uint8(argb & 0xFF),
	}
}

// ARGB packs the channels back into 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// AlphaFraction returns the alpha channel normalized to [0,1].
func (c Color) AlphaFraction() float64 { return float64(c.A) / 255.0 }

// RGBA renders the functional notation rgba(r,g,b,a) with a normalized alpha.
func (c Color) RGBA() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, FormatNumber(c.AlphaFraction()))
}

// Hex renders #rrggbb. Alpha is not part of this form; markup carries it as opacity.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor accepts 0xAARRGGBB, #RRGGBB (opaque), #AARRGGBB or a decimal packed value.
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	switch {
	case v == "":
		return Color{}, fmt.Errorf("empty color")
	case strings.HasPrefix(v, "#"):
		hex := v[1:]
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		switch len(hex) {
		case 6:
			return DecodeARGB(0xFF000000 | uint32(n)), nil
		case 8:
			return DecodeARGB(uint32(n)), nil
		default:
			return Color{}, fmt.Errorf("parse color %q: expected 6 or 8 hex digits", s)
		}
	case strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X"):
		n, err := strconv.ParseUint(v[2:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return DecodeARGB(uint32(n)), nil
	default:
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return DecodeARGB(uint32(n)), nil
	}
}

// FormatNumber prints v with six significant digits and no trailing zeros,
// the way a default C++ output stream prints doubles. All markup numbers go through here.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
