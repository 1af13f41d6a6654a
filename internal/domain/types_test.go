/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"errors"
	"math"
	"regexp"
	"testing"
)

func TestDecodeARGBRoundTrip(t *testing.T) {
	samples := []uint32{0, 0xFFFFFFFF, 0xFFFF0000, 0x80112233, 0x01020304, 0x7F00FF00}
	for v := uint64(0); v <= 0xFFFFFFFF; v += 0x00F0F0F1 {
		samples = append(samples, uint32(v))
	}
	for _, v := range samples {
		c := DecodeARGB(v)
		if c.A != uint8(v>>24) || c.R != uint8(v>>16) || c.G != uint8(v>>8) || c.B != uint8(v) {
			t.Fatalf("channels of %#08x decoded as %+v", v, c)
		}
		if got := c.ARGB(); got != v {
			t.Fatalf("round trip %#08x -> %#08x", v, got)
		}
	}
}

func TestHexIsLowercaseAndDropsAlpha(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for _, v := range []uint32{0, 0x00ABCDEF, 0xFFABCDEF, 0x12000A0B, 0xFFFFFFFF} {
		h := DecodeARGB(v).Hex()
		if !re.MatchString(h) {
			t.Fatalf("hex %q for %#08x does not match #rrggbb", h, v)
		}
	}
	if a, b := DecodeARGB(0x00ABCDEF).Hex(), DecodeARGB(0xFFABCDEF).Hex(); a != b || a != "#abcdef" {
		t.Fatalf("alpha leaked into hex: %q vs %q", a, b)
	}
	if got := DecodeARGB(0xFF010203).Hex(); got != "#010203" {
		t.Fatalf("zero padding: got %q", got)
	}
}

func TestRGBAForm(t *testing.T) {
	cases := map[uint32]string{
		0xFFFF0000: "rgba(255,0,0,1)",
		0x00000000: "rgba(0,0,0,0)",
		0x80102030: "rgba(16,32,48,0.501961)",
	}
	for in, want := range cases {
		if got := DecodeARGB(in).RGBA(); got != want {
			t.Fatalf("RGBA(%#08x) = %q, want %q", in, got, want)
		}
	}
}

func TestEffectiveOpacity(t *testing.T) {
	p := NewRenderParams(int32(Dot), 0x80FFFFFF, 10, 2, 0.8)
	got := p.EffectiveOpacity()
	if math.Abs(got-0.8*128.0/255.0) > 1e-12 {
		t.Fatalf("effective opacity = %v", got)
	}
	if FormatNumber(got) != "0.401569" {
		t.Fatalf("formatted effective opacity = %s", FormatNumber(got))
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{20: "20", 2.5: "2.5", -1: "-1", 0.123456789: "0.123457", 1e6: "1e+06", 40: "40"}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"0xFFFF0000", 0xFFFF0000},
		{"#00ff00", 0xFF00FF00},
		{"#8000ff00", 0x8000FF00},
		{"4294901760", 0xFFFF0000},
	}
	for _, tc := range cases {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if c.ARGB() != tc.want {
			t.Fatalf("ParseColor(%q) = %#08x, want %#08x", tc.in, c.ARGB(), tc.want)
		}
	}
	for _, bad := range []string{"", "#12345", "0xZZ", "red"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseShapeKind(t *testing.T) {
	if k, err := ParseShapeKind("Chevron"); err != nil || k != Chevron {
		t.Fatalf("name parse: %v %v", k, err)
	}
	if k, err := ParseShapeKind("99"); err != nil || k != 99 || k.Known() {
		t.Fatalf("code parse: %v %v", k, err)
	}
	if _, err := ParseShapeKind("hexagon"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
	if ShapeKind(99).String() != "shape(99)" || Custom.String() != "custom" {
		t.Fatalf("unexpected String output")
	}
}

func TestValidate(t *testing.T) {
	ok := RenderParams{Shape: Cross, Size: 10, Thickness: 0, Opacity: 1}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
	bad := RenderParams{Size: 0, Thickness: -1, Opacity: 1.5}
	err := bad.Validate()
	if !errors.Is(err, ErrInvalidSize) || !errors.Is(err, ErrInvalidThickness) || !errors.Is(err, ErrInvalidOpacity) {
		t.Fatalf("expected all three errors, got %v", err)
	}
}
