/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package crosshair

import (
	"strings"
	"testing"

	"crosshairengine/internal/domain"
	"crosshairengine/internal/vector"
)

func params(shape domain.ShapeKind, argb uint32, size, thickness, opacity float64) domain.RenderParams {
	return domain.NewRenderParams(int32(shape), argb, size, thickness, opacity)
}

func TestDotFragment(t *testing.T) {
	s := New(params(domain.Dot, 0xFFFF0000, 10, 2, 1))
	want := `  <circle cx="20" cy="20" r="5" fill="#ff0000" opacity="1" />` + "\n"
	if got := s.EmitFragment(); got != want {
		t.Fatalf("dot:\n got %q\nwant %q", got, want)
	}
}

func TestCrossFragment(t *testing.T) {
	s := New(params(domain.Cross, 0xFF00FF00, 10, 2, 1))
	want := strings.Join([]string{
		`  <rect x="15" y="19" width="3" height="2" fill="#00ff00" opacity="1" />`,
		`  <rect x="22" y="19" width="3" height="2" fill="#00ff00" opacity="1" />`,
		`  <rect x="19" y="15" width="2" height="3" fill="#00ff00" opacity="1" />`,
		`  <rect x="19" y="22" width="2" height="3" fill="#00ff00" opacity="1" />`,
	}, "\n") + "\n"
	if got := s.EmitFragment(); got != want {
		t.Fatalf("cross:\n got %q\nwant %q", got, want)
	}
}

func TestCrossNegativeArmsPassThrough(t *testing.T) {
	s := New(params(domain.Cross, 0xFFFFFFFF, 2, 1, 1))
	els := s.Elements()
	if len(els) != 4 {
		t.Fatalf("expected 4 arms, got %d", len(els))
	}
	left := els[0].(*vector.RectElement).Rect
	if left.X != 3 || left.Y != 3.5 || left.W != -1 || left.H != 1 {
		t.Fatalf("unexpected left arm: %+v", left)
	}
	if !strings.Contains(s.EmitFragment(), `width="-1"`) || !strings.Contains(s.EmitFragment(), `height="-1"`) {
		t.Fatalf("negative dimensions were not emitted: %s", s.EmitFragment())
	}
}

func TestCircleFragmentFoldsAlpha(t *testing.T) {
	s := New(params(domain.Circle, 0x80FFFFFF, 20, 1.5, 1))
	want := `  <circle cx="40" cy="40" r="10" fill="none" stroke="#ffffff" stroke-width="1.5" opacity="0.501961" />` + "\n"
	if got := s.EmitFragment(); got != want {
		t.Fatalf("circle:\n got %q\nwant %q", got, want)
	}
}

func TestSquareFragment(t *testing.T) {
	s := New(params(domain.Square, 0xFF0000FF, 10, 2, 0.5))
	want := `  <rect x="15" y="15" width="10" height="10" fill="none" stroke="#0000ff" stroke-width="2" opacity="0.5" />` + "\n"
	if got := s.EmitFragment(); got != want {
		t.Fatalf("square:\n got %q\nwant %q", got, want)
	}
}

func TestChevronFragment(t *testing.T) {
	s := New(params(domain.Chevron, 0xFF123456, 8, 2, 1))
	want := `  <path d="M 12,14 L 16,12 L 20,14 L 19,14 L 16,13 L 13,14 Z" fill="#123456" opacity="1" />` + "\n" +
		`  <path d="M 12,18 L 16,20 L 20,18 L 19,18 L 16,19 L 13,18 Z" fill="#123456" opacity="1" />` + "\n"
	if got := s.EmitFragment(); got != want {
		t.Fatalf("chevron:\n got %q\nwant %q", got, want)
	}
}

func TestEffectiveOpacityComputedAtConstruction(t *testing.T) {
	s := New(params(domain.Dot, 0x80000000, 10, 2, 0.8))
	if got := domain.FormatNumber(s.EffectiveOpacity()); got != "0.401569" {
		t.Fatalf("effective opacity = %s", got)
	}
	if !strings.Contains(s.EmitFragment(), `opacity="0.401569"`) {
		t.Fatalf("fragment does not carry effective opacity: %s", s.EmitFragment())
	}
}

func TestFragmentsAreDeterministic(t *testing.T) {
	for k := domain.Dot; k <= domain.Custom; k++ {
		s := New(params(k, 0xFFABCDEF, 13.3, 1.7, 0.9))
		if a, b := s.EmitFragment(), s.EmitFragment(); a != b {
			t.Fatalf("%v fragment changed between calls", k)
		}
	}
}
