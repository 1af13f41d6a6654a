/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package domain holds the crosshair data model shared by the renderer, exporters and storage.
package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ShapeKind is the integer shape code used across the call boundary.
// Values outside the named set are representable; the renderer maps them to Cross.
type ShapeKind int32

const (
	Dot ShapeKind = iota
	Cross
	Circle
	Square
	Chevron
	Custom
)

var shapeNames = [...]string{"dot", "cross", "circle", "square", "chevron", "custom"}

// Known reports whether k is one of the named shape codes.
func (k ShapeKind) Known() bool { return k >= Dot && k <= Custom }

func (k ShapeKind) String() string {
	if k.Known() {
		return shapeNames[k]
	}
	return "shape(" + strconv.Itoa(int(k)) + ")"
}

// ParseShapeKind accepts a shape name (case-insensitive) or an integer code.
// Integer codes are not range-checked.
func ParseShapeKind(s string) (ShapeKind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, n := range shapeNames {
		if n == v {
			return ShapeKind(i), nil
		}
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown shape %q", s)
	}
	return ShapeKind(n), nil
}

// RenderParams is the complete crosshair description for one render or export call.
type RenderParams struct {
	Shape     ShapeKind
	Color     Color
	Size      float64 // pixels
	Thickness float64 // pixels
	Opacity   float64 // requested, 0..1
}

// NewRenderParams builds params from raw boundary arguments.
func NewRenderParams(shape int32, argb uint32, size, thickness, opacity float64) RenderParams {
	return RenderParams{
		Shape:     ShapeKind(shape),
		Color:     DecodeARGB(argb),
		Size:      size,
		Thickness: thickness,
		Opacity:   opacity,
	}
}

// EffectiveOpacity folds the requested opacity with the color's own alpha.
// The result is not clamped.
func (p RenderParams) EffectiveOpacity() float64 {
	return p.Opacity * p.Color.AlphaFraction()
}

// CanvasSize is the side of the square drawing frame.
func (p RenderParams) CanvasSize() float64 { return 4 * p.Size }

// Center returns the shape center inside the canvas.
func (p RenderParams) Center() (x, y float64) { return 2 * p.Size, 2 * p.Size }

// Validation errors reported by RenderParams.Validate.
var (
	ErrInvalidSize      = errors.New("size must be a positive number")
	ErrInvalidThickness = errors.New("thickness must be a non-negative number")
	ErrInvalidOpacity   = errors.New("opacity must be within [0,1]")
)

// Validate checks the ranges callers are expected to honor. The renderer itself
// does not call it; configuration and command-line input do.
func (p RenderParams) Validate() error {
	var errs []error
	if math.IsNaN(p.Size) || math.IsInf(p.Size, 0) || p.Size <= 0 {
		errs = append(errs, ErrInvalidSize)
	}
	if math.IsNaN(p.Thickness) || math.IsInf(p.Thickness, 0) || p.Thickness < 0 {
		errs = append(errs, ErrInvalidThickness)
	}
	if math.IsNaN(p.Opacity) || p.Opacity < 0 || p.Opacity > 1 {
		errs = append(errs, ErrInvalidOpacity)
	}
	return errors.Join(errs...)
}
