/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package engine

import "sync"

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the shared process-wide engine used by the free functions.
func Default() *Engine {
	defaultOnce.Do(func() { defaultEngine = New() })
	return defaultEngine
}

// Initialize initializes the default engine.
func Initialize() bool { return Default().Initialize() }

// RenderCrosshair renders with the default engine.
func RenderCrosshair(shape int32, argb uint32, size, thickness, opacity float64) bool {
	return Default().RenderCrosshair(shape, argb, size, thickness, opacity)
}

// ExportCrosshairAsSvg exports an SVG document with the default engine.
func ExportCrosshairAsSvg(shape int32, argb uint32, size, thickness, opacity float64, path string) bool {
	return Default().ExportCrosshairAsSvg(shape, argb, size, thickness, opacity, path)
}

// ExportCrosshairAsPng exports the PNG placeholder with the default engine.
func ExportCrosshairAsPng(shape int32, argb uint32, size, thickness, opacity float64, path string) bool {
	return Default().ExportCrosshairAsPng(shape, argb, size, thickness, opacity, path)
}

// LastError returns the default engine's last error.
func LastError() string { return Default().LastError() }

// Cleanup cleans up the default engine.
func Cleanup() { Default().Cleanup() }
