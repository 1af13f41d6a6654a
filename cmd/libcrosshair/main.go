/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Command libcrosshair builds the engine as a C shared library:
//
//	go build -buildmode=c-shared -o libcrosshair.so ./cmd/libcrosshair
//
// Every function returns 1 on success and 0 on failure; getLastError explains the failure.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"crosshairengine/internal/engine"
)

var (
	errBufOnce sync.Once
	errBufMu   sync.Mutex
	errBuf     unsafe.Pointer
)

//export initialize
func initialize() C.int32_t {
	return C.int32_t(flag(engine.Initialize()))
}

//export renderCrosshair
func renderCrosshair(shapeIndex C.int32_t, colorValue C.uint32_t, size, thickness, opacity C.double) C.int32_t {
	ok := engine.RenderCrosshair(int32(shapeIndex), uint32(colorValue), float64(size), float64(thickness), float64(opacity))
	return C.int32_t(flag(ok))
}

//export exportCrosshairAsPng
func exportCrosshairAsPng(shapeIndex C.int32_t, colorValue C.uint32_t, size, thickness, opacity C.double, outputPath *C.char) C.int32_t {
	ok := engine.ExportCrosshairAsPng(int32(shapeIndex), uint32(colorValue), float64(size), float64(thickness), float64(opacity), goPath(outputPath))
	return C.int32_t(flag(ok))
}

//export exportCrosshairAsSvg
func exportCrosshairAsSvg(shapeIndex C.int32_t, colorValue C.uint32_t, size, thickness, opacity C.double, outputPath *C.char) C.int32_t {
	ok := engine.ExportCrosshairAsSvg(int32(shapeIndex), uint32(colorValue), float64(size), float64(thickness), float64(opacity), goPath(outputPath))
	return C.int32_t(flag(ok))
}

// getLastError returns a pointer to a library-owned, NUL-terminated buffer.
// The contents stay valid until the next getLastError call.
//
//export getLastError
func getLastError() *C.char {
	errBufOnce.Do(func() {
		errBuf = C.malloc(C.size_t(errBufSize))
	})
	errBufMu.Lock()
	defer errBufMu.Unlock()
	dst := unsafe.Slice((*byte)(errBuf), errBufSize)
	fillErrorBuffer(dst, engine.LastError())
	return (*C.char)(errBuf)
}

//export cleanup
func cleanup() {
	engine.Cleanup()
}

func goPath(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func main() {}
