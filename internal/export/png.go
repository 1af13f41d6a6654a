/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"crosshairengine/internal/crosshair"
	"crosshairengine/internal/domain"
	"crosshairengine/internal/fileio"
)

// PNGSignature is the fixed 8-byte PNG file signature.
const PNGSignature = "\x89PNG\r\n\x1A\n"

// ExportPNG writes a raster placeholder: the PNG signature and nothing else.
// No pixels are produced and the file is not a decodable PNG. The shape is
// still built so that rendering failures surface the same way as for SVG.
func ExportPNG(w fileio.Writer, p domain.RenderParams, path string) error {
	_ = crosshair.New(p)
	if err := w.WriteFile(path, []byte(PNGSignature), fileio.Binary); err != nil {
		return wrapWrite("png", err)
	}
	return nil
}
