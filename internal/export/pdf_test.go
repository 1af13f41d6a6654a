/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"crosshairengine/internal/domain"
	"crosshairengine/internal/fileio"
)

func TestExportPDF_CreatesFileForEveryShape(t *testing.T) {
	dir := t.TempDir()
	for k := domain.Dot; k <= domain.Custom; k++ {
		p := domain.NewRenderParams(int32(k), 0xC0336699, 24, 3, 0.9)
		out := filepath.Join(dir, k.String()+".pdf")
		if err := ExportPDF(fileio.OS{}, p, out, PDFOptions{IncludeGuides: true}); err != nil {
			t.Fatalf("export %v: %v", k, err)
		}
		b, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.HasPrefix(b, []byte("%PDF-")) {
			t.Fatalf("%v: not a pdf: %q", k, b[:min(len(b), 16)])
		}
	}
}

func TestExportPDF_RejectsInvalidSize(t *testing.T) {
	p := domain.NewRenderParams(int32(domain.Dot), 0xFFFFFFFF, 0, 1, 1)
	if err := ExportPDF(fileio.NewMemory(), p, "x.pdf", PDFOptions{}); err == nil {
		t.Fatalf("expected error for zero size")
	}
}
