/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package fileio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOSWriteFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	if err := (OS{}).WriteFile(path, []byte("a much longer payload"), Text); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := (OS{}).WriteFile(path, []byte{1, 2, 3}, Binary); err != nil {
		t.Fatalf("second write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Fatalf("file not truncated: %v", b)
	}
}

func TestOSWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.svg")
	err := (OS{}).WriteFile(path, []byte("x"), Text)
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	if err := (OS{}).WriteFile("", nil, Text); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen for empty path, got %v", err)
	}
}

func TestMemoryWriter(t *testing.T) {
	m := NewMemory()
	m.Fail["bad"] = true
	if err := m.WriteFile("good", []byte("ok"), Binary); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := m.WriteFile("bad", []byte("no"), Text); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	b, ok := m.Get("good")
	if !ok || string(b) != "ok" || m.Modes["good"] != Binary {
		t.Fatalf("unexpected stored payload %q ok=%v mode=%v", b, ok, m.Modes["good"])
	}
}
