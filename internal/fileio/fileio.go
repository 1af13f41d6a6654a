/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package fileio is the file-write collaborator used by exporters.
// Exporters never touch the filesystem directly; they hand complete byte payloads to a Writer.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Mode tells the writer whether the payload is text or binary.
// Go does not translate line endings, so both modes write the bytes verbatim.
type Mode uint8

const (
	Text Mode = iota
	Binary
)

func (m Mode) String() string {
	if m == Binary {
		return "binary"
	}
	return "text"
}

var (
	// ErrOpen is wrapped when the destination cannot be opened for writing.
	ErrOpen = errors.New("open for writing")
	// ErrWrite is wrapped when the destination was opened but writing or closing failed.
	ErrWrite = errors.New("write")
)

// Writer writes a whole payload to path, creating or truncating it.
type Writer interface {
	WriteFile(path string, data []byte, mode Mode) error
}

// OS writes to the local filesystem.
type OS struct {
	Perm os.FileMode // zero means 0o644
}

func (w OS) WriteFile(path string, data []byte, mode Mode) error {
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrOpen)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("%w %s (%s): %w", ErrOpen, path, mode, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %s: close: %w", ErrWrite, path, err)
	}
	return nil
}

// Memory keeps payloads in a map. Paths listed in Fail are rejected with ErrOpen.
type Memory struct {
	mu    sync.Mutex
	Files map[string][]byte
	Modes map[string]Mode
	Fail  map[string]bool
}

func NewMemory() *Memory {
	return &Memory{Files: map[string][]byte{}, Modes: map[string]Mode{}, Fail: map[string]bool{}}
}

func (m *Memory) WriteFile(path string, data []byte, mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Files == nil {
		m.Files = map[string][]byte{}
	}
	if m.Modes == nil {
		m.Modes = map[string]Mode{}
	}
	if path == "" || m.Fail[path] {
		return fmt.Errorf("%w %s", ErrOpen, path)
	}
	m.Files[path] = append([]byte(nil), data...)
	m.Modes[path] = mode
	return nil
}

// Get returns a copy of the payload stored at path.
func (m *Memory) Get(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Files[path]
	return append([]byte(nil), b...), ok
}

// EnsureDir creates dir and its parents on the local filesystem.
func (w OS) EnsureDir(dir string) error { return os.MkdirAll(dir, 0o755) }

// EnsureDir is a no-op; memory paths need no directories.
func (m *Memory) EnsureDir(string) error { return nil }
