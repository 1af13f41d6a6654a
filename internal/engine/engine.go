/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package engine is the call boundary: it gates every operation on the
// initialized state, converts failures (including panics) into a success flag
// and keeps the last error message for retrieval.
//
// An Engine is safe for concurrent use; calls are serialized by its mutex.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"crosshairengine/internal/crash"
	"crosshairengine/internal/domain"
	"crosshairengine/internal/export"
	"crosshairengine/internal/fileio"
	applog "crosshairengine/internal/log"
)

// MaxErrorLen is the capacity of the last-error slot in bytes.
const MaxErrorLen = 1023

// ErrNotInitialized is returned by every operation before Initialize.
var ErrNotInitialized = errors.New("Engine not initialized. Call initialize() first.") //nolint:staticcheck // message is part of the public contract

// Operation names, also used in "Unknown error during <op>" messages.
const (
	OpInitialize = "initialization"
	OpRender     = "rendering"
	OpExportPNG  = "PNG export"
	OpExportSVG  = "SVG export"
	OpExportPDF  = "PDF export"
	OpBatch      = "batch export"
	OpCleanup    = "cleanup"
)

// Events receives notifications about finished exports.
type Events interface {
	ExportEvent(format, shape string)
}

// Engine holds the initialized flag and the last error message.
type Engine struct {
	mu          sync.Mutex
	initialized bool
	lastErr     string
	w           fileio.Writer
	events      Events
	log         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWriter replaces the file-write collaborator (default fileio.OS{}).
func WithWriter(w fileio.Writer) Option { return func(e *Engine) { e.w = w } }

// WithEvents installs an export event sink.
func WithEvents(ev Events) Option { return func(e *Engine) { e.events = ev } }

// New returns an engine in the not-initialized state.
func New(opts ...Option) *Engine {
	e := &Engine{w: fileio.OS{}}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Engine) logger() *slog.Logger {
	if e.log == nil {
		e.log = applog.WithComponent("engine")
	}
	return e.log
}

// SetEvents replaces the export event sink; nil disables events.
func (e *Engine) SetEvents(ev Events) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = ev
}

// Initialize marks the engine ready. Calling it again is a no-op that succeeds.
func (e *Engine) Initialize() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := crash.Guard(OpInitialize, func() error {
		if e.initialized {
			return nil
		}
		e.initialized = true
		e.logger().Debug("engine initialized")
		return nil
	})
	return e.settle(OpInitialize, err)
}

// Initialized reports whether Initialize has been called since the last Cleanup.
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Cleanup clears the initialized state. It never fails and leaves the last
// error untouched unless it panics internally.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := crash.Guard(OpCleanup, func() error {
		if e.initialized {
			e.initialized = false
			e.logger().Debug("engine cleaned up")
		}
		return nil
	})
	if err != nil {
		e.setLastError("Error during cleanup")
	}
}

// LastError returns the most recent failure message, or "" if none occurred.
func (e *Engine) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Render builds the crosshair and returns its fragment without any I/O.
func (e *Engine) Render(p domain.RenderParams) (string, error) {
	var frag string
	err := e.run(OpRender, func() error {
		var err error
		frag, err = export.RenderOnly(p)
		return err
	})
	return frag, err
}

// ExportSVG writes the SVG document for p to path.
func (e *Engine) ExportSVG(p domain.RenderParams, path string) error {
	return e.run(OpExportSVG, func() error {
		if err := export.ExportSVG(e.w, p, path); err != nil {
			return err
		}
		e.emit("svg", p)
		return nil
	})
}

// ExportPNG writes the 8-byte PNG placeholder to path.
func (e *Engine) ExportPNG(p domain.RenderParams, path string) error {
	return e.run(OpExportPNG, func() error {
		if err := export.ExportPNG(e.w, p, path); err != nil {
			return err
		}
		e.emit("png", p)
		return nil
	})
}

// ExportPDF writes a vector PDF page for p to path.
func (e *Engine) ExportPDF(p domain.RenderParams, path string, opt export.PDFOptions) error {
	return e.run(OpExportPDF, func() error {
		if err := export.ExportPDF(e.w, p, path, opt); err != nil {
			return err
		}
		e.emit("pdf", p)
		return nil
	})
}

// Batch writes p in several formats; see export.BatchExport.
func (e *Engine) Batch(p domain.RenderParams, opt export.BatchOptions) ([]string, error) {
	var written []string
	err := e.run(OpBatch, func() error {
		var err error
		written, err = export.BatchExport(e.w, p, opt)
		if err != nil {
			return err
		}
		e.emit("batch", p)
		return nil
	})
	return written, err
}

// RenderCrosshair is the flag form of Render; the fragment is discarded.
func (e *Engine) RenderCrosshair(shape int32, argb uint32, size, thickness, opacity float64) bool {
	_, err := e.Render(domain.NewRenderParams(shape, argb, size, thickness, opacity))
	return err == nil
}

// ExportCrosshairAsSvg is the flag form of ExportSVG.
func (e *Engine) ExportCrosshairAsSvg(shape int32, argb uint32, size, thickness, opacity float64, path string) bool {
	return e.ExportSVG(domain.NewRenderParams(shape, argb, size, thickness, opacity), path) == nil
}

// ExportCrosshairAsPng is the flag form of ExportPNG.
func (e *Engine) ExportCrosshairAsPng(shape int32, argb uint32, size, thickness, opacity float64, path string) bool {
	return e.ExportPNG(domain.NewRenderParams(shape, argb, size, thickness, opacity), path) == nil
}

// run gates fn on the initialized flag, recovers panics and records failures.
func (e *Engine) run(op string, fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		e.settle(op, ErrNotInitialized)
		return ErrNotInitialized
	}
	err := crash.Guard(op, fn)
	e.settle(op, err)
	return err
}

// settle records err as the last error and reports success. Callers hold mu.
func (e *Engine) settle(op string, err error) bool {
	if err == nil {
		return true
	}
	msg := Message(op, err)
	e.setLastError(msg)
	l := applog.WithOperation(e.logger(), op)
	if crash.IsPanic(err) {
		l.Error("operation failed", slog.String("msg", msg))
	} else {
		l.Warn("operation failed", slog.String("msg", msg), slog.Any("err", err))
	}
	return false
}

func (e *Engine) setLastError(msg string) {
	e.lastErr = truncate(msg, MaxErrorLen)
}

func (e *Engine) emit(format string, p domain.RenderParams) {
	if e.events != nil {
		e.events.ExportEvent(format, p.Shape.String())
	}
}

// Message maps err to the text stored in the last-error slot.
func Message(op string, err error) string {
	switch {
	case errors.Is(err, ErrNotInitialized):
		return ErrNotInitialized.Error()
	case crash.IsPanic(err):
		return err.Error()
	case errors.Is(err, export.ErrCreate):
		switch op {
		case OpExportSVG:
			return "Failed to create output SVG file"
		case OpExportPNG:
			return "Failed to create output PNG file"
		case OpExportPDF:
			return "Failed to create output PDF file"
		}
	}
	if err.Error() == "" {
		return fmt.Sprintf("Unknown error during %s", op)
	}
	return err.Error()
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
