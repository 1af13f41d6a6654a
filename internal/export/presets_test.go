/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0
 */

package export

import (
	"os"
	"path/filepath"
	"testing"

	"crosshairengine/internal/domain"
	"crosshairengine/internal/fileio"
)

func TestBatchExport_WebPreset(t *testing.T) {
	out := filepath.Join(t.TempDir(), "web")
	p := domain.NewRenderParams(int32(domain.Circle), 0xFF00FF00, 16, 2, 1)
	written, err := BatchExport(fileio.OS{}, p, BatchOptions{Preset: PresetWeb, OutDir: out})
	if err != nil {
		t.Fatalf("batch export web: %v", err)
	}
	checks := []string{
		filepath.Join(out, "circle.svg"),
		filepath.Join(out, "circle.png"),
	}
	if len(written) != len(checks) {
		t.Fatalf("written = %v", written)
	}
	for _, p := range checks {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
		if st.Size() <= 0 {
			t.Fatalf("empty file: %s", p)
		}
	}
}

func TestBatchExport_PrintPresetNamed(t *testing.T) {
	m := fileio.NewMemory()
	p := domain.NewRenderParams(int32(domain.Chevron), 0xFFFFFFFF, 16, 2, 1)
	if _, err := BatchExport(m, p, BatchOptions{Preset: PresetPrint, Name: "sniper", OutDir: "out"}); err != nil {
		t.Fatalf("batch export print: %v", err)
	}
	for _, name := range []string{"sniper.pdf", "sniper.svg"} {
		if _, ok := m.Get(filepath.Join("out", name)); !ok {
			t.Fatalf("missing %s", name)
		}
	}
}

func TestBatchExport_UnknownFormat(t *testing.T) {
	_, err := BatchExport(fileio.NewMemory(), domain.RenderParams{Size: 1}, BatchOptions{Formats: []string{"gif"}, OutDir: "o"})
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := BatchExport(fileio.NewMemory(), domain.RenderParams{Size: 1}, BatchOptions{}); err == nil {
		t.Fatalf("expected error for missing out dir")
	}
}
