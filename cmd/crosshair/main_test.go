/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crosshairengine/internal/config"
	"crosshairengine/internal/export"
)

type noTokens struct{}

func (noTokens) Get(string, string) (string, error) { return "", errors.New("no keyring in tests") }
func (noTokens) Set(string, string, string) error   { return nil }
func (noTokens) Delete(string, string) error        { return nil }

func TestMain(m *testing.M) {
	config.SetTokenStore(noTokens{})
	os.Exit(m.Run())
}

// sandbox isolates config, logging and the preset library in a temp dir.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigFile, filepath.Join(dir, "config.yaml"))
	t.Setenv(config.EnvPresetsDSN, filepath.Join(dir, "presets.sqlite"))
	t.Setenv(config.EnvLogLevel, "off")
	t.Setenv(config.EnvTelemetryOptIn, "")
	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestVersionAndUsage(t *testing.T) {
	sandbox(t)
	if code, out, _ := runCLI(t, "version"); code != exitOK || strings.TrimSpace(out) == "" {
		t.Fatalf("version: code=%d out=%q", code, out)
	}
	if code, _, _ := runCLI(t); code != exitUsage {
		t.Fatalf("no args: code=%d", code)
	}
	if code, _, errOut := runCLI(t, "frobnicate"); code != exitUsage || !strings.Contains(errOut, "unknown command") {
		t.Fatalf("unknown: code=%d err=%q", code, errOut)
	}
}

func TestRenderPrintsFragment(t *testing.T) {
	sandbox(t)
	code, out, errOut := runCLI(t, "render", "--shape", "dot", "-c", "#ff0000", "--size", "10")
	if code != exitOK {
		t.Fatalf("render: code=%d err=%q", code, errOut)
	}
	want := `  <circle cx="20" cy="20" r="5" fill="#ff0000" opacity="1" />` + "\n"
	if out != want {
		t.Fatalf("fragment = %q, want %q", out, want)
	}
}

func TestExportSvgPngPdf(t *testing.T) {
	dir := sandbox(t)
	svg := filepath.Join(dir, "x.svg")
	png := filepath.Join(dir, "x.png")
	pdf := filepath.Join(dir, "x.pdf")
	for _, args := range [][]string{
		{"svg", svg, "-s", "circle"},
		{"png", png},
		{"pdf", pdf, "--guides", "-s", "chevron"},
	} {
		if code, _, errOut := runCLI(t, args...); code != exitOK {
			t.Fatalf("%v: code=%d err=%q", args, code, errOut)
		}
	}
	b, _ := os.ReadFile(png)
	if string(b) != export.PNGSignature {
		t.Fatalf("png bytes = %v", b)
	}
	b, _ = os.ReadFile(svg)
	if !strings.Contains(string(b), "<circle") || !strings.Contains(string(b), `fill="none"`) {
		t.Fatalf("svg = %s", b)
	}
	b, _ = os.ReadFile(pdf)
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("not a pdf")
	}
}

func TestExportFailureReportsLastError(t *testing.T) {
	dir := sandbox(t)
	code, _, errOut := runCLI(t, "svg", filepath.Join(dir, "missing", "x.svg"))
	if code != exitFailure {
		t.Fatalf("code=%d", code)
	}
	if !strings.Contains(errOut, "Failed to create output SVG file") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestInvalidParamsAreUsageErrors(t *testing.T) {
	dir := sandbox(t)
	for _, args := range [][]string{
		{"svg", filepath.Join(dir, "a.svg"), "--size", "0"},
		{"svg", filepath.Join(dir, "a.svg"), "--opacity", "1.5"},
		{"svg", filepath.Join(dir, "a.svg"), "--color", "mauve"},
		{"svg"},
		{"svg", "--bogus-flag"},
	} {
		if code, _, _ := runCLI(t, args...); code != exitUsage {
			t.Fatalf("%v: code=%d, want %d", args, code, exitUsage)
		}
	}
}

func TestBatchWebSet(t *testing.T) {
	dir := sandbox(t)
	out := filepath.Join(dir, "out")
	code, stdout, errOut := runCLI(t, "batch", out, "--set", "web", "--name", "hud")
	if code != exitOK {
		t.Fatalf("batch: code=%d err=%q", code, errOut)
	}
	for _, name := range []string{"hud.svg", "hud.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if !strings.Contains(stdout, name) {
			t.Fatalf("stdout missing %s: %q", name, stdout)
		}
	}
}

func TestPresetLifecycle(t *testing.T) {
	dir := sandbox(t)
	if code, _, errOut := runCLI(t, "preset", "save", "sniper", "-s", "chevron", "-c", "0x80FF00FF", "--size", "12", "--note", "long range"); code != exitOK {
		t.Fatalf("save: code=%d err=%q", code, errOut)
	}
	code, out, _ := runCLI(t, "preset", "list")
	if code != exitOK || !strings.Contains(out, "sniper") || !strings.Contains(out, "chevron") {
		t.Fatalf("list: code=%d out=%q", code, out)
	}
	code, out, _ = runCLI(t, "preset", "get", "sniper")
	if code != exitOK || !strings.Contains(out, `"shape": "chevron"`) || !strings.Contains(out, `"color": "#80ff00ff"`) {
		t.Fatalf("get: code=%d out=%q", code, out)
	}

	// render from the preset, overriding one field
	code, out, _ = runCLI(t, "render", "-p", "sniper", "--size", "8")
	if code != exitOK || strings.Count(out, "<path") != 2 {
		t.Fatalf("render preset: code=%d out=%q", code, out)
	}

	profilePath := filepath.Join(dir, "sniper.json")
	if code, _, errOut := runCLI(t, "preset", "export", "sniper", profilePath); code != exitOK {
		t.Fatalf("export: code=%d err=%q", code, errOut)
	}
	if code, _, _ := runCLI(t, "preset", "delete", "sniper"); code != exitOK {
		t.Fatalf("delete failed")
	}
	if code, _, _ := runCLI(t, "preset", "get", "sniper"); code != exitFailure {
		t.Fatalf("get after delete: code=%d", code)
	}
	if code, out, errOut := runCLI(t, "import", profilePath, "--name", "restored"); code != exitOK || !strings.Contains(out, "restored") {
		t.Fatalf("import: code=%d out=%q err=%q", code, out, errOut)
	}
	if code, out, _ := runCLI(t, "preset", "get", "restored"); code != exitOK || !strings.Contains(out, "long range") {
		t.Fatalf("get restored: code=%d out=%q", code, out)
	}
}

func TestImportRejectsInvalidProfile(t *testing.T) {
	dir := sandbox(t)
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name":"x","shape":"dot"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := runCLI(t, "import", bad)
	if code != exitFailure || !strings.Contains(errOut, "invalid crosshair profile") {
		t.Fatalf("code=%d err=%q", code, errOut)
	}
}
