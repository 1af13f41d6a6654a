/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0
 */

package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"crosshairengine/internal/domain"
	"crosshairengine/internal/fileio"
)

// PresetName represents a named export preset.
type PresetName string

const (
	PresetWeb   PresetName = "web"
	PresetPrint PresetName = "print"
)

// BatchOptions controls exporting one crosshair into several formats at once.
//
// Path semantics:
//   - Files are named <Name>.<ext> inside OutDir; Name defaults to the shape name.
//   - OutDir is created when the writer can create directories.
//
//nolint:revive // keep fields explicit for clarity
type BatchOptions struct {
	Preset        PresetName
	Formats       []string // allowed: svg, png, pdf; empty means preset defaults
	Name          string
	IncludeGuides *bool // PDF only; when set, overrides the preset default
	OutDir        string
}

// BatchExport writes p in every requested format and returns the written paths.
func BatchExport(w fileio.Writer, p domain.RenderParams, opt BatchOptions) ([]string, error) {
	if strings.TrimSpace(opt.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	formats := opt.Formats
	if len(formats) == 0 {
		formats = presetDefaultFormats(opt.Preset)
	}
	name := strings.TrimSpace(opt.Name)
	if name == "" {
		name = p.Shape.String()
	}
	if d, ok := w.(interface{ EnsureDir(string) error }); ok {
		if err := d.EnsureDir(opt.OutDir); err != nil {
			return nil, fmt.Errorf("ensure out dir: %w", err)
		}
	}
	guides := presetIncludeGuides(opt.Preset)
	if opt.IncludeGuides != nil {
		guides = *opt.IncludeGuides
	}

	var written []string
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		out := filepath.Join(opt.OutDir, name+"."+f)
		var err error
		switch f {
		case "svg":
			err = ExportSVG(w, p, out)
		case "png":
			err = ExportPNG(w, p, out)
		case "pdf":
			err = ExportPDF(w, p, out, PDFOptions{Title: name, IncludeGuides: guides})
		default:
			return written, fmt.Errorf("unknown format: %s", f)
		}
		if err != nil {
			return written, fmt.Errorf("%s: %w", f, err)
		}
		written = append(written, out)
	}
	return written, nil
}

func presetDefaultFormats(p PresetName) []string {
	switch p {
	case PresetWeb:
		return []string{"svg", "png"}
	case PresetPrint:
		return []string{"pdf", "svg"}
	default:
		return []string{"svg"}
	}
}

func presetIncludeGuides(p PresetName) bool {
	return p == PresetPrint
}
