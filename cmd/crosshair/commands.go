/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"crosshairengine/internal/domain"
	"crosshairengine/internal/export"
	"crosshairengine/internal/profile"
	"crosshairengine/internal/storage"
)

// renderFlags are shared by every command that takes crosshair parameters.
type renderFlags struct {
	fs        *pflag.FlagSet
	shape     string
	color     string
	size      float64
	thickness float64
	opacity   float64
	preset    string
	dbDriver  string
	dbDSN     string
}

func (a *app) newFlags(name string) *renderFlags {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	f := &renderFlags{fs: fs}
	fs.StringVarP(&f.shape, "shape", "s", a.cfg.Render.Shape, "Shape name or numeric code")
	fs.StringVarP(&f.color, "color", "c", a.cfg.Render.Color, "Color as #RRGGBB, #AARRGGBB, 0xAARRGGBB or decimal ARGB")
	fs.Float64Var(&f.size, "size", a.cfg.Render.Size, "Size in pixels")
	fs.Float64VarP(&f.thickness, "thickness", "t", a.cfg.Render.Thickness, "Line thickness in pixels")
	fs.Float64VarP(&f.opacity, "opacity", "o", a.cfg.Render.Opacity, "Opacity in [0,1]")
	fs.StringVarP(&f.preset, "preset", "p", "", "Start from a stored preset")
	fs.StringVar(&f.dbDriver, "db-driver", a.cfg.Presets.Driver, "Preset library driver (sqlite|pgx)")
	fs.StringVar(&f.dbDSN, "db-dsn", a.cfg.Presets.DSN, "Preset library DSN or sqlite file")
	return f
}

func (f *renderFlags) parse(args []string) error {
	if err := f.fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// params resolves config defaults, then the named preset, then explicitly set flags.
func (a *app) params(f *renderFlags) (domain.RenderParams, error) {
	p, err := a.cfg.RenderParams()
	if err != nil {
		return p, err
	}
	if f.preset != "" {
		st, err := a.openStore(f)
		if err != nil {
			return p, err
		}
		defer func() { _ = st.Close() }()
		pr, err := st.Get(a.ctx, f.preset)
		if err != nil {
			return p, err
		}
		p = pr.Params
	}
	if f.fs.Changed("shape") {
		k, err := domain.ParseShapeKind(f.shape)
		if err != nil {
			return p, fmt.Errorf("%w: %v", errUsage, err)
		}
		p.Shape = k
	}
	if f.fs.Changed("color") {
		c, err := domain.ParseColor(f.color)
		if err != nil {
			return p, fmt.Errorf("%w: %v", errUsage, err)
		}
		p.Color = c
	}
	if f.fs.Changed("size") {
		p.Size = f.size
	}
	if f.fs.Changed("thickness") {
		p.Thickness = f.thickness
	}
	if f.fs.Changed("opacity") {
		p.Opacity = f.opacity
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("%w: %v", errUsage, err)
	}
	return p, nil
}

func (a *app) openStore(f *renderFlags) (*storage.Store, error) {
	cfg := a.cfg
	cfg.Presets.Driver = f.dbDriver
	cfg.Presets.DSN = f.dbDSN
	dsn, err := cfg.PresetsDSN()
	if err != nil {
		return nil, err
	}
	return storage.Open(a.ctx, f.dbDriver, dsn)
}

// engineErr turns a failed boundary call into the recorded message.
func (a *app) engineErr() error { return errors.New(a.eng.LastError()) }

func (a *app) render(args []string) error {
	f := a.newFlags("render")
	if err := f.parse(args); err != nil {
		return err
	}
	p, err := a.params(f)
	if err != nil {
		return err
	}
	frag, err := a.eng.Render(p)
	if err != nil {
		return a.engineErr()
	}
	_, _ = fmt.Fprint(a.stdout, frag)
	return nil
}

func (a *app) exportOne(format string, args []string) error {
	f := a.newFlags(format)
	var guides bool
	if format == "pdf" {
		f.fs.BoolVar(&guides, "guides", false, "Draw border and center guides")
	}
	if err := f.parse(args); err != nil {
		return err
	}
	if f.fs.NArg() != 1 {
		return fmt.Errorf("%w: %s requires exactly one output file", errUsage, format)
	}
	out := f.fs.Arg(0)
	p, err := a.params(f)
	if err != nil {
		return err
	}
	switch format {
	case "svg":
		err = a.eng.ExportSVG(p, out)
	case "png":
		err = a.eng.ExportPNG(p, out)
	case "pdf":
		err = a.eng.ExportPDF(p, out, export.PDFOptions{IncludeGuides: guides})
	}
	if err != nil {
		return a.engineErr()
	}
	a.log.InfoContext(a.ctx, "exported", slog.String("format", format), slog.String("path", out))
	_, _ = fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *app) batch(args []string) error {
	f := a.newFlags("batch")
	var set, name string
	var formats []string
	f.fs.StringVar(&set, "set", string(export.PresetWeb), "Export set (web|print)")
	f.fs.StringSliceVar(&formats, "format", nil, "Formats to write (svg,png,pdf); overrides --set")
	f.fs.StringVar(&name, "name", "", "Base file name (default: shape name)")
	if err := f.parse(args); err != nil {
		return err
	}
	if f.fs.NArg() != 1 {
		return fmt.Errorf("%w: batch requires an output directory", errUsage)
	}
	p, err := a.params(f)
	if err != nil {
		return err
	}
	if name == "" {
		name = f.preset
	}
	written, err := a.eng.Batch(p, export.BatchOptions{
		Preset:  export.PresetName(set),
		Formats: formats,
		Name:    name,
		OutDir:  f.fs.Arg(0),
	})
	if err != nil {
		return a.engineErr()
	}
	for _, w := range written {
		_, _ = fmt.Fprintln(a.stdout, w)
	}
	return nil
}

func (a *app) preset(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: preset requires save|get|list|delete|export", errUsage)
	}
	sub, rest := args[0], args[1:]
	f := a.newFlags("preset " + sub)
	var note string
	if sub == "save" {
		f.fs.StringVar(&note, "note", "", "Free-form note")
	}
	if err := f.parse(rest); err != nil {
		return err
	}
	need := map[string]int{"save": 1, "get": 1, "list": 0, "delete": 1, "export": 2}
	n, ok := need[sub]
	if !ok {
		return fmt.Errorf("%w: unknown preset command %q", errUsage, sub)
	}
	if f.fs.NArg() != n {
		return fmt.Errorf("%w: preset %s expects %d argument(s)", errUsage, sub, n)
	}

	var p domain.RenderParams
	if sub == "save" {
		var err error
		if p, err = a.params(f); err != nil {
			return err
		}
	}
	st, err := a.openStore(f)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	switch sub {
	case "save":
		name := f.fs.Arg(0)
		if err := st.Put(a.ctx, storage.Preset{Name: name, Params: p, Note: note}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(a.stdout, "saved %s\n", name)
	case "get":
		pr, err := st.Get(a.ctx, f.fs.Arg(0))
		if err != nil {
			return err
		}
		b, err := profile.Encode(profile.Profile{Name: pr.Name, Note: pr.Note, Params: pr.Params})
		if err != nil {
			return err
		}
		_, _ = a.stdout.Write(b)
	case "list":
		list, err := st.List(a.ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "NAME\tSHAPE\tCOLOR\tSIZE\tTHICKNESS\tOPACITY")
		for _, pr := range list {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", pr.Name, pr.Params.Shape, pr.Params.Color.RGBA(),
				domain.FormatNumber(pr.Params.Size), domain.FormatNumber(pr.Params.Thickness), domain.FormatNumber(pr.Params.Opacity))
		}
		_ = tw.Flush()
	case "delete":
		if err := st.Delete(a.ctx, f.fs.Arg(0)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(a.stdout, "deleted %s\n", f.fs.Arg(0))
	case "export":
		pr, err := st.Get(a.ctx, f.fs.Arg(0))
		if err != nil {
			return err
		}
		b, err := profile.Encode(profile.Profile{Name: pr.Name, Note: pr.Note, Params: pr.Params})
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.fs.Arg(1), b, 0o644); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}
		_, _ = fmt.Fprintln(a.stdout, f.fs.Arg(1))
	}
	return nil
}

func (a *app) importProfile(args []string) error {
	f := a.newFlags("import")
	var rename string
	f.fs.StringVar(&rename, "name", "", "Store under this name instead of the profile's")
	if err := f.parse(args); err != nil {
		return err
	}
	if f.fs.NArg() != 1 {
		return fmt.Errorf("%w: import requires a profile file", errUsage)
	}
	pr, err := profile.Load(f.fs.Arg(0))
	if err != nil {
		return err
	}
	if strings.TrimSpace(rename) != "" {
		pr.Name = rename
	}
	st, err := a.openStore(f)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	if err := st.Put(a.ctx, storage.Preset{Name: pr.Name, Note: pr.Note, Params: pr.Params}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(a.stdout, "imported %s\n", pr.Name)
	return nil
}
