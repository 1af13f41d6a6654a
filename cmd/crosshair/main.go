/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Command crosshair renders and exports crosshair overlays and manages the preset library.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"crosshairengine/internal/config"
	"crosshairengine/internal/crash"
	"crosshairengine/internal/engine"
	applog "crosshairengine/internal/log"
	"crosshairengine/internal/telemetry"
	"crosshairengine/internal/version"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "crosshair - crosshair overlay engine")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  crosshair version                          Show version")
	_, _ = fmt.Fprintln(w, "  crosshair render [flags]                   Print the vector fragment")
	_, _ = fmt.Fprintln(w, "  crosshair svg <file> [flags]               Export an SVG document")
	_, _ = fmt.Fprintln(w, "  crosshair png <file> [flags]               Export the PNG placeholder (signature only)")
	_, _ = fmt.Fprintln(w, "  crosshair pdf <file> [flags] [--guides]    Export a vector PDF page")
	_, _ = fmt.Fprintln(w, "  crosshair batch <dir> [flags]              Export several formats (--set web|print, --format svg,png,pdf)")
	_, _ = fmt.Fprintln(w, "  crosshair preset save|get|list|delete|export ...")
	_, _ = fmt.Fprintln(w, "  crosshair import <profile.json>            Store a JSON profile in the preset library")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Render flags:")
	_, _ = fmt.Fprintln(w, "  -s, --shape      dot|cross|circle|square|chevron|custom or a numeric code")
	_, _ = fmt.Fprintln(w, "  -c, --color      #RRGGBB, #AARRGGBB, 0xAARRGGBB or decimal ARGB")
	_, _ = fmt.Fprintln(w, "      --size       size in pixels (> 0)")
	_, _ = fmt.Fprintln(w, "  -t, --thickness  line thickness in pixels (>= 0)")
	_, _ = fmt.Fprintln(w, "  -o, --opacity    opacity in [0,1]")
	_, _ = fmt.Fprintln(w, "  -p, --preset     start from a stored preset")
	_, _ = fmt.Fprintln(w, "      --db-driver  sqlite|pgx")
	_, _ = fmt.Fprintln(w, "      --db-dsn     preset library DSN or sqlite file")
}

// app carries the per-invocation state shared by subcommands.
type app struct {
	ctx    context.Context
	cfg    config.AppConfig
	eng    *engine.Engine
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	defer crash.Recover()

	cfg, token, cfgErr := config.Load()
	applog.Init(cfg.LogOptions())
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config not loaded, using defaults", slog.Any("err", cfgErr))
	}
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: invalid configuration:", err)
		return exitUsage
	}

	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "version", "--version", "-v":
		_, _ = fmt.Fprintln(stdout, version.String())
		return exitOK
	case "help", "--help", "-h":
		usage(stdout)
		return exitOK
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = applog.WithContextAttrs(ctx, slog.String("cmd", cmd))

	tc := telemetry.New(cfg.TelemetrySettings(token))
	defer func() {
		fctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		tc.Flush(fctx)
		tc.Close()
	}()

	eng := engine.Default()
	eng.SetEvents(tc)
	defer eng.SetEvents(nil)
	if !eng.Initialize() {
		_, _ = fmt.Fprintln(stderr, "Error:", eng.LastError())
		return exitFailure
	}
	defer eng.Cleanup()

	a := &app{ctx: ctx, cfg: cfg, eng: eng, stdout: stdout, stderr: stderr, log: l}
	l.DebugContext(ctx, "start", slog.Int("args", len(rest)))

	var err error
	switch cmd {
	case "render":
		err = a.render(rest)
	case "svg", "png", "pdf":
		err = a.exportOne(cmd, rest)
	case "batch":
		err = a.batch(rest)
	case "preset":
		err = a.preset(rest)
	case "import":
		err = a.importProfile(rest)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)
		return exitUsage
	}
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	default:
		l.ErrorContext(ctx, "command failed", slog.Any("err", err))
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return exitFailure
	}
}
