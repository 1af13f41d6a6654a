/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"crosshairengine/internal/domain"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "lib", "presets.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPresetPutGetListDelete(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	sniper := Preset{Name: "sniper", Note: "long range", Params: domain.NewRenderParams(int32(domain.Chevron), 0x80FF00FF, 12, 2, 0.8)}
	dot := Preset{Name: "dot", Params: domain.NewRenderParams(int32(domain.Dot), 0xFFFF0000, 4, 0, 1)}
	for _, p := range []Preset{sniper, dot} {
		if err := s.Put(ctx, p); err != nil {
			t.Fatalf("put %s: %v", p.Name, err)
		}
	}

	got, err := s.Get(ctx, "sniper")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Params != sniper.Params || got.Note != "long range" {
		t.Fatalf("get mismatch: %#v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("created_at not parsed")
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "dot" || list[1].Name != "sniper" {
		t.Fatalf("list order: %#v", list)
	}

	if err := s.Delete(ctx, "dot"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "dot"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "dot"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPresetPutReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	p := Preset{Name: "x", Params: domain.NewRenderParams(1, 0xFFFFFFFF, 10, 2, 1)}
	if err := s.Put(ctx, p); err != nil {
		t.Fatal(err)
	}
	first, _ := s.Get(ctx, "x")
	p.Params.Size = 20
	if err := s.Put(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(ctx, "x")
	if got.Params.Size != 20 {
		t.Fatalf("size not replaced: %v", got.Params.Size)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at changed on replace")
	}
}

func TestPresetUnknownShapeCodePreserved(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	if err := s.Put(ctx, Preset{Name: "odd", Params: domain.NewRenderParams(99, 0, 1, 1, 1)}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "odd")
	if err != nil {
		t.Fatal(err)
	}
	if got.Params.Shape != 99 {
		t.Fatalf("shape code = %d", got.Params.Shape)
	}
}

func TestPresetRejectsEmptyName(t *testing.T) {
	s := openTemp(t)
	if err := s.Put(context.Background(), Preset{Name: "  "}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "x"); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
	if _, err := Open(context.Background(), DriverSQLite, ""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestRebind(t *testing.T) {
	pg := &Store{driver: DriverPostgres}
	if got := pg.rebind(`SELECT a FROM t WHERE x=? AND y=?`); got != `SELECT a FROM t WHERE x=$1 AND y=$2` {
		t.Fatalf("rebind pgx = %q", got)
	}
	lite := &Store{driver: DriverSQLite}
	if got := lite.rebind(`x=?`); got != `x=?` {
		t.Fatalf("rebind sqlite = %q", got)
	}
}
