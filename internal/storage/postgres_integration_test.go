/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"crosshairengine/internal/domain"
)

// openPGForTest connects to the shared library named by CHE_PG_DSN, skipping when unset or unreachable.
func openPGForTest(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("CHE_PG_DSN")
	if dsn == "" {
		t.Skip("CHE_PG_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Open(ctx, DriverPostgres, dsn)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPostgres_PresetRoundTrip(t *testing.T) {
	s := openPGForTest(t)
	ctx := context.Background()
	name := "it-" + time.Now().UTC().Format("150405.000000")
	p := Preset{Name: name, Params: domain.NewRenderParams(int32(domain.Square), 0xFF00FF00, 16, 1.5, 0.75)}
	if err := s.Put(ctx, p); err != nil {
		t.Fatalf("put: %v", err)
	}
	t.Cleanup(func() { _ = s.Delete(context.Background(), name) })
	got, err := s.Get(ctx, name)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Params != p.Params {
		t.Fatalf("round trip mismatch: %#v", got.Params)
	}
	if err := s.Delete(ctx, name); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, name); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
