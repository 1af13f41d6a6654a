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
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crosshairengine/internal/domain"
)

var (
	// ErrNotFound is returned when no preset has the requested name.
	ErrNotFound = errors.New("preset not found")
	// ErrInvalidName is returned for empty preset names.
	ErrInvalidName = errors.New("preset name is required")
)

// Preset is a named crosshair description.
type Preset struct {
	Name      string
	Params    domain.RenderParams
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Put inserts or replaces the preset with p.Name. CreatedAt is kept on replace.
func (s *Store) Put(ctx context.Context, p Preset) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrInvalidName
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	q := `INSERT INTO presets (name, shape, color, size, thickness, opacity, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			shape=excluded.shape, color=excluded.color, size=excluded.size,
			thickness=excluded.thickness, opacity=excluded.opacity, note=excluded.note,
			updated_at=excluded.updated_at`
	_, err := s.exec(ctx, q,
		name,
		int64(p.Params.Shape),
		int64(p.Params.Color.ARGB()),
		p.Params.Size,
		p.Params.Thickness,
		p.Params.Opacity,
		p.Note,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("put preset %q: %w", name, err)
	}
	s.log.Debug("preset saved", slog.String("name", name), slog.String("shape", p.Params.Shape.String()))
	return nil
}

// Get returns the preset called name or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (Preset, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT name, shape, color, size, thickness, opacity, note, created_at, updated_at
		FROM presets WHERE name=?`), strings.TrimSpace(name))
	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("get preset %q: %w", name, err)
	}
	return p, nil
}

// List returns all presets ordered by name.
func (s *Store) List(ctx context.Context) ([]Preset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, shape, color, size, thickness, opacity, note, created_at, updated_at
		FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return out, nil
}

// Delete removes the preset called name or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.exec(ctx, `DELETE FROM presets WHERE name=?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(r scanner) (Preset, error) {
	var (
		p                    Preset
		shape, color         int64
		created, updated     string
		size, thick, opacity float64
	)
	if err := r.Scan(&p.Name, &shape, &color, &size, &thick, &opacity, &p.Note, &created, &updated); err != nil {
		return Preset{}, err
	}
	p.Params = domain.RenderParams{
		Shape:     domain.ShapeKind(shape),
		Color:     domain.DecodeARGB(uint32(color)),
		Size:      size,
		Thickness: thick,
		Opacity:   opacity,
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return p, nil
}
