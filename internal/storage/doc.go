/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package storage implements the preset library: named crosshair descriptions kept in SQL.
// The local library is an embedded SQLite file (modernc.org/sqlite, WAL mode); a shared
// team library lives in PostgreSQL through the pgx stdlib driver. Both use the same
// schema, a single-row version table and forward-only migrations.
package storage
