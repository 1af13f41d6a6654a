/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package crosshair

import "crosshairengine/internal/domain"

// New selects the generator for p.Shape. Custom and every code outside the
// known set produce a Cross; construction never fails.
func New(p domain.RenderParams) Shape {
	b := newBase(p)
	switch p.Shape {
	case domain.Dot:
		return &Dot{b}
	case domain.Circle:
		return &Circle{b}
	case domain.Square:
		return &Square{b}
	case domain.Chevron:
		return &Chevron{b}
	case domain.Cross, domain.Custom:
		return &Cross{b}
	default:
		return &Cross{b}
	}
}
