/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import "crosshairengine/internal/engine"

// errBufSize holds the longest message plus the terminator.
const errBufSize = engine.MaxErrorLen + 1

func flag(ok bool) int32 {
	if ok {
		return 1
	}
	return 0
}

// fillErrorBuffer copies msg into dst as a NUL-terminated C string, truncating to fit.
func fillErrorBuffer(dst []byte, msg string) {
	if len(dst) == 0 {
		return
	}
	n := copy(dst[:len(dst)-1], msg)
	dst[n] = 0
}
