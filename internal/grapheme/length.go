// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package grapheme counts user-perceived characters.
package grapheme

import "github.com/rivo/uniseg"

// Length returns the number of extended grapheme clusters in name.
//
// Astral characters count as one, and a base character followed by combining
// marks or variation selectors counts as one. The empty string has length 0.
func Length(name string) int {
	if name == "" {
		return 0
	}

	return uniseg.GraphemeClusterCount(name)
}
