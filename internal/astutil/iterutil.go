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

package astutil

import (
	"iter"
	"slices"

	"fillmore-labs.com/idlength/internal/syntax"
)

// errorKind is the node type of parser recovery nodes.
const errorKind = "ERROR"

// AllSyntaxErrors yields the locations of the outermost syntax error nodes
// and of the tokens the parser inserted, in source order. Error nodes span
// skipped source, inserted tokens are empty. When the parser recovered
// without either, the file start is yielded.
func AllSyntaxErrors(file *syntax.File) iter.Seq[syntax.Loc] {
	return func(yield func(syntax.Loc) bool) {
		if file == nil || !file.HasErrors {
			return
		}

		var errs []syntax.Loc
		syntax.Inspect(file, func(n syntax.Node) bool {
			if o, ok := n.(*syntax.Other); ok && o.Kind == errorKind {
				errs = append(errs, o.Loc)

				return false
			}

			return true
		})

		for _, m := range file.Missing {
			if !slices.ContainsFunc(errs, func(e syntax.Loc) bool { return contains(e, m) }) {
				errs = append(errs, m)
			}
		}

		if len(errs) == 0 {
			yield(syntax.Loc{StartPos: file.Pos(), EndPos: file.Pos()})

			return
		}

		slices.SortStableFunc(errs, func(a, b syntax.Loc) int { return a.StartPos.Offset - b.StartPos.Offset })

		for _, loc := range errs {
			if !yield(loc) {
				return
			}
		}
	}
}

func contains(outer, inner syntax.Loc) bool {
	return outer.StartPos.Offset <= inner.StartPos.Offset && inner.EndPos.Offset <= outer.EndPos.Offset
}
