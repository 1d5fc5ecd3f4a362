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

// Package report converts identifier length diagnostics into analysis diagnostics.
package report

import (
	"context"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/idlength/internal/astutil"
	"fillmore-labs.com/idlength/internal/lint"
	"fillmore-labs.com/idlength/internal/syntax"
)

// CategorySyntax is the category of syntax error diagnostics.
const CategorySyntax = "syntax"

// span is a source range in the pass's file set.
type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }

func (s span) End() token.Pos { return s.end }

// ProcessDiagnostics reports the diagnostics of a checked file.
//
// Source positions are mapped through tf, which must have been added to the pass's
// file set for this file. The message identifier is used as the diagnostic category.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, tf *token.File, result lint.Result) {
	if result.Skipped {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, loc := range result.SyntaxErrors {
		rng, ok := position(tf, loc)
		if !ok {
			astutil.InternalError(p, span{tf.Pos(0), tf.Pos(0)}, "Syntax error outside of %s at offset %d", tf.Name(), loc.StartPos.Offset)

			continue
		}

		message := "Syntax error, identifiers in this region are not checked"
		if loc.StartPos.Offset == loc.EndPos.Offset {
			message = "Syntax error, missing token"
		}

		p.Report(analysis.Diagnostic{
			Pos:      rng.pos,
			End:      rng.end,
			Category: CategorySyntax,
			Message:  message,
		})
	}

	for _, d := range result.Diagnostics {
		rng, ok := position(tf, d.Loc)
		if !ok {
			astutil.InternalError(p, span{tf.Pos(0), tf.Pos(0)}, "Identifier %q outside of %s at offset %d", d.Name, tf.Name(), d.Loc.StartPos.Offset)

			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      rng.pos,
			End:      rng.end,
			Category: d.MessageID(),
			Message:  Message(d),
		})
	}
}

// position maps a source range to the file set.
func position(tf *token.File, loc syntax.Loc) (span, bool) {
	start, end := loc.StartPos.Offset, loc.EndPos.Offset
	if start < 0 || end < start || end > tf.Size() {
		return span{}, false
	}

	return span{tf.Pos(start), tf.Pos(end)}, true
}
