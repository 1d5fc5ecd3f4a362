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

package report_test

import (
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/idlength/internal/check"
	"fillmore-labs.com/idlength/internal/lint"
	. "fillmore-labs.com/idlength/internal/report"
	"fillmore-labs.com/idlength/internal/syntax"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    check.Diagnostic
		want string
	}{
		{check.Diagnostic{Kind: check.TooShort, Name: "x", Bound: 2}, "Identifier name 'x' is too short (< 2)."},
		{check.Diagnostic{Kind: check.TooShort, Private: true, Name: "x", Bound: 2}, "Identifier name '#x' is too short (< 2)."},
		{check.Diagnostic{Kind: check.TooLong, Name: "abcdef", Bound: 5}, "Identifier name 'abcdef' is too long (> 5)."},
		{check.Diagnostic{Kind: check.TooLong, Private: true, Name: "abcdef", Bound: 5}, "Identifier name '#abcdef' is too long (> 5)."},
	}

	for _, tt := range tests {
		if got := Message(tt.d); got != tt.want {
			t.Errorf("Message() = %q, want %q", got, tt.want)
		}
	}
}

func loc(start, end int) syntax.Loc {
	return syntax.Loc{StartPos: syntax.Pos{Offset: start, Line: 1, Column: start + 1}, EndPos: syntax.Pos{Offset: end, Line: 1, Column: end + 1}}
}

func TestProcessDiagnostics(t *testing.T) {
	t.Parallel()

	src := []byte("var x = 1; this.#y = 2;")

	fset := token.NewFileSet()
	tf := fset.AddFile("a.js", -1, len(src))
	tf.SetLinesForContent(src)

	var got []analysis.Diagnostic
	p := &analysis.Pass{Fset: fset, Report: func(d analysis.Diagnostic) { got = append(got, d) }}

	result := lint.Result{Diagnostics: []check.Diagnostic{
		{Kind: check.TooShort, Name: "x", Bound: 2, Loc: loc(4, 5)},
		{Kind: check.TooShort, Private: true, Name: "y", Bound: 2, Loc: loc(16, 18)},
		{Kind: check.TooShort, Name: "z", Bound: 2, Loc: loc(40, 41)},
	}}

	ProcessDiagnostics(t.Context(), p, tf, result)

	want := []analysis.Diagnostic{
		{Pos: tf.Pos(4), End: tf.Pos(5), Category: "tooShort", Message: "Identifier name 'x' is too short (< 2)."},
		{Pos: tf.Pos(16), End: tf.Pos(18), Category: "tooShortPrivate", Message: "Identifier name '#y' is too short (< 2)."},
		{Pos: tf.Pos(0), End: tf.Pos(0), Category: "internal", Message: `Internal Error: Identifier "z" outside of a.js at offset 40`},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}

	if pos := fset.Position(got[1].Pos); pos.Line != 1 || pos.Column != 17 {
		t.Errorf("Expected position 1:17, got %v", pos)
	}
}

func TestProcessSkipped(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	tf := fset.AddFile("a.min.js", -1, 10)

	p := &analysis.Pass{Fset: fset, Report: func(d analysis.Diagnostic) { t.Errorf("Unexpected diagnostic %q", d.Message) }}

	ProcessDiagnostics(t.Context(), p, tf, lint.Result{
		Skipped:     true,
		Diagnostics: []check.Diagnostic{{Kind: check.TooShort, Name: "a", Bound: 2, Loc: loc(4, 5)}},
	})
}

func TestProcessSyntaxErrors(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	tf := fset.AddFile("a.js", -1, 10)

	var got []string
	p := &analysis.Pass{Fset: fset, Report: func(d analysis.Diagnostic) { got = append(got, d.Category+": "+d.Message) }}

	ProcessDiagnostics(t.Context(), p, tf, lint.Result{SyntaxErrors: []syntax.Loc{loc(2, 5), loc(7, 7)}})

	want := []string{
		CategorySyntax + ": Syntax error, identifiers in this region are not checked",
		CategorySyntax + ": Syntax error, missing token",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}
}
