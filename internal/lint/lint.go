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

// Package lint applies the identifier length checks to JavaScript syntax trees.
package lint

import (
	"context"
	"fmt"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/idlength/internal/astutil"
	"fillmore-labs.com/idlength/internal/check"
	"fillmore-labs.com/idlength/internal/classify"
	"fillmore-labs.com/idlength/internal/config"
	"fillmore-labs.com/idlength/internal/jsparse"
	"fillmore-labs.com/idlength/internal/syntax"
)

// Linter checks identifier lengths with a fixed configuration.
// It holds no per-file state and is safe for concurrent use.
type Linter struct {
	cfg *config.Config
}

// New creates a [Linter] for the given configuration.
func New(cfg *config.Config) Linter {
	return Linter{cfg: cfg}
}

// File checks all identifiers of f and returns the diagnostics sorted by source offset.
//
// Nodes are visited in pre-order, so diagnostics at the same offset keep
// outer-to-inner order.
func (l Linter) File(ctx context.Context, f *syntax.File) []check.Diagnostic {
	defer trace.StartRegion(ctx, "LintFile").End()

	var diagnostics []check.Diagnostic

	for n := range syntax.Preorder(f) {
		for occ := range classify.Occurrences(n) {
			if d, ok := check.Evaluate(occ, l.cfg); ok {
				diagnostics = append(diagnostics, d)
			}
		}
	}

	slices.SortStableFunc(diagnostics, func(a, b check.Diagnostic) int {
		return a.Loc.StartPos.Offset - b.Loc.StartPos.Offset
	})

	return diagnostics
}

// Result is the outcome of checking a single source file.
type Result struct {
	// Diagnostics are the unsuppressed length violations, sorted by source offset.
	Diagnostics []check.Diagnostic

	// SyntaxErrors are the locations the parser had to recover from.
	SyntaxErrors []syntax.Loc

	// Skipped is set for generated or excluded files.
	Skipped bool
}

// Source parses and checks a JavaScript source file.
//
// Generated files are skipped unless enabled in the configuration. Diagnostics
// followed by a nolint comment on the same line are dropped.
func (l Linter) Source(ctx context.Context, filename string, src []byte) (Result, error) {
	f, err := jsparse.Parse(ctx, src)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", filename, err)
	}

	currentFile := astutil.NewCurrentFile(filename, f)

	// Skip generated files
	if currentFile.Generated() && !l.cfg.Enabled(config.IncludeGenerated) {
		return Result{Skipped: true}, nil
	}

	// Skip files with nolint comment
	if currentFile.NoLint() {
		return Result{Skipped: true}, nil
	}

	diagnostics := slices.DeleteFunc(l.File(ctx, f), func(d check.Diagnostic) bool {
		return currentFile.NoLintComment(d.Loc.Pos())
	})

	return Result{
		Diagnostics:  diagnostics,
		SyntaxErrors: slices.Collect(astutil.AllSyntaxErrors(f)),
	}, nil
}
