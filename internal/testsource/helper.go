// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource provides utilities for parsing JavaScript source code in tests.
package testsource

import (
	"testing"

	"fillmore-labs.com/idlength/internal/jsparse"
	"fillmore-labs.com/idlength/internal/syntax"
)

// Parse parses a JavaScript source fragment into a syntax tree.
// It fails the test when the parser had to recover from syntax errors.
func Parse(tb testing.TB, src string) *syntax.File {
	tb.Helper()

	f, err := jsparse.Parse(tb.Context(), []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if f.HasErrors {
		tb.Fatalf("Source %q has syntax errors", src)
	}

	return f
}

// First returns the first node of type T in source order.
func First[T syntax.Node](tb testing.TB, f *syntax.File) T {
	tb.Helper()

	for n := range syntax.Preorder(f) {
		if t, ok := n.(T); ok {
			return t
		}
	}

	var zero T
	tb.Fatalf("Can't find %T", zero)

	return zero
}
