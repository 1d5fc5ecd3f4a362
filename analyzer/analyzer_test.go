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

package analyzer_test

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/idlength/analyzer"
	"fillmore-labs.com/idlength/internal/config"
)

const goSource = `package a

import _ "embed"

//go:embed a.js
var script string
`

const jsSource = `var x = 1;
var abcdef = { k: 2 };
class Foo { #p = 3; }
var ok = 4; //nolint:idlength
`

// runAnalyzer runs a on a package embedding a single JavaScript file and returns the
// diagnostics formatted as "line:column category message".
func runAnalyzer(t *testing.T, a *analysis.Analyzer, js string) ([]string, error) {
	t.Helper()

	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "a.go"), []byte(goSource), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "a.js"), []byte(js), 0o600); err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filepath.Join(dir, "a.go"), nil, parser.ParseComments)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	var got []string
	p := &analysis.Pass{
		Analyzer: a,
		Fset:     fset,
		Files:    []*ast.File{f},
		Report: func(d analysis.Diagnostic) {
			pos := fset.Position(d.Pos)
			if filepath.Base(pos.Filename) != "a.js" {
				t.Errorf("Diagnostic %q reported in %s", d.Message, pos.Filename)
			}

			got = append(got, fmt.Sprintf("%d:%d %s %s", pos.Line, pos.Column, d.Category, d.Message))
		},
	}

	_, err = a.Run(p)

	return got, err
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    []string
	}{
		{
			name: "Default",
			want: []string{
				"1:5 tooShort Identifier name 'x' is too short (< 2).",
				"2:16 tooShort Identifier name 'k' is too short (< 2).",
				"3:13 tooShortPrivate Identifier name '#p' is too short (< 2).",
			},
		},
		{
			name:    "Never",
			options: WithProperties(PropertiesNever),
			want: []string{
				"1:5 tooShort Identifier name 'x' is too short (< 2).",
				"3:13 tooShortPrivate Identifier name '#p' is too short (< 2).",
			},
		},
		{
			name:    "Bounds",
			options: Options{WithMin(1), WithMax(5)},
			want: []string{
				"2:5 tooLong Identifier name 'abcdef' is too long (> 5).",
			},
		},
		{
			name:    "Exceptions",
			options: Options{WithExceptions("x"), WithExceptionPatterns("^[kp]$")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := runAnalyzer(t, New(tt.options), jsSource)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzerInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    error
	}{
		{"bounds", Options{WithMin(5), WithMax(3)}, config.ErrInvalidBounds},
		{"pattern", WithExceptionPatterns("("), config.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := runAnalyzer(t, New(tt.options), jsSource); !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnalyzerGenerated(t *testing.T) {
	t.Parallel()

	const generated = "// Code generated by esbuild. DO NOT EDIT.\n\nvar x = 1;\n"

	got, err := runAnalyzer(t, New(), generated)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(got) != 0 {
		t.Errorf("Expected no diagnostics in generated file, got %v", got)
	}

	got, err = runAnalyzer(t, New(WithGenerated(true)), generated)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(got) != 1 {
		t.Errorf("Expected one diagnostic in generated file, got %v", got)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithMin(3), nil, Options{WithMax(Unbounded), WithProperties(PropertiesNever)}}

	if got, want := opts.LogValue().String(), "[min=3 nil=<nil> max=unbounded properties=never]"; got != want {
		t.Errorf("LogValue() = %q, want %q", got, want)
	}

	if got, want := opts.LogAttr().Key, "options"; got != want {
		t.Errorf("LogAttr().Key = %q, want %q", got, want)
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"defaults", nil, nil},
		{"bounds", Options{WithMin(3), WithMax(10)}, nil},
		{"max below min", Options{WithMin(3), WithMax(2)}, config.ErrInvalidBounds},
		{"negative min", Options{WithMin(-1)}, config.ErrInvalidBounds},
		{"pattern", Options{WithExceptionPatterns("[")}, config.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.opts.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}
