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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/idlength/analyzer"
)

func TestFlags(t *testing.T) {
	t.Parallel()

	const (
		shortX  = "1:5 tooShort Identifier name 'x' is too short (< 2)."
		shortY  = "1:11 tooShort Identifier name 'y' is too short (< 2)."
		longABC = "2:5 tooLong Identifier name 'abcd' is too long (> 3)."
	)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"Default", nil, []string{shortX, shortY}},
		{"Min", []string{"-min", "1"}, nil},
		{"Max", []string{"-max=3"}, []string{shortX, shortY, longABC}},
		{"Unbounded", []string{"-max=3", "-max="}, []string{shortX, shortY}},
		{"Exceptions", []string{"-exceptions=a,x", "-exceptions", "y", "-max=3"}, []string{longABC}},
		{"ExceptionPatterns", []string{"-exception-patterns=^[xy]$", "-exception-patterns", "^abcd$", "-max=3"}, nil},
		{"Properties", []string{"-properties=NEVER"}, []string{shortX}},
	}

	const js = "var x = { y: 1 };\nvar abcd;\n"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			got, err := runAnalyzer(t, a, js)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlagErrors(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-properties=sometimes"}, {"-max=many"}, {"-min=few"}} {
		a := New()
		a.Flags.Init("test", 0)
		a.Flags.SetOutput(&strings.Builder{})

		if err := a.Flags.Parse(args); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", args)
		}
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	a := New()

	var out strings.Builder
	a.Flags.SetOutput(&out)
	a.Flags.PrintDefaults()

	for _, want := range []string{
		"  -min int\n    \tminimum identifier length (default 2)\n",
		"  -properties value\n    \tcheck property names: \"always\" or \"never\"\n",
	} {
		if got := out.String(); !strings.Contains(got, want) {
			t.Errorf("PrintDefaults() = %q, want %q", got, want)
		}
	}
}
