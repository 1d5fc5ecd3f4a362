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

package check_test

import (
	"testing"

	. "fillmore-labs.com/idlength/internal/check"
	"fillmore-labs.com/idlength/internal/classify"
	"fillmore-labs.com/idlength/internal/config"
)

func mustConfig(t *testing.T, modify func(*config.Options)) *config.Config {
	t.Helper()

	o := config.DefaultOptions()
	if modify != nil {
		modify(&o)
	}

	c, err := config.New(o)
	if err != nil {
		t.Fatalf("Can't create config: %v", err)
	}

	return c
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	decl := func(name string) classify.Occurrence {
		return classify.Occurrence{Name: name, Role: classify.RoleDeclaration}
	}
	key := func(name string) classify.Occurrence {
		return classify.Occurrence{Name: name, Role: classify.RolePropertyKey}
	}

	tests := []struct {
		name    string
		options func(*config.Options)
		occ     classify.Occurrence
		report  bool
		kind    Kind
		bound   int
		private bool
	}{
		{"short", nil, decl("x"), true, TooShort, 2, false},
		{"min inclusive", nil, decl("xy"), false, 0, 0, false},
		{"empty", func(o *config.Options) { o.Min = 0 }, decl(""), false, 0, 0, false},
		{"long", func(o *config.Options) { o.Max = 3 }, decl("abcd"), true, TooLong, 3, false},
		{"max inclusive", func(o *config.Options) { o.Max = 3 }, decl("abc"), false, 0, 0, false},
		{"astral", func(o *config.Options) { o.Min = 1; o.Max = 1 }, decl("𐌘"), false, 0, 0, false},
		{"reference", nil, classify.Occurrence{Name: "x", Role: classify.RoleReference}, false, 0, 0, false},
		{"computed", nil, classify.Occurrence{Name: "x", Role: classify.RolePropertyKey, IsComputed: true}, false, 0, 0, false},
		{"property", nil, key("a"), true, TooShort, 2, false},
		{"property never", func(o *config.Options) { o.Properties = config.PropertiesNever }, key("a"), false, 0, 0, false},
		{"binding never", func(o *config.Options) { o.Properties = config.PropertiesNever }, decl("a"), true, TooShort, 2, false},
		{"exception", func(o *config.Options) { o.Exceptions = []string{"x"} }, decl("x"), false, 0, 0, false},
		{"exception pattern", func(o *config.Options) { o.ExceptionPatterns = []string{"^[xy]$"} }, decl("y"), false, 0, 0, false},
		{"unanchored pattern", func(o *config.Options) { o.ExceptionPatterns = []string{"E"} }, decl("E"), false, 0, 0, false},
		{"no match", func(o *config.Options) { o.ExceptionPatterns = []string{"^[xy]$"} }, decl("z"), true, TooShort, 2, false},
		{"private", nil, classify.Occurrence{Name: "x", Role: classify.RolePrivateMember}, true, TooShort, 2, true},
		{"private never", func(o *config.Options) { o.Properties = config.PropertiesNever }, classify.Occurrence{Name: "x", Role: classify.RolePrivateMember}, true, TooShort, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mustConfig(t, tt.options)

			d, ok := Evaluate(tt.occ, cfg)
			if ok != tt.report {
				t.Fatalf("Evaluate(%q) reported = %t, want %t", tt.occ.Name, ok, tt.report)
			}

			if !ok {
				return
			}

			if d.Kind != tt.kind || d.Bound != tt.bound || d.Private != tt.private || d.Name != tt.occ.Name {
				t.Errorf("Evaluate(%q) = %v %d private=%t %q, want %v %d private=%t",
					tt.occ.Name, d.Kind, d.Bound, d.Private, d.Name, tt.kind, tt.bound, tt.private)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{TooShort: "tooShort", TooLong: "tooLong", Kind(7): "Kind(7)"} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestMessageID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Kind: TooShort}, "tooShort"},
		{Diagnostic{Kind: TooShort, Private: true}, "tooShortPrivate"},
		{Diagnostic{Kind: TooLong}, "tooLong"},
		{Diagnostic{Kind: TooLong, Private: true}, "tooLongPrivate"},
	}

	for _, tt := range tests {
		if got := tt.d.MessageID(); got != tt.want {
			t.Errorf("MessageID() = %q, want %q", got, tt.want)
		}
	}
}
