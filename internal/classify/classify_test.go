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

package classify_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/idlength/internal/classify"
	"fillmore-labs.com/idlength/internal/syntax"
	"fillmore-labs.com/idlength/internal/testsource"
)

type occurrence struct {
	Name      string
	Role      string
	Computed  bool
	Shorthand bool
}

func collect(t *testing.T, src string) []occurrence {
	t.Helper()

	f := testsource.Parse(t, src)

	var got []occurrence
	for n := range syntax.Preorder(f) {
		for o := range Occurrences(n) {
			got = append(got, occurrence{o.Name, o.Role.String(), o.IsComputed, o.IsShorthandBinding})
		}
	}

	return got
}

func TestOccurrences(t *testing.T) {
	t.Parallel()

	const (
		decl = "declaration"
		key  = "property-key"
		priv = "private-member"
	)

	tests := []struct {
		name string
		src  string
		want []occurrence
	}{
		{"variable", "var x = y;", []occurrence{{"x", decl, false, false}}},
		{"multiple", "let a = 1, bc = a;", []occurrence{{"a", decl, false, false}, {"bc", decl, false, false}}},
		{"reference only", "foo(bar, baz.qux);", nil},
		{"function", "function f(a, ...b) {}", []occurrence{{"f", decl, false, false}, {"a", decl, false, false}, {"b", decl, false, false}}},
		{"default parameter", "function fn(a = b) {}", []occurrence{{"fn", decl, false, false}, {"a", decl, false, false}}},
		{"arrow", "(x) => x;", []occurrence{{"x", decl, false, false}}},
		{"arrow single", "x => x;", []occurrence{{"x", decl, false, false}}},
		{"catch", "try {} catch (e) {}", []occurrence{{"e", decl, false, false}}},
		{"class", "class C { m() {} #p = 1; static s; }", []occurrence{
			{"C", decl, false, false}, {"m", decl, false, false}, {"p", priv, false, false}, {"s", decl, false, false},
		}},
		{"class expression", "var Foo = class B {};", []occurrence{{"Foo", decl, false, false}, {"B", decl, false, false}}},
		{"computed method", "class Foo { [a]() {} }", []occurrence{{"Foo", decl, false, false}, {"a", decl, true, false}}},
		{"object literal", "var obj = { a: 1, [b]: 2, 'c': 3, d };", []occurrence{
			{"obj", decl, false, false}, {"a", key, false, false}, {"b", key, true, false}, {"d", key, false, true},
		}},
		{"object method", "var obj = { m() {} };", []occurrence{{"obj", decl, false, false}, {"m", key, false, false}}},
		{"member assignment", "obj.x.y = 1;", []occurrence{{"y", key, false, false}}},
		{"computed member", "obj[k] = 1;", []occurrence{{"k", key, true, false}}},
		{"private assignment", "this.#x = 1;", []occurrence{{"x", priv, false, false}}},
		{"plain assignment", "x = 1;", nil},
		{"object pattern", "var { a, b: c, d = 1, ...e } = f;", []occurrence{
			{"a", decl, false, true}, {"c", decl, false, false}, {"d", decl, false, true}, {"e", decl, false, false},
		}},
		{"array pattern", "const [a, [b], c = 1, ...d] = e;", []occurrence{
			{"a", decl, false, false}, {"b", decl, false, false}, {"c", decl, false, false}, {"d", decl, false, false},
		}},
		{"destructuring assignment", "[a, obj.b] = c;", []occurrence{{"a", decl, false, false}, {"b", key, false, false}}},
		{"object destructuring assignment", "({ a: obj.b, c } = d);", []occurrence{{"b", key, false, false}, {"c", decl, false, true}}},
		{"import", "import d, { a as bb, cc } from 'm';", []occurrence{{"d", decl, false, false}, {"bb", decl, false, false}, {"cc", decl, false, false}}},
		{"namespace import", "import * as ns from 'm';", []occurrence{{"ns", decl, false, false}}},
		{"for in", "for (var k in obj) {}", []occurrence{{"k", decl, false, false}}},
		{"for of", "for (const [i, v] of xs) {}", []occurrence{{"i", decl, false, false}, {"v", decl, false, false}}},
		{"for of destructuring", "for ([i, v] of xs) {}", []occurrence{{"i", decl, false, false}, {"v", decl, false, false}}},
		{"nested function", "var fn = function (a) { let b; };", []occurrence{
			{"fn", decl, false, false}, {"a", decl, false, false}, {"b", decl, false, false},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := collect(t, tt.src)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Occurrences(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestOccurrencesStop(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "var { a, b, c } = d;")
	decl := testsource.First[*syntax.Declarator](t, f)

	var count int
	for range Occurrences(decl) {
		count++

		break
	}

	if count != 1 {
		t.Errorf("Expected iteration to stop after one occurrence, got %d", count)
	}
}

func TestHandBuilt(t *testing.T) {
	t.Parallel()

	// function (x = (y) => y) {}
	inner := &syntax.Function{Params: []syntax.Node{&syntax.Ident{Name: "y"}}, Arrow: true}
	outer := &syntax.Function{Params: []syntax.Node{&syntax.AssignPattern{Target: &syntax.Ident{Name: "x"}, Default: inner}}}

	var names []string
	for o := range Occurrences(outer) {
		names = append(names, o.Name)
	}

	if diff := cmp.Diff([]string{"x"}, names); diff != "" {
		t.Errorf("Occurrences mismatch (-want +got):\n%s", diff)
	}
}

func TestRoleString(t *testing.T) {
	t.Parallel()

	if got, want := RolePrivateMember.String(), "private-member"; got != want {
		t.Errorf("RolePrivateMember.String() = %q, want %q", got, want)
	}

	if !(Occurrence{Role: RolePrivateMember}).Private() {
		t.Error("Expected private member occurrence to be private")
	}
}
