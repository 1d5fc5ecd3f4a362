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

package classify

import "fillmore-labs.com/idlength/internal/syntax"

// bindings classifies the names bound by a pattern, recursing into nested patterns.
//
// Only the binding side of `{ key: binding }` is classified. A shorthand property
// `{ name }` yields its single token once. Member expressions are assignment targets,
// their property is a property key.
func (v *visitor) bindings(pattern syntax.Node) {
	switch p := pattern.(type) {
	case *syntax.Ident:
		v.emit(Occurrence{Name: p.Name, Role: RoleDeclaration, Loc: p.Loc})

	case *syntax.ArrayPattern:
		for _, elem := range p.Elems {
			v.bindings(elem)
		}

	case *syntax.ObjectPattern:
		for _, prop := range p.Props {
			v.patternProperty(prop)
		}

	case *syntax.AssignPattern:
		v.bindings(p.Target)

	case *syntax.Rest:
		v.bindings(p.Target)

	case *syntax.Member:
		v.member(p)
	}
}

func (v *visitor) patternProperty(prop syntax.Node) {
	p, ok := prop.(*syntax.Property)
	if !ok {
		v.bindings(prop) // rest element

		return
	}

	if !p.Shorthand {
		v.bindings(p.Value)

		return
	}

	if id, ok := p.Key.(*syntax.Ident); ok {
		v.emit(Occurrence{Name: id.Name, Role: RoleDeclaration, IsShorthandBinding: true, Loc: id.Loc})
	}
}
