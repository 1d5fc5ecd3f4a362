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

import (
	"iter"

	"fillmore-labs.com/idlength/internal/syntax"
)

// Occurrences yields the identifier occurrences owned by node in source order.
//
// Nodes that own no identifiers yield nothing. Nested owners, like a function
// in a default value, are not descended into; they are classified when the
// traversal reaches them.
func Occurrences(node syntax.Node) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		v := visitor{yield: yield}
		v.owner(node)
	}
}

// visitor emits occurrences until the consumer stops.
type visitor struct {
	yield func(Occurrence) bool
	done  bool
}

func (v *visitor) emit(o Occurrence) {
	if v.done {
		return
	}

	if !v.yield(o) {
		v.done = true
	}
}

// owner classifies the identifiers a node owns.
func (v *visitor) owner(node syntax.Node) {
	switch n := node.(type) {
	case *syntax.Assign:
		v.assignTarget(n)

	case *syntax.Catch:
		v.bindings(n.Param)

	case *syntax.Class:
		v.declared(n.Name)

		for _, member := range n.Members {
			v.classMember(member)
		}

	case *syntax.Declarator:
		v.bindings(n.Target)

	case *syntax.Function:
		v.declared(n.Name)

		for _, param := range n.Params {
			v.bindings(param)
		}

	case *syntax.ImportSpec:
		v.declared(n.Local)

	case *syntax.ObjectLit:
		for _, prop := range n.Props {
			v.objectMember(prop)
		}

	case *syntax.ArrayPattern, *syntax.AssignPattern, *syntax.Field, *syntax.File,
		*syntax.Ident, *syntax.Import, *syntax.Literal, *syntax.Member, *syntax.Method,
		*syntax.ObjectPattern, *syntax.Other, *syntax.PrivateName, *syntax.Property,
		*syntax.Rest, *syntax.VarDecl, nil:
		// classified by their owner, or owning nothing
	}
}

func (v *visitor) declared(id *syntax.Ident) {
	if id == nil {
		return
	}

	v.emit(Occurrence{Name: id.Name, Role: RoleDeclaration, Loc: id.Loc})
}

// classMember classifies method and field names. Private names are private members,
// everything else is a declaration.
func (v *visitor) classMember(member syntax.Node) {
	switch m := member.(type) {
	case *syntax.Method:
		v.key(m.Key, m.Computed, RoleDeclaration)

	case *syntax.Field:
		v.key(m.Key, m.Computed, RoleDeclaration)
	}
}

// objectMember classifies object literal keys.
func (v *visitor) objectMember(prop syntax.Node) {
	switch p := prop.(type) {
	case *syntax.Property:
		id, ok := p.Key.(*syntax.Ident)
		if !ok {
			return
		}

		v.emit(Occurrence{
			Name:               id.Name,
			Role:               RolePropertyKey,
			IsComputed:         p.Computed,
			IsShorthandBinding: p.Shorthand,
			Loc:                id.Loc,
		})

	case *syntax.Method:
		v.key(p.Key, p.Computed, RolePropertyKey)
	}
}

// key classifies a member name. String and number keys and computed
// expressions other than a bare identifier are not checkable.
func (v *visitor) key(key syntax.Node, computed bool, role Role) {
	switch k := key.(type) {
	case *syntax.Ident:
		v.emit(Occurrence{Name: k.Name, Role: role, IsComputed: computed, Loc: k.Loc})

	case *syntax.PrivateName:
		v.emit(Occurrence{Name: k.Name, Role: RolePrivateMember, Loc: k.Loc})
	}
}

// assignTarget classifies member assignment targets and destructuring assignments.
// Plain identifier targets are references.
func (v *visitor) assignTarget(a *syntax.Assign) {
	switch t := a.Target.(type) {
	case *syntax.Member:
		v.member(t)

	case *syntax.ArrayPattern, *syntax.ObjectPattern:
		if a.Op == "=" {
			v.bindings(t)
		}
	}
}

// member classifies the property of a member assignment target, like `z` in `obj.x.y.z = 1`.
func (v *visitor) member(m *syntax.Member) {
	switch p := m.Property.(type) {
	case *syntax.Ident:
		v.emit(Occurrence{Name: p.Name, Role: RolePropertyKey, IsComputed: m.Computed, Loc: p.Loc})

	case *syntax.PrivateName:
		v.emit(Occurrence{Name: p.Name, Role: RolePrivateMember, IsComputed: m.Computed, Loc: p.Loc})
	}
}
