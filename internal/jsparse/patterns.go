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

package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/idlength/internal/syntax"
)

// pattern converts a binding or assignment target.
//
// Object and array literals become patterns, since assignment targets are
// sometimes parsed as expressions. Parentheses around targets are dropped.
func (c converter) pattern(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}

	switch n.Type() {
	// keep-sorted start newline_separated=yes
	case tsArray, tsArrayPattern:
		p := &syntax.ArrayPattern{Loc: c.loc(n)}
		for child := range c.named(n) {
			p.Elems = append(p.Elems, c.pattern(child))
		}

		return p

	case tsAssignmentExpression, tsAssignmentPattern, tsObjectAssignmentPattern:
		return &syntax.AssignPattern{
			Loc:     c.loc(n),
			Target:  c.pattern(n.ChildByFieldName("left")),
			Default: c.node(n.ChildByFieldName("right")),
		}

	case tsIdentifier, tsShorthandPropertyIdentifier, tsShorthandPropertyPattern:
		return c.ident(n)

	case tsObject, tsObjectPattern:
		return c.objectPattern(n)

	case tsParenthesizedExpression:
		if inner := c.first(n); inner != nil {
			return c.pattern(inner)
		}

		return c.other(n)

	case tsRestPattern, tsSpreadElement:
		return &syntax.Rest{Loc: c.loc(n), Target: c.pattern(c.first(n))}

	default:
		return c.node(n)
		// keep-sorted end
	}
}

func (c converter) objectPattern(n *sitter.Node) *syntax.ObjectPattern {
	p := &syntax.ObjectPattern{Loc: c.loc(n)}

	for child := range c.named(n) {
		switch child.Type() {
		case tsPair, tsPairPattern:
			key, computed := c.propertyKey(child.ChildByFieldName("key"))
			p.Props = append(p.Props, &syntax.Property{
				Loc:      c.loc(child),
				Key:      key,
				Value:    c.pattern(child.ChildByFieldName("value")),
				Computed: computed,
			})

		case tsShorthandPropertyIdentifier, tsShorthandPropertyPattern:
			id := c.ident(child)
			p.Props = append(p.Props, &syntax.Property{Loc: id.Loc, Key: id, Value: id, Shorthand: true})

		case tsObjectAssignmentPattern:
			p.Props = append(p.Props, c.defaultedProperty(child))

		default:
			p.Props = append(p.Props, c.pattern(child))
		}
	}

	return p
}

// defaultedProperty converts `{ name = value }` into a shorthand property.
func (c converter) defaultedProperty(n *sitter.Node) *syntax.Property {
	left := n.ChildByFieldName("left")

	value := &syntax.AssignPattern{
		Loc:     c.loc(n),
		Target:  c.pattern(left),
		Default: c.node(n.ChildByFieldName("right")),
	}

	prop := &syntax.Property{Loc: c.loc(n), Value: value}

	if id, ok := value.Target.(*syntax.Ident); ok {
		prop.Key, prop.Shorthand = id, true
	}

	return prop
}
