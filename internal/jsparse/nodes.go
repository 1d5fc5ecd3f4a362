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

// node converts an expression, statement or declaration.
func (c converter) node(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}

	switch n.Type() {
	// keep-sorted start newline_separated=yes
	case tsArrayPattern, tsAssignmentPattern, tsObjectPattern, tsRestPattern:
		return c.pattern(n)

	case tsArrowFunction:
		return c.arrow(n)

	case tsAssignmentExpression, tsAugmentedAssignment:
		return c.assign(n)

	case tsCatchClause:
		return &syntax.Catch{
			Loc:   c.loc(n),
			Param: c.pattern(n.ChildByFieldName("parameter")),
			Body:  c.node(n.ChildByFieldName("body")),
		}

	case tsClass, tsClassDeclaration:
		return c.class(n)

	case tsForInStatement:
		return c.forIn(n)

	case tsFunction, tsFunctionDeclaration, tsFunctionExpression, tsGeneratorFunction, tsGeneratorFunctionDeclaration:
		return c.function(n)

	case tsIdentifier, tsPropertyIdentifier, tsShorthandPropertyIdentifier, tsShorthandPropertyPattern:
		return c.ident(n)

	case tsImportStatement:
		return c.importStatement(n)

	case tsLexicalDeclaration, tsVariableDeclaration:
		return c.varDecl(n)

	case tsMemberExpression:
		return c.member(n)

	case tsMethodDefinition:
		return c.method(n)

	case tsNumber, tsString:
		return &syntax.Literal{Loc: c.loc(n), Raw: c.text(n)}

	case tsObject:
		return c.object(n)

	case tsPrivatePropertyIdentifier:
		return c.privateName(n)

	case tsSubscriptExpression:
		return &syntax.Member{
			Loc:      c.loc(n),
			Object:   c.node(n.ChildByFieldName("object")),
			Property: c.node(n.ChildByFieldName("index")),
			Computed: true,
			Optional: c.hasToken(n, tsOptionalChain, "?."),
		}

	default:
		return c.other(n)
		// keep-sorted end
	}
}

func (c converter) other(n *sitter.Node) *syntax.Other {
	o := &syntax.Other{Loc: c.loc(n), Kind: n.Type()}

	for child := range c.named(n) {
		o.Children = append(o.Children, c.node(child))
	}

	return o
}

func (c converter) ident(n *sitter.Node) *syntax.Ident {
	return &syntax.Ident{Loc: c.loc(n), Name: c.text(n)}
}

func (c converter) privateName(n *sitter.Node) *syntax.PrivateName {
	name := c.text(n)
	if len(name) > 0 && name[0] == '#' {
		name = name[1:]
	}

	return &syntax.PrivateName{Loc: c.loc(n), Name: name}
}

// optionalIdent converts an optional name field.
func (c converter) optionalIdent(n *sitter.Node) *syntax.Ident {
	if n == nil || n.Type() != tsIdentifier {
		return nil
	}

	return c.ident(n)
}

func (c converter) varDecl(n *sitter.Node) *syntax.VarDecl {
	d := &syntax.VarDecl{Loc: c.loc(n)}

	if kind := n.Child(0); kind != nil {
		d.Kind = kind.Type()
	}

	for child := range c.named(n) {
		if child.Type() != tsVariableDeclarator {
			continue
		}

		d.Decls = append(d.Decls, &syntax.Declarator{
			Loc:    c.loc(child),
			Target: c.pattern(child.ChildByFieldName("name")),
			Init:   c.node(child.ChildByFieldName("value")),
		})
	}

	return d
}

func (c converter) function(n *sitter.Node) *syntax.Function {
	return &syntax.Function{
		Loc:    c.loc(n),
		Name:   c.optionalIdent(n.ChildByFieldName("name")),
		Params: c.params(n.ChildByFieldName("parameters")),
		Body:   c.node(n.ChildByFieldName("body")),
	}
}

func (c converter) arrow(n *sitter.Node) *syntax.Function {
	f := &syntax.Function{
		Loc:   c.loc(n),
		Body:  c.node(n.ChildByFieldName("body")),
		Arrow: true,
	}

	if param := n.ChildByFieldName("parameter"); param != nil {
		f.Params = []syntax.Node{c.pattern(param)}
	} else {
		f.Params = c.params(n.ChildByFieldName("parameters"))
	}

	return f
}

// params converts formal parameters into binding patterns.
func (c converter) params(n *sitter.Node) []syntax.Node {
	if n == nil {
		return nil
	}

	var params []syntax.Node
	for child := range c.named(n) {
		params = append(params, c.pattern(child))
	}

	return params
}

func (c converter) class(n *sitter.Node) *syntax.Class {
	cl := &syntax.Class{
		Loc:  c.loc(n),
		Name: c.optionalIdent(n.ChildByFieldName("name")),
	}

	for child := range c.named(n) {
		if child.Type() == tsClassHeritage {
			cl.Heritage = c.node(child)

			break
		}
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return cl
	}

	for member := range c.named(body) {
		switch member.Type() {
		case tsMethodDefinition:
			cl.Members = append(cl.Members, c.method(member))

		case tsFieldDefinition, tsPublicFieldDefinition:
			cl.Members = append(cl.Members, c.field(member))

		default:
			cl.Members = append(cl.Members, c.node(member))
		}
	}

	return cl
}

func (c converter) method(n *sitter.Node) *syntax.Method {
	key, computed := c.propertyKey(n.ChildByFieldName("name"))

	return &syntax.Method{
		Loc:      c.loc(n),
		Key:      key,
		Computed: computed,
		Value: &syntax.Function{
			Loc:    c.loc(n),
			Params: c.params(n.ChildByFieldName("parameters")),
			Body:   c.node(n.ChildByFieldName("body")),
		},
	}
}

func (c converter) field(n *sitter.Node) *syntax.Field {
	keyNode := n.ChildByFieldName("property")
	if keyNode == nil {
		keyNode = n.ChildByFieldName("name")
	}

	key, computed := c.propertyKey(keyNode)

	return &syntax.Field{
		Loc:      c.loc(n),
		Key:      key,
		Computed: computed,
		Value:    c.node(n.ChildByFieldName("value")),
	}
}

// propertyKey converts a property name of an object member, class member or pattern property.
func (c converter) propertyKey(n *sitter.Node) (key syntax.Node, computed bool) {
	if n == nil {
		return nil, false
	}

	switch n.Type() {
	case tsComputedPropertyName:
		return c.node(c.first(n)), true

	case tsIdentifier, tsPropertyIdentifier:
		return c.ident(n), false

	case tsPrivatePropertyIdentifier:
		return c.privateName(n), false

	default:
		return c.node(n), false
	}
}

func (c converter) importStatement(n *sitter.Node) *syntax.Import {
	imp := &syntax.Import{
		Loc:    c.loc(n),
		Source: c.node(n.ChildByFieldName("source")),
	}

	for clause := range c.named(n) {
		if clause.Type() != tsImportClause {
			continue
		}

		for child := range c.named(clause) {
			switch child.Type() {
			case tsIdentifier:
				imp.Specs = append(imp.Specs, &syntax.ImportSpec{
					Loc:   c.loc(child),
					Kind:  syntax.ImportDefault,
					Local: c.ident(child),
				})

			case tsNamespaceImport:
				imp.Specs = append(imp.Specs, &syntax.ImportSpec{
					Loc:   c.loc(child),
					Kind:  syntax.ImportNamespace,
					Local: c.optionalIdent(c.first(child)),
				})

			case tsNamedImports:
				for spec := range c.named(child) {
					if spec.Type() == tsImportSpecifier {
						imp.Specs = append(imp.Specs, c.importSpecifier(spec))
					}
				}
			}
		}
	}

	return imp
}

func (c converter) importSpecifier(n *sitter.Node) *syntax.ImportSpec {
	spec := &syntax.ImportSpec{Loc: c.loc(n), Kind: syntax.ImportNamed}

	name := n.ChildByFieldName("name")
	if name == nil {
		name = c.first(n)
	}

	if name != nil && name.Type() == tsIdentifier {
		local := c.ident(name)
		spec.Imported, spec.Local = local, local
	} else {
		spec.Imported = c.node(name)
	}

	if alias := n.ChildByFieldName("alias"); alias != nil {
		spec.Local = c.optionalIdent(alias)
	}

	return spec
}

func (c converter) object(n *sitter.Node) *syntax.ObjectLit {
	obj := &syntax.ObjectLit{Loc: c.loc(n)}

	for child := range c.named(n) {
		switch child.Type() {
		case tsPair:
			key, computed := c.propertyKey(child.ChildByFieldName("key"))
			obj.Props = append(obj.Props, &syntax.Property{
				Loc:      c.loc(child),
				Key:      key,
				Value:    c.node(child.ChildByFieldName("value")),
				Computed: computed,
			})

		case tsShorthandPropertyIdentifier:
			id := c.ident(child)
			obj.Props = append(obj.Props, &syntax.Property{Loc: id.Loc, Key: id, Value: id, Shorthand: true})

		case tsMethodDefinition:
			obj.Props = append(obj.Props, c.method(child))

		default:
			obj.Props = append(obj.Props, c.node(child))
		}
	}

	return obj
}

func (c converter) member(n *sitter.Node) *syntax.Member {
	m := &syntax.Member{
		Loc:      c.loc(n),
		Object:   c.node(n.ChildByFieldName("object")),
		Optional: c.hasToken(n, tsOptionalChain, "?."),
	}

	if property := n.ChildByFieldName("property"); property != nil {
		switch property.Type() {
		case tsPrivatePropertyIdentifier:
			m.Property = c.privateName(property)

		default:
			m.Property = c.ident(property)
		}
	}

	return m
}

func (c converter) assign(n *sitter.Node) *syntax.Assign {
	a := &syntax.Assign{
		Loc:    c.loc(n),
		Op:     "=",
		Target: c.pattern(n.ChildByFieldName("left")),
		Value:  c.node(n.ChildByFieldName("right")),
	}

	if n.Type() == tsAugmentedAssignment {
		if op := n.ChildByFieldName("operator"); op != nil {
			a.Op = c.text(op)
		}
	}

	return a
}

// forIn converts a for-in or for-of statement. A declared loop variable
// becomes a [syntax.VarDecl], so it is checked like any other declaration.
// An undeclared destructuring target becomes a [syntax.Assign].
func (c converter) forIn(n *sitter.Node) *syntax.Other {
	o := &syntax.Other{Loc: c.loc(n), Kind: n.Type()}

	left := n.ChildByFieldName("left")

	if kind := c.declarationKind(n, left); kind != nil && left != nil {
		o.Children = append(o.Children, &syntax.VarDecl{
			Loc:  c.span(kind, left),
			Kind: kind.Type(),
			Decls: []*syntax.Declarator{{
				Loc:    c.loc(left),
				Target: c.pattern(left),
			}},
		})
	} else if target := c.pattern(left); target != nil {
		switch target.(type) {
		case *syntax.ArrayPattern, *syntax.ObjectPattern:
			target = &syntax.Assign{Loc: c.loc(left), Op: "=", Target: target}
		}

		o.Children = append(o.Children, target)
	}

	for _, field := range [...]string{"right", "body"} {
		if child := c.node(n.ChildByFieldName(field)); child != nil {
			o.Children = append(o.Children, child)
		}
	}

	return o
}

// declarationKind returns the var, let or const token preceding the loop variable, or nil.
func (c converter) declarationKind(n, left *sitter.Node) *sitter.Node {
	if kind := n.ChildByFieldName("kind"); kind != nil {
		return kind
	}

	if left == nil {
		return nil
	}

	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil || child.StartByte() >= left.StartByte() {
			break
		}

		switch child.Type() {
		case "var", "let", "const":
			return child
		}
	}

	return nil
}
