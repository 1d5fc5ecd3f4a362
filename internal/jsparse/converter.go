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
	"iter"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/idlength/internal/syntax"
)

// tree-sitter node types.
const (
	// keep-sorted start
	tsArray                        = "array"
	tsArrayPattern                 = "array_pattern"
	tsArrowFunction                = "arrow_function"
	tsAssignmentExpression         = "assignment_expression"
	tsAssignmentPattern            = "assignment_pattern"
	tsAugmentedAssignment          = "augmented_assignment_expression"
	tsCatchClause                  = "catch_clause"
	tsClass                        = "class"
	tsClassDeclaration             = "class_declaration"
	tsClassHeritage                = "class_heritage"
	tsComment                      = "comment"
	tsComputedPropertyName         = "computed_property_name"
	tsFieldDefinition              = "field_definition"
	tsForInStatement               = "for_in_statement"
	tsFunction                     = "function"
	tsFunctionDeclaration          = "function_declaration"
	tsFunctionExpression           = "function_expression"
	tsGeneratorFunction            = "generator_function"
	tsGeneratorFunctionDeclaration = "generator_function_declaration"
	tsIdentifier                   = "identifier"
	tsImportClause                 = "import_clause"
	tsImportSpecifier              = "import_specifier"
	tsImportStatement              = "import_statement"
	tsLexicalDeclaration           = "lexical_declaration"
	tsMemberExpression             = "member_expression"
	tsMethodDefinition             = "method_definition"
	tsNamedImports                 = "named_imports"
	tsNamespaceImport              = "namespace_import"
	tsNumber                       = "number"
	tsObject                       = "object"
	tsObjectAssignmentPattern      = "object_assignment_pattern"
	tsObjectPattern                = "object_pattern"
	tsOptionalChain                = "optional_chain"
	tsPair                         = "pair"
	tsPairPattern                  = "pair_pattern"
	tsParenthesizedExpression      = "parenthesized_expression"
	tsPrivatePropertyIdentifier    = "private_property_identifier"
	tsPropertyIdentifier           = "property_identifier"
	tsPublicFieldDefinition        = "public_field_definition"
	tsRestPattern                  = "rest_pattern"
	tsShorthandPropertyIdentifier  = "shorthand_property_identifier"
	tsShorthandPropertyPattern     = "shorthand_property_identifier_pattern"
	tsSpreadElement                = "spread_element"
	tsString                       = "string"
	tsSubscriptExpression          = "subscript_expression"
	tsVariableDeclaration          = "variable_declaration"
	tsVariableDeclarator           = "variable_declarator"
	// keep-sorted end
)

// converter turns tree-sitter nodes into [syntax.Node] values.
type converter struct {
	src []byte
}

// loc returns the source range of n.
func (c converter) loc(n *sitter.Node) syntax.Loc {
	start, end := n.StartPoint(), n.EndPoint()

	return syntax.Loc{
		StartPos: syntax.Pos{Offset: int(n.StartByte()), Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		EndPos:   syntax.Pos{Offset: int(n.EndByte()), Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

// span returns the source range from the start of first to the end of last.
func (c converter) span(first, last *sitter.Node) syntax.Loc {
	return syntax.Loc{StartPos: c.loc(first).StartPos, EndPos: c.loc(last).EndPos}
}

func (c converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// named yields the named children of n, skipping comments.
func (c converter) named(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.NamedChildCount()) {
			child := n.NamedChild(i)
			if child == nil || child.Type() == tsComment {
				continue
			}

			if !yield(child) {
				return
			}
		}
	}
}

// first returns the first named child of n that is not a comment.
func (c converter) first(n *sitter.Node) *sitter.Node {
	for child := range c.named(n) {
		return child
	}

	return nil
}

// hasToken reports whether n has a direct child of the given type.
func (c converter) hasToken(n *sitter.Node, types ...string) bool {
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil {
			continue
		}

		for _, t := range types {
			if child.Type() == t {
				return true
			}
		}
	}

	return false
}

// comments collects all comments below n in source order.
func (c converter) comments(n *sitter.Node, list []*syntax.Comment) []*syntax.Comment {
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}

		if child.Type() == tsComment {
			list = append(list, &syntax.Comment{Loc: c.loc(child), Text: c.text(child)})

			continue
		}

		list = c.comments(child, list)
	}

	return list
}

// missing yields the tokens tree-sitter inserted to recover from syntax errors, in source order.
func (c converter) missing(n *sitter.Node) iter.Seq[syntax.Loc] {
	return func(yield func(syntax.Loc) bool) {
		c.walkMissing(n, yield)
	}
}

func (c converter) walkMissing(n *sitter.Node, yield func(syntax.Loc) bool) bool {
	if n.IsMissing() {
		return yield(c.loc(n))
	}

	if !n.HasError() {
		return true
	}

	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil && !c.walkMissing(child, yield) {
			return false
		}
	}

	return true
}
