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

package syntax

import (
	"fmt"
	"iter"
)

// Inspect traverses the tree rooted at node in depth-first source order.
// It starts by calling f(node); if f returns true, Inspect invokes f
// recursively for each of the non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	for child := range children(node) {
		Inspect(child, f)
	}
}

// Preorder returns an iterator over all nodes of the tree rooted at node in depth-first source order.
func Preorder(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(node, func(n Node) bool {
			ok = ok && yield(n)

			return ok
		})
	}
}

// children yields the direct children of a node in source order.
func children(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var list []Node

		switch n := node.(type) {
		// keep-sorted start newline_separated=yes
		case *ArrayPattern:
			list = n.Elems

		case *Assign:
			list = []Node{n.Target, n.Value}

		case *AssignPattern:
			list = []Node{n.Target, n.Default}

		case *Catch:
			list = []Node{n.Param, n.Body}

		case *Class:
			list = make([]Node, 0, len(n.Members)+2)
			list = appendIdent(list, n.Name)
			list = append(list, n.Heritage)
			list = append(list, n.Members...)

		case *Declarator:
			list = []Node{n.Target, n.Init}

		case *Field:
			list = []Node{n.Key, n.Value}

		case *File:
			list = n.Body

		case *Function:
			list = make([]Node, 0, len(n.Params)+2)
			list = appendIdent(list, n.Name)
			list = append(list, n.Params...)
			list = append(list, n.Body)

		case *Ident, *Literal, *PrivateName:

		case *Import:
			list = make([]Node, 0, len(n.Specs)+1)
			for _, spec := range n.Specs {
				list = append(list, spec)
			}

			list = append(list, n.Source)

		case *ImportSpec:
			list = []Node{n.Imported}
			if n.Local != nil && Node(n.Local) != n.Imported {
				list = append(list, n.Local)
			}

		case *Member:
			list = []Node{n.Object, n.Property}

		case *Method:
			list = []Node{n.Key}
			if n.Value != nil {
				list = append(list, n.Value)
			}

		case *ObjectLit:
			list = n.Props

		case *ObjectPattern:
			list = n.Props

		case *Other:
			list = n.Children

		case *Property:
			if n.Shorthand {
				list = []Node{n.Value} // the key is part of the value
			} else {
				list = []Node{n.Key, n.Value}
			}

		case *Rest:
			list = []Node{n.Target}

		case *VarDecl:
			list = make([]Node, 0, len(n.Decls))
			for _, decl := range n.Decls {
				list = append(list, decl)
			}

		default:
			panic(fmt.Sprintf("syntax.Inspect: unexpected node type %T", n))
			// keep-sorted end
		}

		for _, child := range list {
			if child == nil {
				continue
			}

			if !yield(child) {
				return
			}
		}
	}
}

// appendIdent appends id unless it is nil, avoiding typed nil interface values.
func appendIdent(list []Node, id *Ident) []Node {
	if id == nil {
		return list
	}

	return append(list, id)
}
