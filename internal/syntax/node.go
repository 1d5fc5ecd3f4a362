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

// Node is a JavaScript syntax tree node.
//
// The set of node types is closed: only the types in this package implement Node.
// Constructs the identifier checks do not distinguish are represented by [Other].
type Node interface {
	Pos() Pos
	End() Pos
	node()
}

// Comment is a line or block comment.
type Comment struct {
	Loc
	Text string // comment text including the comment markers
}

// File is a parsed source file.
type File struct {
	Loc
	Body      []Node
	Comments  []*Comment
	Missing   []Loc // zero-width tokens the parser inserted
	HasErrors bool  // the parser had to recover from syntax errors
}

// VarDecl is a var, let or const declaration.
type VarDecl struct {
	Loc
	Kind  string // "var", "let" or "const"
	Decls []*Declarator
}

// Declarator is a single binding of a [VarDecl], like `x = 1` or `{ a } = b`.
type Declarator struct {
	Loc
	Target Node // binding pattern
	Init   Node // or nil
}

// Function is a function declaration, function expression, arrow function or method body.
type Function struct {
	Loc
	Name   *Ident // or nil
	Params []Node // binding patterns
	Body   Node
	Arrow  bool
}

// Class is a class declaration or class expression.
type Class struct {
	Loc
	Name     *Ident // or nil
	Heritage Node   // or nil
	Members  []Node // *Method, *Field or *Other (static blocks)
}

// Method is a class method or an object literal method.
type Method struct {
	Loc
	Key      Node // *Ident, *PrivateName, *Literal or the computed key expression
	Computed bool
	Value    *Function
}

// Field is a class field.
type Field struct {
	Loc
	Key      Node // *Ident, *PrivateName, *Literal or the computed key expression
	Computed bool
	Value    Node // or nil
}

// Catch is the catch clause of a try statement.
type Catch struct {
	Loc
	Param Node // binding pattern or nil
	Body  Node
}

// Import is an import declaration.
type Import struct {
	Loc
	Specs  []*ImportSpec
	Source Node
}

// ImportKind distinguishes import specifiers.
type ImportKind uint8

const (
	// ImportDefault is `import local from "m"`.
	ImportDefault ImportKind = iota
	// ImportNamespace is `import * as local from "m"`.
	ImportNamespace
	// ImportNamed is `import { imported as local } from "m"`.
	ImportNamed
)

// ImportSpec is a single imported binding.
type ImportSpec struct {
	Loc
	Kind     ImportKind
	Imported Node // *Ident or *Literal for named imports, nil otherwise
	Local    *Ident
}

// ObjectLit is an object literal expression.
type ObjectLit struct {
	Loc
	Props []Node // *Property, *Method or *Other (spread elements)
}

// Property is a key/value entry of an [ObjectLit] or an [ObjectPattern].
//
// For shorthand properties Key and Value are the same *[Ident],
// or Value is an *[AssignPattern] with that *[Ident] as Target.
type Property struct {
	Loc
	Key       Node
	Value     Node
	Computed  bool
	Shorthand bool
}

// ObjectPattern is an object destructuring pattern.
type ObjectPattern struct {
	Loc
	Props []Node // *Property or *Rest
}

// ArrayPattern is an array destructuring pattern. Holes are omitted.
type ArrayPattern struct {
	Loc
	Elems []Node
}

// AssignPattern is a binding with a default value, like `x = 0`.
type AssignPattern struct {
	Loc
	Target  Node
	Default Node
}

// Rest is a rest element, like `...args`.
type Rest struct {
	Loc
	Target Node
}

// Assign is an assignment expression. Target is a pattern for destructuring assignments.
type Assign struct {
	Loc
	Op     string // "=", "+=", ...
	Target Node
	Value  Node
}

// Member is a member access, like `a.b`, `a.#b` or `a[b]`.
type Member struct {
	Loc
	Object   Node
	Property Node // *Ident or *PrivateName, the key expression when Computed
	Computed bool
	Optional bool
}

// Ident is an identifier.
type Ident struct {
	Loc
	Name string
}

// PrivateName is a private class member name. Name does not include the '#' sigil.
type PrivateName struct {
	Loc
	Name string
}

// Literal is a string or number literal used as a key or import source.
type Literal struct {
	Loc
	Raw string
}

// Other is any construct without a distinguished shape.
type Other struct {
	Loc
	Kind     string // parser node type, for diagnostics and tests
	Children []Node
}

// keep-sorted start
func (*ArrayPattern) node()  {}
func (*Assign) node()        {}
func (*AssignPattern) node() {}
func (*Catch) node()         {}
func (*Class) node()         {}
func (*Declarator) node()    {}
func (*Field) node()         {}
func (*File) node()          {}
func (*Function) node()      {}
func (*Ident) node()         {}
func (*Import) node()        {}
func (*ImportSpec) node()    {}
func (*Literal) node()       {}
func (*Member) node()        {}
func (*Method) node()        {}
func (*ObjectLit) node()     {}
func (*ObjectPattern) node() {}
func (*Other) node()         {}
func (*PrivateName) node()   {}
func (*Property) node()      {}
func (*Rest) node()          {}
func (*VarDecl) node()       {}

// keep-sorted end
