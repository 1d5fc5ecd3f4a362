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

// Package classify finds the checkable identifier occurrences of syntax tree nodes.
//
// Every identifier occurrence is owned by exactly one node: a declarator owns the
// bindings of its pattern, a function its name and parameters, a class its name and
// member keys, an object literal its keys and an assignment its target. Classification
// only looks at the owning node, so the same identifier is never reported twice and
// no state is kept between nodes.
package classify

import "fillmore-labs.com/idlength/internal/syntax"

// Role is the syntactic role of an identifier occurrence.
type Role uint8

//go:generate go tool stringer -type Role -linecomment
const (
	// RoleDeclaration is a binding position introducing a name.
	RoleDeclaration Role = iota // declaration

	// RoleReference is a use of an already declared name.
	RoleReference // reference

	// RolePropertyKey is an object literal key or a member assignment target.
	RolePropertyKey // property-key

	// RolePrivateMember is a private class member name.
	RolePrivateMember // private-member
)

// Occurrence is a transient view of an identifier node.
type Occurrence struct {
	Name string
	Role Role

	// IsComputed marks a key or member given by an expression. Computed occurrences are never checked.
	IsComputed bool

	// IsShorthandBinding marks a shorthand property where the token is both key and binding.
	IsShorthandBinding bool

	Loc syntax.Loc
}

// Private reports whether the occurrence is a private class member name.
func (o Occurrence) Private() bool { return o.Role == RolePrivateMember }
