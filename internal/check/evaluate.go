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

// Package check evaluates identifier occurrences against the configured length bounds.
package check

import (
	"fillmore-labs.com/idlength/internal/classify"
	"fillmore-labs.com/idlength/internal/config"
	"fillmore-labs.com/idlength/internal/grapheme"
	"fillmore-labs.com/idlength/internal/syntax"
)

// Kind is the kind of a length violation.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// TooShort indicates a name shorter than the minimum.
	TooShort Kind = iota // tooShort

	// TooLong indicates a name longer than the maximum.
	TooLong // tooLong
)

// Diagnostic describes a length violation.
type Diagnostic struct {
	Kind    Kind
	Private bool   // the name is a private class member
	Name    string // the name, without '#' for private members
	Bound   int    // the violated minimum or maximum
	Loc     syntax.Loc
}

// MessageID returns the identifier of the diagnostic message, like "tooShort" or "tooLongPrivate".
func (d Diagnostic) MessageID() string {
	if d.Private {
		return d.Kind.String() + "Private"
	}

	return d.Kind.String()
}

// Evaluate checks a single occurrence and returns a [Diagnostic] if its length
// is outside the configured bounds.
//
// Computed occurrences and references are never reported. Property keys are only
// checked when enabled. Exceptions are applied before the length is compared,
// bounds are inclusive.
func Evaluate(occ classify.Occurrence, cfg *config.Config) (Diagnostic, bool) {
	switch {
	case occ.IsComputed, occ.Role == classify.RoleReference:
		return Diagnostic{}, false

	case occ.Role == classify.RolePropertyKey && !cfg.Enabled(config.CheckProperties):
		return Diagnostic{}, false

	case cfg.Excepted(occ.Name):
		return Diagnostic{}, false
	}

	d := Diagnostic{Private: occ.Private(), Name: occ.Name, Loc: occ.Loc}

	switch length := grapheme.Length(occ.Name); {
	case length < cfg.Min():
		d.Kind, d.Bound = TooShort, cfg.Min()

	case length > cfg.Max():
		d.Kind, d.Bound = TooLong, cfg.Max()

	default:
		return Diagnostic{}, false
	}

	return d, true
}
