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

package report

import (
	"strconv"
	"strings"

	"fillmore-labs.com/idlength/internal/check"
)

// keep-sorted start
const (
	tooLong         = "Identifier name '{name}' is too long (> {max})."
	tooLongPrivate  = "Identifier name '#{name}' is too long (> {max})."
	tooShort        = "Identifier name '{name}' is too short (< {min})."
	tooShortPrivate = "Identifier name '#{name}' is too short (< {min})."
)

// keep-sorted end

var templates = map[string]string{
	"tooLong":         tooLong,
	"tooLongPrivate":  tooLongPrivate,
	"tooShort":        tooShort,
	"tooShortPrivate": tooShortPrivate,
}

// Message formats the message of a diagnostic.
func Message(d check.Diagnostic) string {
	template, ok := templates[d.MessageID()]
	if !ok {
		return "Identifier name '" + d.Name + "' has invalid length."
	}

	bound := strconv.Itoa(d.Bound)

	return strings.NewReplacer("{name}", d.Name, "{min}", bound, "{max}", bound).Replace(template)
}
