// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the idlength static analysis pass.
//
// # Overview
//
// idlength checks that identifiers in JavaScript files embedded with //go:embed
// are neither too short nor too long. Length is measured in user-perceived
// characters, so "𐌘" and a base character with a variation selector count once.
//
// # Checked Identifiers
//
// Declarations are checked: variables, functions, parameters, classes, class
// members, catch parameters, import bindings and destructuring targets.
// Object literal keys and member assignment targets, like `obj.name = value`,
// are checked unless properties is "never". References are never checked.
//
// # Example
//
//	//go:embed static/app.js
//	var app []byte
//
// With the default minimum of 2:
//
//	var x = load(); // Identifier name 'x' is too short (< 2).
//
// # Suppression
//
// A trailing `//nolint:idlength` or `// eslint-disable-line id-length` comment
// suppresses diagnostics on its line. Generated and minified files are skipped
// unless -generated is set.
package analyzer
