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

package astutil

import (
	"iter"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/idlength/internal/syntax"
)

// idlength is the name of the linter.
const idlength = "idlength"

// eslintRule is the name of the corresponding ESLint rule.
const eslintRule = "id-length"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *syntax.File
	generated bool
	nolint    bool
}

// NewCurrentFile creates a new [CurrentFile] from a file name and a parsed *[syntax.File].
func NewCurrentFile(name string, file *syntax.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	var generated, nolint bool
	for comment := range leadingComments(file) {
		text := strings.TrimRight(comment.Text, " \t\r")
		generated = generated || generatedPattern.MatchString(text)
		nolint = nolint || commentHasNoLint(text, nolintPattern, disableFilePattern)
	}

	generated = generated || strings.HasSuffix(name, ".min.js")

	return CurrentFile{file, generated, nolint}
}

// Generated returns true if the file is a generated or minified file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint returns true if the file is excluded by a nolint comment preceding the first statement.
func (c CurrentFile) NoLint() bool {
	return c.nolint
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// leadingComments yields the comments preceding the first statement.
func leadingComments(file *syntax.File) iter.Seq[*syntax.Comment] {
	return func(yield func(*syntax.Comment) bool) {
		end := file.End().Offset
		if len(file.Body) > 0 {
			end = file.Body[0].Pos().Offset
		}

		for _, comment := range file.Comments {
			if comment.StartPos.Offset >= end || !yield(comment) {
				return
			}
		}
	}
}

// NoLintComment checks if a position is followed by a nolint comment on the same line.
func (c CurrentFile) NoLintComment(pos syntax.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos.Offset,
		func(cm *syntax.Comment, offset int) int { return cm.StartPos.Offset - offset })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i]

	if comment.StartPos.Line != pos.Line {
		return false // not on this line
	}

	return CommentHasNoLint(comment.Text)
}

var (
	nolintPattern      = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)
	disableLinePattern = regexp.MustCompile(`^(?://|/\*)\s*eslint-disable-line\b([^*]*)`)
	disableFilePattern = regexp.MustCompile(`^(?://|/\*)\s*eslint-disable(?:\s([^*]*))?(?:\*/)?$`)
)

// CommentHasNoLint checks if the comment contains a `//nolint:idlength` or
// `// eslint-disable-line id-length` directive.
func CommentHasNoLint(text string) bool {
	return commentHasNoLint(text, nolintPattern, disableLinePattern)
}

func commentHasNoLint(text string, nolint, disable *regexp.Regexp) bool {
	if matches := nolint.FindStringSubmatch(text); matches != nil {
		// Parse comma-separated linter list
		for linter := range strings.SplitSeq(matches[1], ",") {
			if l := strings.ToLower(strings.TrimSpace(linter)); l == idlength || l == "all" {
				return true
			}
		}

		return false
	}

	matches := disable.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	rules := strings.TrimSpace(matches[1])
	if rules == "" {
		return true // all rules
	}

	if i := strings.Index(rules, "--"); i >= 0 {
		rules = rules[:i] // description
	}

	for rule := range strings.SplitSeq(rules, ",") {
		if strings.TrimSpace(rule) == eslintRule {
			return true
		}
	}

	return false
}
