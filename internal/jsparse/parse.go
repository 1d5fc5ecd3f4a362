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

// Package jsparse converts JavaScript source into a [syntax.File].
//
// Parsing is done by tree-sitter. The concrete syntax tree is converted into the
// closed set of [syntax.Node] shapes the identifier checks distinguish; all other
// constructs become [syntax.Other] nodes which keep their children.
package jsparse

import (
	"context"
	"fmt"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"fillmore-labs.com/idlength/internal/syntax"
)

// Parse parses JavaScript source.
//
// Syntax errors do not fail the parse: tree-sitter recovers from them and
// [syntax.File.HasErrors] is set. Tokens inserted during recovery are
// recorded in [syntax.File.Missing].
func Parse(ctx context.Context, src []byte) (*syntax.File, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse javascript: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()

	c := converter{src: src}

	f := &syntax.File{
		Loc:       c.loc(root),
		HasErrors: root.HasError(),
	}

	for child := range c.named(root) {
		f.Body = append(f.Body, c.node(child))
	}

	if f.HasErrors {
		f.Missing = slices.Collect(c.missing(root))
	}

	f.Comments = c.comments(root, nil)
	slices.SortFunc(f.Comments, func(a, b *syntax.Comment) int { return a.StartPos.Offset - b.StartPos.Offset })

	return f, nil
}
