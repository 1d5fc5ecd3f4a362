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

// Package assets finds the JavaScript files a Go package embeds.
package assets

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const directive = "//go:embed"

// ErrInvalidDirective is returned for a malformed //go:embed directive.
var ErrInvalidDirective = errors.New("invalid //go:embed directive")

// IsScript reports whether name has a JavaScript file extension.
func IsScript(name string) bool {
	switch filepath.Ext(name) {
	case ".js", ".mjs", ".cjs":
		return true

	default:
		return false
	}
}

// Scripts resolves the //go:embed patterns of files relative to each file's directory
// and returns the embedded JavaScript files, sorted and without duplicates.
//
// Embedded directories are walked recursively. Names starting with '.' or '_' are
// skipped unless the pattern has the "all:" prefix.
func Scripts(fset *token.FileSet, files []*ast.File) ([]string, error) {
	var scripts []string

	for _, f := range files {
		tf := fset.File(f.Pos())
		if tf == nil {
			continue
		}

		dir := filepath.Dir(tf.Name())

		for _, group := range f.Comments {
			for _, comment := range group.List {
				patterns, ok, err := parseDirective(comment.Text)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", fset.Position(comment.Pos()), err)
				}

				if !ok {
					continue
				}

				for _, pattern := range patterns {
					matches, err := resolve(dir, pattern)
					if err != nil {
						return nil, fmt.Errorf("%s: pattern %s: %w", fset.Position(comment.Pos()), pattern, err)
					}

					scripts = append(scripts, matches...)
				}
			}
		}
	}

	slices.Sort(scripts)

	return slices.Compact(scripts), nil
}

// parseDirective splits a //go:embed directive into its patterns.
func parseDirective(text string) (patterns []string, ok bool, err error) {
	args, found := strings.CutPrefix(text, directive)
	if !found || (args != "" && args[0] != ' ' && args[0] != '\t') {
		return nil, false, nil
	}

	args = strings.TrimSpace(args)
	for args != "" {
		var pattern string

		switch args[0] {
		case '"', '`':
			quoted, err := strconv.QuotedPrefix(args)
			if err != nil {
				return nil, true, fmt.Errorf("%w: %s", ErrInvalidDirective, args)
			}

			if pattern, err = strconv.Unquote(quoted); err != nil {
				return nil, true, fmt.Errorf("%w: %s", ErrInvalidDirective, quoted)
			}

			args = args[len(quoted):]

		default:
			i := strings.IndexAny(args, " \t")
			if i < 0 {
				i = len(args)
			}

			pattern, args = args[:i], args[i:]
		}

		patterns = append(patterns, pattern)
		args = strings.TrimSpace(args)
	}

	if len(patterns) == 0 {
		return nil, true, fmt.Errorf("%w: no patterns", ErrInvalidDirective)
	}

	return patterns, true, nil
}

// resolve returns the JavaScript files matching an embed pattern below dir.
func resolve(dir, pattern string) ([]string, error) {
	pattern, all := strings.CutPrefix(pattern, "all:")

	if !fs.ValidPath(pattern) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrInvalidDirective, pattern)
	}

	fsys := os.DirFS(dir)

	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}

	var scripts []string

	for _, match := range matches {
		err := fs.WalkDir(fsys, match, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			// Hidden files below an embedded directory are skipped
			if name != match && !all && hidden(path.Base(name)) {
				if d.IsDir() {
					return fs.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() && IsScript(name) {
				scripts = append(scripts, filepath.Join(dir, filepath.FromSlash(name)))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return scripts, nil
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
