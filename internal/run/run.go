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

package run

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/idlength/internal/assets"
	"fillmore-labs.com/idlength/internal/config"
	"fillmore-labs.com/idlength/internal/lint"
	"fillmore-labs.com/idlength/internal/report"
)

// script is a checked JavaScript asset.
type script struct {
	name   string
	src    []byte
	result lint.Result
}

// Run executes the idlength analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	cfg, err := config.New(r.Config)
	if err != nil {
		return nil, fmt.Errorf("idlength: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "IDLength")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	// Stage 1: Find the embedded JavaScript files
	names, err := assets.Scripts(p.Fset, p.Files)
	if err != nil {
		return nil, fmt.Errorf("idlength: %w", err)
	}

	if len(names) == 0 {
		return nil, nil
	}

	// Stage 2: Parse and check the files concurrently
	scripts, err := check(ctx, lint.New(cfg), names)
	if err != nil {
		return nil, fmt.Errorf("idlength: %w", err)
	}

	// Stage 3: Report in file order
	for _, s := range scripts {
		tf := p.Fset.AddFile(s.name, -1, len(s.src))
		tf.SetLinesForContent(s.src)

		report.ProcessDiagnostics(ctx, p, tf, s.result)
	}

	return nil, nil
}

// check reads and lints the named files, preserving their order.
func check(ctx context.Context, linter lint.Linter, names []string) ([]script, error) {
	defer trace.StartRegion(ctx, "Check").End()

	scripts := make([]script, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range names {
		g.Go(func() error {
			src, err := os.ReadFile(name)
			if err != nil {
				return err
			}

			result, err := linter.Source(ctx, name, src)
			if err != nil {
				return err
			}

			scripts[i] = script{name: name, src: src, result: result}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scripts, nil
}
