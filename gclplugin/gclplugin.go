// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	idlength "fillmore-labs.com/idlength/analyzer"
)

func init() { register.Plugin("idlength", New) }

// New decodes the golangci-lint settings of the idlength linter.
//
// Invalid settings, like an unknown properties mode, a maximum below the minimum or an
// exception pattern that does not compile, are rejected here, so golangci-lint fails
// at startup instead of on the first package that embeds JavaScript.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	opts, err := settings.Options()
	if err != nil {
		return nil, err
	}

	if err := idlength.Options(opts).Validate(); err != nil {
		return nil, err
	}

	return Plugin{options: opts}, nil
}

// Plugin checks identifier lengths in the JavaScript files packages embed with //go:embed.
type Plugin struct {
	options idlength.Options
}

// GetLoadMode returns [register.LoadModeSyntax]: embedded files are found from
// the //go:embed directives of the parsed Go files, no type information is needed.
func (Plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}

// BuildAnalyzers returns a single idlength analyzer configured with the plugin settings.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{idlength.New(p.options...)}, nil
}
