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

package gclplugin

import (
	idlength "fillmore-labs.com/idlength/analyzer"
	"fillmore-labs.com/idlength/internal/config"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Min is the minimum identifier length.
	Min *int `json:"min,omitzero"`
	// Max is the maximum identifier length.
	Max *int `json:"max,omitzero"`
	// Properties is "always" or "never", controlling whether property names are checked.
	Properties *string `json:"properties,omitzero"`
	// Exceptions are names that are never reported.
	Exceptions []string `json:"exceptions,omitzero"`
	// ExceptionPatterns are regular expressions for names that are never reported.
	ExceptionPatterns []string `json:"exception-patterns,omitzero"`
	// Generated enables checks of generated and minified files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [idlength.Option] for the idlength analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]idlength.Option, error) {
	var opts []idlength.Option

	opts = appendOption(opts, s.Min, idlength.WithMin)
	opts = appendOption(opts, s.Max, idlength.WithMax)

	if s.Properties != nil {
		properties, err := config.ParseProperties(*s.Properties)
		if err != nil {
			return nil, err
		}

		opts = append(opts, idlength.WithProperties(properties))
	}

	if s.Exceptions != nil {
		opts = append(opts, idlength.WithExceptions(s.Exceptions...))
	}

	if s.ExceptionPatterns != nil {
		opts = append(opts, idlength.WithExceptionPatterns(s.ExceptionPatterns...))
	}

	opts = appendOption(opts, s.Generated, idlength.WithGenerated)

	return opts, nil
}

// appendOption appends a non-nil setting to an [idlength.Option] list.
func appendOption[T any](opts []idlength.Option, value *T, constructor func(T) idlength.Option) []idlength.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
