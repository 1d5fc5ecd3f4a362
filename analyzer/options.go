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

package analyzer

import (
	"fmt"
	"log/slog"

	"fillmore-labs.com/idlength/internal/config"
	"fillmore-labs.com/idlength/internal/run"
)

// Option configures specific behavior of a [New] idlength analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// Validate checks that the options, applied to the defaults, form a valid configuration.
func (o Options) Validate() error {
	r := run.DefaultOptions()
	o.apply(r)

	if _, err := config.New(r.Config); err != nil {
		return fmt.Errorf("idlength: %w", err)
	}

	return nil
}

// Properties is the value of the properties option.
type Properties = config.Properties

const (
	// PropertiesAlways checks object literal keys and member assignment targets.
	PropertiesAlways = config.PropertiesAlways

	// PropertiesNever skips object literal keys and member assignment targets.
	PropertiesNever = config.PropertiesNever
)

// Unbounded is the maximum length when no maximum is configured.
const Unbounded = config.Unbounded

// WithMin is an [Option] to configure the minimum identifier length.
func WithMin(minLength int) Option { return minOption{minLength: minLength} }

type minOption struct{ minLength int }

func (o minOption) apply(r *run.Options) {
	r.Config.Min = o.minLength
}

func (o minOption) LogAttr() slog.Attr {
	return slog.Int("min", o.minLength)
}

// WithMax is an [Option] to configure the maximum identifier length. Use [Unbounded] for no limit.
func WithMax(maxLength int) Option { return maxOption{maxLength: maxLength} }

type maxOption struct{ maxLength int }

func (o maxOption) apply(r *run.Options) {
	r.Config.Max = o.maxLength
}

func (o maxOption) LogAttr() slog.Attr {
	if o.maxLength == Unbounded {
		return slog.String("max", "unbounded")
	}

	return slog.Int("max", o.maxLength)
}

// WithProperties is an [Option] to configure whether property names are checked.
func WithProperties(properties Properties) Option { return propertiesOption{properties: properties} }

type propertiesOption struct{ properties Properties }

func (o propertiesOption) apply(r *run.Options) {
	r.Config.Properties = o.properties
}

func (o propertiesOption) LogAttr() slog.Attr {
	return slog.String("properties", o.properties.String())
}

// WithExceptions is an [Option] to configure names that are never reported.
// Exceptions accumulate over multiple options.
func WithExceptions(names ...string) Option { return exceptionsOption{names: names} }

type exceptionsOption struct{ names []string }

func (o exceptionsOption) apply(r *run.Options) {
	r.Config.Exceptions = append(r.Config.Exceptions, o.names...)
}

func (o exceptionsOption) LogAttr() slog.Attr {
	return slog.Any("exceptions", o.names)
}

// WithExceptionPatterns is an [Option] to configure regular expressions for names that are never reported.
// Patterns accumulate over multiple options.
func WithExceptionPatterns(patterns ...string) Option {
	return exceptionPatternsOption{patterns: patterns}
}

type exceptionPatternsOption struct{ patterns []string }

func (o exceptionPatternsOption) apply(r *run.Options) {
	r.Config.ExceptionPatterns = append(r.Config.ExceptionPatterns, o.patterns...)
}

func (o exceptionPatternsOption) LogAttr() slog.Attr {
	return slog.Any("exception-patterns", o.patterns)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Config.Generated = o.generated
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
