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

// Package config holds the identifier length configuration.
//
// [Options] is the raw, user supplied option record. [New] validates it and
// compiles it into an immutable [Config] that is shared read-only by all checks.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
)

// Behavior represents behavioral switches of the identifier checks.
type Behavior uint8

const (
	// CheckProperties enables checks of object literal keys and member assignment targets.
	CheckProperties Behavior = 1 << iota

	// IncludeGenerated enables checks of generated and minified files.
	IncludeGenerated
)

// Properties is the value of the "properties" option.
type Properties uint8

//go:generate go tool stringer -type Properties -linecomment
const (
	// PropertiesAlways checks property keys.
	PropertiesAlways Properties = iota // always

	// PropertiesNever skips property keys.
	PropertiesNever // never
)

const (
	// DefaultMin is the default minimum identifier length.
	DefaultMin = 2

	// Unbounded is the maximum identifier length when no maximum is configured.
	Unbounded = math.MaxInt
)

var (
	// ErrInvalidBounds is returned for a negative minimum or a maximum smaller than the minimum.
	ErrInvalidBounds = errors.New("invalid length bounds")

	// ErrInvalidPattern is returned when an exception pattern is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid exception pattern")

	// ErrInvalidProperties is returned for an unknown "properties" value.
	ErrInvalidProperties = errors.New(`properties must be "always" or "never"`)
)

// ParseProperties parses the value of the "properties" option.
func ParseProperties(s string) (Properties, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "":
		return PropertiesAlways, nil

	case "never":
		return PropertiesNever, nil

	default:
		return PropertiesAlways, fmt.Errorf("%w: %q", ErrInvalidProperties, s)
	}
}

// Options is the raw option record.
type Options struct {
	// Min is the minimum identifier length.
	Min int

	// Max is the maximum identifier length, [Unbounded] for no limit.
	Max int

	// Properties controls whether property keys are checked.
	Properties Properties

	// Exceptions are names that are never reported.
	Exceptions []string

	// ExceptionPatterns are regular expressions, a name matching any of them is never reported.
	ExceptionPatterns []string

	// Generated enables checks of generated and minified files.
	Generated bool
}

// DefaultOptions returns the options with default values.
func DefaultOptions() Options {
	return Options{
		Min:        DefaultMin,
		Max:        Unbounded,
		Properties: PropertiesAlways,
	}
}

// Config is the validated, immutable configuration.
type Config struct {
	min, max   int
	behavior   BitMask[Behavior]
	exceptions map[string]struct{}
	patterns   []*regexp.Regexp
}

// New validates o and compiles it into a [Config].
func New(o Options) (*Config, error) {
	if o.Min < 0 {
		return nil, fmt.Errorf("%w: min %d is negative", ErrInvalidBounds, o.Min)
	}

	if o.Max < o.Min {
		return nil, fmt.Errorf("%w: max %d is less than min %d", ErrInvalidBounds, o.Max, o.Min)
	}

	c := &Config{
		min:        o.Min,
		max:        o.Max,
		exceptions: make(map[string]struct{}, len(o.Exceptions)),
		patterns:   make([]*regexp.Regexp, 0, len(o.ExceptionPatterns)),
	}

	c.behavior.Set(CheckProperties, o.Properties == PropertiesAlways)
	c.behavior.Set(IncludeGenerated, o.Generated)

	for _, name := range o.Exceptions {
		c.exceptions[name] = struct{}{}
	}

	for _, pattern := range o.ExceptionPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}

		c.patterns = append(c.patterns, re)
	}

	return c, nil
}

// Default returns the default configuration.
func Default() *Config {
	c, err := New(DefaultOptions())
	if err != nil {
		panic(err) // defaults are valid
	}

	return c
}

// Min returns the minimum identifier length.
func (c *Config) Min() int { return c.min }

// Max returns the maximum identifier length.
func (c *Config) Max() int { return c.max }

// Enabled reports whether a behavior flag is set.
func (c *Config) Enabled(flag Behavior) bool { return c.behavior.Enabled(flag) }

// Excepted reports whether name is listed in the exceptions or matches an exception pattern.
//
// Patterns are unanchored unless they anchor themselves and are tried in configured order.
func (c *Config) Excepted(name string) bool {
	if _, ok := c.exceptions[name]; ok {
		return true
	}

	for _, re := range c.patterns {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

// LogValue implements [slog.LogValuer].
func (c *Config) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("min", c.min)}

	if c.max != Unbounded {
		attrs = append(attrs, slog.Int("max", c.max))
	}

	properties := PropertiesNever
	if c.Enabled(CheckProperties) {
		properties = PropertiesAlways
	}

	attrs = append(attrs,
		slog.String("properties", properties.String()),
		slog.Int("exceptions", len(c.exceptions)),
		slog.Int("exceptionPatterns", len(c.patterns)),
	)

	return slog.GroupValue(attrs...)
}
