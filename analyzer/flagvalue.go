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
	"strconv"
	"strings"

	"fillmore-labs.com/idlength/internal/config"
)

// maxValue is a [flag.Value] for the maximum length, where [Unbounded] is shown as empty.
type maxValue struct{ value *int }

// Set implements [flag.Value].
func (f maxValue) Set(s string) error {
	switch s = strings.TrimSpace(s); strings.ToLower(s) {
	case "", "unbounded":
		*f.value = Unbounded

		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	*f.value = n

	return nil
}

// String implements [flag.Value].
func (f maxValue) String() string {
	if f.value == nil || *f.value == Unbounded {
		return ""
	}

	return strconv.Itoa(*f.value)
}

// Get implements [flag.Getter].
func (f maxValue) Get() any {
	if f.value == nil {
		return Unbounded
	}

	return *f.value
}

// propertiesValue is a [flag.Value] for the properties option.
type propertiesValue struct{ value *config.Properties }

// Set implements [flag.Value].
func (f propertiesValue) Set(s string) error {
	p, err := config.ParseProperties(s)
	if err != nil {
		return err
	}

	*f.value = p

	return nil
}

// String implements [flag.Value].
func (f propertiesValue) String() string {
	if f.value == nil {
		return config.PropertiesAlways.String()
	}

	return f.value.String()
}

// Get implements [flag.Getter].
func (f propertiesValue) Get() any {
	if f.value == nil {
		return config.PropertiesAlways
	}

	return *f.value
}

// listValue is a repeatable [flag.Value] appending to a list of strings.
// When split is set, values are comma-separated lists.
type listValue struct {
	value *[]string
	split bool
}

// Set implements [flag.Value].
func (f listValue) Set(s string) error {
	if !f.split {
		*f.value = append(*f.value, s)

		return nil
	}

	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*f.value = append(*f.value, item)
		}
	}

	return nil
}

// String implements [flag.Value].
func (f listValue) String() string {
	if f.value == nil {
		return ""
	}

	return strings.Join(*f.value, ",")
}

// Get implements [flag.Getter].
func (f listValue) Get() any {
	if f.value == nil {
		return []string(nil)
	}

	return *f.value
}
