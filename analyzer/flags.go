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
	"flag"

	"fillmore-labs.com/idlength/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	c := &r.Config

	flags.IntVar(&c.Min, "min", c.Min, "minimum identifier length")
	flags.Var(maxValue{&c.Max}, "max", "maximum identifier length (empty for unbounded)")
	flags.Var(propertiesValue{&c.Properties}, "properties", `check property names: "always" or "never"`)
	flags.Var(listValue{&c.Exceptions, true}, "exceptions", "comma-separated names that are never reported")
	flags.Var(listValue{&c.ExceptionPatterns, false}, "exception-patterns", "regular expression for names that are never reported (repeatable)")
	flags.BoolVar(&c.Generated, "generated", c.Generated, "check generated files")
}
