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

package preferconst

import "flag"

// RegisterFlags binds the linter's options to command line flag values.
// A nil flag set value defaults to the program's command line.
func (l *Linter) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	cfg := &l.runOptions.Config

	flags.Var(modeValue{mode: &cfg.Destructuring}, "destructuring", `destructuring mode, "any" or "all"`)
	flags.BoolVar(&cfg.IgnoreReadBeforeAssign, "ignore-read-before-assign",
		cfg.IgnoreReadBeforeAssign, "ignore variables read before their first assignment")
	flags.Var(calleeList{callees: &cfg.AllowedCallees}, "allowed-callees",
		"comma-separated callees whose results may stay let")
}
