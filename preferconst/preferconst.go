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

import (
	"context"

	"fillmore-labs.com/constguard/internal/run"
)

// Public API constants for the constguard analysis.
const (
	name = "constguard"
	doc  = `constguard reports let declarations that are never reassigned`
	url  = "https://pkg.go.dev/fillmore-labs.com/constguard"
)

// Linter is a configured constguard instance. It is stateless across calls
// and safe for concurrent use.
type Linter struct {
	runOptions *run.Options
}

// New creates a new constguard [Linter]. It allows for programmatic
// configuration using [Option], which is useful for integrating the
// analysis into other tools.
func New(opts ...Option) *Linter {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Linter{runOptions: r}
}

// Name returns the analysis name.
func (l *Linter) Name() string { return name }

// Doc returns the one-line analysis description.
func (l *Linter) Doc() string { return doc }

// URL returns the documentation location.
func (l *Linter) URL() string { return url }

// LintSource analyzes src and returns the diagnostics in source order. The
// filename is carried into the diagnostics unmodified.
func (l *Linter) LintSource(ctx context.Context, filename string, src []byte) ([]Diagnostic, error) {
	text := string(src)

	diags, err := l.runOptions.Source(ctx, text)
	if err != nil {
		return nil, err
	}

	return convertDiagnostics(filename, text, diags), nil
}
