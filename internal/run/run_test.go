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

package run_test

import (
	"os"
	"path/filepath"
	"testing"

	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/report"
	. "fillmore-labs.com/constguard/internal/run"
)

func TestSource(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name        string
		src         string
		opts        config.Options
		wantReports int
		wantFixable int
	}{
		{
			name:        "converts_single_binding",
			src:         `let a = 1; use(a);`,
			opts:        config.Default(),
			wantReports: 1,
			wantFixable: 1,
		},
		{
			name:        "mixed_program",
			src:         `let a = 1; let b = 2; b = 3; for (let i = 0; i < a; i++) use(i);`,
			opts:        config.Default(),
			wantReports: 1,
			wantFixable: 1,
		},
		{
			name:        "const_input_clean",
			src:         `const a = 1; use(a);`,
			opts:        config.Default(),
			wantReports: 0,
		},
		{
			name:        "nested_functions",
			src:         `function f() { let x = g(); return function () { return x; }; }`,
			opts:        config.Default(),
			wantReports: 1,
			wantFixable: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &Options{Config: tt.opts}

			diags, err := r.Source(t.Context(), tt.src)
			if err != nil {
				t.Fatalf("Source(%q) failed: %v", tt.src, err)
			}

			if len(diags) != tt.wantReports {
				t.Errorf("got %d reports, want %d", len(diags), tt.wantReports)
			}

			if got := report.Fixable(diags); got != tt.wantFixable {
				t.Errorf("got %d fixable, want %d", got, tt.wantFixable)
			}
		})
	}
}

func TestSourceParseError(t *testing.T) {
	t.Parallel()

	r := DefaultOptions()

	if _, err := r.Source(t.Context(), `let = ;`); err == nil {
		t.Error("Source succeeded on malformed input, want error")
	}
}

// TestSourceIdempotent checks that applying all planned fixes leaves no
// further fixable reports behind.
func TestSourceIdempotent(t *testing.T) {
	t.Parallel()

	sources := [...]string{
		`let a = 1; use(a);`,
		`let {a, b} = obj; use(a, b);`,
		`for (let v of xs) use(v);`,
		`let a = 1, b = 2; use(a, b); let c = 3; c = 4;`,
	}

	for _, src := range sources {
		r := DefaultOptions()

		diags, err := r.Source(t.Context(), src)
		if err != nil {
			t.Fatalf("Source(%q) failed: %v", src, err)
		}

		applied := report.Apply(src, diags)

		again, err := r.Source(t.Context(), applied)
		if err != nil {
			t.Fatalf("Source(%q) failed after fixing: %v", applied, err)
		}

		if n := report.Fixable(again); n != 0 {
			t.Errorf("%q still has %d fixable reports after fixing", applied, n)
		}
	}
}

func TestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.js")
	if err := os.WriteFile(path, []byte(`let a = 1; use(a);`), 0o600); err != nil {
		t.Fatal(err)
	}

	r := DefaultOptions()

	diags, err := r.File(t.Context(), path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}

	if len(diags) != 1 {
		t.Errorf("got %d reports, want 1", len(diags))
	}

	if _, err := r.File(t.Context(), filepath.Join(t.TempDir(), "absent.js")); err == nil {
		t.Error("File succeeded on missing path, want error")
	}
}
