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

package report_test

import (
	"strings"
	"testing"

	"fillmore-labs.com/constguard/internal/analyze"
	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/config"
	. "fillmore-labs.com/constguard/internal/report"
	"fillmore-labs.com/constguard/internal/scope"
	"fillmore-labs.com/constguard/internal/testsource"
)

// check runs the full group pipeline over src with the given options.
func check(tb testing.TB, src string, opts config.Options) []Diagnostic {
	tb.Helper()

	program, tokens, graph := testsource.Resolve(tb, src)

	var variables []*scope.Variable

	for n := range ast.Preorder(program) {
		decl, ok := n.(*ast.VariableDeclaration)
		if !ok || decl.DeclKind != ast.DeclLet {
			continue
		}

		if parent, ok := decl.Parent().(*ast.ForStatement); ok && parent.Init == decl {
			continue
		}

		variables = append(variables, graph.DeclaredVariables(decl)...)
	}

	checker := NewChecker(opts, tokens)

	var diags []Diagnostic
	for _, group := range analyze.GroupByDestructuring(variables, opts.IgnoreReadBeforeAssign) {
		diags = append(diags, checker.CheckGroup(group)...)
	}

	return diags
}

func names(diags []Diagnostic) []string {
	result := make([]string, len(diags))
	for i, d := range diags {
		result[i] = d.Node.Name
	}

	return result
}

func fixed(src string, diags []Diagnostic) string {
	return Apply(src, diags)
}

func TestCheckGroup(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		src       string
		opts      config.Options
		wantNames []string
		wantFixed string // empty when no fix must be planned
	}{
		{
			name:      "simple_conversion",
			src:       `let total = sum(xs); use(total);`,
			opts:      config.Default(),
			wantNames: []string{"total"},
			wantFixed: `const total = sum(xs); use(total);`,
		},
		{
			name:      "reassigned_not_reported",
			src:       `let n = 0; n = n + 1;`,
			opts:      config.Default(),
			wantNames: nil,
		},
		{
			name:      "for_of_head",
			src:       `for (let v of xs) use(v);`,
			opts:      config.Default(),
			wantNames: []string{"v"},
			wantFixed: `for (const v of xs) use(v);`,
		},
		{
			name:      "classic_for_not_reported",
			src:       `for (let i = 0; i < n; i++) use(i);`,
			opts:      config.Default(),
			wantNames: nil,
		},
		{
			name:      "uninitialized_assigned_once",
			src:       `let a; a = f(); use(a);`,
			opts:      config.Default(),
			wantNames: []string{"a"},
			// the declaration lacks an initializer, report without fix
		},
		{
			name:      "destructuring_any_mode",
			src:       `let {a, b} = obj; use(a); b = 1;`,
			opts:      config.Default(),
			wantNames: []string{"a"},
		},
		{
			name:      "destructuring_all_mode",
			src:       `let {a, b} = obj; use(a); b = 1;`,
			opts:      config.Options{Destructuring: config.DestructuringAll},
			wantNames: nil,
		},
		{
			name:      "destructuring_all_convertible",
			src:       `let {a, b} = obj; use(a, b);`,
			opts:      config.Options{Destructuring: config.DestructuringAll},
			wantNames: []string{"a", "b"},
			wantFixed: `const {a, b} = obj; use(a, b);`,
		},
		{
			name:      "multi_declarator_partial",
			src:       `let a = 1, b = 2; use(a); b = 3;`,
			opts:      config.Default(),
			wantNames: []string{"a"},
		},
		{
			name:      "multi_declarator_full",
			src:       `let a = 1, b = 2; use(a, b);`,
			opts:      config.Default(),
			wantNames: []string{"a", "b"},
			wantFixed: `const a = 1, b = 2; use(a, b);`,
		},
		{
			name:      "missing_initializer_blocks_fix",
			src:       `let a = 1, b; b = 2; use(a, b);`,
			opts:      config.Default(),
			wantNames: []string{"a", "b"},
		},
		{
			name:      "allowed_callee_skipped",
			src:       `let conn = connect(url); use(conn);`,
			opts:      config.Options{AllowedCallees: []string{"connect"}},
			wantNames: nil,
		},
		{
			name:      "allowed_method_callee_skipped",
			src:       `let doc = api.fetch(id); use(doc);`,
			opts:      config.Options{AllowedCallees: []string{"api.fetch"}},
			wantNames: nil,
		},
		{
			name:      "other_callee_still_reported",
			src:       `let doc = load(id); use(doc);`,
			opts:      config.Options{AllowedCallees: []string{"connect"}},
			wantNames: []string{"doc"},
			wantFixed: `const doc = load(id); use(doc);`,
		},
		{
			name:      "read_before_assign_ignored",
			src:       `function f() { use(a); } let a; a = 1; f();`,
			opts:      config.Options{IgnoreReadBeforeAssign: true},
			wantNames: nil,
		},
		{
			name:      "var_not_reported",
			src:       `var a = 1; use(a);`,
			opts:      config.Default(),
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			diags := check(t, tt.src, tt.opts)

			// then
			got := names(diags)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("reported %v, want %v", got, tt.wantNames)
			}

			for i := range tt.wantNames {
				if got[i] != tt.wantNames[i] {
					t.Fatalf("reported %v, want %v", got, tt.wantNames)
				}
			}

			result := fixed(tt.src, diags)

			if tt.wantFixed == "" {
				if result != tt.src {
					t.Errorf("unexpected fix applied: %q", result)
				}

				return
			}

			if result != tt.wantFixed {
				t.Errorf("fixed source = %q, want %q", result, tt.wantFixed)
			}
		})
	}
}

func TestCheckGroupMessage(t *testing.T) {
	t.Parallel()

	diags := check(t, `let total = 1; use(total);`, config.Default())
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	want := "'total' is never reassigned. Use 'const' instead."
	if diags[0].Message != want {
		t.Errorf("message = %q, want %q", diags[0].Message, want)
	}

	if !strings.Contains(diags[0].Message, "total") {
		t.Error("message does not name the variable")
	}
}

func TestCheckerStateResets(t *testing.T) {
	t.Parallel()

	// two multi-declarator declarations back to back; the counter of the
	// first must not leak into the second
	src := `let a = 1, b = 2; use(a, b); let c = 1, d = 2; use(c); d = 3;`

	diags := check(t, src, config.Default())

	got := names(diags)
	want := []string{"a", "b", "c"}

	if len(got) != len(want) {
		t.Fatalf("reported %v, want %v", got, want)
	}

	result := fixed(src, diags)
	wantFixed := `const a = 1, b = 2; use(a, b); let c = 1, d = 2; use(c); d = 3;`

	if result != wantFixed {
		t.Errorf("fixed source = %q, want %q", result, wantFixed)
	}
}
