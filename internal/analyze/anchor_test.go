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

package analyze_test

import (
	"testing"

	. "fillmore-labs.com/constguard/internal/analyze"
	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/scope"
	"fillmore-labs.com/constguard/internal/testsource"
)

// variableNamed finds name anywhere in the scope tree.
func variableNamed(tb testing.TB, graph *scope.Graph, name string) *scope.Variable {
	tb.Helper()

	scopes := []*scope.Scope{graph.Global}
	for i := 0; i < len(scopes); i++ {
		if v := scopes[i].Variable(name); v != nil {
			return v
		}

		scopes = append(scopes, scopes[i].Children...)
	}

	tb.Fatalf("Can't find variable %q", name)

	return nil
}

func TestConstAnchor(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		src      string
		variable string
		want     bool
	}{
		{
			name:     "initialized_never_reassigned",
			src:      `let a = 1; use(a);`,
			variable: "a",
			want:     true,
		},
		{
			name:     "reassigned",
			src:      `let a = 1; a = 2;`,
			variable: "a",
			want:     false,
		},
		{
			name:     "compound_reassigned",
			src:      `let a = 1; a += 1;`,
			variable: "a",
			want:     false,
		},
		{
			name:     "assigned_once_after_declaration",
			src:      `let a; a = 1; use(a);`,
			variable: "a",
			want:     true,
		},
		{
			name:     "assigned_in_inner_scope",
			src:      `let a; if (x) { a = 1; }`,
			variable: "a",
			want:     false,
		},
		{
			name:     "assigned_in_expression_position",
			src:      `let a; use(a = 1);`,
			variable: "a",
			want:     false,
		},
		{
			name:     "never_assigned",
			src:      `let a; use(a);`,
			variable: "a",
			want:     false,
		},
		{
			name:     "for_of_head",
			src:      `for (let v of list) use(v);`,
			variable: "v",
			want:     true,
		},
		{
			name:     "for_in_head",
			src:      `for (let k in obj) use(k);`,
			variable: "k",
			want:     true,
		},
		{
			name:     "destructuring_assignment",
			src:      `let a; [a] = pair(); use(a);`,
			variable: "a",
			want:     true,
		},
		{
			name:     "outer_variable_in_pattern",
			src:      `let x = 1; function f() { let a; [a, x] = pair(); use(a); }`,
			variable: "a",
			want:     false,
		},
		{
			name:     "parameter_in_pattern",
			src:      `function f(p) { let a; [a, p] = pair(); use(a); }`,
			variable: "a",
			want:     false,
		},
		{
			name:     "member_expression_in_pattern",
			src:      `let a; [a, obj.b] = pair(); use(a);`,
			variable: "a",
			want:     false,
		},
		{
			name:     "object_pattern_outer_value",
			src:      `let x = 1; function f() { let a; ({b: a, c: x} = obj); use(a); }`,
			variable: "a",
			want:     false,
		},
		{
			name:     "exported_global",
			src:      `/* exported a */ let a = 1;`,
			variable: "a",
			want:     false,
		},
		{
			name:     "exported_name_in_function",
			src:      `/* exported a */ function f() { let a = 1; use(a); }`,
			variable: "a",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			_, _, graph := testsource.Resolve(t, tt.src)
			v := variableNamed(t, graph, tt.variable)

			// when
			anchor := ConstAnchor(v, false)

			// then
			if got := anchor != nil; got != tt.want {
				t.Errorf("ConstAnchor(%s) = %v, want convertible=%v", tt.variable, anchor, tt.want)
			}

			if anchor != nil && anchor.Name != tt.variable {
				t.Errorf("anchor name = %q, want %q", anchor.Name, tt.variable)
			}
		})
	}
}

func TestConstAnchorReadBeforeInit(t *testing.T) {
	t.Parallel()

	src := `function f() { use(a); } let a; a = 1; f();`

	_, _, graph := testsource.Resolve(t, src)
	v := variableNamed(t, graph, "a")

	// the anchor moves to the declared name so the declaration carries the
	// initializer
	anchor := ConstAnchor(v, false)
	if anchor == nil {
		t.Fatal("ConstAnchor = nil, want declaration name")
	}

	if anchor != v.Defs[0].Name {
		t.Error("anchor is not the declared name")
	}

	if got := ConstAnchor(v, true); got != nil {
		t.Errorf("ConstAnchor with ignoreReadBeforeAssign = %v, want nil", got)
	}
}

func TestDestructuringHost(t *testing.T) {
	t.Parallel()

	_, _, graph := testsource.Resolve(t, `let {a} = obj; let b; b = 1; use(b);`)

	a := variableNamed(t, graph, "a")

	if host, ok := DestructuringHost(a.References[0]).(*ast.VariableDeclarator); host == nil || !ok {
		t.Error("pattern write should be hosted by its declarator")
	}

	b := variableNamed(t, graph, "b")

	// a plain assignment is its own host
	if host, ok := DestructuringHost(b.References[0]).(*ast.AssignmentExpression); host == nil || !ok {
		t.Error("assignment write should be hosted by the assignment")
	}

	if host := DestructuringHost(b.References[1]); host != nil {
		t.Errorf("read reference got host %v", host)
	}
}
