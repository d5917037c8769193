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

func declaredVariables(tb testing.TB, src string) ([]*scope.Variable, *ast.Program) {
	tb.Helper()

	program, _, graph := testsource.Resolve(tb, src)

	var variables []*scope.Variable

	for n := range ast.Preorder(program) {
		if decl, ok := n.(*ast.VariableDeclaration); ok {
			variables = append(variables, graph.DeclaredVariables(decl)...)
		}
	}

	return variables, program
}

func TestGroupByDestructuringPattern(t *testing.T) {
	t.Parallel()

	variables, _ := declaredVariables(t, `let {a, b} = obj; use(a); b = 1;`)

	groups := GroupByDestructuring(variables, false)

	// the shared declarator and the later assignment host one group each
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	pattern := groups[0]
	if _, ok := pattern.Host.(*ast.VariableDeclarator); !ok {
		t.Errorf("group 0 host is %T, want *ast.VariableDeclarator", pattern.Host)
	}

	if len(pattern.Members) != 2 {
		t.Fatalf("group 0 has %d members, want 2", len(pattern.Members))
	}

	if pattern.Members[0] == nil || pattern.Members[0].Name != "a" {
		t.Errorf("member 0 = %v, want anchor a", pattern.Members[0])
	}

	// b is reassigned, its slot stays nil
	if pattern.Members[1] != nil {
		t.Errorf("member 1 = %v, want nil", pattern.Members[1])
	}

	assign := groups[1]
	if _, ok := assign.Host.(*ast.AssignmentExpression); !ok {
		t.Errorf("group 1 host is %T, want *ast.AssignmentExpression", assign.Host)
	}

	if len(assign.Members) != 1 || assign.Members[0] != nil {
		t.Errorf("group 1 members = %v, want one nil member", assign.Members)
	}
}

func TestGroupByDestructuringPlainDeclarators(t *testing.T) {
	t.Parallel()

	variables, _ := declaredVariables(t, `let a = 1, b = 2; use(a, b);`)

	groups := GroupByDestructuring(variables, false)

	// every initialized declarator is its own host
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	for i, name := range []string{"a", "b"} {
		if len(groups[i].Members) != 1 {
			t.Fatalf("group %d has %d members, want 1", i, len(groups[i].Members))
		}

		if anchor := groups[i].Members[0]; anchor == nil || anchor.Name != name {
			t.Errorf("group %d anchor = %v, want %s", i, anchor, name)
		}
	}
}

func TestGroupByDestructuringSourceOrder(t *testing.T) {
	t.Parallel()

	variables, _ := declaredVariables(t, `let a = 1; { let b = 2; use(b); } use(a);`)

	groups := GroupByDestructuring(variables, false)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	if groups[0].Host.Range().Start > groups[1].Host.Range().Start {
		t.Error("groups are not in source order")
	}
}

func TestGroupByDestructuringNoWrites(t *testing.T) {
	t.Parallel()

	// a declarator without initializer produces no write, hence no group
	variables, _ := declaredVariables(t, `let a; use(a);`)

	if groups := GroupByDestructuring(variables, false); len(groups) != 0 {
		t.Errorf("got %d groups, want 0", len(groups))
	}
}
