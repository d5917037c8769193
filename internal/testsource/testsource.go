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

// Package testsource provides utilities for parsing and analyzing source
// fragments in tests.
//
// It handles the parse and scope-build boilerplate so tests can start from
// a resolved program.
package testsource

import (
	"testing"

	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/lexer"
	"fillmore-labs.com/constguard/internal/parser"
	"fillmore-labs.com/constguard/internal/scope"
)

// Parse parses src and fails the test on syntax errors.
//
// Returns:
//   - *ast.Program: The linked program tree.
//   - []lexer.Token: The full token stream, comments included.
func Parse(tb testing.TB, src string) (*ast.Program, []lexer.Token) {
	tb.Helper()

	program, tokens, err := parser.Parse(src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return program, tokens
}

// Resolve parses src and builds its scope graph.
func Resolve(tb testing.TB, src string) (*ast.Program, []lexer.Token, *scope.Graph) {
	tb.Helper()

	program, tokens := Parse(tb, src)
	graph := scope.Build(program, lexer.Comments(tokens))

	return program, tokens, graph
}

// GlobalVariable returns the global variable named name, failing the test
// when it does not exist.
func GlobalVariable(tb testing.TB, graph *scope.Graph, name string) *scope.Variable {
	tb.Helper()

	v := graph.Global.Variable(name)
	if v == nil {
		tb.Fatalf("Can't find global variable %q", name)
	}

	return v
}
