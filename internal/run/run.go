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

// Package run wires parser, scope builder, analysis and reporting into the
// constguard pipeline.
package run

import (
	"context"
	"fmt"
	"os"
	"runtime/trace"

	"fillmore-labs.com/constguard/internal/analyze"
	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/lexer"
	"fillmore-labs.com/constguard/internal/parser"
	"fillmore-labs.com/constguard/internal/report"
	"fillmore-labs.com/constguard/internal/scope"
)

// Source executes the constguard pipeline over one source text and returns
// the diagnostics in source order. Aggregation state is per call; runs are
// independent of each other.
func (r *Options) Source(ctx context.Context, src string) ([]report.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "ConstGuard")
	defer task.End()

	region := trace.StartRegion(ctx, "Parse")
	program, tokens, err := parser.Parse(src)
	region.End()

	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}

	region = trace.StartRegion(ctx, "Scopes")
	graph := scope.Build(program, lexer.Comments(tokens))
	region.End()

	defer trace.StartRegion(ctx, "Analyze").End()

	variables := collectTargets(program, graph)
	groups := analyze.GroupByDestructuring(variables, r.Config.IgnoreReadBeforeAssign)

	checker := report.NewChecker(r.Config, tokens)

	var diags []report.Diagnostic
	for _, group := range groups {
		diags = append(diags, checker.CheckGroup(group)...)
	}

	return diags, nil
}

// File analyzes the file at path.
func (r *Options) File(ctx context.Context, path string) ([]report.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	diags, err := r.Source(ctx, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return diags, nil
}

// collectTargets gathers the variables of every let declaration in source
// order. Declarations in the init clause of a classic for loop are not
// analysis targets.
func collectTargets(program *ast.Program, graph *scope.Graph) []*scope.Variable {
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

	return variables
}
