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

package scope

import (
	"slices"
	"strings"

	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/lexer"
)

// Build constructs the scope graph for a linked program tree.
//
// References resolve when their scope closes, so bindings declared later in
// the same block are found (let hoisting within the block). Unresolved
// references propagate outward through each scope's Through list and end up
// unresolved on the global scope.
//
// Comment tokens are scanned for "/* exported name */" directives marking
// global variables as externally used.
func Build(program *ast.Program, comments []lexer.Token) *Graph {
	b := &builder{declared: make(map[*ast.VariableDeclaration][]*Variable)}

	b.push(Global, program)

	for _, stmt := range program.Body {
		b.visit(stmt)
	}

	global := b.pop()

	markExported(global, comments)

	return &Graph{Global: global, declared: b.declared}
}

type builder struct {
	current  *Scope
	declared map[*ast.VariableDeclaration][]*Variable
}

func (b *builder) push(t Type, block ast.Node) {
	s := &Scope{Type: t, Upper: b.current, Block: block, names: make(map[string]*Variable)}
	if b.current != nil {
		b.current.Children = append(b.current.Children, s)
	}

	b.current = s
}

// pop closes the current scope: pending references resolve against the
// scope's own variables or propagate to the upper scope.
func (b *builder) pop() *Scope {
	s := b.current

	for _, ref := range s.pending {
		if v := s.names[ref.Identifier.Name]; v != nil {
			ref.Resolved = v
			v.References = append(v.References, ref)

			continue
		}

		s.Through = append(s.Through, ref)
		if s.Upper != nil {
			s.Upper.pending = append(s.Upper.pending, ref)
		}
	}

	s.pending = nil
	b.current = s.Upper

	return s
}

// varScope returns the nearest enclosing scope that var declarations hoist
// to.
func (b *builder) varScope() *Scope {
	s := b.current
	for s.Type != Function && s.Type != Global && s.Type != ClassStaticBlock {
		s = s.Upper
	}

	return s
}

func (b *builder) define(target *Scope, id *ast.Identifier, kind DefKind, node, decl ast.Node) *Variable {
	v := target.names[id.Name]
	if v == nil {
		v = &Variable{Name: id.Name, Scope: target}
		target.names[id.Name] = v
		target.Variables = append(target.Variables, v)
	}

	v.Defs = append(v.Defs, Def{Kind: kind, Name: id, Node: node, Decl: decl})

	return v
}

func (b *builder) addRef(id *ast.Identifier, flags refFlags) {
	ref := &Reference{Identifier: id, From: b.current, flags: flags}
	b.current.pending = append(b.current.pending, ref)
}

//nolint:cyclop // node dispatch
func (b *builder) visit(n ast.Node) {
	if n == nil {
		return
	}

	switch n := n.(type) {
	case *ast.Identifier:
		b.addRef(n, flagRead)

	case *ast.VariableDeclaration:
		b.visitVariableDeclaration(n)

	case *ast.AssignmentExpression:
		b.visitAssignment(n)

	case *ast.UpdateExpression:
		if id, ok := n.Argument.(*ast.Identifier); ok {
			b.addRef(id, flagRead|flagWrite)
		} else {
			b.visit(n.Argument)
		}

	case *ast.MemberExpression:
		b.visit(n.Object)

		if n.Computed {
			b.visit(n.Property)
		}

	case *ast.Property:
		if n.Computed {
			b.visit(n.Key)
		}

		b.visit(n.Value)

	case *ast.BlockStatement:
		b.push(Block, n)

		for _, stmt := range n.Body {
			b.visit(stmt)
		}

		b.pop()

	case *ast.ForStatement:
		b.visitFor(n)

	case *ast.ForInStatement:
		b.visitForEach(n, n.Left, n.Right, n.Body)

	case *ast.ForOfStatement:
		b.visitForEach(n, n.Left, n.Right, n.Body)

	case *ast.SwitchStatement:
		b.visit(n.Discriminant)

		b.push(Switch, n)

		for _, c := range n.Cases {
			b.visit(c.Test)

			for _, stmt := range c.Consequent {
				b.visit(stmt)
			}
		}

		b.pop()

	case *ast.FunctionDeclaration:
		b.define(b.current, n.ID, DefFunctionName, n, nil)
		b.visitFunction(nil, n.Params, n.Body, n)

	case *ast.FunctionExpression:
		b.visitFunction(n.ID, n.Params, n.Body, n)

	case *ast.ClassDeclaration:
		if n.ID != nil {
			b.define(b.current, n.ID, DefClassName, n, nil)
		}

		for _, member := range n.Body {
			b.visit(member)
		}

	case *ast.StaticBlock:
		b.push(ClassStaticBlock, n)

		for _, stmt := range n.Body {
			b.visit(stmt)
		}

		b.pop()

	default:
		for c := range ast.Children(n) {
			b.visit(c)
		}
	}
}

func (b *builder) visitVariableDeclaration(decl *ast.VariableDeclaration) {
	target := b.current
	if decl.DeclKind == ast.DeclVar {
		target = b.varScope()
	}

	for _, dtor := range decl.Declarations {
		b.declarePattern(target, dtor.ID, DefVariable, dtor, decl, dtor.Init != nil)

		if dtor.Init != nil {
			b.visit(dtor.Init)
		}
	}
}

// declarePattern defines every identifier bound by pattern in target,
// creating a write reference per identifier when write is set. Defaults and
// computed keys are visited as ordinary expressions.
func (b *builder) declarePattern(target *Scope, pattern ast.Node, kind DefKind, node, decl ast.Node, write bool) {
	switch p := pattern.(type) {
	case *ast.Identifier:
		v := b.define(target, p, kind, node, decl)

		if d, ok := decl.(*ast.VariableDeclaration); ok {
			if !slices.Contains(b.declared[d], v) {
				b.declared[d] = append(b.declared[d], v)
			}
		}

		if write {
			b.addRef(p, flagWrite)
		}

	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			b.declarePattern(target, prop, kind, node, decl, write)
		}

	case *ast.ArrayPattern:
		for _, elem := range p.Elements {
			if elem != nil {
				b.declarePattern(target, elem, kind, node, decl, write)
			}
		}

	case *ast.Property:
		if p.Computed {
			b.visit(p.Key)
		}

		b.declarePattern(target, p.Value, kind, node, decl, write)

	case *ast.AssignmentPattern:
		b.declarePattern(target, p.Left, kind, node, decl, write)
		b.visit(p.Right)

	case *ast.RestElement:
		b.declarePattern(target, p.Argument, kind, node, decl, write)

	default:
		// member expressions are invalid in binding positions; degrade to reads
		b.visit(pattern)
	}
}

// visitTargets records write references for a destructuring assignment
// target without defining anything.
func (b *builder) visitTargets(pattern ast.Node) {
	switch p := pattern.(type) {
	case *ast.Identifier:
		b.addRef(p, flagWrite)

	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			b.visitTargets(prop)
		}

	case *ast.ArrayPattern:
		for _, elem := range p.Elements {
			if elem != nil {
				b.visitTargets(elem)
			}
		}

	case *ast.Property:
		if p.Computed {
			b.visit(p.Key)
		}

		b.visitTargets(p.Value)

	case *ast.AssignmentPattern:
		b.visitTargets(p.Left)
		b.visit(p.Right)

	case *ast.RestElement:
		b.visitTargets(p.Argument)

	default:
		// member targets read their object
		b.visit(pattern)
	}
}

func (b *builder) visitAssignment(n *ast.AssignmentExpression) {
	switch {
	case n.Operator == "=":
		b.visitTargets(n.Left)

	default:
		if id, ok := n.Left.(*ast.Identifier); ok {
			b.addRef(id, flagRead|flagWrite)
		} else {
			b.visit(n.Left)
		}
	}

	b.visit(n.Right)
}

func (b *builder) visitFor(n *ast.ForStatement) {
	decl, isDecl := n.Init.(*ast.VariableDeclaration)
	lexical := isDecl && decl.DeclKind != ast.DeclVar

	if lexical {
		b.push(For, n)
	}

	b.visit(n.Init)
	b.visit(n.Test)
	b.visit(n.Update)
	b.visit(n.Body)

	if lexical {
		b.pop()
	}
}

func (b *builder) visitForEach(loop, left, right, body ast.Node) {
	decl, isDecl := left.(*ast.VariableDeclaration)
	lexical := isDecl && decl.DeclKind != ast.DeclVar

	if lexical {
		b.push(For, loop)
	}

	if isDecl {
		// the iteration variable is written on every pass
		target := b.current
		if decl.DeclKind == ast.DeclVar {
			target = b.varScope()
		}

		for _, dtor := range decl.Declarations {
			b.declarePattern(target, dtor.ID, DefVariable, dtor, decl, true)
		}
	} else {
		b.visitTargets(left)
	}

	b.visit(right)
	b.visit(body)

	if lexical {
		b.pop()
	}
}

func (b *builder) visitFunction(id *ast.Identifier, params []ast.Node, body *ast.BlockStatement, fn ast.Node) {
	b.push(Function, fn)

	if id != nil {
		// a function expression's name is visible inside the function only
		b.define(b.current, id, DefFunctionName, fn, nil)
	}

	for _, param := range params {
		b.declarePattern(b.current, param, DefParameter, param, nil, false)
	}

	for _, stmt := range body.Body {
		b.visit(stmt)
	}

	b.pop()
}

// markExported marks globals named in "/* exported a, b */" directive
// comments.
func markExported(global *Scope, comments []lexer.Token) {
	for _, c := range comments {
		text, ok := strings.CutPrefix(c.Value, "/*")
		if !ok {
			continue
		}

		text = strings.TrimSuffix(text, "*/")

		fields := strings.Fields(text)
		if len(fields) < 2 || fields[0] != "exported" {
			continue
		}

		for _, name := range fields[1:] {
			name = strings.TrimSuffix(name, ",")
			if v := global.names[name]; v != nil {
				v.Exported = true
			}
		}
	}
}
