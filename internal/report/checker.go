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

package report

import (
	"slices"

	"fillmore-labs.com/constguard/internal/analyze"
	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/lexer"
)

// Checker turns verdict groups into diagnostics. It is stateful across the
// groups of one run: multi-declarator declarations spread their bindings
// over several groups, and a fix may only be planned once every binding of
// the declaration has been seen convertible.
//
// Groups must arrive in source order, as produced by
// [analyze.GroupByDestructuring] over source-ordered variables. A Checker
// serves a single run; create a fresh one per program.
type Checker struct {
	mode           config.Mode
	allowedCallees []string
	tokens         []lexer.Token

	reportCount int
	checkedID   ast.Node
	checkedName string
}

// NewChecker returns a Checker for one run over the token stream the
// program was parsed from.
func NewChecker(opts config.Options, tokens []lexer.Token) *Checker {
	return &Checker{
		mode:           opts.Destructuring,
		allowedCallees: opts.AllowedCallees,
		tokens:         tokens,
	}
}

// CheckGroup reports the convertible bindings of one group. In "all" mode a
// group containing any unconvertible binding reports nothing; in "any" mode
// the convertible subset is reported but the declaration keyword is left
// alone unless the whole group qualifies.
func (c *Checker) CheckGroup(group analyze.Group) []Diagnostic {
	if len(group.Members) == 0 {
		return nil
	}

	eligible := make([]*ast.Identifier, 0, len(group.Members))

	for _, m := range group.Members {
		if m != nil {
			eligible = append(eligible, m)
		}
	}

	if c.mode == config.DestructuringAll && len(eligible) != len(group.Members) {
		return nil
	}

	decl := enclosingDeclaration(group.Members[0])
	c.resetOnNewDeclarator(decl)

	shouldFix := decl != nil &&
		(isForEachHead(decl) || allInitialized(decl)) &&
		len(eligible) == len(group.Members)

	// a declaration like let a = 1, b = 2 only flips to const when every
	// declarator has been reported; the running count carries across the
	// declaration's groups
	if decl != nil && len(decl.Declarations) != 1 {
		c.reportCount += len(eligible)
		shouldFix = shouldFix && c.reportCount == totalBindings(decl)
	}

	var fix *Fix
	if shouldFix {
		fix = c.keywordFix(decl)
	}

	var diags []Diagnostic

	for _, id := range eligible {
		if c.allowedInitializer(id) {
			continue
		}

		d := Diagnostic{Node: id, Message: useConstMessage(id.Name)}
		if fix != nil {
			d.Fix = &Fix{Range: fix.Range, Text: fix.Text}
		}

		diags = append(diags, d)
	}

	return diags
}

// resetOnNewDeclarator clears the running report count when the group
// belongs to a different declarator than the previous one. Identity of the
// declarator's pattern node is the discriminator; the declared name is
// tracked alongside for plain declarators.
func (c *Checker) resetOnNewDeclarator(decl *ast.VariableDeclaration) {
	if decl == nil || len(decl.Declarations) == 0 {
		return
	}

	first := decl.Declarations[0]
	if first.Init == nil {
		return
	}

	if name := identifierName(first.ID); name != c.checkedName {
		c.checkedName = name
		c.reportCount = 0
	}

	if first.ID.Kind() == ast.KindObjectPattern {
		if name := identifierName(first.Init); name != c.checkedName {
			c.checkedName = name
			c.reportCount = 0
		}
	}

	if c.checkedID != first.ID {
		c.checkedID = first.ID
		c.reportCount = 0
	}
}

func identifierName(n ast.Node) string {
	if id, ok := n.(*ast.Identifier); ok {
		return id.Name
	}

	return ""
}

// enclosingDeclaration walks up from a bound identifier to its variable
// declaration. The walk stops at the first statement boundary, so anchors
// from assignment expressions yield nil.
func enclosingDeclaration(n *ast.Identifier) *ast.VariableDeclaration {
	if n == nil {
		return nil
	}

	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if decl, ok := cur.(*ast.VariableDeclaration); ok {
			return decl
		}

		if ast.IsStatement(cur.Kind()) {
			return nil
		}
	}

	return nil
}

// isForEachHead reports whether decl is the head of a for-in or for-of
// loop. Such declarators carry no initializer but still convert.
func isForEachHead(decl *ast.VariableDeclaration) bool {
	switch decl.Parent().(type) {
	case *ast.ForInStatement, *ast.ForOfStatement:
		return true

	default:
		return false
	}
}

func allInitialized(decl *ast.VariableDeclaration) bool {
	for _, dtor := range decl.Declarations {
		if dtor.Init == nil {
			return false
		}
	}

	return true
}

// totalBindings counts the binding positions of a declaration, one per
// pattern member or plain declarator.
func totalBindings(decl *ast.VariableDeclaration) int {
	count := 0

	for _, dtor := range decl.Declarations {
		switch id := dtor.ID.(type) {
		case *ast.ObjectPattern:
			count += len(id.Properties)

		case *ast.ArrayPattern:
			count += len(id.Elements)

		default:
			count++
		}
	}

	return count
}

// keywordFix plans the edit replacing the declaration keyword with const.
// When the keyword token cannot be located inside the declaration range the
// diagnostic stays report-only.
func (c *Checker) keywordFix(decl *ast.VariableDeclaration) *Fix {
	keyword := string(decl.DeclKind)

	tok, ok := lexer.FirstToken(c.tokens, decl.Range(), func(t lexer.Token) bool {
		return t.Type == lexer.Keyword && t.Value == keyword
	})
	if !ok {
		return nil
	}

	return &Fix{Range: tok.Range, Text: "const"}
}

// allowedInitializer reports whether the binding anchored at id is
// initialized by a direct call to an allowed callee.
func (c *Checker) allowedInitializer(id *ast.Identifier) bool {
	if len(c.allowedCallees) == 0 {
		return false
	}

	n := id.Parent()
	for n != nil && ast.IsPattern(n.Kind()) {
		n = n.Parent()
	}

	dtor, ok := n.(*ast.VariableDeclarator)
	if !ok {
		return false
	}

	call, ok := dtor.Init.(*ast.CallExpression)
	if !ok {
		return false
	}

	name, ok := calleeName(call.Callee)

	return ok && slices.Contains(c.allowedCallees, name)
}

// calleeName renders a callee as a configuration path: a plain name or a
// single-level object.method.
func calleeName(callee ast.Node) (string, bool) {
	switch callee := callee.(type) {
	case *ast.Identifier:
		return callee.Name, true

	case *ast.MemberExpression:
		if callee.Computed {
			return "", false
		}

		obj, ok := callee.Object.(*ast.Identifier)
		if !ok {
			return "", false
		}

		prop, ok := callee.Property.(*ast.Identifier)
		if !ok {
			return "", false
		}

		return obj.Name + "." + prop.Name, true

	default:
		return "", false
	}
}
