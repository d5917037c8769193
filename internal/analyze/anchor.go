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

package analyze

import (
	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/scope"
)

// ConstAnchor returns the identifier node proving that v could have been
// declared const, or nil when conversion is not possible.
//
// A variable qualifies when exactly one write position exists, that write
// happens in the variable's own declaring scope, and rewriting it as (part
// of) a const declaration is syntactically possible. The returned anchor is
// normally the written identifier; when the variable is read before its
// only write it is the declared name instead, since the write site alone
// cannot carry an initializer that early reads would miss.
//
// With ignoreReadBeforeAssign set, variables read before their first write
// are excluded outright instead of being anchored at the declaration.
func ConstAnchor(v *scope.Variable, ignoreReadBeforeAssign bool) *ast.Identifier {
	if v.Exported && v.Scope.Type == scope.Global {
		return nil
	}

	var writer *scope.Reference

	readBeforeInit := false

	for _, ref := range v.References {
		switch {
		case ref.IsWrite():
			if writer != nil && writer.Identifier != ref.Identifier {
				return nil // reassigned
			}

			if host := DestructuringHost(ref); host != nil {
				if left := assignedPattern(host); left != nil && !destructuringConvertible(left, v.Scope) {
					return nil
				}
			}

			writer = ref

		case ref.IsRead() && writer == nil:
			if ignoreReadBeforeAssign {
				return nil
			}

			readBeforeInit = true
		}
	}

	if writer == nil || writer.From != v.Scope || !canBecomeDeclaration(writer.Identifier) {
		return nil
	}

	if readBeforeInit {
		if len(v.Defs) == 0 {
			return nil
		}

		return v.Defs[0].Name
	}

	return writer.Identifier
}

// DestructuringHost returns the declarator or assignment expression whose
// pattern a write reference is bound in, or nil when the write is not part
// of one. The walk up from the identifier is iterative and stops at the
// first non-pattern ancestor.
func DestructuringHost(ref *scope.Reference) ast.Node {
	if !ref.IsWrite() {
		return nil
	}

	n := ref.Identifier.Parent()
	for n != nil && ast.IsPattern(n.Kind()) {
		n = n.Parent()
	}

	switch n.(type) {
	case *ast.VariableDeclarator, *ast.AssignmentExpression:
		return n

	default:
		return nil
	}
}

// assignedPattern returns the destructuring pattern of an assignment-form
// host. Declarator hosts return nil: their pattern introduces the bindings
// itself and needs no extra validation.
func assignedPattern(host ast.Node) ast.Node {
	assign, ok := host.(*ast.AssignmentExpression)
	if !ok {
		return nil
	}

	return assign.Left
}

// destructuringConvertible reports whether a destructuring assignment
// target could be rewritten as a const declaration pattern. It fails when
// any direct member resolves to an outer variable or parameter, or when the
// pattern assigns through a member expression anywhere.
func destructuringConvertible(pattern ast.Node, declScope *scope.Scope) bool {
	switch p := pattern.(type) {
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			pr, ok := prop.(*ast.Property)
			if !ok {
				continue
			}

			if id, ok := pr.Value.(*ast.Identifier); ok && isOuterVariable(id.Name, declScope) {
				return false
			}
		}

	case *ast.ArrayPattern:
		for _, elem := range p.Elements {
			if id, ok := elem.(*ast.Identifier); ok && isOuterVariable(id.Name, declScope) {
				return false
			}
		}

	default:
		return true
	}

	return !hasMemberAssignment(pattern)
}

// isOuterVariable reports whether name resolves outside declScope or to a
// function parameter. Such names cannot move into a const declaration
// without changing what they bind to.
func isOuterVariable(name string, declScope *scope.Scope) bool {
	for _, ref := range declScope.Through {
		if ref.Resolved != nil && ref.Resolved.Name == name {
			return true
		}
	}

	v := declScope.Lookup(name)
	if v == nil {
		return false
	}

	for _, def := range v.Defs {
		if def.Kind == scope.DefParameter {
			return true
		}
	}

	return false
}

// hasMemberAssignment reports whether any position of the pattern assigns
// through a member expression, e.g. [a, obj.b] = pair(). The scan is an
// explicit work list rather than recursion.
func hasMemberAssignment(pattern ast.Node) bool {
	work := []ast.Node{pattern}

	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		switch n := n.(type) {
		case *ast.MemberExpression:
			return true

		case *ast.ObjectPattern:
			for _, prop := range n.Properties {
				switch prop := prop.(type) {
				case *ast.Property:
					work = append(work, prop.Value)

				case *ast.RestElement:
					work = append(work, prop.Argument)
				}
			}

		case *ast.ArrayPattern:
			for _, elem := range n.Elements {
				if elem != nil {
					work = append(work, elem)
				}
			}

		case *ast.AssignmentPattern:
			work = append(work, n.Left)

		case *ast.RestElement:
			work = append(work, n.Argument)
		}
	}

	return false
}

// canBecomeDeclaration reports whether the write at id could appear in a
// const declaration: either it already is a declarator, or it is a whole
// expression statement directly inside a statement list.
func canBecomeDeclaration(id *ast.Identifier) bool {
	n := id.Parent()
	for n != nil && ast.IsPattern(n.Kind()) {
		n = n.Parent()
	}

	switch n := n.(type) {
	case *ast.VariableDeclarator:
		return true

	case *ast.AssignmentExpression:
		stmt, ok := n.Parent().(*ast.ExpressionStatement)
		if !ok {
			return false
		}

		switch stmt.Parent().(type) {
		case *ast.Program, *ast.BlockStatement, *ast.StaticBlock, *ast.SwitchCase:
			return true
		}
	}

	return false
}
