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

// Package scope builds and represents the scope/reference graph of a parsed
// program.
//
// The model follows the usual lexical-scope shape: scopes own their
// variables, variables own their references in traversal order, and
// references link back to the identifier node and the scope they occur from.
package scope

import (
	"fillmore-labs.com/constguard/internal/ast"
)

// Type tags a lexical scope.
type Type uint8

// Scope types.
const (
	Global Type = iota
	Function
	Block
	For
	Switch
	ClassStaticBlock
)

// String returns the scope type name.
func (t Type) String() string {
	switch t {
	case Global:
		return "global"
	case Function:
		return "function"
	case Block:
		return "block"
	case For:
		return "for"
	case Switch:
		return "switch"
	case ClassStaticBlock:
		return "class-static-block"
	default:
		return "unknown"
	}
}

// Scope is a lexical region. It owns its Variables; Upper and Block are
// non-owning.
type Scope struct {
	Type  Type
	Upper *Scope
	Block ast.Node

	// Children in creation order.
	Children []*Scope

	// Variables in declaration order.
	Variables []*Variable

	// Through holds references occurring in or below this scope that
	// resolve outside it (or nowhere).
	Through []*Reference

	names   map[string]*Variable
	pending []*Reference
}

// Variable returns the variable named name declared in this scope, or nil.
func (s *Scope) Variable(name string) *Variable { return s.names[name] }

// Lookup resolves name through this scope and its uppers, or returns nil.
func (s *Scope) Lookup(name string) *Variable {
	for scope := s; scope != nil; scope = scope.Upper {
		if v := scope.names[name]; v != nil {
			return v
		}
	}

	return nil
}

// DefKind classifies how a variable was introduced.
type DefKind uint8

// Definition kinds.
const (
	DefVariable DefKind = iota
	DefParameter
	DefFunctionName
	DefClassName
)

// Def is one declaration-definition record of a variable.
type Def struct {
	Kind DefKind

	// Name is the declared identifier.
	Name *ast.Identifier

	// Node is the declarator, parameter or declaration introducing the
	// binding; Decl is the enclosing declaration statement when one exists.
	Node ast.Node
	Decl ast.Node
}

// Variable is a named binding. It owns its References; Scope is a
// back-reference.
type Variable struct {
	Name  string
	Scope *Scope

	// References in traversal order.
	References []*Reference

	Defs []Def

	// Exported marks globals named in an "exported" directive comment;
	// conversion is suppressed for them.
	Exported bool
}

type refFlags uint8

const (
	flagRead refFlags = 1 << iota
	flagWrite
)

// Reference is a use of a variable at an identifier node. A reference can be
// both read and write (compound update); the analysis treats that as write.
type Reference struct {
	Identifier *ast.Identifier

	// From is the scope the reference occurs from; it may differ from the
	// resolved variable's declaring scope.
	From *Scope

	// Resolved is the variable this reference binds to, nil when the name
	// never resolves.
	Resolved *Variable

	flags refFlags
}

// IsRead reports whether the reference reads the variable.
func (r *Reference) IsRead() bool { return r.flags&flagRead != 0 }

// IsWrite reports whether the reference writes the variable.
func (r *Reference) IsWrite() bool { return r.flags&flagWrite != 0 }

// IsReadWrite reports a compound access such as x += 1.
func (r *Reference) IsReadWrite() bool { return r.flags == flagRead|flagWrite }

// Graph is the resolved scope graph of one program.
type Graph struct {
	Global *Scope

	declared map[*ast.VariableDeclaration][]*Variable
}

// DeclaredVariables returns the variables introduced by a declaration
// statement, in binding order.
func (g *Graph) DeclaredVariables(decl *ast.VariableDeclaration) []*Variable {
	return g.declared[decl]
}
