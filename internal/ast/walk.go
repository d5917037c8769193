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

package ast

import "iter"

// Children yields the non-nil direct children of n in source order.
func Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, c := range childList(n) {
			if c == nil {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

//nolint:cyclop // one case per node kind
func childList(n Node) []Node {
	switch n := n.(type) {
	case *TemplateLiteral:
		return n.Expressions

	case *ObjectPattern:
		return n.Properties

	case *ArrayPattern:
		return n.Elements

	case *AssignmentPattern:
		return []Node{n.Left, n.Right}

	case *RestElement:
		return []Node{n.Argument}

	case *Property:
		return []Node{n.Key, n.Value}

	case *SpreadElement:
		return []Node{n.Argument}

	case *VariableDeclarator:
		return []Node{n.ID, n.Init}

	case *VariableDeclaration:
		children := make([]Node, len(n.Declarations))
		for i, d := range n.Declarations {
			children[i] = d
		}

		return children

	case *AssignmentExpression:
		return []Node{n.Left, n.Right}

	case *UpdateExpression:
		return []Node{n.Argument}

	case *BinaryExpression:
		return []Node{n.Left, n.Right}

	case *LogicalExpression:
		return []Node{n.Left, n.Right}

	case *UnaryExpression:
		return []Node{n.Argument}

	case *ConditionalExpression:
		return []Node{n.Test, n.Consequent, n.Alternate}

	case *MemberExpression:
		return []Node{n.Object, n.Property}

	case *CallExpression:
		return append([]Node{n.Callee}, n.Arguments...)

	case *NewExpression:
		return append([]Node{n.Callee}, n.Arguments...)

	case *ObjectExpression:
		return n.Properties

	case *ArrayExpression:
		return n.Elements

	case *FunctionExpression:
		children := make([]Node, 0, len(n.Params)+2)
		if n.ID != nil {
			children = append(children, n.ID)
		}

		children = append(children, n.Params...)

		return append(children, n.Body)

	case *SequenceExpression:
		return n.Expressions

	case *ExpressionStatement:
		return []Node{n.Expression}

	case *BlockStatement:
		return n.Body

	case *IfStatement:
		return []Node{n.Test, n.Consequent, n.Alternate}

	case *WhileStatement:
		return []Node{n.Test, n.Body}

	case *DoWhileStatement:
		return []Node{n.Body, n.Test}

	case *ForStatement:
		return []Node{n.Init, n.Test, n.Update, n.Body}

	case *ForInStatement:
		return []Node{n.Left, n.Right, n.Body}

	case *ForOfStatement:
		return []Node{n.Left, n.Right, n.Body}

	case *SwitchStatement:
		children := make([]Node, 0, len(n.Cases)+1)
		children = append(children, n.Discriminant)
		for _, c := range n.Cases {
			children = append(children, c)
		}

		return children

	case *SwitchCase:
		return append([]Node{n.Test}, n.Consequent...)

	case *ReturnStatement:
		return []Node{n.Argument}

	case *FunctionDeclaration:
		children := make([]Node, 0, len(n.Params)+2)
		children = append(children, n.ID)
		children = append(children, n.Params...)

		return append(children, n.Body)

	case *ClassDeclaration:
		children := make([]Node, 0, len(n.Body)+1)
		if n.ID != nil {
			children = append(children, n.ID)
		}

		return append(children, n.Body...)

	case *StaticBlock:
		return n.Body

	case *Program:
		return n.Body

	default:
		return nil
	}
}

// Link sets the parent back-reference on every node reachable from root.
// The walk is iterative to stay safe on deeply nested input.
func Link(root Node) {
	if root == nil {
		return
	}

	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for c := range Children(n) {
			c.setParent(n)
			stack = append(stack, c)
		}
	}
}

// Preorder yields root and every node below it in source order. The walk is
// iterative to stay safe on deeply nested input.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if root == nil {
			return
		}

		stack := []Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n) {
				return
			}

			children := childList(n)
			for i := len(children) - 1; i >= 0; i-- {
				if children[i] != nil {
					stack = append(stack, children[i])
				}
			}
		}
	}
}

// IsPattern reports whether k is a pattern-shaped kind. Upward walks from a
// bound identifier cross these on the way to the destructuring host.
func IsPattern(k Kind) bool {
	switch k {
	case KindObjectPattern, KindArrayPattern, KindAssignmentPattern, KindRestElement, KindProperty:
		return true

	default:
		return false
	}
}

// IsStatement reports whether k is a statement-level kind. Upward searches
// for an enclosing declaration must not cross a statement boundary.
func IsStatement(k Kind) bool {
	switch k {
	case KindExpressionStatement, KindBlockStatement, KindIfStatement,
		KindWhileStatement, KindDoWhileStatement,
		KindForStatement, KindForInStatement, KindForOfStatement,
		KindSwitchStatement, KindReturnStatement,
		KindBreakStatement, KindContinueStatement, KindEmptyStatement,
		KindFunctionDeclaration, KindClassDeclaration, KindStaticBlock,
		KindProgram:
		return true

	default:
		return false
	}
}
