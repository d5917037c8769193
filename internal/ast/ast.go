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

// Range is a half-open byte interval [Start, End) into the source text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Kind is the type tag of a syntax tree node.
type Kind uint8

// Node kinds. KindUnsupported is the catch-all for constructs the analysis
// does not model; consumers must treat it as disqualifying.
const (
	KindUnsupported Kind = iota

	KindIdentifier
	KindLiteral
	KindTemplateLiteral

	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement
	KindProperty
	KindSpreadElement

	KindVariableDeclarator
	KindVariableDeclaration

	KindAssignmentExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindUnaryExpression
	KindConditionalExpression
	KindMemberExpression
	KindCallExpression
	KindNewExpression
	KindObjectExpression
	KindArrayExpression
	KindFunctionExpression
	KindSequenceExpression

	KindExpressionStatement
	KindBlockStatement
	KindIfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindSwitchStatement
	KindSwitchCase
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindEmptyStatement

	KindFunctionDeclaration
	KindClassDeclaration
	KindStaticBlock

	KindProgram
)

// Node is an element of the syntax tree. The parent back-reference is a
// relation only; ownership runs root to leaf.
type Node interface {
	Kind() Kind
	Range() Range
	Parent() Node

	setParent(Node)
}

// node is the embedded base of every concrete node type.
type node struct {
	Rng    Range
	parent Node
}

func (n *node) Range() Range     { return n.Rng }
func (n *node) Parent() Node     { return n.parent }
func (n *node) setParent(p Node) { n.parent = p }

// SetRange sets the byte range of the node. Used by the parser.
func (n *node) SetRange(start, end int) { n.Rng = Range{Start: start, End: end} }

// Identifier is a name occurrence.
type Identifier struct {
	node
	Name string
}

func (*Identifier) Kind() Kind { return KindIdentifier }

// Literal is a number, string, boolean or null literal. Raw preserves the
// source spelling.
type Literal struct {
	node
	Raw string
}

func (*Literal) Kind() Kind { return KindLiteral }

// TemplateLiteral is a template string. Expressions are the interpolated
// parts; the raw text chunks are not retained.
type TemplateLiteral struct {
	node
	Expressions []Node
}

func (*TemplateLiteral) Kind() Kind { return KindTemplateLiteral }

// ObjectPattern is a destructuring target of the form { a, b: c, ...rest }.
type ObjectPattern struct {
	node
	Properties []Node // *Property or *RestElement
}

func (*ObjectPattern) Kind() Kind { return KindObjectPattern }

// ArrayPattern is a destructuring target of the form [a, , b = 1, ...rest].
// Holes are nil elements and are structurally significant.
type ArrayPattern struct {
	node
	Elements []Node
}

func (*ArrayPattern) Kind() Kind { return KindArrayPattern }

// AssignmentPattern is a pattern member with a default value, e.g. a = 1.
type AssignmentPattern struct {
	node
	Left  Node
	Right Node
}

func (*AssignmentPattern) Kind() Kind { return KindAssignmentPattern }

// RestElement is a ...target pattern member.
type RestElement struct {
	node
	Argument Node
}

func (*RestElement) Kind() Kind { return KindRestElement }

// Property is an object pattern or object literal member.
type Property struct {
	node
	Key       Node
	Value     Node
	Computed  bool
	Shorthand bool
}

func (*Property) Kind() Kind { return KindProperty }

// SpreadElement is ...expr in call arguments or array/object literals.
type SpreadElement struct {
	node
	Argument Node
}

func (*SpreadElement) Kind() Kind { return KindSpreadElement }

// VariableDeclarator is a single binding of a declaration: ID [= Init].
type VariableDeclarator struct {
	node
	ID   Node // *Identifier, *ObjectPattern or *ArrayPattern
	Init Node // nil when absent
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }

// DeclKind is the introducing keyword of a variable declaration.
type DeclKind string

// Declaration keywords.
const (
	DeclLet   DeclKind = "let"
	DeclConst DeclKind = "const"
	DeclVar   DeclKind = "var"
)

// VariableDeclaration is a let/const/var statement with one or more
// declarators.
type VariableDeclaration struct {
	node
	DeclKind     DeclKind
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

// AssignmentExpression is Left Operator Right, including compound operators
// such as += and destructuring assignments where Left is a pattern.
type AssignmentExpression struct {
	node
	Operator string
	Left     Node
	Right    Node
}

func (*AssignmentExpression) Kind() Kind { return KindAssignmentExpression }

// UpdateExpression is ++x, x++, --x or x--.
type UpdateExpression struct {
	node
	Operator string
	Prefix   bool
	Argument Node
}

func (*UpdateExpression) Kind() Kind { return KindUpdateExpression }

// BinaryExpression is Left Operator Right for arithmetic and comparison
// operators.
type BinaryExpression struct {
	node
	Operator string
	Left     Node
	Right    Node
}

func (*BinaryExpression) Kind() Kind { return KindBinaryExpression }

// LogicalExpression is Left && Right, Left || Right or Left ?? Right.
type LogicalExpression struct {
	node
	Operator string
	Left     Node
	Right    Node
}

func (*LogicalExpression) Kind() Kind { return KindLogicalExpression }

// UnaryExpression is a prefix operator application, e.g. !x or typeof x.
type UnaryExpression struct {
	node
	Operator string
	Argument Node
}

func (*UnaryExpression) Kind() Kind { return KindUnaryExpression }

// ConditionalExpression is Test ? Consequent : Alternate.
type ConditionalExpression struct {
	node
	Test       Node
	Consequent Node
	Alternate  Node
}

func (*ConditionalExpression) Kind() Kind { return KindConditionalExpression }

// MemberExpression is Object.Property or Object[Property].
type MemberExpression struct {
	node
	Object   Node
	Property Node
	Computed bool
}

func (*MemberExpression) Kind() Kind { return KindMemberExpression }

// CallExpression is Callee(Arguments...).
type CallExpression struct {
	node
	Callee    Node
	Arguments []Node
}

func (*CallExpression) Kind() Kind { return KindCallExpression }

// NewExpression is new Callee(Arguments...).
type NewExpression struct {
	node
	Callee    Node
	Arguments []Node
}

func (*NewExpression) Kind() Kind { return KindNewExpression }

// ObjectExpression is an object literal.
type ObjectExpression struct {
	node
	Properties []Node // *Property or *SpreadElement
}

func (*ObjectExpression) Kind() Kind { return KindObjectExpression }

// ArrayExpression is an array literal. Holes are nil elements.
type ArrayExpression struct {
	node
	Elements []Node
}

func (*ArrayExpression) Kind() Kind { return KindArrayExpression }

// FunctionExpression is an anonymous or named function expression.
type FunctionExpression struct {
	node
	ID     *Identifier // nil when anonymous
	Params []Node
	Body   *BlockStatement
}

func (*FunctionExpression) Kind() Kind { return KindFunctionExpression }

// SequenceExpression is a comma expression (a, b, c).
type SequenceExpression struct {
	node
	Expressions []Node
}

func (*SequenceExpression) Kind() Kind { return KindSequenceExpression }

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	node
	Expression Node
}

func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }

// BlockStatement is a braced statement list.
type BlockStatement struct {
	node
	Body []Node
}

func (*BlockStatement) Kind() Kind { return KindBlockStatement }

// IfStatement is if (Test) Consequent [else Alternate].
type IfStatement struct {
	node
	Test       Node
	Consequent Node
	Alternate  Node // nil when absent
}

func (*IfStatement) Kind() Kind { return KindIfStatement }

// WhileStatement is while (Test) Body.
type WhileStatement struct {
	node
	Test Node
	Body Node
}

func (*WhileStatement) Kind() Kind { return KindWhileStatement }

// DoWhileStatement is do Body while (Test).
type DoWhileStatement struct {
	node
	Body Node
	Test Node
}

func (*DoWhileStatement) Kind() Kind { return KindDoWhileStatement }

// ForStatement is the classic three-clause loop. Init may be a declaration
// or an expression; any clause may be nil.
type ForStatement struct {
	node
	Init   Node
	Test   Node
	Update Node
	Body   Node
}

func (*ForStatement) Kind() Kind { return KindForStatement }

// ForInStatement is for (Left in Right) Body.
type ForInStatement struct {
	node
	Left  Node // *VariableDeclaration or assignment target
	Right Node
	Body  Node
}

func (*ForInStatement) Kind() Kind { return KindForInStatement }

// ForOfStatement is for (Left of Right) Body.
type ForOfStatement struct {
	node
	Left  Node
	Right Node
	Body  Node
}

func (*ForOfStatement) Kind() Kind { return KindForOfStatement }

// SwitchStatement is switch (Discriminant) { Cases... }.
type SwitchStatement struct {
	node
	Discriminant Node
	Cases        []*SwitchCase
}

func (*SwitchStatement) Kind() Kind { return KindSwitchStatement }

// SwitchCase is one case (or default, when Test is nil) clause.
type SwitchCase struct {
	node
	Test       Node
	Consequent []Node
}

func (*SwitchCase) Kind() Kind { return KindSwitchCase }

// ReturnStatement is return [Argument].
type ReturnStatement struct {
	node
	Argument Node
}

func (*ReturnStatement) Kind() Kind { return KindReturnStatement }

// BreakStatement is an unlabeled break.
type BreakStatement struct{ node }

func (*BreakStatement) Kind() Kind { return KindBreakStatement }

// ContinueStatement is an unlabeled continue.
type ContinueStatement struct{ node }

func (*ContinueStatement) Kind() Kind { return KindContinueStatement }

// EmptyStatement is a lone semicolon.
type EmptyStatement struct{ node }

func (*EmptyStatement) Kind() Kind { return KindEmptyStatement }

// FunctionDeclaration is function ID(Params...) Body.
type FunctionDeclaration struct {
	node
	ID     *Identifier
	Params []Node
	Body   *BlockStatement
}

func (*FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }

// ClassDeclaration is a class. Only static initialization blocks are
// modeled in the body; other members parse to Unsupported.
type ClassDeclaration struct {
	node
	ID   *Identifier
	Body []Node
}

func (*ClassDeclaration) Kind() Kind { return KindClassDeclaration }

// StaticBlock is a class static initialization block.
type StaticBlock struct {
	node
	Body []Node
}

func (*StaticBlock) Kind() Kind { return KindStaticBlock }

// Program is the tree root.
type Program struct {
	node
	Body []Node
}

func (*Program) Kind() Kind { return KindProgram }

// Unsupported is the catch-all node for constructs outside the analyzed
// subset. Any analysis encountering it must disqualify.
type Unsupported struct{ node }

func (*Unsupported) Kind() Kind { return KindUnsupported }
