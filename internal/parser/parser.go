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

// Package parser builds syntax trees for the analyzed JavaScript subset.
//
// The subset covers variable declarations with destructuring, assignments,
// functions, classic control flow, for-in/for-of loops, switch statements
// and class static blocks. Arrow functions and other constructs outside the
// subset are rejected with a positional error.
package parser

import (
	"errors"
	"fmt"

	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/lexer"
)

// Error is a positional parse error.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string { return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg) }

// Parse scans and parses src. It returns the linked program tree and the
// full token stream, comments included, for consumers that scan token
// ranges.
func Parse(src string) (*ast.Program, []lexer.Token, error) {
	all, err := lexer.Scan(src)
	if err != nil {
		return nil, nil, err
	}

	code := make([]lexer.Token, 0, len(all))
	for _, tok := range all {
		if tok.Type != lexer.Comment {
			code = append(code, tok)
		}
	}

	p := &parser{toks: code}

	program, err := p.parseProgram()
	if err != nil {
		return nil, nil, err
	}

	ast.Link(program)

	return program, all, nil
}

type parser struct {
	toks []lexer.Token
	pos  int
}

func (p *parser) cur() lexer.Token { return p.toks[p.pos] }

func (p *parser) peek() lexer.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}

	return p.toks[len(p.toks)-1]
}

func (p *parser) advance() lexer.Token {
	tok := p.toks[p.pos]
	if tok.Type != lexer.EOF {
		p.pos++
	}

	return tok
}

// at reports whether the current token is the given keyword or punctuator.
func (p *parser) at(value string) bool {
	tok := p.cur()

	return (tok.Type == lexer.Punct || tok.Type == lexer.Keyword) && tok.Value == value
}

// atContextual reports whether the current token is the given contextual
// keyword, which the lexer classifies as an identifier.
func (p *parser) atContextual(value string) bool {
	tok := p.cur()

	return tok.Type == lexer.Ident && tok.Value == value
}

func (p *parser) eat(value string) bool {
	if p.at(value) {
		p.advance()

		return true
	}

	return false
}

func (p *parser) expect(value string) (lexer.Token, error) {
	if !p.at(value) {
		tok := p.cur()

		return tok, &Error{Offset: tok.Range.Start, Msg: fmt.Sprintf("expected %q, found %q", value, tok.Value)}
	}

	return p.advance(), nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &Error{Offset: p.cur().Range.Start, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	start := p.cur().Range.Start

	for p.cur().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		program.Body = append(program.Body, stmt)
	}

	program.SetRange(start, p.cur().Range.End)

	return program, nil
}

//nolint:cyclop // statement dispatch
func (p *parser) parseStatement() (ast.Node, error) {
	tok := p.cur()

	if tok.Type == lexer.Keyword {
		switch tok.Value {
		case "let", "const", "var":
			return p.parseVariableStatement()

		case "function":
			return p.parseFunctionDeclaration()

		case "class":
			return p.parseClassDeclaration()

		case "if":
			return p.parseIfStatement()

		case "while":
			return p.parseWhileStatement()

		case "do":
			return p.parseDoWhileStatement()

		case "for":
			return p.parseForStatement()

		case "switch":
			return p.parseSwitchStatement()

		case "return":
			return p.parseReturnStatement()

		case "break":
			p.advance()
			n := &ast.BreakStatement{}
			n.SetRange(tok.Range.Start, p.semiEnd(tok.Range.End))

			return n, nil

		case "continue":
			p.advance()
			n := &ast.ContinueStatement{}
			n.SetRange(tok.Range.Start, p.semiEnd(tok.Range.End))

			return n, nil
		}
	}

	if p.at("{") {
		return p.parseBlock()
	}

	if p.at(";") {
		p.advance()
		n := &ast.EmptyStatement{}
		n.SetRange(tok.Range.Start, tok.Range.End)

		return n, nil
	}

	return p.parseExpressionStatement()
}

// semiEnd consumes an optional trailing semicolon and returns the statement
// end offset.
func (p *parser) semiEnd(end int) int {
	if p.at(";") {
		return p.advance().Range.End
	}

	return end
}

func (p *parser) parseVariableStatement() (ast.Node, error) {
	decl, err := p.parseVariableDeclaration()
	if err != nil {
		return nil, err
	}

	decl.SetRange(decl.Range().Start, p.semiEnd(decl.Range().End))

	return decl, nil
}

// parseVariableDeclaration parses `let/const/var declarator, ...` without a
// trailing semicolon, so for-loop heads can reuse it.
func (p *parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	kw := p.advance()

	decl := &ast.VariableDeclaration{DeclKind: ast.DeclKind(kw.Value)}

	for {
		dtor, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}

		decl.Declarations = append(decl.Declarations, dtor)

		if !p.eat(",") {
			break
		}
	}

	last := decl.Declarations[len(decl.Declarations)-1]
	decl.SetRange(kw.Range.Start, last.Range().End)

	return decl, nil
}

func (p *parser) parseDeclarator() (*ast.VariableDeclarator, error) {
	target, err := p.parseBindingTarget()
	if err != nil {
		return nil, err
	}

	dtor := &ast.VariableDeclarator{ID: target}
	end := target.Range().End

	if p.eat("=") {
		init, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		dtor.Init = init
		end = init.Range().End
	}

	dtor.SetRange(target.Range().Start, end)

	return dtor, nil
}

func (p *parser) parseFunctionDeclaration() (ast.Node, error) {
	kw := p.advance()

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	params, body, err := p.parseFunctionRest()
	if err != nil {
		return nil, err
	}

	fn := &ast.FunctionDeclaration{ID: id, Params: params, Body: body}
	fn.SetRange(kw.Range.Start, body.Range().End)

	return fn, nil
}

// parseFunctionRest parses the parameter list and body shared by function
// declarations and expressions.
func (p *parser) parseFunctionRest() ([]ast.Node, *ast.BlockStatement, error) {
	if _, err := p.expect("("); err != nil {
		return nil, nil, err
	}

	var params []ast.Node

	for !p.at(")") {
		var (
			param ast.Node
			err   error
		)

		if p.at("...") {
			rest := p.advance()

			target, err := p.parseBindingTarget()
			if err != nil {
				return nil, nil, err
			}

			r := &ast.RestElement{Argument: target}
			r.SetRange(rest.Range.Start, target.Range().End)
			param = r
		} else {
			param, err = p.parseBindingElement()
			if err != nil {
				return nil, nil, err
			}
		}

		params = append(params, param)

		if !p.eat(",") {
			break
		}
	}

	if _, err := p.expect(")"); err != nil {
		return nil, nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}

	return params, body.(*ast.BlockStatement), nil
}

func (p *parser) parseClassDeclaration() (ast.Node, error) {
	kw := p.advance()

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect("{"); err != nil {
		return nil, err
	}

	cls := &ast.ClassDeclaration{ID: id}

	for !p.at("}") {
		if p.eat(";") {
			continue
		}

		if !p.at("static") || p.peek().Value != "{" {
			return nil, p.errorf("unsupported class member")
		}

		static := p.advance()

		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}

		sb := &ast.StaticBlock{Body: block.(*ast.BlockStatement).Body}
		sb.SetRange(static.Range.Start, block.Range().End)
		cls.Body = append(cls.Body, sb)
	}

	rbrace, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	cls.SetRange(kw.Range.Start, rbrace.Range.End)

	return cls, nil
}

func (p *parser) parseBlock() (ast.Node, error) {
	lbrace, err := p.expect("{")
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStatement{}

	for !p.at("}") && p.cur().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		block.Body = append(block.Body, stmt)
	}

	rbrace, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	block.SetRange(lbrace.Range.Start, rbrace.Range.End)

	return block, nil
}

func (p *parser) parseIfStatement() (ast.Node, error) {
	kw := p.advance()

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Test: test, Consequent: consequent}
	end := consequent.Range().End

	if p.eat("else") {
		alternate, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmt.Alternate = alternate
		end = alternate.Range().End
	}

	stmt.SetRange(kw.Range.Start, end)

	return stmt, nil
}

func (p *parser) parseWhileStatement() (ast.Node, error) {
	kw := p.advance()

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.WhileStatement{Test: test, Body: body}
	stmt.SetRange(kw.Range.Start, body.Range().End)

	return stmt, nil
}

func (p *parser) parseDoWhileStatement() (ast.Node, error) {
	kw := p.advance()

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect("while"); err != nil {
		return nil, err
	}

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	rparen, err := p.expect(")")
	if err != nil {
		return nil, err
	}

	stmt := &ast.DoWhileStatement{Body: body, Test: test}
	stmt.SetRange(kw.Range.Start, p.semiEnd(rparen.Range.End))

	return stmt, nil
}

//nolint:cyclop,funlen // three loop forms share one head
func (p *parser) parseForStatement() (ast.Node, error) {
	kw := p.advance()

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	var left ast.Node

	switch {
	case p.at(";"):
		// classic loop without init

	case p.at("let") || p.at("const") || p.at("var"):
		decl, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}

		left = decl

	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		left = expr
	}

	if p.atContextual("of") || p.at("in") {
		iterate := p.advance().Value

		if decl, ok := left.(*ast.VariableDeclaration); ok {
			if len(decl.Declarations) != 1 || decl.Declarations[0].Init != nil {
				return nil, p.errorf("invalid for-%s declaration", iterate)
			}
		} else {
			pattern, err := exprToPattern(left)
			if err != nil {
				return nil, err
			}

			left = pattern
		}

		right, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(")"); err != nil {
			return nil, err
		}

		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		if iterate == "of" {
			stmt := &ast.ForOfStatement{Left: left, Right: right, Body: body}
			stmt.SetRange(kw.Range.Start, body.Range().End)

			return stmt, nil
		}

		stmt := &ast.ForInStatement{Left: left, Right: right, Body: body}
		stmt.SetRange(kw.Range.Start, body.Range().End)

		return stmt, nil
	}

	if _, err := p.expect(";"); err != nil {
		return nil, err
	}

	stmt := &ast.ForStatement{Init: left}

	if !p.at(";") {
		test, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		stmt.Test = test
	}

	if _, err := p.expect(";"); err != nil {
		return nil, err
	}

	if !p.at(")") {
		update, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		stmt.Update = update
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt.Body = body
	stmt.SetRange(kw.Range.Start, body.Range().End)

	return stmt, nil
}

func (p *parser) parseSwitchStatement() (ast.Node, error) {
	kw := p.advance()

	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	discriminant, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	if _, err := p.expect("{"); err != nil {
		return nil, err
	}

	stmt := &ast.SwitchStatement{Discriminant: discriminant}

	for !p.at("}") && p.cur().Type != lexer.EOF {
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, err
		}

		stmt.Cases = append(stmt.Cases, c)
	}

	rbrace, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	stmt.SetRange(kw.Range.Start, rbrace.Range.End)

	return stmt, nil
}

func (p *parser) parseSwitchCase() (*ast.SwitchCase, error) {
	c := &ast.SwitchCase{}
	start := p.cur().Range.Start

	if p.eat("case") {
		test, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		c.Test = test
	} else if _, err := p.expect("default"); err != nil {
		return nil, err
	}

	colon, err := p.expect(":")
	if err != nil {
		return nil, err
	}

	end := colon.Range.End

	for !p.at("case") && !p.at("default") && !p.at("}") && p.cur().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		c.Consequent = append(c.Consequent, stmt)
		end = stmt.Range().End
	}

	c.SetRange(start, end)

	return c, nil
}

func (p *parser) parseReturnStatement() (ast.Node, error) {
	kw := p.advance()

	stmt := &ast.ReturnStatement{}
	end := kw.Range.End

	if !p.at(";") && !p.at("}") && p.cur().Type != lexer.EOF {
		arg, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		stmt.Argument = arg
		end = arg.Range().End
	}

	stmt.SetRange(kw.Range.Start, p.semiEnd(end))

	return stmt, nil
}

func (p *parser) parseExpressionStatement() (ast.Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ExpressionStatement{Expression: expr}
	stmt.SetRange(expr.Range().Start, p.semiEnd(expr.Range().End))

	return stmt, nil
}

func (p *parser) parseIdentifier() (*ast.Identifier, error) {
	tok := p.cur()
	if tok.Type != lexer.Ident {
		return nil, p.errorf("expected identifier, found %q", tok.Value)
	}

	p.advance()

	id := &ast.Identifier{Name: tok.Value}
	id.SetRange(tok.Range.Start, tok.Range.End)

	return id, nil
}

// ErrNotPattern reports an expression that cannot be reinterpreted as an
// assignment target.
var ErrNotPattern = errors.New("invalid assignment target")
