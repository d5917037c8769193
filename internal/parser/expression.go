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

package parser

import (
	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/lexer"
)

var assignOps = map[string]struct{}{
	"=": {}, "+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {}, "**=": {},
	"<<=": {}, ">>=": {}, "&=": {}, "|=": {}, "^=": {}, "&&=": {}, "||=": {}, "??=": {},
}

// binary operator precedence; higher binds tighter
var binaryPrec = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "in": 8, "instanceof": 8,
	"<<": 9, ">>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

// parseExpression parses a possibly comma-separated expression.
func (p *parser) parseExpression() (ast.Node, error) {
	expr, err := p.parseAssign()
	if err != nil {
		return nil, err
	}

	if !p.at(",") {
		return expr, nil
	}

	seq := &ast.SequenceExpression{Expressions: []ast.Node{expr}}

	for p.eat(",") {
		next, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		seq.Expressions = append(seq.Expressions, next)
	}

	last := seq.Expressions[len(seq.Expressions)-1]
	seq.SetRange(expr.Range().Start, last.Range().End)

	return seq, nil
}

func (p *parser) parseAssign() (ast.Node, error) {
	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	tok := p.cur()
	if tok.Type != lexer.Punct {
		return left, nil
	}

	if _, ok := assignOps[tok.Value]; !ok {
		return left, nil
	}

	p.advance()

	// Plain = permits destructuring; compound operators need a simple target.
	if tok.Value == "=" {
		pattern, err := exprToPattern(left)
		if err != nil {
			return nil, err
		}

		left = pattern
	} else if left.Kind() != ast.KindIdentifier && left.Kind() != ast.KindMemberExpression {
		return nil, &Error{Offset: tok.Range.Start, Msg: "invalid assignment target"}
	}

	right, err := p.parseAssign()
	if err != nil {
		return nil, err
	}

	expr := &ast.AssignmentExpression{Operator: tok.Value, Left: left, Right: right}
	expr.SetRange(left.Range().Start, right.Range().End)

	return expr, nil
}

func (p *parser) parseConditional() (ast.Node, error) {
	test, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}

	if !p.eat("?") {
		return test, nil
	}

	consequent, err := p.parseAssign()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(":"); err != nil {
		return nil, err
	}

	alternate, err := p.parseAssign()
	if err != nil {
		return nil, err
	}

	expr := &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
	expr.SetRange(test.Range().Start, alternate.Range().End)

	return expr, nil
}

func (p *parser) parseBinary(minPrec int) (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur()
		if tok.Type != lexer.Punct && tok.Type != lexer.Keyword {
			return left, nil
		}

		prec, ok := binaryPrec[tok.Value]
		if !ok || prec < minPrec {
			return left, nil
		}

		p.advance()

		// ** is right-associative
		next := prec + 1
		if tok.Value == "**" {
			next = prec
		}

		right, err := p.parseBinary(next)
		if err != nil {
			return nil, err
		}

		switch tok.Value {
		case "&&", "||", "??":
			expr := &ast.LogicalExpression{Operator: tok.Value, Left: left, Right: right}
			expr.SetRange(left.Range().Start, right.Range().End)
			left = expr

		default:
			expr := &ast.BinaryExpression{Operator: tok.Value, Left: left, Right: right}
			expr.SetRange(left.Range().Start, right.Range().End)
			left = expr
		}
	}
}

func (p *parser) parseUnary() (ast.Node, error) {
	tok := p.cur()

	if tok.Type == lexer.Punct || tok.Type == lexer.Keyword {
		switch tok.Value {
		case "!", "~", "+", "-", "typeof", "void", "delete":
			p.advance()

			arg, err := p.parseUnary()
			if err != nil {
				return nil, err
			}

			expr := &ast.UnaryExpression{Operator: tok.Value, Argument: arg}
			expr.SetRange(tok.Range.Start, arg.Range().End)

			return expr, nil

		case "++", "--":
			p.advance()

			arg, err := p.parseUnary()
			if err != nil {
				return nil, err
			}

			expr := &ast.UpdateExpression{Operator: tok.Value, Prefix: true, Argument: arg}
			expr.SetRange(tok.Range.Start, arg.Range().End)

			return expr, nil
		}
	}

	return p.parsePostfix()
}

func (p *parser) parsePostfix() (ast.Node, error) {
	expr, err := p.parseCallMember()
	if err != nil {
		return nil, err
	}

	if p.at("++") || p.at("--") {
		tok := p.advance()

		update := &ast.UpdateExpression{Operator: tok.Value, Argument: expr}
		update.SetRange(expr.Range().Start, tok.Range.End)

		return update, nil
	}

	return expr, nil
}

func (p *parser) parseCallMember() (ast.Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.eat("."):
			prop, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}

			member := &ast.MemberExpression{Object: expr, Property: prop}
			member.SetRange(expr.Range().Start, prop.Range().End)
			expr = member

		case p.at("["):
			p.advance()

			prop, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			rbracket, err := p.expect("]")
			if err != nil {
				return nil, err
			}

			member := &ast.MemberExpression{Object: expr, Property: prop, Computed: true}
			member.SetRange(expr.Range().Start, rbracket.Range.End)
			expr = member

		case p.at("("):
			args, end, err := p.parseArguments()
			if err != nil {
				return nil, err
			}

			call := &ast.CallExpression{Callee: expr, Arguments: args}
			call.SetRange(expr.Range().Start, end)
			expr = call

		default:
			return expr, nil
		}
	}
}

func (p *parser) parseArguments() ([]ast.Node, int, error) {
	if _, err := p.expect("("); err != nil {
		return nil, 0, err
	}

	var args []ast.Node

	for !p.at(")") {
		if p.at("...") {
			spread := p.advance()

			arg, err := p.parseAssign()
			if err != nil {
				return nil, 0, err
			}

			s := &ast.SpreadElement{Argument: arg}
			s.SetRange(spread.Range.Start, arg.Range().End)
			args = append(args, s)
		} else {
			arg, err := p.parseAssign()
			if err != nil {
				return nil, 0, err
			}

			args = append(args, arg)
		}

		if !p.eat(",") {
			break
		}
	}

	rparen, err := p.expect(")")
	if err != nil {
		return nil, 0, err
	}

	return args, rparen.Range.End, nil
}

//nolint:cyclop // primary expression dispatch
func (p *parser) parsePrimary() (ast.Node, error) {
	tok := p.cur()

	switch tok.Type {
	case lexer.Ident:
		return p.parseIdentifier()

	case lexer.Number, lexer.String:
		p.advance()

		lit := &ast.Literal{Raw: tok.Value}
		lit.SetRange(tok.Range.Start, tok.Range.End)

		return lit, nil

	case lexer.Template:
		p.advance()

		// substitutions are opaque; the subset does not resolve names inside templates
		lit := &ast.TemplateLiteral{}
		lit.SetRange(tok.Range.Start, tok.Range.End)

		return lit, nil

	case lexer.Keyword:
		switch tok.Value {
		case "true", "false", "null", "undefined", "this":
			p.advance()

			lit := &ast.Literal{Raw: tok.Value}
			lit.SetRange(tok.Range.Start, tok.Range.End)

			return lit, nil

		case "function":
			return p.parseFunctionExpression()

		case "new":
			return p.parseNewExpression()
		}

	case lexer.Punct:
		switch tok.Value {
		case "(":
			p.advance()

			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(")"); err != nil {
				return nil, err
			}

			return expr, nil

		case "[":
			return p.parseArrayLiteral()

		case "{":
			return p.parseObjectLiteral()
		}

	case lexer.EOF, lexer.Comment:
	}

	return nil, p.errorf("unexpected token %q", tok.Value)
}

func (p *parser) parseFunctionExpression() (ast.Node, error) {
	kw := p.advance()

	fn := &ast.FunctionExpression{}

	if p.cur().Type == lexer.Ident {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}

		fn.ID = id
	}

	params, body, err := p.parseFunctionRest()
	if err != nil {
		return nil, err
	}

	fn.Params = params
	fn.Body = body
	fn.SetRange(kw.Range.Start, body.Range().End)

	return fn, nil
}

func (p *parser) parseNewExpression() (ast.Node, error) {
	kw := p.advance()

	callee, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	// member access binds tighter than new
	for p.eat(".") {
		prop, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}

		member := &ast.MemberExpression{Object: callee, Property: prop}
		member.SetRange(callee.Range().Start, prop.Range().End)
		callee = member
	}

	expr := &ast.NewExpression{Callee: callee}
	end := callee.Range().End

	if p.at("(") {
		args, argsEnd, err := p.parseArguments()
		if err != nil {
			return nil, err
		}

		expr.Arguments = args
		end = argsEnd
	}

	expr.SetRange(kw.Range.Start, end)

	return expr, nil
}

func (p *parser) parseArrayLiteral() (ast.Node, error) {
	lbracket := p.advance()

	arr := &ast.ArrayExpression{}

	for !p.at("]") {
		switch {
		case p.at(","):
			p.advance()
			arr.Elements = append(arr.Elements, nil) // hole

			continue

		case p.at("..."):
			spread := p.advance()

			arg, err := p.parseAssign()
			if err != nil {
				return nil, err
			}

			s := &ast.SpreadElement{Argument: arg}
			s.SetRange(spread.Range.Start, arg.Range().End)
			arr.Elements = append(arr.Elements, s)

		default:
			elem, err := p.parseAssign()
			if err != nil {
				return nil, err
			}

			arr.Elements = append(arr.Elements, elem)
		}

		if !p.eat(",") {
			break
		}
	}

	rbracket, err := p.expect("]")
	if err != nil {
		return nil, err
	}

	arr.SetRange(lbracket.Range.Start, rbracket.Range.End)

	return arr, nil
}

func (p *parser) parseObjectLiteral() (ast.Node, error) {
	lbrace := p.advance()

	obj := &ast.ObjectExpression{}

	for !p.at("}") {
		if p.at("...") {
			spread := p.advance()

			arg, err := p.parseAssign()
			if err != nil {
				return nil, err
			}

			s := &ast.SpreadElement{Argument: arg}
			s.SetRange(spread.Range.Start, arg.Range().End)
			obj.Properties = append(obj.Properties, s)
		} else {
			prop, err := p.parseObjectProperty()
			if err != nil {
				return nil, err
			}

			obj.Properties = append(obj.Properties, prop)
		}

		if !p.eat(",") {
			break
		}
	}

	rbrace, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	obj.SetRange(lbrace.Range.Start, rbrace.Range.End)

	return obj, nil
}

func (p *parser) parseObjectProperty() (*ast.Property, error) {
	key, computed, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	prop := &ast.Property{Key: key, Computed: computed}

	switch {
	case p.eat(":"):
		value, err := p.parseAssign()
		if err != nil {
			return nil, err
		}

		prop.Value = value

	case !computed && key.Kind() == ast.KindIdentifier:
		prop.Value = cloneIdentifier(key.(*ast.Identifier))
		prop.Shorthand = true

	default:
		return nil, p.errorf("expected %q in property", ":")
	}

	prop.SetRange(key.Range().Start, prop.Value.Range().End)

	return prop, nil
}

func (p *parser) parsePropertyKey() (ast.Node, bool, error) {
	tok := p.cur()

	switch {
	case tok.Type == lexer.Ident || tok.Type == lexer.Keyword:
		p.advance()

		id := &ast.Identifier{Name: tok.Value}
		id.SetRange(tok.Range.Start, tok.Range.End)

		return id, false, nil

	case tok.Type == lexer.Number || tok.Type == lexer.String:
		p.advance()

		lit := &ast.Literal{Raw: tok.Value}
		lit.SetRange(tok.Range.Start, tok.Range.End)

		return lit, false, nil

	case p.at("["):
		p.advance()

		key, err := p.parseAssign()
		if err != nil {
			return nil, false, err
		}

		if _, err := p.expect("]"); err != nil {
			return nil, false, err
		}

		return key, true, nil

	default:
		return nil, false, p.errorf("invalid property key %q", tok.Value)
	}
}

func cloneIdentifier(id *ast.Identifier) *ast.Identifier {
	clone := &ast.Identifier{Name: id.Name}
	clone.SetRange(id.Range().Start, id.Range().End)

	return clone
}
