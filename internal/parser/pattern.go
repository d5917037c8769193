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
)

// parseBindingTarget parses an identifier, object pattern or array pattern
// in a binding position.
func (p *parser) parseBindingTarget() (ast.Node, error) {
	switch {
	case p.at("["):
		return p.parseArrayPattern()

	case p.at("{"):
		return p.parseObjectPattern()

	default:
		return p.parseIdentifier()
	}
}

// parseBindingElement parses a binding target with an optional default.
func (p *parser) parseBindingElement() (ast.Node, error) {
	target, err := p.parseBindingTarget()
	if err != nil {
		return nil, err
	}

	if !p.eat("=") {
		return target, nil
	}

	value, err := p.parseAssign()
	if err != nil {
		return nil, err
	}

	pattern := &ast.AssignmentPattern{Left: target, Right: value}
	pattern.SetRange(target.Range().Start, value.Range().End)

	return pattern, nil
}

func (p *parser) parseArrayPattern() (*ast.ArrayPattern, error) {
	lbracket := p.advance()

	pattern := &ast.ArrayPattern{}

	for !p.at("]") {
		switch {
		case p.at(","):
			p.advance()
			pattern.Elements = append(pattern.Elements, nil) // hole

			continue

		case p.at("..."):
			rest := p.advance()

			target, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}

			r := &ast.RestElement{Argument: target}
			r.SetRange(rest.Range.Start, target.Range().End)
			pattern.Elements = append(pattern.Elements, r)

		default:
			elem, err := p.parseBindingElement()
			if err != nil {
				return nil, err
			}

			pattern.Elements = append(pattern.Elements, elem)
		}

		if !p.eat(",") {
			break
		}
	}

	rbracket, err := p.expect("]")
	if err != nil {
		return nil, err
	}

	pattern.SetRange(lbracket.Range.Start, rbracket.Range.End)

	return pattern, nil
}

func (p *parser) parseObjectPattern() (*ast.ObjectPattern, error) {
	lbrace := p.advance()

	pattern := &ast.ObjectPattern{}

	for !p.at("}") {
		if p.at("...") {
			rest := p.advance()

			target, err := p.parseBindingTarget()
			if err != nil {
				return nil, err
			}

			r := &ast.RestElement{Argument: target}
			r.SetRange(rest.Range.Start, target.Range().End)
			pattern.Properties = append(pattern.Properties, r)
		} else {
			prop, err := p.parsePatternProperty()
			if err != nil {
				return nil, err
			}

			pattern.Properties = append(pattern.Properties, prop)
		}

		if !p.eat(",") {
			break
		}
	}

	rbrace, err := p.expect("}")
	if err != nil {
		return nil, err
	}

	pattern.SetRange(lbrace.Range.Start, rbrace.Range.End)

	return pattern, nil
}

func (p *parser) parsePatternProperty() (*ast.Property, error) {
	key, computed, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	prop := &ast.Property{Key: key, Computed: computed}

	switch {
	case p.eat(":"):
		value, err := p.parseBindingElement()
		if err != nil {
			return nil, err
		}

		prop.Value = value

	case !computed && key.Kind() == ast.KindIdentifier:
		value := ast.Node(cloneIdentifier(key.(*ast.Identifier)))
		prop.Shorthand = true

		// shorthand with default: { a = 1 }
		if p.eat("=") {
			right, err := p.parseAssign()
			if err != nil {
				return nil, err
			}

			dflt := &ast.AssignmentPattern{Left: value, Right: right}
			dflt.SetRange(value.Range().Start, right.Range().End)
			value = dflt
		}

		prop.Value = value

	default:
		return nil, p.errorf("expected %q in pattern property", ":")
	}

	prop.SetRange(key.Range().Start, prop.Value.Range().End)

	return prop, nil
}

// exprToPattern reinterprets an already parsed expression as an assignment
// target, as required for destructuring assignments like [a, b] = pair().
func exprToPattern(n ast.Node) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return n, nil

	case *ast.ObjectExpression:
		pattern := &ast.ObjectPattern{}
		pattern.SetRange(n.Range().Start, n.Range().End)

		for _, prop := range n.Properties {
			converted, err := propertyToPattern(prop)
			if err != nil {
				return nil, err
			}

			pattern.Properties = append(pattern.Properties, converted)
		}

		return pattern, nil

	case *ast.ArrayExpression:
		pattern := &ast.ArrayPattern{}
		pattern.SetRange(n.Range().Start, n.Range().End)

		for _, elem := range n.Elements {
			if elem == nil {
				pattern.Elements = append(pattern.Elements, nil)

				continue
			}

			converted, err := elementToPattern(elem)
			if err != nil {
				return nil, err
			}

			pattern.Elements = append(pattern.Elements, converted)
		}

		return pattern, nil

	case *ast.AssignmentExpression:
		if n.Operator != "=" {
			return nil, patternError(n)
		}

		left, err := exprToPattern(n.Left)
		if err != nil {
			return nil, err
		}

		pattern := &ast.AssignmentPattern{Left: left, Right: n.Right}
		pattern.SetRange(n.Range().Start, n.Range().End)

		return pattern, nil

	default:
		return nil, patternError(n)
	}
}

func propertyToPattern(n ast.Node) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.SpreadElement:
		arg, err := exprToPattern(n.Argument)
		if err != nil {
			return nil, err
		}

		rest := &ast.RestElement{Argument: arg}
		rest.SetRange(n.Range().Start, n.Range().End)

		return rest, nil

	case *ast.Property:
		value, err := exprToPattern(n.Value)
		if err != nil {
			return nil, err
		}

		prop := &ast.Property{Key: n.Key, Value: value, Computed: n.Computed, Shorthand: n.Shorthand}
		prop.SetRange(n.Range().Start, n.Range().End)

		return prop, nil

	default:
		return nil, patternError(n)
	}
}

func elementToPattern(n ast.Node) (ast.Node, error) {
	if spread, ok := n.(*ast.SpreadElement); ok {
		arg, err := exprToPattern(spread.Argument)
		if err != nil {
			return nil, err
		}

		rest := &ast.RestElement{Argument: arg}
		rest.SetRange(n.Range().Start, n.Range().End)

		return rest, nil
	}

	return exprToPattern(n)
}

func patternError(n ast.Node) error {
	return &Error{Offset: n.Range().Start, Msg: ErrNotPattern.Error()}
}
