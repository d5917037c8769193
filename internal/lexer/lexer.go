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

// Package lexer tokenizes the analyzed JavaScript subset.
//
// Comments are kept in the token stream, tagged [Comment], so consumers that
// scan token ranges can skip them explicitly.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/constguard/internal/ast"
)

// Type classifies a token.
type Type uint8

// Token types.
const (
	EOF Type = iota
	Ident
	Keyword
	Number
	String
	Template
	Punct
	Comment
)

// Token is a lexeme with its source range. Value is the raw source text for
// all types except String and Template, where it still includes the quotes.
type Token struct {
	Type  Type
	Value string
	Range ast.Range
}

// Error is a positional tokenization error.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string { return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg) }

var keywords = map[string]struct{}{
	"break": {}, "case": {}, "class": {}, "const": {}, "continue": {},
	"default": {}, "delete": {}, "do": {}, "else": {}, "false": {},
	"for": {}, "function": {}, "if": {}, "in": {}, "instanceof": {},
	"let": {}, "new": {}, "null": {}, "return": {}, "static": {},
	"switch": {}, "this": {}, "true": {}, "typeof": {}, "undefined": {},
	"var": {}, "void": {}, "while": {},
}

// multi-character punctuators, longest first so maximal munch works
var puncts = []string{
	"...", "===", "!==", "**=", "<<=", ">>=", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
	"{", "}", "(", ")", "[", "]", ";", ",", ".", "?", ":",
	"=", "+", "-", "*", "/", "%", "<", ">", "!", "&", "|", "^", "~",
}

// Scan tokenizes src. The returned slice ends with an EOF token.
func Scan(src string) ([]Token, error) {
	l := &lexer{src: src}

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		l.tokens = append(l.tokens, tok)
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}

type lexer struct {
	src    string
	pos    int
	tokens []Token
}

func (l *lexer) next() (Token, error) {
	l.skipSpace()

	start := l.pos
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Range: ast.Range{Start: start, End: start}}, nil
	}

	switch c := l.src[l.pos]; {
	case c == '/' && l.peekAt(1) == '/':
		return l.lineComment(), nil

	case c == '/' && l.peekAt(1) == '*':
		return l.blockComment()

	case isIdentStart(rune(c)) || c >= utf8.RuneSelf:
		return l.identifier(), nil

	case c >= '0' && c <= '9':
		return l.number(), nil

	case c == '"' || c == '\'':
		return l.quoted(c)

	case c == '`':
		return l.template()

	default:
		return l.punct()
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			l.pos++

		default:
			return
		}
	}
}

func (l *lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}

	return l.src[l.pos+off]
}

func (l *lexer) token(t Type, start int) Token {
	return Token{Type: t, Value: l.src[start:l.pos], Range: ast.Range{Start: start, End: l.pos}}
}

func (l *lexer) lineComment() Token {
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}

	return l.token(Comment, start)
}

func (l *lexer) blockComment() (Token, error) {
	start := l.pos
	l.pos += 2

	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peekAt(1) == '/' {
			l.pos += 2

			return l.token(Comment, start), nil
		}

		l.pos++
	}

	return Token{}, &Error{Offset: start, Msg: "unterminated block comment"}
}

func (l *lexer) identifier() Token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPart(r) {
			break
		}

		l.pos += size
	}

	tok := l.token(Ident, start)
	if _, ok := keywords[tok.Value]; ok {
		tok.Type = Keyword
	}

	return tok
}

func (l *lexer) number() Token {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if (c < '0' || c > '9') && c != '.' && c != 'x' && c != 'X' && c != 'e' && c != 'E' &&
			!(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') && c != '_' {
			break
		}

		l.pos++
	}

	return l.token(Number, start)
}

func (l *lexer) quoted(quote byte) (Token, error) {
	start := l.pos
	l.pos++

	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2

		case quote:
			l.pos++

			return l.token(String, start), nil

		case '\n':
			return Token{}, &Error{Offset: start, Msg: "unterminated string literal"}

		default:
			l.pos++
		}
	}

	return Token{}, &Error{Offset: start, Msg: "unterminated string literal"}
}

// template scans a template literal. Substitutions are tokenized by the
// parser re-entering the lexer output; here the whole literal is one token,
// tracking nested braces inside ${...}.
func (l *lexer) template() (Token, error) {
	start := l.pos
	l.pos++

	depth := 0

	for l.pos < len(l.src) {
		switch {
		case l.src[l.pos] == '\\':
			l.pos += 2

		case depth == 0 && l.src[l.pos] == '`':
			l.pos++

			return l.token(Template, start), nil

		case l.src[l.pos] == '$' && l.peekAt(1) == '{':
			depth++
			l.pos += 2

		case depth > 0 && l.src[l.pos] == '}':
			depth--
			l.pos++

		default:
			l.pos++
		}
	}

	return Token{}, &Error{Offset: start, Msg: "unterminated template literal"}
}

func (l *lexer) punct() (Token, error) {
	start := l.pos
	rest := l.src[l.pos:]

	for _, p := range puncts {
		if strings.HasPrefix(rest, p) {
			l.pos += len(p)

			return l.token(Punct, start), nil
		}
	}

	return Token{}, &Error{Offset: start, Msg: fmt.Sprintf("unexpected character %q", l.src[l.pos])}
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// FirstToken returns the first non-comment token within r satisfying pred.
func FirstToken(tokens []Token, r ast.Range, pred func(Token) bool) (Token, bool) {
	for _, tok := range tokens {
		if tok.Range.Start < r.Start {
			continue
		}

		if tok.Range.End > r.End || tok.Type == EOF {
			break
		}

		if tok.Type == Comment {
			continue
		}

		if pred(tok) {
			return tok, true
		}
	}

	return Token{}, false
}

// Comments returns the comment tokens of a scanned stream.
func Comments(tokens []Token) []Token {
	var comments []Token

	for _, tok := range tokens {
		if tok.Type == Comment {
			comments = append(comments, tok)
		}
	}

	return comments
}
