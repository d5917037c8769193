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

package lexer_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/constguard/internal/ast"
	. "fillmore-labs.com/constguard/internal/lexer"
)

func tokenValues(tokens []Token) []string {
	values := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Type == EOF {
			break
		}

		values = append(values, tok.Value)
	}

	return values
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []string
	}{
		{
			name: "declaration",
			src:  `let x = 1;`,
			want: []string{"let", "x", "=", "1", ";"},
		},
		{
			name: "compound_assignment",
			src:  `total += n`,
			want: []string{"total", "+=", "n"},
		},
		{
			name: "maximal_munch",
			src:  `a === b >>= c`,
			want: []string{"a", "===", "b", ">>=", "c"},
		},
		{
			name: "string_keeps_quotes",
			src:  `'it\'s'`,
			want: []string{`'it\'s'`},
		},
		{
			name: "template_is_one_token",
			src:  "`sum: ${a + {b: 1}.b}` + 1",
			want: []string{"`sum: ${a + {b: 1}.b}`", "+", "1"},
		},
		{
			name: "comments_stay_in_stream",
			src:  "a // trailing\n/* block */ b",
			want: []string{"a", "// trailing", "/* block */", "b"},
		},
		{
			name: "spread_and_arrow",
			src:  `(...rest) => rest`,
			want: []string{"(", "...", "rest", ")", "=>", "rest"},
		},
		{
			name: "unicode_identifier",
			src:  `let größe = $n_1`,
			want: []string{"let", "größe", "=", "$n_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			tokens, err := Scan(tt.src)
			if err != nil {
				t.Fatalf("Scan(%q) failed: %v", tt.src, err)
			}

			// then
			got := tokenValues(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("Scan(%q) = %q, want %q", tt.src, got, tt.want)
			}

			for i, value := range tt.want {
				if got[i] != value {
					t.Errorf("token %d = %q, want %q", i, got[i], value)
				}
			}

			if last := tokens[len(tokens)-1]; last.Type != EOF {
				t.Errorf("last token type = %v, want EOF", last.Type)
			}
		})
	}
}

func TestScanTypes(t *testing.T) {
	t.Parallel()

	tokens, err := Scan("let x = of(`t`) // c")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []Type{Keyword, Ident, Punct, Ident, Punct, Template, Punct, Comment, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}

	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d (%q) type = %v, want %v", i, tokens[i].Value, tokens[i].Type, typ)
		}
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{name: "unterminated_string", src: `'abc`},
		{name: "newline_in_string", src: "'ab\nc'"},
		{name: "unterminated_template", src: "`abc"},
		{name: "unterminated_block_comment", src: "/* abc"},
		{name: "stray_character", src: "a # b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Scan(tt.src)
			if err == nil {
				t.Fatalf("Scan(%q) succeeded, want error", tt.src)
			}

			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Errorf("Scan(%q) error type = %T, want *Error", tt.src, err)
			}
		})
	}
}

func TestFirstToken(t *testing.T) {
	t.Parallel()

	src := `/* let */ let x = 1;`

	tokens, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// the comment mentioning the keyword is skipped
	tok, ok := FirstToken(tokens, ast.Range{Start: 0, End: len(src)}, func(t Token) bool {
		return t.Type == Keyword && t.Value == "let"
	})
	if !ok {
		t.Fatal("FirstToken found no keyword")
	}

	if want := (ast.Range{Start: 10, End: 13}); tok.Range != want {
		t.Errorf("keyword range = %+v, want %+v", tok.Range, want)
	}

	// no match outside the window
	if _, ok := FirstToken(tokens, ast.Range{Start: 14, End: len(src)}, func(t Token) bool {
		return t.Value == "let"
	}); ok {
		t.Error("FirstToken matched outside the range")
	}
}
