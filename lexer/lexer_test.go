package lexer

import (
	"testing"

	"github.com/xjslang/xjs-core/token"
)

func collect(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  token.Type
	}{
		{"plain_ident", "foo", token.IDENT},
		{"dollar_ident", "$bar", token.IDENT},
		{"underscore_ident", "_baz", token.IDENT},
		{"keyword_function", "function", token.FUNCTION},
		{"keyword_class", "class", token.CLASS},
		{"keyword_await", "await", token.AWAIT},
		{"undefined_is_ident", "undefined", token.IDENT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(tt.input)
			if toks[0].Type != tt.want {
				t.Fatalf("got %s, want %s", toks[0].Type, tt.want)
			}
			if toks[0].Literal != tt.input {
				t.Fatalf("literal = %q, want %q", toks[0].Literal, tt.input)
			}
		})
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"decimal", "123"},
		{"float", "3.14"},
		{"exponent", "1e10"},
		{"exponent_signed", "1e-10"},
		{"hex", "0x1A"},
		{"octal", "0o17"},
		{"binary", "0b101"},
		{"legacy_octal_as_decimal", "017"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(tt.input)
			if toks[0].Type != token.NUMBER {
				t.Fatalf("got %s, want NUMBER", toks[0].Type)
			}
			if toks[0].Literal != tt.input {
				t.Fatalf("literal = %q, want %q", toks[0].Literal, tt.input)
			}
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   token.Type
	}{
		{"double_quoted", `"hello"`, token.STRING},
		{"single_quoted", `'hello'`, token.STRING},
		{"escaped_quote", `"a\"b"`, token.STRING},
		{"unterminated", `"hello`, token.ILLEGAL},
		{"raw_newline_is_error", "\"hello\nworld\"", token.ILLEGAL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(tt.input)
			if toks[0].Type != tt.typ {
				t.Fatalf("got %s, want %s", toks[0].Type, tt.typ)
			}
		})
	}

	t.Run("quotes_retained_verbatim", func(t *testing.T) {
		toks := collect(`"a\"b"`)
		if toks[0].Literal != `"a\"b"` {
			t.Fatalf("literal = %q, want verbatim with quotes", toks[0].Literal)
		}
	})
}

func TestRegexVsDivision(t *testing.T) {
	t.Run("regex_after_assign", func(t *testing.T) {
		toks := collect("x = /ab+c/gi")
		if toks[2].Type != token.REGEX {
			t.Fatalf("got %s, want REGEX", toks[2].Type)
		}
		if toks[2].Literal != "/ab+c/gi" {
			t.Fatalf("literal = %q, want /ab+c/gi", toks[2].Literal)
		}
	})

	t.Run("division_after_ident", func(t *testing.T) {
		toks := collect("x / y")
		if toks[1].Type != token.DIVIDE {
			t.Fatalf("got %s, want DIVIDE", toks[1].Type)
		}
	})

	t.Run("division_after_number", func(t *testing.T) {
		toks := collect("1 / 2")
		if toks[1].Type != token.DIVIDE {
			t.Fatalf("got %s, want DIVIDE", toks[1].Type)
		}
	})

	t.Run("regex_after_paren", func(t *testing.T) {
		toks := collect("foo(/x/)")
		var sawRegex bool
		for _, tok := range toks {
			if tok.Type == token.REGEX {
				sawRegex = true
			}
		}
		if !sawRegex {
			t.Fatal("expected a REGEX token")
		}
	})

	t.Run("regex_with_character_class_slash", func(t *testing.T) {
		toks := collect("x = /[a/b]/")
		if toks[2].Type != token.REGEX || toks[2].Literal != "/[a/b]/" {
			t.Fatalf("got %s %q, want REGEX /[a/b]/", toks[2].Type, toks[2].Literal)
		}
	})

	t.Run("division_after_paren_close", func(t *testing.T) {
		toks := collect("(a) / b")
		if toks[3].Type != token.DIVIDE {
			t.Fatalf("got %s, want DIVIDE", toks[3].Type)
		}
	})
}

func TestTemplateLiterals(t *testing.T) {
	t.Run("no_substitution", func(t *testing.T) {
		toks := collect("`hello there!`")
		if toks[0].Type != token.TEMPLATE_NO_SUB || toks[0].Literal != "hello there!" {
			t.Fatalf("got %s %q", toks[0].Type, toks[0].Literal)
		}
	})

	t.Run("escaped_backtick", func(t *testing.T) {
		toks := collect("`hello \\`there\\`!`")
		if toks[0].Type != token.TEMPLATE_NO_SUB {
			t.Fatalf("got %s", toks[0].Type)
		}
		if toks[0].Literal != `hello \` + "`" + `there\` + "`" + `!` {
			t.Fatalf("literal = %q", toks[0].Literal)
		}
	})

	t.Run("single_substitution", func(t *testing.T) {
		toks := collect("`a${x}b`")
		if toks[0].Type != token.TEMPLATE_HEAD || toks[0].Literal != "a" {
			t.Fatalf("head = %s %q", toks[0].Type, toks[0].Literal)
		}
		if toks[1].Type != token.IDENT || toks[1].Literal != "x" {
			t.Fatalf("middle expr = %s %q", toks[1].Type, toks[1].Literal)
		}
		if toks[2].Type != token.TEMPLATE_TAIL || toks[2].Literal != "b" {
			t.Fatalf("tail = %s %q", toks[2].Type, toks[2].Literal)
		}
	})

	t.Run("substitution_with_braces", func(t *testing.T) {
		// The '{' and '}' inside the substitution must be scanned as
		// ordinary punctuators, and only the balancing '}' re-enters
		// template mode.
		toks := collect("`a${ {x: 1}.x }b`")
		var kinds []token.Type
		for _, tok := range toks {
			kinds = append(kinds, tok.Type)
		}
		if kinds[0] != token.TEMPLATE_HEAD {
			t.Fatalf("first token = %s, want TEMPLATE_HEAD", kinds[0])
		}
		last := kinds[len(kinds)-2] // before EOF
		if last != token.TEMPLATE_TAIL {
			t.Fatalf("last non-EOF token = %s, want TEMPLATE_TAIL", last)
		}
	})

	t.Run("multiple_substitutions", func(t *testing.T) {
		toks := collect("`${a}${b}`")
		wants := []token.Type{token.TEMPLATE_HEAD, token.IDENT, token.TEMPLATE_MIDDLE, token.IDENT, token.TEMPLATE_TAIL, token.EOF}
		if len(toks) != len(wants) {
			t.Fatalf("got %d tokens, want %d", len(toks), len(wants))
		}
		for i, want := range wants {
			if toks[i].Type != want {
				t.Fatalf("token %d = %s, want %s", i, toks[i].Type, want)
			}
		}
	})
}

func TestCommentsAndNewlineTracking(t *testing.T) {
	t.Run("line_comment_skipped", func(t *testing.T) {
		toks := collect("x // comment\ny")
		if toks[0].Literal != "x" || toks[1].Literal != "y" {
			t.Fatalf("unexpected tokens: %v", toks[:2])
		}
	})

	t.Run("block_comment_without_newline", func(t *testing.T) {
		l := New("x /* c */ y")
		l.NextToken() // x
		tok := l.NextToken()
		if tok.Literal != "y" || l.HasNewlineSincePreviousToken() {
			t.Fatalf("expected no newline flag, got %v", l.HasNewlineSincePreviousToken())
		}
	})

	t.Run("block_comment_with_newline_counts", func(t *testing.T) {
		l := New("x /* a\nb */ y")
		l.NextToken() // x
		l.NextToken() // y
		if !l.HasNewlineSincePreviousToken() {
			t.Fatal("expected newline flag set by multi-line block comment")
		}
	})

	t.Run("plain_newline_sets_flag", func(t *testing.T) {
		l := New("x\ny")
		l.NextToken()
		l.NextToken()
		if !l.HasNewlineSincePreviousToken() {
			t.Fatal("expected newline flag set")
		}
	})
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"=>", token.ARROW},
		{"===", token.EQ_STRICT},
		{"!==", token.NOT_EQ_STRICT},
		{">>>", token.URSHIFT},
		{">>>=", token.URSHIFT_ASSIGN},
		{"**", token.EXPONENT},
		{"**=", token.EXPONENT_ASSIGN},
		{"?.", token.OPTIONAL_CHAIN},
		{"...", token.ELLIPSIS},
		{"??", token.QUESTION}, // nullish coalescing is not its own terminal; scans as two '?'
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := collect(tt.input)
			if toks[0].Type != tt.want {
				t.Fatalf("got %s, want %s", toks[0].Type, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	l := New("foo\nbar")
	first := l.NextToken()
	if first.Line != 1 {
		t.Fatalf("line = %d, want 1", first.Line)
	}
	second := l.NextToken()
	if second.Line != 2 {
		t.Fatalf("line = %d, want 2", second.Line)
	}
}
