package asi

import (
	"testing"

	"github.com/xjslang/xjs-core/lexer"
	"github.com/xjslang/xjs-core/token"
)

func tokenize(t *testing.T, input string, moduleMode bool) ([]token.Token, []error) {
	t.Helper()
	e := New(lexer.New(input), moduleMode)
	var toks []token.Token
	var errs []error
	for {
		tok, err := e.Next()
		if err != nil {
			errs = append(errs, err)
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, errs
		}
	}
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tk := range toks {
		out[i] = tk.Type
	}
	return out
}

func assertTypes(t *testing.T, got []token.Type, want ...token.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("token %d = %s, want %s (full: %v)", i, got[i], w, got)
		}
	}
}

func TestNoForLoopHeaderSemicolonConfusion(t *testing.T) {
	toks, _ := tokenize(t, "for (let i=0;i<10;i++) { a }", false)
	// ASI must not insert an extra ';' at the for-header's own semicolons,
	// and none inside "{ a }" beyond the one synthesized before '}'.
	got := types(toks)
	assertTypes(t, got,
		token.FOR, token.LPAREN, token.LET, token.IDENT, token.ASSIGN, token.NUMBER, token.SEMICOLON,
		token.IDENT, token.LT, token.NUMBER, token.SEMICOLON,
		token.IDENT, token.PLUS_PLUS, token.RPAREN,
		token.LBRACE, token.IDENT, token.SEMICOLON, token.RBRACE, token.SEMICOLON, token.EOF)
}

func TestReturnNewlineInsertsSemicolon(t *testing.T) {
	toks, _ := tokenize(t, "return\n1", false)
	got := types(toks)
	// one synthetic ';' after RETURN (restricted production) and a
	// second trailing one before EOF.
	assertTypes(t, got, token.RETURN, token.SEMICOLON, token.NUMBER, token.SEMICOLON, token.EOF)
}

func TestReturnSameLineNoSemicolon(t *testing.T) {
	toks, _ := tokenize(t, "return 1", false)
	got := types(toks)
	// no synthetic ';' between RETURN and NUMBER; EOF then triggers one.
	assertTypes(t, got, token.RETURN, token.NUMBER, token.SEMICOLON, token.EOF)
}

func TestObjectLiteralBraceNotClosedWithSemicolon(t *testing.T) {
	toks, _ := tokenize(t, "x = ({a:1})", false)
	got := types(toks)
	assertTypes(t, got,
		token.IDENT, token.ASSIGN, token.LPAREN, token.LBRACE,
		token.IDENT, token.COLON, token.NUMBER, token.RBRACE, token.RPAREN, token.SEMICOLON, token.EOF)
}

func TestBlockAtStatementPositionGetsLabeledStatement(t *testing.T) {
	// "{a:1}" at statement position is a block containing a labeled
	// statement, i.e. the '{' is classified BraceBlock, not BraceObject;
	// a ';' is synthesized after the "1" before '}'.
	toks, _ := tokenize(t, "{a:1}", false)
	got := types(toks)
	assertTypes(t, got,
		token.LBRACE, token.IDENT, token.COLON, token.NUMBER, token.SEMICOLON, token.RBRACE, token.SEMICOLON, token.EOF)
}

func TestFunctionDeclVsExpr(t *testing.T) {
	t.Run("statement_position_is_decl", func(t *testing.T) {
		toks, _ := tokenize(t, "function f(){}", false)
		if toks[0].Type != token.FUNCTION_DECL {
			t.Fatalf("got %s, want FUNCTION_DECL", toks[0].Type)
		}
	})

	t.Run("expression_position_is_expr", func(t *testing.T) {
		toks, _ := tokenize(t, "x = function(){}", false)
		var sawFunction bool
		for _, tk := range toks {
			if tk.Type == token.FUNCTION {
				sawFunction = true
			}
			if tk.Type == token.FUNCTION_DECL {
				t.Fatalf("expected FUNCTION not FUNCTION_DECL in expression position")
			}
		}
		if !sawFunction {
			t.Fatal("expected a FUNCTION token")
		}
	})
}

func TestArrowHeadDetection(t *testing.T) {
	t.Run("arrow_params", func(t *testing.T) {
		toks, _ := tokenize(t, "(a, b) => a", false)
		if toks[0].Type != token.ARROW_HEAD {
			t.Fatalf("got %s, want ARROW_HEAD", toks[0].Type)
		}
	})

	t.Run("plain_parenthesized_expr", func(t *testing.T) {
		toks, _ := tokenize(t, "(a, b)", false)
		if toks[0].Type != token.LPAREN {
			t.Fatalf("got %s, want LPAREN", toks[0].Type)
		}
	})
}

func TestModuleModeDegradesImportExport(t *testing.T) {
	t.Run("script_mode_is_identifier", func(t *testing.T) {
		toks, _ := tokenize(t, "import = 1", false)
		if toks[0].Type != token.IDENT {
			t.Fatalf("got %s, want IDENT in script mode", toks[0].Type)
		}
	})

	t.Run("module_mode_is_keyword", func(t *testing.T) {
		toks, _ := tokenize(t, "import x from \"y\"", true)
		if toks[0].Type != token.IMPORT {
			t.Fatalf("got %s, want IMPORT in module mode", toks[0].Type)
		}
	})
}

func TestRestrictedProductionAfterYield(t *testing.T) {
	e := New(lexer.New("yield\n1"), false)
	tok1, err1 := e.Next()
	if tok1.Type != token.YIELD || err1 != nil {
		t.Fatalf("unexpected first token %v err %v", tok1, err1)
	}
	_, err2 := e.Next()
	if err2 == nil {
		t.Fatal("expected restricted-production error for newline after yield")
	}
}

func TestDivisionAfterIdentifierNotRegex(t *testing.T) {
	toks, _ := tokenize(t, "a\n/b/g", false)
	got := types(toks)
	// prev_token_permits_regex is false right after an Identifier
	// regardless of the intervening newline, so this is two divisions.
	assertTypes(t, got, token.IDENT, token.DIVIDE, token.IDENT, token.DIVIDE, token.IDENT, token.SEMICOLON, token.EOF)
}

func TestParenDepthNeverNegative(t *testing.T) {
	e := New(lexer.New(")))"), false)
	for {
		tok, _ := e.Next()
		if e.ParenDepth() < 0 {
			t.Fatalf("paren depth went negative")
		}
		if tok.Type == token.EOF {
			break
		}
	}
}

func TestNewlineBeforeLastTracksPostfixHazard(t *testing.T) {
	e := New(lexer.New("a\n++b"), false)
	tok1, err1 := e.Next()
	if tok1.Type != token.IDENT || err1 != nil {
		t.Fatalf("unexpected first token %v err %v", tok1, err1)
	}
	tok2, _ := e.Next()
	// ASI turns this into two statements (PLUS_PLUS can't continue an
	// Identifier across a newline), so the next real token is the
	// synthetic ';', not PLUS_PLUS directly.
	if tok2.Type != token.SEMICOLON {
		t.Fatalf("got %s, want SEMICOLON", tok2.Type)
	}
	tok3, _ := e.Next()
	if tok3.Type != token.PLUS_PLUS || !e.NewlineBeforeLast() {
		t.Fatalf("got %s newlineBefore=%v, want PLUS_PLUS with newlineBefore=true", tok3.Type, e.NewlineBeforeLast())
	}
}

func TestEmptyInputYieldsBareEOF(t *testing.T) {
	toks, errs := tokenize(t, "", false)
	assertTypes(t, types(toks), token.EOF)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
