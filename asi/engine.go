// Package asi sits between the lexer and the parser. It performs automatic
// semicolon insertion, classifies FUNCTION tokens as declarations or
// expressions, flags arrow-function heads so the grammar never needs
// unbounded backtracking, and degrades import/export to plain identifiers
// outside module mode.
package asi

import (
	"github.com/xjslang/xjs-core/lexer"
	"github.com/xjslang/xjs-core/token"
)

// BraceKind classifies an open '{' so a matching '}' can be told apart
// when deciding whether ASI applies.
type BraceKind int

const (
	BraceBlock BraceKind = iota
	BraceObject
	BraceFunction
)

// pendingQueueCapacity bounds how many tokens the engine may defer at
// once. The grammar never needs more than one or two in practice (the
// synthetic semicolon path, and the arrow-head path); a deeper backlog
// indicates a bug rather than a large program.
const pendingQueueCapacity = 32

type pendingToken struct {
	Token              token.Token
	SkipArrowDetection bool
	NewlineBefore      bool
}

// Engine adapts a raw token.Lexer stream into the stream the parser
// consumes: the same terminal alphabet plus synthesized SEMICOLON,
// FUNCTION_DECL, and ARROW_HEAD tokens.
type Engine struct {
	lex        *lexer.Lexer
	moduleMode bool

	lastToken              token.Type
	prevToken              token.Type
	lastClosedControl      bool
	lastClosedFunction     bool
	lastClosedParen        bool
	skipArrowDetectionOnce bool
	asyncAllowsFunctionDecl bool

	parenDepth          int
	controlStack        []int
	functionParenStack  []int
	braceStack          []BraceKind
	pendingFunctionBody bool

	pending []pendingToken

	// lexErrEOF is the EOF returned for a lexical error; once set, every
	// later Next call returns it again.
	lexErrEOF *token.Token

	// newlineBeforeLast records whether a line terminator preceded the
	// token most recently returned by Next. Package parser does not read
	// it: a '++'/'--' after a line terminator already gets a ';' inserted
	// before it by shouldInsertSemicolon.
	newlineBeforeLast bool
}

// NewlineBeforeLast reports whether a line terminator appeared between the
// previously returned token and the one just returned by Next.
func (e *Engine) NewlineBeforeLast() bool { return e.newlineBeforeLast }

// New creates an engine reading from lex. moduleMode governs whether
// import/export lex as their keywords (true) or degrade to plain
// identifiers (false, script mode).
func New(lex *lexer.Lexer, moduleMode bool) *Engine {
	return &Engine{lex: lex, moduleMode: moduleMode}
}

func isControlKeyword(tt token.Type) bool { return token.IsControlKeyword(tt) }

func isRestrictedToken(tt token.Type) bool {
	switch tt {
	case token.RETURN, token.BREAK, token.CONTINUE, token.THROW, token.YIELD:
		return true
	default:
		return false
	}
}

func canEndStatement(tt token.Type) bool {
	switch tt {
	case token.IDENT, token.NUMBER, token.STRING, token.REGEX,
		token.TRUE, token.FALSE, token.NULL, token.THIS, token.SUPER,
		token.TEMPLATE_NO_SUB, token.TEMPLATE_TAIL, token.DEFAULT,
		token.RPAREN, token.RBRACKET, token.RBRACE,
		token.PLUS_PLUS, token.MINUS_MINUS:
		return true
	default:
		return false
	}
}

func newlineAllowedAfterYield(next token.Type, isEOF bool) bool {
	if isEOF {
		return true
	}
	switch next {
	case token.SEMICOLON, token.RBRACE, token.RPAREN, token.RBRACKET, token.COMMA, token.COLON:
		return true
	default:
		return false
	}
}

// suppressNewlineInsertion reports whether a line terminator immediately
// before next should be ignored for ASI purposes — i.e. next can only
// ever continue the previous expression, never legally begin a new
// statement, so there is nothing for ASI to disambiguate.
//
// The original adapter's whitelist covered only '(' / '[' / '.' / '?' /
// ':' / '=>'. That omits every binary operator ('+', '/', '<', '&&', …),
// which produces exactly the false-positive semicolon insertion
// spec.md's scenario 6 rules out for "a\n/b/g" (prev_token_permits_regex
// already resolved the '/' to division, so it cannot start a new
// statement and must continue the previous expression). Binary and
// compound-assignment operators are added here to match that scenario
// and real ECMAScript ASI behaviour.
func suppressNewlineInsertion(next token.Type, nextStartsFunctionLiteral bool) bool {
	if next == token.LPAREN {
		return !nextStartsFunctionLiteral
	}
	if next == token.ARROW_HEAD {
		// An ARROW_HEAD is a '(' already confirmed to open an arrow
		// parameter list, never a function literal, so it is always
		// suppressed the same way a bare non-function '(' is.
		return true
	}
	switch next {
	case token.LBRACKET, token.RPAREN, token.DOT, token.QUESTION, token.COLON, token.ARROW,
		token.PLUS, token.MINUS, token.MULTIPLY, token.DIVIDE, token.MODULO, token.EXPONENT,
		token.LT, token.GT, token.LTE, token.GTE,
		token.EQ, token.NOT_EQ, token.EQ_STRICT, token.NOT_EQ_STRICT,
		token.AND, token.OR, token.BIT_AND, token.BIT_OR, token.BIT_XOR,
		token.LSHIFT, token.RSHIFT, token.URSHIFT,
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.MULTIPLY_ASSIGN,
		token.DIVIDE_ASSIGN, token.MODULO_ASSIGN, token.EXPONENT_ASSIGN,
		token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN,
		token.LSHIFT_ASSIGN, token.RSHIFT_ASSIGN, token.URSHIFT_ASSIGN,
		token.COMMA, token.INSTANCEOF, token.IN:
		return true
	default:
		return false
	}
}

// inStatementContext reports whether the token just consumed leaves the
// parser expecting a new statement — the condition that turns a following
// FUNCTION into FUNCTION_DECL instead of an expression.
func (e *Engine) inStatementContext() bool {
	if e.lastToken == token.ILLEGAL {
		return true // nothing scanned yet: start of program
	}
	if e.lastClosedControl {
		return true
	}
	switch e.lastToken {
	case token.SEMICOLON, token.LBRACE, token.RBRACE, token.ELSE, token.DO,
		token.FINALLY, token.TRY, token.CATCH, token.CASE, token.DEFAULT, token.EXPORT:
		return true
	default:
		return false
	}
}

func (e *Engine) shouldInsertSemicolon(next token.Type, newlineBefore, isEOF, nextStartsFunctionLiteral bool) bool {
	last := e.lastToken
	if last == token.ILLEGAL {
		return false
	}
	if last == token.SEMICOLON || last == token.LBRACE {
		return false
	}
	if e.lastClosedControl {
		return false
	}
	if e.lastClosedFunction {
		if next == token.LBRACE || next == token.LPAREN || next == token.LBRACKET || next == token.DOT {
			return false
		}
	}
	if e.lastClosedParen && next == token.ARROW {
		return false
	}
	if isRestrictedToken(last) {
		return newlineBefore || isEOF || next == token.RBRACE
	}
	if next == token.CATCH || next == token.FINALLY {
		return false
	}
	if last == token.RBRACE && (next == token.ELSE || next == token.WHILE) {
		return false
	}
	if !canEndStatement(last) {
		return false
	}
	if isEOF {
		return true
	}
	if next == token.RBRACE {
		if n := len(e.braceStack); n > 0 && e.braceStack[n-1] == BraceObject {
			return false // object literal braces stay within expressions
		}
		return true
	}
	if newlineBefore && next == token.LPAREN && nextStartsFunctionLiteral {
		return true
	}
	if newlineBefore && !suppressNewlineInsertion(next, nextStartsFunctionLiteral) && next != token.SEMICOLON {
		return true
	}
	return false
}

// updateTokenState advances the bracket/brace bookkeeping after tt is
// (about to be) handed to the parser.
func (e *Engine) updateTokenState(tt token.Type) {
	e.lastClosedControl = false
	e.lastClosedFunction = false
	e.lastClosedParen = false

	switch tt {
	case token.LPAREN:
		e.parenDepth++
		lastIsFunction := e.lastToken == token.FUNCTION || e.lastToken == token.FUNCTION_DECL
		prevIsFunction := e.prevToken == token.FUNCTION || e.prevToken == token.FUNCTION_DECL
		isNamedFunc := prevIsFunction && e.lastToken == token.IDENT
		if isNamedFunc || lastIsFunction {
			e.functionParenStack = append(e.functionParenStack, e.parenDepth)
		}
		if isControlKeyword(e.lastToken) {
			e.controlStack = append(e.controlStack, e.parenDepth)
		}

	case token.RPAREN:
		if e.parenDepth > 0 {
			if n := len(e.functionParenStack); n > 0 && e.functionParenStack[n-1] == e.parenDepth {
				e.functionParenStack = e.functionParenStack[:n-1]
				e.lastClosedFunction = true
				e.pendingFunctionBody = true
			}
			if n := len(e.controlStack); n > 0 && e.controlStack[n-1] == e.parenDepth {
				e.controlStack = e.controlStack[:n-1]
				e.lastClosedControl = true
			}
			e.parenDepth--
			e.lastClosedParen = true
		}

	case token.LBRACE:
		isBlock := true
		if e.lastToken != token.ILLEGAL {
			switch e.lastToken {
			case token.IF, token.ELSE, token.FOR, token.WHILE, token.DO, token.SWITCH,
				token.TRY, token.CATCH, token.FINALLY, token.WITH,
				token.FUNCTION, token.FUNCTION_DECL, token.CASE, token.DEFAULT,
				token.RPAREN, token.SEMICOLON, token.LBRACE, token.RBRACE, token.ARROW:
				isBlock = true
			case token.COLON:
				if n := len(e.braceStack); n > 0 && e.braceStack[n-1] == BraceObject {
					isBlock = false
				} else {
					isBlock = true
				}
			default:
				isBlock = false
			}
		}
		kind := BraceBlock
		if !isBlock {
			kind = BraceObject
		}
		if e.pendingFunctionBody {
			kind = BraceFunction
			e.pendingFunctionBody = false
		}
		e.braceStack = append(e.braceStack, kind)

	case token.RBRACE:
		if n := len(e.braceStack); n > 0 {
			kind := e.braceStack[n-1]
			e.braceStack = e.braceStack[:n-1]
			if kind == BraceFunction {
				e.lastClosedFunction = true
			}
		}
	}

	e.prevToken = e.lastToken
	e.lastToken = tt
}

func (e *Engine) enqueuePending(pt pendingToken) {
	if len(e.pending) >= pendingQueueCapacity {
		panic(&QueueOverflowError{Capacity: pendingQueueCapacity})
	}
	e.pending = append(e.pending, pt)
}

func (e *Engine) dequeuePending() (pendingToken, bool) {
	if len(e.pending) == 0 {
		return pendingToken{}, false
	}
	pt := e.pending[0]
	e.pending = e.pending[1:]
	return pt, true
}

// prependPending inserts pt ahead of whatever is already queued. Used only
// when a synthetic semicolon defers an ARROW_HEAD that was itself rewritten
// from '(' moments earlier in the same call: the real '(' is already at the
// back of the queue (re-queued with SkipArrowDetection), and ARROW_HEAD must
// still drain before it.
func (e *Engine) prependPending(pt pendingToken) {
	if len(e.pending) >= pendingQueueCapacity {
		panic(&QueueOverflowError{Capacity: pendingQueueCapacity})
	}
	e.pending = append([]pendingToken{pt}, e.pending...)
}

// lookaheadIsArrowHead decides, without disturbing the real lexer cursor,
// whether the '(' just consumed opens an arrow function's parameter list
// rather than a parenthesized expression: it scans forward (on a clone)
// to the matching ')' and checks for a following "=>".
func (e *Engine) lookaheadIsArrowHead() bool {
	snap := e.lex.Clone()
	depth := 1
	for depth > 0 {
		tk := snap.NextToken()
		if tk.Type == token.EOF || tk.Type == token.ILLEGAL {
			return false
		}
		switch tk.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				next := snap.NextToken()
				return next.Type == token.ARROW
			}
		}
	}
	return false
}

// parenStartsFunctionLiteral reports whether the token right after the
// '(' just consumed is the "function" keyword — used to decide whether a
// line terminator before '(' still permits ASI (it does when what follows
// is a function expression, since that can't continue the prior
// statement).
func (e *Engine) parenStartsFunctionLiteral() bool {
	snap := e.lex.Clone()
	next := snap.NextToken()
	return next.Type == token.FUNCTION
}

// Next returns the next adapter-level token. err is non-nil for a
// restricted-production violation (advisory: the token is still valid and
// the caller should keep parsing) or a lexical error (in which case the
// returned token is a synthesized EOF).
func (e *Engine) Next() (token.Token, error) {
	if e.lexErrEOF != nil {
		return *e.lexErrEOF, nil
	}
	if pt, ok := e.dequeuePending(); ok {
		if pt.SkipArrowDetection {
			e.skipArrowDetectionOnce = true
		}
		if pt.Token.Type != token.ARROW_HEAD {
			e.updateTokenState(pt.Token.Type)
		}
		e.newlineBeforeLast = pt.NewlineBefore
		return pt.Token, nil
	}

	tok := e.lex.NextToken()
	newlineBefore := e.lex.HasNewlineSincePreviousToken()
	isEOF := tok.Type == token.EOF

	if tok.Type == token.ILLEGAL {
		eof := token.Token{Type: token.EOF, Line: tok.Line, Column: tok.Column}
		e.lexErrEOF = &eof
		return eof, &LexicalError{Line: tok.Line, Column: tok.Column, Literal: tok.Literal}
	}

	mapped := tok.Type
	if mapped == token.IMPORT && !e.moduleMode {
		mapped = token.IDENT
	}
	if mapped == token.EXPORT && !e.moduleMode {
		mapped = token.IDENT
	}

	if mapped == token.ASYNC {
		e.asyncAllowsFunctionDecl = e.inStatementContext()
	} else if mapped == token.FUNCTION {
		if e.inStatementContext() || e.asyncAllowsFunctionDecl {
			mapped = token.FUNCTION_DECL
		}
		e.asyncAllowsFunctionDecl = false
	} else {
		e.asyncAllowsFunctionDecl = false
	}

	emitted := tok
	emitted.Type = mapped

	skipDetection := e.skipArrowDetectionOnce
	e.skipArrowDetectionOnce = false
	if mapped == token.LPAREN && !skipDetection && e.lookaheadIsArrowHead() {
		e.enqueuePending(pendingToken{Token: emitted, SkipArrowDetection: true, NewlineBefore: newlineBefore})
		mapped = token.ARROW_HEAD
		emitted = token.Token{Type: token.ARROW_HEAD, Line: tok.Line, Column: tok.Column}
	}

	nextStartsFunctionLiteral := mapped == token.LPAREN && e.parenStartsFunctionLiteral()

	var restrictedErr error
	if e.lastToken == token.YIELD && newlineBefore && !newlineAllowedAfterYield(mapped, isEOF) {
		restrictedErr = &RestrictedProductionError{Line: tok.Line, Column: tok.Column, Message: "line terminator not allowed after 'yield'"}
	}

	if e.shouldInsertSemicolon(mapped, newlineBefore, isEOF, nextStartsFunctionLiteral) {
		if mapped == token.ARROW_HEAD {
			// The real '(' was already queued (SkipArrowDetection) a few
			// lines up; ARROW_HEAD must drain before it, not after.
			e.prependPending(pendingToken{Token: emitted, NewlineBefore: newlineBefore})
		} else {
			e.enqueuePending(pendingToken{Token: emitted, NewlineBefore: newlineBefore})
		}
		e.updateTokenState(token.SEMICOLON)
		e.newlineBeforeLast = newlineBefore
		return token.Token{Type: token.SEMICOLON, Literal: ";", Line: tok.Line, Column: tok.Column}, restrictedErr
	}

	if mapped == token.ARROW && newlineBefore {
		restrictedErr = &RestrictedProductionError{Line: tok.Line, Column: tok.Column, Message: "line terminator not allowed before '=>'"}
	}

	if mapped != token.ARROW_HEAD {
		e.updateTokenState(mapped)
	}
	e.newlineBeforeLast = newlineBefore
	return emitted, restrictedErr
}

// ParenDepth exposes the current bracket nesting, used by tests asserting
// the invariant that it never goes negative and every stack's top entry
// never exceeds it.
func (e *Engine) ParenDepth() int { return e.parenDepth }

// PendingQueueLen exposes the current pending-token backlog for tests
// asserting it stays within capacity.
func (e *Engine) PendingQueueLen() int { return len(e.pending) }
