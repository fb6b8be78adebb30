package parser

import (
	"fmt"

	"github.com/xjslang/xjs-core/asi"
	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/lexer"
	"github.com/xjslang/xjs-core/token"
)

// Operator precedence levels, low to high, per spec.md §4.3.
const (
	_ int = iota
	LOWEST
	COMMA          // ,
	ASSIGNMENT     // = += -= *= /= %= **= &= |= ^= <<= >>= >>>=
	CONDITIONAL    // ?:
	LOGICAL_OR     // ||
	LOGICAL_AND    // &&
	BITWISE_OR     // |
	BITWISE_XOR    // ^
	BITWISE_AND    // &
	EQUALITY       // == != === !==
	RELATIONAL     // < <= > >= instanceof in
	SHIFT          // << >> >>>
	ADDITIVE       // + -
	MULTIPLICATIVE // * / %
	EXPONENTIAL    // ** (right-assoc)
	UNARY          // void typeof delete ! ~ + - ++ -- (prefix)
	POSTFIX        // ++ -- (postfix)
	CALL           // f(x)
	MEMBER         // obj.p  obj[p]  new
)

var precedences = map[token.Type]int{
	token.COMMA: COMMA,

	token.ASSIGN: ASSIGNMENT, token.PLUS_ASSIGN: ASSIGNMENT, token.MINUS_ASSIGN: ASSIGNMENT,
	token.MULTIPLY_ASSIGN: ASSIGNMENT, token.DIVIDE_ASSIGN: ASSIGNMENT, token.MODULO_ASSIGN: ASSIGNMENT,
	token.EXPONENT_ASSIGN: ASSIGNMENT, token.AND_ASSIGN: ASSIGNMENT, token.OR_ASSIGN: ASSIGNMENT,
	token.XOR_ASSIGN: ASSIGNMENT, token.LSHIFT_ASSIGN: ASSIGNMENT, token.RSHIFT_ASSIGN: ASSIGNMENT,
	token.URSHIFT_ASSIGN: ASSIGNMENT,

	token.QUESTION: CONDITIONAL,

	token.OR:  LOGICAL_OR,
	token.AND: LOGICAL_AND,

	token.BIT_OR:  BITWISE_OR,
	token.BIT_XOR: BITWISE_XOR,
	token.BIT_AND: BITWISE_AND,

	token.EQ: EQUALITY, token.NOT_EQ: EQUALITY, token.EQ_STRICT: EQUALITY, token.NOT_EQ_STRICT: EQUALITY,

	token.LT: RELATIONAL, token.GT: RELATIONAL, token.LTE: RELATIONAL, token.GTE: RELATIONAL,
	token.INSTANCEOF: RELATIONAL, token.IN: RELATIONAL,

	token.LSHIFT: SHIFT, token.RSHIFT: SHIFT, token.URSHIFT: SHIFT,

	token.PLUS: ADDITIVE, token.MINUS: ADDITIVE,

	token.MULTIPLY: MULTIPLICATIVE, token.DIVIDE: MULTIPLICATIVE, token.MODULO: MULTIPLICATIVE,

	token.EXPONENT: EXPONENTIAL,

	token.PLUS_PLUS: POSTFIX, token.MINUS_MINUS: POSTFIX,

	token.LPAREN: CALL,

	// A template literal directly following any expression tags it
	// ("tag`x`", "a.b`x`"); binds at CALL so it chains like a call does.
	token.TEMPLATE_NO_SUB: CALL, token.TEMPLATE_HEAD: CALL,

	token.DOT: MEMBER, token.LBRACKET: MEMBER, token.OPTIONAL_CHAIN: MEMBER,

	// A bare identifier followed by "=>" is a single-parameter arrow head;
	// parenthesized heads are pre-resolved to ARROW_HEAD by package asi.
	token.ARROW: ASSIGNMENT,
}

// rightAssociative holds the operators whose right operand is parsed with
// precedence-1 instead of precedence, so a same-precedence operator to its
// right recurses into it instead of returning to the outer climbing loop.
var rightAssociative = map[token.Type]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.MULTIPLY_ASSIGN: true, token.DIVIDE_ASSIGN: true, token.MODULO_ASSIGN: true,
	token.EXPONENT_ASSIGN: true, token.AND_ASSIGN: true, token.OR_ASSIGN: true,
	token.XOR_ASSIGN: true, token.LSHIFT_ASSIGN: true, token.RSHIFT_ASSIGN: true,
	token.URSHIFT_ASSIGN: true, token.EXPONENT: true, token.ARROW: true,
}

// Parser is a Pratt (top-down operator precedence) parser reading from an
// ASI-adapted token stream.
type Parser struct {
	eng *asi.Engine

	cur  token.Token
	peek token.Token

	errors   []ParserError
	tolerant bool

	// noIn suppresses 'in' as a RELATIONAL infix operator while parsing a
	// for-statement head, per spec.md §4.3.
	noIn bool

	prefixParseFns map[token.Type]func() ast.Expression
	infixParseFns  map[token.Type]func(ast.Expression) ast.Expression
}

// New creates a Parser reading source in script mode (import/export
// degrade to identifiers). Use NewModule for module mode.
func New(input string) *Parser {
	return newWithEngine(asi.New(lexer.New(input), false), false)
}

// NewModule creates a Parser with import/export recognized as keywords.
func NewModule(input string) *Parser {
	return newWithEngine(asi.New(lexer.New(input), true), false)
}

// NewTolerant creates a Parser that recovers from syntax errors at
// statement boundaries instead of stopping at the first one, per
// SPEC_FULL.md §4 (expansion: error recovery).
func NewTolerant(input string, moduleMode bool) *Parser {
	return newWithEngine(asi.New(lexer.New(input), moduleMode), true)
}

func newWithEngine(eng *asi.Engine, tolerant bool) *Parser {
	p := &Parser{eng: eng, tolerant: tolerant}

	p.prefixParseFns = map[token.Type]func() ast.Expression{
		token.IDENT:           p.parseIdentifierExpr,
		token.NUMBER:          p.parseNumberLiteral,
		token.STRING:          p.parseStringLiteral,
		token.REGEX:           p.parseRegexLiteral,
		token.TRUE:            p.parseBooleanLiteral,
		token.FALSE:           p.parseBooleanLiteral,
		token.NULL:            p.parseNullLiteral,
		token.THIS:            p.parseThisExpression,
		token.SUPER:           p.parseSuperExpression,
		token.TEMPLATE_NO_SUB: p.parseTemplateLiteral,
		token.TEMPLATE_HEAD:   p.parseTemplateLiteral,
		token.NOT:             p.parseUnaryExpression,
		token.BIT_NOT:         p.parseUnaryExpression,
		token.PLUS:            p.parseUnaryExpression,
		token.MINUS:           p.parseUnaryExpression,
		token.PLUS_PLUS:       p.parseUnaryExpression,
		token.MINUS_MINUS:     p.parseUnaryExpression,
		token.TYPEOF:          p.parseUnaryExpression,
		token.VOID:            p.parseUnaryExpression,
		token.DELETE:          p.parseUnaryExpression,
		token.AWAIT:           p.parseAwaitExpression,
		token.YIELD:           p.parseYieldExpression,
		token.NEW:             p.parseNewExpression,
		token.LPAREN:          p.parseGroupedExpression,
		token.ARROW_HEAD:      p.parseArrowFunction,
		token.LBRACKET:        p.parseArrayLiteral,
		token.LBRACE:          p.parseObjectLiteral,
		token.FUNCTION:        p.parseFunctionExpression,
		token.FUNCTION_DECL:   p.parseFunctionExpression,
		token.CLASS:           p.parseClassExpression,
		token.ELLIPSIS:        p.parseSpreadElement,
		token.ASYNC:           p.parseAsyncExpression,
	}

	p.infixParseFns = map[token.Type]func(ast.Expression) ast.Expression{
		token.COMMA:           p.parseSequenceExpression,
		token.ASSIGN:          p.parseAssignmentExpression,
		token.PLUS_ASSIGN:     p.parseAssignmentExpression,
		token.MINUS_ASSIGN:    p.parseAssignmentExpression,
		token.MULTIPLY_ASSIGN: p.parseAssignmentExpression,
		token.DIVIDE_ASSIGN:   p.parseAssignmentExpression,
		token.MODULO_ASSIGN:   p.parseAssignmentExpression,
		token.EXPONENT_ASSIGN: p.parseAssignmentExpression,
		token.AND_ASSIGN:      p.parseAssignmentExpression,
		token.OR_ASSIGN:       p.parseAssignmentExpression,
		token.XOR_ASSIGN:      p.parseAssignmentExpression,
		token.LSHIFT_ASSIGN:   p.parseAssignmentExpression,
		token.RSHIFT_ASSIGN:   p.parseAssignmentExpression,
		token.URSHIFT_ASSIGN:  p.parseAssignmentExpression,
		token.QUESTION:        p.parseConditionalExpression,
		token.OR:              p.parseBinaryExpression,
		token.AND:             p.parseBinaryExpression,
		token.BIT_OR:          p.parseBinaryExpression,
		token.BIT_XOR:         p.parseBinaryExpression,
		token.BIT_AND:         p.parseBinaryExpression,
		token.EQ:              p.parseBinaryExpression,
		token.NOT_EQ:          p.parseBinaryExpression,
		token.EQ_STRICT:       p.parseBinaryExpression,
		token.NOT_EQ_STRICT:   p.parseBinaryExpression,
		token.LT:              p.parseBinaryExpression,
		token.GT:              p.parseBinaryExpression,
		token.LTE:             p.parseBinaryExpression,
		token.GTE:             p.parseBinaryExpression,
		token.INSTANCEOF:      p.parseBinaryExpression,
		token.IN:              p.parseBinaryExpression,
		token.LSHIFT:          p.parseBinaryExpression,
		token.RSHIFT:          p.parseBinaryExpression,
		token.URSHIFT:         p.parseBinaryExpression,
		token.PLUS:            p.parseBinaryExpression,
		token.MINUS:           p.parseBinaryExpression,
		token.MULTIPLY:        p.parseBinaryExpression,
		token.DIVIDE:          p.parseBinaryExpression,
		token.MODULO:          p.parseBinaryExpression,
		token.EXPONENT:        p.parseBinaryExpression,
		token.PLUS_PLUS:       p.parsePostfixExpression,
		token.MINUS_MINUS:     p.parsePostfixExpression,
		token.LPAREN:          p.parseCallExpression,
		token.DOT:             p.parseMemberExpression,
		token.OPTIONAL_CHAIN:  p.parseMemberExpression,
		token.LBRACKET:        p.parseComputedMemberExpression,
		token.ARROW:           p.parseArrowFromIdentifier,
		token.TEMPLATE_NO_SUB: p.parseTaggedTemplate,
		token.TEMPLATE_HEAD:   p.parseTaggedTemplate,
	}

	// prime cur/peek
	p.advance()
	p.advance()
	return p
}

// Errors returns every diagnostic recorded during the parse.
func (p *Parser) Errors() []ParserError { return p.errors }

func (p *Parser) addError(msg string, tok token.Token) {
	p.errors = append(p.errors, ParserError{Message: msg, Position: Position{Line: tok.Line, Column: tok.Column}})
}

// advance pulls the next token from the engine into peek, shifting the old
// peek into cur. Restricted-production advisories and lexical errors
// surfaced by the engine are folded into the parser's own error list.
func (p *Parser) advance() {
	p.cur = p.peek
	tok, err := p.eng.Next()
	p.peek = tok
	if err != nil {
		switch e := err.(type) {
		case *asi.LexicalError:
			p.addError(e.Error(), tok)
		case *asi.RestrictedProductionError:
			p.addError(e.Error(), tok)
		default:
			p.addError(err.Error(), tok)
		}
	}
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		if p.noIn && p.cur.Type == token.IN {
			return LOWEST
		}
		return prec
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		if p.noIn && p.peek.Type == token.IN {
			return LOWEST
		}
		return prec
	}
	return LOWEST
}

// expectPeek requires peek to have type tt, advancing onto it if so.
func (p *Parser) expectPeek(tt token.Type) bool {
	if p.peek.Type == tt {
		p.advance()
		return true
	}
	p.addError(fmt.Sprintf("expected %s, got %s", tt, p.peek.Type), p.peek)
	return false
}

// consumeSemicolon accepts an explicit ';' or relies on the engine's own
// ASI (a synthetic ';' is already a real SEMICOLON token by the time it
// reaches here). A missing terminator is recorded as an error in both
// modes; in tolerant mode it does not end the parse (see ParseProgram).
func (p *Parser) consumeSemicolon() {
	if p.peek.Type == token.SEMICOLON {
		p.advance()
		return
	}
	p.addError(fmt.Sprintf("expected ';', got %s", p.peek.Type), p.peek)
}

// ParseProgram parses the entire input and returns the resulting Program
// along with the distinct-error count, which is the authoritative
// PASS/FAIL signal per spec.md §4.3. A strict parser (New, NewModule)
// stops after the first top-level statement that records an error; a
// tolerant one (NewTolerant) continues to the end of the input.
func (p *Parser) ParseProgram() (*ast.Program, int) {
	prog := &ast.Program{}
	for p.cur.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if !p.tolerant && len(p.errors) > 0 {
			break
		}
		p.advance()
	}
	return prog, len(p.errors)
}

// recoverToStatementBoundary discards tokens until one that can start a new
// statement, a ';', or a '}' is current — used by tolerant-mode recovery
// after a statement-level parse failure.
func (p *Parser) recoverToStatementBoundary() {
	for p.cur.Type != token.EOF {
		if p.cur.Type == token.SEMICOLON || p.cur.Type == token.RBRACE {
			return
		}
		if startsStatement(p.peek.Type) {
			p.advance()
			return
		}
		p.advance()
	}
}

func startsStatement(tt token.Type) bool {
	switch tt {
	case token.VAR, token.LET, token.CONST, token.FUNCTION, token.FUNCTION_DECL,
		token.IF, token.FOR, token.WHILE, token.DO, token.RETURN, token.BREAK,
		token.CONTINUE, token.SWITCH, token.TRY, token.THROW, token.CLASS,
		token.IMPORT, token.EXPORT, token.WITH, token.LBRACE, token.SEMICOLON,
		token.ASYNC, token.DEBUGGER:
		return true
	default:
		return false
	}
}
