package parser

import (
	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/token"
)

// parseArrowFunction handles the parenthesized-head form. Package asi has
// already rewritten the opening '(' to ARROW_HEAD once it confirmed the
// matching ')' is followed by "=>", and re-queued the real '(' to be the
// very next token, so parseParamList sees an ordinary-looking LPAREN.
func (p *Parser) parseArrowFunction() ast.Expression {
	t := p.cur
	p.advance()
	fn := at(&ast.ArrowFunctionExpression{}, t)
	fn.Params = p.parseParamList()
	if !p.expectPeek(token.ARROW) {
		return fn
	}
	p.advance()
	if p.cur.Type == token.LBRACE {
		fn.Body = p.parseBlockStatement()
	} else {
		fn.ExpressionBody = true
		fn.Body = p.parseAssignExpression()
	}
	return fn
}

// parseArrowFromIdentifier handles the unparenthesized single-parameter
// form "x => expr", reached via the infix table when a bare identifier is
// immediately followed by "=>".
func (p *Parser) parseArrowFromIdentifier(left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.addError("left side of '=>' must be a single identifier or parenthesized parameter list", p.cur)
		return left
	}
	t := p.cur
	fn := at(&ast.ArrowFunctionExpression{Params: []ast.Node{ident}}, t)
	p.advance()
	if p.cur.Type == token.LBRACE {
		fn.Body = p.parseBlockStatement()
	} else {
		fn.ExpressionBody = true
		fn.Body = p.parseAssignExpression()
	}
	return fn
}

// parseAsyncExpression consumes a leading "async" and dispatches to
// whichever function form follows: a function expression, a parenthesized
// arrow head, or a bare single-parameter arrow.
func (p *Parser) parseAsyncExpression() ast.Expression {
	switch p.peek.Type {
	case token.FUNCTION, token.FUNCTION_DECL:
		p.advance()
		fn := p.parseFunctionExpression().(*ast.FunctionExpression)
		fn.Async = true
		return fn
	case token.ARROW_HEAD:
		p.advance()
		fn := p.parseArrowFunction().(*ast.ArrowFunctionExpression)
		fn.Async = true
		return fn
	case token.IDENT:
		p.advance()
		ident := at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
		if !p.expectPeek(token.ARROW) {
			return ident
		}
		fn := p.parseArrowFromIdentifier(ident).(*ast.ArrowFunctionExpression)
		fn.Async = true
		return fn
	default:
		return at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	}
}

// parseParamList parses a parenthesized parameter list; cur must be on the
// opening '(' when called, and is left on the closing ')'.
func (p *Parser) parseParamList() []ast.Node {
	var params []ast.Node
	if p.peek.Type == token.RPAREN {
		p.advance()
		return params
	}
	p.advance()
	params = append(params, p.parseParam())
	for p.peek.Type == token.COMMA {
		p.advance()
		p.advance()
		params = append(params, p.parseParam())
	}
	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseParam() ast.Node {
	if p.cur.Type == token.ELLIPSIS {
		t := p.cur
		p.advance()
		return at(&ast.RestElement{Argument: p.parseBindingTarget()}, t)
	}
	t := p.cur
	target := p.parseBindingTarget()
	if p.peek.Type == token.ASSIGN {
		p.advance()
		p.advance()
		return at(&ast.Param{Target: target, Default: p.parseAssignExpression()}, t)
	}
	return target
}
