package parser

import (
	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/token"
)

func (p *Parser) parseClassDeclaration() *ast.ClassDeclaration {
	t := p.cur
	decl := at(&ast.ClassDeclaration{}, t)
	if p.peek.Type == token.IDENT {
		p.advance()
		decl.Name = at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	}
	if p.peek.Type == token.EXTENDS {
		p.advance()
		p.advance()
		decl.SuperClass = p.parseExpression(MEMBER)
	}
	if !p.expectPeek(token.LBRACE) {
		return decl
	}
	decl.Body = p.parseClassBody()
	return decl
}

func (p *Parser) parseClassExpression() ast.Expression {
	t := p.cur
	expr := at(&ast.ClassExpression{}, t)
	if p.peek.Type == token.IDENT {
		p.advance()
		expr.Name = at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	}
	if p.peek.Type == token.EXTENDS {
		p.advance()
		p.advance()
		expr.SuperClass = p.parseExpression(MEMBER)
	}
	if !p.expectPeek(token.LBRACE) {
		return expr
	}
	expr.Body = p.parseClassBody()
	return expr
}

// parseClassBody parses the brace-delimited sequence of method/accessor
// definitions; cur is on the opening '{' when called and is left on the
// closing '}'.
func (p *Parser) parseClassBody() []*ast.MethodDefinition {
	var members []*ast.MethodDefinition
	p.advance()
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		if p.cur.Type == token.SEMICOLON {
			p.advance()
			continue
		}
		members = append(members, p.parseMethodDefinition())
		p.advance()
	}
	return members
}

func (p *Parser) parseMethodDefinition() *ast.MethodDefinition {
	m := at(&ast.MethodDefinition{}, p.cur)

	if p.cur.Literal == "static" && p.cur.Type == token.IDENT && p.peek.Type != token.LPAREN {
		m.Static = true
		p.advance()
	}
	if p.cur.Type == token.MULTIPLY {
		m.Generator = true
		p.advance()
	}
	if p.cur.Literal == "async" && p.cur.Type == token.ASYNC && p.peek.Type != token.LPAREN {
		m.Async = true
		p.advance()
		if p.cur.Type == token.MULTIPLY {
			m.Generator = true
			p.advance()
		}
	}
	if (p.cur.Literal == "get" || p.cur.Literal == "set") && p.cur.Type == token.IDENT && p.peek.Type != token.LPAREN {
		if p.cur.Literal == "get" {
			m.Kind = ast.MethodGet
		} else {
			m.Kind = ast.MethodSet
		}
		p.advance()
	}

	switch p.cur.Type {
	case token.LBRACKET:
		m.Computed = true
		p.advance()
		m.Key = p.parseAssignExpression()
		p.expectPeek(token.RBRACKET)
	case token.STRING:
		m.Key = at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
	case token.NUMBER:
		m.Key = at(&ast.NumberLiteral{Raw: p.cur.Literal}, p.cur)
	default:
		name := p.cur.Literal
		if name == "constructor" && m.Kind == ast.MethodNormal {
			m.Kind = ast.MethodConstructor
		}
		m.Key = at(&ast.Identifier{Name: name}, p.cur)
	}

	m.Function = p.parseMethodFunction(m.Generator, m.Async)
	return m
}
