package parser

import (
	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/token"
)

// parseBindingTarget parses a binding target in declaration/parameter/catch
// position: a plain identifier or an object/array destructuring pattern.
func (p *Parser) parseBindingTarget() ast.BindingTarget {
	switch p.cur.Type {
	case token.LBRACE:
		return p.parseObjectBindingPattern()
	case token.LBRACKET:
		return p.parseArrayBindingPattern()
	default:
		return at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	}
}

func (p *Parser) parseObjectBindingPattern() *ast.ObjectBindingPattern {
	pat := at(&ast.ObjectBindingPattern{}, p.cur)
	if p.peek.Type == token.RBRACE {
		p.advance()
		return pat
	}
	for {
		p.advance()
		if p.cur.Type == token.ELLIPSIS {
			t := p.cur
			p.advance()
			pat.Properties = append(pat.Properties, at(&ast.BindingProperty{
				Value: at(&ast.RestElement{Argument: p.parseBindingTarget()}, t),
			}, t))
		} else {
			pat.Properties = append(pat.Properties, p.parseBindingProperty())
		}
		if p.peek.Type == token.COMMA {
			p.advance()
			if p.peek.Type == token.RBRACE {
				break
			}
			continue
		}
		break
	}
	p.expectPeek(token.RBRACE)
	return pat
}

func (p *Parser) parseBindingProperty() *ast.BindingProperty {
	prop := at(&ast.BindingProperty{}, p.cur)
	if p.cur.Type == token.LBRACKET {
		prop.Computed = true
		p.advance()
		prop.Key = p.parseAssignExpression()
		p.expectPeek(token.RBRACKET)
	} else if p.cur.Type == token.STRING {
		prop.Key = at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
	} else {
		prop.Key = at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	}

	if p.peek.Type != token.COLON {
		prop.Shorthand = true
		ident, _ := prop.Key.(*ast.Identifier)
		if p.peek.Type == token.ASSIGN {
			p.advance()
			t := p.cur
			p.advance()
			prop.Value = at(&ast.Param{Target: ident, Default: p.parseAssignExpression()}, t)
		} else {
			prop.Value = ident
		}
		return prop
	}

	p.advance() // ':'
	p.advance()
	target := p.parseBindingTarget()
	if p.peek.Type == token.ASSIGN {
		t := p.cur
		p.advance()
		p.advance()
		prop.Value = at(&ast.Param{Target: target, Default: p.parseAssignExpression()}, t)
		return prop
	}
	prop.Value = target
	return prop
}

func (p *Parser) parseArrayBindingPattern() *ast.ArrayBindingPattern {
	pat := at(&ast.ArrayBindingPattern{}, p.cur)
	if p.peek.Type == token.RBRACKET {
		p.advance()
		return pat
	}
	for {
		p.advance()
		if p.cur.Type == token.COMMA {
			pat.Elements = append(pat.Elements, at(&ast.ArrayHole{}, p.cur))
			continue
		}
		if p.cur.Type == token.ELLIPSIS {
			t := p.cur
			p.advance()
			pat.Elements = append(pat.Elements, at(&ast.RestElement{Argument: p.parseBindingTarget()}, t))
		} else {
			t := p.cur
			target := p.parseBindingTarget()
			if p.peek.Type == token.ASSIGN {
				p.advance()
				p.advance()
				pat.Elements = append(pat.Elements, at(&ast.Param{Target: target, Default: p.parseAssignExpression()}, t))
			} else {
				pat.Elements = append(pat.Elements, target)
			}
		}
		if p.peek.Type == token.COMMA {
			p.advance()
			if p.peek.Type == token.RBRACKET {
				break
			}
			continue
		}
		break
	}
	p.expectPeek(token.RBRACKET)
	return pat
}

// toAssignmentTarget reinterprets an already-parsed expression as an
// assignment target, converting array/object literal shapes (which the
// expression grammar builds first, since a leading '{' or '[' is
// ambiguous between a literal and a pattern until the '=' is seen) into
// their destructuring-pattern equivalents. Per spec.md §4.4's destructuring
// helpers.
func toAssignmentTarget(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.ArrayLiteral:
		pat := &ast.ArrayBindingPattern{}
		pat.SetTok(e.Tok())
		for _, el := range e.Elements {
			pat.Elements = append(pat.Elements, arrayElementToTarget(el))
		}
		return pat
	case *ast.ObjectLiteral:
		pat := &ast.ObjectBindingPattern{}
		pat.SetTok(e.Tok())
		for _, prop := range e.Properties {
			pat.Properties = append(pat.Properties, propertyToBindingProperty(prop))
		}
		return pat
	default:
		return expr
	}
}

func arrayElementToTarget(el ast.Node) ast.Node {
	switch v := el.(type) {
	case *ast.ArrayHole:
		return v
	case *ast.SpreadElement:
		rest := &ast.RestElement{Argument: toAssignmentTarget(v.Argument)}
		rest.SetTok(v.Tok())
		return rest
	case *ast.AssignmentExpression:
		param := &ast.Param{Target: toAssignmentTarget(v.Left).(ast.BindingTarget), Default: v.Right}
		param.SetTok(v.Tok())
		return param
	case ast.Expression:
		return toAssignmentTarget(v)
	default:
		return el
	}
}

func propertyToBindingProperty(node ast.Node) *ast.BindingProperty {
	if spread, ok := node.(*ast.SpreadElement); ok {
		rest := &ast.RestElement{Argument: toAssignmentTarget(spread.Argument)}
		rest.SetTok(spread.Tok())
		bp := &ast.BindingProperty{Value: rest}
		bp.SetTok(spread.Tok())
		return bp
	}
	prop := node.(*ast.Property)
	bp := &ast.BindingProperty{Key: prop.Key, Computed: prop.Computed, Shorthand: prop.Shorthand}
	bp.SetTok(prop.Tok())
	if assign, ok := prop.Value.(*ast.AssignmentExpression); ok {
		param := &ast.Param{Target: toAssignmentTarget(assign.Left).(ast.BindingTarget), Default: assign.Right}
		param.SetTok(assign.Tok())
		bp.Value = param
	} else {
		bp.Value = toAssignmentTarget(prop.Value)
	}
	return bp
}
