package parser

import (
	"fmt"

	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/token"
)

// tokSetter is satisfied by every *ast.<Node> type via the promoted
// SetTok method on their embedded (unexported) position field.
type tokSetter interface {
	SetTok(token.Token)
}

// at stamps a freshly built node with its leading token and returns it,
// letting constructors read as a single expression instead of a
// build-then-assign pair.
func at[T tokSetter](n T, t token.Token) T {
	n.SetTok(t)
	return n
}

// parseExpression is the Pratt climbing loop: it parses a prefix
// expression for cur, then repeatedly folds in an infix/postfix operator
// as long as its precedence exceeds floor.
func (p *Parser) parseExpression(floor int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.addError(fmt.Sprintf("unexpected token %s in expression", p.cur.Type), p.cur)
		return nil
	}
	left := prefix()

	for p.peek.Type != token.SEMICOLON && floor < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

// parseAssignExpression parses a single assignment-level expression,
// excluding the top-level comma operator — the form used for call
// arguments, array/object literal elements, and default values.
func (p *Parser) parseAssignExpression() ast.Expression {
	return p.parseExpression(ASSIGNMENT - 1)
}

// ---- literals & simple primaries ----

func (p *Parser) parseIdentifierExpr() ast.Expression {
	return at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	return at(&ast.NumberLiteral{Raw: p.cur.Literal}, p.cur)
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
}

func (p *Parser) parseRegexLiteral() ast.Expression {
	return at(&ast.RegexLiteral{Raw: p.cur.Literal}, p.cur)
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return at(&ast.BooleanLiteral{Value: p.cur.Type == token.TRUE}, p.cur)
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return at(&ast.NullLiteral{}, p.cur)
}

func (p *Parser) parseThisExpression() ast.Expression {
	return at(&ast.ThisExpression{}, p.cur)
}

func (p *Parser) parseSuperExpression() ast.Expression {
	return at(&ast.SuperExpression{}, p.cur)
}

// parseTemplateLiteral consumes a TEMPLATE_NO_SUB (no substitutions) or a
// TEMPLATE_HEAD followed by alternating expression/TEMPLATE_MIDDLE pairs
// and a closing TEMPLATE_TAIL.
func (p *Parser) parseTemplateLiteral() ast.Expression {
	lit := at(&ast.TemplateLiteral{}, p.cur)
	quasi := at(&ast.TemplateElement{Raw: p.cur.Literal, Tail: p.cur.Type == token.TEMPLATE_NO_SUB}, p.cur)
	lit.Quasis = append(lit.Quasis, quasi)
	for !quasi.Tail {
		p.advance()
		lit.Expressions = append(lit.Expressions, p.parseExpression(LOWEST))
		if p.peek.Type == token.TEMPLATE_MIDDLE || p.peek.Type == token.TEMPLATE_TAIL {
			p.advance()
		} else {
			p.addError(fmt.Sprintf("expected %s, got %s", token.TEMPLATE_TAIL, p.peek.Type), p.peek)
			break
		}
		quasi = at(&ast.TemplateElement{Raw: p.cur.Literal, Tail: p.cur.Type == token.TEMPLATE_TAIL}, p.cur)
		lit.Quasis = append(lit.Quasis, quasi)
	}
	return lit
}

// parseTaggedTemplate is the infix handler for TEMPLATE_NO_SUB/TEMPLATE_HEAD:
// any expression directly followed by a template literal is that literal's
// tag, not just a member/call chain ("tag`x`", "a.b`x`", "f()`x`").
func (p *Parser) parseTaggedTemplate(tag ast.Expression) ast.Expression {
	quasi := p.parseTemplateLiteral().(*ast.TemplateLiteral)
	return at(&ast.TaggedTemplateExpression{Tag: tag, Quasi: quasi}, tag.Tok())
}

// ---- prefix operators ----

func (p *Parser) parseUnaryExpression() ast.Expression {
	operator := p.cur.Literal
	opTok := p.cur
	switch opTok.Type {
	case token.PLUS_PLUS, token.MINUS_MINUS:
		p.advance()
		return at(&ast.UpdateExpression{Operator: operator, Argument: p.parseExpression(UNARY), Prefix: true}, opTok)
	default:
		p.advance()
		return at(&ast.UnaryExpression{Operator: operator, Argument: p.parseExpression(UNARY)}, opTok)
	}
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	t := p.cur
	p.advance()
	return at(&ast.AwaitExpression{Argument: p.parseExpression(UNARY)}, t)
}

// parseYieldExpression handles bare "yield", "yield expr", and the
// delegating "yield* expr" form.
func (p *Parser) parseYieldExpression() ast.Expression {
	t := p.cur
	delegate := false
	if p.peek.Type == token.MULTIPLY {
		p.advance()
		delegate = true
	}
	y := at(&ast.YieldExpression{Delegate: delegate}, t)
	switch p.peek.Type {
	case token.SEMICOLON, token.RBRACE, token.RPAREN, token.RBRACKET, token.COMMA, token.COLON, token.EOF:
		return y
	}
	p.advance()
	y.Argument = p.parseExpression(ASSIGNMENT - 1)
	return y
}

func (p *Parser) parseNewExpression() ast.Expression {
	t := p.cur
	p.advance()
	// Parse at CALL floor: DOT/LBRACKET (precedence MEMBER, above floor)
	// fold into the callee chain as usual, but a following '(' sits at
	// exactly CALL and is excluded, so "new f(a)" doesn't have its own
	// argument list swallowed as a plain call before New ever sees it.
	// The explicit LPAREN check below then claims that argument list for
	// the New node itself; anything after (".g()" in "new f().g()")
	// applies to the finished NewExpression via the caller's own
	// climbing loop.
	callee := p.parseExpression(CALL)
	n := at(&ast.NewExpression{Callee: callee}, t)
	if p.peek.Type == token.LPAREN {
		p.advance()
		n.Arguments = p.parseArgumentList(token.RPAREN)
	}
	return n
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseSpreadElement() ast.Expression {
	t := p.cur
	p.advance()
	return at(&ast.SpreadElement{Argument: p.parseAssignExpression()}, t)
}

// ---- array / object literals ----

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := at(&ast.ArrayLiteral{}, p.cur)
	if p.peek.Type == token.RBRACKET {
		p.advance()
		return arr
	}
	for {
		p.advance()
		if p.cur.Type == token.COMMA {
			arr.Elements = append(arr.Elements, at(&ast.ArrayHole{}, p.cur))
			continue
		}
		if p.cur.Type == token.ELLIPSIS {
			arr.Elements = append(arr.Elements, p.parseSpreadElement())
		} else {
			arr.Elements = append(arr.Elements, p.parseAssignExpression())
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
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	obj := at(&ast.ObjectLiteral{}, p.cur)
	if p.peek.Type == token.RBRACE {
		p.advance()
		return obj
	}
	for {
		p.advance()
		if p.cur.Type == token.ELLIPSIS {
			obj.Properties = append(obj.Properties, p.parseSpreadElement())
		} else {
			obj.Properties = append(obj.Properties, p.parseObjectProperty())
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
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return obj
}

// parseObjectProperty parses one "key: value", shorthand "key", method
// shorthand "key(params){...}", or get/set accessor entry.
func (p *Parser) parseObjectProperty() ast.Node {
	prop := at(&ast.Property{}, p.cur)

	if (p.cur.Literal == "get" || p.cur.Literal == "set") && p.cur.Type == token.IDENT &&
		p.peek.Type != token.COLON && p.peek.Type != token.COMMA && p.peek.Type != token.RBRACE && p.peek.Type != token.LPAREN {
		kind := ast.MethodGet
		if p.cur.Literal == "set" {
			kind = ast.MethodSet
		}
		prop.Kind = kind
		prop.Method = true
		p.advance()
		prop.Key = p.parsePropertyKey(prop)
		prop.Value = p.parseMethodFunction(false, false)
		return prop
	}

	key := p.parsePropertyKey(prop)
	prop.Key = key

	if p.peek.Type == token.LPAREN {
		prop.Method = true
		prop.Value = p.parseMethodFunction(false, false)
		return prop
	}

	if p.peek.Type != token.COLON {
		// shorthand: { a } or { a = default } (the latter only legal in a
		// destructuring target, reinterpreted by toAssignmentTarget when this
		// literal is used as an assignment pattern).
		if ident, ok := key.(*ast.Identifier); ok {
			prop.Shorthand = true
			if p.peek.Type == token.ASSIGN {
				p.advance()
				assignTok := p.cur
				p.advance()
				def := p.parseAssignExpression()
				prop.Value = at(&ast.AssignmentExpression{Operator: "=", Left: ident, Right: def}, assignTok)
			} else {
				prop.Value = ident
			}
			return prop
		}
	}

	p.expectPeek(token.COLON)
	p.advance()
	prop.Value = p.parseAssignExpression()
	return prop
}

func (p *Parser) parsePropertyKey(prop *ast.Property) ast.Node {
	switch p.cur.Type {
	case token.LBRACKET:
		prop.Computed = true
		p.advance()
		key := p.parseAssignExpression()
		p.expectPeek(token.RBRACKET)
		return key
	case token.STRING:
		return at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
	case token.NUMBER:
		return at(&ast.NumberLiteral{Raw: p.cur.Literal}, p.cur)
	default:
		return at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	}
}

// parseMethodFunction parses "(params) { body }" for a method/accessor
// definition, cur sitting on the key when called.
func (p *Parser) parseMethodFunction(generator, async bool) *ast.FunctionExpression {
	fn := at(&ast.FunctionExpression{Generator: generator, Async: async}, p.cur)
	if !p.expectPeek(token.LPAREN) {
		return fn
	}
	fn.Params = p.parseParamList()
	if !p.expectPeek(token.LBRACE) {
		return fn
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

// ---- binary / assignment / conditional / sequence ----

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	t := p.cur
	operator := p.cur.Literal
	precedence := p.curPrecedence()
	if rightAssociative[p.cur.Type] {
		precedence--
	}
	p.advance()
	right := p.parseExpression(precedence)
	return at(&ast.BinaryExpression{Operator: operator, Left: left, Right: right}, t)
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	t := p.cur
	operator := p.cur.Literal
	p.advance()
	right := p.parseExpression(ASSIGNMENT - 1)
	return at(&ast.AssignmentExpression{Operator: operator, Left: toAssignmentTarget(left), Right: right}, t)
}

func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	t := p.cur
	p.advance()
	consequent := p.parseExpression(ASSIGNMENT - 1)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.advance()
	alternate := p.parseExpression(ASSIGNMENT - 1)
	return at(&ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}, t)
}

// parseSequenceExpression folds a comma-joined run of expressions flat,
// per spec.md §4.4.5.
func (p *Parser) parseSequenceExpression(left ast.Expression) ast.Expression {
	t := p.cur
	p.advance()
	right := p.parseExpression(COMMA)
	return makeSequence(t, left, right)
}

func makeSequence(t token.Token, left, right ast.Expression) ast.Expression {
	if seq, ok := left.(*ast.SequenceExpression); ok {
		seq.Expressions = append(seq.Expressions, right)
		return seq
	}
	return at(&ast.SequenceExpression{Expressions: []ast.Expression{left, right}}, t)
}

// ---- postfix / call / member chain ----

func (p *Parser) parsePostfixExpression(left ast.Expression) ast.Expression {
	return at(&ast.UpdateExpression{Operator: p.cur.Literal, Argument: left, Prefix: false}, p.cur)
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	t := p.cur
	args := p.parseArgumentList(token.RPAREN)
	return at(&ast.CallExpression{Callee: callee, Arguments: args}, t)
}

func (p *Parser) parseArgumentList(end token.Type) []ast.Expression {
	var args []ast.Expression
	if p.peek.Type == end {
		p.advance()
		return args
	}
	p.advance()
	args = append(args, p.parseArgument())
	for p.peek.Type == token.COMMA {
		p.advance()
		p.advance()
		args = append(args, p.parseArgument())
	}
	p.expectPeek(end)
	return args
}

func (p *Parser) parseArgument() ast.Expression {
	if p.cur.Type == token.ELLIPSIS {
		return p.parseSpreadElement()
	}
	return p.parseAssignExpression()
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	t := p.cur
	optional := p.cur.Type == token.OPTIONAL_CHAIN
	if !token.IsIdentifierName(p.peek.Type) {
		p.addError(fmt.Sprintf("expected property name, got %s", p.peek.Type), p.peek)
		return nil
	}
	p.advance()
	prop := at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	return at(&ast.MemberExpression{Object: object, Property: prop, Optional: optional}, t)
}

func (p *Parser) parseComputedMemberExpression(object ast.Expression) ast.Expression {
	t := p.cur
	p.advance()
	prop := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return at(&ast.MemberExpression{Object: object, Property: prop, Computed: true}, t)
}
