package parser

import (
	"fmt"

	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/token"
)

// parseStatement dispatches on the current token to the matching statement
// parser. In tolerant mode a nil result (a recorded error) resyncs at the
// next statement boundary instead of aborting the whole parse.
func (p *Parser) parseStatement() ast.Statement {
	var stmt ast.Statement
	switch p.cur.Type {
	case token.SEMICOLON:
		stmt = at(&ast.EmptyStatement{}, p.cur)
	case token.DEBUGGER:
		stmt = at(&ast.DebuggerStatement{}, p.cur)
		p.consumeSemicolon()
	case token.VAR, token.LET, token.CONST:
		stmt = p.parseVarStatement()
	case token.FUNCTION_DECL:
		stmt = p.parseFunctionDeclaration()
	case token.IF:
		stmt = p.parseIfStatement()
	case token.FOR:
		stmt = p.parseForStatement()
	case token.WHILE:
		stmt = p.parseWhileStatement()
	case token.DO:
		stmt = p.parseDoWhileStatement()
	case token.RETURN:
		stmt = p.parseReturnStatement()
	case token.BREAK:
		stmt = p.parseBreakStatement()
	case token.CONTINUE:
		stmt = p.parseContinueStatement()
	case token.THROW:
		stmt = p.parseThrowStatement()
	case token.SWITCH:
		stmt = p.parseSwitchStatement()
	case token.TRY:
		stmt = p.parseTryStatement()
	case token.WITH:
		stmt = p.parseWithStatement()
	case token.CLASS:
		stmt = p.parseClassDeclaration()
	case token.IMPORT:
		stmt = p.parseImportDeclaration()
	case token.EXPORT:
		stmt = p.parseExportDeclaration()
	case token.LBRACE:
		stmt = p.parseBlockStatement()
	case token.IDENT:
		if p.peek.Type == token.COLON {
			stmt = p.parseLabeledStatement()
		} else {
			stmt = p.parseExpressionStatement()
		}
	default:
		stmt = p.parseExpressionStatement()
	}

	if stmt == nil && p.tolerant {
		p.recoverToStatementBoundary()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := at(&ast.BlockStatement{}, p.cur)
	p.advance()
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	return block
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := at(&ast.ExpressionStatement{}, p.cur)
	stmt.Expression = p.parseExpression(LOWEST)
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	t := p.cur
	label := p.cur.Literal
	p.advance() // onto ':'
	p.advance() // onto body's first token
	return at(&ast.LabeledStatement{Label: label, Body: p.parseStatement()}, t)
}

// ---- declarations ----

func (p *Parser) parseVarStatement() *ast.VarStatement {
	t := p.cur
	kind := ast.VarKindVar
	switch t.Type {
	case token.LET:
		kind = ast.VarKindLet
	case token.CONST:
		kind = ast.VarKindConst
	}
	stmt := at(&ast.VarStatement{Kind: kind}, t)
	p.advance()
	stmt.Declarations = append(stmt.Declarations, p.parseVarDeclarator())
	for p.peek.Type == token.COMMA {
		p.advance()
		p.advance()
		stmt.Declarations = append(stmt.Declarations, p.parseVarDeclarator())
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseVarDeclarator() *ast.VarDeclarator {
	t := p.cur
	decl := at(&ast.VarDeclarator{Target: p.parseBindingTarget()}, t)
	if p.peek.Type == token.ASSIGN {
		p.advance()
		p.advance()
		decl.Init = p.parseAssignExpression()
	}
	return decl
}

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	return p.parseFunctionDeclarationNamed(true)
}

// parseFunctionDeclarationNamed parses a function declaration, requiring a
// name unless nameRequired is false — the one place a name is optional is
// "export default function(){}", valid ECMAScript since the binding is the
// export itself rather than a local identifier.
func (p *Parser) parseFunctionDeclarationNamed(nameRequired bool) *ast.FunctionDeclaration {
	t := p.cur
	decl := at(&ast.FunctionDeclaration{}, t)
	if p.peek.Type == token.MULTIPLY {
		p.advance()
		decl.Generator = true
	}
	if p.peek.Type == token.IDENT {
		p.advance()
		decl.Name = at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	} else if nameRequired {
		p.expectPeek(token.IDENT)
		return decl
	}
	if !p.expectPeek(token.LPAREN) {
		return decl
	}
	decl.Params = p.parseParamList()
	if !p.expectPeek(token.LBRACE) {
		return decl
	}
	decl.Body = p.parseBlockStatement()
	return decl
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	t := p.cur
	fn := at(&ast.FunctionExpression{}, t)
	if p.peek.Type == token.MULTIPLY {
		p.advance()
		fn.Generator = true
	}
	if p.peek.Type == token.IDENT {
		p.advance()
		fn.Name = at(&ast.Identifier{Name: p.cur.Literal}, p.cur)
	}
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

// ---- control flow ----

func (p *Parser) parseIfStatement() *ast.IfStatement {
	t := p.cur
	stmt := at(&ast.IfStatement{}, t)
	if !p.expectPeek(token.LPAREN) {
		return stmt
	}
	p.advance()
	stmt.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return stmt
	}
	p.advance()
	stmt.Consequent = p.parseStatement()
	if p.peek.Type == token.ELSE {
		p.advance()
		p.advance()
		stmt.Alternate = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	t := p.cur
	stmt := at(&ast.WhileStatement{}, t)
	if !p.expectPeek(token.LPAREN) {
		return stmt
	}
	p.advance()
	stmt.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return stmt
	}
	p.advance()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	t := p.cur
	stmt := at(&ast.DoWhileStatement{}, t)
	p.advance()
	stmt.Body = p.parseStatement()
	if !p.expectPeek(token.WHILE) {
		return stmt
	}
	if !p.expectPeek(token.LPAREN) {
		return stmt
	}
	p.advance()
	stmt.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return stmt
	}
	p.consumeSemicolon()
	return stmt
}

// parseForStatement disambiguates the four for-head shapes: classic
// C-style, for-in, for-of, and for-await-of. noIn is set while parsing the
// head's first clause so a bare 'in' there is not grabbed as a RELATIONAL
// operator, per spec.md §4.3.
func (p *Parser) parseForStatement() ast.Statement {
	t := p.cur
	await := false
	if p.peek.Type == token.AWAIT {
		p.advance()
		await = true
	}
	if !p.expectPeek(token.LPAREN) {
		return at(&ast.ForStatement{}, t)
	}
	p.advance()

	var init ast.Node
	if p.cur.Type == token.SEMICOLON {
		init = nil
	} else if p.cur.Type == token.VAR || p.cur.Type == token.LET || p.cur.Type == token.CONST {
		init = p.parseForHeadVarDeclaration()
	} else {
		prevNoIn := p.noIn
		p.noIn = true
		init = p.parseExpression(LOWEST)
		p.noIn = prevNoIn
	}

	if p.peek.Type == token.IN {
		p.advance()
		p.advance()
		right := p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			return at(&ast.ForInStatement{Left: init, Right: right}, t)
		}
		p.advance()
		return at(&ast.ForInStatement{Left: init, Right: right, Body: p.parseStatement()}, t)
	}
	if p.peek.Type == token.IDENT && p.peek.Literal == "of" {
		p.advance()
		p.advance()
		right := p.parseAssignExpression()
		if !p.expectPeek(token.RPAREN) {
			return at(&ast.ForOfStatement{Left: init, Right: right, Await: await}, t)
		}
		p.advance()
		return at(&ast.ForOfStatement{Left: init, Right: right, Await: await, Body: p.parseStatement()}, t)
	}

	stmt := at(&ast.ForStatement{}, t)
	if initExpr, ok := init.(ast.Expression); ok {
		stmt.Init = initExpr
	} else {
		stmt.Init = init
	}
	if !p.expectPeek(token.SEMICOLON) {
		return stmt
	}
	if p.peek.Type != token.SEMICOLON {
		p.advance()
		stmt.Test = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.SEMICOLON) {
		return stmt
	}
	if p.peek.Type != token.RPAREN {
		p.advance()
		stmt.Update = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.RPAREN) {
		return stmt
	}
	p.advance()
	stmt.Body = p.parseStatement()
	return stmt
}

// parseForHeadVarDeclaration parses the "var/let/const target" clause of a
// for-head, stopping before a potential "in"/"of"/"=" so the caller can
// decide which for-shape this is.
func (p *Parser) parseForHeadVarDeclaration() *ast.VarStatement {
	t := p.cur
	kind := ast.VarKindVar
	switch t.Type {
	case token.LET:
		kind = ast.VarKindLet
	case token.CONST:
		kind = ast.VarKindConst
	}
	stmt := at(&ast.VarStatement{Kind: kind}, t)
	p.advance()
	decl := at(&ast.VarDeclarator{Target: p.parseBindingTarget()}, p.cur)
	if p.peek.Type == token.ASSIGN {
		p.advance()
		p.advance()
		prevNoIn := p.noIn
		p.noIn = true
		decl.Init = p.parseAssignExpression()
		p.noIn = prevNoIn
	}
	stmt.Declarations = append(stmt.Declarations, decl)
	for p.peek.Type == token.COMMA {
		p.advance()
		p.advance()
		stmt.Declarations = append(stmt.Declarations, p.parseVarDeclarator())
	}
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := at(&ast.ReturnStatement{}, p.cur)
	if p.peek.Type == token.SEMICOLON || p.peek.Type == token.RBRACE || p.peek.Type == token.EOF {
		p.consumeSemicolon()
		return stmt
	}
	p.advance()
	stmt.Argument = p.parseExpression(LOWEST)
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	stmt := at(&ast.BreakStatement{}, p.cur)
	if p.peek.Type == token.IDENT {
		p.advance()
		stmt.Label = p.cur.Literal
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	stmt := at(&ast.ContinueStatement{}, p.cur)
	if p.peek.Type == token.IDENT {
		p.advance()
		stmt.Label = p.cur.Literal
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	stmt := at(&ast.ThrowStatement{}, p.cur)
	p.advance()
	stmt.Argument = p.parseExpression(LOWEST)
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseWithStatement() *ast.WithStatement {
	t := p.cur
	stmt := at(&ast.WithStatement{}, t)
	if !p.expectPeek(token.LPAREN) {
		return stmt
	}
	p.advance()
	stmt.Object = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return stmt
	}
	p.advance()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	t := p.cur
	stmt := at(&ast.SwitchStatement{}, t)
	if !p.expectPeek(token.LPAREN) {
		return stmt
	}
	p.advance()
	stmt.Discriminant = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return stmt
	}
	if !p.expectPeek(token.LBRACE) {
		return stmt
	}
	p.advance()
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		stmt.Cases = append(stmt.Cases, p.parseSwitchCase())
		p.advance()
	}
	return stmt
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	t := p.cur
	c := at(&ast.SwitchCase{}, t)
	switch t.Type {
	case token.CASE:
		p.advance()
		c.Test = p.parseExpression(LOWEST)
		p.expectPeek(token.COLON)
	case token.DEFAULT:
		p.expectPeek(token.COLON)
	default:
		p.addError(fmt.Sprintf("expected 'case' or 'default', got %s", t.Type), t)
		return c
	}
	for p.peek.Type != token.CASE && p.peek.Type != token.DEFAULT && p.peek.Type != token.RBRACE && p.peek.Type != token.EOF {
		p.advance()
		stmt := p.parseStatement()
		if stmt != nil {
			c.Consequent = append(c.Consequent, stmt)
		}
	}
	return c
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	t := p.cur
	stmt := at(&ast.TryStatement{}, t)
	if !p.expectPeek(token.LBRACE) {
		return stmt
	}
	stmt.Block = p.parseBlockStatement()
	if p.peek.Type == token.CATCH {
		p.advance()
		handler := at(&ast.CatchClause{}, p.cur)
		if p.peek.Type == token.LPAREN {
			p.advance()
			p.advance()
			handler.Param = p.parseBindingTarget()
			p.expectPeek(token.RPAREN)
		}
		if !p.expectPeek(token.LBRACE) {
			return stmt
		}
		handler.Body = p.parseBlockStatement()
		stmt.Handler = handler
	}
	if p.peek.Type == token.FINALLY {
		p.advance()
		if !p.expectPeek(token.LBRACE) {
			return stmt
		}
		stmt.Finalizer = p.parseBlockStatement()
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.addError("missing catch or finally after try block", t)
	}
	return stmt
}
