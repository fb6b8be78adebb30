package parser

import (
	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/token"
)

// parseImportDeclaration covers every import form: bare side-effect
// imports, a default binding, a namespace binding, a named list, and the
// combinations of default-plus-namespace or default-plus-named.
func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	t := p.cur
	decl := at(&ast.ImportDeclaration{}, t)

	if p.peek.Type == token.STRING {
		p.advance()
		decl.Source = at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
		p.consumeSemicolon()
		return decl
	}

	if p.peek.Type == token.IDENT {
		p.advance()
		decl.Specifiers = append(decl.Specifiers, at(&ast.ImportSpecifier{Local: p.cur.Literal, Default: true}, p.cur))
		if p.peek.Type == token.COMMA {
			p.advance()
		}
	}

	if p.peek.Type == token.MULTIPLY {
		p.advance()
		t2 := p.cur
		// "as" is a contextual keyword (lexed as IDENT); the identifier
		// after it is the namespace binding's local name.
		if !p.expectPeek(token.IDENT) || p.cur.Literal != "as" {
			p.addError("expected 'as' after '*' in import declaration", p.cur)
			return decl
		}
		if !p.expectPeek(token.IDENT) {
			return decl
		}
		decl.Specifiers = append(decl.Specifiers, at(&ast.ImportSpecifier{Local: p.cur.Literal, Namespace: true}, t2))
	} else if p.peek.Type == token.LBRACE {
		p.advance()
		decl.Specifiers = append(decl.Specifiers, p.parseImportSpecifierList()...)
	}

	if !p.expectPeek(token.IDENT) || p.cur.Literal != "from" {
		p.addError("expected 'from' in import declaration", p.cur)
	}
	if !p.expectPeek(token.STRING) {
		return decl
	}
	decl.Source = at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
	p.consumeSemicolon()
	return decl
}

func (p *Parser) parseImportSpecifierList() []*ast.ImportSpecifier {
	var specs []*ast.ImportSpecifier
	if p.peek.Type == token.RBRACE {
		p.advance()
		return specs
	}
	for {
		p.advance()
		t := p.cur
		imported := p.cur.Literal
		local := imported
		if p.peek.Type == token.IDENT && p.peek.Literal == "as" {
			p.advance()
			p.advance()
			local = p.cur.Literal
		}
		specs = append(specs, at(&ast.ImportSpecifier{Local: local, Imported: imported}, t))
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
	return specs
}

// parseExportDeclaration covers default exports, declaration exports,
// named-list exports (with or without a "from" re-export source), and
// export-all forms.
func (p *Parser) parseExportDeclaration() *ast.ExportDeclaration {
	t := p.cur
	decl := at(&ast.ExportDeclaration{}, t)

	switch p.peek.Type {
	case token.DEFAULT:
		p.advance()
		decl.Default = true
		p.advance()
		switch p.cur.Type {
		case token.FUNCTION, token.FUNCTION_DECL:
			decl.Declaration = p.parseFunctionDeclarationNamed(false)
		case token.CLASS:
			decl.Declaration = p.parseClassDeclaration()
		default:
			decl.Declaration = p.parseAssignExpression()
			p.consumeSemicolon()
		}
		return decl
	case token.MULTIPLY:
		p.advance()
		decl.ExportAll = true
		if p.peek.Type == token.IDENT && p.peek.Literal == "as" {
			p.advance()
			if p.expectPeek(token.IDENT) {
				decl.ExportAllAlias = p.cur.Literal
			}
		}
		if !p.expectPeek(token.IDENT) || p.cur.Literal != "from" {
			p.addError("expected 'from' in export-all declaration", p.cur)
		}
		if p.expectPeek(token.STRING) {
			decl.Source = at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
		}
		p.consumeSemicolon()
		return decl
	case token.LBRACE:
		p.advance()
		decl.Specifiers = p.parseExportSpecifierList()
		if p.peek.Type == token.IDENT && p.peek.Literal == "from" {
			p.advance()
			if p.expectPeek(token.STRING) {
				decl.Source = at(&ast.StringLiteral{Raw: p.cur.Literal}, p.cur)
			}
		}
		p.consumeSemicolon()
		return decl
	case token.VAR, token.LET, token.CONST:
		p.advance()
		decl.Declaration = p.parseVarStatement()
		return decl
	case token.FUNCTION, token.FUNCTION_DECL:
		p.advance()
		decl.Declaration = p.parseFunctionDeclaration()
		return decl
	case token.CLASS:
		p.advance()
		decl.Declaration = p.parseClassDeclaration()
		return decl
	default:
		p.addError("unexpected token after 'export'", p.peek)
		return decl
	}
}

func (p *Parser) parseExportSpecifierList() []*ast.ExportSpecifier {
	var specs []*ast.ExportSpecifier
	if p.peek.Type == token.RBRACE {
		p.advance()
		return specs
	}
	for {
		p.advance()
		t := p.cur
		local := p.cur.Literal
		exported := local
		if p.peek.Type == token.IDENT && p.peek.Literal == "as" {
			p.advance()
			p.advance()
			exported = p.cur.Literal
		}
		specs = append(specs, at(&ast.ExportSpecifier{Local: local, Exported: exported}, t))
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
	return specs
}
