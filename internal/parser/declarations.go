package parser

import (
	"github.com/jappe-studios/jscr-go/internal/ast"
	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// parseImport parses `import A.B.C as Name;`. Path segments are
// collected from raw token lexemes, not restricted to IDENTIFIER, so
// any token lexeme is accepted between the dots.
func (p *Parser) parseImport() (*ast.ImportStmt, error) {
	tok, err := p.expect(lexer.IMPORT, "expected 'import'")
	if err != nil {
		return nil, err
	}

	first := p.advance()
	target := []string{first.Lexeme}
	for p.peek(0).Kind == lexer.DOT {
		p.advance()
		target = append(target, p.advance().Lexeme)
	}

	var alias *string
	if p.peek(0).Kind == lexer.AS {
		p.advance()
		aliasTok, err := p.expect(lexer.IDENTIFIER, "expected an identifier after 'as'")
		if err != nil {
			return nil, err
		}
		a := aliasTok.Lexeme
		alias = &a
	}

	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after import"); err != nil {
		return nil, err
	}

	return &ast.ImportStmt{Token: tok, Target: target, Alias: alias}, nil
}

// parseFunctionDecl parses the parameter list and body following a
// declared return type and name.
func (p *Parser) parseFunctionDecl(ctx *varCtx, name *ast.Identifier) (*ast.FunctionDecl, error) {
	p.enter()
	if _, err := p.expect(lexer.LPAREN, "expected '(' to start parameter list"); err != nil {
		return nil, err
	}

	var params []*ast.VarDecl
	for p.peek(0).Kind != lexer.RPAREN {
		paramNode, err := p.parseTypePost()
		if err != nil {
			return nil, err
		}
		param, ok := paramNode.(*ast.VarDecl)
		if !ok {
			return nil, p.errorf(paramNode.Pos(), "function parameter must be a typed declaration")
		}
		params = append(params, param)
		if p.peek(0).Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')' to close parameter list"); err != nil {
		return nil, err
	}
	p.leave()

	fn := &ast.FunctionDecl{
		Token:       ctx.token,
		Annotations: ctx.annotations,
		Exported:    ctx.exported,
		Type:        ctx.typ,
		Name:        name,
		Params:      params,
	}

	if p.peek(0).Kind == lexer.ASSIGN && p.peek(1).Kind == lexer.GREATER {
		p.advance()
		p.advance()
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		fn.Body = []ast.Node{stmt}
		fn.InstantReturn = true
		return fn, nil
	}

	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

// parseVarDecl handles the three variable-declaration forms: no
// initializer, an expression initializer, and an object-constructor
// initializer.
func (p *Parser) parseVarDecl(ctx *varCtx, name *ast.Identifier) (*ast.VarDecl, error) {
	decl := &ast.VarDecl{
		Token:       ctx.token,
		Annotations: ctx.annotations,
		Constant:    ctx.constant,
		Exported:    ctx.exported,
		Type:        ctx.typ,
		Name:        name,
	}

	switch p.peek(0).Kind {
	case lexer.ASSIGN:
		p.advance()
		p.enter()
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		p.leave()
		decl.Value = value

	case lexer.LBRACE:
		ctor, err := p.parseObjectConstructorOfType(ctx.typ)
		if err != nil {
			return nil, err
		}
		decl.Value = ctor

	default:
		if ctx.constant {
			return nil, p.errorf(p.peek(0).Range.Begin, "Must assign value to constant expression")
		}
	}

	if p.d == 0 {
		if _, err := p.expect(lexer.SEMICOLON, "expected ';' after declaration"); err != nil {
			return nil, err
		}
	}

	return decl, nil
}

// parseObjectDecl parses an object body: a brace-enclosed,
// comma-tolerant list of typed properties.
func (p *Parser) parseObjectDecl(ctx *objEnumCtx, isAnnotation bool) (*ast.ObjectDecl, error) {
	name := &ast.Identifier{Token: ctx.nameToken, Symbol: ctx.name}

	p.enter()
	if _, err := p.expect(lexer.LBRACE, "expected '{' to start object body"); err != nil {
		return nil, err
	}

	var props []*ast.Property
	for p.peek(0).Kind != lexer.RBRACE {
		propCtx, propObjCtx, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if propObjCtx != nil {
			return nil, p.errorf(propObjCtx.token.Range.Begin, "object properties cannot declare a nested object or enum")
		}

		keyTok, err := p.expect(lexer.IDENTIFIER, "expected a property name")
		if err != nil {
			return nil, err
		}
		propType := propCtx.typ
		prop := &ast.Property{Token: keyTok, Key: keyTok.Lexeme, Type: &propType}

		if p.peek(0).Kind == lexer.COLON {
			p.advance()
			value, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			prop.Value = value
		}

		props = append(props, prop)
		if p.peek(0).Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(lexer.RBRACE, "expected '}' to close object body"); err != nil {
		return nil, err
	}
	p.leave()

	return &ast.ObjectDecl{
		Token:              ctx.token,
		Annotations:        ctx.annotations,
		Exported:           ctx.exported,
		Name:               name,
		Properties:         props,
		IsAnnotationObject: isAnnotation,
	}, nil
}

// parseEnumDecl parses an enum body: a brace-enclosed, comma-tolerant
// list of bare identifiers.
func (p *Parser) parseEnumDecl(ctx *objEnumCtx) (*ast.EnumDecl, error) {
	name := &ast.Identifier{Token: ctx.nameToken, Symbol: ctx.name}

	p.enter()
	if _, err := p.expect(lexer.LBRACE, "expected '{' to start enum body"); err != nil {
		return nil, err
	}

	var entries []string
	for p.peek(0).Kind != lexer.RBRACE {
		tok, err := p.expect(lexer.IDENTIFIER, "expected an enum entry name")
		if err != nil {
			return nil, err
		}
		entries = append(entries, tok.Lexeme)
		if p.peek(0).Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(lexer.RBRACE, "expected '}' to close enum body"); err != nil {
		return nil, err
	}
	p.leave()

	return &ast.EnumDecl{
		Token:       ctx.token,
		Annotations: ctx.annotations,
		Exported:    ctx.exported,
		Name:        name,
		Entries:     entries,
	}, nil
}

// parseObjectConstructorBody parses `{ key [: expr] , ... }`, comma
// tolerant with an optional trailing comma before '}'.
func (p *Parser) parseObjectConstructorBody() (lexer.Token, []*ast.Property, error) {
	openTok, err := p.expect(lexer.LBRACE, "expected '{' to start object constructor")
	if err != nil {
		return openTok, nil, err
	}

	var props []*ast.Property
	for p.peek(0).Kind != lexer.RBRACE {
		keyTok, err := p.expect(lexer.IDENTIFIER, "expected a property name")
		if err != nil {
			return openTok, nil, err
		}
		prop := &ast.Property{Token: keyTok, Key: keyTok.Lexeme}
		if p.peek(0).Kind == lexer.COLON {
			p.advance()
			value, err := p.parseAssignment()
			if err != nil {
				return openTok, nil, err
			}
			prop.Value = value
		}
		props = append(props, prop)
		if p.peek(0).Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}

	if _, err := p.expect(lexer.RBRACE, "expected '}' to close object constructor"); err != nil {
		return openTok, nil, err
	}

	return openTok, props, nil
}

// parseObjectConstructorOfType builds the variable-initializer form of
// an object constructor, targeted by a declared Type.
func (p *Parser) parseObjectConstructorOfType(t ast.Type) (*ast.ObjectConstructor, error) {
	openTok, props, err := p.parseObjectConstructorBody()
	if err != nil {
		return nil, err
	}
	tc := t
	return &ast.ObjectConstructor{Token: openTok, TargetType: &tc, TargetIsType: true, Properties: props}, nil
}

// parseObjectConstructorOfIdent builds the assignment-shorthand form
// of an object constructor, targeted by an identifier expression.
// target must be an *ast.Identifier.
func (p *Parser) parseObjectConstructorOfIdent(target ast.Expression) (*ast.ObjectConstructor, error) {
	ident, ok := target.(*ast.Identifier)
	if !ok {
		return nil, p.errorf(target.Pos(), "Object constructor assignment only works for identifiers")
	}
	openTok, props, err := p.parseObjectConstructorBody()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectConstructor{Token: openTok, TargetIdent: ident, TargetIsType: false, Properties: props}, nil
}
