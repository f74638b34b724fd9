package parser

import (
	"github.com/jappe-studios/jscr-go/internal/ast"
	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// parseReturn parses `return expr;`.
func (p *Parser) parseReturn() (*ast.ReturnDecl, error) {
	tok, err := p.expect(lexer.RETURN, "expected 'return'")
	if err != nil {
		return nil, err
	}
	p.enter()
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.leave()
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnDecl{Token: tok, Value: value}, nil
}

// parseDelete parses `delete ident;`.
func (p *Parser) parseDelete() (*ast.DeleteDecl, error) {
	tok, err := p.expect(lexer.DELETE, "expected 'delete'")
	if err != nil {
		return nil, err
	}
	identTok, err := p.expect(lexer.IDENTIFIER, "expected an identifier after 'delete'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after delete"); err != nil {
		return nil, err
	}
	return &ast.DeleteDecl{Token: tok, Ident: &ast.Identifier{Token: identTok, Symbol: identTok.Lexeme}}, nil
}

// parseConditionAndBody parses the shared `(expr) body` shape used by
// `if`, `else if`, and `while` headers.
func (p *Parser) parseConditionAndBody() (ast.Expression, []ast.Node, error) {
	if _, err := p.expect(lexer.LPAREN, "expected '(' after condition keyword"); err != nil {
		return nil, nil, err
	}
	p.enter()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')' to close condition"); err != nil {
		return nil, nil, err
	}
	p.leave()

	body, err := p.parseBlockOrStmt()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

// parseIf parses `if (cond) body (else if (cond) body)* (else body)?`,
// folding the `if`/`else if` chain into one IfElseDecl.
func (p *Parser) parseIf() (*ast.IfElseDecl, error) {
	tok, err := p.expect(lexer.IF, "expected 'if'")
	if err != nil {
		return nil, err
	}

	decl := &ast.IfElseDecl{Token: tok}

	cond, body, err := p.parseConditionAndBody()
	if err != nil {
		return nil, err
	}
	decl.Blocks = append(decl.Blocks, &ast.ConditionalBlock{Condition: cond, Body: body})

	for p.peek(0).Kind == lexer.ELSE && p.peek(1).Kind == lexer.IF {
		p.advance() // else
		p.advance() // if
		cond, body, err := p.parseConditionAndBody()
		if err != nil {
			return nil, err
		}
		decl.Blocks = append(decl.Blocks, &ast.ConditionalBlock{Condition: cond, Body: body})
	}

	if p.peek(0).Kind == lexer.ELSE {
		p.advance()
		elseBody, err := p.parseBlockOrStmt()
		if err != nil {
			return nil, err
		}
		decl.ElseBody = elseBody
	}

	return decl, nil
}

// parseWhile parses `while (cond) body`.
func (p *Parser) parseWhile() (*ast.WhileDecl, error) {
	tok, err := p.expect(lexer.WHILE, "expected 'while'")
	if err != nil {
		return nil, err
	}
	cond, body, err := p.parseConditionAndBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileDecl{Token: tok, Condition: cond, Body: body}, nil
}

// parseFor parses `for (init; cond; step) body`. The
// header is parsed at a bumped outline depth, so the inner init
// statement does not consume its own terminating ';' — the three
// header clauses are explicitly separated here instead.
func (p *Parser) parseFor() (*ast.ForDecl, error) {
	tok, err := p.expect(lexer.FOR, "expected 'for'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}
	p.enter()

	var init ast.Node
	if p.peek(0).Kind != lexer.SEMICOLON {
		init, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after for-loop initializer"); err != nil {
		return nil, err
	}

	var cond ast.Expression
	if p.peek(0).Kind != lexer.SEMICOLON {
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after for-loop condition"); err != nil {
		return nil, err
	}

	var step ast.Expression
	if p.peek(0).Kind != lexer.RPAREN {
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')' to close for-loop header"); err != nil {
		return nil, err
	}
	p.leave()

	body, err := p.parseBlockOrStmt()
	if err != nil {
		return nil, err
	}

	return &ast.ForDecl{Token: tok, Init: init, Condition: cond, Step: step, Body: body}, nil
}

// parseBracedBlock parses `{ stmt* }`. The block itself does not bump
// the outline depth — only headers, argument lists, and other grouping
// constructs do.
func (p *Parser) parseBracedBlock() ([]ast.Node, error) {
	if _, err := p.expect(lexer.LBRACE, "expected '{' to start block"); err != nil {
		return nil, err
	}
	var body []ast.Node
	for p.notEof() && p.peek(0).Kind != lexer.RBRACE {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.expect(lexer.RBRACE, "expected '}' to close block"); err != nil {
		return nil, err
	}
	return body, nil
}

// parseBlockOrStmt parses either a braced block or a single statement,
// the shared body shape for if/while/for.
func (p *Parser) parseBlockOrStmt() ([]ast.Node, error) {
	if p.peek(0).Kind == lexer.LBRACE {
		return p.parseBracedBlock()
	}
	stmt, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return []ast.Node{stmt}, nil
}
