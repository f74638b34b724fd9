package parser

import (
	"strconv"

	"github.com/jappe-studios/jscr-go/internal/ast"
	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// parseExpr is the entry point into the precedence ladder: assignment
// → array literal → lambda → boolean → comparison → additive →
// multiplicative → unary → call/index → member → primary.
func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment is level 1. The right-hand side parses
// right-associatively; a bare '{' directly after the target is the
// assignment-shorthand object constructor.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseArray()
	if err != nil {
		return nil, err
	}

	switch p.peek(0).Kind {
	case lexer.ASSIGN:
		tok := p.advance()
		p.enter()
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		p.leave()
		if p.d == 0 {
			if _, err := p.expect(lexer.SEMICOLON, "expected ';' after assignment"); err != nil {
				return nil, err
			}
		}
		return &ast.Assignment{Token: tok, Target: left, Value: value}, nil

	case lexer.LBRACE:
		ctor, err := p.parseObjectConstructorOfIdent(left)
		if err != nil {
			return nil, err
		}
		if p.d == 0 {
			if _, err := p.expect(lexer.SEMICOLON, "expected ';' after object constructor"); err != nil {
				return nil, err
			}
		}
		return &ast.Assignment{Token: ctor.Token, Target: left, Value: ctor}, nil
	}

	return left, nil
}

// parseArray is level 2: a bare `{ expr, ... }` array literal, or
// delegate to lambda.
func (p *Parser) parseArray() (ast.Expression, error) {
	if p.peek(0).Kind != lexer.LBRACE {
		return p.parseLambda()
	}

	tok := p.advance()
	p.enter()
	var elems []ast.Expression
	for p.peek(0).Kind != lexer.RBRACE {
		e, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.peek(0).Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBRACE, "expected '}' to close array literal"); err != nil {
		return nil, err
	}
	p.leave()
	return &ast.ArrayLit{Token: tok, Elems: elems}, nil
}

// parseLambda is level 3: `lambda(params) { body }` or the
// instant-return `lambda(params) => stmt` form.
func (p *Parser) parseLambda() (ast.Expression, error) {
	if p.peek(0).Kind != lexer.LAMBDA {
		return p.parseBool()
	}

	tok := p.advance()
	p.enter()
	if _, err := p.expect(lexer.LPAREN, "expected '(' after 'lambda'"); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	for p.peek(0).Kind != lexer.RPAREN {
		idTok, err := p.expect(lexer.IDENTIFIER, "expected a parameter name in lambda")
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Identifier{Token: idTok, Symbol: idTok.Lexeme})
		if p.peek(0).Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')' to close lambda parameter list"); err != nil {
		return nil, err
	}
	p.leave()

	lambda := &ast.Lambda{Token: tok, ParamIdents: params}

	if p.peek(0).Kind == lexer.ASSIGN && p.peek(1).Kind == lexer.GREATER {
		p.advance()
		p.advance()
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		lambda.Body = []ast.Node{stmt}
		lambda.InstantReturn = true
		return lambda, nil
	}

	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	lambda.Body = body
	return lambda, nil
}

// parseBool is level 4: `||` and `&&`, tested as two adjacent
// single-char tokens, right-recursive.
func (p *Parser) parseBool() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	var op string
	switch {
	case p.peek(0).Kind == lexer.PIPE && p.peek(1).Kind == lexer.PIPE:
		op = "||"
	case p.peek(0).Kind == lexer.AMPERSAND && p.peek(1).Kind == lexer.AMPERSAND:
		op = "&&"
	default:
		return left, nil
	}

	tok := p.advance()
	p.advance()
	right, err := p.parseBool()
	if err != nil {
		return nil, err
	}
	return &ast.EqualityCheck{Token: tok, Left: left, Right: right, Op: op}, nil
}

// parseComparison is level 5. Two-token operators (==, !=, <=, >=) are
// tested before the single-token ones (<, >) so that e.g. "<=" doesn't
// lex/parse as "<" followed by a dangling "=". Only one comparison per
// expression at this level — the right operand is additive, not a
// recursive comparison.
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	var op string
	wide := false
	switch {
	case p.peek(0).Kind == lexer.ASSIGN && p.peek(1).Kind == lexer.ASSIGN:
		op, wide = "==", true
	case p.peek(0).Kind == lexer.BANG && p.peek(1).Kind == lexer.ASSIGN:
		op, wide = "!=", true
	case p.peek(0).Kind == lexer.LESS && p.peek(1).Kind == lexer.ASSIGN:
		op, wide = "<=", true
	case p.peek(0).Kind == lexer.GREATER && p.peek(1).Kind == lexer.ASSIGN:
		op, wide = ">=", true
	case p.peek(0).Kind == lexer.LESS:
		op = "<"
	case p.peek(0).Kind == lexer.GREATER:
		op = ">"
	default:
		return left, nil
	}

	tok := p.advance()
	if wide {
		p.advance()
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.EqualityCheck{Token: tok, Left: left, Right: right, Op: op}, nil
}

// parseAdditive is level 6: left-folded + and -.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek(0).Kind == lexer.BINARY_OPERATOR && (p.peek(0).Lexeme == "+" || p.peek(0).Lexeme == "-") {
		tok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: tok, Left: left, Right: right, Op: tok.Lexeme[0]}
	}
	return left, nil
}

// parseMultiplicative is level 7: left-folded *, /, and %.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek(0).Kind == lexer.BINARY_OPERATOR && (p.peek(0).Lexeme == "*" || p.peek(0).Lexeme == "/" || p.peek(0).Lexeme == "%") {
		tok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: tok, Left: left, Right: right, Op: tok.Lexeme[0]}
	}
	return left, nil
}

// parseUnary is level 8: prefix + or - wrapping a call/member
// expression.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.peek(0).Kind == lexer.BINARY_OPERATOR && (p.peek(0).Lexeme == "+" || p.peek(0).Lexeme == "-") {
		tok := p.advance()
		operand, err := p.parseCallMember()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Token: tok, Operand: operand, Op: tok.Lexeme}, nil
	}
	return p.parseCallMember()
}

// parseCallMember is level 9: repeatable call and index chaining over
// a member expression.
func (p *Parser) parseCallMember() (ast.Expression, error) {
	expr, err := p.parseMember()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek(0).Kind {
		case lexer.LPAREN:
			openTok, args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.Call{Token: openTok, Caller: expr, Args: args}

		case lexer.LBRACKET:
			openTok := p.advance()
			p.enter()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET, "expected ']' to close index expression"); err != nil {
				return nil, err
			}
			p.leave()
			expr = &ast.Index{Token: openTok, Caller: expr, Arg: idx}

		default:
			return expr, nil
		}
	}
}

// parseMember is level 10: left-folded `.property` chaining; property
// is always an Identifier.
func (p *Parser) parseMember() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek(0).Kind == lexer.DOT {
		tok := p.advance()
		propTok, err := p.expect(lexer.IDENTIFIER, "expected an identifier after '.'")
		if err != nil {
			return nil, err
		}
		prop := &ast.Identifier{Token: propTok, Symbol: propTok.Lexeme}
		expr = &ast.Member{Token: tok, Object: expr, Property: prop}
	}
	return expr, nil
}

// parsePrimary is level 11: literals, identifiers, and parenthesized
// expressions.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek(0)
	switch tok.Kind {
	case lexer.IDENTIFIER:
		p.advance()
		return &ast.Identifier{Token: tok, Symbol: tok.Lexeme}, nil

	case lexer.NUMBER:
		p.advance()
		n, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			return nil, p.errorf(tok.Range.Begin, "invalid integer literal %q", tok.Lexeme)
		}
		return &ast.NumericLit{Token: tok, Value: int32(n)}, nil

	case lexer.FLOAT_NUMBER:
		p.advance()
		f, err := strconv.ParseFloat(tok.Lexeme, 32)
		if err != nil {
			return nil, p.errorf(tok.Range.Begin, "invalid float literal %q", tok.Lexeme)
		}
		return &ast.FloatLit{Token: tok, Value: float32(f)}, nil

	case lexer.DOUBLE_NUMBER:
		p.advance()
		d, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, p.errorf(tok.Range.Begin, "invalid double literal %q", tok.Lexeme)
		}
		return &ast.DoubleLit{Token: tok, Value: d}, nil

	case lexer.STRING:
		p.advance()
		return &ast.StringLit{Token: tok, Value: tok.Lexeme}, nil

	case lexer.CHAR:
		p.advance()
		var r rune
		if rs := []rune(tok.Lexeme); len(rs) > 0 {
			r = rs[0]
		}
		return &ast.CharLit{Token: tok, Value: r}, nil

	case lexer.LPAREN:
		p.advance()
		p.enter()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.leave()
		if _, err := p.expect(lexer.RPAREN, "expected ')' to close parenthesized expression"); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.errorf(tok.Range.Begin, "unexpected token %s in expression", tok.Kind)
	}
}

// parseArgs parses `(args)`, a comma-separated assignment list.
func (p *Parser) parseArgs() (lexer.Token, []ast.Expression, error) {
	openTok, err := p.expect(lexer.LPAREN, "expected '(' to start argument list")
	if err != nil {
		return openTok, nil, err
	}
	p.enter()
	var args []ast.Expression
	for p.peek(0).Kind != lexer.RPAREN {
		a, err := p.parseAssignment()
		if err != nil {
			return openTok, nil, err
		}
		args = append(args, a)
		if p.peek(0).Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')' to close argument list"); err != nil {
		return openTok, nil, err
	}
	p.leave()
	return openTok, args, nil
}
