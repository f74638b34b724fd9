package parser

import (
	"io"
	"os"

	"github.com/jappe-studios/jscr-go/internal/ast"
	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// ParseFile tokenizes and parses the file at path, returning the
// resulting Program or the first LexError/SyntaxError encountered. The
// file handle is opened, fully consumed, and closed before tokenizing
// begins.
func ParseFile(path string) (*ast.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	source := string(data)

	tokens, err := lexer.New(path, source).Tokenize()
	if err != nil {
		return nil, err
	}

	return New(path, source, tokens).ParseProgram()
}

// ParseProgram repeatedly parses statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{FileDir: p.file}
	for p.notEof() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

// parseStmt dispatches on the current token kind.
func (p *Parser) parseStmt() (ast.Node, error) {
	switch p.peek(0).Kind {
	case lexer.IMPORT:
		return p.parseImport()

	case lexer.EXPORT, lexer.CONST, lexer.ANNOTATION_OBJECT, lexer.OBJECT, lexer.ENUM, lexer.AT, lexer.TYPE:
		return p.parseTypePost()

	case lexer.RETURN:
		return p.parseReturn()
	case lexer.DELETE:
		return p.parseDelete()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()

	case lexer.IDENTIFIER:
		if p.d == 0 {
			switch p.peek(1).Kind {
			case lexer.CONST, lexer.EXPORT, lexer.IDENTIFIER:
				return p.parseTypePost()
			}
		}
		return p.parseExprStmt()

	default:
		return p.parseExprStmt()
	}
}

// parseExprStmt parses a bare expression used in statement position.
// Assignment already consumes its own terminating ';' when it applies,
// and an instant-return lambda ends with its body statement, which
// consumes its own; every other expression shape requires one when the
// outline depth is 0 — nested inside a grouping construct, the
// enclosing construct handles its own terminator instead.
func (p *Parser) parseExprStmt() (ast.Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, ok := expr.(*ast.Assignment); ok {
		return expr, nil
	}
	if l, ok := expr.(*ast.Lambda); ok && l.InstantReturn {
		return expr, nil
	}
	if p.d == 0 {
		if _, err := p.expect(lexer.SEMICOLON, "expected ';' after expression statement"); err != nil {
			return nil, err
		}
	}
	return expr, nil
}
