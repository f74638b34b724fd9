package parser

import (
	"testing"

	"github.com/jappe-studios/jscr-go/internal/ast"
	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// mustParse tokenizes and parses input, failing the test immediately on
// any lex or syntax error.
func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	tokens, err := lexer.New("test.jscr", input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	program, err := New("test.jscr", input, tokens).ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return program
}

// mustFailParse tokenizes and parses input, failing the test if parsing
// succeeds, and returning the error otherwise.
func mustFailParse(t *testing.T, input string) error {
	t.Helper()
	tokens, err := lexer.New("test.jscr", input).Tokenize()
	if err != nil {
		return err
	}
	_, err = New("test.jscr", input, tokens).ParseProgram()
	if err == nil {
		t.Fatalf("expected a parse error for %q, got none", input)
	}
	return err
}

func singleStmt(t *testing.T, input string) ast.Node {
	t.Helper()
	program := mustParse(t, input)
	if len(program.Body) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d: %q", len(program.Body), input)
	}
	return program.Body[0]
}
