package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `int x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLexeme string
		expectedKind   TokenKind
	}{
		{"int", TYPE},
		{"x", IDENTIFIER},
		{"=", ASSIGN},
		{"5", NUMBER},
		{";", SEMICOLON},
		{"x", IDENTIFIER},
		{"=", ASSIGN},
		{"x", IDENTIFIER},
		{"+", BINARY_OPERATOR},
		{"10", NUMBER},
		{";", SEMICOLON},
		{"EndOfFile", EOF_TOKEN},
	}

	tokens, err := New("test.jscr", input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("expected %d tokens, got %d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedKind, tok.Kind, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `function lambda const export return if else while for object enum delete import as`

	expected := []TokenKind{
		FUNCTION, LAMBDA, CONST, EXPORT, RETURN, IF, ELSE, WHILE, FOR,
		OBJECT, ENUM, DELETE, IMPORT, AS, EOF_TOKEN,
	}

	tokens, err := New("test.jscr", input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s", i, kind, tokens[i].Kind)
		}
	}
}

func TestPrimitiveTypesLexAsType(t *testing.T) {
	for name := range PrimitiveTypeByName {
		t.Run(name, func(t *testing.T) {
			tokens, err := New("test.jscr", name).Tokenize()
			if err != nil {
				t.Fatalf("unexpected lex error: %v", err)
			}
			if tokens[0].Kind != TYPE {
				t.Fatalf("primitive %q lexed as %s, want TYPE", name, tokens[0].Kind)
			}
		})
	}
}

func TestAnnotationObjectToken(t *testing.T) {
	tokens, err := New("test.jscr", "@object Foo { int x }").Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tokens[0].Kind != ANNOTATION_OBJECT {
		t.Fatalf("expected ANNOTATION_OBJECT, got %s", tokens[0].Kind)
	}
	if tokens[0].Lexeme != "@object" {
		t.Fatalf("expected lexeme %q, got %q", "@object", tokens[0].Lexeme)
	}
}

func TestAnnotationUsageLeavesATAsOwnToken(t *testing.T) {
	tokens, err := New("test.jscr", "@Deprecated int x").Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tokens[0].Kind != AT {
		t.Fatalf("expected AT, got %s", tokens[0].Kind)
	}
	if tokens[1].Kind != IDENTIFIER || tokens[1].Lexeme != "Deprecated" {
		t.Fatalf("expected IDENTIFIER(Deprecated), got %s(%q)", tokens[1].Kind, tokens[1].Lexeme)
	}
}

func TestNumberSuffixes(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"123", NUMBER},
		{"1.5f", FLOAT_NUMBER},
		{"1.5d", DOUBLE_NUMBER},
		{"1.5", FLOAT_NUMBER},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := New("test.jscr", tt.input).Tokenize()
			if err != nil {
				t.Fatalf("unexpected lex error: %v", err)
			}
			if tokens[0].Kind != tt.kind {
				t.Fatalf("%q: expected %s, got %s", tt.input, tt.kind, tokens[0].Kind)
			}
		})
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	tokens, err := New("test.jscr", `"hello" 'h'`).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tokens[0].Kind != STRING || tokens[0].Lexeme != "hello" {
		t.Fatalf("expected STRING(hello), got %s(%q)", tokens[0].Kind, tokens[0].Lexeme)
	}
	if tokens[1].Kind != CHAR || tokens[1].Lexeme != "h" {
		t.Fatalf("expected CHAR(h), got %s(%q)", tokens[1].Kind, tokens[1].Lexeme)
	}
}

func TestTwoCharOperatorsLexAsSeparateSingleCharTokens(t *testing.T) {
	// JScr has no dedicated two-char operator tokens: "==" lexes as two
	// ASSIGN tokens, and "=>" as ASSIGN followed by GREATER.
	tokens, err := New("test.jscr", `a == b`).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	want := []TokenKind{IDENTIFIER, ASSIGN, ASSIGN, IDENTIFIER, EOF_TOKEN}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Fatalf("tests[%d]: expected %s, got %s", i, k, tokens[i].Kind)
		}
	}
}

func TestPositionTracking(t *testing.T) {
	input := "int x\n= 5;"
	tokens, err := New("test.jscr", input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	// "=" is the first token on line 2
	var assignTok Token
	for _, tok := range tokens {
		if tok.Kind == ASSIGN {
			assignTok = tok
			break
		}
	}
	if assignTok.Range.Begin.Line != 2 {
		t.Fatalf("expected '=' on line 2, got line %d", assignTok.Range.Begin.Line)
	}
}

func TestIllegalCharacterProducesLexError(t *testing.T) {
	_, err := New("test.jscr", "int x = #;").Tokenize()
	if err == nil {
		t.Fatal("expected a LexError, got nil")
	}
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Ch != '#' {
		t.Fatalf("expected offending rune '#', got %q", lexErr.Ch)
	}
}

func TestDotDotInsideNumberSplitsIntoSeparateTokens(t *testing.T) {
	// "3..5": the lexer's dot-inside-number rule only ever consumes one
	// dot, so "3." stops the number at "3" and the remaining ".." lexes
	// as two further DOT tokens, then "5" as its own NUMBER.
	tokens, err := New("test.jscr", "3..5").Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	want := []struct {
		kind   TokenKind
		lexeme string
	}{
		{NUMBER, "3"},
		{DOT, "."},
		{DOT, "."},
		{NUMBER, "5"},
		{EOF_TOKEN, "EndOfFile"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Lexeme != w.lexeme {
			t.Fatalf("tests[%d]: expected %s(%q), got %s(%q)", i, w.kind, w.lexeme, tokens[i].Kind, tokens[i].Lexeme)
		}
	}
}

func TestStringLiteralIsNotTreatedAsComment(t *testing.T) {
	// `"// no"` is a string literal whose contents happen to look like a
	// line comment; it must lex as one STRING token, not be skipped.
	tokens, err := New("test.jscr", `"// no"`).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens (STRING, EOF), got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != STRING || tokens[0].Lexeme != "// no" {
		t.Fatalf("expected STRING(%q), got %s(%q)", "// no", tokens[0].Kind, tokens[0].Lexeme)
	}
}

func TestEveryTokenSequenceEndsInEOF(t *testing.T) {
	tokens, err := New("test.jscr", "int x").Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	last := tokens[len(tokens)-1]
	if last.Kind != EOF_TOKEN {
		t.Fatalf("expected last token to be EOF_TOKEN, got %s", last.Kind)
	}
}
