package ast

import (
	"bytes"

	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// ConditionalBlock is one `if`/`else if` arm: a condition and its body.
type ConditionalBlock struct {
	Condition Expression
	Body      []Node
}

// IfElseDecl is `if (cond) {...} else if (cond) {...} else {...}`.
// Blocks[0] is the `if`, subsequent entries are `else if` chains;
// Blocks always has at least one entry.
// ElseBody is nil when no terminal `else` is present.
type IfElseDecl struct {
	Token    lexer.Token // the 'if' token
	Blocks   []*ConditionalBlock
	ElseBody []Node
}

func (f *IfElseDecl) Kind() NodeKind       { return NodeIfElseDecl }
func (f *IfElseDecl) TokenLiteral() string { return f.Token.Lexeme }
func (f *IfElseDecl) Pos() lexer.Position  { return f.Token.Range.Begin }
func (f *IfElseDecl) String() string {
	var out bytes.Buffer
	for i, b := range f.Blocks {
		if i == 0 {
			out.WriteString("if (")
		} else {
			out.WriteString(" else if (")
		}
		out.WriteString(b.Condition.String())
		out.WriteString(") { ... }")
	}
	if f.ElseBody != nil {
		out.WriteString(" else { ... }")
	}
	return out.String()
}
func (f *IfElseDecl) statementNode() {}

// WhileDecl is `while (cond) { body }`.
type WhileDecl struct {
	Token     lexer.Token // the 'while' token
	Condition Expression
	Body      []Node
}

func (w *WhileDecl) Kind() NodeKind       { return NodeWhileDecl }
func (w *WhileDecl) TokenLiteral() string { return w.Token.Lexeme }
func (w *WhileDecl) Pos() lexer.Position  { return w.Token.Range.Begin }
func (w *WhileDecl) String() string {
	return "while (" + w.Condition.String() + ") { ... }"
}
func (w *WhileDecl) statementNode() {}

// ForDecl is `for (init; cond; step) { body }`.
type ForDecl struct {
	Token     lexer.Token // the 'for' token
	Init      Node
	Condition Expression
	Step      Expression
	Body      []Node
}

func (fr *ForDecl) Kind() NodeKind       { return NodeForDecl }
func (fr *ForDecl) TokenLiteral() string { return fr.Token.Lexeme }
func (fr *ForDecl) Pos() lexer.Position  { return fr.Token.Range.Begin }
func (fr *ForDecl) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if fr.Init != nil {
		out.WriteString(fr.Init.String())
	}
	out.WriteString("; ")
	if fr.Condition != nil {
		out.WriteString(fr.Condition.String())
	}
	out.WriteString("; ")
	if fr.Step != nil {
		out.WriteString(fr.Step.String())
	}
	out.WriteString(") { ... }")
	return out.String()
}
func (fr *ForDecl) statementNode() {}
