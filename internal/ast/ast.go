package ast

import (
	"bytes"
	"strconv"

	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// NodeKind tags every Node variant so callers can switch on node shape
// without relying on runtime type assertions alone; a type switch on
// the concrete Node still works, but Kind() is the cheaper dispatch
// for code that only needs to branch, not destructure.
type NodeKind int

const (
	NodeProgram NodeKind = iota
	NodeImportStmt
	NodeAnnotationUsage
	NodeVarDecl
	NodeFunctionDecl
	NodeObjectDecl
	NodeEnumDecl
	NodeReturnDecl
	NodeDeleteDecl
	NodeIfElseDecl
	NodeWhileDecl
	NodeForDecl

	NodeAssignment
	NodeEqualityCheck
	NodeBinary
	NodeUnary
	NodeCall
	NodeIndex
	NodeMember
	NodeLambda
	NodeObjectConstructor
	NodeProperty
	NodeIdentifier
	NodeArrayLit
	NodeNumericLit
	NodeFloatLit
	NodeDoubleLit
	NodeStringLit
	NodeCharLit
)

// Node is the base interface every AST node satisfies.
type Node interface {
	Kind() NodeKind
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is any Node that produces a value. Every Expression is
// itself a valid Node and therefore a valid entry in a statement body:
// there is no separate ExpressionStatement wrapper.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any Node that performs an action. Pure statement
// variants (declarations, control flow) implement only this.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: the file path it was parsed from plus the
// ordered top-level statements.
type Program struct {
	FileDir string
	Body    []Node
}

func (p *Program) Kind() NodeKind       { return NodeProgram }
func (p *Program) TokenLiteral() string { return "Program" }
func (p *Program) Pos() lexer.Position {
	if len(p.Body) > 0 {
		return p.Body[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 0}
}
func (p *Program) String() string {
	var out bytes.Buffer
	for _, n := range p.Body {
		out.WriteString(n.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier names a variable, function, type, or property.
type Identifier struct {
	Token  lexer.Token
	Symbol string
}

func (i *Identifier) Kind() NodeKind       { return NodeIdentifier }
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Range.Begin }
func (i *Identifier) String() string       { return i.Symbol }
func (i *Identifier) expressionNode()      {}

// ArrayLit is a `{ elem, elem, ... }` array literal expression.
type ArrayLit struct {
	Token lexer.Token // the opening '{'
	Elems []Expression
}

func (a *ArrayLit) Kind() NodeKind       { return NodeArrayLit }
func (a *ArrayLit) TokenLiteral() string { return a.Token.Lexeme }
func (a *ArrayLit) Pos() lexer.Position  { return a.Token.Range.Begin }
func (a *ArrayLit) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, e := range a.Elems {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.String())
	}
	out.WriteString("}")
	return out.String()
}
func (a *ArrayLit) expressionNode() {}

// NumericLit is an integer literal (i32).
type NumericLit struct {
	Token lexer.Token
	Value int32
}

func (n *NumericLit) Kind() NodeKind       { return NodeNumericLit }
func (n *NumericLit) TokenLiteral() string { return n.Token.Lexeme }
func (n *NumericLit) Pos() lexer.Position  { return n.Token.Range.Begin }
func (n *NumericLit) String() string       { return strconv.FormatInt(int64(n.Value), 10) }
func (n *NumericLit) expressionNode()      {}

// FloatLit is a single-precision (f32) literal.
type FloatLit struct {
	Token lexer.Token
	Value float32
}

func (f *FloatLit) Kind() NodeKind       { return NodeFloatLit }
func (f *FloatLit) TokenLiteral() string { return f.Token.Lexeme }
func (f *FloatLit) Pos() lexer.Position  { return f.Token.Range.Begin }
func (f *FloatLit) String() string       { return strconv.FormatFloat(float64(f.Value), 'g', -1, 32) }
func (f *FloatLit) expressionNode()      {}

// DoubleLit is a double-precision (f64) literal.
type DoubleLit struct {
	Token lexer.Token
	Value float64
}

func (d *DoubleLit) Kind() NodeKind       { return NodeDoubleLit }
func (d *DoubleLit) TokenLiteral() string { return d.Token.Lexeme }
func (d *DoubleLit) Pos() lexer.Position  { return d.Token.Range.Begin }
func (d *DoubleLit) String() string       { return strconv.FormatFloat(d.Value, 'g', -1, 64) }
func (d *DoubleLit) expressionNode()      {}

// StringLit is a string literal with no escape processing: Value is
// the source text verbatim between the quotes.
type StringLit struct {
	Token lexer.Token
	Value string
}

func (s *StringLit) Kind() NodeKind       { return NodeStringLit }
func (s *StringLit) TokenLiteral() string { return s.Token.Lexeme }
func (s *StringLit) Pos() lexer.Position  { return s.Token.Range.Begin }
func (s *StringLit) String() string       { return "\"" + s.Value + "\"" }
func (s *StringLit) expressionNode()      {}

// CharLit is a single-character literal.
type CharLit struct {
	Token lexer.Token
	Value rune
}

func (c *CharLit) Kind() NodeKind       { return NodeCharLit }
func (c *CharLit) TokenLiteral() string { return c.Token.Lexeme }
func (c *CharLit) Pos() lexer.Position  { return c.Token.Range.Begin }
func (c *CharLit) String() string       { return "'" + string(c.Value) + "'" }
func (c *CharLit) expressionNode()      {}
