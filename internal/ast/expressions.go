package ast

import (
	"bytes"
	"strings"

	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// Assignment is `target = value`. The right-hand side parses
// right-associatively.
type Assignment struct {
	Token  lexer.Token // the '=' token
	Target Expression
	Value  Expression
}

func (a *Assignment) Kind() NodeKind       { return NodeAssignment }
func (a *Assignment) TokenLiteral() string { return a.Token.Lexeme }
func (a *Assignment) Pos() lexer.Position  { return a.Target.Pos() }
func (a *Assignment) String() string       { return a.Target.String() + " = " + a.Value.String() }
func (a *Assignment) expressionNode()      {}

// EqualityCheck covers every comparison/logical operator that does not
// fold (==, !=, >, >=, <, <=, &&, ||): the comparison level produces at
// most one of these per operand pair, never a chain, while the boolean
// level nests them on the right (a || b || c is a || (b || c)).
type EqualityCheck struct {
	Token lexer.Token // the operator token
	Left  Expression
	Right Expression
	Op    string
}

func (e *EqualityCheck) Kind() NodeKind       { return NodeEqualityCheck }
func (e *EqualityCheck) TokenLiteral() string { return e.Token.Lexeme }
func (e *EqualityCheck) Pos() lexer.Position  { return e.Left.Pos() }
func (e *EqualityCheck) String() string {
	return "(" + e.Left.String() + " " + e.Op + " " + e.Right.String() + ")"
}
func (e *EqualityCheck) expressionNode() {}

// Binary is an arithmetic operation (+ - * / %), left-folded by
// parseAdditive/parseMultiplicative.
type Binary struct {
	Token lexer.Token
	Left  Expression
	Right Expression
	Op    byte
}

func (b *Binary) Kind() NodeKind       { return NodeBinary }
func (b *Binary) TokenLiteral() string { return b.Token.Lexeme }
func (b *Binary) Pos() lexer.Position  { return b.Left.Pos() }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + string(b.Op) + " " + b.Right.String() + ")"
}
func (b *Binary) expressionNode() {}

// Unary is a prefix `+` or `-` applied to a call/member expression.
type Unary struct {
	Token   lexer.Token
	Operand Expression
	Op      string
}

func (u *Unary) Kind() NodeKind       { return NodeUnary }
func (u *Unary) TokenLiteral() string { return u.Token.Lexeme }
func (u *Unary) Pos() lexer.Position  { return u.Token.Range.Begin }
func (u *Unary) String() string       { return "(" + u.Op + u.Operand.String() + ")" }
func (u *Unary) expressionNode()      {}

// Call is `caller(args...)`.
type Call struct {
	Token  lexer.Token // the '(' token
	Caller Expression
	Args   []Expression
}

func (c *Call) Kind() NodeKind       { return NodeCall }
func (c *Call) TokenLiteral() string { return c.Token.Lexeme }
func (c *Call) Pos() lexer.Position  { return c.Caller.Pos() }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Caller.String() + "(" + strings.Join(args, ", ") + ")"
}
func (c *Call) expressionNode() {}

// Index is `caller[arg]`.
type Index struct {
	Token  lexer.Token // the '[' token
	Caller Expression
	Arg    Expression
}

func (ix *Index) Kind() NodeKind       { return NodeIndex }
func (ix *Index) TokenLiteral() string { return ix.Token.Lexeme }
func (ix *Index) Pos() lexer.Position  { return ix.Caller.Pos() }
func (ix *Index) String() string       { return ix.Caller.String() + "[" + ix.Arg.String() + "]" }
func (ix *Index) expressionNode()      {}

// Member is `object.property`; Property is always an *Identifier.
type Member struct {
	Token    lexer.Token // the '.' token
	Object   Expression
	Property Expression
}

func (m *Member) Kind() NodeKind       { return NodeMember }
func (m *Member) TokenLiteral() string { return m.Token.Lexeme }
func (m *Member) Pos() lexer.Position  { return m.Object.Pos() }
func (m *Member) String() string       { return m.Object.String() + "." + m.Property.String() }
func (m *Member) expressionNode()      {}

// Lambda is `lambda(params) { ... }` or the instant-return form
// `lambda(params) => expr`.
type Lambda struct {
	Token         lexer.Token // the 'lambda' token
	ParamIdents   []*Identifier
	Body          []Node
	InstantReturn bool
}

func (l *Lambda) Kind() NodeKind       { return NodeLambda }
func (l *Lambda) TokenLiteral() string { return l.Token.Lexeme }
func (l *Lambda) Pos() lexer.Position  { return l.Token.Range.Begin }
func (l *Lambda) String() string {
	var out bytes.Buffer
	out.WriteString("lambda(")
	for i, p := range l.ParamIdents {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(")")
	if l.InstantReturn && len(l.Body) == 1 {
		out.WriteString(" => ")
		out.WriteString(l.Body[0].String())
	} else {
		out.WriteString(" { ... }")
	}
	return out.String()
}
func (l *Lambda) expressionNode() {}

// Property is one `key`, `key: value`, or declared `Type key` entry in
// an object declaration body or an object-constructor expression. Type
// is populated in declarations and nil in constructor expressions.
type Property struct {
	Token lexer.Token // the key's identifier token
	Key   string
	Type  *Type
	Value Expression
}

func (p *Property) Kind() NodeKind       { return NodeProperty }
func (p *Property) TokenLiteral() string { return p.Token.Lexeme }
func (p *Property) Pos() lexer.Position  { return p.Token.Range.Begin }
func (p *Property) String() string {
	switch {
	case p.Type != nil:
		if p.Value != nil {
			return p.Type.String() + " " + p.Key + ": " + p.Value.String()
		}
		return p.Type.String() + " " + p.Key
	case p.Value != nil:
		return p.Key + ": " + p.Value.String()
	default:
		return p.Key
	}
}
func (p *Property) expressionNode() {}

// ObjectConstructor is `{ key: value, ... }`, either typed by a
// declared variable's Type (TargetIsType) or by an identifier on the
// left of an assignment.
type ObjectConstructor struct {
	Token        lexer.Token // the opening '{'
	TargetIdent  *Identifier // set when !TargetIsType
	TargetType   *Type       // set when TargetIsType
	TargetIsType bool
	Properties   []*Property
}

func (o *ObjectConstructor) Kind() NodeKind       { return NodeObjectConstructor }
func (o *ObjectConstructor) TokenLiteral() string { return o.Token.Lexeme }
func (o *ObjectConstructor) Pos() lexer.Position  { return o.Token.Range.Begin }
func (o *ObjectConstructor) String() string {
	var out bytes.Buffer
	if o.TargetIsType && o.TargetType != nil {
		out.WriteString(o.TargetType.String())
		out.WriteString(" ")
	} else if o.TargetIdent != nil {
		out.WriteString(o.TargetIdent.String())
		out.WriteString(" ")
	}
	out.WriteString("{")
	for i, p := range o.Properties {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString("}")
	return out.String()
}
func (o *ObjectConstructor) expressionNode() {}
