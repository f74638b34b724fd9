package ast

import (
	"bytes"
	"strings"

	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// AnnotationUsage is one `@Name(args)` attached at a declaration site.
// It never appears standalone in a Program.Body; it is carried in the
// owning declaration's Annotations slice.
type AnnotationUsage struct {
	Token lexer.Token // the '@' token
	Ident string
	Args  []Expression
}

func (a *AnnotationUsage) Kind() NodeKind       { return NodeAnnotationUsage }
func (a *AnnotationUsage) TokenLiteral() string { return a.Token.Lexeme }
func (a *AnnotationUsage) Pos() lexer.Position  { return a.Token.Range.Begin }
func (a *AnnotationUsage) String() string {
	args := make([]string, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.String()
	}
	return "@" + a.Ident + "(" + strings.Join(args, ", ") + ")"
}
func (a *AnnotationUsage) statementNode() {}

func annotationsString(annotations []*AnnotationUsage) string {
	var out bytes.Buffer
	for _, a := range annotations {
		out.WriteString(a.String())
		out.WriteString(" ")
	}
	return out.String()
}

// ImportStmt is `import A.B.C as Name;`. Alias is nil when no `as`
// clause is present.
type ImportStmt struct {
	Token  lexer.Token // the 'import' token
	Target []string
	Alias  *string
}

func (i *ImportStmt) Kind() NodeKind       { return NodeImportStmt }
func (i *ImportStmt) TokenLiteral() string { return i.Token.Lexeme }
func (i *ImportStmt) Pos() lexer.Position  { return i.Token.Range.Begin }
func (i *ImportStmt) String() string {
	out := "import " + strings.Join(i.Target, ".")
	if i.Alias != nil {
		out += " as " + *i.Alias
	}
	return out + ";"
}
func (i *ImportStmt) statementNode() {}

// VarDecl is a `var`/`const` declaration in one of three forms: no
// initializer, an expression initializer, or an object-constructor
// initializer. Also doubles as a function parameter record when used
// inside FunctionDecl.Params.
type VarDecl struct {
	Token       lexer.Token // first token of the declaration prefix (annotation, flag, or type)
	Annotations []*AnnotationUsage
	Constant    bool
	Exported    bool
	Type        Type
	Name        *Identifier
	Value       Expression // nil when no initializer is present
}

func (v *VarDecl) Kind() NodeKind       { return NodeVarDecl }
func (v *VarDecl) TokenLiteral() string { return v.Token.Lexeme }
func (v *VarDecl) Pos() lexer.Position  { return v.Token.Range.Begin }
func (v *VarDecl) String() string {
	var out bytes.Buffer
	out.WriteString(annotationsString(v.Annotations))
	if v.Exported {
		out.WriteString("export ")
	}
	if v.Constant {
		out.WriteString("const ")
	}
	out.WriteString(v.Type.String())
	out.WriteString(" ")
	out.WriteString(v.Name.String())
	if v.Value != nil {
		out.WriteString(" = ")
		out.WriteString(v.Value.String())
	}
	out.WriteString(";")
	return out.String()
}
func (v *VarDecl) statementNode() {}

// FunctionDecl is `Type name(params) { body }` or the instant-return
// form `Type name(params) => expr;`. Constant is always false.
type FunctionDecl struct {
	Token         lexer.Token // first token of the declaration prefix (annotation, flag, or return type)
	Annotations   []*AnnotationUsage
	Exported      bool
	Type          Type // return type
	Name          *Identifier
	Params        []*VarDecl
	Body          []Node
	InstantReturn bool
}

func (f *FunctionDecl) Kind() NodeKind       { return NodeFunctionDecl }
func (f *FunctionDecl) TokenLiteral() string { return f.Token.Lexeme }
func (f *FunctionDecl) Pos() lexer.Position  { return f.Token.Range.Begin }
func (f *FunctionDecl) String() string {
	var out bytes.Buffer
	out.WriteString(annotationsString(f.Annotations))
	if f.Exported {
		out.WriteString("export ")
	}
	out.WriteString(f.Type.String())
	out.WriteString(" ")
	out.WriteString(f.Name.String())
	out.WriteString("(")
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type.String() + " " + p.Name.String()
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(")")
	if f.InstantReturn && len(f.Body) == 1 {
		out.WriteString(" => ")
		out.WriteString(f.Body[0].String())
		out.WriteString(";")
	} else {
		out.WriteString(" { ... }")
	}
	return out.String()
}
func (f *FunctionDecl) statementNode() {}

// ObjectDecl is `object Name { Type prop, ... }` or, when
// IsAnnotationObject is set, the `@object Name { ... }` form. Constant
// is always false.
type ObjectDecl struct {
	Token              lexer.Token // first token of the declaration prefix ('object'/'@object' unless annotated or exported)
	Annotations        []*AnnotationUsage
	Exported           bool
	Name               *Identifier
	Properties         []*Property
	IsAnnotationObject bool
}

func (o *ObjectDecl) Kind() NodeKind       { return NodeObjectDecl }
func (o *ObjectDecl) TokenLiteral() string { return o.Token.Lexeme }
func (o *ObjectDecl) Pos() lexer.Position  { return o.Token.Range.Begin }
func (o *ObjectDecl) String() string {
	var out bytes.Buffer
	out.WriteString(annotationsString(o.Annotations))
	if o.Exported {
		out.WriteString("export ")
	}
	if o.IsAnnotationObject {
		out.WriteString("@object ")
	} else {
		out.WriteString("object ")
	}
	out.WriteString(o.Name.String())
	out.WriteString(" {\n")
	for _, p := range o.Properties {
		out.WriteString("\t")
		out.WriteString(p.String())
		out.WriteString(",\n")
	}
	out.WriteString("}")
	return out.String()
}
func (o *ObjectDecl) statementNode() {}

// EnumDecl is `enum Name { Entry, Entry, ... }`. Constant is always
// false.
type EnumDecl struct {
	Token       lexer.Token // first token of the declaration prefix ('enum' unless annotated or exported)
	Annotations []*AnnotationUsage
	Exported    bool
	Name        *Identifier
	Entries     []string
}

func (e *EnumDecl) Kind() NodeKind       { return NodeEnumDecl }
func (e *EnumDecl) TokenLiteral() string { return e.Token.Lexeme }
func (e *EnumDecl) Pos() lexer.Position  { return e.Token.Range.Begin }
func (e *EnumDecl) String() string {
	var out bytes.Buffer
	out.WriteString(annotationsString(e.Annotations))
	if e.Exported {
		out.WriteString("export ")
	}
	out.WriteString("enum ")
	out.WriteString(e.Name.String())
	out.WriteString(" { ")
	out.WriteString(strings.Join(e.Entries, ", "))
	out.WriteString(" }")
	return out.String()
}
func (e *EnumDecl) statementNode() {}

// ReturnDecl is `return expr;`.
type ReturnDecl struct {
	Token lexer.Token // the 'return' token
	Value Expression
}

func (r *ReturnDecl) Kind() NodeKind       { return NodeReturnDecl }
func (r *ReturnDecl) TokenLiteral() string { return r.Token.Lexeme }
func (r *ReturnDecl) Pos() lexer.Position  { return r.Token.Range.Begin }
func (r *ReturnDecl) String() string       { return "return " + r.Value.String() + ";" }
func (r *ReturnDecl) statementNode()       {}

// DeleteDecl is `delete ident;`.
type DeleteDecl struct {
	Token lexer.Token // the 'delete' token
	Ident *Identifier
}

func (d *DeleteDecl) Kind() NodeKind       { return NodeDeleteDecl }
func (d *DeleteDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *DeleteDecl) Pos() lexer.Position  { return d.Token.Range.Begin }
func (d *DeleteDecl) String() string       { return "delete " + d.Ident.String() + ";" }
func (d *DeleteDecl) statementNode()       {}
