// Package astdump renders a JScr AST as an indented tree, for use by
// `jscr parse --dump-ast` and by the snapshot fixture tests.
package astdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/jappe-studios/jscr-go/internal/ast"
)

// Dump writes an indented tree representation of node to w.
func Dump(w io.Writer, node ast.Node) {
	dump(w, node, 0)
}

// String renders node the same way Dump does, returning the result.
func String(node ast.Node) string {
	var b strings.Builder
	Dump(&b, node)
	return b.String()
}

func dump(w io.Writer, node ast.Node, indent int) {
	pad := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Program:
		fmt.Fprintf(w, "%sProgram %s (%d statements)\n", pad, n.FileDir, len(n.Body))
		for _, stmt := range n.Body {
			dump(w, stmt, indent+1)
		}

	case *ast.ImportStmt:
		alias := ""
		if n.Alias != nil {
			alias = " as " + *n.Alias
		}
		fmt.Fprintf(w, "%sImportStmt %s%s\n", pad, strings.Join(n.Target, "."), alias)

	case *ast.VarDecl:
		fmt.Fprintf(w, "%sVarDecl %s: %s (const=%v export=%v)\n", pad, n.Name.Symbol, n.Type.String(), n.Constant, n.Exported)
		if n.Value != nil {
			dump(w, n.Value, indent+1)
		}

	case *ast.FunctionDecl:
		fmt.Fprintf(w, "%sFunctionDecl %s: %s (export=%v instantReturn=%v)\n", pad, n.Name.Symbol, n.Type.String(), n.Exported, n.InstantReturn)
		for _, param := range n.Params {
			dump(w, param, indent+1)
		}
		for _, stmt := range n.Body {
			dump(w, stmt, indent+1)
		}

	case *ast.ObjectDecl:
		fmt.Fprintf(w, "%sObjectDecl %s (annotation=%v export=%v)\n", pad, n.Name.Symbol, n.IsAnnotationObject, n.Exported)
		for _, prop := range n.Properties {
			dump(w, prop, indent+1)
		}

	case *ast.EnumDecl:
		fmt.Fprintf(w, "%sEnumDecl %s %v\n", pad, n.Name.Symbol, n.Entries)

	case *ast.ReturnDecl:
		fmt.Fprintf(w, "%sReturnDecl\n", pad)
		dump(w, n.Value, indent+1)

	case *ast.DeleteDecl:
		fmt.Fprintf(w, "%sDeleteDecl %s\n", pad, n.Ident.Symbol)

	case *ast.IfElseDecl:
		fmt.Fprintf(w, "%sIfElseDecl (%d block(s))\n", pad, len(n.Blocks))
		for i, block := range n.Blocks {
			fmt.Fprintf(w, "%s  Block %d:\n", pad, i)
			dump(w, block.Condition, indent+2)
			for _, stmt := range block.Body {
				dump(w, stmt, indent+2)
			}
		}
		if n.ElseBody != nil {
			fmt.Fprintf(w, "%s  Else:\n", pad)
			for _, stmt := range n.ElseBody {
				dump(w, stmt, indent+2)
			}
		}

	case *ast.WhileDecl:
		fmt.Fprintf(w, "%sWhileDecl\n", pad)
		dump(w, n.Condition, indent+1)
		for _, stmt := range n.Body {
			dump(w, stmt, indent+1)
		}

	case *ast.ForDecl:
		fmt.Fprintf(w, "%sForDecl\n", pad)
		if n.Init != nil {
			dump(w, n.Init, indent+1)
		}
		if n.Condition != nil {
			dump(w, n.Condition, indent+1)
		}
		if n.Step != nil {
			dump(w, n.Step, indent+1)
		}
		for _, stmt := range n.Body {
			dump(w, stmt, indent+1)
		}

	case *ast.Property:
		fmt.Fprintf(w, "%sProperty %s\n", pad, n.Key)
		if n.Value != nil {
			dump(w, n.Value, indent+1)
		}

	case *ast.Assignment:
		fmt.Fprintf(w, "%sAssignment\n", pad)
		dump(w, n.Target, indent+1)
		dump(w, n.Value, indent+1)

	case *ast.EqualityCheck:
		fmt.Fprintf(w, "%sEqualityCheck (%s)\n", pad, n.Op)
		dump(w, n.Left, indent+1)
		dump(w, n.Right, indent+1)

	case *ast.Binary:
		fmt.Fprintf(w, "%sBinary (%c)\n", pad, n.Op)
		dump(w, n.Left, indent+1)
		dump(w, n.Right, indent+1)

	case *ast.Unary:
		fmt.Fprintf(w, "%sUnary (%s)\n", pad, n.Op)
		dump(w, n.Operand, indent+1)

	case *ast.Call:
		fmt.Fprintf(w, "%sCall (%d arg(s))\n", pad, len(n.Args))
		dump(w, n.Caller, indent+1)
		for _, arg := range n.Args {
			dump(w, arg, indent+1)
		}

	case *ast.Index:
		fmt.Fprintf(w, "%sIndex\n", pad)
		dump(w, n.Caller, indent+1)
		dump(w, n.Arg, indent+1)

	case *ast.Member:
		fmt.Fprintf(w, "%sMember\n", pad)
		dump(w, n.Object, indent+1)
		dump(w, n.Property, indent+1)

	case *ast.Lambda:
		names := make([]string, len(n.ParamIdents))
		for i, id := range n.ParamIdents {
			names[i] = id.Symbol
		}
		fmt.Fprintf(w, "%sLambda (%s) instantReturn=%v\n", pad, strings.Join(names, ", "), n.InstantReturn)
		for _, stmt := range n.Body {
			dump(w, stmt, indent+1)
		}

	case *ast.ObjectConstructor:
		target := "<type>"
		if !n.TargetIsType && n.TargetIdent != nil {
			target = n.TargetIdent.Symbol
		} else if n.TargetType != nil {
			target = n.TargetType.String()
		}
		fmt.Fprintf(w, "%sObjectConstructor %s\n", pad, target)
		for _, prop := range n.Properties {
			dump(w, prop, indent+1)
		}

	case *ast.ArrayLit:
		fmt.Fprintf(w, "%sArrayLit (%d elem(s))\n", pad, len(n.Elems))
		for _, elem := range n.Elems {
			dump(w, elem, indent+1)
		}

	case *ast.Identifier:
		fmt.Fprintf(w, "%sIdentifier %s\n", pad, n.Symbol)
	case *ast.NumericLit:
		fmt.Fprintf(w, "%sNumericLit %d\n", pad, n.Value)
	case *ast.FloatLit:
		fmt.Fprintf(w, "%sFloatLit %g\n", pad, n.Value)
	case *ast.DoubleLit:
		fmt.Fprintf(w, "%sDoubleLit %g\n", pad, n.Value)
	case *ast.StringLit:
		fmt.Fprintf(w, "%sStringLit %q\n", pad, n.Value)
	case *ast.CharLit:
		fmt.Fprintf(w, "%sCharLit %q\n", pad, n.Value)

	case *ast.AnnotationUsage:
		fmt.Fprintf(w, "%sAnnotationUsage @%s (%d arg(s))\n", pad, n.Ident, len(n.Args))
		for _, arg := range n.Args {
			dump(w, arg, indent+1)
		}

	default:
		fmt.Fprintf(w, "%s%T: %s\n", pad, node, node.String())
	}
}
