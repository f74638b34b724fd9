package parser

import (
	"testing"

	"github.com/jappe-studios/jscr-go/internal/ast"
)

// Concrete end-to-end parser scenarios, one test each. The lexer-level
// scenarios (numeric suffixes and "3..5", a string that looks like a
// comment) are tested in internal/lexer/lexer_test.go.

func TestScenarioImportBare(t *testing.T) {
	stmt := singleStmt(t, "import std.math;")
	imp, ok := stmt.(*ast.ImportStmt)
	if !ok {
		t.Fatalf("expected *ast.ImportStmt, got %T", stmt)
	}
	if len(imp.Target) != 2 || imp.Target[0] != "std" || imp.Target[1] != "math" {
		t.Errorf("Target = %v, want [std math]", imp.Target)
	}
	if imp.Alias != nil {
		t.Errorf("Alias = %v, want nil", *imp.Alias)
	}
}

func TestScenarioImportAliased(t *testing.T) {
	stmt := singleStmt(t, "import std.math as M;")
	imp, ok := stmt.(*ast.ImportStmt)
	if !ok {
		t.Fatalf("expected *ast.ImportStmt, got %T", stmt)
	}
	if imp.Alias == nil || *imp.Alias != "M" {
		t.Errorf("Alias = %v, want M", imp.Alias)
	}
}

func TestScenarioVarDeclWithPrecedence(t *testing.T) {
	stmt := singleStmt(t, "int x = 1 + 2 * 3;")
	decl, ok := stmt.(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", stmt)
	}
	if decl.Constant || decl.Exported {
		t.Errorf("expected const=false export=false, got const=%v export=%v", decl.Constant, decl.Exported)
	}
	if decl.Type.UID != ast.TypeInt {
		t.Errorf("Type.UID = %d, want TypeInt", decl.Type.UID)
	}
	if decl.Name.Symbol != "x" {
		t.Errorf("Name.Symbol = %q, want x", decl.Name.Symbol)
	}

	add, ok := decl.Value.(*ast.Binary)
	if !ok || add.Op != '+' {
		t.Fatalf("expected top-level '+' Binary, got %#v", decl.Value)
	}
	one, ok := add.Left.(*ast.NumericLit)
	if !ok || one.Value != 1 {
		t.Fatalf("expected left operand NumericLit(1), got %#v", add.Left)
	}
	mul, ok := add.Right.(*ast.Binary)
	if !ok || mul.Op != '*' {
		t.Fatalf("expected right operand '*' Binary, got %#v", add.Right)
	}
	two, ok := mul.Left.(*ast.NumericLit)
	if !ok || two.Value != 2 {
		t.Fatalf("expected mul.Left NumericLit(2), got %#v", mul.Left)
	}
	three, ok := mul.Right.(*ast.NumericLit)
	if !ok || three.Value != 3 {
		t.Fatalf("expected mul.Right NumericLit(3), got %#v", mul.Right)
	}
}

func TestScenarioConstVarDecl(t *testing.T) {
	stmt := singleStmt(t, "const int k = 5;")
	decl, ok := stmt.(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", stmt)
	}
	if !decl.Constant || decl.Exported {
		t.Errorf("expected const=true export=false, got const=%v export=%v", decl.Constant, decl.Exported)
	}
	if decl.Type.UID != ast.TypeInt || decl.Name.Symbol != "k" {
		t.Errorf("unexpected type/name: %v %q", decl.Type, decl.Name.Symbol)
	}
	lit, ok := decl.Value.(*ast.NumericLit)
	if !ok || lit.Value != 5 {
		t.Fatalf("expected NumericLit(5), got %#v", decl.Value)
	}
}

func TestScenarioFunctionDecl(t *testing.T) {
	stmt := singleStmt(t, "int add(int a, int b) { return a + b; }")
	fn, ok := stmt.(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", stmt)
	}
	if fn.Name.Symbol != "add" || fn.Type.UID != ast.TypeInt {
		t.Errorf("unexpected name/type: %q %v", fn.Name.Symbol, fn.Type)
	}
	if fn.InstantReturn {
		t.Error("expected InstantReturn == false for a braced body")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[0].Type.UID != ast.TypeInt || fn.Params[0].Name.Symbol != "a" {
		t.Errorf("unexpected param 0: %v %q", fn.Params[0].Type, fn.Params[0].Name.Symbol)
	}
	if fn.Params[1].Type.UID != ast.TypeInt || fn.Params[1].Name.Symbol != "b" {
		t.Errorf("unexpected param 1: %v %q", fn.Params[1].Type, fn.Params[1].Name.Symbol)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body))
	}
	ret, ok := fn.Body[0].(*ast.ReturnDecl)
	if !ok {
		t.Fatalf("expected *ast.ReturnDecl, got %T", fn.Body[0])
	}
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op != '+' {
		t.Fatalf("expected Binary('+'), got %#v", ret.Value)
	}
}

func TestScenarioObjectDecl(t *testing.T) {
	stmt := singleStmt(t, "object Point { int x, int y }")
	obj, ok := stmt.(*ast.ObjectDecl)
	if !ok {
		t.Fatalf("expected *ast.ObjectDecl, got %T", stmt)
	}
	if obj.Name.Symbol != "Point" || obj.IsAnnotationObject {
		t.Errorf("unexpected name/isAnnotationObject: %q %v", obj.Name.Symbol, obj.IsAnnotationObject)
	}
	if len(obj.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(obj.Properties))
	}
	if obj.Properties[0].Key != "x" || obj.Properties[0].Type.UID != ast.TypeInt || obj.Properties[0].Value != nil {
		t.Errorf("unexpected property 0: %+v", obj.Properties[0])
	}
	if obj.Properties[1].Key != "y" || obj.Properties[1].Type.UID != ast.TypeInt || obj.Properties[1].Value != nil {
		t.Errorf("unexpected property 1: %+v", obj.Properties[1])
	}
}

func TestScenarioEnumDecl(t *testing.T) {
	stmt := singleStmt(t, "enum Color { RED, GREEN, BLUE }")
	enum, ok := stmt.(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected *ast.EnumDecl, got %T", stmt)
	}
	if enum.Name.Symbol != "Color" {
		t.Errorf("Name.Symbol = %q, want Color", enum.Name.Symbol)
	}
	want := []string{"RED", "GREEN", "BLUE"}
	if len(enum.Entries) != len(want) {
		t.Fatalf("Entries = %v, want %v", enum.Entries, want)
	}
	for i, e := range want {
		if enum.Entries[i] != e {
			t.Errorf("Entries[%d] = %q, want %q", i, enum.Entries[i], e)
		}
	}
}

func TestScenarioIfElse(t *testing.T) {
	stmt := singleStmt(t, "if (a == 1) x = 2; else x = 3;")
	ifDecl, ok := stmt.(*ast.IfElseDecl)
	if !ok {
		t.Fatalf("expected *ast.IfElseDecl, got %T", stmt)
	}
	if len(ifDecl.Blocks) != 1 {
		t.Fatalf("expected exactly 1 block, got %d", len(ifDecl.Blocks))
	}

	cond, ok := ifDecl.Blocks[0].Condition.(*ast.EqualityCheck)
	if !ok || cond.Op != "==" {
		t.Fatalf("expected EqualityCheck('=='), got %#v", ifDecl.Blocks[0].Condition)
	}
	ident, ok := cond.Left.(*ast.Identifier)
	if !ok || ident.Symbol != "a" {
		t.Fatalf("expected condition left Identifier(a), got %#v", cond.Left)
	}
	num, ok := cond.Right.(*ast.NumericLit)
	if !ok || num.Value != 1 {
		t.Fatalf("expected condition right NumericLit(1), got %#v", cond.Right)
	}

	if len(ifDecl.Blocks[0].Body) != 1 {
		t.Fatalf("expected 1 statement in if body, got %d", len(ifDecl.Blocks[0].Body))
	}
	assign, ok := ifDecl.Blocks[0].Body[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", ifDecl.Blocks[0].Body[0])
	}
	if lit, ok := assign.Value.(*ast.NumericLit); !ok || lit.Value != 2 {
		t.Fatalf("expected then-branch assignment value 2, got %#v", assign.Value)
	}

	if len(ifDecl.ElseBody) != 1 {
		t.Fatalf("expected 1 statement in else body, got %d", len(ifDecl.ElseBody))
	}
	elseAssign, ok := ifDecl.ElseBody[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", ifDecl.ElseBody[0])
	}
	if lit, ok := elseAssign.Value.(*ast.NumericLit); !ok || lit.Value != 3 {
		t.Fatalf("expected else-branch assignment value 3, got %#v", elseAssign.Value)
	}
}
