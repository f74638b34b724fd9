package ast

import "testing"

func TestPrimitiveTypeString(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"int", "int"},
		{"bool", "bool"},
		{"string", "string"},
		{"void", "void"},
		{"dynamic", "dynamic"},
	}

	for _, tt := range tests {
		typ, ok := PrimitiveType(tt.name)
		if !ok {
			t.Fatalf("PrimitiveType(%q) not found", tt.name)
		}
		if got := typ.String(); got != tt.want {
			t.Errorf("PrimitiveType(%q).String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPrimitiveTypeUnknown(t *testing.T) {
	if _, ok := PrimitiveType("Integer"); ok {
		t.Fatal("PrimitiveType(\"Integer\") should not resolve — JScr's registry is fixed")
	}
}

func TestArrayOfString(t *testing.T) {
	intType, _ := PrimitiveType("int")
	arr := ArrayOf(intType)
	if !arr.IsArray() {
		t.Fatal("ArrayOf result should report IsArray() == true")
	}
	if got, want := arr.String(), "int[]"; got != want {
		t.Errorf("ArrayOf(int).String() = %q, want %q", got, want)
	}
}

func TestObjectTypeString(t *testing.T) {
	obj := ObjectType("Point")
	if got, want := obj.String(), "Point"; got != want {
		t.Errorf("ObjectType(\"Point\").String() = %q, want %q", got, want)
	}
}

func TestLambdaTypeString(t *testing.T) {
	intType, _ := PrimitiveType("int")
	boolType, _ := PrimitiveType("bool")
	fn := intType
	fn.LambdaTypes = []Type{intType, boolType}
	if !fn.IsLambda() {
		t.Fatal("decorated Type should report IsLambda() == true")
	}
	if got, want := fn.String(), "int function(int, bool)"; got != want {
		t.Errorf("lambda Type.String() = %q, want %q", got, want)
	}
}

func TestTypeEqual(t *testing.T) {
	a, _ := PrimitiveType("int")
	b, _ := PrimitiveType("int")
	if !a.Equal(b) {
		t.Fatal("two int Types should be Equal")
	}

	s, _ := PrimitiveType("string")
	if a.Equal(s) {
		t.Fatal("int and string Types should not be Equal")
	}

	arr1 := ArrayOf(a)
	arr2 := ArrayOf(b)
	if !arr1.Equal(arr2) {
		t.Fatal("two int[] Types should be Equal")
	}
	arr3 := ArrayOf(s)
	if arr1.Equal(arr3) {
		t.Fatal("int[] and string[] should not be Equal")
	}

	obj1 := ObjectType("Point")
	obj2 := ObjectType("Point")
	obj3 := ObjectType("Vector")
	if !obj1.Equal(obj2) {
		t.Fatal("two Point object Types should be Equal")
	}
	if obj1.Equal(obj3) {
		t.Fatal("Point and Vector object Types should not be Equal")
	}
}

func TestTypeArrayUIDIsZero(t *testing.T) {
	if TypeArray != 0 {
		t.Fatalf("TypeArray uid must be 0, got %d", TypeArray)
	}
}
