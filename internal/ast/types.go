package ast

// Type uids. Zero is reserved for array so that a
// zero-valued Type (no uid assigned yet) is distinguishable from a
// legitimate array type only by checking Child != nil; callers should
// otherwise always construct a Type through one of the constructors
// below rather than a bare literal.
const (
	TypeArray   uint16 = 0
	TypeDynamic uint16 = 1
	TypeObject  uint16 = 2
	TypeVoid    uint16 = 3
	TypeBool    uint16 = 4
	TypeInt     uint16 = 5
	TypeFloat   uint16 = 6
	TypeDouble  uint16 = 7
	TypeString  uint16 = 8
	TypeChar    uint16 = 9
)

// Type describes a declared type slot: a primitive, an array, an object
// type named by Data, or — when LambdaTypes is non-empty — a
// function/lambda type whose LambdaTypes are its parameter types.
type Type struct {
	UID         uint16
	Data        string // object type name; empty except for TypeObject
	Child       *Type  // element type; non-nil only for TypeArray
	LambdaTypes []Type // parameter types; non-empty iff this is a lambda type
}

// IsLambda reports whether t is decorated as a function/lambda type.
func (t Type) IsLambda() bool {
	return len(t.LambdaTypes) > 0
}

// IsArray reports whether t is an array type.
func (t Type) IsArray() bool {
	return t.UID == TypeArray
}

// Equal reports structural equality: same uid, same Data, structurally
// equal Child, and element-wise equal LambdaTypes.
func (t Type) Equal(other Type) bool {
	if t.UID != other.UID || t.Data != other.Data {
		return false
	}
	if (t.Child == nil) != (other.Child == nil) {
		return false
	}
	if t.Child != nil && !t.Child.Equal(*other.Child) {
		return false
	}
	if len(t.LambdaTypes) != len(other.LambdaTypes) {
		return false
	}
	for i := range t.LambdaTypes {
		if !t.LambdaTypes[i].Equal(other.LambdaTypes[i]) {
			return false
		}
	}
	return true
}

func (t Type) String() string {
	var base string
	switch t.UID {
	case TypeDynamic:
		base = "dynamic"
	case TypeObject:
		base = t.Data
	case TypeVoid:
		base = "void"
	case TypeBool:
		base = "bool"
	case TypeInt:
		base = "int"
	case TypeFloat:
		base = "float"
	case TypeDouble:
		base = "double"
	case TypeString:
		base = "string"
	case TypeChar:
		base = "char"
	case TypeArray:
		if t.Child != nil {
			base = t.Child.String() + "[]"
		} else {
			base = "[]"
		}
	default:
		base = "?"
	}
	if t.IsLambda() {
		params := ""
		for i, p := range t.LambdaTypes {
			if i > 0 {
				params += ", "
			}
			params += p.String()
		}
		return base + " function(" + params + ")"
	}
	return base
}

// ArrayOf builds the array type whose element type is elem.
func ArrayOf(elem Type) Type {
	return Type{UID: TypeArray, Child: &elem}
}

// ObjectType builds the named object type.
func ObjectType(name string) Type {
	return Type{UID: TypeObject, Data: name}
}

// primitiveUIDByName mirrors lexer.PrimitiveTypeByName so the parser can go
// from a TYPE token's lexeme straight to a Type without importing the
// lexer's registry representation.
var primitiveUIDByName = map[string]uint16{
	"dynamic": TypeDynamic,
	"void":    TypeVoid,
	"bool":    TypeBool,
	"int":     TypeInt,
	"float":   TypeFloat,
	"double":  TypeDouble,
	"string":  TypeString,
	"char":    TypeChar,
}

// PrimitiveType resolves a primitive type name to its Type value. ok is
// false if name is not a registered primitive.
func PrimitiveType(name string) (Type, bool) {
	uid, ok := primitiveUIDByName[name]
	if !ok {
		return Type{}, false
	}
	return Type{UID: uid}, true
}
