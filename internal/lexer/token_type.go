package lexer

// TokenKind represents the category of a token produced by the lexer.
// Token kinds are organized into the groups the grammar cares about:
// literals, the TYPE marker, keywords, punctuation/operators, and EOF.
type TokenKind int

const (
	// Special tokens
	ILLEGAL   TokenKind = iota // unrecognized character
	EOF_TOKEN                  // sentinel terminating every token sequence
	COMMENT                    // never emitted to the parser; kept for lexer introspection

	// Literals
	NUMBER        // integer literal: 123
	FLOAT_NUMBER  // float literal: 1.5f or 1.5 (no suffix)
	DOUBLE_NUMBER // double literal: 1.5d
	STRING        // "..."
	CHAR          // 'x'
	IDENTIFIER    // any name not a keyword or a registered primitive type

	literalEnd

	// Type marker: an identifier matching the primitive type registry
	TYPE

	// Keywords
	FUNCTION          // function
	LAMBDA            // lambda
	CONST             // const
	EXPORT            // export
	RETURN            // return
	IF                // if
	ELSE              // else
	WHILE             // while
	FOR               // for
	OBJECT            // object
	ANNOTATION_OBJECT // @object
	ENUM              // enum
	DELETE            // delete
	IMPORT            // import
	AS                // as

	keywordEnd

	// Punctuation / operators
	LPAREN          // (
	RPAREN          // )
	LBRACE          // {
	RBRACE          // }
	LBRACKET        // [
	RBRACKET        // ]
	SEMICOLON       // ;
	COLON           // :
	COMMA           // ,
	DOT             // .
	AT              // @
	ASSIGN          // =
	LESS            // <
	GREATER         // >
	AMPERSAND       // &
	PIPE            // |
	BANG            // !
	BINARY_OPERATOR // + - * / %, lexeme carries the actual symbol
)

// String returns the string representation of a TokenKind, used in
// diagnostics and debug dumps.
func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// IsLiteral reports whether k is one of the literal-value token kinds.
func (k TokenKind) IsLiteral() bool {
	return k >= NUMBER && k < literalEnd
}

// IsKeyword reports whether k is one of the reserved-word token kinds.
func (k TokenKind) IsKeyword() bool {
	return k > TYPE && k < keywordEnd
}

var tokenKindNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF_TOKEN: "EOF_TOKEN",
	COMMENT:   "COMMENT",

	NUMBER:        "NUMBER",
	FLOAT_NUMBER:  "FLOAT_NUMBER",
	DOUBLE_NUMBER: "DOUBLE_NUMBER",
	STRING:        "STRING",
	CHAR:          "CHAR",
	IDENTIFIER:    "IDENTIFIER",

	TYPE: "TYPE",

	FUNCTION:          "FUNCTION",
	LAMBDA:            "LAMBDA",
	CONST:             "CONST",
	EXPORT:            "EXPORT",
	RETURN:            "RETURN",
	IF:                "IF",
	ELSE:              "ELSE",
	WHILE:             "WHILE",
	FOR:               "FOR",
	OBJECT:            "OBJECT",
	ANNOTATION_OBJECT: "ANNOTATION_OBJECT",
	ENUM:              "ENUM",
	DELETE:            "DELETE",
	IMPORT:            "IMPORT",
	AS:                "AS",

	LPAREN:          "LPAREN",
	RPAREN:          "RPAREN",
	LBRACE:          "LBRACE",
	RBRACE:          "RBRACE",
	LBRACKET:        "LBRACKET",
	RBRACKET:        "RBRACKET",
	SEMICOLON:       "SEMICOLON",
	COLON:           "COLON",
	COMMA:           "COMMA",
	DOT:             "DOT",
	AT:              "AT",
	ASSIGN:          "ASSIGN",
	LESS:            "LESS",
	GREATER:         "GREATER",
	AMPERSAND:       "AMPERSAND",
	PIPE:            "PIPE",
	BANG:            "BANG",
	BINARY_OPERATOR: "BINARY_OPERATOR",
}

// keywords maps reserved-word lexemes to their token kind.
var keywords = map[string]TokenKind{
	"function": FUNCTION,
	"lambda":   LAMBDA,
	"const":    CONST,
	"export":   EXPORT,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"object":   OBJECT,
	"enum":     ENUM,
	"delete":   DELETE,
	"import":   IMPORT,
	"as":       AS,
}

// LookupIdent resolves an identifier-shaped lexeme to its token kind:
// a keyword, a registered primitive type name (TYPE), or IDENTIFIER.
func LookupIdent(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	if _, ok := PrimitiveTypeByName[ident]; ok {
		return TYPE
	}
	return IDENTIFIER
}

// PrimitiveTypeByName is the fixed primitive type name registry:
// identifiers matching these names lex as TYPE rather than IDENTIFIER,
// and the parser resolves them to the listed type uid.
var PrimitiveTypeByName = map[string]uint16{
	"dynamic": 1,
	"void":    3,
	"bool":    4,
	"int":     5,
	"float":   6,
	"double":  7,
	"string":  8,
	"char":    9,
}
