package parser

import (
	"github.com/jappe-studios/jscr-go/internal/ast"
	"github.com/jappe-studios/jscr-go/internal/lexer"
)

// varCtx is the result of parseType when no object/enum category token
// was captured: the declaration prefix for a variable or function.
type varCtx struct {
	token       lexer.Token
	annotations []*ast.AnnotationUsage
	constant    bool
	exported    bool
	typ         ast.Type
}

// objEnumCtx is the result of parseType when an object/@object/enum
// category token was captured. name is the type-name identifier
// re-read as the declaration's own name.
type objEnumCtx struct {
	token       lexer.Token
	annotations []*ast.AnnotationUsage
	constant    bool
	exported    bool
	category    lexer.TokenKind
	name        string
	nameToken   lexer.Token
}

// parseType consumes the composable declaration prefix: annotations,
// const/export flags, an object/@object/enum category, a function-type
// prefix, and a type name, each category at most once except
// annotations. Exactly one of the two return values is non-nil.
func (p *Parser) parseType() (*varCtx, *objEnumCtx, error) {
	leading := p.peek(0)

	var annotations []*ast.AnnotationUsage
	var constant, constantSet bool
	var exported, exportedSet bool
	var category lexer.TokenKind
	categorySet := false
	var funcParams []ast.Type
	funcSet := false
	var typeName ast.Type
	var typeNameToken lexer.Token
	typeNameSet := false

	for {
		progressed := false

		if p.peek(0).Kind == lexer.AT {
			ann, err := p.parseAnnotationUsage()
			if err != nil {
				return nil, nil, err
			}
			annotations = append(annotations, ann)
			progressed = true
		}

		if !constantSet && p.peek(0).Kind == lexer.CONST {
			p.advance()
			constant, constantSet = true, true
			progressed = true
		}

		if !exportedSet && p.peek(0).Kind == lexer.EXPORT {
			p.advance()
			exported, exportedSet = true, true
			progressed = true
		}

		if !categorySet {
			switch p.peek(0).Kind {
			case lexer.OBJECT, lexer.ANNOTATION_OBJECT, lexer.ENUM:
				category = p.advance().Kind
				categorySet = true
				progressed = true
			}
		}

		if !funcSet && p.peek(0).Kind == lexer.FUNCTION {
			p.advance()
			if _, err := p.expect(lexer.LPAREN, "expected '(' after 'function'"); err != nil {
				return nil, nil, err
			}
			p.enter()
			for p.peek(0).Kind != lexer.RPAREN {
				tok, err := p.expect(lexer.TYPE, "expected a primitive type in function parameter list")
				if err != nil {
					return nil, nil, err
				}
				t, _ := ast.PrimitiveType(tok.Lexeme)
				funcParams = append(funcParams, t)
				if p.peek(0).Kind == lexer.COMMA {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(lexer.RPAREN, "expected ')' to close function parameter list"); err != nil {
				return nil, nil, err
			}
			p.leave()
			funcSet = true
			progressed = true
		}

		if !typeNameSet {
			switch p.peek(0).Kind {
			case lexer.TYPE:
				tok := p.advance()
				t, _ := ast.PrimitiveType(tok.Lexeme)
				typeName, typeNameToken, typeNameSet = t, tok, true
				progressed = true
			case lexer.IDENTIFIER:
				tok := p.advance()
				t := ast.ObjectType(tok.Lexeme)
				typeName, typeNameToken, typeNameSet = t, tok, true
				progressed = true
			}
			if typeNameSet && p.peek(0).Kind == lexer.LBRACKET && p.peek(1).Kind == lexer.RBRACKET {
				p.advance()
				p.advance()
				typeName = ast.ArrayOf(typeName)
			}
		}

		if !progressed {
			break
		}
	}

	if !typeNameSet {
		return nil, nil, p.errorf(p.peek(0).Range.Begin, "expected a type name in declaration")
	}

	if categorySet {
		return nil, &objEnumCtx{
			token:       leading,
			annotations: annotations,
			constant:    constant,
			exported:    exported,
			category:    category,
			name:        typeName.Data,
			nameToken:   typeNameToken,
		}, nil
	}

	if funcSet {
		if funcParams == nil {
			funcParams = []ast.Type{}
		}
		typeName.LambdaTypes = funcParams
	}

	return &varCtx{
		token:       leading,
		annotations: annotations,
		constant:    constant,
		exported:    exported,
		typ:         typeName,
	}, nil, nil
}

// parseAnnotationUsage parses one `@Ident(args?)`.
func (p *Parser) parseAnnotationUsage() (*ast.AnnotationUsage, error) {
	atTok, err := p.expect(lexer.AT, "expected '@'")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER, "expected an identifier after '@'")
	if err != nil {
		return nil, err
	}
	ann := &ast.AnnotationUsage{Token: atTok, Ident: nameTok.Lexeme}
	if p.peek(0).Kind == lexer.LPAREN {
		_, args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		ann.Args = args
	}
	return ann, nil
}

// parseTypePost calls parseType and dispatches to the matching
// declaration parser.
func (p *Parser) parseTypePost() (ast.Node, error) {
	vc, oc, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if oc != nil {
		if oc.constant {
			return nil, p.errorf(oc.token.Range.Begin, "Cannot declare enum or object as constant")
		}
		switch oc.category {
		case lexer.OBJECT:
			return p.parseObjectDecl(oc, false)
		case lexer.ANNOTATION_OBJECT:
			return p.parseObjectDecl(oc, true)
		case lexer.ENUM:
			return p.parseEnumDecl(oc)
		default:
			return nil, p.errorf(oc.token.Range.Begin, "invalid declaration category")
		}
	}

	nameTok, err := p.expect(lexer.IDENTIFIER, "expected an identifier in declaration")
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Symbol: nameTok.Lexeme}

	if p.peek(0).Kind == lexer.LPAREN {
		if vc.constant {
			return nil, p.errorf(vc.token.Range.Begin, "a function declaration cannot be constant")
		}
		return p.parseFunctionDecl(vc, name)
	}

	return p.parseVarDecl(vc, name)
}
