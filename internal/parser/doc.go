// Package parser implements the recursive-descent parser that turns a
// JScr token sequence into an *ast.Program.
//
// The grammar is operator-precedence climbing for expressions layered
// under a statement dispatcher that disambiguates typed declarations
// from expression statements using a single outline-depth counter.
// There is no error recovery: the first SyntaxError or LexError
// abandons the parse.
package parser
