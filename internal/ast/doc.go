// Package ast defines the Abstract Syntax Tree node types for JScr.
//
// The AST is a single Node sum type whose variants partition into
// statements and expressions; every expression is also a legal Node in
// a statement body, with no wrapper type involved. Child nodes are
// exclusively owned by their parent — the tree is acyclic and there is
// no shared or weak ownership.
//
// All nodes implement Node (TokenLiteral, String, Pos); expressions also
// implement Expression, statements also implement Statement.
package ast
