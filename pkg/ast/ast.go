// Package ast defines the abstract syntax tree produced by the parser
package ast

import "github.com/jeongjeongguk/ShivyC/pkg/lexer"

// Node is the base interface for all AST nodes
type Node interface {
	implNode()
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implExpr()
}

// Stmt is the interface for statements and declarations appearing in the
// main function body
type Stmt interface {
	Node
	implStmt()
}

// Program is the root node: the main function and its body
type Program struct {
	Body []Stmt
}

// Declaration represents a variable declaration: int x;
type Declaration struct {
	Name lexer.Token // the declared identifier
}

// Return represents a return statement
type Return struct {
	Expr Expr
}

// ExprStatement represents an expression used as a statement: x = 4;
type ExprStatement struct {
	Expr Expr
}

// Number represents an integer constant
type Number struct {
	Token lexer.Token
}

// Identifier represents a variable reference
type Identifier struct {
	Token lexer.Token
}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Expr Expr
}

// Binary represents a binary expression. The operator token is retained
// verbatim for later stages and diagnostics.
type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Marker methods for interface implementation
func (*Program) implNode() {}

func (Declaration) implNode() {}
func (Declaration) implStmt() {}

func (Return) implNode() {}
func (Return) implStmt() {}

func (ExprStatement) implNode() {}
func (ExprStatement) implStmt() {}

func (Number) implNode() {}
func (Number) implExpr() {}

func (Identifier) implNode() {}
func (Identifier) implExpr() {}

func (ParenExpr) implNode() {}
func (ParenExpr) implExpr() {}

func (Binary) implNode() {}
func (Binary) implExpr() {}
