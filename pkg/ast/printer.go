// Package ast provides AST printing functionality
package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer outputs the AST in a human-readable format
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: 0}
}

// PrintProgram prints a complete program
func (p *Printer) PrintProgram(prog *Program) {
	fmt.Fprintln(p.w, "int main()")
	fmt.Fprintln(p.w, "{")
	p.indent++
	for _, stmt := range prog.Body {
		p.printStmt(stmt)
	}
	p.indent--
	fmt.Fprintln(p.w, "}")
}

func (p *Printer) writeIndent() {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
}

func (p *Printer) printStmt(stmt Stmt) {
	p.writeIndent()
	switch s := stmt.(type) {
	case Declaration:
		fmt.Fprintf(p.w, "int %s;\n", s.Name.Literal)
	case Return:
		fmt.Fprint(p.w, "return ")
		p.printExpr(s.Expr)
		fmt.Fprintln(p.w, ";")
	case ExprStatement:
		p.printExpr(s.Expr)
		fmt.Fprintln(p.w, ";")
	default:
		fmt.Fprintf(p.w, "/* unknown stmt %T */;\n", stmt)
	}
}

func (p *Printer) printExpr(expr Expr) {
	switch e := expr.(type) {
	case Number:
		fmt.Fprint(p.w, e.Token.Literal)
	case Identifier:
		fmt.Fprint(p.w, e.Token.Literal)
	case ParenExpr:
		fmt.Fprint(p.w, "(")
		p.printExpr(e.Expr)
		fmt.Fprint(p.w, ")")
	case Binary:
		p.printExpr(e.Left)
		fmt.Fprintf(p.w, " %s ", e.Op.Literal)
		p.printExpr(e.Right)
	default:
		fmt.Fprintf(p.w, "/* unknown expr %T */", expr)
	}
}
