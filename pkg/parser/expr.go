package parser

import (
	"github.com/jeongjeongguk/ShivyC/pkg/ast"
	"github.com/jeongjeongguk/ShivyC/pkg/lexer"
)

// binaryOperators maps operator token kinds to precedence, where a higher
// number binds tighter. Expanding the grammar with new operators requires
// updating both this table and the shift eligibility check in
// parseExpression.
var binaryOperators = map[lexer.TokenType]int{
	lexer.TokenPlus:   11,
	lexer.TokenStar:   12,
	lexer.TokenAssign: 1,
}

// assignmentOperators is the set of right-associative operator kinds
var assignmentOperators = map[lexer.TokenType]bool{
	lexer.TokenAssign: true,
}

// stackItem is an item on the expression parsing stack: either a raw token
// or a node generating an expression. length is the number of tokens
// consumed in generating the item.
type stackItem struct {
	tok    lexer.Token
	node   ast.Expr // nil while the item is still a raw token
	length int
}

func (s stackItem) isToken(kind lexer.TokenType) bool {
	return s.node == nil && s.tok.Type == kind
}

// parseExpression is implemented as a shift-reduce parser. It comprehends as
// much as possible of the tokens past index as an expression; the index
// returned is one past the last token folded into it. If none of the input
// reduces to an expression, or unreduced items are left dangling on the
// stack, it fails like any other production.
func (p *Parser) parseExpression(index int) (ast.Expr, int, *ParserError) {
	var stack []stackItem

	i := index
	for {
		n := len(stack)
		switch {
		// Reduce a number token on top of the stack to a Number node
		case n >= 1 && stack[n-1].isToken(lexer.TokenInt):
			stack[n-1] = stackItem{node: ast.Number{Token: stack[n-1].tok}, length: 1}

		// Reduce an identifier token on top of the stack to an Identifier node
		case n >= 1 && stack[n-1].isToken(lexer.TokenIdent):
			stack[n-1] = stackItem{node: ast.Identifier{Token: stack[n-1].tok}, length: 1}

		// Reduce ( expr ) on top of the stack to a ParenExpr node
		case n >= 3 && stack[n-1].isToken(lexer.TokenRParen) &&
			stack[n-2].node != nil &&
			stack[n-3].isToken(lexer.TokenLParen):
			inner := stack[n-2]
			stack = append(stack[:n-3], stackItem{
				node:   ast.ParenExpr{Expr: inner.node},
				length: inner.length + 2,
			})

		// Reduce expr op expr on top of the stack to a Binary node, unless a
		// shift must happen first to respect precedence or associativity
		case n >= 3 && stack[n-1].node != nil &&
			stack[n-2].node == nil && isBinaryOperator(stack[n-2].tok.Type) &&
			stack[n-3].node != nil &&
			!p.shiftPreempts(stack[n-2].tok.Type, i):
			left, op, right := stack[n-3], stack[n-2], stack[n-1]
			stack = append(stack[:n-3], stackItem{
				node:   ast.Binary{Left: left.node, Op: op.tok, Right: right.node},
				length: left.length + op.length + right.length,
			})

		default:
			// No reduction applies. Shift the next token if it can appear in
			// an expression, otherwise the expression is over.
			if i == len(p.tokens) || !canShift(p.tokens[i].Type) {
				if n == 1 && stack[0].node != nil {
					return stack[0].node, index + stack[0].length, nil
				}
				return nil, 0, newParserError("expected expression", index, p.tokens, ModeGot)
			}
			stack = append(stack, stackItem{tok: p.tokens[i], length: 1})
			i++
		}
	}
}

// shiftPreempts reports whether the binary reduction for the stacked
// operator must wait for a shift: either the next input token is a strictly
// higher precedence operator, or the stacked and next operators are both
// assignment operators, which are right-associative.
func (p *Parser) shiftPreempts(stacked lexer.TokenType, i int) bool {
	if i >= len(p.tokens) {
		return false
	}
	next := p.tokens[i].Type

	if prec, ok := binaryOperators[next]; ok && prec > binaryOperators[stacked] {
		return true
	}
	if assignmentOperators[stacked] && assignmentOperators[next] {
		return true
	}
	return false
}

func isBinaryOperator(kind lexer.TokenType) bool {
	_, ok := binaryOperators[kind]
	return ok
}

// canShift reports whether a token kind can ever appear in an expression
func canShift(kind lexer.TokenType) bool {
	switch kind {
	case lexer.TokenInt, lexer.TokenIdent, lexer.TokenLParen, lexer.TokenRParen:
		return true
	}
	return isBinaryOperator(kind)
}
