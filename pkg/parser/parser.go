// Package parser implements a backtracking parser converting a token slice
// into an AST.
//
// Each parse* method corresponds to a non-terminal in the grammar. It tries
// to match tokens beginning at the given index and returns the AST node for
// the match together with the index one past the last token consumed, or a
// ParserError. Whenever a parse* call fails and the caller has further
// alternatives to try, the caller logs the error with logError and moves on;
// a caller with no alternative passes the error up unchanged.
package parser

import (
	"github.com/jeongjeongguk/ShivyC/pkg/ast"
	"github.com/jeongjeongguk/ShivyC/pkg/lexer"
)

// Parser parses a token slice into an AST
type Parser struct {
	tokens []lexer.Token

	// Out of all errors logged during the current Parse call, the one that
	// occurred after successfully consuming the most tokens.
	bestError *ParserError
}

// New creates a new Parser for the given tokens. The slice is read-only to
// the parser.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the token slice into an abstract syntax tree and returns the
// root node. On failure the returned error is the best error encountered:
// the failure that consumed the most tokens, which usually pinpoints the
// true defect more precisely than the last alternative tried.
func (p *Parser) Parse() (*ast.Program, error) {
	p.bestError = nil

	node, index, perr := p.parseMain(0)
	if perr != nil {
		p.logError(perr)
		return nil, p.bestError
	}

	// Ensure no tokens are left over after the main function
	if index < len(p.tokens) {
		return nil, newParserError("unexpected token", index, p.tokens, ModeAt)
	}

	return node, nil
}

// mainPrologue is the fixed opening of the main function: int main ( ) {
var mainPrologue = []lexer.TokenType{
	lexer.TokenInt_, lexer.TokenMain,
	lexer.TokenLParen, lexer.TokenRParen,
	lexer.TokenLBrace,
}

// parseMain parses the whole main function. Ex: int main() { return 4; }
func (p *Parser) parseMain(index int) (*ast.Program, int, *ParserError) {
	index, ok := p.matchTokens(index, mainPrologue)
	if !ok {
		return nil, 0, newParserError("expected main function starting", index, p.tokens, ModeAt)
	}

	var body []ast.Stmt
	for {
		node, newIndex, err := p.parseStatement(index)
		if err == nil {
			body = append(body, node)
			index = newIndex
			continue
		}
		p.logError(err)

		node, newIndex, err = p.parseDeclaration(index)
		if err == nil {
			body = append(body, node)
			index = newIndex
			continue
		}
		p.logError(err)

		// When all parsing attempts fail, the body is done. This is the
		// normal way out of the loop, not a fatal condition.
		break
	}

	index, ok = p.matchToken(index, lexer.TokenRBrace)
	if !ok {
		return nil, 0, newParserError("expected closing brace", index, p.tokens, ModeGot)
	}

	return &ast.Program{Body: body}, index, nil
}

// parseStatement tries the return production, then falls through to the
// expression-statement production. The last alternative propagates its own
// error.
func (p *Parser) parseStatement(index int) (ast.Stmt, int, *ParserError) {
	node, newIndex, err := p.parseReturn(index)
	if err == nil {
		return node, newIndex, nil
	}
	p.logError(err)

	return p.parseExprStatement(index)
}

func (p *Parser) parseReturn(index int) (ast.Stmt, int, *ParserError) {
	index, ok := p.matchToken(index, lexer.TokenReturn)
	if !ok {
		return nil, 0, newParserError("expected return keyword", index, p.tokens, ModeGot)
	}

	expr, index, err := p.parseExpression(index)
	if err != nil {
		return nil, 0, err
	}

	index, err = p.expectSemicolon(index)
	if err != nil {
		return nil, 0, err
	}

	return ast.Return{Expr: expr}, index, nil
}

func (p *Parser) parseExprStatement(index int) (ast.Stmt, int, *ParserError) {
	expr, index, err := p.parseExpression(index)
	if err != nil {
		return nil, 0, err
	}

	index, err = p.expectSemicolon(index)
	if err != nil {
		return nil, 0, err
	}

	return ast.ExprStatement{Expr: expr}, index, nil
}

func (p *Parser) parseDeclaration(index int) (ast.Stmt, int, *ParserError) {
	index, ok := p.matchToken(index, lexer.TokenInt_)
	if !ok {
		return nil, 0, newParserError("expected type name", index, p.tokens, ModeGot)
	}

	index, ok = p.matchToken(index, lexer.TokenIdent)
	if !ok {
		return nil, 0, newParserError("expected identifier", index, p.tokens, ModeAfter)
	}

	name := p.tokens[index-1]

	index, err := p.expectSemicolon(index)
	if err != nil {
		return nil, 0, err
	}

	return ast.Declaration{Name: name}, index, nil
}

// expectSemicolon expects a semicolon at tokens[index]. If one is found it
// returns index+1, otherwise a ParserError anchored after the last consumed
// token.
func (p *Parser) expectSemicolon(index int) (int, *ParserError) {
	newIndex, ok := p.matchToken(index, lexer.TokenSemicolon)
	if !ok {
		return 0, newParserError("expected semicolon", index, p.tokens, ModeAfter)
	}
	return newIndex, nil
}

// matchToken is shorthand for matchTokens for a single token kind
func (p *Parser) matchToken(index int, kind lexer.TokenType) (int, bool) {
	return p.matchTokens(index, []lexer.TokenType{kind})
}

// matchTokens checks whether the tokens starting at index match the expected
// kinds in order. On a match it returns index+len(kinds) and true. The false
// case carries no message; callers translate it into a contextual
// ParserError.
func (p *Parser) matchTokens(index int, kinds []lexer.TokenType) (int, bool) {
	if len(p.tokens)-index < len(kinds) {
		return index, false
	}
	for i, kind := range kinds {
		if p.tokens[index+i].Type != kind {
			return index, false
		}
	}
	return index + len(kinds), true
}

// logError records the error for diagnostic reporting. If the provided error
// occurred after parsing no fewer tokens than the held best error, it
// replaces the best error.
func (p *Parser) logError(err *ParserError) {
	if p.bestError == nil || err.AmountParsed >= p.bestError.AmountParsed {
		p.bestError = err
	}
}
