package parser

import (
	"fmt"

	"github.com/jeongjeongguk/ShivyC/pkg/lexer"
)

// AnchorMode selects which token a diagnostic points at. A message anchors
// At the token that was expected to match, Got the token actually found in
// place of something else, or After the last token successfully consumed.
// The distinction changes the reported line and column.
type AnchorMode int

const (
	ModeAt AnchorMode = iota
	ModeGot
	ModeAfter
)

// ParserError is a diagnostic-carrying parse failure. AmountParsed is the
// number of tokens successfully consumed before the failure; the best-error
// tracker uses it to pick the most plausible diagnostic when every parse
// alternative fails.
type ParserError struct {
	Msg          string
	Index        int
	Tokens       []lexer.Token
	Mode         AnchorMode
	AmountParsed int
}

func newParserError(msg string, index int, tokens []lexer.Token, mode AnchorMode) *ParserError {
	return &ParserError{
		Msg:          msg,
		Index:        index,
		Tokens:       tokens,
		Mode:         mode,
		AmountParsed: index,
	}
}

func (e *ParserError) Error() string {
	if len(e.Tokens) == 0 {
		return fmt.Sprintf("%s at beginning of source", e.Msg)
	}

	switch e.Mode {
	case ModeAt:
		if e.Index >= len(e.Tokens) {
			return fmt.Sprintf("%s at end of input", e.Msg)
		}
		tok := e.Tokens[e.Index]
		return fmt.Sprintf("line %d, col %d: %s at '%s'",
			tok.Line, tok.Column, e.Msg, tok.Literal)
	case ModeGot:
		if e.Index >= len(e.Tokens) {
			return fmt.Sprintf("%s, got end of input", e.Msg)
		}
		tok := e.Tokens[e.Index]
		return fmt.Sprintf("line %d, col %d: %s, got '%s'",
			tok.Line, tok.Column, e.Msg, tok.Literal)
	case ModeAfter:
		i := e.Index - 1
		if i >= len(e.Tokens) {
			i = len(e.Tokens) - 1
		}
		if i < 0 {
			return fmt.Sprintf("%s at beginning of source", e.Msg)
		}
		tok := e.Tokens[i]
		return fmt.Sprintf("line %d, col %d: %s after '%s'",
			tok.Line, tok.Column, e.Msg, tok.Literal)
	}
	return e.Msg
}
