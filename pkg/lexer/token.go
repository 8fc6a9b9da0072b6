package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenIdent // foo, x
	TokenInt   // 42

	// Keywords
	TokenInt_   // int
	TokenMain   // main
	TokenReturn // return

	// Operators
	TokenPlus   // +
	TokenStar   // *
	TokenAssign // =

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenSemicolon // ;
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenIllegal:   "ILLEGAL",
	TokenIdent:     "IDENT",
	TokenInt:       "INT",
	TokenInt_:      "int",
	TokenMain:      "main",
	TokenReturn:    "return",
	TokenPlus:      "+",
	TokenStar:      "*",
	TokenAssign:    "=",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenSemicolon: ";",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// keywords maps keyword strings to token types. main is lexed as its own
// keyword kind, not as an identifier, because the parser matches the function
// signature skeleton as a fixed run of terminal kinds.
var keywords = map[string]TokenType{
	"int":    TokenInt_,
	"main":   TokenMain,
	"return": TokenReturn,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}
