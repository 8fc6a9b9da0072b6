package parser

import (
	"bytes"
	"testing"

	"github.com/jeongjeongguk/ShivyC/pkg/ast"
	"github.com/jeongjeongguk/ShivyC/pkg/lexer"
)

func parseExpr(t *testing.T, input string) (ast.Expr, int, *ParserError) {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	return New(tokens).parseExpression(0)
}

func mustParseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, _, perr := parseExpr(t, input)
	if perr != nil {
		t.Fatalf("parseExpression failed: %v", perr)
	}
	return expr
}

// exprString renders an expression with explicit grouping so tests can
// assert tree shapes compactly.
func exprString(t *testing.T, expr ast.Expr) string {
	t.Helper()
	switch e := expr.(type) {
	case ast.Number:
		return e.Token.Literal
	case ast.Identifier:
		return e.Token.Literal
	case ast.ParenExpr:
		return "paren[" + exprString(t, e.Expr) + "]"
	case ast.Binary:
		return "(" + exprString(t, e.Left) + " " + e.Op.Literal + " " + exprString(t, e.Right) + ")"
	default:
		t.Fatalf("unexpected expr %T", expr)
		return ""
	}
}

func TestExpressionShapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"4", "4"},
		{"x", "x"},
		{"(4)", "paren[4]"},
		{"a + b", "(a + b)"},
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"(a + b) * c", "(paren[(a + b)] * c)"},
		{"a * (b + c)", "(a * paren[(b + c)])"},
		{"a = b = c", "(a = (b = c))"},
		{"a = b + c * d", "(a = (b + (c * d)))"},
		{"a = b * c + d", "(a = ((b * c) + d))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := exprString(t, mustParseExpr(t, tt.input))
			if got != tt.expected {
				t.Errorf("tree shape wrong. expected=%s, got=%s", tt.expected, got)
			}
		})
	}
}

// Chains of equal-precedence non-assignment operators must fold left to
// right, for any chain length, since an equal-precedence next token never
// pre-empts the reduction.
func TestLeftAssociativeChains(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a + b + c", "((a + b) + c)"},
		{"a + b + c + d", "(((a + b) + c) + d)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b * c * d", "(((a * b) * c) * d)"},
		{"a + b * c + d", "((a + (b * c)) + d)"},
		{"a * b + c * d", "((a * b) + (c * d))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := exprString(t, mustParseExpr(t, tt.input))
			if got != tt.expected {
				t.Errorf("tree shape wrong. expected=%s, got=%s", tt.expected, got)
			}
		})
	}
}

func TestExpressionConsumedLength(t *testing.T) {
	tests := []struct {
		input    string
		newIndex int
	}{
		{"4", 1},
		{"a + b", 3},
		{"(a + b) * c", 7},
		// The expression ends at the first token that cannot extend it.
		{"a + b ; c", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, newIndex, perr := parseExpr(t, tt.input)
			if perr != nil {
				t.Fatalf("parseExpression failed: %v", perr)
			}
			if newIndex != tt.newIndex {
				t.Errorf("consumed length wrong. expected=%d, got=%d", tt.newIndex, newIndex)
			}
		})
	}
}

func TestExpressionFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"non-expression token", "return"},
		{"dangling open paren", "("},
		{"trailing open paren", "a + ("},
		{"unclosed group", "(a + b"},
		{"operator only", "+"},
		{"trailing operator", "a +"},
		{"unmatched close paren after operand", "4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, perr := parseExpr(t, tt.input)
			if perr == nil {
				t.Fatal("expected failure, got success")
			}
			if perr.Msg != "expected expression" {
				t.Errorf("expected expression diagnostic, got %q", perr.Msg)
			}
			if perr.Mode != ModeGot {
				t.Errorf("expected Got anchoring, got mode %d", perr.Mode)
			}
			if perr.Index != 0 {
				t.Errorf("expected anchor at start index 0, got %d", perr.Index)
			}
		})
	}
}

// Parsing then printing then re-tokenizing must reproduce the consumed token
// sequence exactly.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"int main() { }",
		"int main() { return 4; }",
		"int main() { int x; x = 4 + 2 * 3; return x; }",
		"int main() { return (a + b) * (c + d); }",
		"int main() { a = b = c + 1; }",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			prog := mustParse(t, input)

			var buf bytes.Buffer
			ast.NewPrinter(&buf).PrintProgram(prog)

			original, err := lexer.Tokenize(input)
			if err != nil {
				t.Fatalf("tokenize failed: %v", err)
			}
			printed, err := lexer.Tokenize(buf.String())
			if err != nil {
				t.Fatalf("tokenize of printed output failed: %v", err)
			}

			if len(printed) != len(original) {
				t.Fatalf("token count wrong. expected=%d, got=%d\nprinted:\n%s",
					len(original), len(printed), buf.String())
			}
			for i := range original {
				if printed[i].Type != original[i].Type || printed[i].Literal != original[i].Literal {
					t.Errorf("token %d wrong. expected=%q %q, got=%q %q",
						i, original[i].Type, original[i].Literal,
						printed[i].Type, printed[i].Literal)
				}
			}
		})
	}
}
