package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeongjeongguk/ShivyC/pkg/ast"
	"github.com/jeongjeongguk/ShivyC/pkg/lexer"
	"github.com/jeongjeongguk/ShivyC/pkg/parser"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Debug flags for dumping front end output
var (
	dTokens bool
	dParse  bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shivyc [file]",
		Short: "shivyc is the syntactic front end of a small C compiler",
		Long: `shivyc tokenizes and parses a small subset of C: a single main
function containing declarations, return statements, and expression
statements. It reports the diagnostic from the parse attempt that got
furthest into the input.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			filename := args[0]

			if dTokens {
				return doTokens(filename, out, errOut)
			}

			if dParse {
				return doParse(filename, out, errOut)
			}

			if _, err := parseFile(filename, errOut); err != nil {
				return err
			}
			fmt.Fprintf(errOut, "shivyc: parsed %s\n", filename)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVar(&dTokens, "dtokens", false, "Dump the token stream")
	rootCmd.Flags().BoolVar(&dParse, "dparse", false, "Dump after parsing")

	return rootCmd
}

// tokenizeFile reads and tokenizes a C file
func tokenizeFile(filename string, errOut io.Writer) ([]lexer.Token, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "shivyc: error reading %s: %v\n", filename, err)
		return nil, err
	}

	tokens, err := lexer.Tokenize(string(content))
	if err != nil {
		fmt.Fprintf(errOut, "%s: %s\n", filename, err)
		return nil, err
	}
	return tokens, nil
}

// parseFile tokenizes and parses a C file, returning the AST
func parseFile(filename string, errOut io.Writer) (*ast.Program, error) {
	tokens, err := tokenizeFile(filename, errOut)
	if err != nil {
		return nil, err
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintf(errOut, "%s: %s\n", filename, err)
		return nil, err
	}
	return program, nil
}

// doTokens dumps the token stream (-dtokens flag)
func doTokens(filename string, out, errOut io.Writer) error {
	tokens, err := tokenizeFile(filename, errOut)
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
	}
	return nil
}

// doParse parses the file and writes the AST to a .parsed.c file (-dparse flag)
func doParse(filename string, out, errOut io.Writer) error {
	program, err := parseFile(filename, errOut)
	if err != nil {
		return err
	}

	outputFilename := parsedOutputFilename(filename)

	outFile, err := os.Create(outputFilename)
	if err != nil {
		fmt.Fprintf(errOut, "shivyc: error creating %s: %v\n", outputFilename, err)
		return err
	}
	defer outFile.Close()

	printer := ast.NewPrinter(outFile)
	printer.PrintProgram(program)

	// Also print to stdout for convenience
	printer = ast.NewPrinter(out)
	printer.PrintProgram(program)

	return nil
}

// parsedOutputFilename returns the output filename for -dparse
// input.c -> input.parsed.c
func parsedOutputFilename(filename string) string {
	ext := ".c"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".parsed.c"
	}
	return filename + ".parsed.c"
}
