package cmd

import (
	"errors"
	"fmt"
	"os"

	jscrerrors "github.com/jappe-studios/jscr-go/internal/errors"
	"github.com/jappe-studios/jscr-go/internal/lexer"
	"github.com/jappe-studios/jscr-go/internal/parser"
	"github.com/jappe-studios/jscr-go/pkg/astdump"
	"github.com/spf13/cobra"
)

var (
	checkDumpAST bool
	checkNoColor bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a JScr file and report any lex/syntax errors",
	Long: `Parse a JScr file and report the first lex or syntax error found,
with source context and a caret pointing at the offending token.

Exits non-zero if the file fails to lex or parse.

Examples:
  # Check a script for errors
  jscr check script.jscr

  # Check and also dump the resulting AST
  jscr check script.jscr --dump-ast`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkDumpAST, "dump-ast", false, "dump the AST on success")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable ANSI color in error output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	tokens, lexErr := lexer.New(filename, input).Tokenize()
	if lexErr != nil {
		printCompilerError(lexErr, input, filename)
		return fmt.Errorf("lexing failed")
	}

	program, parseErr := parser.New(filename, input, tokens).ParseProgram()
	if parseErr != nil {
		printCompilerError(parseErr, input, filename)
		return fmt.Errorf("parsing failed")
	}

	fmt.Printf("%s: OK (%d top-level statement(s))\n", filename, len(program.Body))

	if checkDumpAST {
		astdump.Dump(os.Stdout, program)
	}

	return nil
}

// printCompilerError unwraps a LexError/SyntaxError down to its
// underlying *errors.CompilerError and renders it with source context.
func printCompilerError(err error, source, file string) {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		ce := jscrerrors.NewCompilerError(lexErr.Pos, lexErr.Error(), source, file)
		fmt.Fprint(os.Stderr, ce.FormatWithContext(2, !checkNoColor))
		fmt.Fprintln(os.Stderr)
		return
	}

	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		fmt.Fprint(os.Stderr, synErr.FormatWithContext(2, !checkNoColor))
		fmt.Fprintf(os.Stderr, " (0x%04X)\n", synErr.ErrorCode)
		return
	}

	fmt.Fprintln(os.Stderr, err)
}
