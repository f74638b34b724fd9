package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jappe-studios/jscr-go/internal/ast"
	"github.com/jappe-studios/jscr-go/internal/lexer"
	"github.com/jappe-studios/jscr-go/internal/parser"
	"github.com/jappe-studios/jscr-go/pkg/astdump"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse JScr source code and display the AST",
	Long: `Parse JScr source code and display the Abstract Syntax Tree (AST).

If no file is provided, reads from stdin.
Use -e to parse source text given as the argument instead of a file.
Use --dump-ast to show the full AST structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse source text given as the argument")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string
	filename := "<stdin>"

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
		filename = "<eval>"
	case len(args) > 0:
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	program, err := parseSource(filename, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		astdump.Dump(os.Stdout, program)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

// parseSource tokenizes and parses input under the given display name,
// returning the first lex or syntax error encountered.
func parseSource(filename, input string) (*ast.Program, error) {
	tokens, err := lexer.New(filename, input).Tokenize()
	if err != nil {
		return nil, err
	}
	return parser.New(filename, input, tokens).ParseProgram()
}
