package cmd

import (
	"fmt"
	"os"

	"github.com/jappe-studios/jscr-go/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a JScr file or expression",
	Long: `Tokenize (lex) a JScr program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
JScr source code is tokenized.

Examples:
  # Tokenize a script file
  jscr lex script.jscr

  # Tokenize an inline expression
  jscr lex -e "int x = 42;"

  # Show token types and positions
  jscr lex --show-type --show-pos script.jscr

  # Show only the first illegal character found
  jscr lex --only-errors script.jscr`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token kind names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only the unrecognized-character error, if any")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case lexEval != "":
		input = lexEval
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens, lexErr := lexer.New(filename, input).Tokenize()

	if onlyErrors {
		if lexErr != nil {
			fmt.Println(lexErr)
			return fmt.Errorf("lexing failed")
		}
		return nil
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
	}

	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr)
		return fmt.Errorf("lexing failed")
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-17s]", tok.Kind)
	}

	if tok.Lexeme == "" {
		output += fmt.Sprintf(" %s", tok.Kind)
	} else {
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Range.Begin.Line, tok.Range.Begin.Column)
	}

	fmt.Println(output)
}
